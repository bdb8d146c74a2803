// Package ui bridges the layout engine to Fyne, providing a container
// layout and a preview window for panel documents.
package ui

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/chrisuehlinger/uniformgrid/layout"
)

// canvasElement adapts a fyne.CanvasObject to the layout element
// interfaces. The object's minimum size stands in for its natural size.
type canvasElement struct {
	obj fyne.CanvasObject
}

func (c canvasElement) Visible() bool {
	return c.obj.Visible()
}

func (c canvasElement) NaturalSize(widthConstraint, heightConstraint float64) layout.Size {
	min := c.obj.MinSize()
	return layout.Size{Width: float64(min.Width), Height: float64(min.Height)}
}

func (c canvasElement) PlaceAt(bounds layout.Rect) {
	c.obj.Move(fyne.NewPos(float32(bounds.X), float32(bounds.Y)))
	c.obj.Resize(fyne.NewSize(float32(bounds.Width), float32(bounds.Height)))
}

func adaptObjects(objects []fyne.CanvasObject) []layout.Element {
	elements := make([]layout.Element, len(objects))
	for i, obj := range objects {
		elements[i] = canvasElement{obj: obj}
	}
	return elements
}

// GridLayout arranges canvas objects into a uniform-cell grid. It
// implements fyne.Layout by delegating to a layout.UniformGrid.
type GridLayout struct {
	Grid *layout.UniformGrid
}

// NewGridLayout creates a grid layout with the given caps. Values of
// math.MaxInt leave the corresponding cap disabled.
func NewGridLayout(maxRows, maxColumns int) *GridLayout {
	grid := layout.NewUniformGrid()
	grid.MaxRows = maxRows
	grid.MaxColumns = maxColumns
	return &GridLayout{Grid: grid}
}

// NewGridContainer creates a container that lays out the given objects
// in a uniform-cell grid.
func NewGridContainer(maxRows, maxColumns int, objects ...fyne.CanvasObject) *fyne.Container {
	return container.New(NewGridLayout(maxRows, maxColumns), objects...)
}

// MinSize measures the grid under unconstrained space.
func (l *GridLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	size := l.Grid.Measure(adaptObjects(objects), layout.Unconstrained(), layout.Unconstrained())
	return fyne.NewSize(float32(size.Width), float32(size.Height))
}

// Layout places the objects into equal-width cells across the container.
func (l *GridLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	bounds := layout.Rect{
		Width:  float64(containerSize.Width),
		Height: float64(containerSize.Height),
	}
	l.Grid.Arrange(adaptObjects(objects), bounds)
}

// Uncapped is a convenience for grid layouts without row or column
// limits.
func Uncapped() *GridLayout {
	return NewGridLayout(math.MaxInt, math.MaxInt)
}
