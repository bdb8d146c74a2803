package ui

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/chrisuehlinger/uniformgrid/layout"
	"github.com/chrisuehlinger/uniformgrid/markup"
)

// cellPalette colors the preview cells in rotation.
var cellPalette = []color.NRGBA{
	{R: 0x4e, G: 0x79, B: 0xa7, A: 0xff},
	{R: 0xf2, G: 0x8e, B: 0x2b, A: 0xff},
	{R: 0xe1, G: 0x57, B: 0x59, A: 0xff},
	{R: 0x76, G: 0xb7, B: 0xb2, A: 0xff},
	{R: 0x59, G: 0xa1, B: 0x4f, A: 0xff},
	{R: 0xed, G: 0xc9, B: 0x48, A: 0xff},
}

// Preview opens a window showing the panel's children as colored
// rectangles laid out by its grid. Blocks until the window closes.
func Preview(panel *markup.Panel) {
	a := app.New()
	w := a.NewWindow("uniformgrid preview")

	objects := make([]fyne.CanvasObject, len(panel.Children))
	for i, child := range panel.Children {
		rect := canvas.NewRectangle(cellPalette[i%len(cellPalette)])
		rect.SetMinSize(fyne.NewSize(float32(child.Width), float32(child.Height)))
		if child.Hidden {
			rect.Hide()
		}
		objects[i] = rect
	}

	grid := container.New(&GridLayout{Grid: panel.Grid}, objects...)

	size := panel.Grid.Measure(panel.Elements(), layout.Unconstrained(), layout.Unconstrained())
	width, height := size.Width, size.Height
	if width < 320 {
		width = 320
	}
	if height < 240 {
		height = 240
	}
	w.Resize(fyne.NewSize(float32(width), float32(height)))
	w.SetContent(grid)

	fmt.Printf("Previewing %d children (max %s rows, %s columns)\n",
		len(panel.Children), capLabel(panel.Grid.MaxRows), capLabel(panel.Grid.MaxColumns))

	w.ShowAndRun()
}

func capLabel(limit int) string {
	if limit == math.MaxInt {
		return "unbounded"
	}
	return fmt.Sprintf("%d", limit)
}
