package script

import (
	"math"

	"github.com/dop251/goja"

	"github.com/chrisuehlinger/uniformgrid/layout"
)

// setupGrid installs the global grid(maxRows, maxColumns) factory. The
// returned object wraps a UniformGrid and its children:
//
//	var g = grid(2, 3);
//	g.add(100, 50);
//	g.add(80, 40, true);          // hidden
//	var size = g.measure(250, Infinity);
//	var cells = g.arrange(0, 0, 250, 400);
//
// Omitted or non-finite cap arguments leave the grid uncapped.
func (r *Runtime) setupGrid() {
	r.vm.Set("grid", func(call goja.FunctionCall) goja.Value {
		g := layout.NewUniformGrid()
		if len(call.Arguments) > 0 {
			g.MaxRows = capArg(call.Arguments[0])
		}
		if len(call.Arguments) > 1 {
			g.MaxColumns = capArg(call.Arguments[1])
		}
		return r.bindGrid(g)
	})
}

// bindGrid wraps a UniformGrid and a child list in a script object.
func (r *Runtime) bindGrid(g *layout.UniformGrid) *goja.Object {
	var children []*layout.Fixed

	elements := func() []layout.Element {
		out := make([]layout.Element, len(children))
		for i, c := range children {
			out[i] = c
		}
		return out
	}

	obj := r.vm.NewObject()

	obj.Set("add", func(call goja.FunctionCall) goja.Value {
		child := &layout.Fixed{}
		if len(call.Arguments) > 0 {
			child.Width = call.Arguments[0].ToFloat()
		}
		if len(call.Arguments) > 1 {
			child.Height = call.Arguments[1].ToFloat()
		}
		if len(call.Arguments) > 2 {
			child.Hidden = call.Arguments[2].ToBoolean()
		}
		children = append(children, child)
		return obj
	})

	obj.Set("count", func(call goja.FunctionCall) goja.Value {
		return r.vm.ToValue(len(children))
	})

	obj.Set("setMaxRows", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			g.MaxRows = capArg(call.Arguments[0])
		}
		return obj
	})

	obj.Set("setMaxColumns", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			g.MaxColumns = capArg(call.Arguments[0])
		}
		return obj
	})

	obj.Set("measure", func(call goja.FunctionCall) goja.Value {
		widthConstraint := layout.Unconstrained()
		heightConstraint := layout.Unconstrained()
		if len(call.Arguments) > 0 {
			widthConstraint = call.Arguments[0].ToFloat()
		}
		if len(call.Arguments) > 1 {
			heightConstraint = call.Arguments[1].ToFloat()
		}
		size := g.Measure(elements(), widthConstraint, heightConstraint)
		return r.sizeValue(size)
	})

	obj.Set("arrange", func(call goja.FunctionCall) goja.Value {
		var bounds layout.Rect
		if len(call.Arguments) > 0 {
			bounds.X = call.Arguments[0].ToFloat()
		}
		if len(call.Arguments) > 1 {
			bounds.Y = call.Arguments[1].ToFloat()
		}
		if len(call.Arguments) > 2 {
			bounds.Width = call.Arguments[2].ToFloat()
		}
		if len(call.Arguments) > 3 {
			bounds.Height = call.Arguments[3].ToFloat()
		}
		g.Arrange(elements(), bounds)

		placements := make([]interface{}, 0, len(children))
		for _, child := range children {
			cell, placed := child.Placement()
			if !placed {
				continue
			}
			placements = append(placements, map[string]interface{}{
				"x":      cell.X,
				"y":      cell.Y,
				"width":  cell.Width,
				"height": cell.Height,
			})
		}
		return r.vm.ToValue(placements)
	})

	return obj
}

func (r *Runtime) sizeValue(size layout.Size) goja.Value {
	obj := r.vm.NewObject()
	obj.Set("width", size.Width)
	obj.Set("height", size.Height)
	return obj
}

// capArg converts a script value into a row/column cap. Infinity and
// values beyond the int range mean uncapped.
func capArg(v goja.Value) int {
	f := v.ToFloat()
	if math.IsNaN(f) || f >= float64(math.MaxInt) {
		return math.MaxInt
	}
	if f <= float64(math.MinInt) {
		return math.MinInt
	}
	return int(f)
}
