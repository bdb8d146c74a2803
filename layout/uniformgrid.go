package layout

import "math"

// UniformGrid arranges elements into a row-major grid whose cells all
// share a single size. The cell size is derived from the children's
// natural sizes on every pass; nothing is cached between passes.
//
// MaxRows and MaxColumns bound the grid. They default to math.MaxInt
// (uncapped), may be changed at any time, and are consulted fresh on
// every Measure/Arrange call. Values of zero or below produce an empty
// layout rather than an error.
type UniformGrid struct {
	MaxRows    int
	MaxColumns int
}

// NewUniformGrid returns a grid with both caps disabled.
func NewUniformGrid() *UniformGrid {
	return &UniformGrid{
		MaxRows:    math.MaxInt,
		MaxColumns: math.MaxInt,
	}
}

// gridPlan is the per-call derivation shared by Measure and Arrange.
// Keeping it a value computed from the inputs means Arrange never
// depends on Measure having been called first.
type gridPlan struct {
	columns    int
	rows       int
	cellWidth  float64
	cellHeight float64
}

// plan derives the shared cell size and the grid shape for one pass.
//
// The cell takes the natural size of the last visible child iterated,
// not the maximum across children. Column and row counts are derived
// from the total child count, including children that were skipped
// during sizing; invisible children still occupy grid slots.
func (g *UniformGrid) plan(children []Element, widthConstraint float64) gridPlan {
	var cellWidth, cellHeight float64
	for _, child := range children {
		if !child.Visible() {
			continue
		}
		size := child.NaturalSize(Unconstrained(), Unconstrained())
		cellWidth = size.Width
		cellHeight = size.Height
	}

	columns := g.columnCount(len(children), widthConstraint, cellWidth)
	rows := g.rowCount(len(children), columns)

	return gridPlan{
		columns:    columns,
		rows:       rows,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
	}
}

// columnCount derives how many columns the grid gets for the given
// child count, width constraint, and shared cell width.
func (g *UniformGrid) columnCount(count int, widthConstraint, cellWidth float64) int {
	var columns int
	if IsUnconstrained(widthConstraint) {
		// Unbounded width: every child fits in one row.
		columns = count
	} else {
		// Guard the division: a zero-width cell must yield zero columns,
		// not an infinite or NaN count.
		if cellWidth <= 0 {
			return 0
		}
		columns = int(widthConstraint / cellWidth)
		if columns > count {
			columns = count
		}
	}
	if columns > g.MaxColumns {
		columns = g.MaxColumns
	}
	if columns < 0 {
		columns = 0
	}
	return columns
}

// rowCount derives how many rows the grid gets for the given child
// count and column count.
func (g *UniformGrid) rowCount(count, columns int) int {
	// No columns means no grid, regardless of the row cap.
	if columns <= 0 {
		return 0
	}
	rows := (count + columns - 1) / columns
	if rows > g.MaxRows {
		rows = g.MaxRows
	}
	if rows < 0 {
		rows = 0
	}
	return rows
}

// Measure derives the shared cell size from the children's natural
// sizes and returns the total size of the resulting grid. The height
// constraint does not influence the result; rows are bounded only by
// MaxRows.
func (g *UniformGrid) Measure(children []Element, widthConstraint, heightConstraint float64) Size {
	p := g.plan(children, widthConstraint)
	return Size{
		Width:  float64(p.columns) * p.cellWidth,
		Height: float64(p.rows) * p.cellHeight,
	}
}

// Arrange partitions the bounds width into equal columns and places
// each child into its row-major cell. Children beyond the grid's
// capacity (rows times columns) are not placed; surplus cells are left
// empty. The returned size is the size of one cell.
func (g *UniformGrid) Arrange(children []Element, bounds Rect) Size {
	p := g.plan(children, bounds.Width)
	if p.columns == 0 {
		return Size{}
	}

	cellWidth := bounds.Width / float64(p.columns)
	cellHeight := p.cellHeight

	next := 0
	for row := 0; row < p.rows && next < len(children); row++ {
		for col := 0; col < p.columns && next < len(children); col++ {
			children[next].PlaceAt(Rect{
				X:      float64(col) * cellWidth,
				Y:      float64(row) * cellHeight,
				Width:  cellWidth,
				Height: cellHeight,
			})
			next++
		}
	}

	return Size{Width: cellWidth, Height: cellHeight}
}
