package layout

// Sizable is implemented by elements that can report a preferred size
// under a given constraint. A grid queries natural sizes with both
// constraints unbounded.
type Sizable interface {
	NaturalSize(widthConstraint, heightConstraint float64) Size
}

// Placeable is implemented by elements that can be assigned a final
// position and size.
type Placeable interface {
	PlaceAt(bounds Rect)
}

// Element is a layout participant. Elements are owned by the host
// element tree; layout strategies never create or destroy them.
type Element interface {
	Sizable
	Placeable

	// Visible reports whether the element takes part in sizing. Elements
	// that are not visible are skipped when deriving the cell size but
	// still occupy a grid slot during arrangement.
	Visible() bool
}

// Strategy lays out a set of elements. Measure reports the size the
// elements want under the given constraints; Arrange assigns each
// element its final bounds.
type Strategy interface {
	Measure(children []Element, widthConstraint, heightConstraint float64) Size
	Arrange(children []Element, bounds Rect) Size
}

// Fixed is a minimal element with a fixed natural size. It records the
// bounds it was last placed at, which makes it useful as a leaf element
// for markup documents, scripted scenarios, and tests.
type Fixed struct {
	Width  float64
	Height float64
	Hidden bool

	bounds Rect
	placed int
}

// Visible reports whether the element participates in sizing.
func (f *Fixed) Visible() bool {
	return !f.Hidden
}

// NaturalSize returns the element's fixed size regardless of constraint.
func (f *Fixed) NaturalSize(widthConstraint, heightConstraint float64) Size {
	return Size{Width: f.Width, Height: f.Height}
}

// PlaceAt records the assigned bounds.
func (f *Fixed) PlaceAt(bounds Rect) {
	f.bounds = bounds
	f.placed++
}

// Placement returns the bounds the element was last placed at and
// whether it has been placed at all.
func (f *Fixed) Placement() (Rect, bool) {
	return f.bounds, f.placed > 0
}

// PlaceCount returns how many times the element has been placed.
func (f *Fixed) PlaceCount() int {
	return f.placed
}
