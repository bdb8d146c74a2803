package layout

import "testing"

func TestFixedElement(t *testing.T) {
	f := &Fixed{Width: 80, Height: 40}

	if !f.Visible() {
		t.Error("Fixed should be visible by default")
	}

	size := f.NaturalSize(Unconstrained(), Unconstrained())
	if size.Width != 80 || size.Height != 40 {
		t.Errorf("NaturalSize wrong: got (%v, %v), expected (80, 40)", size.Width, size.Height)
	}

	if _, placed := f.Placement(); placed {
		t.Error("Fixed should not report a placement before PlaceAt")
	}

	f.PlaceAt(Rect{X: 10, Y: 20, Width: 80, Height: 40})
	bounds, placed := f.Placement()
	if !placed {
		t.Fatal("Fixed should report a placement after PlaceAt")
	}
	if bounds.X != 10 || bounds.Y != 20 {
		t.Errorf("Placement position wrong: got (%v, %v), expected (10, 20)", bounds.X, bounds.Y)
	}
	if f.PlaceCount() != 1 {
		t.Errorf("PlaceCount wrong: got %d, expected 1", f.PlaceCount())
	}
}

func TestFixedHidden(t *testing.T) {
	f := &Fixed{Width: 80, Height: 40, Hidden: true}
	if f.Visible() {
		t.Error("Hidden Fixed should not be visible")
	}
}

func TestUnconstrainedSentinel(t *testing.T) {
	if !IsUnconstrained(Unconstrained()) {
		t.Error("Unconstrained() should be reported as unconstrained")
	}
	if IsUnconstrained(250) {
		t.Error("A finite constraint should not be reported as unconstrained")
	}
}
