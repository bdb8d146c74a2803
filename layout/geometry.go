// Package layout implements uniform-cell grid layout over an abstract
// element tree. The host framework supplies the elements; this package
// only does the measurement and arrangement arithmetic.
package layout

import "math"

// Size represents a width/height pair. Either axis may be positive
// infinity, which acts as the "unconstrained" sentinel.
type Size struct {
	Width, Height float64
}

// Rect represents a rectangular area.
type Rect struct {
	X, Y, Width, Height float64
}

// Unconstrained returns the sentinel value for an unbounded measurement
// axis.
func Unconstrained() float64 {
	return math.Inf(1)
}

// IsUnconstrained reports whether a constraint value is the unbounded
// sentinel.
func IsUnconstrained(constraint float64) bool {
	return math.IsInf(constraint, 1)
}
