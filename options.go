package tess

import "github.com/gogpu/tess/path"

// FillOptions configures a fill tessellation. The zero value is not
// the default configuration; use DefaultFillOptions.
type FillOptions struct {
	// FillRule selects the inside classification.
	FillRule FillRule

	// Tolerance is the maximum distance between a curve and its
	// flattened approximation, in the same unit as the input
	// coordinates. Only used by entry points that flatten, such as
	// TessellatePath. Zero or negative selects the default.
	Tolerance float32

	// HandleIntersections controls whether self-intersecting edges are
	// detected and subdivided during the sweep. Disabling it speeds up
	// inputs known to be intersection-free. Feeding self-intersecting
	// paths with it off either still produces a valid result or fails
	// with ErrInternal; it never panics and never loops.
	HandleIntersections bool
}

// DefaultFillOptions returns the default fill configuration: even-odd
// fill rule, the standard flattening tolerance, intersection handling
// enabled.
func DefaultFillOptions() FillOptions {
	return FillOptions{
		FillRule:            FillRuleEvenOdd,
		Tolerance:           path.DefaultTolerance,
		HandleIntersections: true,
	}
}
