// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

// Fixed-point coordinates for the sweep.
//
// The sweep orders event positions and active edges by comparing
// coordinates and cross products. Doing this in floating point makes
// the outcome depend on evaluation order; two mathematically equal
// comparisons can disagree and corrupt the active edge list. All
// positions are therefore snapped to 16.16 fixed-point on entry and
// every predicate is evaluated exactly in int64 (32.32).
//
// Input coordinates are clamped to [-coordLimit, coordLimit] so that a
// product of two coordinate differences fits in int64 with room for
// the sums the predicates compute.

// fdot16 is a 16.16 fixed-point number (16 fractional bits).
type fdot16 = int32

// fdot32 is a 32.32 fixed-point number, the width of a product of two
// fdot16 values.
type fdot32 = int64

const (
	// fdot16One is 1.0 in fdot16 representation.
	fdot16One fdot16 = 1 << 16

	// coordLimit bounds input coordinates. Beyond it, values are
	// clamped rather than rejected.
	coordLimit = 16384.0

	// fixedLimit is coordLimit scaled to fdot16, kept one step inside
	// the power of two so that the difference of any two in-range
	// values still fits in 32 bits.
	fixedLimit fdot16 = 1<<30 - 1
)

// fdot16FromFloat32 converts a float32 to fdot16, clamping to the
// supported coordinate range. The value must not be NaN; callers
// validate before converting.
func fdot16FromFloat32(f float32) fdot16 {
	if f > coordLimit {
		f = coordLimit
	}
	if f < -coordLimit {
		f = -coordLimit
	}
	return clampFixed(fdot16(f * float32(fdot16One)))
}

// fdot16ToFloat32 converts an fdot16 to float32.
func fdot16ToFloat32(v fdot16) float32 {
	return float32(v) / float32(fdot16One)
}

// fdot16FromFloat64 converts a float64 to fdot16, clamping to the
// supported coordinate range.
func fdot16FromFloat64(f float64) fdot16 {
	if f > coordLimit {
		f = coordLimit
	}
	if f < -coordLimit {
		f = -coordLimit
	}
	return clampFixed(fdot16(f * float64(fdot16One)))
}

func clampFixed(v fdot16) fdot16 {
	if v > fixedLimit {
		return fixedLimit
	}
	if v < -fixedLimit {
		return -fixedLimit
	}
	return v
}

// fdot16ToFloat64 converts an fdot16 to float64.
func fdot16ToFloat64(v fdot16) float64 {
	return float64(v) / float64(fdot16One)
}

// fixedPoint is a position snapped to the fixed-point grid.
type fixedPoint struct {
	X, Y fdot16
}

// sweepLess reports whether a precedes b in sweep order: smaller y
// first, then smaller x.
func sweepLess(a, b fixedPoint) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
