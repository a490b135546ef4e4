package tess

// FillRule selects which regions of a path are inside and get filled.
type FillRule uint8

// Fill rules.
const (
	// FillRuleEvenOdd fills regions crossed by an odd number of edges
	// on the way in from infinity.
	FillRuleEvenOdd FillRule = iota

	// FillRuleNonZero fills regions whose winding number is not zero.
	// Sub-path direction matters: a hole is a sub-path wound the other
	// way around.
	FillRuleNonZero
)

// String returns a human-readable name for the fill rule.
func (r FillRule) String() string {
	switch r {
	case FillRuleEvenOdd:
		return "EvenOdd"
	case FillRuleNonZero:
		return "NonZero"
	default:
		return "Unknown"
	}
}

// Includes reports whether a region with the given winding number is
// inside the filled area.
func (r FillRule) Includes(winding int16) bool {
	if r == FillRuleNonZero {
		return winding != 0
	}
	return winding%2 != 0
}
