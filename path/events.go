package path

import "iter"

// DefaultTolerance is the default maximum distance between a curve and
// its flattened approximation.
const DefaultTolerance = 0.1

// EventKind discriminates fill events.
type EventKind uint8

// Fill event kinds.
const (
	// EventBegin starts a subpath.
	EventBegin EventKind = iota
	// EventLine extends the current subpath with a line segment.
	EventLine
	// EventEnd terminates the current subpath.
	EventEnd
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBegin:
		return "Begin"
	case EventLine:
		return "Line"
	case EventEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Event is one element of a flattened fill event stream.
//
// A well-formed stream is a sequence of subpaths, each a Begin followed
// by zero or more Line events and exactly one End. At carries the
// subpath start for Begin, the destination for Line, and the subpath
// start again for End so consumers can close without tracking state.
type Event struct {
	Kind EventKind
	At   Point

	// Close reports, on End events, whether the subpath was closed
	// explicitly. Fill consumers close every subpath regardless; the
	// flag matters for stroking.
	Close bool
}

// Events returns an iterator over the path as a fill event stream.
// Curves are flattened to line segments within the given tolerance;
// a tolerance of zero or less selects DefaultTolerance.
//
// Drawing commands that follow a Close without an intervening MoveTo
// start a new subpath at the previous subpath's start point.
func (p *Path) Events(tolerance float32) iter.Seq[Event] {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return func(yield func(Event) bool) {
		var first, cur Point
		open := false
		pointIdx := 0

		ensureOpen := func() bool {
			if open {
				return true
			}
			if !yield(Event{Kind: EventBegin, At: cur}) {
				return false
			}
			first = cur
			open = true
			return true
		}

		for _, verb := range p.verbs {
			switch verb {
			case VerbMoveTo:
				to := Point{p.points[pointIdx], p.points[pointIdx+1]}
				pointIdx += 2
				if open {
					if !yield(Event{Kind: EventEnd, At: first}) {
						return
					}
					open = false
				}
				cur = to
				if !ensureOpen() {
					return
				}

			case VerbLineTo:
				to := Point{p.points[pointIdx], p.points[pointIdx+1]}
				pointIdx += 2
				if !ensureOpen() {
					return
				}
				if !yield(Event{Kind: EventLine, At: to}) {
					return
				}
				cur = to

			case VerbQuadTo:
				ctrl := Point{p.points[pointIdx], p.points[pointIdx+1]}
				to := Point{p.points[pointIdx+2], p.points[pointIdx+3]}
				pointIdx += 4
				if !ensureOpen() {
					return
				}
				for _, pt := range flattenQuadratic(cur, ctrl, to, tolerance) {
					if !yield(Event{Kind: EventLine, At: pt}) {
						return
					}
				}
				cur = to

			case VerbCubicTo:
				c1 := Point{p.points[pointIdx], p.points[pointIdx+1]}
				c2 := Point{p.points[pointIdx+2], p.points[pointIdx+3]}
				to := Point{p.points[pointIdx+4], p.points[pointIdx+5]}
				pointIdx += 6
				if !ensureOpen() {
					return
				}
				for _, pt := range flattenCubic(cur, c1, c2, to, tolerance) {
					if !yield(Event{Kind: EventLine, At: pt}) {
						return
					}
				}
				cur = to

			case VerbClose:
				if open {
					if !yield(Event{Kind: EventEnd, At: first, Close: true}) {
						return
					}
					open = false
				}
				cur = first
			}
		}

		if open {
			yield(Event{Kind: EventEnd, At: first})
		}
	}
}
