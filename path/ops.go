package path

import "math"

// Geometric queries over a path: signed area, winding number,
// containment, and hashing for cache keys.

// SignedArea returns the area enclosed by the path. Every subpath is
// treated as closed, matching fill semantics. In the y-down coordinate
// system, clockwise subpaths contribute positive area.
//
// Curve segments contribute exactly via Green's theorem; nothing is
// flattened.
func (p *Path) SignedArea() float64 {
	var area float64
	var cur, start Point
	pointIdx := 0
	open := false

	next := func() Point {
		pt := Point{p.points[pointIdx], p.points[pointIdx+1]}
		pointIdx += 2
		return pt
	}

	for _, verb := range p.verbs {
		switch verb {
		case VerbMoveTo:
			if open {
				area += lineArea(cur, start)
				open = false
			}
			cur = next()
			start = cur

		case VerbLineTo:
			to := next()
			area += lineArea(cur, to)
			cur = to
			open = true

		case VerbQuadTo:
			ctrl := next()
			to := next()
			area += quadArea(cur, ctrl, to)
			cur = to
			open = true

		case VerbCubicTo:
			c1 := next()
			c2 := next()
			to := next()
			area += cubicArea(cur, c1, c2, to)
			cur = to
			open = true

		case VerbClose:
			if open {
				area += lineArea(cur, start)
				open = false
			}
			cur = start
		}
	}
	if open {
		area += lineArea(cur, start)
	}
	return area
}

func cross64(a, b Point) float64 {
	return float64(a.X)*float64(b.Y) - float64(a.Y)*float64(b.X)
}

// lineArea is the contribution of one line segment to the loop
// integral (x dy - y dx)/2.
func lineArea(p0, p1 Point) float64 {
	return cross64(p0, p1) / 2
}

// quadArea is the exact contribution of one quadratic segment,
// consistent with lineArea so the two can mix in one loop.
func quadArea(p0, p1, p2 Point) float64 {
	return (2*cross64(p0, p1) + cross64(p0, p2) + 2*cross64(p1, p2)) / 6
}

// cubicArea is the exact contribution of one cubic segment.
func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (6*cross64(p0, p1) + 3*cross64(p0, p2) + cross64(p0, p3) +
		3*cross64(p1, p2) + 3*cross64(p1, p3) + 6*cross64(p2, p3)) / 20
}

// Winding returns the winding number of the point relative to the
// path. Zero means outside. Curves are flattened with the default
// tolerance, so answers very close to a curved edge are approximate.
func (p *Path) Winding(x, y float32) int {
	var w int
	var cur Point
	for e := range p.Events(DefaultTolerance) {
		switch e.Kind {
		case EventBegin:
			cur = e.At
		case EventLine, EventEnd:
			w += lineWinding(cur, e.At, x, y)
			cur = e.At
		}
	}
	return w
}

// Contains reports whether the point lies inside the path under the
// non-zero fill rule.
func (p *Path) Contains(x, y float32) bool {
	return p.Winding(x, y) != 0
}

// lineWinding is the crossing contribution of segment p0-p1 to the
// winding number at (x, y). Clockwise loops in y-down coordinates
// accumulate positive winding, matching the sign of SignedArea.
func lineWinding(p0, p1 Point, x, y float32) int {
	if p0.Y <= y && p1.Y > y {
		if isLeft(p0, p1, x, y) > 0 {
			return 1
		}
	} else if p0.Y > y && p1.Y <= y {
		if isLeft(p0, p1, x, y) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft is positive when (x, y) is left of the directed line p0-p1.
func isLeft(p0, p1 Point, x, y float32) float64 {
	return float64(p1.X-p0.X)*float64(y-p0.Y) - float64(x-p0.X)*float64(p1.Y-p0.Y)
}

// Hash returns an FNV-1a hash of the path's verbs and coordinate bits,
// suitable as a cache key. Two paths built from the same command
// sequence hash equal; tolerance and fill options are not part of the
// hash.
func (p *Path) Hash() uint64 {
	const (
		fnvOffset = 14695981039346656037
		fnvPrime  = 1099511628211
	)

	hash := uint64(fnvOffset)
	for _, v := range p.verbs {
		hash ^= uint64(v)
		hash *= fnvPrime
	}
	for _, f := range p.points {
		hash ^= uint64(math.Float32bits(f))
		hash *= fnvPrime
	}
	return hash
}
