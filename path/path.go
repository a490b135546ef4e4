// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package path builds vector paths and streams them as fill events.
//
// A Path stores construction commands (verbs) and coordinate data
// separately. The Events method flattens curves and yields the
// Begin/Line/End stream consumed by the tessellator.
package path

import "math"

// Verb represents a path construction command.
type Verb uint8

// Path verb constants.
const (
	// VerbMoveTo moves the current point without drawing.
	VerbMoveTo Verb = iota
	// VerbLineTo draws a line to the specified point.
	VerbLineTo
	// VerbQuadTo draws a quadratic Bezier curve.
	VerbQuadTo
	// VerbCubicTo draws a cubic Bezier curve.
	VerbCubicTo
	// VerbClose closes the current subpath.
	VerbClose
)

// String returns a human-readable name for the verb.
func (v Verb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbQuadTo:
		return "QuadTo"
	case VerbCubicTo:
		return "CubicTo"
	case VerbClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Point is a 2D point with float32 coordinates.
type Point struct {
	X, Y float32
}

// Rect is an axis-aligned bounding rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// IsEmpty reports whether the rectangle contains no points.
func (r Rect) IsEmpty() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

func emptyRect() Rect {
	return Rect{
		MinX: math.MaxFloat32,
		MinY: math.MaxFloat32,
		MaxX: -math.MaxFloat32,
		MaxY: -math.MaxFloat32,
	}
}

func (r Rect) unionPoint(x, y float32) Rect {
	if x < r.MinX {
		r.MinX = x
	}
	if y < r.MinY {
		r.MinY = y
	}
	if x > r.MaxX {
		r.MaxX = x
	}
	if y > r.MaxY {
		r.MaxY = y
	}
	return r
}

// Path represents a vector path. It stores commands (verbs) and
// coordinate data separately for compact storage and cheap iteration.
// The zero value is not ready to use; call New.
type Path struct {
	verbs  []Verb
	points []float32
	bounds Rect
	start  Point // start of current subpath, for Close
	cursor Point // current position
}

// New creates a new empty path.
func New() *Path {
	return &Path{
		verbs:  make([]Verb, 0, 16),
		points: make([]float32, 0, 64),
		bounds: emptyRect(),
	}
}

// Reset clears the path for reuse without deallocating memory.
func (p *Path) Reset() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.bounds = emptyRect()
	p.start = Point{}
	p.cursor = Point{}
}

// MoveTo begins a new subpath at the specified point.
func (p *Path) MoveTo(x, y float32) *Path {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, x, y)
	p.bounds = p.bounds.unionPoint(x, y)
	p.start = Point{x, y}
	p.cursor = p.start
	return p
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y float32) *Path {
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, x, y)
	p.bounds = p.bounds.unionPoint(x, y)
	p.cursor = Point{x, y}
	return p
}

// QuadTo draws a quadratic Bezier curve from the current point to
// (x, y) with control point (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float32) *Path {
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, cx, cy, x, y)
	// Union with control points is a conservative bounds approximation.
	p.bounds = p.bounds.unionPoint(cx, cy)
	p.bounds = p.bounds.unionPoint(x, y)
	p.cursor = Point{x, y}
	return p
}

// CubicTo draws a cubic Bezier curve from the current point to (x, y)
// with control points (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) *Path {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, c1x, c1y, c2x, c2y, x, y)
	p.bounds = p.bounds.unionPoint(c1x, c1y)
	p.bounds = p.bounds.unionPoint(c2x, c2y)
	p.bounds = p.bounds.unionPoint(x, y)
	p.cursor = Point{x, y}
	return p
}

// Close closes the current subpath by drawing a line back to its start.
func (p *Path) Close() *Path {
	p.verbs = append(p.verbs, VerbClose)
	p.cursor = p.start
	return p
}

// Rectangle adds a rectangle subpath.
func (p *Path) Rectangle(x, y, w, h float32) *Path {
	return p.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// Circle adds a circle subpath.
func (p *Path) Circle(cx, cy, r float32) *Path {
	return p.Ellipse(cx, cy, r, r)
}

// Ellipse adds an ellipse subpath approximated by four cubic arcs.
func (p *Path) Ellipse(cx, cy, rx, ry float32) *Path {
	// k = 4 * (sqrt(2) - 1) / 3, the circular arc approximation constant.
	const k = float32(0.5522847498)
	kx := k * rx
	ky := k * ry

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	return p.Close()
}

// Polygon adds a regular polygon subpath with the given number of
// sides, starting at the top vertex. Fewer than three sides adds
// nothing.
func (p *Path) Polygon(cx, cy, r float32, sides int) *Path {
	if sides < 3 {
		return p
	}
	step := 2 * math.Pi / float64(sides)
	start := -math.Pi / 2
	for i := 0; i < sides; i++ {
		angle := start + float64(i)*step
		x := cx + r*float32(math.Cos(angle))
		y := cy + r*float32(math.Sin(angle))
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	return p.Close()
}

// Bounds returns the bounding rectangle of the path.
// Curves are bounded by their control polygons, so the result is a
// conservative approximation.
func (p *Path) Bounds() Rect {
	return p.bounds
}

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the verb stream.
func (p *Path) Verbs() []Verb {
	return p.verbs
}

// Points returns the point data stream.
func (p *Path) Points() []float32 {
	return p.points
}

// AddPath appends a copy of q's subpaths to p.
func (p *Path) AddPath(q *Path) *Path {
	p.verbs = append(p.verbs, q.verbs...)
	p.points = append(p.points, q.points...)
	for i := 0; i+1 < len(q.points); i += 2 {
		p.bounds = p.bounds.unionPoint(q.points[i], q.points[i+1])
	}
	p.start = q.start
	p.cursor = q.cursor
	return p
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := New()
	result.verbs = append(result.verbs, p.verbs...)
	result.points = append(result.points, p.points...)
	result.bounds = p.bounds
	result.start = p.start
	result.cursor = p.cursor
	return result
}

// subpathData holds one subpath during reversal.
type subpathData struct {
	verbs  []Verb
	points []float32
	start  Point
	closed bool
}

// Reverse returns a new path with the direction of every subpath
// reversed. Reversing flips the winding, which turns a shape into a
// cut-out under the non-zero fill rule.
func (p *Path) Reverse() *Path {
	result := New()
	if p.IsEmpty() {
		return result
	}

	var subpaths []subpathData
	var current subpathData
	pointIdx := 0

	for _, verb := range p.verbs {
		switch verb {
		case VerbMoveTo:
			if len(current.verbs) > 0 {
				subpaths = append(subpaths, current)
			}
			current = subpathData{
				verbs:  []Verb{verb},
				points: []float32{p.points[pointIdx], p.points[pointIdx+1]},
				start:  Point{p.points[pointIdx], p.points[pointIdx+1]},
			}
			pointIdx += 2
		case VerbLineTo:
			current.verbs = append(current.verbs, verb)
			current.points = append(current.points, p.points[pointIdx], p.points[pointIdx+1])
			pointIdx += 2
		case VerbQuadTo:
			current.verbs = append(current.verbs, verb)
			current.points = append(current.points, p.points[pointIdx:pointIdx+4]...)
			pointIdx += 4
		case VerbCubicTo:
			current.verbs = append(current.verbs, verb)
			current.points = append(current.points, p.points[pointIdx:pointIdx+6]...)
			pointIdx += 6
		case VerbClose:
			current.verbs = append(current.verbs, verb)
			current.closed = true
		}
	}
	if len(current.verbs) > 0 {
		subpaths = append(subpaths, current)
	}

	for _, sp := range subpaths {
		reverseSubpath(result, sp)
	}
	return result
}

// reverseSubpath appends the reversal of one subpath to result.
//
// Every verb's destination is its trailing coordinate pair, so the
// start point of element i is the pair immediately before element i's
// own points. Walking the verbs backwards and emitting each element's
// start point (with control points swapped) reverses the subpath.
func reverseSubpath(result *Path, sp subpathData) {
	if len(sp.verbs) == 0 || len(sp.points) < 2 {
		return
	}

	// The reversal starts at the last explicit destination.
	n := len(sp.points)
	result.MoveTo(sp.points[n-2], sp.points[n-1])

	pointIdx := n
	for i := len(sp.verbs) - 1; i >= 1; i-- {
		switch sp.verbs[i] {
		case VerbClose:
			// Re-added at the end if the subpath was closed.
		case VerbLineTo:
			pointIdx -= 2
			result.LineTo(sp.points[pointIdx-2], sp.points[pointIdx-1])
		case VerbQuadTo:
			pointIdx -= 4
			result.QuadTo(sp.points[pointIdx], sp.points[pointIdx+1],
				sp.points[pointIdx-2], sp.points[pointIdx-1])
		case VerbCubicTo:
			pointIdx -= 6
			result.CubicTo(sp.points[pointIdx+2], sp.points[pointIdx+3],
				sp.points[pointIdx], sp.points[pointIdx+1],
				sp.points[pointIdx-2], sp.points[pointIdx-1])
		}
	}

	if sp.closed {
		result.Close()
	}
}
