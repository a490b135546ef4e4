package path

import "math"

func (p Point) lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) dot(q Point) float32 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) length() float32 {
	return float32(math.Sqrt(float64(p.X*p.X + p.Y*p.Y)))
}

func (p Point) distance(q Point) float32 {
	return p.sub(q).length()
}

func (p Point) isNaN() bool {
	return p.X != p.X || p.Y != p.Y
}

func (p Point) clamp() Point {
	return Point{
		X: min(max(p.X, -flattenLimit), flattenLimit),
		Y: min(max(p.Y, -flattenLimit), flattenLimit),
	}
}

// flattenLimit bounds the coordinates fed into subdivision, matching
// the clamp applied when positions are snapped to fixed point.
const flattenLimit = 16384

// maxFlattenDepth caps recursive subdivision. Each level quarters the
// deviation from the chord, so in-range curves flatten within the cap
// for any tolerance above 2e-5.
const maxFlattenDepth = 16

// flattenQuadratic subdivides a quadratic Bezier curve into line
// segments. The returned points exclude p0 and include p2. A NaN
// curve point is returned as the sole segment end so consumers see
// the bad coordinate; other points clamp to the representable range.
func flattenQuadratic(p0, p1, p2 Point, tolerance float32) []Point {
	for _, p := range [3]Point{p1, p2, p0} {
		if p.isNaN() {
			return []Point{p}
		}
	}
	var points []Point
	flattenQuadraticRec(p0.clamp(), p1.clamp(), p2.clamp(), tolerance, maxFlattenDepth, &points)
	return points
}

func flattenQuadraticRec(p0, p1, p2 Point, tolerance float32, depth int, points *[]Point) {
	if depth == 0 || distanceToLine(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}

	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := q0.lerp(q1, 0.5)

	flattenQuadraticRec(p0, q0, q2, tolerance, depth-1, points)
	flattenQuadraticRec(q2, q1, p2, tolerance, depth-1, points)
}

// flattenCubic subdivides a cubic Bezier curve into line segments using
// de Casteljau's algorithm. The returned points exclude p0 and
// include p3. NaN and out-of-range points are handled as in
// flattenQuadratic.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float32) []Point {
	for _, p := range [4]Point{p1, p2, p3, p0} {
		if p.isNaN() {
			return []Point{p}
		}
	}
	var points []Point
	flattenCubicRec(p0.clamp(), p1.clamp(), p2.clamp(), p3.clamp(), tolerance, maxFlattenDepth, &points)
	return points
}

func flattenCubicRec(p0, p1, p2, p3 Point, tolerance float32, depth int, points *[]Point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if depth == 0 || max(d1, d2) < tolerance {
		*points = append(*points, p3)
		return
	}

	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	s := r0.lerp(r1, 0.5)

	flattenCubicRec(p0, q0, r0, s, tolerance, depth-1, points)
	flattenCubicRec(s, r1, q2, p3, tolerance, depth-1, points)
}

// distanceToLine returns the distance from p to the segment (a, b).
func distanceToLine(p, a, b Point) float32 {
	ab := b.sub(a)
	abLen := ab.length()

	if abLen < 1e-10 {
		return p.distance(a)
	}

	ap := p.sub(a)
	t := ap.dot(ab) / (abLen * abLen)

	if t < 0 {
		return p.distance(a)
	}
	if t > 1 {
		return p.distance(b)
	}

	return p.distance(a.add(ab.mul(t)))
}
