package path

import "math"

// Matrix is a 2D affine transformation stored row-major:
//
//	| A  B  C |
//	| D  E  F |
//
// It maps (x, y) to (A*x + B*y + C, D*x + E*y + F).
type Matrix struct {
	A, B, C float32
	D, E, F float32
}

// Identity returns the identity transformation.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a translation by (x, y).
func Translate(x, y float32) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns a scaling around the origin.
func Scale(x, y float32) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate returns a rotation around the origin by angle radians.
// Positive angles turn clockwise in the y-down coordinate system.
func Rotate(angle float32) Matrix {
	sin, cos := math.Sincos(float64(angle))
	return Matrix{
		A: float32(cos), B: float32(-sin),
		D: float32(sin), E: float32(cos),
	}
}

// Shear returns a shear transformation.
func Shear(x, y float32) Matrix {
	return Matrix{A: 1, B: x, D: y, E: 1}
}

// Multiply composes two transformations. The result applies other
// first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float32) (float32, float32) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// Invert returns the inverse transformation, or the identity when m
// is singular.
func (m Matrix) Invert() Matrix {
	det := float64(m.A)*float64(m.E) - float64(m.B)*float64(m.D)
	if math.Abs(det) < 1e-10 {
		return Identity()
	}
	inv := float32(1 / det)
	return Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}
}

// IsIdentity reports whether m is the identity transformation.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation reports whether m only translates.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// Transform returns a copy of the path with every point mapped
// through m. An affine map takes a curve's control polygon to the
// control polygon of the mapped curve, so curves transform exactly.
func (p *Path) Transform(m Matrix) *Path {
	result := New()
	result.verbs = append(result.verbs, p.verbs...)
	result.points = make([]float32, len(p.points))
	for i := 0; i+1 < len(p.points); i += 2 {
		x, y := m.Apply(p.points[i], p.points[i+1])
		result.points[i] = x
		result.points[i+1] = y
		result.bounds = result.bounds.unionPoint(x, y)
	}
	result.start.X, result.start.Y = m.Apply(p.start.X, p.start.Y)
	result.cursor.X, result.cursor.Y = m.Apply(p.cursor.X, p.cursor.Y)
	return result
}
