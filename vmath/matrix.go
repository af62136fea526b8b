package vmath

import "math"

// Mat2D is a 2x3 affine transform laid out as
//
//	| A C Tx |
//	| B D Ty |
//
// so that a point p maps to (A*x + C*y + Tx, B*x + D*y + Ty).
type Mat2D struct {
	A, B, C, D, Tx, Ty float64
}

// Identity returns the identity transform.
func Identity() Mat2D {
	return Mat2D{A: 1, D: 1}
}

// FromRotation returns a counter-clockwise rotation by rad.
func FromRotation(rad float64) Mat2D {
	s, c := math.Sincos(rad)
	return Mat2D{A: c, B: s, C: -s, D: c}
}

// FromTranslation returns a translation by v.
func FromTranslation(v Vec2) Mat2D {
	return Mat2D{A: 1, D: 1, Tx: v.X, Ty: v.Y}
}

// Multiply returns m * n, which applies n first and then m.
func (m Mat2D) Multiply(n Mat2D) Mat2D {
	return Mat2D{
		A:  m.A*n.A + m.C*n.B,
		B:  m.B*n.A + m.D*n.B,
		C:  m.A*n.C + m.C*n.D,
		D:  m.B*n.C + m.D*n.D,
		Tx: m.A*n.Tx + m.C*n.Ty + m.Tx,
		Ty: m.B*n.Tx + m.D*n.Ty + m.Ty,
	}
}

// Determinant returns the determinant of the linear part.
func (m Mat2D) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse transform. ok is false for singular matrices.
func (m Mat2D) Invert() (inv Mat2D, ok bool) {
	det := m.Determinant()
	if det == 0 {
		return Mat2D{}, false
	}
	d := 1 / det
	return Mat2D{
		A:  m.D * d,
		B:  -m.B * d,
		C:  -m.C * d,
		D:  m.A * d,
		Tx: (m.C*m.Ty - m.D*m.Tx) * d,
		Ty: (m.B*m.Tx - m.A*m.Ty) * d,
	}, true
}

// TransformPoint applies m to p.
func (m Mat2D) TransformPoint(p Vec2) Vec2 {
	return Vec2{
		X: m.A*p.X + m.C*p.Y + m.Tx,
		Y: m.B*p.X + m.D*p.Y + m.Ty,
	}
}

// TransformPointInto applies m to p and stores the result in out.
func TransformPointInto(out *Vec2, m Mat2D, p Vec2) *Vec2 {
	*out = m.TransformPoint(p)
	return out
}
