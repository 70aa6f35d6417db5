// Package transform provides the affine transformation matrix that
// every path builder composes against: a single Q16.16 2x3 matrix,
// the way the window system's path state carries exactly one current
// transform with no generalized warp pipeline behind it.
package transform

import "github.com/twin-windows/twingo/internal/fixed"

// Matrix is a 2D affine transform stored as a 3x2 array of Fixed
// entries: rows 0 and 1 hold the linear part, row 2 the translation.
// A point is transformed as:
//
//	x' = x*m[0][0] + y*m[1][0] + m[2][0]
//	y' = x*m[0][1] + y*m[1][1] + m[2][1]
type Matrix struct {
	M [3][2]fixed.Fixed
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{M: [3][2]fixed.Fixed{
		{fixed.One, 0},
		{0, fixed.One},
		{0, 0},
	}}
}

// SetIdentity resets m in place to the identity transform.
func (m *Matrix) SetIdentity() {
	*m = Identity()
}

// Translate pre-composes a translation by (tx, ty): points are first
// translated, then mapped by the existing matrix.
func (m *Matrix) Translate(tx, ty fixed.Fixed) {
	m.M[2][0] += fixed.Mul(tx, m.M[0][0]) + fixed.Mul(ty, m.M[1][0])
	m.M[2][1] += fixed.Mul(tx, m.M[0][1]) + fixed.Mul(ty, m.M[1][1])
}

// Scale pre-composes a scale by (sx, sy).
func (m *Matrix) Scale(sx, sy fixed.Fixed) {
	m.M[0][0] = fixed.Mul(m.M[0][0], sx)
	m.M[0][1] = fixed.Mul(m.M[0][1], sx)
	m.M[1][0] = fixed.Mul(m.M[1][0], sy)
	m.M[1][1] = fixed.Mul(m.M[1][1], sy)
}

// Rotate pre-composes a rotation by angle a.
func (m *Matrix) Rotate(a fixed.Angle) {
	s, c := fixed.Sincos(a)
	m00 := fixed.Mul(c, m.M[0][0]) + fixed.Mul(s, m.M[1][0])
	m01 := fixed.Mul(c, m.M[0][1]) + fixed.Mul(s, m.M[1][1])
	m10 := fixed.Mul(-s, m.M[0][0]) + fixed.Mul(c, m.M[1][0])
	m11 := fixed.Mul(-s, m.M[0][1]) + fixed.Mul(c, m.M[1][1])
	m.M[0][0], m.M[0][1] = m00, m01
	m.M[1][0], m.M[1][1] = m10, m11
}

// TransformX maps (x, y) through m and returns the screen-space X
// coordinate, rounded to the nearest SFixed value.
func (m *Matrix) TransformX(x, y fixed.Fixed) fixed.SFixed {
	return fixed.ToSFixed(fixed.Mul(x, m.M[0][0]) + fixed.Mul(y, m.M[1][0]) + m.M[2][0])
}

// TransformY maps (x, y) through m and returns the screen-space Y
// coordinate, rounded to the nearest SFixed value.
func (m *Matrix) TransformY(x, y fixed.Fixed) fixed.SFixed {
	return fixed.ToSFixed(fixed.Mul(x, m.M[0][1]) + fixed.Mul(y, m.M[1][1]) + m.M[2][1])
}

// TransformDX maps a displacement (dx, dy) through m's linear part
// only, ignoring translation, and returns the X component.
func (m *Matrix) TransformDX(dx, dy fixed.Fixed) fixed.SFixed {
	return fixed.ToSFixed(fixed.Mul(dx, m.M[0][0]) + fixed.Mul(dy, m.M[1][0]))
}

// TransformDY maps a displacement through m's linear part only and
// returns the Y component.
func (m *Matrix) TransformDY(dx, dy fixed.Fixed) fixed.SFixed {
	return fixed.ToSFixed(fixed.Mul(dx, m.M[0][1]) + fixed.Mul(dy, m.M[1][1]))
}

// MaxRadius returns the sum of the absolute values of the linear
// part's entries: an upper bound on how far a unit vector can travel
// under this matrix, used to size arc subdivision.
func (m *Matrix) MaxRadius() fixed.Fixed {
	return m.M[0][0].Abs() + m.M[0][1].Abs() + m.M[1][0].Abs() + m.M[1][1].Abs()
}
