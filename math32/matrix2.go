// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix2 is a 2D affine transform, stored as the top two rows of a 3x3
// homogeneous matrix (the bottom row is always [0 0 1]):
//
//	[XX XY X0]
//	[YX YY Y0]
//
// A point (x,y) maps to (XX*x+XY*y+X0, YX*x+YY*y+Y0).
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns the identity transform.
func Identity2() Matrix2 {
	return Matrix2{XX: 1, YY: 1}
}

// Translate2D returns a transform that translates by (x, y).
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{XX: 1, YY: 1, X0: x, Y0: y}
}

// Scale2D returns a transform that scales by (sx, sy) about the origin.
func Scale2D(sx, sy float32) Matrix2 {
	return Matrix2{XX: sx, YY: sy}
}

// Rotate2D returns a transform that rotates by angle radians about the origin.
func Rotate2D(angle float32) Matrix2 {
	s, c := Sin(angle), Cos(angle)
	return Matrix2{XX: c, YX: s, XY: -s, YY: c}
}

// Skew2D returns a transform that skews by degX, degY degrees. The Y skew
// angle is negated relative to the naive formula to account for the
// coordinate system having Y pointing down.
func Skew2D(degX, degY float32) Matrix2 {
	rx, ry := DegToRad(degX), DegToRad(degY)
	return Matrix2{XX: 1, YY: 1, XY: tan(rx), YX: -tan(ry)}
}

func tan(x float32) float32 { return Sin(x) / Cos(x) }

// IsIdentity reports whether m is exactly the identity transform.
func (m Matrix2) IsIdentity() bool {
	return m == Identity2()
}

// Mul returns the composition m*o: applying the result to a point is the
// same as applying o first and then m (o is the "inner", m the "outer"
// transform). Chaining further ops onto the current transform is done as
// current = current.Mul(op), so op happens in the pre-existing local frame.
func (m Matrix2) Mul(o Matrix2) Matrix2 {
	return Matrix2{
		XX: m.XX*o.XX + m.XY*o.YX,
		YX: m.YX*o.XX + m.YY*o.YX,
		XY: m.XX*o.XY + m.XY*o.YY,
		YY: m.YX*o.XY + m.YY*o.YY,
		X0: m.XX*o.X0 + m.XY*o.Y0 + m.X0,
		Y0: m.YX*o.X0 + m.YY*o.Y0 + m.Y0,
	}
}

// MulPoint applies m to the point v, including translation.
func (m Matrix2) MulPoint(v Vector2) Vector2 {
	return Vector2{
		X: m.XX*v.X + m.XY*v.Y + m.X0,
		Y: m.YX*v.X + m.YY*v.Y + m.Y0,
	}
}

// MulVector2AsVector applies only the linear part of m to v (no
// translation); used for directions, normals and lengths rather than points.
func (m Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	return Vector2{
		X: m.XX*v.X + m.XY*v.Y,
		Y: m.YX*v.X + m.YY*v.Y,
	}
}

// Det returns the determinant of the linear part of m.
func (m Matrix2) Det() float32 {
	return m.XX*m.YY - m.XY*m.YX
}

// Inverse returns the inverse of m. If m is singular, the zero Matrix2 is
// returned (callers that cannot tolerate this should check Det first).
func (m Matrix2) Inverse() Matrix2 {
	det := m.Det()
	if det == 0 {
		return Matrix2{}
	}
	id := 1 / det
	inv := Matrix2{
		XX: m.YY * id,
		XY: -m.XY * id,
		YX: -m.YX * id,
		YY: m.XX * id,
	}
	inv.X0 = -(inv.XX*m.X0 + inv.XY*m.Y0)
	inv.Y0 = -(inv.YX*m.X0 + inv.YY*m.Y0)
	return inv
}

// ExtractRot returns the rotation angle (radians) implied by the linear
// part of m, assuming no skew.
func (m Matrix2) ExtractRot() float32 {
	return Atan2(m.YX, m.XX)
}

// ExtractScale returns the lengths of the transformed X and Y basis vectors,
// i.e. how much m scales along each axis (ignoring rotation/skew).
func (m Matrix2) ExtractScale() (sx, sy float32) {
	sx = Vec2(m.XX, m.YX).Length()
	sy = Vec2(m.XY, m.YY).Length()
	return
}
