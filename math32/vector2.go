// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// Dims are the X and Y dimensions.
type Dims int32

const (
	X Dims = iota
	Y
)

// Vector2 is a 2D point or vector, with X and Y float32 components.
type Vector2 struct {
	X, Y float32
}

// Vec2 returns a new Vector2 with the given X, Y components.
func Vec2(x, y float32) Vector2 { return Vector2{X: x, Y: y} }

// Vector2Scalar returns a new Vector2 with both components set to s.
func Vector2Scalar(s float32) Vector2 { return Vector2{X: s, Y: s} }

// Vector2FromPoint returns a new Vector2 from an image.Point.
func Vector2FromPoint(p image.Point) Vector2 { return Vector2{X: float32(p.X), Y: float32(p.Y)} }

// Vector2FromFixed returns a new Vector2 from a fixed.Point26_6.
func Vector2FromFixed(p fixed.Point26_6) Vector2 {
	return Vector2{X: float32(p.X) / 64, Y: float32(p.Y) / 64}
}

// Set sets the X and Y components.
func (v *Vector2) Set(x, y float32) { v.X, v.Y = x, y }

// SetScalar sets both components to s.
func (v *Vector2) SetScalar(s float32) { v.X, v.Y = s, s }

// SetZero sets both components to zero.
func (v *Vector2) SetZero() { v.X, v.Y = 0, 0 }

// SetFromVector2i sets v from an int32 Vector2i.
func (v *Vector2) SetFromVector2i(o Vector2i) { v.X, v.Y = float32(o.X), float32(o.Y) }

// SetDim sets the given dimension to val.
func (v *Vector2) SetDim(d Dims, val float32) {
	switch d {
	case X:
		v.X = val
	default:
		v.Y = val
	}
}

// Dim returns the value of the given dimension.
func (v Vector2) Dim(d Dims) float32 {
	if d == X {
		return v.X
	}
	return v.Y
}

// SetPointDim sets the given dimension of an image.Point.
func SetPointDim(p *image.Point, d Dims, val int) {
	switch d {
	case X:
		p.X = val
	default:
		p.Y = val
	}
}

// PointDim returns the given dimension of an image.Point.
func PointDim(p image.Point, d Dims) int {
	if d == X {
		return p.X
	}
	return p.Y
}

// AddDim returns v with d incremented by val.
func (v Vector2) AddDim(d Dims, val float32) Vector2 {
	r := v
	r.SetDim(d, r.Dim(d)+val)
	return r
}

// SubDim returns v with d decremented by val.
func (v Vector2) SubDim(d Dims, val float32) Vector2 {
	r := v
	r.SetDim(d, r.Dim(d)-val)
	return r
}

// MulDim returns v with d multiplied by val.
func (v Vector2) MulDim(d Dims, val float32) Vector2 {
	r := v
	r.SetDim(d, r.Dim(d)*val)
	return r
}

// DivDim returns v with d divided by val.
func (v Vector2) DivDim(d Dims, val float32) Vector2 {
	r := v
	r.SetDim(d, r.Dim(d)/val)
	return r
}

// Add returns v+o.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

// AddScalar returns v with s added to both components.
func (v Vector2) AddScalar(s float32) Vector2 { return Vector2{v.X + s, v.Y + s} }

// Sub returns v-o.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

// SubScalar returns v with s subtracted from both components.
func (v Vector2) SubScalar(s float32) Vector2 { return Vector2{v.X - s, v.Y - s} }

// Mul returns the component-wise product v*o.
func (v Vector2) Mul(o Vector2) Vector2 { return Vector2{v.X * o.X, v.Y * o.Y} }

// MulScalar returns v scaled by s.
func (v Vector2) MulScalar(s float32) Vector2 { return Vector2{v.X * s, v.Y * s} }

// Div returns the component-wise quotient v/o.
func (v Vector2) Div(o Vector2) Vector2 { return Vector2{v.X / o.X, v.Y / o.Y} }

// DivScalar returns v scaled by 1/s.
func (v Vector2) DivScalar(s float32) Vector2 { return Vector2{v.X / s, v.Y / s} }

// SetAdd sets v to v+o.
func (v *Vector2) SetAdd(o Vector2) { *v = v.Add(o) }

// SetSub sets v to v-o.
func (v *Vector2) SetSub(o Vector2) { *v = v.Sub(o) }

// SetMul sets v to the component-wise product v*o.
func (v *Vector2) SetMul(o Vector2) { *v = v.Mul(o) }

// SetDiv sets v to the component-wise quotient v/o.
func (v *Vector2) SetDiv(o Vector2) { *v = v.Div(o) }

// Negate returns -v.
func (v Vector2) Negate() Vector2 { return Vector2{-v.X, -v.Y} }

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float32 { return v.X*o.X + v.Y*o.Y }

// Length returns the Euclidean length of v.
func (v Vector2) Length() float32 { return Sqrt(v.Dot(v)) }

// LengthSquared returns the squared Euclidean length of v.
func (v Vector2) LengthSquared() float32 { return v.Dot(v) }

// Normal returns a unit vector in the direction of v (zero if v is zero).
func (v Vector2) Normal() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return v.DivScalar(l)
}

// Rot90CCW returns v rotated 90 degrees counter-clockwise in a Y-up frame,
// (x, y) -> (-y, x); on a Y-down screen this turns clockwise.
func (v Vector2) Rot90CCW() Vector2 { return Vector2{-v.Y, v.X} }

// Rot90CW returns v rotated 90 degrees clockwise in a Y-up frame,
// (x, y) -> (y, -x); on a Y-down screen this turns counter-clockwise.
func (v Vector2) Rot90CW() Vector2 { return Vector2{v.Y, -v.X} }

// Rot returns v rotated by angle radians about the given origin.
func (v Vector2) Rot(angle float32, origin Vector2) Vector2 {
	s, c := Sin(angle), Cos(angle)
	d := v.Sub(origin)
	return Vector2{origin.X + d.X*c - d.Y*s, origin.Y + d.X*s + d.Y*c}
}

// Min returns the component-wise minimum of v and o.
func (v Vector2) Min(o Vector2) Vector2 { return Vector2{Min(v.X, o.X), Min(v.Y, o.Y)} }

// Max returns the component-wise maximum of v and o.
func (v Vector2) Max(o Vector2) Vector2 { return Vector2{Max(v.X, o.X), Max(v.Y, o.Y)} }

// ToCeil returns v with both components rounded up.
func (v Vector2) ToCeil() Vector2 { return Vector2{Ceil(v.X), Ceil(v.Y)} }

// ToFloor returns v with both components rounded down.
func (v Vector2) ToFloor() Vector2 { return Vector2{Floor(v.X), Floor(v.Y)} }

// ToRound returns v with both components rounded to nearest.
func (v Vector2) ToRound() Vector2 { return Vector2{Round(v.X), Round(v.Y)} }

// ToPoint returns v truncated to an image.Point.
func (v Vector2) ToPoint() image.Point { return image.Pt(int(v.X), int(v.Y)) }

// ToPointCeil returns v rounded up to an image.Point.
func (v Vector2) ToPointCeil() image.Point { p := v.ToCeil(); return image.Pt(int(p.X), int(p.Y)) }

// ToPointFloor returns v rounded down to an image.Point.
func (v Vector2) ToPointFloor() image.Point { p := v.ToFloor(); return image.Pt(int(p.X), int(p.Y)) }

// ToPointRound returns v rounded to nearest as an image.Point.
func (v Vector2) ToPointRound() image.Point { p := v.ToRound(); return image.Pt(int(p.X), int(p.Y)) }

// ToFixed returns v as a fixed.Point26_6.
func (v Vector2) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(v.X * 64), Y: fixed.Int26_6(v.Y * 64)}
}

// RectFromPosSizeMax returns an image.Rectangle from pos and size, flooring
// the min corner and rounding the max corner (pos+size) to nearest.
func RectFromPosSizeMax(pos, size Vector2) image.Rectangle {
	max := pos.Add(size)
	return image.Rectangle{Min: pos.ToPointFloor(), Max: max.ToPointRound()}
}

// RectFromPosSizeMin returns an image.Rectangle from pos and size, ceiling
// the min corner and rounding the max corner (pos+size) to nearest.
func RectFromPosSizeMin(pos, size Vector2) image.Rectangle {
	max := pos.Add(size)
	return image.Rectangle{Min: pos.ToPointCeil(), Max: max.ToPointRound()}
}

// FromSlice sets v from a float32 slice starting at the given index.
func (v *Vector2) FromSlice(s []float32, idx int) {
	v.X, v.Y = s[idx], s[idx+1]
}

// ToSlice writes v into a float32 slice starting at the given index.
func (v Vector2) ToSlice(s []float32, idx int) {
	s[idx], s[idx+1] = v.X, v.Y
}

// IsApprox reports whether v and o are equal within the given tolerance.
func (v Vector2) IsApprox(o Vector2, tol float32) bool {
	return Abs(v.X-o.X) <= tol && Abs(v.Y-o.Y) <= tol
}
