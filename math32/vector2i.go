// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector2i is a 2D point or vector with int32 components, used for pixel
// coordinates, clip rectangles and anything else intrinsically integral.
type Vector2i struct {
	X, Y int32
}

// Vec2i returns a new Vector2i with the given X, Y components.
func Vec2i(x, y int32) Vector2i { return Vector2i{X: x, Y: y} }

// Vector2iScalar returns a new Vector2i with both components set to s.
func Vector2iScalar(s int32) Vector2i { return Vector2i{X: s, Y: s} }

// Set sets the X and Y components.
func (v *Vector2i) Set(x, y int32) { v.X, v.Y = x, y }

// SetScalar sets both components to s.
func (v *Vector2i) SetScalar(s int32) { v.X, v.Y = s, s }

// SetZero sets both components to zero.
func (v *Vector2i) SetZero() { v.X, v.Y = 0, 0 }

// SetFromVector2 sets v from a float Vector2, truncating each component.
func (v *Vector2i) SetFromVector2(o Vector2) { v.X, v.Y = int32(o.X), int32(o.Y) }

// SetDim sets the given dimension to val.
func (v *Vector2i) SetDim(d Dims, val int32) {
	switch d {
	case X:
		v.X = val
	default:
		v.Y = val
	}
}

// Dim returns the value of the given dimension.
func (v Vector2i) Dim(d Dims) int32 {
	if d == X {
		return v.X
	}
	return v.Y
}

// FromSlice sets v from an int32 slice starting at the given index.
func (v *Vector2i) FromSlice(s []int32, idx int) { v.X, v.Y = s[idx], s[idx+1] }

// ToSlice writes v into an int32 slice starting at the given index.
func (v Vector2i) ToSlice(s []int32, idx int) { s[idx], s[idx+1] = v.X, v.Y }

// Add returns v+o.
func (v Vector2i) Add(o Vector2i) Vector2i { return Vector2i{v.X + o.X, v.Y + o.Y} }

// AddScalar returns v with s added to both components.
func (v Vector2i) AddScalar(s int32) Vector2i { return Vector2i{v.X + s, v.Y + s} }

// SetAdd sets v to v+o.
func (v *Vector2i) SetAdd(o Vector2i) { *v = v.Add(o) }

// SetAddScalar sets v to v+s (both components).
func (v *Vector2i) SetAddScalar(s int32) { *v = v.AddScalar(s) }

// Sub returns v-o.
func (v Vector2i) Sub(o Vector2i) Vector2i { return Vector2i{v.X - o.X, v.Y - o.Y} }

// SubScalar returns v with s subtracted from both components.
func (v Vector2i) SubScalar(s int32) Vector2i { return Vector2i{v.X - s, v.Y - s} }

// SetSub sets v to v-o.
func (v *Vector2i) SetSub(o Vector2i) { *v = v.Sub(o) }

// SetSubScalar sets v to v-s (both components).
func (v *Vector2i) SetSubScalar(s int32) { *v = v.SubScalar(s) }

// Mul returns the component-wise product v*o.
func (v Vector2i) Mul(o Vector2i) Vector2i { return Vector2i{v.X * o.X, v.Y * o.Y} }

// MulScalar returns v scaled by s.
func (v Vector2i) MulScalar(s int32) Vector2i { return Vector2i{v.X * s, v.Y * s} }

// SetMul sets v to the component-wise product v*o.
func (v *Vector2i) SetMul(o Vector2i) { *v = v.Mul(o) }

// SetMulScalar sets v to v scaled by s.
func (v *Vector2i) SetMulScalar(s int32) { *v = v.MulScalar(s) }

// Div returns the component-wise quotient v/o.
func (v Vector2i) Div(o Vector2i) Vector2i { return Vector2i{v.X / o.X, v.Y / o.Y} }

// DivScalar returns v scaled by 1/s.
func (v Vector2i) DivScalar(s int32) Vector2i { return Vector2i{v.X / s, v.Y / s} }

// SetDiv sets v to the component-wise quotient v/o.
func (v *Vector2i) SetDiv(o Vector2i) { *v = v.Div(o) }

// SetDivScalar sets v to v scaled by 1/s.
func (v *Vector2i) SetDivScalar(s int32) { *v = v.DivScalar(s) }

// Min returns the component-wise minimum of v and o.
func (v Vector2i) Min(o Vector2i) Vector2i {
	return Vector2i{MinI32(v.X, o.X), MinI32(v.Y, o.Y)}
}

// SetMin sets v to the component-wise minimum of v and o.
func (v *Vector2i) SetMin(o Vector2i) { *v = v.Min(o) }

// Max returns the component-wise maximum of v and o.
func (v Vector2i) Max(o Vector2i) Vector2i {
	return Vector2i{MaxI32(v.X, o.X), MaxI32(v.Y, o.Y)}
}

// SetMax sets v to the component-wise maximum of v and o.
func (v *Vector2i) SetMax(o Vector2i) { *v = v.Max(o) }

// Clamp clamps each component of v into [minv, maxv].
func (v *Vector2i) Clamp(minv, maxv Vector2i) {
	v.X = MaxI32(minv.X, MinI32(maxv.X, v.X))
	v.Y = MaxI32(minv.Y, MinI32(maxv.Y, v.Y))
}

// Negate returns -v.
func (v Vector2i) Negate() Vector2i { return Vector2i{-v.X, -v.Y} }

// MinI32 returns the smaller of a and b.
func MinI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// MaxI32 returns the larger of a and b.
func MaxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
