// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides the float32 vector, matrix and scalar math used
// throughout the paint core: a 2D point type, a 2x3 affine matrix, axis-
// aligned boxes, and small angle/rounding helpers for the flattener and
// arc code.
package math32

import "math"

// Useful constants, as float32.
const (
	Pi      = math.Pi
	Epsilon = 1e-6
)

// Abs returns the absolute value of x.
func Abs(x float32) float32 { return float32(math.Abs(float64(x))) }

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

// Sin returns the sine of x (radians).
func Sin(x float32) float32 { return float32(math.Sin(float64(x))) }

// Cos returns the cosine of x (radians).
func Cos(x float32) float32 { return float32(math.Cos(float64(x))) }

// Atan2 returns the arc tangent of y/x, using the signs to determine the quadrant.
func Atan2(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }

// Mod returns the floating-point remainder of x/y.
func Mod(x, y float32) float32 { return float32(math.Mod(float64(x), float64(y))) }

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 { return float32(math.Ceil(float64(x))) }

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 { return float32(math.Floor(float64(x))) }

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 { return float32(math.Round(float64(x))) }

// IsNaN reports whether x is an IEEE 754 "not-a-number" value.
func IsNaN(x float32) bool { return math.IsNaN(float64(x)) }

// DegToRad converts a number from degrees to radians.
func DegToRad(deg float32) float32 { return deg * Pi / 180 }

// RadToDeg converts a number from radians to degrees.
func RadToDeg(rad float32) float32 { return rad * 180 / Pi }

// Clamp clamps x to the range [minv, maxv].
func Clamp(x, minv, maxv float32) float32 {
	if x < minv {
		return minv
	}
	if x > maxv {
		return maxv
	}
	return x
}

// Min returns the smaller of a and b.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// MinI returns the smaller of a and b.
func MinI(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// MaxI returns the larger of a and b.
func MaxI(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// WrapMax wraps x into the range [0, maxv), used to normalize hue angles.
func WrapMax(x, maxv float32) float32 {
	return Mod(maxv+Mod(x, maxv), maxv)
}
