// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors implements the ARGB8 color type used throughout the
// paint core, with its inverted-alpha convention (a==0 is fully opaque,
// a==255 is fully transparent), blending and a bridge to image/color.
package colors

import (
	"image/color"

	"github.com/dayllenger/beamui-sub004/math32"
)

// Color is a 4x8-bit ARGB color. Unlike image/color.RGBA, alpha is
// inverted: A==0 is fully opaque and A==255 is fully transparent. This
// matches the convention of the windowing back-ends this package targets,
// where 0 is the common "no transparency" case and should therefore be
// the zero value.
type Color struct {
	R, G, B, A uint8
}

// Black is a fully opaque black.
var Black = Color{0, 0, 0, 0}

// White is a fully opaque white.
var White = Color{255, 255, 255, 0}

// Transparent is a fully transparent color (all channels irrelevant).
var Transparent = Color{0, 0, 0, 255}

// RGB returns a fully opaque color with the given channels.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0} }

// RGBA returns a color with the given channels, where a follows this
// package's inverted convention (0 opaque, 255 transparent).
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// IsOpaque reports whether c is fully opaque.
func (c Color) IsOpaque() bool { return c.A == 0 }

// IsFullyTransparent reports whether c is fully transparent.
func (c Color) IsFullyTransparent() bool { return c.A == 255 }

// Packed returns c packed into a single 32-bit word, in 0xAARRGGBB order.
func (c Color) Packed() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// FromPacked unpacks a 0xAARRGGBB word into a Color.
func FromPacked(p uint32) Color {
	return Color{
		A: uint8(p >> 24),
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
	}
}

// ToGray returns the 1-byte grayscale projection of c, (r + 2g + b) / 4.
func (c Color) ToGray() uint8 {
	return uint8((uint16(c.R) + 2*uint16(c.G) + uint16(c.B)) / 4)
}

// HSLA constructs a Color from hue (degrees, any range, wrapped),
// saturation and lightness (each clamped to [0,1]), and alpha in this package's inverted
// convention (0 opaque, 255 transparent).
func HSLA(h, s, l float32, a uint8) Color {
	h = math32.WrapMax(h, 360)
	s = math32.Clamp(s, 0, 1)
	l = math32.Clamp(l, 0, 1)

	c := (1 - math32.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math32.Abs(math32.Mod(hp, 2)-1))

	var r1, g1, b1 float32
	switch {
	case hp < 1:
		r1, g1, b1 = c, x, 0
	case hp < 2:
		r1, g1, b1 = x, c, 0
	case hp < 3:
		r1, g1, b1 = 0, c, x
	case hp < 4:
		r1, g1, b1 = 0, x, c
	case hp < 5:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}
	m := l - c/2
	return Color{
		R: to8(r1 + m),
		G: to8(g1 + m),
		B: to8(b1 + m),
		A: a,
	}
}

func to8(x float32) uint8 {
	return uint8(math32.Clamp(x*255+0.5, 0, 255))
}

// Blend blends src "on top of" dst using the standard alpha-compositing
// "over" operator, honoring the inverted-alpha convention (higher A is
// more transparent). alpha in [0,1] additionally scales src's own opacity
// before compositing (1 uses src's native alpha unmodified).
func Blend(dst, src Color, alpha float32) Color {
	sa := (1 - float32(src.A)/255) * math32.Clamp(alpha, 0, 1)
	da := 1 - float32(dst.A)/255

	outA := sa + da*(1-sa)
	if outA <= 0 {
		return Color{A: 255}
	}
	return Color{
		R: blendChannel(dst.R, da, src.R, sa, outA),
		G: blendChannel(dst.G, da, src.G, sa, outA),
		B: blendChannel(dst.B, da, src.B, sa, outA),
		A: to8(1 - outA),
	}
}

func blendChannel(dstC uint8, da float32, srcC uint8, sa, outA float32) uint8 {
	c := (float32(srcC)*sa + float32(dstC)*da*(1-sa)) / outA
	return uint8(math32.Clamp(c+0.5, 0, 255))
}

// Mix linearly interpolates between c1 and c2: t==0 returns c1, t==1
// returns c2, every channel including the (inverted) alpha is blended.
func Mix(c1, c2 Color, t float32) Color {
	t = math32.Clamp(t, 0, 1)
	u := 1 - t
	return Color{
		R: mix8(c1.R, c2.R, u, t),
		G: mix8(c1.G, c2.G, u, t),
		B: mix8(c1.B, c2.B, u, t),
		A: mix8(c1.A, c2.A, u, t),
	}
}

func mix8(a, b uint8, wa, wb float32) uint8 {
	return uint8(math32.Clamp(float32(a)*wa+float32(b)*wb+0.5, 0, 255))
}

// StdColor converts c to a standard, normal-alpha image/color.NRGBA, for use
// strictly at I/O boundaries (encoders, collaborator back-ends).
func (c Color) StdColor() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255 - c.A}
}

// FromStdColor converts a standard image/color.Color (normal alpha) into
// this package's inverted-alpha Color.
func FromStdColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	// a is alpha-premultiplied and 16-bit; un-premultiply and narrow to 8-bit.
	if a == 0 {
		return Color{A: 255}
	}
	r = r * 0xffff / a
	g = g * 0xffff / a
	b = b * 0xffff / a
	return Color{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(255 - a>>8),
	}
}
