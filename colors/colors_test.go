// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOpaqueTransparent(t *testing.T) {
	assert.True(t, Black.IsOpaque())
	assert.False(t, Black.IsFullyTransparent())

	assert.True(t, Transparent.IsFullyTransparent())
	assert.False(t, Transparent.IsOpaque())

	half := Color{R: 1, G: 2, B: 3, A: 128}
	assert.False(t, half.IsOpaque())
	assert.False(t, half.IsFullyTransparent())
}

func TestPackedRoundTrip(t *testing.T) {
	c := Color{R: 0x11, G: 0x22, B: 0x33, A: 0x44}
	got := FromPacked(c.Packed())
	assert.Equal(t, c, got)
}

func TestToGray(t *testing.T) {
	assert.Equal(t, uint8(255), White.ToGray())
	assert.Equal(t, uint8(0), Black.ToGray())
	assert.Equal(t, uint8(128), Color{R: 128, G: 128, B: 128}.ToGray())
}

func TestHSLA(t *testing.T) {
	red := HSLA(0, 1, 0.5, 0)
	assert.Equal(t, uint8(255), red.R)
	assert.InDelta(t, 0, int(red.G), 2)
	assert.InDelta(t, 0, int(red.B), 2)

	gray := HSLA(0, 0, 0.5, 0)
	assert.InDelta(t, 128, int(gray.R), 2)
	assert.Equal(t, gray.R, gray.G)
	assert.Equal(t, gray.G, gray.B)
}

func TestBlendOpaqueSrcReplaces(t *testing.T) {
	dst := RGB(10, 20, 30)
	src := RGB(200, 150, 100)
	got := Blend(dst, src, 1)
	assert.Equal(t, src.R, got.R)
	assert.Equal(t, src.G, got.G)
	assert.Equal(t, src.B, got.B)
	assert.True(t, got.IsOpaque())
}

func TestBlendTransparentSrcKeepsDst(t *testing.T) {
	dst := RGB(10, 20, 30)
	src := Color{R: 200, G: 150, B: 100, A: 255}
	got := Blend(dst, src, 1)
	assert.Equal(t, dst, got)
}

func TestBlendZeroAlphaScaleKeepsDst(t *testing.T) {
	dst := RGB(10, 20, 30)
	src := RGB(200, 150, 100)
	got := Blend(dst, src, 0)
	assert.Equal(t, dst, got)
}

func TestMix(t *testing.T) {
	c1 := RGB(0, 0, 0)
	c2 := RGB(255, 255, 255)
	assert.Equal(t, c1, Mix(c1, c2, 0))
	assert.Equal(t, c2, Mix(c1, c2, 1))
	mid := Mix(c1, c2, 0.5)
	assert.InDelta(t, 127, int(mid.R), 2)
}

func TestStdColorBridgeRoundTrip(t *testing.T) {
	c := RGBA(10, 20, 30, 64) // inverted alpha: 255-64 = 191 normal
	std := c.StdColor()
	assert.Equal(t, uint8(191), std.A)

	back := FromStdColor(std)
	assert.Equal(t, c.A, back.A)
	assert.InDelta(t, int(c.R), int(back.R), 1)
	assert.InDelta(t, int(c.G), int(back.G), 1)
	assert.InDelta(t, int(c.B), int(back.B), 1)
}

func TestFromStdColorFullyTransparent(t *testing.T) {
	got := FromStdColor(colorNRGBAZero{})
	assert.True(t, got.IsFullyTransparent())
}

type colorNRGBAZero struct{}

func (colorNRGBAZero) RGBA() (r, g, b, a uint32) { return 0, 0, 0, 0 }
