// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitmap

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dayllenger/beamui-sub004/colors"
)

func TestNewAndBasics(t *testing.T) {
	b := New(4, 3, ARGB8)
	assert.Equal(t, 4, b.Width())
	assert.Equal(t, 3, b.Height())
	assert.Equal(t, 4, b.Stride())
	assert.False(t, b.IsEmpty())
	assert.NotZero(t, b.ID())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, New(0, 5, ARGB8).IsEmpty())
	assert.True(t, New(5, 0, A8).IsEmpty())
	assert.False(t, New(1, 1, ARGB8).IsEmpty())
}

func TestInvalidateChangesID(t *testing.T) {
	b := New(2, 2, ARGB8)
	id1 := b.ID()
	b.Invalidate()
	assert.NotEqual(t, id1, b.ID())
}

func TestResizeIsDestructiveAndInvalidates(t *testing.T) {
	b := New(2, 2, ARGB8)
	b.Fill(colors.RGB(255, 0, 0))
	id1 := b.ID()
	b.Resize(5, 5)
	assert.Equal(t, 5, b.Width())
	assert.Equal(t, 5, b.Height())
	assert.NotEqual(t, id1, b.ID())
	c := b.ops().getPixel(b.pix, b.pixelIndex(0, 0))
	assert.Equal(t, colors.Color{A: 255}, c)
}

func TestFillAndReadBack(t *testing.T) {
	b := New(3, 3, ARGB8)
	red := colors.RGB(255, 0, 0)
	b.Fill(red)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			got := b.ops().getPixel(b.pix, b.pixelIndex(x, y))
			assert.Equal(t, red, got)
		}
	}
}

func TestFillRectClips(t *testing.T) {
	b := New(4, 4, ARGB8)
	red := colors.RGB(255, 0, 0)
	b.FillRect(image.Rect(-2, -2, 2, 2), red)
	assert.Equal(t, red, b.ops().getPixel(b.pix, b.pixelIndex(0, 0)))
	assert.Equal(t, red, b.ops().getPixel(b.pix, b.pixelIndex(1, 1)))
	assert.Equal(t, colors.Color{A: 255}, b.ops().getPixel(b.pix, b.pixelIndex(2, 2)))
}

func TestBlitSameSize(t *testing.T) {
	src := New(2, 2, ARGB8)
	red := colors.RGB(255, 0, 0)
	src.Fill(red)
	dst := New(4, 4, ARGB8)
	ok := dst.Blit(src, image.Rect(0, 0, 2, 2), image.Rect(1, 1, 3, 3))
	assert.True(t, ok)
	assert.Equal(t, red, dst.ops().getPixel(dst.pix, dst.pixelIndex(1, 1)))
	assert.Equal(t, red, dst.ops().getPixel(dst.pix, dst.pixelIndex(2, 2)))
	assert.Equal(t, colors.Color{A: 255}, dst.ops().getPixel(dst.pix, dst.pixelIndex(0, 0)))
}

func TestBlitRescales(t *testing.T) {
	src := New(1, 1, ARGB8)
	blue := colors.RGB(0, 0, 255)
	src.Fill(blue)
	dst := New(4, 4, ARGB8)
	ok := dst.Blit(src, image.Rect(0, 0, 1, 1), image.Rect(0, 0, 4, 4))
	assert.True(t, ok)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, blue, dst.ops().getPixel(dst.pix, dst.pixelIndex(x, y)))
		}
	}
}

func TestBlitFormatMismatchFails(t *testing.T) {
	src := New(2, 2, A8)
	dst := New(2, 2, ARGB8)
	ok := dst.Blit(src, image.Rect(0, 0, 2, 2), image.Rect(0, 0, 2, 2))
	assert.False(t, ok)
}

func TestBlitFullyClippedFails(t *testing.T) {
	src := New(2, 2, ARGB8)
	dst := New(2, 2, ARGB8)
	ok := dst.Blit(src, image.Rect(10, 10, 12, 12), image.Rect(0, 0, 2, 2))
	assert.False(t, ok)
}

// S7: a 7x7 ARGB8 bitmap with one-pixel opaque-black marker runs on all
// four border edges detects as a nine-patch with 2px frame and padding
// on every side.
func TestDetectNinePatchSevenBySeven(t *testing.T) {
	b := New(7, 7, ARGB8)
	black := colors.Color{}
	for x := 2; x <= 4; x++ {
		b.FillRect(image.Rect(x, 0, x+1, 1), black)
		b.FillRect(image.Rect(x, 6, x+1, 7), black)
	}
	for y := 2; y <= 4; y++ {
		b.FillRect(image.Rect(0, y, 1, y+1), black)
		b.FillRect(image.Rect(6, y, 7, y+1), black)
	}

	np, ok := b.DetectNinePatch()
	assert.True(t, ok)
	assert.Equal(t, NinePatch{
		FrameLeft: 2, FrameTop: 2, FrameRight: 2, FrameBottom: 2,
		PaddingLeft: 2, PaddingTop: 2, PaddingRight: 2, PaddingBottom: 2,
	}, np)

	stored, has := b.NinePatch()
	assert.True(t, has)
	assert.Equal(t, np, stored)
}

func TestDetectNinePatchTooSmallRejected(t *testing.T) {
	b := New(2, 2, ARGB8)
	_, ok := b.DetectNinePatch()
	assert.False(t, ok)
}

func TestDetectNinePatchNoMarkersFound(t *testing.T) {
	b := New(5, 5, ARGB8)
	b.Fill(colors.RGB(255, 255, 255))
	_, ok := b.DetectNinePatch()
	assert.False(t, ok)
}

func TestDetectNinePatchA8(t *testing.T) {
	b := New(5, 5, A8)
	black := colors.Color{}
	b.FillRect(image.Rect(1, 0, 4, 1), black)
	np, ok := b.DetectNinePatch()
	assert.True(t, ok)
	assert.Equal(t, 3, np.FrameLeft)
}

func TestImageBridgeReflectsContent(t *testing.T) {
	b := New(2, 2, ARGB8)
	red := colors.RGB(255, 0, 0)
	b.Fill(red)
	img := b.Image()
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	r, g, bl, a := img.At(0, 0).RGBA()
	assert.NotZero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, bl)
	assert.NotZero(t, a)
}
