// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitmap implements the pixel-storage contract the paint core
// demands of its back-ends: ARGB8 and A8 pixel buffers with resize,
// fill, blit and Android-style nine-patch detection, plus a monotonic
// instance ID for external texture-cache cooperation.
package bitmap

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"sync/atomic"

	ximgdraw "golang.org/x/image/draw"

	"github.com/dayllenger/beamui-sub004/colors"
)

// PixelFormat identifies a Bitmap's channel layout.
type PixelFormat int

const (
	Invalid PixelFormat = iota
	ARGB8
	A8
)

// Stride returns the bytes per pixel for f (0 for Invalid).
func (f PixelFormat) Stride() int {
	switch f {
	case ARGB8:
		return 4
	case A8:
		return 1
	default:
		return 0
	}
}

// idCounter is process-wide and the only piece of mutable global state in
// this package; bitmaps may be constructed from multiple goroutines so it
// is incremented atomically.
var idCounter atomic.Uint64

func allocID() uint64 {
	return idCounter.Add(1)
}

// Bitmap is a mutable pixel buffer in one of the accepted pixel formats,
// with optional nine-patch metadata.
type Bitmap struct {
	width, height int
	format        PixelFormat
	pix           []byte
	id            uint64
	ninePatch     *NinePatch
}

// New allocates a zeroed Bitmap of the given size and format.
func New(width, height int, format PixelFormat) *Bitmap {
	assertf(width >= 0 && height >= 0, "bitmap: negative size %dx%d", width, height)
	assertf(format == ARGB8 || format == A8, "bitmap: invalid pixel format %d", format)
	b := &Bitmap{
		width:  width,
		height: height,
		format: format,
		id:     allocID(),
	}
	b.pix = make([]byte, width*height*format.Stride())
	return b
}

// Width returns the bitmap's width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap's height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Format returns the bitmap's pixel format.
func (b *Bitmap) Format() PixelFormat { return b.format }

// Stride returns the bitmap's bytes-per-pixel (4 for ARGB8, 1 for A8).
func (b *Bitmap) Stride() int { return b.format.Stride() }

// ID returns the bitmap's current instance ID. It changes whenever
// Invalidate (or a destructive Resize) is called, so external texture
// caches can detect that cached content is stale.
func (b *Bitmap) ID() uint64 { return b.id }

// Invalidate reissues the bitmap's instance ID without touching its pixels.
func (b *Bitmap) Invalidate() { b.id = allocID() }

// IsEmpty reports whether the bitmap has no pixels at all.
func (b *Bitmap) IsEmpty() bool { return b.width <= 0 || b.height <= 0 }

// Bounds returns the bitmap's pixel rectangle, [0,0]-[width,height).
func (b *Bitmap) Bounds() image.Rectangle { return image.Rect(0, 0, b.width, b.height) }

// Resize destructively reallocates the bitmap to w x h, discarding its
// previous content and nine-patch metadata, and reissues its instance ID.
func (b *Bitmap) Resize(w, h int) {
	assertf(w >= 0 && h >= 0, "bitmap: negative size %dx%d", w, h)
	b.width, b.height = w, h
	b.pix = make([]byte, w*h*b.format.Stride())
	b.ninePatch = nil
	b.Invalidate()
}

func (b *Bitmap) ops() pixelOps {
	switch b.format {
	case ARGB8:
		return argb8Ops{}
	case A8:
		return a8Ops{}
	default:
		assertf(false, "bitmap: operation on invalid-format bitmap")
		return nil
	}
}

func (b *Bitmap) pixelIndex(x, y int) int {
	return (y*b.width + x) * b.format.Stride()
}

// Fill overwrites every pixel with c.
func (b *Bitmap) Fill(c colors.Color) {
	b.FillRect(b.Bounds(), c)
}

// FillRect overwrites the pixels in rect (clipped to the bitmap bounds)
// with c.
func (b *Bitmap) FillRect(rect image.Rectangle, c colors.Color) {
	rect = rect.Intersect(b.Bounds())
	if rect.Empty() {
		return
	}
	ops := b.ops()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			ops.setPixel(b.pix, b.pixelIndex(x, y), c)
		}
	}
}

// Blit copies srcRect of src into dstRect of b, clipping both rectangles
// to their respective bitmaps and nearest-neighbor rescaling if the
// (clipped) rectangles differ in size, via x/image/draw's NearestNeighbor
// scaler. src and b must share a pixel format. It returns false if
// nothing was copied (fully clipped away or format mismatch), and never
// partially succeeds otherwise.
func (b *Bitmap) Blit(src *Bitmap, srcRect, dstRect image.Rectangle) bool {
	if src.format != b.format {
		return false
	}
	srcRect = srcRect.Intersect(src.Bounds())
	dstRect = dstRect.Intersect(b.Bounds())
	if srcRect.Empty() || dstRect.Empty() {
		return false
	}

	ximgdraw.NearestNeighbor.Scale(bitmapImage{b}, dstRect, bitmapImage{src}, srcRect, ximgdraw.Src, nil)
	return true
}

// NinePatch records an Android-style stretchable-region hint detected
// from (or attached to) a bitmap's border: Frame marks the stretchable
// interior, Padding marks the content-safe interior, both measured in
// pixels inset from each of the four edges.
type NinePatch struct {
	FrameLeft, FrameTop, FrameRight, FrameBottom         int
	PaddingLeft, PaddingTop, PaddingRight, PaddingBottom int
}

// SetNinePatch attaches explicit nine-patch metadata to the bitmap.
func (b *Bitmap) SetNinePatch(np NinePatch) { b.ninePatch = &np }

// NinePatch returns the bitmap's nine-patch metadata, if any.
func (b *Bitmap) NinePatch() (NinePatch, bool) {
	if b.ninePatch == nil {
		return NinePatch{}, false
	}
	return *b.ninePatch, true
}

// blackMarkerTol is how close to fully opaque black a border pixel must
// be to count as a nine-patch stretch/padding marker.
const blackMarkerTol = 10

// DetectNinePatch scans the bitmap's 1-pixel border for opaque-black
// marker runs (the Android nine-patch convention: markers on the left
// and top edges mark the stretchable Frame, markers on the right and
// bottom edges mark the content-safe Padding) and, if any are found,
// records and returns the resulting NinePatch. It requires a bitmap of
// at least 3x3 so that a non-empty interior remains once the border is
// stripped.
func (b *Bitmap) DetectNinePatch() (NinePatch, bool) {
	if b.width < 3 || b.height < 3 {
		return NinePatch{}, false
	}
	ops := b.ops()
	isMarker := func(x, y int) bool { return ops.isBlackPixel(b.pix, b.pixelIndex(x, y)) }

	var np NinePatch
	found := false
	for x := 1; x < b.width-1; x++ {
		if isMarker(x, 0) {
			np.FrameLeft++
			found = true
		} else {
			break
		}
	}
	for x := b.width - 2; x >= 1; x-- {
		if isMarker(x, 0) {
			np.FrameRight++
			found = true
		} else {
			break
		}
	}
	for y := 1; y < b.height-1; y++ {
		if isMarker(0, y) {
			np.FrameTop++
			found = true
		} else {
			break
		}
	}
	for y := b.height - 2; y >= 1; y-- {
		if isMarker(0, y) {
			np.FrameBottom++
			found = true
		} else {
			break
		}
	}
	for x := 1; x < b.width-1; x++ {
		if isMarker(x, b.height-1) {
			np.PaddingLeft++
			found = true
		} else {
			break
		}
	}
	for x := b.width - 2; x >= 1; x-- {
		if isMarker(x, b.height-1) {
			np.PaddingRight++
			found = true
		} else {
			break
		}
	}
	for y := 1; y < b.height-1; y++ {
		if isMarker(b.width-1, y) {
			np.PaddingTop++
			found = true
		} else {
			break
		}
	}
	for y := b.height - 2; y >= 1; y-- {
		if isMarker(b.width-1, y) {
			np.PaddingBottom++
			found = true
		} else {
			break
		}
	}
	if !found {
		return NinePatch{}, false
	}
	b.SetNinePatch(np)
	return np, true
}

// pixelOps is the per-format capability set a Bitmap dispatches pixel
// reads/writes and marker detection through, so the storage and
// traversal logic above stays format-agnostic.
type pixelOps interface {
	setPixel(pix []byte, idx int, c colors.Color)
	getPixel(pix []byte, idx int) colors.Color
	isBlackPixel(pix []byte, idx int) bool
}

// argb8Ops operates on 4-byte-per-pixel buffers storing raw (non
// alpha-inverted) A,R,G,B bytes in that order.
type argb8Ops struct{}

func (argb8Ops) setPixel(pix []byte, idx int, c colors.Color) {
	pix[idx+0] = 255 - c.A
	pix[idx+1] = c.R
	pix[idx+2] = c.G
	pix[idx+3] = c.B
}

func (argb8Ops) getPixel(pix []byte, idx int) colors.Color {
	return colors.Color{A: 255 - pix[idx+0], R: pix[idx+1], G: pix[idx+2], B: pix[idx+3]}
}

func (argb8Ops) isBlackPixel(pix []byte, idx int) bool {
	a, r, g, b := pix[idx+0], pix[idx+1], pix[idx+2], pix[idx+3]
	return a > 255-blackMarkerTol && r < blackMarkerTol && g < blackMarkerTol && b < blackMarkerTol
}

// a8Ops operates on 1-byte-per-pixel buffers storing a color's ToGray
// luminance; a marker is a pixel with luminance below 5.
type a8Ops struct{}

func (a8Ops) setPixel(pix []byte, idx int, c colors.Color) {
	pix[idx] = c.ToGray()
}

func (a8Ops) getPixel(pix []byte, idx int) colors.Color {
	g := pix[idx]
	return colors.Color{R: g, G: g, B: g}
}

func (a8Ops) isBlackPixel(pix []byte, idx int) bool {
	return pix[idx] < 5
}

// Image returns a read-only image.Image view of the bitmap's current
// content, for handing off to code that expects the standard library's
// image model (encoders, golang.org/x/image/draw, etc).
func (b *Bitmap) Image() image.Image { return bitmapImage{b} }

type bitmapImage struct{ b *Bitmap }

func (im bitmapImage) ColorModel() stdcolor.Model { return stdcolor.NRGBAModel }
func (im bitmapImage) Bounds() image.Rectangle    { return im.b.Bounds() }

func (im bitmapImage) At(x, y int) stdcolor.Color {
	b := im.b
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return stdcolor.NRGBA{}
	}
	c := b.ops().getPixel(b.pix, b.pixelIndex(x, y))
	return c.StdColor()
}

// Set implements x/image/draw.Image, letting bitmapImage serve as Blit's
// destination for the NearestNeighbor scaler.
func (im bitmapImage) Set(x, y int, c stdcolor.Color) {
	b := im.b
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.ops().setPixel(b.pix, b.pixelIndex(x, y), colors.FromStdColor(c))
}

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
