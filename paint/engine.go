// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"github.com/dayllenger/beamui-sub004/bitmap"
	"github.com/dayllenger/beamui-sub004/colors"
	"github.com/dayllenger/beamui-sub004/math32"
	"github.com/dayllenger/beamui-sub004/paint/brush"
	"github.com/dayllenger/beamui-sub004/paint/ppath"
)

// FillRule selects how a path's self-intersections determine interior
// pixels.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// FrameConfig validates and bundles BeginFrame's parameters.
type FrameConfig struct {
	Width, Height int
	Scaling       float32
}

// maxDim is the dimension limit on canvas size and transformed geometry.
const maxDim = 1 << 14

func (c FrameConfig) valid() bool {
	return c.Width > 0 && c.Width < maxDim && c.Height > 0 && c.Height < maxDim && c.Scaling > 0
}

// ContourBox pairs one subpath with its screen-space clipped bounds, ready
// for the engine to rasterize.
type ContourBox struct {
	Subpath ppath.Subpath
	Screen  math32.Box2i
}

// Contours is the bundle Painter hands to PaintEngine for a fill, stroke,
// or clip operation: per-subpath clipped boxes plus aggregate bounds in
// both local and screen space. A zero-value Contours (nil List) is falsy;
// callers check Empty() and skip cheaply.
type Contours struct {
	List     []ContourBox
	Bounds   math32.Box2
	ScreenBounds math32.Box2i
}

// Empty reports whether there is nothing visible to draw.
func (c Contours) Empty() bool { return len(c.List) == 0 }

// NinePatchInfo is the 12-anchor (4x4) grid a nine-patch draw resolves to,
// in source and destination space, after collapsing any inverted middle
// slices to their midpoint.
type NinePatchInfo struct {
	SrcX, SrcY [4]float32
	DstX, DstY [4]float32
}

// PaintEngine is the back-end contract the Painter drives. A back-end
// receives a pointer to the Painter's current State at Begin and may
// read, but must not retain or mutate, it afterwards.
type PaintEngine interface {
	Begin(state *State, frame FrameConfig)
	End()
	Paint()

	BeginLayer(clip math32.Box2i, expand bool, op LayerOp)
	ComposeLayer()

	ClipOut(stackDepth int, contours Contours, rule FillRule, complement bool)
	Restore(stackDepth int)

	PaintOut(b brush.Brush)
	FillPath(contours Contours, b brush.Brush, rule FillRule)
	StrokePath(contours Contours, b brush.Brush, pen brush.Pen, hairline bool)

	DrawImage(bm *bitmap.Bitmap, pos math32.Vector2, opacity float32)
	DrawNinePatch(bm *bitmap.Bitmap, info NinePatchInfo, opacity float32)
	DrawText(run GlyphRun, color colors.Color)
}
