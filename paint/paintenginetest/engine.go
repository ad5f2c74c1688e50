// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paintenginetest supplies a recording paint.PaintEngine: it
// performs no rasterization, only logs every contract call (with
// arguments) to an assertable slice. It exists purely so Painter's own
// tests can exercise the full back-end contract without depending on a
// real rasterizer, in the same spirit as the teacher's RunTest helper
// that assembles a Painter and drives it end to end.
package paintenginetest

import (
	"github.com/dayllenger/beamui-sub004/bitmap"
	"github.com/dayllenger/beamui-sub004/colors"
	"github.com/dayllenger/beamui-sub004/math32"
	"github.com/dayllenger/beamui-sub004/paint"
	"github.com/dayllenger/beamui-sub004/paint/brush"
)

// Call records one PaintEngine contract invocation, in call order.
type Call struct {
	Name string
	Args []any
}

// Engine is a recording paint.PaintEngine.
type Engine struct {
	Calls []Call
}

func (e *Engine) record(name string, args ...any) {
	e.Calls = append(e.Calls, Call{Name: name, Args: args})
}

// Called reports whether name was invoked at least once, returning its
// first matching Call.
func (e *Engine) Called(name string) (Call, bool) {
	for _, c := range e.Calls {
		if c.Name == name {
			return c, true
		}
	}
	return Call{}, false
}

// CallCount returns how many times name was invoked.
func (e *Engine) CallCount(name string) int {
	n := 0
	for _, c := range e.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

func (e *Engine) Begin(state *paint.State, frame paint.FrameConfig) {
	e.record("Begin", state, frame)
}

func (e *Engine) End() { e.record("End") }

func (e *Engine) Paint() { e.record("Paint") }

func (e *Engine) BeginLayer(clip math32.Box2i, expand bool, op paint.LayerOp) {
	e.record("BeginLayer", clip, expand, op)
}

func (e *Engine) ComposeLayer() { e.record("ComposeLayer") }

func (e *Engine) ClipOut(stackDepth int, contours paint.Contours, rule paint.FillRule, complement bool) {
	e.record("ClipOut", stackDepth, contours, rule, complement)
}

func (e *Engine) Restore(stackDepth int) { e.record("Restore", stackDepth) }

func (e *Engine) PaintOut(b brush.Brush) { e.record("PaintOut", b) }

func (e *Engine) FillPath(contours paint.Contours, b brush.Brush, rule paint.FillRule) {
	e.record("FillPath", contours, b, rule)
}

func (e *Engine) StrokePath(contours paint.Contours, b brush.Brush, pen brush.Pen, hairline bool) {
	e.record("StrokePath", contours, b, pen, hairline)
}

func (e *Engine) DrawImage(bm *bitmap.Bitmap, pos math32.Vector2, opacity float32) {
	e.record("DrawImage", bm, pos, opacity)
}

func (e *Engine) DrawNinePatch(bm *bitmap.Bitmap, info paint.NinePatchInfo, opacity float32) {
	e.record("DrawNinePatch", bm, info, opacity)
}

func (e *Engine) DrawText(run paint.GlyphRun, color colors.Color) {
	e.record("DrawText", run, color)
}
