// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint implements the retained-state, immediate-mode 2D vector
// graphics front-end: Painter records drawing intent under a current
// transform, clip, and layer stack, and delegates rasterization to a
// pluggable PaintEngine back-end.
package paint

import (
	"github.com/dayllenger/beamui-sub004/bitmap"
	"github.com/dayllenger/beamui-sub004/colors"
	"github.com/dayllenger/beamui-sub004/math32"
	"github.com/dayllenger/beamui-sub004/paint/brush"
	"github.com/dayllenger/beamui-sub004/paint/ppath"
)

// opacityZeroTol and scaleMatchTol bound the "approximately zero" /
// "approximately equal" fuzz used by opacity short-circuits and the
// scaled-stroke hairline classification.
const (
	opacityZeroTol = 1e-4
	scaleMatchTol  = 1e-4
)

// Painter is the front-end 2D drawing API. It owns a stack of States and a
// scratch Contours buffer, reused across frames without per-call
// allocation, and drives a PaintEngine back-end.
type Painter struct {
	Engine PaintEngine

	states  []State
	scratch []ContourBox
	active  bool
}

// NewPainter returns a Painter driving the given back-end.
func NewPainter(engine PaintEngine) *Painter {
	return &Painter{Engine: engine}
}

func (p *Painter) cur() *State { return &p.states[len(p.states)-1] }

func (p *Painter) depth() int { return len(p.states) - 1 }

func (p *Painter) requireActive() {
	assertf(p.active, "paint: operation called outside BeginFrame/EndFrame")
}

// engineActive reports whether a frame is active, for the operations that
// forward to PaintEngine. Unlike requireActive, it does not panic: a draw
// or clip call reaching the back-end outside Begin/EndFrame (e.g. a
// widget that kept a Painter reference and drew after its frame ended) is
// a recoverable engine-contract violation, logged and dropped rather than
// crashing the caller.
func (p *Painter) engineActive(op string) bool {
	if !p.active {
		warnf("paint: %s called outside an active frame, ignoring", op)
		return false
	}
	return true
}

// BeginFrame starts a new frame: it resets the state stack to a single
// root state (AA on, identity transform, clip set to the full canvas) and
// informs the engine.
func (p *Painter) BeginFrame(cfg FrameConfig) {
	assertf(!p.active, "paint: BeginFrame called while a frame is already active")
	assertf(cfg.valid(), "paint: invalid frame config %+v", cfg)
	clip := math32.B2i(0, 0, int32(cfg.Width), int32(cfg.Height))
	p.states = append(p.states[:0], rootState(clip))
	p.active = true
	p.Engine.Begin(p.cur(), cfg)
}

// EndFrame restores any states left on the stack (composing any opened
// layers), flushes the engine, and marks the frame inactive.
func (p *Painter) EndFrame() {
	p.requireActive()
	p.restoreTo(1)
	p.active = false
	p.Engine.End()
	p.Engine.Paint()
}

// restoreTo pops states until exactly depth remain, telling the engine to
// unwind its own per-depth clip bookkeeping and composing any popped
// layer.
func (p *Painter) restoreTo(depth int) {
	for len(p.states) > depth {
		top := p.states[len(p.states)-1]
		p.states = p.states[:len(p.states)-1]
		p.Engine.Restore(len(p.states) - 1)
		if top.Layer {
			p.Engine.ComposeLayer()
		}
	}
}

// PaintSaver is a scope guard for a pushed Painter state: callers
// `defer saver.Release()` immediately after Save/BeginLayer. Release pops
// the main stack back down to the depth recorded at push time, composing
// a layer if one was opened. Double-release is a programmer bug and
// panics; releasing an outer saver while an inner one is still alive is
// undefined — callers must nest lexically.
type PaintSaver struct {
	p        *Painter
	depth    int
	released bool
}

// Release restores the painter to the state recorded when the saver was
// created.
func (s *PaintSaver) Release() {
	assertf(!s.released, "paint: saver double-released")
	s.released = true
	s.p.restoreTo(s.depth)
}

// Save pushes a copy of the current state onto the main stack.
func (p *Painter) Save() *PaintSaver {
	p.requireActive()
	depth := len(p.states)
	cp := *p.cur()
	p.states = append(p.states, cp)
	return &PaintSaver{p: p, depth: depth}
}

// BeginLayer pushes a layer state: the clip origin becomes (0, 0) for
// subsequent drawing, passTransparent is set for composite modes that
// care about transparent source fragments, and the state is discarded
// outright when opacity is approximately zero and transparency does not
// matter.
func (p *Painter) BeginLayer(opacity float32, op LayerOp) *PaintSaver {
	p.requireActive()
	parent := *p.cur()
	depth := len(p.states)

	layer := parent
	layer.Layer = true
	origin := math32.Vec2(float32(parent.Clip.Min.X), float32(parent.Clip.Min.Y))
	size := parent.Clip.Size()
	layer.Clip = math32.B2i(0, 0, size.X, size.Y)
	layer.Transform = math32.Translate2D(-origin.X, -origin.Y).Mul(parent.Transform)
	layer.PassTransparent = op.Composite.transparentMatters()
	if !layer.PassTransparent && math32.Abs(opacity) <= opacityZeroTol {
		layer.Discard = true
	}

	p.states = append(p.states, layer)
	p.Engine.BeginLayer(layer.Clip, true, LayerOp{Opacity: opacity, Composite: op.Composite, Blend: op.Blend})
	return &PaintSaver{p: p, depth: depth}
}

// isPureTranslation reports whether m has no rotation, scale, or skew
// component, detected by checking that its linear part is exactly the 2x2
// identity.
func isPureTranslation(m math32.Matrix2) bool {
	return m.XX == 1 && m.YY == 1 && m.XY == 0 && m.YX == 0
}

func transformCorners(box math32.Box2, m math32.Matrix2) [4]math32.Vector2 {
	return [4]math32.Vector2{
		m.MulPoint(math32.Vec2(box.Min.X, box.Min.Y)),
		m.MulPoint(math32.Vec2(box.Max.X, box.Min.Y)),
		m.MulPoint(math32.Vec2(box.Max.X, box.Max.Y)),
		m.MulPoint(math32.Vec2(box.Min.X, box.Max.Y)),
	}
}

func boundsOfCorners(c [4]math32.Vector2) math32.Box2 {
	b := math32.Box2{Min: c[0], Max: c[0]}
	for _, pt := range c[1:] {
		b = b.IncludePoint(pt)
	}
	return b
}

// quadContours wraps a transformed box's 4 corners as a single closed
// subpath, suitable for a ClipOut call.
func quadContours(corners [4]math32.Vector2, bbox math32.Box2) Contours {
	sp := ppath.Subpath{Points: corners[:], Closed: true, Bounds: bbox}
	screen := bbox.ToRect()
	return Contours{
		List:         []ContourBox{{Subpath: sp, Screen: screen}},
		Bounds:       bbox,
		ScreenBounds: screen,
	}
}

func (p *Painter) setClip(clip math32.Box2i) {
	s := p.cur()
	if clip.IsEmpty() {
		s.Discard = true
		return
	}
	s.Clip = clip
}

// ClipInBox intersects the current clip with box. Under a pure
// translation the clip shrinks exactly; otherwise the engine also
// receives a ClipOut call carrying the transformed quad with
// complement = true so the off-axis rotation is clipped precisely, not
// just to its bounding box.
func (p *Painter) ClipInBox(box math32.Box2) {
	if !p.engineActive("ClipInBox") {
		return
	}
	s := p.cur()
	if s.Discard {
		return
	}
	if isPureTranslation(s.Transform) {
		translated := box.Translate(math32.Vec2(s.Transform.X0, s.Transform.Y0))
		p.setClip(translated.ToRect().Intersect(s.Clip))
		return
	}
	corners := transformCorners(box, s.Transform)
	bbox := boundsOfCorners(corners)
	clipped := bbox.ToRect().Intersect(s.Clip)
	if clipped.IsEmpty() {
		s.Discard = true
		return
	}
	s.Clip = clipped
	p.Engine.ClipOut(p.depth(), quadContours(corners, bbox), EvenOdd, true)
}

// ClipInPath intersects the current clip with the flattened, transformed
// path, handing its contours to the engine with complement = true.
func (p *Painter) ClipInPath(path *ppath.Path, rule FillRule) {
	if !p.engineActive("ClipInPath") {
		return
	}
	s := p.cur()
	if s.Discard {
		return
	}
	contours := p.prepareContours(path, 0, 0)
	if contours.Empty() {
		s.Discard = true
		return
	}
	s.Clip = contours.ScreenBounds.Intersect(s.Clip)
	if s.Clip.IsEmpty() {
		s.Discard = true
		return
	}
	p.Engine.ClipOut(p.depth(), contours, rule, true)
}

// ClipOutBox carves box out of subsequent drawing without shrinking the
// clip rectangle itself; rule is always evenodd for a box.
func (p *Painter) ClipOutBox(box math32.Box2) {
	if !p.engineActive("ClipOutBox") {
		return
	}
	s := p.cur()
	if s.Discard {
		return
	}
	corners := transformCorners(box, s.Transform)
	bbox := boundsOfCorners(corners)
	p.Engine.ClipOut(p.depth(), quadContours(corners, bbox), EvenOdd, false)
}

// ClipOutPath carves path out of subsequent drawing without shrinking the
// clip rectangle.
func (p *Painter) ClipOutPath(path *ppath.Path, rule FillRule) {
	if !p.engineActive("ClipOutPath") {
		return
	}
	s := p.cur()
	if s.Discard {
		return
	}
	contours := p.prepareContours(path, 0, 0)
	if contours.Empty() {
		return
	}
	p.Engine.ClipOut(p.depth(), contours, rule, false)
}

// QuickReject reports whether box, transformed by the current matrix,
// falls entirely outside the current clip.
func (p *Painter) QuickReject(box math32.Box2) bool {
	s := p.cur()
	if s.Discard {
		return true
	}
	screen := box.MulMatrix2(s.Transform).ToRect()
	return screen.Intersect(s.Clip).IsEmpty()
}

// GetLocalClipBounds returns the current clip, expanded by a 1px
// antialiased fringe, mapped back into the current local coordinate
// space.
func (p *Painter) GetLocalClipBounds() math32.Box2 {
	s := p.cur()
	expanded := s.Clip.ToBox2().Expand(1, 1)
	inv := s.Transform.Inverse()
	return expanded.MulMatrix2(inv)
}

// Transform ops. All compose via right-multiplication onto the current
// transform, so an op runs in the frame established by everything called
// before it (the common translate-then-rotate-around-local-origin idiom).
func (p *Painter) applyTransform(m math32.Matrix2) {
	p.requireActive()
	s := p.cur()
	s.Transform = s.Transform.Mul(m)
}

func (p *Painter) Translate(dx, dy float32) { p.applyTransform(math32.Translate2D(dx, dy)) }

func (p *Painter) Rotate(deg float32) { p.applyTransform(math32.Rotate2D(math32.DegToRad(deg))) }

// RotateAround rotates by deg degrees about the pivot (cx, cy), expressed
// as translate-rotate-translate around that pivot.
func (p *Painter) RotateAround(deg, cx, cy float32) {
	rad := math32.DegToRad(deg)
	m := math32.Translate2D(cx, cy).Mul(math32.Rotate2D(rad)).Mul(math32.Translate2D(-cx, -cy))
	p.applyTransform(m)
}

func (p *Painter) Scale(sx, sy float32) { p.applyTransform(math32.Scale2D(sx, sy)) }

// Skew skews by degX, degY degrees; the Y angle is Y-inverted by
// math32.Skew2D to match screen coordinates.
func (p *Painter) Skew(degX, degY float32) { p.applyTransform(math32.Skew2D(degX, degY)) }

// TransformBy right-multiplies m onto the current transform.
func (p *Painter) TransformBy(m math32.Matrix2) { p.applyTransform(m) }

// SetMatrix replaces the current transform outright.
func (p *Painter) SetMatrix(m math32.Matrix2) {
	p.requireActive()
	p.cur().Transform = m
}

// ResetMatrix replaces the current transform with the identity.
func (p *Painter) ResetMatrix() {
	p.requireActive()
	p.cur().Transform = math32.Identity2()
}

// prepareContours transforms the bounds of path's (already flattened)
// subpaths into screen-space boxes intersected with the current clip, reusing the
// painter's scratch buffer. padding expands each subpath's local bounds
// before transforming; trPadding further expands the transformed
// envelope before it is snapped to an integer box. The result is falsy
// (Empty()) when every subpath clips away entirely.
func (p *Painter) prepareContours(path *ppath.Path, padding, trPadding float32) Contours {
	s := p.cur()
	list := p.scratch[:0]
	var localBounds math32.Box2
	var screenBounds math32.Box2i
	for _, sp := range path.Subpaths() {
		b := sp.Bounds.Expand(padding, padding)
		corners := transformCorners(b, s.Transform)
		env := boundsOfCorners(corners).Expand(trPadding, trPadding)
		screen := env.ToRect().Intersect(s.Clip)
		if screen.IsEmpty() {
			continue
		}
		list = append(list, ContourBox{Subpath: sp, Screen: screen})
		localBounds = localBounds.Include(b)
		screenBounds = screenBounds.Include(screen)
	}
	p.scratch = list
	return Contours{List: list, Bounds: localBounds, ScreenBounds: screenBounds}
}

// PaintOut fills the entire current clip with brush, skipping the call
// entirely when brush paints nothing visible (unless the layer's
// passTransparent flag says transparent fragments still matter).
func (p *Painter) PaintOut(b brush.Brush) {
	if !p.engineActive("PaintOut") {
		return
	}
	s := p.cur()
	if s.Discard {
		return
	}
	if b.IsFullyTransparent() && !s.PassTransparent {
		return
	}
	p.Engine.PaintOut(b)
}

// Fill rasterizes path with brush under rule.
func (p *Painter) Fill(path *ppath.Path, b brush.Brush, rule FillRule) {
	if !p.engineActive("Fill") {
		return
	}
	s := p.cur()
	if s.Discard || b.IsFullyTransparent() {
		return
	}
	contours := p.prepareContours(path, 0, 0)
	if contours.Empty() {
		return
	}
	p.Engine.FillPath(contours, b, rule)
}

// Stroke rasterizes path's outline with pen. When pen.ShouldScale, an
// effective device-space width is computed from the current transform's
// scale; widths that would round to under 1 device pixel fade into a
// hairline stroke (opacity scaled down, width forced to a fixed hairline
// value) instead of disappearing entirely.
func (p *Painter) Stroke(path *ppath.Path, b brush.Brush, pen brush.Pen) {
	if !p.engineActive("Stroke") {
		return
	}
	s := p.cur()
	if s.Discard || b.IsFullyTransparent() {
		return
	}

	hairline := false
	faded := false
	if pen.ShouldScale {
		ex := s.Transform.MulVector2AsVector(math32.Vec2(1, 0))
		ey := s.Transform.MulVector2AsVector(math32.Vec2(0, 1))
		lenXSq, lenYSq := ex.LengthSquared(), ey.LengthSquared()
		coeff := math32.Sqrt(math32.Min(lenXSq, lenYSq))
		if coeff == 0 {
			return
		}
		w := pen.Width * coeff
		if w == 0 {
			return
		}
		if w < 1 {
			b = b.WithOpacity(b.Opacity * w)
			pen.Width = 1.01 / coeff
			hairline = math32.Abs(lenXSq-lenYSq) < scaleMatchTol
			faded = true
		}
	} else if pen.Width < 1 {
		b = b.WithOpacity(b.Opacity * pen.Width)
		pen.Width = 1
		hairline = true
		faded = true
	}
	if b.IsFullyTransparent() {
		return
	}

	padding := pen.Width / 2
	trPadding := padding
	if faded {
		trPadding = 0.5
	}
	contours := p.prepareContours(path, padding, trPadding)
	if contours.Empty() {
		return
	}
	p.Engine.StrokePath(contours, b, pen, hairline)
}

// DrawLine strokes a 1-device-pixel hairline between pixel centers.
func (p *Painter) DrawLine(x0, y0, x1, y1 float32, color colors.Color) {
	if !p.engineActive("DrawLine") {
		return
	}
	s := p.cur()
	b := brush.FromSolid(color)
	if s.Discard || b.IsFullyTransparent() {
		return
	}
	var path ppath.Path
	path.MoveTo(x0, y0)
	path.LineTo(x1, y1)
	contours := p.prepareContours(&path, 0, 0.5)
	if contours.Empty() {
		return
	}
	p.Engine.StrokePath(contours, b, brush.Pen{Width: 1}, true)
}

// FillRect fills the axis-aligned rectangle [x, y]-[x+w, y+h].
func (p *Painter) FillRect(x, y, w, h float32, b brush.Brush) {
	if !p.engineActive("FillRect") {
		return
	}
	s := p.cur()
	if s.Discard || b.IsFullyTransparent() || w <= 0 || h <= 0 {
		return
	}
	var path ppath.Path
	path.MoveTo(x, y)
	path.LineTo(x+w, y)
	path.LineTo(x+w, y+h)
	path.LineTo(x, y+h)
	path.Close()
	contours := p.prepareContours(&path, 0, 0)
	if contours.Empty() {
		return
	}
	p.Engine.FillPath(contours, b, EvenOdd)
}

// FillTriangle fills the triangle with the given three vertices.
func (p *Painter) FillTriangle(x0, y0, x1, y1, x2, y2 float32, b brush.Brush) {
	if !p.engineActive("FillTriangle") {
		return
	}
	s := p.cur()
	if s.Discard || b.IsFullyTransparent() {
		return
	}
	var path ppath.Path
	path.MoveTo(x0, y0)
	path.LineTo(x1, y1)
	path.LineTo(x2, y2)
	path.Close()
	contours := p.prepareContours(&path, 0, 0)
	if contours.Empty() {
		return
	}
	p.Engine.FillPath(contours, b, EvenOdd)
}

// FillCircle fills a circle of radius r centered at (cx, cy), approximated
// by four cubic Bézier segments whose tangent handle length is 4r/3.
func (p *Painter) FillCircle(cx, cy, r float32, b brush.Brush) {
	if !p.engineActive("FillCircle") {
		return
	}
	s := p.cur()
	if s.Discard || b.IsFullyTransparent() || r <= 0 {
		return
	}
	h := 4 * r / 3
	var path ppath.Path
	path.MoveTo(cx+r, cy)
	path.CubicTo(cx+r, cy+h, cx+h, cy+r, cx, cy+r)
	path.CubicTo(cx-h, cy+r, cx-r, cy+h, cx-r, cy)
	path.CubicTo(cx-r, cy-h, cx-h, cy-r, cx, cy-r)
	path.CubicTo(cx+h, cy-r, cx+r, cy-h, cx+r, cy)
	path.Close()
	contours := p.prepareContours(&path, 0, 0)
	if contours.Empty() {
		return
	}
	p.Engine.FillPath(contours, b, EvenOdd)
}

// DrawImage draws bm with its top-left corner at (x, y), scaled by
// opacity (clamped to [0, 1]). When opacity is approximately zero, the
// call is skipped unless the current layer's passTransparent flag says
// transparent fragments still matter, in which case an equivalent
// transparent rectangle is filled instead.
func (p *Painter) DrawImage(bm *bitmap.Bitmap, x, y, opacity float32) {
	if !p.engineActive("DrawImage") {
		return
	}
	s := p.cur()
	if s.Discard {
		return
	}
	opacity = math32.Clamp(opacity, 0, 1)
	if opacity <= opacityZeroTol {
		if !s.PassTransparent {
			return
		}
		// FillRect skips fully transparent brushes, so the rectangle is
		// handed to the engine directly.
		w, h := float32(bm.Width()), float32(bm.Height())
		var path ppath.Path
		path.MoveTo(x, y)
		path.LineTo(x+w, y)
		path.LineTo(x+w, y+h)
		path.LineTo(x, y+h)
		path.Close()
		if contours := p.prepareContours(&path, 0, 0); !contours.Empty() {
			p.Engine.FillPath(contours, brush.FromSolid(colors.Transparent), EvenOdd)
		}
		return
	}
	p.Engine.DrawImage(bm, math32.Vec2(x, y), opacity)
}

// buildNinePatchInfo resolves the 12-anchor (4x4) source/destination grid
// for a nine-patch draw. If a destination middle slice would invert
// (the frame insets exceed the destination's extent on that axis), both
// of its inner anchors collapse to the slice's midpoint.
func buildNinePatchInfo(srcRect, dstRect math32.Box2, np bitmap.NinePatch) NinePatchInfo {
	var info NinePatchInfo
	info.SrcX = [4]float32{
		srcRect.Min.X,
		srcRect.Min.X + float32(np.FrameLeft),
		srcRect.Max.X - float32(np.FrameRight),
		srcRect.Max.X,
	}
	info.SrcY = [4]float32{
		srcRect.Min.Y,
		srcRect.Min.Y + float32(np.FrameTop),
		srcRect.Max.Y - float32(np.FrameBottom),
		srcRect.Max.Y,
	}

	x0, x3 := dstRect.Min.X, dstRect.Max.X
	x1, x2 := x0+float32(np.FrameLeft), x3-float32(np.FrameRight)
	if x1 > x2 {
		mid := (x0 + x3) / 2
		x1, x2 = mid, mid
	}
	info.DstX = [4]float32{x0, x1, x2, x3}

	y0, y3 := dstRect.Min.Y, dstRect.Max.Y
	y1, y2 := y0+float32(np.FrameTop), y3-float32(np.FrameBottom)
	if y1 > y2 {
		mid := (y0 + y3) / 2
		y1, y2 = mid, mid
	}
	info.DstY = [4]float32{y0, y1, y2, y3}

	return info
}

// DrawNinePatch draws bm, stretched per its nine-patch metadata, from
// srcRect into dstRect. bm must carry NinePatch metadata (set explicitly
// or by bitmap.DetectNinePatch).
func (p *Painter) DrawNinePatch(bm *bitmap.Bitmap, srcRect, dstRect math32.Box2, opacity float32) {
	if !p.engineActive("DrawNinePatch") {
		return
	}
	s := p.cur()
	if s.Discard {
		return
	}
	np, ok := bm.NinePatch()
	assertf(ok, "paint: DrawNinePatch called on a bitmap without nine-patch metadata")
	opacity = math32.Clamp(opacity, 0, 1)
	if opacity <= opacityZeroTol && !s.PassTransparent {
		return
	}
	info := buildNinePatchInfo(srcRect, dstRect, np)
	p.Engine.DrawNinePatch(bm, info, opacity)
}
