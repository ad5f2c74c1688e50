// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ppath implements the subpath-based path model fed to the paint
// core: contours of line segments built from move/line/quadratic/cubic/arc
// commands, with adaptive flattening of the smooth primitives and cached
// per-subpath bounds.
package ppath

import (
	"github.com/dayllenger/beamui-sub004/math32"
	raster "github.com/dayllenger/beamui-sub004/paint/rasterc"
)

// coincidentTol is the tolerance under which two points are treated as the
// same position, used both by the degenerate-op filter and by point
// dedup in AddPolyline.
const coincidentTol = 1e-6

// maxSweepDeg is the largest magnitude, in degrees, that ArcTo/ArcBy accept
// for their signed sweep angle.
const maxSweepDeg = 359

// Subpath is one contour of a Path: a run of points with a closed flag and
// cached bounds (which include curve control points, not just endpoints).
type Subpath struct {
	Points []math32.Vector2
	Closed bool
	Bounds math32.Box2
}

// Path is a sequence of subpaths built incrementally via a small drawing
// command API. The zero value is an empty, ready-to-use path.
type Path struct {
	subpaths []Subpath
	pos      math32.Vector2
	active   bool // false (the zero value) means no in-progress subpath, i.e. "closed"
}

// Empty reports whether the path has no drawable content: no subpath has
// received more than its initial point.
func (p *Path) Empty() bool {
	for _, s := range p.subpaths {
		if len(s.Points) > 1 {
			return false
		}
	}
	return true
}

// Pos returns the current pen position.
func (p *Path) Pos() math32.Vector2 { return p.pos }

// Subpaths returns the path's subpaths in insertion order. The returned
// slice must not be mutated.
func (p *Path) Subpaths() []Subpath { return p.subpaths }

// Bounds returns the union of all subpath bounds.
func (p *Path) Bounds() math32.Box2 {
	b := math32.Empty()
	for _, s := range p.subpaths {
		b = b.Include(s.Bounds)
	}
	return b
}

func coincident(a, b math32.Vector2) bool {
	return math32.Abs(a.X-b.X) < coincidentTol && math32.Abs(a.Y-b.Y) < coincidentTol
}

// activate ensures a subpath is open to receive points, starting a new one
// at the current position if the path is presently closed.
func (p *Path) activate() *Subpath {
	if !p.active {
		p.subpaths = append(p.subpaths, Subpath{
			Points: []math32.Vector2{p.pos},
			Bounds: math32.Box2{Min: p.pos, Max: p.pos},
		})
		p.active = true
	}
	return &p.subpaths[len(p.subpaths)-1]
}

func (p *Path) appendPoint(s *Subpath, pt math32.Vector2) {
	s.Points = append(s.Points, pt)
	s.Bounds = s.Bounds.IncludePoint(pt)
	p.pos = pt
}

// MoveTo starts a new, detached position without drawing anything; the
// next drawing command opens a fresh subpath there.
func (p *Path) MoveTo(x, y float32) {
	p.pos = math32.Vec2(x, y)
	p.active = false
}

// MoveBy is MoveTo relative to the current position.
func (p *Path) MoveBy(dx, dy float32) {
	p.MoveTo(p.pos.X+dx, p.pos.Y+dy)
}

// LineTo draws a straight segment to (x, y).
func (p *Path) LineTo(x, y float32) {
	target := math32.Vec2(x, y)
	if coincident(target, p.pos) {
		return
	}
	s := p.activate()
	p.appendPoint(s, target)
}

// LineBy is LineTo relative to the current position.
func (p *Path) LineBy(dx, dy float32) {
	p.LineTo(p.pos.X+dx, p.pos.Y+dy)
}

// QuadraticTo draws a quadratic Bézier through control point c to endpoint
// (x, y).
func (p *Path) QuadraticTo(cx, cy, x, y float32) {
	c := math32.Vec2(cx, cy)
	target := math32.Vec2(x, y)
	if coincident(c, p.pos) && coincident(target, p.pos) {
		return
	}
	s := p.activate()
	s.Bounds = s.Bounds.IncludePoint(c)
	start := p.pos
	first := true
	raster.FlattenQuadratic(start, c, target, true, func(pt math32.Vector2) {
		if first {
			first = false
			return // start point already present in s.Points
		}
		p.appendPoint(s, pt)
	})
}

// QuadraticBy is QuadraticTo with both c and the endpoint relative to the
// current position.
func (p *Path) QuadraticBy(cdx, cdy, dx, dy float32) {
	p.QuadraticTo(p.pos.X+cdx, p.pos.Y+cdy, p.pos.X+dx, p.pos.Y+dy)
}

// CubicTo draws a cubic Bézier through control points c1, c2 to endpoint
// (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	c1 := math32.Vec2(c1x, c1y)
	c2 := math32.Vec2(c2x, c2y)
	target := math32.Vec2(x, y)
	if coincident(c1, p.pos) && coincident(c2, p.pos) && coincident(target, p.pos) {
		return
	}
	s := p.activate()
	s.Bounds = s.Bounds.IncludePoint(c1).IncludePoint(c2)
	start := p.pos
	first := true
	raster.FlattenCubic(start, c1, c2, target, true, func(pt math32.Vector2) {
		if first {
			first = false
			return
		}
		p.appendPoint(s, pt)
	})
}

// CubicBy is CubicTo with c1, c2 and the endpoint relative to the current
// position.
func (p *Path) CubicBy(c1dx, c1dy, c2dx, c2dy, dx, dy float32) {
	p.CubicTo(p.pos.X+c1dx, p.pos.Y+c1dy, p.pos.X+c2dx, p.pos.Y+c2dy, p.pos.X+dx, p.pos.Y+dy)
}

// ArcTo draws a circular arc of the given radius about center, sweeping by
// deltaDeg degrees (signed, magnitude clamped to 359°) starting from the
// angle implied by the current position relative to center.
func (p *Path) ArcTo(center math32.Vector2, radius, deltaDeg float32) {
	deltaDeg = math32.Clamp(deltaDeg, -maxSweepDeg, maxSweepDeg)
	if coincident(center, p.pos) || radius < 1e-6 || math32.Abs(deltaDeg) < 1e-6 {
		return
	}

	startAngle := math32.Atan2(-(p.pos.Y - center.Y), p.pos.X-center.X)
	delta := math32.DegToRad(deltaDeg)

	s := p.activate()
	// arcTo's circumscribed-circle bounds, per the full-circle contribution rule.
	s.Bounds = s.Bounds.Include(math32.B2(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius))

	first := true
	raster.FlattenArc(center, radius, startAngle, delta, true, func(pt math32.Vector2) {
		if first {
			first = false
			return
		}
		p.appendPoint(s, pt)
	})
}

// ArcBy is ArcTo with the center given relative to the current position.
func (p *Path) ArcBy(cdx, cdy, radius, deltaDeg float32) {
	p.ArcTo(math32.Vec2(p.pos.X+cdx, p.pos.Y+cdy), radius, deltaDeg)
}

// AddPolyline appends pts as a run of straight segments, skipping
// consecutive coincident points. If detached is true, pts start a new
// subpath at pts[0] regardless of the current pen state; otherwise they
// continue the active subpath (opening one at the current position if
// needed).
func (p *Path) AddPolyline(pts []math32.Vector2, detached bool) {
	if len(pts) == 0 {
		return
	}
	if detached {
		p.active = false
		p.pos = pts[0]
	}
	s := p.activate()
	for _, pt := range pts {
		if coincident(pt, p.pos) {
			continue
		}
		p.appendPoint(s, pt)
	}
}

// Close marks the active subpath closed and ends the pen's drawing state;
// the next drawing command opens a new subpath at the current subpath's
// first point.
func (p *Path) Close() {
	if !p.active {
		return
	}
	s := &p.subpaths[len(p.subpaths)-1]
	s.Closed = true
	p.pos = s.Points[0]
	p.active = false
}

// Reset discards all subpaths and returns the path to its zero state.
func (p *Path) Reset() {
	p.subpaths = nil
	p.pos = math32.Vector2{}
	p.active = false
}

// Translate shifts every point (and cached bounds) of every subpath by d,
// and the current pen position.
func (p *Path) Translate(d math32.Vector2) {
	for i := range p.subpaths {
		s := &p.subpaths[i]
		for j := range s.Points {
			s.Points[j] = s.Points[j].Add(d)
		}
		s.Bounds = s.Bounds.Translate(d)
	}
	p.pos = p.pos.Add(d)
}
