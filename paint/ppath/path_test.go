// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dayllenger/beamui-sub004/math32"
)

func TestPathEmpty(t *testing.T) {
	p := &Path{}
	assert.True(t, p.Empty())

	p.MoveTo(5, 2)
	assert.True(t, p.Empty())

	p.LineTo(6, 2)
	assert.False(t, p.Empty())
}

func TestPathDegenerateLineToIsNoop(t *testing.T) {
	p := &Path{}
	p.MoveTo(1, 1)
	p.LineTo(1, 1)
	assert.True(t, p.Empty())
	assert.Empty(t, p.Subpaths())
}

func TestPathDegenerateQuadraticIsNoop(t *testing.T) {
	p := &Path{}
	p.MoveTo(1, 1)
	p.QuadraticTo(1, 1, 1, 1)
	assert.True(t, p.Empty())
}

func TestPathMoveToAloneIsEmpty(t *testing.T) {
	p := &Path{}
	p.MoveTo(5, 2)
	p.MoveTo(9, 9)
	assert.True(t, p.Empty())
	assert.Empty(t, p.Subpaths())
}

// S5: moveTo; lineTo; close; lineTo yields exactly two subpaths, the
// first closed with two points, the second open with two points, the
// first of which equals the post-close pen position (the first moveTo).
func TestPathIterationAfterClose(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.Close()
	p.LineTo(10, 10)

	subs := p.Subpaths()
	assert.Len(t, subs, 2)

	assert.True(t, subs[0].Closed)
	assert.Len(t, subs[0].Points, 2)
	assert.Equal(t, math32.Vec2(0, 0), subs[0].Points[0])
	assert.Equal(t, math32.Vec2(10, 0), subs[0].Points[1])

	assert.False(t, subs[1].Closed)
	assert.Len(t, subs[1].Points, 2)
	assert.Equal(t, math32.Vec2(0, 0), subs[1].Points[0])
	assert.Equal(t, math32.Vec2(10, 10), subs[1].Points[1])
}

func TestPathCloseIdempotent(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.Close()
	before := p.Subpaths()[0]
	posBefore := p.Pos()

	p.Close()
	assert.Equal(t, before, p.Subpaths()[0])
	assert.Equal(t, posBefore, p.Pos())
}

func TestPathTranslateHomomorphism(t *testing.T) {
	build := func() *Path {
		p := &Path{}
		p.MoveTo(1, 2)
		p.LineTo(5, 7)
		p.CubicTo(2, 9, 8, 1, 10, 10)
		return p
	}

	a := math32.Vec2(3, -4)
	b := math32.Vec2(-1.5, 2.5)

	p1 := build()
	p1.Translate(a)
	p1.Translate(b)

	p2 := build()
	p2.Translate(a.Add(b))

	subs1, subs2 := p1.Subpaths(), p2.Subpaths()
	assert.Equal(t, len(subs1), len(subs2))
	for i := range subs1 {
		assert.Equal(t, len(subs1[i].Points), len(subs2[i].Points))
		for j := range subs1[i].Points {
			assert.InDelta(t, subs1[i].Points[j].X, subs2[i].Points[j].X, 1e-4)
			assert.InDelta(t, subs1[i].Points[j].Y, subs2[i].Points[j].Y, 1e-4)
		}
	}
}

func TestPathBoundsCoverControlPoints(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0)
	p.QuadraticTo(5, 100, 10, 0)

	b := p.Subpaths()[0].Bounds
	assert.True(t, b.Min.Y <= 0+1e-4)
	assert.True(t, b.Max.Y >= 100-1e-4)
}

func TestPathArcToCircumscribedBounds(t *testing.T) {
	p := &Path{}
	p.MoveTo(10, 0)
	p.ArcTo(math32.Vec2(0, 0), 10, 90)

	b := p.Subpaths()[0].Bounds
	assert.InDelta(t, -10, b.Min.X, 1e-3)
	assert.InDelta(t, -10, b.Min.Y, 1e-3)
	assert.InDelta(t, 10, b.Max.X, 1e-3)
	assert.InDelta(t, 10, b.Max.Y, 1e-3)
}

// Invariant 10: flattening an arc that sweeps +-2pi returns to its start
// within minDist, i.e. ArcTo with a near-full sweep ends close to its
// start point once the sweep is clamped below 360.
func TestPathArcNearFullSweepReturnsNearStart(t *testing.T) {
	p := &Path{}
	p.MoveTo(10, 0)
	p.ArcTo(math32.Vec2(0, 0), 10, 359)

	end := p.Pos()
	start := math32.Vec2(10, 0)
	assert.Less(t, end.Sub(start).Length(), float32(1))
}

func TestPathAddPolylineDetached(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0)
	p.LineTo(1, 1)
	p.Close()

	p.AddPolyline([]math32.Vector2{math32.Vec2(5, 5), math32.Vec2(5, 5), math32.Vec2(8, 8)}, true)

	subs := p.Subpaths()
	assert.Len(t, subs, 2)
	assert.Len(t, subs[1].Points, 2)
	assert.Equal(t, math32.Vec2(5, 5), subs[1].Points[0])
	assert.Equal(t, math32.Vec2(8, 8), subs[1].Points[1])
}

func TestPathReset(t *testing.T) {
	p := &Path{}
	p.MoveTo(1, 1)
	p.LineTo(2, 2)
	p.Reset()

	assert.True(t, p.Empty())
	assert.Empty(t, p.Subpaths())
	assert.Equal(t, math32.Vector2{}, p.Pos())
}

func TestPathNoAdjacentCoincidentPoints(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0)
	p.QuadraticTo(50, 100, 100, 0)
	p.CubicTo(0, 50, 100, -50, 150, 0)

	for _, s := range p.Subpaths() {
		for i := 1; i < len(s.Points); i++ {
			d := s.Points[i].Sub(s.Points[i-1]).Length()
			assert.Greater(t, d, float32(0))
		}
	}
}
