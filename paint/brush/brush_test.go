// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brush

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dayllenger/beamui-sub004/colors"
	"github.com/dayllenger/beamui-sub004/math32"
)

func TestFromSolidClassification(t *testing.T) {
	opaque := FromSolid(colors.RGB(1, 2, 3))
	assert.Equal(t, Opaque, opaque.Opq)
	assert.True(t, opaque.IsOpaque())

	transparent := FromSolid(colors.Transparent)
	assert.Equal(t, Hidden, transparent.Opq)
	assert.True(t, transparent.IsFullyTransparent())

	translucent := FromSolid(colors.Color{R: 1, G: 2, B: 3, A: 128})
	assert.Equal(t, Translucent, translucent.Opq)
	assert.False(t, translucent.IsOpaque())
	assert.False(t, translucent.IsFullyTransparent())
}

type fakeImage struct{ empty bool }

func (f fakeImage) IsEmpty() bool { return f.empty }

func TestFromPatternClassification(t *testing.T) {
	b := FromPattern(fakeImage{empty: false}, math32.Identity2())
	assert.Equal(t, Opaque, b.Opq)

	b = FromPattern(fakeImage{empty: true}, math32.Identity2())
	assert.Equal(t, Hidden, b.Opq)

	b = FromPattern(nil, math32.Identity2())
	assert.Equal(t, Hidden, b.Opq)
}

func TestGradientBuilderZeroStops(t *testing.T) {
	var g GradientBuilder
	b := g.MakeLinear(math32.Vec2(0, 0), math32.Vec2(1, 0))
	assert.Equal(t, Solid, b.Kind)
	assert.Equal(t, colors.Transparent, b.SolidC)
}

func TestGradientBuilderOneStop(t *testing.T) {
	var g GradientBuilder
	red := colors.RGB(255, 0, 0)
	g.AddStop(0.5, red)
	b := g.MakeLinear(math32.Vec2(0, 0), math32.Vec2(10, 10))
	assert.Equal(t, Solid, b.Kind)
	assert.Equal(t, red, b.SolidC)
}

// S6/S8: identical-color stops collapse to solid, independent of the
// geometry parameters passed to MakeLinear/MakeRadial.
func TestGradientBuilderIdenticalColorsCollapse(t *testing.T) {
	red := colors.RGB(255, 0, 0)
	var g GradientBuilder
	g.AddStop(0, red)
	g.AddStop(1, red)

	linear := g.MakeLinear(math32.Vec2(1, 2), math32.Vec2(3, 4))
	assert.Equal(t, Solid, linear.Kind)
	assert.Equal(t, red, linear.SolidC)

	radial := g.MakeRadial(math32.Vec2(5, 5), 50)
	assert.Equal(t, Solid, radial.Kind)
	assert.Equal(t, red, radial.SolidC)
}

func TestGradientBuilderAllTransparentCollapses(t *testing.T) {
	var g GradientBuilder
	g.AddStop(0, colors.Color{A: 255})
	g.AddStop(1, colors.Color{R: 9, A: 255})
	b := g.MakeLinear(math32.Vec2(0, 0), math32.Vec2(1, 1))
	assert.Equal(t, Solid, b.Kind)
	assert.True(t, b.IsFullyTransparent())
}

func TestGradientBuilderReplacesSameOffset(t *testing.T) {
	var g GradientBuilder
	g.AddStop(0.5, colors.RGB(1, 0, 0))
	g.AddStop(0.5, colors.RGB(2, 0, 0))
	assert.Len(t, g.stops, 1)
	assert.Equal(t, colors.RGB(2, 0, 0), g.stops[0].color)
}

func TestGradientBuilderDistinctStopsKeepsGradient(t *testing.T) {
	var g GradientBuilder
	g.AddStop(0, colors.RGB(255, 0, 0))
	g.AddStop(1, colors.RGB(0, 0, 255))
	b := g.MakeLinear(math32.Vec2(0, 0), math32.Vec2(100, 0))
	assert.Equal(t, Linear, b.Kind)
	assert.Len(t, b.LinearG.Stops, 2)
	assert.Equal(t, Opaque, b.Opq)
}

func TestGradientBuilderOffsetClamped(t *testing.T) {
	var g GradientBuilder
	g.AddStop(-1, colors.RGB(1, 0, 0))
	g.AddStop(5, colors.RGB(0, 1, 0))
	assert.Equal(t, float32(0), g.stops[0].offset)
	assert.Equal(t, float32(1), g.stops[1].offset)
}
