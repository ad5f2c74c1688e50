// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brush

import (
	"sort"

	"github.com/dayllenger/beamui-sub004/colors"
	"github.com/dayllenger/beamui-sub004/math32"
)

// stop is one (offset, color) accumulated by GradientBuilder.
type stop struct {
	offset float32
	color  colors.Color
}

// GradientBuilder accumulates gradient stops and collapses them into the
// simplest equivalent Brush once a shape (linear or radial) is requested.
type GradientBuilder struct {
	stops []stop
}

// AddStop clamps offset into [0,1] and records color there. A later call
// with an offset already present replaces that stop's color rather than
// adding a duplicate.
func (g *GradientBuilder) AddStop(offset float32, c colors.Color) {
	offset = math32.Clamp(offset, 0, 1)
	for i := range g.stops {
		if g.stops[i].offset == offset {
			g.stops[i].color = c
			return
		}
	}
	g.stops = append(g.stops, stop{offset: offset, color: c})
}

// Reset discards all accumulated stops.
func (g *GradientBuilder) Reset() {
	g.stops = nil
}

func (g *GradientBuilder) sorted() []stop {
	sorted := make([]stop, len(g.stops))
	copy(sorted, g.stops)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].offset < sorted[j].offset })
	return sorted
}

// collapse decides whether the accumulated stops reduce to a solid brush,
// returning (brush, true) if so. Otherwise it returns the sorted stop
// offsets/colors ready for a gradient brush and (zero, false).
func (g *GradientBuilder) collapse() (Brush, []float32, []colors.Color, bool) {
	if len(g.stops) == 0 {
		return FromSolid(colors.Transparent), nil, nil, true
	}
	sorted := g.sorted()
	if len(sorted) == 1 {
		return FromSolid(sorted[0].color), nil, nil, true
	}

	allEqual := true
	allTransparent := true
	for _, s := range sorted {
		if s.color != sorted[0].color {
			allEqual = false
		}
		if !s.color.IsFullyTransparent() {
			allTransparent = false
		}
	}
	if allTransparent {
		return FromSolid(colors.Transparent), nil, nil, true
	}
	if allEqual {
		return FromSolid(sorted[0].color), nil, nil, true
	}

	offsets := make([]float32, len(sorted))
	cs := make([]colors.Color, len(sorted))
	for i, s := range sorted {
		offsets[i] = s.offset
		cs[i] = s.color
	}
	return Brush{}, offsets, cs, false
}

func classifyStops(cs []colors.Color) Opacity {
	allOpaque := true
	for _, c := range cs {
		if !c.IsOpaque() {
			allOpaque = false
			break
		}
	}
	if allOpaque {
		return Opaque
	}
	return Translucent
}

// MakeLinear produces a linear-gradient brush from start to end, unless
// the accumulated stops collapse to a solid brush first.
func (g *GradientBuilder) MakeLinear(start, end math32.Vector2) Brush {
	solid, offsets, cs, ok := g.collapse()
	if ok {
		return solid
	}
	return Brush{
		Kind: Linear,
		LinearG: LinearGradient{
			Stops:  offsets,
			Colors: cs,
			Start:  start,
			End:    end,
		},
		Opacity: 1,
		Opq:     classifyStops(cs),
	}
}

// MakeRadial produces a radial-gradient brush from center/radius, unless
// the accumulated stops collapse to a solid brush first.
func (g *GradientBuilder) MakeRadial(center math32.Vector2, radius float32) Brush {
	solid, offsets, cs, ok := g.collapse()
	if ok {
		return solid
	}
	return Brush{
		Kind: Radial,
		RadialG: RadialGradient{
			Stops:  offsets,
			Colors: cs,
			Center: center,
			Radius: radius,
		},
		Opacity: 1,
		Opq:     classifyStops(cs),
	}
}
