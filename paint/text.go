// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"golang.org/x/image/math/fixed"

	"github.com/dayllenger/beamui-sub004/colors"
	"github.com/dayllenger/beamui-sub004/math32"
)

// Glyph is one positioned glyph within a GlyphRun, as resolved by the
// (external) text-shaping collaborator. Pos is fixed-point because that is
// the space glyph shapers and rasterizers commonly operate in; Advance is
// the already-resolved advance width, which is not guaranteed monotonic
// across a run (a font's kerning table may shrink a previous glyph's
// width enough to go negative).
type Glyph struct {
	ID     uint16
	Pos    fixed.Point26_6
	Advance float32
}

// GlyphRun is a positioned glyph list ready for rasterization. Painter
// neither recomputes nor validates it; it only forwards the run to the
// engine.
type GlyphRun struct {
	Glyphs []Glyph
}

// NewGlyphRun lays out glyphs left to right from origin (in the Painter's
// float32 coordinate space), converting each glyph's resolved position to
// the fixed.Point26_6 space the engine's rasterizer expects. advances[i]
// is the already-resolved advance of glyphs[i] (may be negative due to
// kerning).
func NewGlyphRun(origin math32.Vector2, glyphs []uint16, advances []float32) GlyphRun {
	assertf(len(glyphs) == len(advances), "paint: glyph/advance count mismatch")
	run := GlyphRun{Glyphs: make([]Glyph, len(glyphs))}
	pen := origin
	for i, id := range glyphs {
		run.Glyphs[i] = Glyph{ID: id, Pos: pen.ToFixed(), Advance: advances[i]}
		pen.X += advances[i]
	}
	return run
}

// DrawText forwards a positioned glyph run to the engine for rasterization
// in the given color. Glyph rasterization itself is a collaborator; the
// Painter performs no shaping or layout.
func (p *Painter) DrawText(run GlyphRun, color colors.Color) {
	if !p.engineActive("DrawText") {
		return
	}
	s := p.cur()
	if s.Discard {
		return
	}
	p.Engine.DrawText(run, color)
}
