// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package brush implements the fill/stroke paint source model: a tagged
// union over solid colors, linear and radial gradients and image
// patterns, each carrying an opacity classification that lets the
// painter cheaply skip work for invisible brushes.
package brush

import (
	"github.com/dayllenger/beamui-sub004/colors"
	"github.com/dayllenger/beamui-sub004/math32"
)

// Kind identifies which field of a Brush is active.
type Kind int

const (
	Solid Kind = iota
	Linear
	Radial
	Pattern
)

// Opacity classifies a brush (or a single gradient stop) for cheap
// skip-transparent-work decisions, without inspecting every pixel.
type Opacity int

const (
	// Hidden brushes paint nothing at all.
	Hidden Opacity = iota
	// Translucent brushes blend with whatever is underneath.
	Translucent
	// Opaque brushes fully replace whatever is underneath.
	Opaque
)

// ImageRef is the minimal surface a pattern brush's backing image needs:
// enough to tell an empty placeholder from real content, without this
// package depending on a concrete bitmap type.
type ImageRef interface {
	IsEmpty() bool
}

// LinearGradient paints along the line from Start to End.
type LinearGradient struct {
	Stops  []float32
	Colors []colors.Color
	Start  math32.Vector2
	End    math32.Vector2
}

// RadialGradient paints outward from Center to Radius.
type RadialGradient struct {
	Stops  []float32
	Colors []colors.Color
	Center math32.Vector2
	Radius float32
}

// ImagePattern tiles or samples an image through Transform.
type ImagePattern struct {
	Image     ImageRef
	Transform math32.Matrix2
}

// Brush is a tagged union of paint sources plus the overall opacity
// multiplier and its derived classification.
type Brush struct {
	Kind     Kind
	SolidC   colors.Color
	LinearG  LinearGradient
	RadialG  RadialGradient
	PatternP ImagePattern

	Opacity float32
	Opq     Opacity
}

func classifyColor(c colors.Color) Opacity {
	switch {
	case c.IsFullyTransparent():
		return Hidden
	case c.IsOpaque():
		return Opaque
	default:
		return Translucent
	}
}

// FromSolid builds a solid-color brush, classified by the color's own
// alpha.
func FromSolid(c colors.Color) Brush {
	return Brush{
		Kind:    Solid,
		SolidC:  c,
		Opacity: 1,
		Opq:     classifyColor(c),
	}
}

// FromPattern builds an image-pattern brush. It is opaque whenever img is
// non-nil and non-empty, hidden otherwise (there is nothing to tile).
func FromPattern(img ImageRef, m math32.Matrix2) Brush {
	opq := Hidden
	if img != nil && !img.IsEmpty() {
		opq = Opaque
	}
	return Brush{
		Kind:     Pattern,
		PatternP: ImagePattern{Image: img, Transform: m},
		Opacity:  1,
		Opq:      opq,
	}
}

const opacityTol = 1e-4

// IsOpaque reports whether the brush is fully, uniformly opaque.
func (b Brush) IsOpaque() bool {
	return b.Opq == Opaque && math32.Abs(b.Opacity-1) <= opacityTol
}

// IsFullyTransparent reports whether the brush paints nothing visible.
func (b Brush) IsFullyTransparent() bool {
	return b.Opq == Hidden || math32.Abs(b.Opacity) <= opacityTol
}

// WithOpacity returns a copy of b with its opacity multiplier replaced.
func (b Brush) WithOpacity(opacity float32) Brush {
	b.Opacity = opacity
	return b
}
