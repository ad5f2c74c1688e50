// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import "github.com/dayllenger/beamui-sub004/math32"

// State is one entry of the Painter's save/restore stack: everything that
// a nested save or layer can shadow and later restore.
type State struct {
	AA              bool
	Clip            math32.Box2i
	Transform       math32.Matrix2
	Layer           bool
	Discard         bool
	PassTransparent bool
}

// rootState is the initial state pushed by BeginFrame: AA on, identity
// transform, clip set to the full canvas.
func rootState(clip math32.Box2i) State {
	return State{
		AA:        true,
		Clip:      clip,
		Transform: math32.Identity2(),
	}
}

// CompositeMode identifies a layer's composition operator.
type CompositeMode int

const (
	Over CompositeMode = iota
	Copy
	SourceIn
	SourceOut
	DestIn
	DestAtop
)

// transparentMatters reports whether m is a composite mode whose result
// depends on fully-transparent source fragments, not just opaque ones.
func (m CompositeMode) transparentMatters() bool {
	switch m {
	case Copy, SourceIn, SourceOut, DestIn, DestAtop:
		return true
	default:
		return false
	}
}

// BlendMode identifies a layer's pixel-blend function, applied before
// compositing.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
)

// LayerOp bundles the parameters of a BeginLayer call.
type LayerOp struct {
	Opacity   float32
	Composite CompositeMode
	Blend     BlendMode
}
