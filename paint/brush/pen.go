// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brush

// Cap identifies a stroke's end-cap style.
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Join identifies a stroke's corner-join style.
type Join int

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// Pen carries the stroke parameters a Painter passes to the engine: width,
// cap/join styles, miter limit, an optional dash pattern, and whether the
// width should scale with the current transform (as opposed to staying a
// constant number of device pixels).
type Pen struct {
	Width       float32
	Cap         Cap
	Join        Join
	MiterLimit  float32
	Dashes      []float32
	ShouldScale bool
}
