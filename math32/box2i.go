// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box2i is an axis-aligned rectangle with int32 Min and Max corners, used
// for clip rectangles and anything else intrinsically pixel-integral.
type Box2i struct {
	Min, Max Vector2i
}

// B2i returns a new Box2i from the given corner coordinates.
func B2i(minX, minY, maxX, maxY int32) Box2i {
	return Box2i{Min: Vec2i(minX, minY), Max: Vec2i(maxX, maxY)}
}

// IsEmpty reports whether b has no area.
func (b Box2i) IsEmpty() bool {
	return b.Min.X >= b.Max.X || b.Min.Y >= b.Max.Y
}

// Size returns the width and height of b.
func (b Box2i) Size() Vector2i { return b.Max.Sub(b.Min) }

// Translate returns b shifted by d.
func (b Box2i) Translate(d Vector2i) Box2i {
	return Box2i{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Expand returns b grown by dx on each side horizontally and dy vertically.
func (b Box2i) Expand(dx, dy int32) Box2i {
	return Box2i{Min: Vec2i(b.Min.X-dx, b.Min.Y-dy), Max: Vec2i(b.Max.X+dx, b.Max.Y+dy)}
}

// Intersect returns the intersection of b and o. The result IsEmpty if they
// do not overlap.
func (b Box2i) Intersect(o Box2i) Box2i {
	return Box2i{Min: b.Min.Max(o.Min), Max: b.Max.Min(o.Max)}
}

// Include returns the union of b and o.
func (b Box2i) Include(o Box2i) Box2i {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return Box2i{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// ContainsPoint reports whether p lies within b (inclusive min, exclusive max).
func (b Box2i) ContainsPoint(p Vector2i) bool {
	return p.X >= b.Min.X && p.X < b.Max.X && p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// ToBox2 returns b widened to a float32 Box2.
func (b Box2i) ToBox2() Box2 {
	return Box2{Min: Vec2(float32(b.Min.X), float32(b.Min.Y)), Max: Vec2(float32(b.Max.X), float32(b.Max.Y))}
}
