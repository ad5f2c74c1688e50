// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box2 is an axis-aligned rectangle with float32 Min and Max corners.
type Box2 struct {
	Min, Max Vector2
}

// B2 returns a new Box2 from the given corner coordinates.
func B2(minX, minY, maxX, maxY float32) Box2 {
	return Box2{Min: Vec2(minX, minY), Max: Vec2(maxX, maxY)}
}

// BoxFromPosSize returns a Box2 spanning [pos, pos+size].
func BoxFromPosSize(pos, size Vector2) Box2 {
	return Box2{Min: pos, Max: pos.Add(size)}
}

// Empty returns the canonical empty box: a Min > Max sentinel, used as the
// starting accumulator for a running union (Include or IncludePoint) so the
// first box or point added always wins outright (a zero-size box at the
// origin would not do for IncludePoint, which keeps the origin in its result).
func Empty() Box2 {
	inf := float32(3.0e38)
	return Box2{Min: Vector2Scalar(inf), Max: Vector2Scalar(-inf)}
}

// IsEmpty reports whether b has no area (Min.X >= Max.X or Min.Y >= Max.Y).
func (b Box2) IsEmpty() bool {
	return b.Min.X >= b.Max.X || b.Min.Y >= b.Max.Y
}

// Size returns the width and height of b.
func (b Box2) Size() Vector2 { return b.Max.Sub(b.Min) }

// Center returns the midpoint of b.
func (b Box2) Center() Vector2 { return b.Min.Add(b.Max).MulScalar(0.5) }

// Translate returns b shifted by d.
func (b Box2) Translate(d Vector2) Box2 {
	return Box2{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Expand returns b grown by dx on each side horizontally and dy vertically.
// Negative values shrink the box.
func (b Box2) Expand(dx, dy float32) Box2 {
	return Box2{Min: Vec2(b.Min.X-dx, b.Min.Y-dy), Max: Vec2(b.Max.X+dx, b.Max.Y+dy)}
}

// Include returns the union of b and o (the smallest box containing both).
// An operand that IsEmpty, including a zero-area box, is ignored.
func (b Box2) Include(o Box2) Box2 {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return Box2{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// IncludePoint returns b expanded, if necessary, to include p. A box whose
// Min exceeds its Max (such as Empty()) is replaced by the point box at p.
func (b Box2) IncludePoint(p Vector2) Box2 {
	if b.Min.X > b.Max.X || b.Min.Y > b.Max.Y {
		return Box2{Min: p, Max: p}
	}
	return Box2{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Intersect returns the intersection of b and o. The result IsEmpty if they
// do not overlap.
func (b Box2) Intersect(o Box2) Box2 {
	return Box2{Min: b.Min.Max(o.Min), Max: b.Max.Min(o.Max)}
}

// ContainsPoint reports whether p lies within b (inclusive of the min
// corner, exclusive of the max corner).
func (b Box2) ContainsPoint(p Vector2) bool {
	return p.X >= b.Min.X && p.X < b.Max.X && p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// MulMatrix2 returns the bounding box of b's four corners after each is
// transformed by m.
func (b Box2) MulMatrix2(m Matrix2) Box2 {
	p0 := m.MulPoint(Vec2(b.Min.X, b.Min.Y))
	p1 := m.MulPoint(Vec2(b.Max.X, b.Min.Y))
	p2 := m.MulPoint(Vec2(b.Min.X, b.Max.Y))
	p3 := m.MulPoint(Vec2(b.Max.X, b.Max.Y))
	r := Box2{Min: p0, Max: p0}
	r = r.IncludePoint(p1)
	r = r.IncludePoint(p2)
	r = r.IncludePoint(p3)
	return r
}

// ToRect returns b as an integer Box2i, flooring the min corner and
// rounding the max corner up so the rectangle fully covers b.
func (b Box2) ToRect() Box2i {
	return Box2i{
		Min: Vec2i(int32(Floor(b.Min.X)), int32(Floor(b.Min.Y))),
		Max: Vec2i(int32(Ceil(b.Max.X)), int32(Ceil(b.Max.Y))),
	}
}
