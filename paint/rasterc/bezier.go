// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster (directory rasterc) flattens quadratic and cubic Bézier
// curves and circular arcs into polylines via recursive midpoint
// subdivision, for consumption by a polygon rasterizer back-end.
package raster

import "github.com/dayllenger/beamui-sub004/math32"

// minDist is the default flatness distance, in device pixels: a segment is
// considered flat once its worst-case deviation from the chord drops below
// this. tolerance is its square, used directly in the flatness tests.
const minDist = 0.7

const tolerance = minDist * minDist

// maxDepth caps the recursive subdivision, bounding output to 4*2^maxDepth
// points per curve.
const maxDepth = 10

func mid(a, b math32.Vector2) math32.Vector2 {
	return a.Add(b).MulScalar(0.5)
}

// QuadTo flattens the quadratic Bézier (p1, p2, p3), feeding interior
// points to lineTo in traversal order. p1 and p3 themselves are not
// emitted; callers chaining segments add them explicitly.
func QuadTo(p1, p2, p3 math32.Vector2, lineTo func(math32.Vector2)) {
	quadRecurse(p1, p2, p3, lineTo, 0)
}

func quadRecurse(p1, p2, p3 math32.Vector2, lineTo func(math32.Vector2), depth int) {
	p12 := mid(p1, p2)
	p23 := mid(p2, p3)
	p123 := mid(p12, p23)

	if depth >= maxDepth {
		lineTo(p123)
		return
	}

	d := p3.Sub(p1)
	flatness := math32.Abs((p2.X-p3.X)*d.Y - (p2.Y-p3.Y)*d.X)
	if flatness <= tolerance {
		lineTo(p123)
		return
	}

	quadRecurse(p1, p12, p123, lineTo, depth+1)
	quadRecurse(p123, p23, p3, lineTo, depth+1)
}

// CubeTo flattens the cubic Bézier (p1, p2, p3, p4), feeding interior
// points to lineTo in traversal order. p1 and p4 themselves are not
// emitted; callers chaining segments add them explicitly.
func CubeTo(p1, p2, p3, p4 math32.Vector2, lineTo func(math32.Vector2)) {
	cubeRecurse(p1, p2, p3, p4, lineTo, 0)
}

func cubeRecurse(p1, p2, p3, p4 math32.Vector2, lineTo func(math32.Vector2), depth int) {
	p12 := mid(p1, p2)
	p23 := mid(p2, p3)
	p34 := mid(p3, p4)
	p123 := mid(p12, p23)
	p234 := mid(p23, p34)
	p1234 := mid(p123, p234)

	if depth >= maxDepth {
		lineTo(p1234)
		return
	}

	d := p4.Sub(p1)
	d2 := math32.Abs((p2.X-p4.X)*d.Y - (p2.Y-p4.Y)*d.X)
	d3 := math32.Abs((p3.X-p4.X)*d.Y - (p3.Y-p4.Y)*d.X)
	sum := d2 + d3
	if sum*sum <= tolerance*d.LengthSquared() {
		lineTo(p1234)
		return
	}

	cubeRecurse(p1, p12, p123, p1234, lineTo, depth+1)
	cubeRecurse(p1234, p234, p34, p4, lineTo, depth+1)
}

// FlattenQuadratic flattens the quadratic Bézier (p1, p2, p3) and feeds
// every resulting point, including p1 and p3 when endpoints is true, to
// sink in traversal order.
func FlattenQuadratic(p1, p2, p3 math32.Vector2, endpoints bool, sink func(math32.Vector2)) {
	if endpoints {
		sink(p1)
	}
	QuadTo(p1, p2, p3, sink)
	if endpoints {
		sink(p3)
	}
}

// FlattenCubic flattens the cubic Bézier (p1, p2, p3, p4) and feeds every
// resulting point, including p1 and p4 when endpoints is true, to sink in
// traversal order.
func FlattenCubic(p1, p2, p3, p4 math32.Vector2, endpoints bool, sink func(math32.Vector2)) {
	if endpoints {
		sink(p1)
	}
	CubeTo(p1, p2, p3, p4, sink)
	if endpoints {
		sink(p4)
	}
}

func arcPoint(center math32.Vector2, radius, angle float32) math32.Vector2 {
	return math32.Vec2(center.X+radius*math32.Cos(angle), center.Y-radius*math32.Sin(angle))
}

func arcTangent(angle float32) math32.Vector2 {
	return math32.Vec2(-math32.Sin(angle), -math32.Cos(angle))
}

// FlattenArc flattens a circular arc given its center, radius, start angle
// and signed sweep deltaAngle (radians), both measured with the screen's
// Y axis inverted (y = center.y - r*sin(angle)). The arc is split into
// equal cubic segments and each is fed through the cubic flattener; the
// junction point between consecutive segments is always emitted exactly
// once. p1 (the arc's start point) and its end point are additionally
// emitted when endpoints is true.
func FlattenArc(center math32.Vector2, radius, startAngle, deltaAngle float32, endpoints bool, sink func(math32.Vector2)) {
	deltaAngle = math32.Mod(deltaAngle, 2*math32.Pi)
	if math32.Abs(deltaAngle) < 1e-6 || radius < 1e-6 {
		return
	}

	segments := int(math32.Ceil(math32.Abs(deltaAngle) / (math32.Pi / 2)))
	if segments < 1 {
		segments = 1
	}
	segAngle := deltaAngle / float32(segments)
	half := segAngle / 2
	kappa := math32.Abs(4.0 / 3.0 * (1 - math32.Cos(half)) / math32.Sin(half))
	if segAngle < 0 {
		kappa = -kappa
	}

	prevAngle := startAngle
	prevPoint := arcPoint(center, radius, prevAngle)
	if endpoints {
		sink(prevPoint)
	}

	for i := 0; i < segments; i++ {
		angle := prevAngle + segAngle
		point := arcPoint(center, radius, angle)

		c1 := prevPoint.Add(arcTangent(prevAngle).MulScalar(kappa * radius))
		c2 := point.Sub(arcTangent(angle).MulScalar(kappa * radius))

		CubeTo(prevPoint, c1, c2, point, sink)
		if i < segments-1 || endpoints {
			sink(point)
		}

		prevAngle = angle
		prevPoint = point
	}
}
