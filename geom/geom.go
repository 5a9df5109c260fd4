// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package geom provides the small set of two-dimensional geometry
// value types the quadtree index is built on: points, sizes, axis-
// aligned rectangles, and the quadrant subdivision of a rectangle.
//
// The Y-axis grows downward, as in screen coordinates: a rectangle's
// "top" edge is the edge with the smaller Y-coordinate. Quadrant
// naming follows the same convention.
package geom

import "strconv"

// A Point is a location in the plane.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String returns a compact "(x,y)" representation of the point.
func (p Point) String() string {
	b := make([]byte, 0, 16)
	b = append(b, '(')
	b = strconv.AppendFloat(b, p.X, 'g', -1, 64)
	b = append(b, ',')
	b = strconv.AppendFloat(b, p.Y, 'g', -1, 64)
	b = append(b, ')')
	return string(b)
}

// A Size is a width/height extent. Negative dimensions are not given
// any special meaning; rectangles with non-positive dimensions are
// simply empty.
type Size struct {
	Width  float64
	Height float64
}

// String returns a compact "WxH" representation of the size.
func (s Size) String() string {
	b := make([]byte, 0, 16)
	b = strconv.AppendFloat(b, s.Width, 'g', -1, 64)
	b = append(b, 'x')
	b = strconv.AppendFloat(b, s.Height, 'g', -1, 64)
	return string(b)
}
