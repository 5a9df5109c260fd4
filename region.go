// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"strconv"

	"github.com/spatialgo/quadtree/geom"
)

// A Region is the outcome of classifying a point against a node's
// bounds. The first four values mirror geom.Quadrant, so a quadrant
// Region converts to its child index without a lookup.
type Region int

const (
	// TopLeft through BottomRight mean the point lies strictly inside
	// the corresponding quadrant of the node's bounds. Their values
	// equal the matching geom.Quadrant values.
	TopLeft Region = iota
	TopRight
	BottomLeft
	BottomRight

	// OnMidline means the point lies strictly inside the node's bounds
	// but on one of its two mid lines, so it cannot be assigned a
	// unique quadrant.
	OnMidline

	// Outside means the point lies outside the node's bounds, or
	// exactly on their outer edge.
	Outside
)

var regionNames = [...]string{
	TopLeft:     "TopLeft",
	TopRight:    "TopRight",
	BottomLeft:  "BottomLeft",
	BottomRight: "BottomRight",
	OnMidline:   "OnMidline",
	Outside:     "Outside",
}

// String returns the region's name, or a numeric placeholder for
// out-of-range values.
func (r Region) String() string {
	if r < 0 || int(r) >= len(regionNames) {
		return "Region(" + strconv.Itoa(int(r)) + ")"
	}
	return regionNames[r]
}

// IsQuadrant reports whether the region identifies a concrete quadrant
// rather than OnMidline or Outside.
func (r Region) IsQuadrant() bool {
	return r >= TopLeft && r <= BottomRight
}

// quadrant converts a quadrant region to its geom.Quadrant child
// index. Callers must check IsQuadrant first.
func (r Region) quadrant() geom.Quadrant {
	return geom.Quadrant(r)
}

// Classify locates a point relative to the node's bounds, yielding one
// of the six Region outcomes. The interior test is strict: a point
// exactly on the outer edge of the bounds is Outside. Interior points
// on either mid line are OnMidline; all other interior points fall in
// exactly one quadrant. The top quadrants are the ones with the
// smaller Y-coordinates.
func (n *Node[T]) Classify(p geom.Point) Region {
	b := n.bounds
	if p.X <= b.MinX() || p.X >= b.MaxX() || p.Y <= b.MinY() || p.Y >= b.MaxY() {
		return Outside
	}
	midX, midY := b.MidX(), b.MidY()
	if p.X == midX || p.Y == midY {
		return OnMidline
	}
	if p.X < midX {
		if p.Y < midY {
			return TopLeft
		}
		return BottomLeft
	}
	if p.Y < midY {
		return TopRight
	}
	return BottomRight
}
