// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"github.com/spatialgo/quadtree/geom"
)

// All returns every item stored in the subtree: the node's direct
// items first, then the items of each child in quadrant order. The
// order is deterministic for a given tree shape. The returned slice is
// never nil and is owned by the caller.
func (n *Node[T]) All() []Item[T] {
	return n.appendAll(make([]Item[T], 0, n.Count()))
}

func (n *Node[T]) appendAll(dst []Item[T]) []Item[T] {
	dst = append(dst, n.items...)
	if n.children != nil {
		for _, child := range n.children {
			dst = child.appendAll(dst)
		}
	}
	return dst
}

// Within returns the items of the subtree whose positions are
// contained in the query rectangle, per geom.Rect.Contains. The result
// is exactly All filtered by containment; subtrees whose bounds do not
// intersect the query are pruned without being visited, so a query
// rectangle disjoint from the node's bounds yields an empty result
// immediately. The returned slice is never nil.
func (n *Node[T]) Within(query geom.Rect) []Item[T] {
	return n.appendWithin(query, make([]Item[T], 0))
}

func (n *Node[T]) appendWithin(query geom.Rect, dst []Item[T]) []Item[T] {
	if !query.Intersects(n.bounds) {
		return dst
	}
	for _, item := range n.items {
		if query.Contains(item.Position) {
			dst = append(dst, item)
		}
	}
	if n.children != nil {
		for _, child := range n.children {
			dst = child.appendWithin(query, dst)
		}
	}
	return dst
}

// CouldContain reports whether every given item's position classifies
// as interior to this node's bounds, mid lines included. It considers
// this node's bounds only, never descendants. An empty item list could
// not be contained.
func (n *Node[T]) CouldContain(items ...Item[T]) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if n.Classify(item.Position) == Outside {
			return false
		}
	}
	return true
}

// Enclosing returns the smallest subtree of this node that contains
// every given item's position, or nil if there is none.
//
// The search descends toward the first item: into the matching child
// of each split node, stopping at the first leaf, at the node whose
// mid lines the position sits on, or with nil if the position is
// outside this node's bounds. From the node found it climbs the parent
// chain, which may rise above the node Enclosing was called on, until
// it reaches a node that could contain all of the items; if the chain
// runs out first the result is nil. With a single item no climbing is
// ever needed and the descent result is returned as is.
func (n *Node[T]) Enclosing(items ...Item[T]) *Node[T] {
	if len(items) == 0 {
		return nil
	}
	sub := n.enclosing(items[0])
	for sub != nil && !sub.CouldContain(items...) {
		sub = sub.parent
	}
	return sub
}

func (n *Node[T]) enclosing(item Item[T]) *Node[T] {
	region := n.Classify(item.Position)
	switch {
	case region == Outside:
		return nil
	case region == OnMidline:
		return n
	case n.children != nil:
		if sub := n.children[region.quadrant()].enclosing(item); sub != nil {
			return sub
		}
		return n
	default:
		return n
	}
}
