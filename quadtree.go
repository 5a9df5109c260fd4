// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"github.com/spatialgo/quadtree/geom"
)

const (
	// DefaultMaxItems is the direct item capacity a node is created
	// with unless overridden by WithMaxItems. A leaf splits when its
	// direct item count first exceeds its capacity.
	DefaultMaxItems = 16

	// DefaultDepth is the subdivision depth budget the root node is
	// created with unless overridden by WithDepth. Each child node has
	// one level less than its parent, and a node with no depth
	// remaining never splits.
	DefaultDepth = 10
)

// An Item is an immutable pairing of a position with an opaque payload
// value. Item is comparable: two items are equal exactly when both
// their positions and their payloads are equal.
type Item[T comparable] struct {
	Position geom.Point
	Value    T
}

// Itm is shorthand for Item[T]{Position: geom.Pt(x, y), Value: value}.
func Itm[T comparable](x, y float64, value T) Item[T] {
	return Item[T]{Position: geom.Pt(x, y), Value: value}
}

// A quad is the child set of a split node, one node per quadrant of
// the parent's bounds, indexed by geom.Quadrant.
type quad[T comparable] [geom.NumQuadrants]*Node[T]

// A Node is a subtree of a region-based point quadtree. The root node
// created by New represents the whole tree; every node, root or not,
// supports the full query and insertion surface for the subtree it
// owns.
//
// A node is in one of two states: a leaf, which holds all of its items
// directly, or a split node, which delegates quadrant-classifiable
// items to four children and directly holds only the items sitting on
// its mid lines. The transition from leaf to split is permanent.
type Node[T comparable] struct {
	bounds   geom.Rect
	depth    int
	maxItems int
	items    []Item[T]
	children *quad[T] // nil until the node splits
	parent   *Node[T] // nil for the root; upward lookup only
}

// An Option customizes a node created by New.
type Option[T comparable] func(*Node[T])

// WithDepth sets the subdivision depth budget of the new node. A node
// created with depth 0 never splits, no matter how many items it
// receives.
func WithDepth[T comparable](depth int) Option[T] {
	return func(n *Node[T]) {
		n.depth = depth
	}
}

// WithMaxItems sets the direct item capacity of the new node. The
// capacity is inherited by every node in the subtree.
func WithMaxItems[T comparable](maxItems int) Option[T] {
	return func(n *Node[T]) {
		n.maxItems = maxItems
	}
}

// New creates the root node of a quadtree covering bounds and inserts
// the given initial items through the standard insert path, in order.
//
// New returns an error wrapping ErrInvalidBounds if bounds encloses no
// area, and an error wrapping ErrOutOfBounds if an initial item lies
// outside bounds. A failed item aborts construction but items inserted
// before it are not rolled back; the returned node is nil either way.
func New[T comparable](bounds geom.Rect, items []Item[T], opts ...Option[T]) (*Node[T], error) {
	if bounds.Empty() {
		return nil, wrapErr("cannot create node with bounds %s", ErrInvalidBounds, bounds)
	}
	n := &Node[T]{
		bounds:   bounds,
		depth:    DefaultDepth,
		maxItems: DefaultMaxItems,
	}
	for _, opt := range opts {
		opt(n)
	}
	if err := n.Insert(items...); err != nil {
		return nil, err
	}
	return n, nil
}

// Bounds returns the node's bounding rectangle. Bounds are fixed at
// construction and never change.
func (n *Node[T]) Bounds() geom.Rect {
	return n.bounds
}

// Depth returns the node's remaining subdivision depth budget.
func (n *Node[T]) Depth() int {
	return n.depth
}

// MaxItems returns the node's direct item capacity.
func (n *Node[T]) MaxItems() int {
	return n.maxItems
}

// Insert adds the given items to the subtree, in order. Each item is
// classified against the node's bounds: an outside item fails the
// insert with an error wrapping ErrOutOfBounds, a mid-line item stays
// with this node, and a quadrant item is either held directly (leaf)
// or delegated to the matching child (split node). A leaf whose direct
// item count exceeds its capacity splits once, provided it has depth
// remaining.
//
// The first failing item stops the batch; items inserted before it are
// not rolled back. A failed item itself is never partially added.
func (n *Node[T]) Insert(items ...Item[T]) error {
	for _, item := range items {
		if err := n.insert(item); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node[T]) insert(item Item[T]) error {
	region := n.Classify(item.Position)
	switch {
	case region == Outside:
		return wrapErr("cannot insert item at %s into node bounded by %s",
			ErrOutOfBounds, item.Position, n.bounds)
	case region == OnMidline:
		// Mid-line items always stay put and never trigger a split.
		n.items = append(n.items, item)
	case n.depth <= 0:
		n.items = append(n.items, item)
	case n.children != nil:
		return n.children[region.quadrant()].insert(item)
	default:
		n.items = append(n.items, item)
		if len(n.items) > n.maxItems {
			n.split()
		}
	}
	return nil
}

// split transitions a leaf into a split node: four children are
// created, one per quadrant of the node's bounds, each with one level
// less depth and the same capacity, and every directly held item that
// classifies into a quadrant is reinserted into the matching child.
// Mid-line items remain with this node.
func (n *Node[T]) split() {
	rects := n.bounds.Quadrants()
	children := new(quad[T])
	for q := range children {
		children[q] = &Node[T]{
			bounds:   rects[q],
			depth:    n.depth - 1,
			maxItems: n.maxItems,
			parent:   n,
		}
	}
	n.children = children

	held := n.items
	n.items = nil
	for _, item := range held {
		region := n.Classify(item.Position)
		if !region.IsQuadrant() {
			n.items = append(n.items, item)
			continue
		}
		// Accepted items are strictly interior to their quadrant, so
		// reinsertion cannot fail.
		if err := children[region.quadrant()].insert(item); err != nil {
			fmtPanic("item at %s escaped bounds %s during split", item.Position, n.bounds)
		}
	}
}

// Clear resets the node to an empty leaf, discarding its direct items
// and its entire subtree of descendants.
func (n *Node[T]) Clear() {
	n.items = nil
	n.children = nil
}

// Count returns the total number of items stored in the subtree.
func (n *Node[T]) Count() int {
	count := len(n.items)
	if n.children != nil {
		for _, child := range n.children {
			count += child.Count()
		}
	}
	return count
}
