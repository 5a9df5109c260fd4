// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package quadtree provides a region-based point quadtree for
// two-dimensional point-tagged values, supporting incremental
// insertion with automatic subdivision, rectangular range queries, and
// smallest-enclosing-subtree lookups.
//
// A tree is a recursive structure of nodes. Each node owns a fixed
// bounding rectangle and either holds its items directly (a leaf) or
// delegates them to four children, one per quadrant of its bounds.
// A leaf splits the first time its direct item count exceeds its
// configured capacity, provided it has subdivision depth remaining;
// once split, a node never reverts to a leaf. Items positioned exactly
// on a node's mid lines cannot be assigned a unique quadrant and stay
// with that node regardless of its split state.
//
// Trees only grow: there is no item removal and no re-merging of
// children, only Clear, which discards an entire subtree at once.
//
// The structure is not safe for concurrent mutation. An insert can
// mutate arbitrarily deep descendants, so callers that share a tree
// across goroutines must serialize access externally.
package quadtree
