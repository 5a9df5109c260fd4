// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"fmt"
	"strings"
)

// String returns a summary description of the item.
func (i Item[T]) String() string {
	return fmt.Sprintf("Item{%s,Value:%v}", i.Position, i.Value)
}

// String returns a summary description of the node and its subtree.
func (n *Node[T]) String() string {
	var b strings.Builder
	b.WriteString("Node{Bounds:")
	b.WriteString(n.bounds.String())
	fmt.Fprintf(&b, ",Depth:%d,MaxItems:%d,Count:%d", n.depth, n.maxItems, n.Count())
	if n.children != nil {
		b.WriteString(",Split")
	}
	b.WriteByte('}')
	return b.String()
}
