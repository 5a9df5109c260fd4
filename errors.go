// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"errors"
	"fmt"
)

const packageName = "quadtree: "

var (
	// ErrInvalidBounds is returned by New when the requested node
	// bounds enclose no area (zero or negative width or height).
	ErrInvalidBounds = errors.New(packageName + "bounds must have positive width and height")

	// ErrOutOfBounds is returned by Insert, and by New for initial
	// items, when an item's position lies outside the node's bounds.
	// A position exactly on the node's outer edge is outside.
	ErrOutOfBounds = errors.New(packageName + "position is outside the node bounds")
)

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
