// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command qtree is a small demonstration driver for the quadtree
// package. It seeds a tree with uniformly distributed random points
// tagged with UUID payloads, runs a rectangular range query and a
// smallest-enclosing-subtree lookup, and reports what it found.
package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/spatialgo/quadtree"
	"github.com/spatialgo/quadtree/geom"
)

var (
	width    float64
	height   float64
	count    int
	depth    int
	maxItems int
	seed     int64
	queryX   float64
	queryY   float64
	queryW   float64
	queryH   float64
)

var rootCmd = &cobra.Command{
	Use:   "qtree",
	Short: "Seed a point quadtree with random data and query it",
	RunE:  run,
}

func init() {
	rootCmd.Flags().Float64Var(&width, "width", 100, "width of the tree bounds")
	rootCmd.Flags().Float64Var(&height, "height", 100, "height of the tree bounds")
	rootCmd.Flags().IntVarP(&count, "count", "n", 10000, "number of random points to insert")
	rootCmd.Flags().IntVar(&depth, "depth", quadtree.DefaultDepth, "subdivision depth budget")
	rootCmd.Flags().IntVar(&maxItems, "max-items", quadtree.DefaultMaxItems, "direct item capacity per node")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the current time)")
	rootCmd.Flags().Float64Var(&queryX, "query-x", 25, "query rectangle origin X")
	rootCmd.Flags().Float64Var(&queryY, "query-y", 25, "query rectangle origin Y")
	rootCmd.Flags().Float64Var(&queryW, "query-w", 50, "query rectangle width")
	rootCmd.Flags().Float64Var(&queryH, "query-h", 50, "query rectangle height")
}

func run(cmd *cobra.Command, args []string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	bounds := geom.RectXYWH(0, 0, width, height)
	root, err := quadtree.New[string](bounds, nil,
		quadtree.WithDepth[string](depth),
		quadtree.WithMaxItems[string](maxItems))
	if err != nil {
		return err
	}
	log.Info().
		Stringer("bounds", bounds).
		Int("depth", depth).
		Int("max_items", maxItems).
		Int64("seed", seed).
		Msg("created tree")

	start := time.Now()
	inserted := 0
	for i := 0; i < count; i++ {
		item := quadtree.Item[string]{
			Position: geom.Pt(rng.Float64()*width, rng.Float64()*height),
			Value:    uuid.NewString(),
		}
		if err := root.Insert(item); err != nil {
			// Only positions exactly on the outer edge can fail.
			log.Warn().Err(err).Stringer("position", item.Position).Msg("skipped point")
			continue
		}
		inserted++
	}
	log.Info().
		Int("inserted", inserted).
		Int("count", root.Count()).
		Dur("elapsed", time.Since(start)).
		Msg("seeded tree")

	query := geom.RectXYWH(queryX, queryY, queryW, queryH)
	start = time.Now()
	hits := root.Within(query)
	log.Info().
		Stringer("query", query).
		Int("hits", len(hits)).
		Dur("elapsed", time.Since(start)).
		Msg("range query")

	if len(hits) > 0 {
		sample := hits[rng.Intn(len(hits))]
		sub := root.Enclosing(sample)
		log.Info().
			Stringer("item", sample).
			Stringer("subtree", sub).
			Msg("smallest enclosing subtree")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
