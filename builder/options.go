// SPDX-License-Identifier: MIT
// Package: mazegraph/builder
//
// options.go — functional options for maze builders.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors panic only on programmer error (nil RNG, empty
//     method). Numeric knobs are validated when a build starts and reported
//     as errors, since they usually come from user input.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/mazegraph/prim_kruskal"
)

// BuilderOption customizes a builder before its first build.
type BuilderOption func(*builderConfig)

// WithHeight sets the number of rows of a rectangular maze.
func WithHeight(h int) BuilderOption {
	return func(c *builderConfig) { c.height = h }
}

// WithWidth sets the number of columns of a rectangular maze.
func WithWidth(w int) BuilderOption {
	return func(c *builderConfig) { c.width = w }
}

// WithSize sets the radius of a hexagonal maze.
func WithSize(s int) BuilderOption {
	return func(c *builderConfig) { c.size = s }
}

// WithBias sets the orientation bias in [0, 1]. Values near 1 favour
// vertical corridors, values near 0 horizontal ones.
func WithBias(b float64) BuilderOption {
	return func(c *builderConfig) { c.bias = b }
}

// WithSeed fixes the seed of every build. A seed <= 0 asks for a fresh
// time-based seed per build; the seed actually used is reported by Seed().
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand shares one RNG stream across builds. Consecutive builds then
// differ; use WithSeed to reproduce a maze. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithMethod selects the spanning-tree algorithm. Panics on the empty method.
func WithMethod(m prim_kruskal.Method) BuilderOption {
	if m == "" {
		panic("builder: WithMethod(\"\")")
	}
	return func(c *builderConfig) { c.method = m }
}
