package game

import (
	"github.com/katalvlaran/mazegraph/builder"
	"github.com/katalvlaran/mazegraph/prim_kruskal"
)

// Option customizes a RectGame.
type Option func(*RectGame)

// WithSeed fixes the maze seed: every Start then carves the same maze.
// A seed <= 0 carves a new maze per Start.
func WithSeed(seed int64) Option {
	return func(g *RectGame) {
		g.buildOpts = append(g.buildOpts, builder.WithSeed(seed))
	}
}

// WithMethod selects the spanning-tree algorithm used by Start.
func WithMethod(m prim_kruskal.Method) Option {
	return func(g *RectGame) {
		g.buildOpts = append(g.buildOpts, builder.WithMethod(m))
	}
}
