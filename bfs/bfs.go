// Package bfs provides breadth-first search over a maze graph.
//
// BFS expands cells in order of their distance from the origin, so the path
// it reconstructs has the fewest edges of any origin-target path. On a
// perfect maze that path is the only one; on graphs with cycles it is a
// shortest one.
//
// New returns a steppable search (see package search); Solve runs it to
// completion and returns the path.
package bfs

import (
	"github.com/katalvlaran/mazegraph/core"
	"github.com/katalvlaran/mazegraph/search"
)

// New prepares a breadth-first search from origin to target.
func New(g *core.Graph, origin, target core.VertexID) (*search.Search, error) {
	return search.New(g, search.NewQueue(), origin, target)
}

// Solve runs the search phase instantly and returns the origin-to-target path.
// The graph's tags are updated as the search visits cells; the path itself
// is not painted.
func Solve(g *core.Graph, origin, target core.VertexID) ([]core.VertexID, error) {
	s, err := New(g, origin, target)
	if err != nil {
		return nil, err
	}
	if err = s.InstantSearch(); err != nil {
		return nil, err
	}
	return s.Path()
}
