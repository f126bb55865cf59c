// Package dfs provides depth-first search over a maze graph.
//
// DFS follows one corridor until it dead-ends before backtracking. It finds
// the same path as BFS on a perfect maze but usually expands a different
// set of cells; on graphs with cycles its path may be longer.
package dfs

import (
	"github.com/katalvlaran/mazegraph/core"
	"github.com/katalvlaran/mazegraph/search"
)

// New prepares a depth-first search from origin to target.
func New(g *core.Graph, origin, target core.VertexID) (*search.Search, error) {
	return search.New(g, search.NewStack(), origin, target)
}

// Solve runs the search phase instantly and returns the origin-to-target path.
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
