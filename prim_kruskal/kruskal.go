// Package prim_kruskal computes spanning trees of maze lattices.
package prim_kruskal

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/mazegraph/core"
	"github.com/katalvlaran/mazegraph/disjoint"
)

// Kruskal returns the edges of a minimum spanning tree of g in acceptance
// order (ascending weight, ties broken by lattice order).
//
// Every stored edge is treated as undirected. The graph is not modified.
//
// Steps:
//  1. Collect g.AllEdges() (vertex order, then insertion order).
//  2. Stable-sort ascending by Weight.
//  3. Accept an edge iff its endpoints are in different partitions, then
//     union them. Stop once |V|-1 edges are accepted.
//
// Errors:
//   - ErrInvalidGraph for a nil graph.
//   - ErrDisconnected if fewer than |V|-1 edges could be accepted.
//
// Complexity: O(E log E + E·α). Memory: O(V + E).
func Kruskal(g *core.Graph) ([]core.DirectionalEdge, error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, errors.Wrap(ErrDisconnected, "empty graph")
	}
	need := len(vertices) - 1
	tree := make([]core.DirectionalEdge, 0, need)
	if need == 0 {
		return tree, nil
	}

	edges := g.AllEdges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parts := disjoint.New(vertices)
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		joined, err := parts.Connected(e.From, e.To)
		if err != nil {
			return nil, errors.Wrapf(err, "kruskal: edge %s", e)
		}
		if joined {
			continue
		}
		if err = parts.Union(e.From, e.To); err != nil {
			return nil, err
		}
		tree = append(tree, e)
		if len(tree) == need {
			break
		}
	}
	if len(tree) < need {
		return nil, errors.Wrapf(ErrDisconnected, "accepted %d of %d edges", len(tree), need)
	}
	return tree, nil
}
