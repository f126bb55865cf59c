package prim_kruskal

import (
	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/utils"
	"github.com/pkg/errors"

	"github.com/katalvlaran/mazegraph/core"
)

// candidate is a frontier entry. seq breaks weight ties in push order so
// that the result is fully determined by the lattice.
type candidate struct {
	edge core.DirectionalEdge
	seq  int
}

func byWeightThenSeq(a, b interface{}) int {
	ca, cb := a.(candidate), b.(candidate)
	if c := utils.IntComparator(ca.edge.Weight, cb.edge.Weight); c != 0 {
		return c
	}
	return utils.IntComparator(ca.seq, cb.seq)
}

// Prim grows a minimum spanning tree from root and returns its edges in
// acceptance order. Stored edges are treated as undirected; each accepted
// edge is returned exactly as it is stored in g.
//
// Steps:
//  1. Index every edge under both endpoints.
//  2. Push the edges incident to root onto a min-heap.
//  3. Pop the cheapest edge; if exactly one endpoint is in the tree, accept
//     it and push the new vertex's incident edges.
//
// Errors: ErrInvalidGraph, ErrBadRoot, ErrDisconnected.
//
// Complexity: O(E log E).
func Prim(g *core.Graph, root core.VertexID) ([]core.DirectionalEdge, error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, errors.Wrap(ErrDisconnected, "empty graph")
	}
	if !g.HasVertex(root) {
		return nil, errors.Wrapf(ErrBadRoot, "root %d", root)
	}

	incident := make([][]core.DirectionalEdge, n)
	for _, e := range g.AllEdges() {
		if e.From == e.To {
			continue
		}
		incident[e.From] = append(incident[e.From], e)
		incident[e.To] = append(incident[e.To], e)
	}

	inTree := make([]bool, n)
	frontier := priorityqueue.NewWith(byWeightThenSeq)
	seq := 0
	grow := func(v core.VertexID) {
		inTree[v] = true
		for _, e := range incident[v] {
			frontier.Enqueue(candidate{edge: e, seq: seq})
			seq++
		}
	}

	need := n - 1
	tree := make([]core.DirectionalEdge, 0, need)
	grow(root)
	for len(tree) < need {
		top, ok := frontier.Dequeue()
		if !ok {
			return nil, errors.Wrapf(ErrDisconnected, "accepted %d of %d edges", len(tree), need)
		}
		e := top.(candidate).edge
		switch {
		case inTree[e.From] && !inTree[e.To]:
			tree = append(tree, e)
			grow(e.To)
		case inTree[e.To] && !inTree[e.From]:
			tree = append(tree, e)
			grow(e.From)
		}
	}
	return tree, nil
}

// Compute runs the configured algorithm.
func Compute(g *core.Graph, opts ...Option) ([]core.DirectionalEdge, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, o.Root)
	default:
		return nil, errors.Wrapf(ErrBadMethod, "%q", o.Method)
	}
}
