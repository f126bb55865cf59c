// SPDX-License-Identifier: MIT

package core

// Endpoints names the origin and target of a maze run and decides, in one
// place, which vertices are landmarks.
//
// A pinned vertex keeps its tag during path reconstruction and is never
// recorded as a breadcrumb on the move trail. Only the target is pinned:
// the origin is painted like any other path cell when a reconstruction
// finishes.
type Endpoints struct {
	Origin VertexID
	Target VertexID
}

// Pinned reports whether v is a landmark that traversal must leave alone.
func (e Endpoints) Pinned(v VertexID) bool { return v == e.Target }

// Retag writes t on v unless v is pinned.
func (e Endpoints) Retag(g *Graph, v VertexID, t Tag) error {
	if e.Pinned(v) {
		return nil
	}
	return g.SetTag(v, t)
}
