// SPDX-License-Identifier: MIT

package core

import "fmt"

// DirectionalEdge is a one-way link From -> To heading Direction.
//
// Weight is only meaningful while a maze is being generated: lattice edges
// carry random weights for the spanning-tree pass, openings installed by a
// builder carry the weight of the tree edge on one side and 0 on the mirror.
type DirectionalEdge struct {
	From      VertexID
	To        VertexID
	Direction Direction
	Weight    int
}

// Mirror returns the reverse edge To -> From heading Direction.Opposite(),
// with zero weight.
func (e DirectionalEdge) Mirror() DirectionalEdge {
	return DirectionalEdge{
		From:      e.To,
		To:        e.From,
		Direction: e.Direction.Opposite(),
	}
}

// String renders the edge as "from-DIR->to".
func (e DirectionalEdge) String() string {
	return fmt.Sprintf("%d-%s->%d", e.From, e.Direction, e.To)
}
