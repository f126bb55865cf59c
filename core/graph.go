// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: arena-owned vertex table and edge storage.
//
// Concurrency:
//   - One sync.RWMutex guards the whole table; queries take the read lock.
//   - Slices returned to callers are copies.

package core

import (
	"sync"

	"github.com/pkg/errors"
)

// vertex is one arena slot.
type vertex struct {
	edges []DirectionalEdge
	tag   Tag
}

// Graph is a fixed-size table of vertices with direction-labelled outgoing
// edges. The vertex count never changes after NewGraph; edges are added and
// cleared while a maze is generated.
type Graph struct {
	mu       sync.RWMutex
	vertices []vertex
}

// NewGraph allocates a graph with n vertices, all tagged TagBackground and
// without edges. Negative n is treated as 0.
//
// Complexity: O(n) time and space.
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	return &Graph{vertices: make([]vertex, n)}
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertices)
}

// Vertices returns every vertex handle in table order.
func (g *Graph) Vertices() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]VertexID, len(g.vertices))
	for i := range out {
		out[i] = VertexID(i)
	}
	return out
}

// HasVertex reports whether id names a slot of g.
func (g *Graph) HasVertex(id VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.inRange(id)
}

// inRange must be called with g.mu held.
func (g *Graph) inRange(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}

func (g *Graph) rangeErr(id VertexID) error {
	return errors.Wrapf(ErrVertexOutOfRange, "vertex %d, graph has %d", id, len(g.vertices))
}

// AddEdge appends e to the edge list of e.From.
//
// Errors:
//   - ErrVertexOutOfRange if either endpoint is unknown.
//   - ErrBadDirection if e.Direction is not valid.
func (g *Graph) AddEdge(e DirectionalEdge) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.addEdgeLocked(e)
}

func (g *Graph) addEdgeLocked(e DirectionalEdge) error {
	if !g.inRange(e.From) {
		return g.rangeErr(e.From)
	}
	if !g.inRange(e.To) {
		return g.rangeErr(e.To)
	}
	if !e.Direction.Valid() {
		return errors.Wrapf(ErrBadDirection, "edge %s", e)
	}
	g.vertices[e.From].edges = append(g.vertices[e.From].edges, e)
	return nil
}

// OpenWall installs e on e.From and its mirror on e.To under one lock, so
// readers never observe a half-open wall.
func (g *Graph) OpenWall(e DirectionalEdge) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.addEdgeLocked(e); err != nil {
		return err
	}
	return g.addEdgeLocked(e.Mirror())
}

// Edges returns a copy of the outgoing edges of id in insertion order.
func (g *Graph) Edges(id VertexID) ([]DirectionalEdge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.inRange(id) {
		return nil, g.rangeErr(id)
	}
	src := g.vertices[id].edges
	out := make([]DirectionalEdge, len(src))
	copy(out, src)
	return out, nil
}

// AllEdges returns every edge of every vertex, vertices in table order and
// each vertex's edges in insertion order.
//
// Complexity: O(V + E).
func (g *Graph) AllEdges() []DirectionalEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for i := range g.vertices {
		n += len(g.vertices[i].edges)
	}
	out := make([]DirectionalEdge, 0, n)
	for i := range g.vertices {
		out = append(out, g.vertices[i].edges...)
	}
	return out
}

// EdgeCount returns the total number of stored directed edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for i := range g.vertices {
		n += len(g.vertices[i].edges)
	}
	return n
}

// RemoveAllEdges clears every vertex's edge list. Tags are kept.
func (g *Graph) RemoveAllEdges() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.vertices {
		g.vertices[i].edges = nil
	}
}

// HasEdgeIn reports whether id has an outgoing edge heading d. Unknown
// vertices and invalid directions report false.
func (g *Graph) HasEdgeIn(id VertexID, d Direction) bool {
	_, err := g.EdgeIn(id, d)
	return err == nil
}

// EdgeIn returns the first outgoing edge of id heading d.
//
// Errors:
//   - ErrVertexOutOfRange, ErrBadDirection for bad input.
//   - ErrNoEdge if id has no such edge (a wall).
func (g *Graph) EdgeIn(id VertexID, d Direction) (DirectionalEdge, error) {
	if !d.Valid() {
		return DirectionalEdge{}, errors.Wrapf(ErrBadDirection, "vertex %d", id)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.inRange(id) {
		return DirectionalEdge{}, g.rangeErr(id)
	}
	for _, e := range g.vertices[id].edges {
		if e.Direction == d {
			return e, nil
		}
	}
	return DirectionalEdge{}, errors.Wrapf(ErrNoEdge, "vertex %d heading %s", id, d)
}

// NeighborIn returns the vertex reached from id by heading d. Errors as EdgeIn.
func (g *Graph) NeighborIn(id VertexID, d Direction) (VertexID, error) {
	e, err := g.EdgeIn(id, d)
	if err != nil {
		return NoVertex, err
	}
	return e.To, nil
}

// Tag returns the display tag of id.
func (g *Graph) Tag(id VertexID) (Tag, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.inRange(id) {
		return TagBackground, g.rangeErr(id)
	}
	return g.vertices[id].tag, nil
}

// SetTag replaces the display tag of id.
func (g *Graph) SetTag(id VertexID, t Tag) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.inRange(id) {
		return g.rangeErr(id)
	}
	g.vertices[id].tag = t
	return nil
}

// ResetTags sets every vertex back to TagBackground.
func (g *Graph) ResetTags() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.vertices {
		g.vertices[i].tag = TagBackground
	}
}
