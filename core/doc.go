// Package core provides the graph model shared by every maze package:
// arena-owned vertices addressed by VertexID, direction-labelled edges,
// display tags, and the error taxonomy used across the module.
//
// Model
//
//   - A Graph owns a fixed table of vertices created at construction. A vertex
//     is its index in that table (VertexID); two handles are equal iff their
//     indices are equal.
//   - Each vertex stores an ordered slice of outgoing DirectionalEdge values
//     and a Tag. Edge order is insertion order and is observable: searches
//     expand neighbours in that order.
//   - Openings between cells are stored twice, once per endpoint, with
//     opposite directions (see DirectionalEdge.Mirror and Graph.OpenWall).
//
// Concurrency
//
//	Graph guards its table with a sync.RWMutex. Readers (renderers polling
//	tags) may run alongside a single stepping writer. Every query returns
//	copies, never internal slices.
//
// Errors
//
//	ErrInvalidArgument   - bad input: unknown vertex, missing edge, bad value.
//	ErrInvalidState      - an operation was called outside its legal phase.
//	ErrTopologyViolation - a structural invariant was found broken; it wraps
//	                       ErrInvalidState so callers may treat it as either.
//
// Package errors in the rest of the module wrap one of these roots, so
// errors.Is(err, core.ErrInvalidArgument) works module-wide.
package core
