// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// Error taxonomy roots.
var (
	// ErrInvalidArgument indicates malformed input: out-of-range indices,
	// unknown members, invalid directions, missing edges.
	ErrInvalidArgument = errors.New("mazegraph: invalid argument")

	// ErrInvalidState indicates a call made outside its legal phase, e.g. a
	// step requested after completion or a move while movement is locked.
	ErrInvalidState = errors.New("mazegraph: invalid state")

	// ErrTopologyViolation signals that the graph breaks the spanning-tree
	// contract (for example a search exhausted its worklist without reaching
	// the target). It is an ErrInvalidState.
	ErrTopologyViolation = fmt.Errorf("%w: topology violation", ErrInvalidState)
)

// Sentinel errors for graph operations.
var (
	// ErrVertexOutOfRange indicates a VertexID outside the graph's table.
	ErrVertexOutOfRange = fmt.Errorf("%w: core: vertex out of range", ErrInvalidArgument)

	// ErrBadDirection indicates a Direction value outside the eight known ones.
	ErrBadDirection = fmt.Errorf("%w: core: unknown direction", ErrInvalidArgument)

	// ErrNoEdge indicates that a vertex has no outgoing edge in the requested direction.
	ErrNoEdge = fmt.Errorf("%w: core: no edge in direction", ErrInvalidArgument)
)
