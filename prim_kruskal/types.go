// Package prim_kruskal defines configuration options and sentinel errors for
// spanning-tree computation over a maze lattice.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/mazegraph/core"
)

// ErrInvalidGraph indicates a nil graph.
var ErrInvalidGraph = fmt.Errorf("%w: prim_kruskal: nil graph", core.ErrInvalidArgument)

// ErrDisconnected indicates that fewer than |V|-1 edges could be accepted:
// the lattice does not span its vertices.
var ErrDisconnected = fmt.Errorf("%w: prim_kruskal: graph is disconnected", core.ErrTopologyViolation)

// ErrBadMethod indicates an unknown Method value.
var ErrBadMethod = fmt.Errorf("%w: prim_kruskal: unknown method", core.ErrInvalidArgument)

// ErrBadRoot indicates a Prim root outside the graph.
var ErrBadRoot = fmt.Errorf("%w: prim_kruskal: root vertex not in graph", core.ErrInvalidArgument)

// Method selects the spanning-tree algorithm.
type Method string

// MethodKruskal selects Kruskal's algorithm (sort all edges, union-find).
const MethodKruskal Method = "kruskal"

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim Method = "prim"

// MSTOptions configures Compute.
//
// Fields:
//
//	Method — MethodKruskal (default) or MethodPrim.
//	Root   — start vertex for Prim; ignored by Kruskal.
type MSTOptions struct {
	Method Method
	Root   core.VertexID
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm.
func WithMethod(m Method) Option {
	return func(o *MSTOptions) { o.Method = m }
}

// WithRoot sets Prim's start vertex.
func WithRoot(root core.VertexID) Option {
	return func(o *MSTOptions) { o.Root = root }
}

// DefaultOptions returns Kruskal rooted at vertex 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal, Root: 0}
}

// ParseMethod maps "kruskal" or "prim" to a Method.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case MethodKruskal, MethodPrim:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadMethod, s)
	}
}
