package search

import (
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/mazegraph/core"
)

// Replay paints a breadcrumb trail as a path, one popped vertex per step.
// Popping is destructive: the trail is empty when the replay finishes.
type Replay struct {
	graph *core.Graph
	trail Worklist
}

// NewReplay wraps trail for replay over g. Errors: ErrNilGraph, ErrNilWorklist.
func NewReplay(g *core.Graph, trail Worklist) (*Replay, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if trail == nil {
		return nil, ErrNilWorklist
	}
	return &Replay{graph: g, trail: trail}, nil
}

// HasNextReconstruction reports whether breadcrumbs remain.
func (r *Replay) HasNextReconstruction() bool { return !r.trail.Empty() }

// NextReconstruction pops the top breadcrumb, tags it TagPath and returns
// it. ErrReconstructionComplete when the trail is empty.
func (r *Replay) NextReconstruction() (core.VertexID, error) {
	v, ok := r.trail.Remove()
	if !ok {
		return core.NoVertex, ErrReconstructionComplete
	}
	if err := r.graph.SetTag(v, core.TagPath); err != nil {
		return core.NoVertex, err
	}
	if r.trail.Empty() {
		klog.V(2).Infof("search: trail replay finished at %d", v)
	}
	return v, nil
}

// InstantReconstruction pops the whole trail.
func (r *Replay) InstantReconstruction() error {
	for r.HasNextReconstruction() {
		if _, err := r.NextReconstruction(); err != nil {
			return err
		}
	}
	return nil
}

// Remaining returns the number of breadcrumbs left.
func (r *Replay) Remaining() int { return r.trail.Size() }
