package search

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/mazegraph/core"
)

// Search is an incremental origin-to-target search followed by a
// came-from walk back to the origin. It is not safe for concurrent use.
type Search struct {
	graph    *core.Graph
	worklist Worklist
	ends     core.Endpoints

	visited  map[core.VertexID]bool
	cameFrom map[core.VertexID]core.DirectionalEdge
	current  core.VertexID

	expanded int
	skipped  int
}

// New prepares a search from origin to target, seeding worklist with origin.
// The worklist should be empty; its removal order decides BFS or DFS.
//
// Errors: ErrNilGraph, ErrNilWorklist, ErrUnknownEndpoint.
func New(g *core.Graph, worklist Worklist, origin, target core.VertexID) (*Search, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if worklist == nil {
		return nil, ErrNilWorklist
	}
	for _, v := range []core.VertexID{origin, target} {
		if !g.HasVertex(v) {
			return nil, errors.Wrapf(ErrUnknownEndpoint, "vertex %d of %d", v, g.VertexCount())
		}
	}
	worklist.Add(origin)
	return &Search{
		graph:    g,
		worklist: worklist,
		ends:     core.Endpoints{Origin: origin, Target: target},
		visited:  make(map[core.VertexID]bool),
		cameFrom: make(map[core.VertexID]core.DirectionalEdge),
		current:  target,
	}, nil
}

// found reports whether the target has been discovered. An origin equal to
// the target counts as discovered from the start.
func (s *Search) found() bool {
	if s.ends.Origin == s.ends.Target {
		return true
	}
	_, ok := s.cameFrom[s.ends.Target]
	return ok
}

// HasNextSearch reports whether a search step remains. It fails with
// ErrTargetUnreachable when the worklist is exhausted before the target is
// discovered, which only happens on a graph that is not a spanning tree.
func (s *Search) HasNextSearch() (bool, error) {
	if s.found() {
		return false, nil
	}
	if s.worklist.Empty() {
		return false, errors.Wrapf(ErrTargetUnreachable, "from %d to %d after %d expansions",
			s.ends.Origin, s.ends.Target, s.expanded)
	}
	return true, nil
}

// IncrementSearch performs one search step and returns the vertex it
// expanded, or core.NoVertex when the candidate popped had already been
// visited (a skip step, which still counts as a step).
//
// Errors: ErrSearchComplete once the target is discovered; the error of
// HasNextSearch when the search cannot continue.
func (s *Search) IncrementSearch() (core.VertexID, error) {
	more, err := s.HasNextSearch()
	if err != nil {
		return core.NoVertex, err
	}
	if !more {
		return core.NoVertex, ErrSearchComplete
	}
	v, _ := s.worklist.Remove()
	if s.visited[v] {
		s.skipped++
		return core.NoVertex, nil
	}
	s.visited[v] = true
	s.expanded++
	if err = s.graph.SetTag(v, core.TagSearchVisited); err != nil {
		return core.NoVertex, err
	}
	edges, err := s.graph.Edges(v)
	if err != nil {
		return core.NoVertex, err
	}
	for _, e := range edges {
		s.worklist.Add(e.To)
		if s.visited[e.To] {
			continue
		}
		if _, seen := s.cameFrom[e.To]; !seen {
			s.cameFrom[e.To] = e
		}
	}
	if s.found() {
		klog.V(2).Infof("search: target %d found after %d expansions, %d skips", s.ends.Target, s.expanded, s.skipped)
	}
	return v, nil
}

// InstantSearch runs the search phase to completion.
func (s *Search) InstantSearch() error {
	for {
		more, err := s.HasNextSearch()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		if _, err = s.IncrementSearch(); err != nil {
			return err
		}
	}
}

// HasNextReconstruction reports whether a reconstruction step remains.
// It fails with ErrReconstructionImpossible when the walk stands on a vertex
// other than the origin that has no recorded predecessor, which is the case
// if reconstruction starts before the search found the target.
func (s *Search) HasNextReconstruction() (bool, error) {
	if s.current == s.ends.Origin {
		return false, nil
	}
	if _, ok := s.cameFrom[s.current]; !ok {
		return false, errors.Wrapf(ErrReconstructionImpossible, "at vertex %d", s.current)
	}
	return true, nil
}

// IncrementReconstruction tags the current vertex TagPath (the target keeps
// its own tag), steps to its predecessor, and returns the vertex it left.
func (s *Search) IncrementReconstruction() (core.VertexID, error) {
	more, err := s.HasNextReconstruction()
	if err != nil {
		return core.NoVertex, err
	}
	if !more {
		return core.NoVertex, ErrReconstructionComplete
	}
	left := s.current
	if err = s.ends.Retag(s.graph, left, core.TagPath); err != nil {
		return core.NoVertex, err
	}
	s.current = s.cameFrom[left].From
	if s.current == s.ends.Origin {
		klog.V(2).Infof("search: path from %d to %d reconstructed", s.ends.Origin, s.ends.Target)
	}
	return left, nil
}

// InstantReconstruction runs the reconstruction phase to completion.
func (s *Search) InstantReconstruction() error {
	for {
		more, err := s.HasNextReconstruction()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		if _, err = s.IncrementReconstruction(); err != nil {
			return err
		}
	}
}

// Path returns the origin-to-target vertex sequence using the recorded
// predecessors. It reads only and may be called at any time after the
// search phase finished.
func (s *Search) Path() ([]core.VertexID, error) {
	if !s.found() {
		return nil, errors.Wrapf(ErrReconstructionImpossible, "target %d not yet found", s.ends.Target)
	}
	path := []core.VertexID{s.ends.Target}
	for v := s.ends.Target; v != s.ends.Origin; {
		e, ok := s.cameFrom[v]
		if !ok {
			return nil, errors.Wrapf(ErrReconstructionImpossible, "at vertex %d", v)
		}
		v = e.From
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Origin returns the start vertex.
func (s *Search) Origin() core.VertexID { return s.ends.Origin }

// Target returns the goal vertex.
func (s *Search) Target() core.VertexID { return s.ends.Target }

// Current returns the reconstruction cursor (the target until the first
// reconstruction step).
func (s *Search) Current() core.VertexID { return s.current }

// Visited returns the number of vertices expanded so far.
func (s *Search) Visited() int { return s.expanded }

// IsVisited reports whether v has been expanded.
func (s *Search) IsVisited(v core.VertexID) bool { return s.visited[v] }
