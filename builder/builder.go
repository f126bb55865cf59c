// SPDX-License-Identifier: MIT
// Package: mazegraph/builder
//
// builder.go — the steppable build pipeline shared by every variant.
//
// Pipeline (per BuildIncrementally):
//   1. resolve the RNG (shared stream, fixed seed, or fresh time seed);
//   2. lay out the variant's lattice;
//   3. compute the spanning tree with the configured method;
//   4. strip all lattice edges and queue the tree edges in acceptance order.
// NextBuild then opens one queued wall per call.

package builder

import (
	"math/rand"
	"time"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/mazegraph/core"
	"github.com/katalvlaran/mazegraph/prim_kruskal"
)

// Builder is the build driver interface consumed by hosts.
type Builder interface {
	// HasNextBuild reports whether a wall is still pending.
	HasNextBuild() bool
	// NextBuild opens the next pending wall. ErrNoNextBuild when none is pending.
	NextBuild() error
	// BuildIncrementally prepares a fresh fully walled maze and its pending
	// queue, and returns the graph that NextBuild will carve.
	BuildIncrementally() (*core.Graph, error)
	// BuildInstant is BuildIncrementally followed by draining every step.
	BuildInstant() (*core.Graph, error)
	// Remaining returns the number of pending walls.
	Remaining() int
	// Graph returns the graph of the latest build, or nil before the first.
	Graph() *core.Graph
	// Seed returns the seed of the latest build; 0 when a shared RNG was used.
	Seed() int64
}

// layoutFn lays out a variant's candidate lattice.
type layoutFn func(cfg builderConfig, rng *rand.Rand) (*core.Graph, error)

// pipeline implements Builder for any lattice.
type pipeline struct {
	kind    string
	cfg     builderConfig
	layout  layoutFn
	graph   *core.Graph
	pending *linkedlistqueue.Queue
	seed    int64
}

func (p *pipeline) random() *rand.Rand {
	if p.cfg.rng != nil {
		p.seed = 0
		return p.cfg.rng
	}
	p.seed = p.cfg.seed
	if p.seed <= 0 {
		p.seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(p.seed))
}

// BuildIncrementally implements Builder.
func (p *pipeline) BuildIncrementally() (*core.Graph, error) {
	g, err := p.layout(p.cfg, p.random())
	if err != nil {
		return nil, errors.WithMessagef(err, "builder: %s lattice", p.kind)
	}
	tree, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(p.cfg.method))
	if err != nil {
		return nil, errors.WithMessagef(err, "builder: %s spanning tree", p.kind)
	}
	g.RemoveAllEdges()

	q := linkedlistqueue.New()
	for _, e := range tree {
		q.Enqueue(e)
	}
	p.graph, p.pending = g, q
	klog.V(2).Infof("builder: %s maze ready, %d cells, %d walls pending (method %s, seed %d)",
		p.kind, g.VertexCount(), q.Size(), p.cfg.method, p.seed)
	return g, nil
}

// HasNextBuild implements Builder.
func (p *pipeline) HasNextBuild() bool {
	return p.pending != nil && !p.pending.Empty()
}

// NextBuild implements Builder.
func (p *pipeline) NextBuild() error {
	if !p.HasNextBuild() {
		return ErrNoNextBuild
	}
	head, _ := p.pending.Dequeue()
	e := head.(core.DirectionalEdge)
	if err := p.graph.OpenWall(e); err != nil {
		return errors.WithMessagef(err, "builder: open %s", e)
	}
	klog.V(4).Infof("builder: opened %s, %d left", e, p.pending.Size())
	if p.pending.Empty() {
		klog.V(2).Infof("builder: %s maze complete, %d edges", p.kind, p.graph.EdgeCount())
	}
	return nil
}

// BuildInstant implements Builder.
func (p *pipeline) BuildInstant() (*core.Graph, error) {
	g, err := p.BuildIncrementally()
	if err != nil {
		return nil, err
	}
	for p.HasNextBuild() {
		if err = p.NextBuild(); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Remaining implements Builder.
func (p *pipeline) Remaining() int {
	if p.pending == nil {
		return 0
	}
	return p.pending.Size()
}

// Graph implements Builder.
func (p *pipeline) Graph() *core.Graph { return p.graph }

// Seed implements Builder.
func (p *pipeline) Seed() int64 { return p.seed }
