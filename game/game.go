package game

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/mazegraph/builder"
	"github.com/katalvlaran/mazegraph/core"
	"github.com/katalvlaran/mazegraph/gridgraph"
	"github.com/katalvlaran/mazegraph/search"
)

// State is the read-only view a renderer polls.
type State interface {
	IsSolved() bool
	Height() int
	Width() int
	Vertices() []core.VertexID
	Origin() core.VertexID
	Current() core.VertexID
	Target() core.VertexID
	HasEdgeIn(v core.VertexID, d core.Direction) bool
	NeighborIn(v core.VertexID, d core.Direction) (core.VertexID, error)
	Tag(v core.VertexID) (core.Tag, error)
}

// RectGame is one rectangular maze session. It is driven from a single
// goroutine; the graph it exposes may be read concurrently.
type RectGame struct {
	height, width int
	bias          float64
	buildOpts     []builder.BuilderOption

	id      uuid.UUID
	seed    int64
	geo     gridgraph.Rect
	graph   *core.Graph
	ends    core.Endpoints
	current core.VertexID
	free    bool
	trail   search.Worklist
}

var _ State = (*RectGame)(nil)

// NewRect validates the session parameters. No maze exists until Start.
//
// Errors: ErrBadDimensions, ErrBadBias.
func NewRect(height, width int, bias float64, opts ...Option) (*RectGame, error) {
	if height < MinSide || height > MaxHeight || width < MinSide || width > MaxWidth {
		return nil, errors.Wrapf(ErrBadDimensions, "got %dx%d", height, width)
	}
	if !(bias >= 0 && bias <= 1) {
		return nil, errors.Wrapf(ErrBadBias, "got %v", bias)
	}
	g := &RectGame{
		height:  height,
		width:   width,
		bias:    bias,
		geo:     gridgraph.Rect{Height: height, Width: width},
		current: core.NoVertex,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Start discards the current maze and prepares a fresh, fully walled one.
// The returned builder carves it; movement stays locked until
// SetFreeToMove(true).
func (g *RectGame) Start() (builder.Builder, error) {
	opts := append([]builder.BuilderOption{
		builder.WithHeight(g.height),
		builder.WithWidth(g.width),
		builder.WithBias(g.bias),
	}, g.buildOpts...)
	b := builder.NewRect(opts...)
	maze, err := b.BuildIncrementally()
	if err != nil {
		return nil, errors.WithMessage(err, "game: start")
	}

	g.id = uuid.New()
	g.seed = b.Seed()
	g.graph = maze
	g.ends = core.Endpoints{Origin: 0, Target: core.VertexID(g.geo.Len() - 1)}
	g.current = g.ends.Origin
	g.free = false
	g.trail = search.NewStack()
	if err = maze.SetTag(g.ends.Origin, core.TagOrigin); err != nil {
		return nil, err
	}
	if err = maze.SetTag(g.ends.Target, core.TagTarget); err != nil {
		return nil, err
	}
	klog.Infof("game %s: new %dx%d maze, bias %.2f, seed %d", g.id, g.height, g.width, g.bias, g.seed)
	return b, nil
}

// Move walks the player one cell heading d.
//
// The trail keeps the player's way back: stepping onto the top breadcrumb
// pops it, any other step pushes the cell being left unless it is pinned.
// The cell left is tagged TagUserVisited and the cell entered TagCursor,
// except for the target, which keeps its tag.
//
// Errors:
//   - core.ErrBadDirection for an unknown d.
//   - ErrNotStarted, ErrNotFreeToMove when movement is not allowed.
//   - core.ErrNoEdge when a wall blocks d.
func (g *RectGame) Move(d core.Direction) error {
	if !d.Valid() {
		return errors.Wrapf(core.ErrBadDirection, "game: move %d", d)
	}
	if g.graph == nil {
		return ErrNotStarted
	}
	if !g.free {
		return errors.Wrapf(ErrNotFreeToMove, "move %s", d)
	}
	next, err := g.graph.NeighborIn(g.current, d)
	if err != nil {
		return errors.WithMessagef(err, "game: move %s from %d", d, g.current)
	}
	if err = g.ends.Retag(g.graph, g.current, core.TagUserVisited); err != nil {
		return err
	}
	if err = g.ends.Retag(g.graph, next, core.TagCursor); err != nil {
		return err
	}
	if top, ok := g.trail.Peek(); ok && top == next {
		g.trail.Remove()
	} else if !g.ends.Pinned(g.current) {
		g.trail.Add(g.current)
	}
	g.current = next
	klog.V(2).Infof("game %s: %s to %d, trail %d", g.id, d, next, g.trail.Size())
	return nil
}

// BFS locks movement, returns the player to the origin and prepares a
// breadth-first search to the target.
func (g *RectGame) BFS() (*search.Search, error) {
	return g.solve(search.NewQueue(), SolverBFS)
}

// DFS is BFS with a depth-first worklist.
func (g *RectGame) DFS() (*search.Search, error) {
	return g.solve(search.NewStack(), SolverDFS)
}

func (g *RectGame) solve(w search.Worklist, name Solver) (*search.Search, error) {
	if g.graph == nil {
		return nil, ErrNotStarted
	}
	if !g.free {
		return nil, errors.Wrapf(ErrNotFreeToMove, "solve %s", name)
	}
	g.free = false
	g.current = g.ends.Origin
	s, err := search.New(g.graph, w, g.ends.Origin, g.ends.Target)
	if err != nil {
		return nil, err
	}
	klog.V(2).Infof("game %s: %s solve started", g.id, name)
	return s, nil
}

// Reconstruct returns a replay of the player's trail. The replay consumes
// the trail.
func (g *RectGame) Reconstruct() (*search.Replay, error) {
	if g.graph == nil {
		return nil, ErrNotStarted
	}
	return search.NewReplay(g.graph, g.trail)
}

// SetFreeToMove locks or unlocks movement.
func (g *RectGame) SetFreeToMove(free bool) { g.free = free }

// FreeToMove reports whether Move and the solvers are allowed.
func (g *RectGame) FreeToMove() bool { return g.free }

// IsSolved reports whether the player stands on the target.
func (g *RectGame) IsSolved() bool {
	return g.graph != nil && g.current == g.ends.Target
}

// Height returns the number of rows.
func (g *RectGame) Height() int { return g.height }

// Width returns the number of columns.
func (g *RectGame) Width() int { return g.width }

// Bias returns the orientation bias.
func (g *RectGame) Bias() float64 { return g.bias }

// Geometry returns the row/column mapping.
func (g *RectGame) Geometry() gridgraph.Rect { return g.geo }

// Vertices returns all cells in row-major order, or nil before Start.
func (g *RectGame) Vertices() []core.VertexID {
	if g.graph == nil {
		return nil
	}
	return g.graph.Vertices()
}

// Origin returns the start cell.
func (g *RectGame) Origin() core.VertexID { return g.ends.Origin }

// Current returns the player's cell, core.NoVertex before Start.
func (g *RectGame) Current() core.VertexID { return g.current }

// Target returns the goal cell.
func (g *RectGame) Target() core.VertexID { return g.ends.Target }

// HasEdgeIn reports whether v has an opening heading d.
func (g *RectGame) HasEdgeIn(v core.VertexID, d core.Direction) bool {
	return g.graph != nil && g.graph.HasEdgeIn(v, d)
}

// NeighborIn returns the cell through v's opening heading d.
func (g *RectGame) NeighborIn(v core.VertexID, d core.Direction) (core.VertexID, error) {
	if g.graph == nil {
		return core.NoVertex, ErrNotStarted
	}
	return g.graph.NeighborIn(v, d)
}

// Tag returns v's display tag.
func (g *RectGame) Tag(v core.VertexID) (core.Tag, error) {
	if g.graph == nil {
		return core.TagBackground, ErrNotStarted
	}
	return g.graph.Tag(v)
}

// Graph returns the maze graph, nil before Start. Hosts write tags through it.
func (g *RectGame) Graph() *core.Graph { return g.graph }

// ID identifies the maze of the latest Start.
func (g *RectGame) ID() uuid.UUID { return g.id }

// Seed returns the seed of the latest Start.
func (g *RectGame) Seed() int64 { return g.seed }

// Trail returns the breadcrumbs, most recent first.
func (g *RectGame) Trail() []core.VertexID {
	if g.trail == nil {
		return nil
	}
	return g.trail.Values()
}
