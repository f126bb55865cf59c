package game

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/mazegraph/builder"
	"github.com/katalvlaran/mazegraph/core"
	"github.com/katalvlaran/mazegraph/search"
)

// Solver names an automated search.
type Solver string

const (
	SolverBFS Solver = "bfs"
	SolverDFS Solver = "dfs"
)

// ParseSolver accepts "bfs" or "dfs" in any case.
func ParseSolver(s string) (Solver, error) {
	switch v := Solver(strings.ToLower(s)); v {
	case SolverBFS, SolverDFS:
		return v, nil
	default:
		return "", errors.Wrapf(ErrUnknownSolver, "%q", s)
	}
}

// Phase is the activity a Driver advances on its next Tick.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseBuilding
	PhaseSearching
	PhaseReconstructing
	PhaseReplaying
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseBuilding:
		return "building"
	case PhaseSearching:
		return "searching"
	case PhaseReconstructing:
		return "reconstructing"
	case PhaseReplaying:
		return "replaying"
	default:
		return "unknown"
	}
}

// Step reports what one Tick did. Vertex is the cell touched, or
// core.NoVertex for build steps, skip steps and idle ticks.
type Step struct {
	Phase  Phase
	Vertex core.VertexID
}

// Driver advances whichever of a game's build, search, reconstruction or
// replay is active, one step per Tick.
type Driver struct {
	game   *RectGame
	phase  Phase
	build  builder.Builder
	search *search.Search
	replay *search.Replay
}

// NewDriver wraps g. Call Restart to begin.
func NewDriver(g *RectGame) (*Driver, error) {
	if g == nil {
		return nil, ErrNilGame
	}
	return &Driver{game: g}, nil
}

// Game returns the driven session.
func (d *Driver) Game() *RectGame { return d.game }

// Phase returns the activity of the next Tick.
func (d *Driver) Phase() Phase { return d.phase }

// Busy reports whether a Tick would do work.
func (d *Driver) Busy() bool { return d.phase != PhaseIdle }

// Search returns the latest automated search, nil if none was started.
func (d *Driver) Search() *search.Search { return d.search }

func (d *Driver) enter(p Phase) {
	if d.phase != p {
		klog.V(2).Infof("game %s: %s -> %s", d.game.ID(), d.phase, p)
	}
	d.phase = p
}

// Restart starts a fresh maze and switches to building. Any running search
// or replay is abandoned.
func (d *Driver) Restart() error {
	b, err := d.game.Start()
	if err != nil {
		return err
	}
	d.build, d.search, d.replay = b, nil, nil
	d.enter(PhaseBuilding)
	if !b.HasNextBuild() {
		d.finishBuild()
	}
	return nil
}

func (d *Driver) finishBuild() {
	d.game.SetFreeToMove(true)
	d.enter(PhaseIdle)
}

// Solve starts an automated search. The game must be free to move.
func (d *Driver) Solve(s Solver) error {
	var (
		srch *search.Search
		err  error
	)
	switch s {
	case SolverBFS:
		srch, err = d.game.BFS()
	case SolverDFS:
		srch, err = d.game.DFS()
	default:
		return errors.Wrapf(ErrUnknownSolver, "%q", s)
	}
	if err != nil {
		return err
	}
	d.search = srch
	d.enter(PhaseSearching)
	return nil
}

// Move walks the player. Reaching the target locks movement and starts the
// replay of the trail.
func (d *Driver) Move(dir core.Direction) error {
	if err := d.game.Move(dir); err != nil {
		return err
	}
	if !d.game.IsSolved() {
		return nil
	}
	d.game.SetFreeToMove(false)
	r, err := d.game.Reconstruct()
	if err != nil {
		return err
	}
	d.replay = r
	if r.HasNextReconstruction() {
		d.enter(PhaseReplaying)
	}
	return nil
}

// Tick performs one step of the active phase.
func (d *Driver) Tick() (Step, error) {
	switch d.phase {
	case PhaseBuilding:
		if err := d.build.NextBuild(); err != nil {
			return Step{Phase: d.phase, Vertex: core.NoVertex}, err
		}
		step := Step{Phase: PhaseBuilding, Vertex: core.NoVertex}
		if !d.build.HasNextBuild() {
			d.finishBuild()
		}
		return step, nil

	case PhaseSearching:
		v, err := d.search.IncrementSearch()
		if err != nil {
			return Step{Phase: d.phase, Vertex: core.NoVertex}, err
		}
		more, err := d.search.HasNextSearch()
		if err != nil {
			return Step{Phase: PhaseSearching, Vertex: v}, err
		}
		if !more {
			d.enter(PhaseReconstructing)
		}
		return Step{Phase: PhaseSearching, Vertex: v}, nil

	case PhaseReconstructing:
		v, err := d.search.IncrementReconstruction()
		if err != nil {
			return Step{Phase: d.phase, Vertex: core.NoVertex}, err
		}
		more, err := d.search.HasNextReconstruction()
		if err != nil {
			return Step{Phase: PhaseReconstructing, Vertex: v}, err
		}
		if !more {
			if err = d.game.Graph().SetTag(d.search.Origin(), core.TagPath); err != nil {
				return Step{Phase: PhaseReconstructing, Vertex: v}, err
			}
			d.enter(PhaseIdle)
		}
		return Step{Phase: PhaseReconstructing, Vertex: v}, nil

	case PhaseReplaying:
		v, err := d.replay.NextReconstruction()
		if err != nil {
			return Step{Phase: d.phase, Vertex: core.NoVertex}, err
		}
		if !d.replay.HasNextReconstruction() {
			d.enter(PhaseIdle)
		}
		return Step{Phase: PhaseReplaying, Vertex: v}, nil

	default:
		return Step{Phase: PhaseIdle, Vertex: core.NoVertex}, nil
	}
}

// Drain ticks until idle and returns the number of steps taken.
func (d *Driver) Drain() (int, error) {
	n := 0
	for d.Busy() {
		if _, err := d.Tick(); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
