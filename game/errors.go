package game

import (
	"fmt"

	"github.com/katalvlaran/mazegraph/core"
)

// Grid limits for a playable rectangular maze.
const (
	MinSide   = 3
	MaxHeight = 100
	MaxWidth  = 160
)

// Sentinel errors for game sessions.
var (
	// ErrBadDimensions indicates a height or width outside the playable limits.
	ErrBadDimensions = fmt.Errorf("%w: game: height must be in [%d, %d] and width in [%d, %d]",
		core.ErrInvalidArgument, MinSide, MaxHeight, MinSide, MaxWidth)
	// ErrBadBias indicates a bias outside [0, 1].
	ErrBadBias = fmt.Errorf("%w: game: bias must be within [0, 1]", core.ErrInvalidArgument)
	// ErrNilGame indicates a Driver constructed without a game.
	ErrNilGame = fmt.Errorf("%w: game: nil game", core.ErrInvalidArgument)
	// ErrUnknownSolver indicates a solver name other than bfs or dfs.
	ErrUnknownSolver = fmt.Errorf("%w: game: unknown solver", core.ErrInvalidArgument)

	// ErrNotStarted indicates a call that needs a maze before Start.
	ErrNotStarted = fmt.Errorf("%w: game: no maze started", core.ErrInvalidState)
	// ErrNotFreeToMove indicates a move or solve while movement is locked.
	ErrNotFreeToMove = fmt.Errorf("%w: game: not free to move", core.ErrInvalidState)
)
