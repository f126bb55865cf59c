// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: value types of the maze graph (VertexID, Direction, Tag).

package core

import "strconv"

// VertexID is an arena handle: the index of a vertex in its Graph's table.
type VertexID int

// NoVertex is returned where an operation yields no vertex, such as a search
// step that popped an already-visited candidate.
const NoVertex VertexID = -1

// Valid reports whether id can name a vertex (id >= 0). It does not check
// membership in any particular graph; use Graph.HasVertex for that.
func (id VertexID) Valid() bool { return id >= 0 }

// Direction labels an edge with the compass heading from its From vertex
// to its To vertex. Rectangular mazes use the four orthogonal values,
// hexagonal mazes use Up, Down and the four diagonals.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
	UpRight
	DownRight
	DownLeft
	UpLeft

	numDirections
)

var directionNames = [numDirections]string{
	Up:        "UP",
	Right:     "RIGHT",
	Down:      "DOWN",
	Left:      "LEFT",
	UpRight:   "UPRIGHT",
	DownRight: "DOWNRIGHT",
	DownLeft:  "DOWNLEFT",
	UpLeft:    "UPLEFT",
}

var opposites = [numDirections]Direction{
	Up:        Down,
	Down:      Up,
	Left:      Right,
	Right:     Left,
	UpRight:   DownLeft,
	DownLeft:  UpRight,
	UpLeft:    DownRight,
	DownRight: UpLeft,
}

// Directions returns all eight directions in declaration order.
func Directions() []Direction {
	out := make([]Direction, numDirections)
	for i := range out {
		out[i] = Direction(i)
	}
	return out
}

// Valid reports whether d is one of the eight known directions.
func (d Direction) Valid() bool { return d < numDirections }

// Opposite returns the reverse heading. Opposite is an involution:
// d.Opposite().Opposite() == d for every valid d. Invalid values are
// returned unchanged.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return opposites[d]
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if !d.Valid() {
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
	return directionNames[d]
}

// Tag is an abstract display marker attached to each vertex. The core only
// writes tags; mapping them to colours or glyphs is the renderer's job.
type Tag uint8

const (
	// TagBackground is the initial tag of every vertex.
	TagBackground Tag = iota
	// TagOrigin marks the start cell.
	TagOrigin
	// TagTarget marks the goal cell.
	TagTarget
	// TagCursor marks the player's current cell.
	TagCursor
	// TagUserVisited marks a cell the player has walked through.
	TagUserVisited
	// TagSearchVisited marks a cell expanded by an automated search.
	TagSearchVisited
	// TagPath marks a cell on a reconstructed path.
	TagPath
)

// String implements fmt.Stringer.
func (t Tag) String() string {
	switch t {
	case TagBackground:
		return "background"
	case TagOrigin:
		return "origin"
	case TagTarget:
		return "target"
	case TagCursor:
		return "cursor"
	case TagUserVisited:
		return "user-visited"
	case TagSearchVisited:
		return "search-visited"
	case TagPath:
		return "path"
	default:
		return "Tag(" + strconv.Itoa(int(t)) + ")"
	}
}
