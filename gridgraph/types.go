// Package gridgraph defines lattice geometry and sentinel errors.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/mazegraph/core"
)

// WeightScale is the exclusive upper bound of a fully biased edge weight.
const WeightScale = 10000

// Sentinel errors for lattice construction.
var (
	// ErrBadDimensions indicates a height, width or size below 1.
	ErrBadDimensions = fmt.Errorf("%w: gridgraph: dimensions must be at least 1", core.ErrInvalidArgument)
	// ErrBadBias indicates a bias outside [0, 1].
	ErrBadBias = fmt.Errorf("%w: gridgraph: bias must be within [0, 1]", core.ErrInvalidArgument)
	// ErrNilRand indicates a missing random source.
	ErrNilRand = fmt.Errorf("%w: gridgraph: nil random source", core.ErrInvalidArgument)
)

// Rect is the geometry of a height x width row-major grid.
type Rect struct {
	Height, Width int
}

// Len returns the number of cells.
func (r Rect) Len() int { return r.Height * r.Width }

// InBounds reports whether (row, col) lies on the grid.
func (r Rect) InBounds(row, col int) bool {
	return row >= 0 && row < r.Height && col >= 0 && col < r.Width
}

// Index maps (row, col) to its vertex. Out-of-bounds cells map to core.NoVertex.
func (r Rect) Index(row, col int) core.VertexID {
	if !r.InBounds(row, col) {
		return core.NoVertex
	}
	return core.VertexID(row*r.Width + col)
}

// Coordinate maps a vertex back to (row, col). It does not check bounds.
func (r Rect) Coordinate(v core.VertexID) (row, col int) {
	return int(v) / r.Width, int(v) % r.Width
}

// Axial is a hex cell position.
type Axial struct {
	Q, R int
}

// Hex is the geometry of a hexagon of radius Size.
type Hex struct {
	Size  int
	cells []Axial
	index map[Axial]core.VertexID
}

// NewHexGeometry enumerates the cells of a hexagon of radius size in
// vertex order (r ascending, then q ascending).
func NewHexGeometry(size int) Hex {
	h := Hex{Size: size, index: make(map[Axial]core.VertexID)}
	if size < 0 {
		return h
	}
	for r := -size; r <= size; r++ {
		qLo, qHi := max(-size, -r-size), min(size, -r+size)
		for q := qLo; q <= qHi; q++ {
			c := Axial{Q: q, R: r}
			h.index[c] = core.VertexID(len(h.cells))
			h.cells = append(h.cells, c)
		}
	}
	return h
}

// Len returns the number of cells.
func (h Hex) Len() int { return len(h.cells) }

// InBounds reports whether c lies inside the hexagon.
func (h Hex) InBounds(c Axial) bool {
	_, ok := h.index[c]
	return ok
}

// Index maps c to its vertex, or core.NoVertex when c is outside.
func (h Hex) Index(c Axial) core.VertexID {
	v, ok := h.index[c]
	if !ok {
		return core.NoVertex
	}
	return v
}

// Coordinate maps a vertex to its axial position.
func (h Hex) Coordinate(v core.VertexID) (Axial, bool) {
	if v < 0 || int(v) >= len(h.cells) {
		return Axial{}, false
	}
	return h.cells[v], true
}

// hexEarlier lists, per heading, the offset of a neighbour that precedes a
// cell in vertex order.
var hexEarlier = []struct {
	dir    core.Direction
	dq, dr int
}{
	{core.Up, 0, -1},
	{core.UpRight, +1, -1},
	{core.UpLeft, -1, 0},
}
