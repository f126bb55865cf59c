package gridgraph

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/katalvlaran/mazegraph/core"
)

// NewRect builds the rectangular candidate lattice.
//
// Errors:
//   - ErrBadDimensions if height or width < 1.
//   - ErrBadBias if bias is outside [0, 1].
//   - ErrNilRand if rng is nil.
//
// Complexity: O(height*width).
func NewRect(height, width int, bias float64, rng *rand.Rand) (*core.Graph, error) {
	if height < 1 || width < 1 {
		return nil, errors.Wrapf(ErrBadDimensions, "rect %dx%d", height, width)
	}
	if err := checkBiasAndRand(bias, rng); err != nil {
		return nil, err
	}
	geo := Rect{Height: height, Width: width}
	g := core.NewGraph(geo.Len())
	leftMax := bound(1 - bias)
	upMax := bound(bias)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			v := geo.Index(row, col)
			if col > 0 {
				if err := g.AddEdge(core.DirectionalEdge{
					From: v, To: geo.Index(row, col-1), Direction: core.Left, Weight: draw(rng, leftMax),
				}); err != nil {
					return nil, err
				}
			}
			if row > 0 {
				if err := g.AddEdge(core.DirectionalEdge{
					From: v, To: geo.Index(row-1, col), Direction: core.Up, Weight: draw(rng, upMax),
				}); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}

// NewHex builds the hexagonal candidate lattice of radius size.
// Errors as NewRect; size must be at least 1.
func NewHex(size int, bias float64, rng *rand.Rand) (*core.Graph, error) {
	if size < 1 {
		return nil, errors.Wrapf(ErrBadDimensions, "hex radius %d", size)
	}
	if err := checkBiasAndRand(bias, rng); err != nil {
		return nil, err
	}
	geo := NewHexGeometry(size)
	g := core.NewGraph(geo.Len())
	upMax := bound(bias)
	diagMax := bound(1 - bias)
	for i := 0; i < geo.Len(); i++ {
		v := core.VertexID(i)
		c, _ := geo.Coordinate(v)
		for _, n := range hexEarlier {
			to := geo.Index(Axial{Q: c.Q + n.dq, R: c.R + n.dr})
			if to == core.NoVertex {
				continue
			}
			limit := diagMax
			if n.dir == core.Up {
				limit = upMax
			}
			if err := g.AddEdge(core.DirectionalEdge{From: v, To: to, Direction: n.dir, Weight: draw(rng, limit)}); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

func checkBiasAndRand(bias float64, rng *rand.Rand) error {
	if !(bias >= 0 && bias <= 1) {
		return errors.Wrapf(ErrBadBias, "bias %v", bias)
	}
	if rng == nil {
		return ErrNilRand
	}
	return nil
}

// bound scales a bias share to an exclusive weight bound.
func bound(share float64) int {
	return int(share * WeightScale)
}

// draw returns a uniform weight in [0, limit), or 0 when the range is empty.
func draw(rng *rand.Rand, limit int) int {
	if limit <= 0 {
		return 0
	}
	return rng.Intn(limit)
}
