package gridgraph_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegraph/core"
	"github.com/katalvlaran/mazegraph/gridgraph"
)

func TestNewRect_Validation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cases := []struct {
		name   string
		h, w   int
		bias   float64
		rng    *rand.Rand
		target error
	}{
		{"zero height", 0, 3, 0.5, rng, gridgraph.ErrBadDimensions},
		{"negative width", 3, -1, 0.5, rng, gridgraph.ErrBadDimensions},
		{"bias high", 3, 3, 1.01, rng, gridgraph.ErrBadBias},
		{"bias low", 3, 3, -0.1, rng, gridgraph.ErrBadBias},
		{"bias NaN", 3, 3, math.NaN(), rng, gridgraph.ErrBadBias},
		{"nil rand", 3, 3, 0.5, nil, gridgraph.ErrNilRand},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewRect(tc.h, tc.w, tc.bias, tc.rng)
			assert.ErrorIs(t, err, tc.target)
			assert.ErrorIs(t, err, core.ErrInvalidArgument)
		})
	}
}

// TestNewRect_Layout checks the 3x3 lattice edge for edge.
func TestNewRect_Layout(t *testing.T) {
	g, err := gridgraph.NewRect(3, 3, 0.5, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Equal(t, 9, g.VertexCount())
	// 2 left edges per row * 3 rows + 3 up edges per row * 2 rows
	assert.Equal(t, 12, g.EdgeCount())

	edges, _ := g.Edges(0)
	assert.Empty(t, edges, "top-left cell has no earlier neighbour")

	edges, _ = g.Edges(4)
	require.Len(t, edges, 2)
	assert.Equal(t, core.Left, edges[0].Direction, "left is laid before up")
	assert.Equal(t, core.VertexID(3), edges[0].To)
	assert.Equal(t, core.Up, edges[1].Direction)
	assert.Equal(t, core.VertexID(1), edges[1].To)

	for _, e := range g.AllEdges() {
		assert.GreaterOrEqual(t, e.Weight, 0)
		assert.Less(t, e.Weight, gridgraph.WeightScale/2)
	}
}

// TestNewRect_ExtremeBias covers bias 0 and 1 where one weight range is empty.
func TestNewRect_ExtremeBias(t *testing.T) {
	for _, bias := range []float64{0, 1} {
		g, err := gridgraph.NewRect(4, 4, bias, rand.New(rand.NewSource(5)))
		require.NoError(t, err)
		for _, e := range g.AllEdges() {
			cheap := (bias == 1 && e.Direction == core.Left) || (bias == 0 && e.Direction == core.Up)
			if cheap {
				assert.Zero(t, e.Weight, "edge %s at bias %v", e, bias)
			}
		}
	}
}

func TestNewRect_SeedDeterminism(t *testing.T) {
	a, err := gridgraph.NewRect(6, 7, 0.3, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := gridgraph.NewRect(6, 7, 0.3, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	assert.Equal(t, a.AllEdges(), b.AllEdges())
}

func TestRect_Geometry(t *testing.T) {
	geo := gridgraph.Rect{Height: 3, Width: 4}
	assert.Equal(t, 12, geo.Len())
	assert.Equal(t, core.VertexID(6), geo.Index(1, 2))
	row, col := geo.Coordinate(6)
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, col)
	assert.Equal(t, core.NoVertex, geo.Index(3, 0))
	assert.False(t, geo.InBounds(0, -1))
}

func TestHexGeometry(t *testing.T) {
	for size := 1; size <= 5; size++ {
		geo := gridgraph.NewHexGeometry(size)
		assert.Equal(t, 3*size*(size+1)+1, geo.Len(), "radius %d", size)
	}
	geo := gridgraph.NewHexGeometry(1)
	c, ok := geo.Coordinate(0)
	require.True(t, ok)
	assert.Equal(t, gridgraph.Axial{Q: 0, R: -1}, c, "first cell is the leftmost of the top row")
	assert.Equal(t, core.VertexID(3), geo.Index(gridgraph.Axial{Q: 0, R: 0}))
	assert.False(t, geo.InBounds(gridgraph.Axial{Q: 1, R: 1}))
	_, ok = geo.Coordinate(7)
	assert.False(t, ok)
}

func TestNewHex(t *testing.T) {
	_, err := gridgraph.NewHex(0, 0.5, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, gridgraph.ErrBadDimensions)

	g, err := gridgraph.NewHex(2, 0.5, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 19, g.VertexCount())
	// Each undirected adjacency of the hexagon is stored exactly once.
	// Radius 2 hexagon: 3*r*(3r+1) = 42 adjacencies.
	assert.Equal(t, 42, g.EdgeCount())

	allowed := map[core.Direction]bool{core.Up: true, core.UpRight: true, core.UpLeft: true}
	for _, e := range g.AllEdges() {
		assert.True(t, allowed[e.Direction], "edge %s", e)
		assert.Less(t, e.To, e.From, "edges point at earlier cells")
	}
}
