// Package builder_test covers the steppable maze pipeline: spanning-tree
// shape, mirror edges, step/instant equivalence and phase errors.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegraph/builder"
	"github.com/katalvlaran/mazegraph/core"
	"github.com/katalvlaran/mazegraph/gridgraph"
	"github.com/katalvlaran/mazegraph/prim_kruskal"
)

// reachable counts vertices reachable from vertex 0 along stored edges.
func reachable(t *testing.T, g *core.Graph) int {
	t.Helper()
	seen := map[core.VertexID]bool{0: true}
	stack := []core.VertexID{0}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		edges, err := g.Edges(v)
		require.NoError(t, err)
		for _, e := range edges {
			if !seen[e.To] {
				seen[e.To] = true
				stack = append(stack, e.To)
			}
		}
	}
	return len(seen)
}

// assertPerfectMaze checks |V|-1 openings, one mirror per opening, and
// full reachability.
func assertPerfectMaze(t *testing.T, g *core.Graph) {
	t.Helper()
	n := g.VertexCount()
	assert.Equal(t, 2*(n-1), g.EdgeCount(), "each opening is stored once per side")
	for _, e := range g.AllEdges() {
		back, err := g.EdgeIn(e.To, e.Direction.Opposite())
		require.NoError(t, err, "edge %s has no mirror", e)
		assert.Equal(t, e.From, back.To)
	}
	assert.Equal(t, n, reachable(t, g))
}

func TestRect_ThreeByThree(t *testing.T) {
	b := builder.NewRect(builder.WithHeight(3), builder.WithWidth(3), builder.WithBias(0.5), builder.WithSeed(17))
	g, err := b.BuildIncrementally()
	require.NoError(t, err)
	assert.Equal(t, 9, g.VertexCount())
	assert.Zero(t, g.EdgeCount(), "cells start fully walled")
	assert.Equal(t, 8, b.Remaining())
	assert.Same(t, g, b.Graph())

	steps := 0
	for b.HasNextBuild() {
		require.NoError(t, b.NextBuild())
		steps++
		assert.Equal(t, 2*steps, g.EdgeCount())
	}
	assert.Equal(t, 8, steps)
	assert.False(t, b.HasNextBuild())
	assertPerfectMaze(t, g)
}

func TestRect_InstantMatchesIncremental(t *testing.T) {
	for _, seed := range []int64{1, 2, 42, 9001} {
		opts := []builder.BuilderOption{
			builder.WithHeight(12), builder.WithWidth(17), builder.WithBias(0.35), builder.WithSeed(seed),
		}
		instant, err := builder.NewRect(opts...).BuildInstant()
		require.NoError(t, err)

		b := builder.NewRect(opts...)
		stepped, err := b.BuildIncrementally()
		require.NoError(t, err)
		for b.HasNextBuild() {
			require.NoError(t, b.NextBuild())
		}
		assert.Equal(t, instant.AllEdges(), stepped.AllEdges(), "seed %d", seed)
		assertPerfectMaze(t, instant)
	}
}

func TestRect_RebuildWithSameSeed(t *testing.T) {
	b := builder.NewRect(builder.WithSeed(5))
	first, err := b.BuildInstant()
	require.NoError(t, err)
	second, err := b.BuildInstant()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, first.AllEdges(), second.AllEdges())
	assert.Equal(t, int64(5), b.Seed())
}

func TestRect_TimeSeed(t *testing.T) {
	b := builder.NewRect(builder.WithSeed(0))
	_, err := b.BuildInstant()
	require.NoError(t, err)
	assert.Positive(t, b.Seed(), "a time-based seed is reported")
}

func TestRect_PhaseErrors(t *testing.T) {
	b := builder.NewRect(builder.WithSeed(1))
	assert.False(t, b.HasNextBuild())
	assert.Zero(t, b.Remaining())
	assert.Nil(t, b.Graph())
	err := b.NextBuild()
	assert.ErrorIs(t, err, builder.ErrNoNextBuild)
	assert.ErrorIs(t, err, core.ErrInvalidState)

	_, err = b.BuildInstant()
	require.NoError(t, err)
	assert.ErrorIs(t, b.NextBuild(), builder.ErrNoNextBuild)
}

func TestRect_Validation(t *testing.T) {
	_, err := builder.NewRect(builder.WithHeight(0)).BuildIncrementally()
	assert.ErrorIs(t, err, gridgraph.ErrBadDimensions)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = builder.NewRect(builder.WithBias(2)).BuildInstant()
	assert.ErrorIs(t, err, gridgraph.ErrBadBias)

	_, err = builder.NewRect(builder.WithMethod("boruvka")).BuildInstant()
	assert.ErrorIs(t, err, prim_kruskal.ErrBadMethod)

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithMethod("") })
}

func TestRect_ExtremeBias(t *testing.T) {
	for _, bias := range []float64{0, 1} {
		g, err := builder.NewRect(builder.WithHeight(6), builder.WithWidth(6), builder.WithBias(bias), builder.WithSeed(3)).BuildInstant()
		require.NoError(t, err)
		assertPerfectMaze(t, g)
	}
}

func TestRect_Prim(t *testing.T) {
	b := builder.NewRect(builder.WithHeight(8), builder.WithWidth(11), builder.WithMethod(prim_kruskal.MethodPrim), builder.WithSeed(8))
	g, err := b.BuildInstant()
	require.NoError(t, err)
	assertPerfectMaze(t, g)
	assert.Equal(t, 8, b.Height())
	assert.Equal(t, 11, b.Width())
	assert.Equal(t, 88, b.Geometry().Len())
}

func TestHex_Steppable(t *testing.T) {
	b := builder.NewHex(builder.WithSize(3), builder.WithSeed(21))
	g, err := b.BuildIncrementally()
	require.NoError(t, err)
	assert.Equal(t, 37, g.VertexCount())
	assert.Equal(t, 36, b.Remaining())
	for b.HasNextBuild() {
		require.NoError(t, b.NextBuild())
	}
	assertPerfectMaze(t, g)

	for _, e := range g.AllEdges() {
		assert.NotEqual(t, core.Left, e.Direction)
		assert.NotEqual(t, core.Right, e.Direction)
	}
	assert.Equal(t, 3, b.Size())
	assert.Equal(t, 37, b.Geometry().Len())

	again, err := builder.NewHex(builder.WithSize(3), builder.WithSeed(21)).BuildInstant()
	require.NoError(t, err)
	assert.Equal(t, g.AllEdges(), again.AllEdges())
}

func TestHex_Validation(t *testing.T) {
	_, err := builder.NewHex(builder.WithSize(0)).BuildInstant()
	assert.ErrorIs(t, err, gridgraph.ErrBadDimensions)
}

func BenchmarkRect_BuildInstant(b *testing.B) {
	rb := builder.NewRect(builder.WithHeight(100), builder.WithWidth(160), builder.WithSeed(1))
	for i := 0; i < b.N; i++ {
		_, _ = rb.BuildInstant()
	}
}
