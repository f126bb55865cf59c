package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegraph/core"
	"github.com/katalvlaran/mazegraph/search"
)

// line opens walls 0-1-...-(n-1) heading Right.
func line(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(n)
	for i := 1; i < n; i++ {
		require.NoError(t, g.OpenWall(core.DirectionalEdge{
			From: core.VertexID(i), To: core.VertexID(i - 1), Direction: core.Left,
		}))
	}
	return g
}

func TestWorklists(t *testing.T) {
	q, s := search.NewQueue(), search.NewStack()
	for _, v := range []core.VertexID{1, 2, 3} {
		q.Add(v)
		s.Add(v)
	}
	assert.Equal(t, []core.VertexID{1, 2, 3}, q.Values())
	assert.Equal(t, []core.VertexID{3, 2, 1}, s.Values())

	v, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, core.VertexID(1), v)
	v, _ = s.Remove()
	assert.Equal(t, core.VertexID(3), v)
	assert.Equal(t, 2, s.Size())

	empty := search.NewQueue()
	assert.True(t, empty.Empty())
	v, ok = empty.Remove()
	assert.False(t, ok)
	assert.Equal(t, core.NoVertex, v)
}

func TestNew_Errors(t *testing.T) {
	g := core.NewGraph(2)
	_, err := search.New(nil, search.NewQueue(), 0, 1)
	assert.ErrorIs(t, err, search.ErrNilGraph)
	_, err = search.New(g, nil, 0, 1)
	assert.ErrorIs(t, err, search.ErrNilWorklist)
	_, err = search.New(g, search.NewQueue(), 0, 2)
	assert.ErrorIs(t, err, search.ErrUnknownEndpoint)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

// TestSearch_SkipStep follows BFS on a 4-cell line step by step: the
// origin is enqueued again by its neighbour and later popped as a skip.
func TestSearch_SkipStep(t *testing.T) {
	g := line(t, 4)
	s, err := search.New(g, search.NewQueue(), 0, 3)
	require.NoError(t, err)

	want := []core.VertexID{0, 1, core.NoVertex, 2}
	for i, w := range want {
		more, err := s.HasNextSearch()
		require.NoError(t, err)
		require.True(t, more, "step %d", i)
		v, err := s.IncrementSearch()
		require.NoError(t, err)
		assert.Equal(t, w, v, "step %d", i)
	}
	more, err := s.HasNextSearch()
	require.NoError(t, err)
	assert.False(t, more)
	assert.Equal(t, 3, s.Visited())
	assert.False(t, s.IsVisited(3), "target is discovered, not expanded")

	_, err = s.IncrementSearch()
	assert.ErrorIs(t, err, search.ErrSearchComplete)
	assert.ErrorIs(t, err, core.ErrInvalidState)

	tag, _ := g.Tag(2)
	assert.Equal(t, core.TagSearchVisited, tag)
}

func TestSearch_Reconstruction(t *testing.T) {
	g := line(t, 5)
	require.NoError(t, g.SetTag(4, core.TagTarget))
	s, err := search.New(g, search.NewStack(), 0, 4)
	require.NoError(t, err)

	_, err = s.HasNextReconstruction()
	assert.ErrorIs(t, err, search.ErrReconstructionImpossible, "reconstruction needs a finished search")

	require.NoError(t, s.InstantSearch())
	path, err := s.Path()
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{0, 1, 2, 3, 4}, path)

	var left []core.VertexID
	for {
		more, err := s.HasNextReconstruction()
		require.NoError(t, err)
		if !more {
			break
		}
		v, err := s.IncrementReconstruction()
		require.NoError(t, err)
		left = append(left, v)
	}
	assert.Equal(t, []core.VertexID{4, 3, 2, 1}, left)
	assert.Equal(t, core.VertexID(0), s.Current())

	tag, _ := g.Tag(4)
	assert.Equal(t, core.TagTarget, tag, "target keeps its tag")
	for _, v := range []core.VertexID{1, 2, 3} {
		tag, _ = g.Tag(v)
		assert.Equal(t, core.TagPath, tag, "vertex %d", v)
	}
	tag, _ = g.Tag(0)
	assert.Equal(t, core.TagSearchVisited, tag, "origin is left for the host to paint")

	_, err = s.IncrementReconstruction()
	assert.ErrorIs(t, err, search.ErrReconstructionComplete)
}

// TestSearch_FirstDiscoveryWins uses a graph with a cycle, where vertex 3
// is reached from 1 and later from 2.
func TestSearch_FirstDiscoveryWins(t *testing.T) {
	g := core.NewGraph(5)
	for _, e := range []core.DirectionalEdge{
		{From: 0, To: 1, Direction: core.Right},
		{From: 0, To: 2, Direction: core.Down},
		{From: 1, To: 3, Direction: core.Down},
		{From: 2, To: 3, Direction: core.Right},
		{From: 3, To: 4, Direction: core.Right},
	} {
		require.NoError(t, g.OpenWall(e))
	}
	s, err := search.New(g, search.NewQueue(), 0, 4)
	require.NoError(t, err)
	require.NoError(t, s.InstantSearch())
	path, err := s.Path()
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{0, 1, 3, 4}, path)
}

func TestSearch_Unreachable(t *testing.T) {
	s, err := search.New(core.NewGraph(3), search.NewQueue(), 0, 2)
	require.NoError(t, err)
	_, err = s.IncrementSearch()
	require.NoError(t, err)

	_, err = s.HasNextSearch()
	assert.ErrorIs(t, err, search.ErrTargetUnreachable)
	assert.ErrorIs(t, err, core.ErrTopologyViolation)
	assert.ErrorIs(t, err, core.ErrInvalidState)
	assert.ErrorIs(t, s.InstantSearch(), search.ErrTargetUnreachable)
	_, err = s.Path()
	assert.ErrorIs(t, err, search.ErrReconstructionImpossible)
}

func TestSearch_OriginIsTarget(t *testing.T) {
	g := line(t, 3)
	s, err := search.New(g, search.NewQueue(), 1, 1)
	require.NoError(t, err)
	more, err := s.HasNextSearch()
	require.NoError(t, err)
	assert.False(t, more)
	more, err = s.HasNextReconstruction()
	require.NoError(t, err)
	assert.False(t, more)
	path, err := s.Path()
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{1}, path)
	require.NoError(t, s.InstantReconstruction())
}

func TestReplay(t *testing.T) {
	g := line(t, 4)
	_, err := search.NewReplay(nil, search.NewStack())
	assert.ErrorIs(t, err, search.ErrNilGraph)
	_, err = search.NewReplay(g, nil)
	assert.ErrorIs(t, err, search.ErrNilWorklist)

	trail := search.NewStack()
	for _, v := range []core.VertexID{0, 1, 2} {
		trail.Add(v)
	}
	r, err := search.NewReplay(g, trail)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Remaining())

	var popped []core.VertexID
	for r.HasNextReconstruction() {
		v, err := r.NextReconstruction()
		require.NoError(t, err)
		popped = append(popped, v)
	}
	assert.Equal(t, []core.VertexID{2, 1, 0}, popped)
	for _, v := range popped {
		tag, _ := g.Tag(v)
		assert.Equal(t, core.TagPath, tag)
	}
	tag, _ := g.Tag(3)
	assert.Equal(t, core.TagBackground, tag)

	_, err = r.NextReconstruction()
	assert.ErrorIs(t, err, search.ErrReconstructionComplete)
	assert.NoError(t, r.InstantReconstruction())
}
