package disjoint_test

import (
	"fmt"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegraph/core"
	"github.com/katalvlaran/mazegraph/disjoint"
)

func TestSet_Singletons(t *testing.T) {
	s := disjoint.New([]string{"a", "b", "c", "a"})
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Count())
	for _, m := range []string{"a", "b", "c"} {
		r, err := s.Find(m)
		require.NoError(t, err)
		assert.Equal(t, m, r)
	}
}

func TestSet_UnionRepointsFirstToSecond(t *testing.T) {
	s := disjoint.New([]int{1, 2, 3})
	require.NoError(t, s.Union(1, 2))
	r, err := s.Find(1)
	require.NoError(t, err)
	assert.Equal(t, 2, r, "find(a) is repointed at find(b)")

	require.NoError(t, s.Union(2, 3))
	r, _ = s.Find(1)
	assert.Equal(t, 3, r)
	assert.Equal(t, 1, s.Count())

	ok, err := s.Connected(1, 3)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSet_UnionSameSetIsNoop(t *testing.T) {
	s := disjoint.New([]int{1, 2})
	require.NoError(t, s.Union(1, 2))
	require.NoError(t, s.Union(2, 1))
	require.NoError(t, s.Union(1, 1))
	assert.Equal(t, 1, s.Count())
	r1, _ := s.Find(1)
	r2, _ := s.Find(2)
	assert.Equal(t, r1, r2)
}

func TestSet_UnknownMember(t *testing.T) {
	s := disjoint.New([]int{1})
	_, err := s.Find(9)
	assert.ErrorIs(t, err, disjoint.ErrUnknownMember)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	assert.ErrorIs(t, s.Union(1, 9), disjoint.ErrUnknownMember)
	assert.ErrorIs(t, s.Union(9, 1), disjoint.ErrUnknownMember)
	_, err = s.Connected(9, 1)
	assert.ErrorIs(t, err, disjoint.ErrUnknownMember)
	assert.Equal(t, 1, s.Count())
}

// TestSet_LongChain unions a long chain so that Find must walk and compress
// thousands of links without recursion.
func TestSet_LongChain(t *testing.T) {
	const n = 100000
	members := make([]int, n)
	for i := range members {
		members[i] = i
	}
	s := disjoint.New(members)
	for i := 0; i < n-1; i++ {
		require.NoError(t, s.Union(i, i+1))
	}
	r, err := s.Find(0)
	require.NoError(t, err)
	assert.Equal(t, n-1, r)
	assert.Equal(t, 1, s.Count())
}

// TestSet_MatchesNaivePartition compares against a label-rewriting oracle.
func TestSet_MatchesNaivePartition(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	const n = 60
	names := make([]string, n)
	label := make(map[string]int, n)
	for i := range names {
		names[i] = "v" + strconv.Itoa(i)
		label[names[i]] = i
	}
	s := disjoint.New(names)
	for step := 0; step < 200; step++ {
		a, b := names[r.Intn(n)], names[r.Intn(n)]
		require.NoError(t, s.Union(a, b))
		from, to := label[a], label[b]
		for k, v := range label {
			if v == from {
				label[k] = to
			}
		}
		x, y := names[r.Intn(n)], names[r.Intn(n)]
		got, err := s.Connected(x, y)
		require.NoError(t, err)
		assert.Equal(t, label[x] == label[y], got, fmt.Sprintf("step %d: %s ~ %s", step, x, y))
	}
}
