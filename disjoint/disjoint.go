// Package disjoint implements a union-find partition over a fixed member set.
//
// Every member starts in its own singleton set. Find follows representative
// links to a fixed point and compresses the walked chain, so later lookups
// on the same chain are O(1). Union(a, b) repoints the representative of a's
// set at the representative of b's set.
//
// The member set is fixed at construction: asking for a member that was not
// supplied is an error, never an implicit insert.
package disjoint

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/mazegraph/core"
)

// ErrUnknownMember indicates a Find or Union on a key that was not part of
// the member set given to New.
var ErrUnknownMember = fmt.Errorf("%w: disjoint: unknown member", core.ErrInvalidArgument)

// Set is a disjoint-set forest keyed by K. It is not safe for concurrent use.
type Set[K comparable] struct {
	parent map[K]K
	count  int
}

// New builds a partition where each member is its own representative.
// Duplicate members collapse into one.
//
// Complexity: O(n).
func New[K comparable](members []K) *Set[K] {
	s := &Set[K]{parent: make(map[K]K, len(members))}
	for _, m := range members {
		if _, dup := s.parent[m]; dup {
			continue
		}
		s.parent[m] = m
		s.count++
	}
	return s
}

// Len returns the number of members.
func (s *Set[K]) Len() int { return len(s.parent) }

// Count returns the number of disjoint sets currently in the partition.
func (s *Set[K]) Count() int { return s.count }

// Find returns the representative of m's set.
//
// Implementation:
//   - Stage 1: walk parent links until a member is its own parent.
//   - Stage 2: walk the same chain again, pointing every node at the root.
//
// Complexity: amortized O(log n) without union by rank; O(1) on repeat.
func (s *Set[K]) Find(m K) (K, error) {
	p, ok := s.parent[m]
	if !ok {
		var zero K
		return zero, errors.Wrapf(ErrUnknownMember, "find %v", m)
	}
	root := m
	for p != root {
		root = p
		p = s.parent[root]
	}
	for cur := m; cur != root; {
		next := s.parent[cur]
		s.parent[cur] = root
		cur = next
	}
	return root, nil
}

// Union merges the sets of a and b by repointing Find(a) to Find(b).
// Uniting two members already in the same set is a no-op; callers growing a
// spanning tree check Connected first.
func (s *Set[K]) Union(a, b K) error {
	ra, err := s.Find(a)
	if err != nil {
		return errors.WithMessage(err, "union")
	}
	rb, err := s.Find(b)
	if err != nil {
		return errors.WithMessage(err, "union")
	}
	if ra == rb {
		return nil
	}
	s.parent[ra] = rb
	s.count--
	return nil
}

// Connected reports whether a and b share a representative.
func (s *Set[K]) Connected(a, b K) (bool, error) {
	ra, err := s.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := s.Find(b)
	if err != nil {
		return false, err
	}
	return ra == rb, nil
}
