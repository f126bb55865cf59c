// Package search runs incremental graph searches over a maze and rebuilds
// the path they find.
//
// One traversal serves both breadth-first and depth-first search: the only
// difference is the Worklist injected at construction (NewQueue for BFS,
// NewStack for DFS). A Search moves through two phases, each driven one
// step at a time by the host:
//
//	s, _ := search.New(g, search.NewQueue(), origin, target)
//	for {
//		more, err := s.HasNextSearch()
//		if err != nil { ... }   // topology defect: target unreachable
//		if !more { break }
//		v, _ := s.IncrementSearch()  // core.NoVertex on a skip step
//	}
//	for {
//		more, err := s.HasNextReconstruction()
//		...
//		v, _ := s.IncrementReconstruction()
//	}
//
// Search phase: pop a candidate, skip it if already visited, otherwise mark
// it visited (TagSearchVisited) and push every neighbour. The edge that
// first discovers a neighbour is remembered and never overwritten.
//
// Reconstruction phase: walk those remembered edges back from the target to
// the origin, tagging each vertex TagPath. The target keeps its tag.
//
// Replay is the counterpart for a player's own walk: it pops a breadcrumb
// trail, tagging each popped vertex TagPath.
package search
