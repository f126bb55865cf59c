// Package mazegraph generates randomized perfect mazes and solves them step
// by step.
//
// What it covers:
//
//	• Lattices: rectangular and hexagonal candidate grids with biased random weights
//	• Generation: random minimum spanning trees (Kruskal or Prim), carved one wall per step
//	• Search: BFS and DFS sharing one steppable traversal, plus came-from path reconstruction
//	• Play: a player walk with a self-pruning breadcrumb trail and its replay
//
// Every long-running operation is a pull-driven state machine: a host asks
// "is there a next step?" and "do the next step", so rendering and timing
// stay entirely outside the core.
//
// Packages:
//
//	core/          — VertexID arena graph, Direction, DirectionalEdge, Tag, error taxonomy
//	disjoint/      — generic union-find with path compression
//	gridgraph/     — rectangular and hexagonal candidate lattices
//	prim_kruskal/  — spanning trees over lattices
//	builder/       — steppable RectBuilder and HexBuilder
//	search/        — worklists, the incremental Search, trail Replay
//	bfs/, dfs/     — search entry points with a queue or a stack
//	game/          — rectangular maze session and its tick Driver
//	config/        — .env and MAZE_* environment settings
//	cmd/mazegame/  — command-line host printing ASCII mazes
//
// Quick start:
//
//	b := builder.NewRect(builder.WithHeight(10), builder.WithWidth(20), builder.WithSeed(1))
//	g, _ := b.BuildInstant()
//	path, _ := bfs.Solve(g, 0, core.VertexID(g.VertexCount()-1))
package mazegraph
