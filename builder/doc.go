// Package builder generates perfect mazes as steppable state machines.
//
// A builder lays out a candidate lattice (see gridgraph), computes a random
// minimum spanning tree over it (see prim_kruskal), strips every lattice
// edge so that all cells start fully walled, and queues the tree edges.
// Each NextBuild call then opens one wall, installing the tree edge on its
// From cell and the mirror edge on its To cell. Once the queue is empty the
// graph holds exactly |V|-1 openings forming a spanning tree: every cell is
// reachable from every other along exactly one simple path.
//
// Drive a build one wall at a time:
//
//	b := builder.NewRect(builder.WithHeight(20), builder.WithWidth(40), builder.WithSeed(7))
//	g, err := b.BuildIncrementally()
//	for b.HasNextBuild() {
//		if err := b.NextBuild(); err != nil { ... }
//		render(g)
//	}
//
// or instantly with BuildInstant. For a fixed positive seed both paths yield
// identical mazes.
//
// Two variants are provided: RectBuilder (square cells, four headings) and
// HexBuilder (hexagon of hexagonal cells, six headings). Both satisfy
// Builder and are fully steppable.
package builder
