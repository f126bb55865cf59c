// Package gridgraph lays out the candidate lattices that mazes are carved
// from: a rectangular grid of square cells and a hexagon of hexagonal cells.
//
// Each constructor returns a *core.Graph in which every vertex carries one
// edge to each neighbour created before it, labelled with the heading from
// the vertex to that neighbour and weighted at random. No reverse edges are
// created; the lattice is an input to a spanning-tree pass, not a maze.
//
// Rectangular lattice
//
//	Vertices are row-major: index = row*width + col. A vertex with col > 0
//	links Left to its west neighbour, then, with row > 0, Up to its north
//	neighbour. Left weights are drawn from [0, (1-bias)*10000) and Up weights
//	from [0, bias*10000). A bias near 1 makes vertical edges cheap; the
//	spanning tree then prefers them and the maze grows long vertical runs.
//
// Hexagonal lattice
//
//	A hexagon of radius size in axial coordinates (q, r) holding every cell
//	with max(|q|, |r|, |q+r|) <= size, 3*size*(size+1)+1 cells in all.
//	Vertices are ordered by r, then q. A vertex links Up to (q, r-1), UpRight
//	to (q+1, r-1) and UpLeft to (q-1, r) when those cells exist. Up weights
//	use bias, the diagonals use 1-bias.
//
// Both constructors take an explicit *rand.Rand so that a seed fully
// determines the lattice.
package gridgraph
