// Package game owns the state of one rectangular maze session: the maze
// graph, the player's position, the free-to-move flag and the breadcrumb
// trail of the player's walk.
//
// A RectGame hands out the drivers a host steps through:
//
//   - Start returns the builder carving a fresh maze; movement is locked
//     until the host unlocks it (Driver does so when the build drains).
//   - Move walks the player one cell, extending or retracting the trail.
//   - BFS and DFS lock movement, return the player to the origin and hand
//     back a steppable search.
//   - Reconstruct wraps the trail in a replay that paints the walked path.
//
// Driver multiplexes those drivers behind a single Tick, one step per call,
// for hosts that animate on a timer. It owns no timer itself.
//
// The origin is always the top-left cell (vertex 0) and the target the
// bottom-right cell (the last vertex).
package game
