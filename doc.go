// Package wilsonrsf generates random spanning forests (RSF) of undirected
// graphs via killed loop-erased random walks — a generalization of Wilson's
// uniform-spanning-tree algorithm with an absorption ("killing") parameter q.
//
// 🚀 What is a random spanning forest?
//
//	A partition of a graph's nodes into disjoint rooted trees. Each tree is
//	grown by a loop-erased random walk that either gets absorbed (its end
//	becomes a new root, with probability q/(q+deg) per step) or collides
//	with an already-built tree and is grafted onto it.
//
// Everything is organized under three subpackages plus one command:
//
//	graphmodel/ — immutable undirected graph over dense integer node ids
//	grid/       — 2D lattice instantiation (4- or 8-connected)
//	rsf/        — the walk/erase/absorb state machine, Forest and Trace
//	cmd/rsfgen  — CLI front end emitting forests and replayable traces as JSON
//
// Special cases worth knowing:
//
//   - q = 0 on a connected graph reduces to classic Wilson's algorithm:
//     a uniform spanning tree with a single root.
//   - q = +Inf absorbs every walk immediately: all nodes become singleton
//     roots and no edge is produced.
//
// Builds are deterministic end-to-end from a single seed; see rsf.Build.
//
//	go get github.com/riccardo1803/Wilson-algorithm-RSF
package wilsonrsf
