// Package graphmodel provides the immutable, undirected graph description
// consumed by the rsf walk machinery.
//
// What:
//
//   - Nodes are dense integer ids (NodeID) in [0, Order).
//   - Adjacency is symmetric, loop-free and duplicate-free by construction.
//   - Graphs are read-only after Build/FromAdjacency; queries never allocate
//     except where documented.
//
// Why dense ids:
//
//   - O(1) degree and neighbor lookups on slices, no hashing.
//   - Covered-node bookkeeping in the rsf package becomes a flat []bool.
//   - A 2D-grid (or any labeled) instantiation keeps its own id↔label
//     mapping; see the grid package.
//
// Construction:
//
//   - Builder: incremental, validates every AddEdge eagerly.
//   - FromAdjacency: imports a prebuilt adjacency and validates symmetry.
//
// Errors:
//
//   - ErrInvalidGraph: class sentinel; every construction failure wraps it.
//   - ErrSelfLoop, ErrDuplicateEdge, ErrNodeRange, ErrAsymmetric: specific
//     causes, each matching ErrInvalidGraph under errors.Is.
//
// Complexity: Build/FromAdjacency O(V+E); Degree/Neighbor O(1);
// Neighbors O(deg) (defensive copy); Nodes O(1) per yielded id.
package graphmodel
