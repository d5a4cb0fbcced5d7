// Package grid instantiates a 2D lattice as a graphmodel.Graph, the
// concrete graph the original random-spanning-forest experiments run on.
//
// What:
//
//   - Lattice wraps a Width×Height grid of cells, one node per cell.
//   - Four- or eight-connectivity (Conn4 or Conn8).
//   - Row-major NodeAt/CoordOf mapping between cells and dense node ids,
//     usable by external rendering layers for positioning.
//
// Why:
//
//   - Keeps coordinate concerns out of the core: the rsf package sees only
//     dense ids; a drawing consumer maps them back to (x, y) via CoordOf.
//
// Complexity:
//
//   - New: O(W×H) time and memory.
//   - NodeAt / CoordOf / InBounds: O(1).
//
// Options:
//
//   - WithConnectivity(Conn4|Conn8); Conn4 is the default.
//
// Errors:
//
//   - ErrBadDimensions: width or height below 1.
package grid
