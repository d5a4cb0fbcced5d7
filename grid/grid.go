// Package grid lattice construction and coordinate mapping.
package grid

import (
	"fmt"

	"github.com/riccardo1803/Wilson-algorithm-RSF/graphmodel"
)

// offsets4 and offsets8 are the neighbor deltas per connectivity mode.
var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// New constructs a width×height lattice with the requested connectivity
// (Conn4 by default). Nodes are emitted in row-major order, edges toward
// the already-visited side only, so construction is deterministic and each
// undirected edge is added exactly once.
// Returns ErrBadDimensions if width or height is below 1.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Lattice, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, width, height)
	}
	o := options{conn: Conn4}
	for _, opt := range opts {
		opt(&o)
	}
	offsets := offsets4
	if o.conn == Conn8 {
		offsets = offsets8
	}

	b := graphmodel.NewBuilder(width * height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				// Emit only edges whose neighbor precedes (x,y) in row-major
				// order; the builder mirrors them.
				if ny > y || (ny == y && nx > x) {
					continue
				}
				u := graphmodel.NodeID(y*width + x)
				v := graphmodel.NodeID(ny*width + nx)
				if err := b.AddEdge(u, v); err != nil {
					return nil, err
				}
			}
		}
	}

	return &Lattice{width: width, height: height, conn: o.conn, graph: b.Build()}, nil
}

// Graph returns the underlying immutable graph.
func (l *Lattice) Graph() *graphmodel.Graph { return l.graph }

// Width returns the lattice width in cells.
func (l *Lattice) Width() int { return l.width }

// Height returns the lattice height in cells.
func (l *Lattice) Height() int { return l.height }

// InBounds reports whether (x,y) lies within the lattice boundaries.
// Complexity: O(1).
func (l *Lattice) InBounds(x, y int) bool {
	return x >= 0 && x < l.width && y >= 0 && y < l.height
}

// NodeAt maps (x,y) to its row-major node id: y*Width + x.
// The caller must ensure InBounds(x, y).
// Complexity: O(1).
func (l *Lattice) NodeAt(x, y int) graphmodel.NodeID {
	return graphmodel.NodeID(y*l.width + x)
}

// CoordOf converts a row-major node id back to its cell position.
// Complexity: O(1).
func (l *Lattice) CoordOf(n graphmodel.NodeID) Coord {
	return Coord{X: int(n) % l.width, Y: int(n) / l.width}
}

// Coords returns the cell position of every node, indexed by node id.
// Intended for external rendering layers that need a 2D layout.
// Complexity: O(W×H).
func (l *Lattice) Coords() []Coord {
	out := make([]Coord, l.width*l.height)
	for i := range out {
		out[i] = l.CoordOf(graphmodel.NodeID(i))
	}

	return out
}
