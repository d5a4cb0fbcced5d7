// Package grid types, options, and sentinel errors.
package grid

import (
	"errors"

	"github.com/riccardo1803/Wilson-algorithm-RSF/graphmodel"
)

// ErrBadDimensions indicates a lattice with width or height below 1.
var ErrBadDimensions = errors.New("grid: width and height must be at least 1")

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Coord is a cell position within the lattice.
type Coord struct {
	X, Y int
}

// Option configures lattice construction.
type Option func(*options)

type options struct {
	conn Connectivity
}

// WithConnectivity selects Conn4 or Conn8 adjacency.
func WithConnectivity(c Connectivity) Option {
	return func(o *options) { o.conn = c }
}

// Lattice is an immutable Width×Height grid over a graphmodel.Graph.
// Node ids are row-major: id = y*Width + x.
type Lattice struct {
	width, height int
	conn          Connectivity
	graph         *graphmodel.Graph
}
