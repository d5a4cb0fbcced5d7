// Package graphmodel declares NodeID, the Graph container, and the
// sentinel errors shared by both construction paths.
package graphmodel

import "errors"

// Sentinel errors for graph construction. Specific causes wrap
// ErrInvalidGraph, so callers may match either the class or the cause.
var (
	// ErrInvalidGraph is the class sentinel for every construction failure.
	ErrInvalidGraph = errors.New("graphmodel: invalid graph")

	// ErrSelfLoop indicates an edge from a node to itself.
	ErrSelfLoop = errors.New("graphmodel: self-loop not allowed")

	// ErrDuplicateEdge indicates a parallel edge between the same endpoints.
	ErrDuplicateEdge = errors.New("graphmodel: duplicate edge")

	// ErrNodeRange indicates a node id outside [0, Order).
	ErrNodeRange = errors.New("graphmodel: node id out of range")

	// ErrAsymmetric indicates an imported adjacency where u lists v but
	// v does not list u.
	ErrAsymmetric = errors.New("graphmodel: asymmetric adjacency")
)

// NodeID is a dense node identifier in [0, Order).
type NodeID int

// Graph is an immutable, undirected, unweighted graph.
// The zero value is an empty graph; use NewBuilder or FromAdjacency
// to obtain a populated one. All methods are safe for concurrent use
// because the structure is never mutated after construction.
type Graph struct {
	adj [][]NodeID // adj[u] lists the neighbors of u, insertion order
}
