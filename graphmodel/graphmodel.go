// Package graphmodel construction paths and read-only queries.
//
// Both Builder.Build and FromAdjacency return only sentinel errors and
// never panic at runtime; a Graph handed to callers is always well-formed.
package graphmodel

import (
	"fmt"
	"iter"
)

// Builder accumulates edges for a graph of a fixed node count.
// AddEdge validates eagerly, so Build cannot fail.
type Builder struct {
	adj  [][]NodeID
	seen []map[NodeID]struct{} // per-node membership for duplicate detection
}

// NewBuilder returns a Builder for a graph with n nodes, ids 0..n-1.
// Negative n is treated as zero.
func NewBuilder(n int) *Builder {
	if n < 0 {
		n = 0
	}
	return &Builder{
		adj:  make([][]NodeID, n),
		seen: make([]map[NodeID]struct{}, n),
	}
}

// AddEdge records the undirected edge u↔v in both adjacency lists.
// Returns ErrNodeRange, ErrSelfLoop or ErrDuplicateEdge on violation;
// the builder is unchanged on error.
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(u, v NodeID) error {
	n := NodeID(len(b.adj))
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("%w: edge %d↔%d with order %d (%w)", ErrInvalidGraph, u, v, n, ErrNodeRange)
	}
	if u == v {
		return fmt.Errorf("%w: edge %d↔%d (%w)", ErrInvalidGraph, u, v, ErrSelfLoop)
	}
	if b.seen[u] == nil {
		b.seen[u] = make(map[NodeID]struct{})
	}
	if _, dup := b.seen[u][v]; dup {
		return fmt.Errorf("%w: edge %d↔%d (%w)", ErrInvalidGraph, u, v, ErrDuplicateEdge)
	}
	if b.seen[v] == nil {
		b.seen[v] = make(map[NodeID]struct{})
	}
	b.seen[u][v] = struct{}{}
	b.seen[v][u] = struct{}{}
	b.adj[u] = append(b.adj[u], v)
	b.adj[v] = append(b.adj[v], u)

	return nil
}

// Build freezes the accumulated edges into an immutable Graph.
// The builder must not be used afterwards.
func (b *Builder) Build() *Graph {
	g := &Graph{adj: b.adj}
	b.adj = nil
	b.seen = nil

	return g
}

// FromAdjacency imports a prebuilt adjacency (adj[u] = neighbors of u) and
// validates it: ids in range, no self-loops, no duplicates, and symmetry
// (v ∈ adj[u] ⇔ u ∈ adj[v]). The input is deep-copied.
// Complexity: O(V+E) time and memory.
func FromAdjacency(adj [][]NodeID) (*Graph, error) {
	n := NodeID(len(adj))
	cp := make([][]NodeID, n)
	seen := make([]map[NodeID]struct{}, n)
	var u NodeID
	for u = 0; u < n; u++ {
		seen[u] = make(map[NodeID]struct{}, len(adj[u]))
		cp[u] = make([]NodeID, len(adj[u]))
		copy(cp[u], adj[u])
		for _, v := range cp[u] {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: node %d lists neighbor %d with order %d (%w)", ErrInvalidGraph, u, v, n, ErrNodeRange)
			}
			if v == u {
				return nil, fmt.Errorf("%w: node %d lists itself (%w)", ErrInvalidGraph, u, ErrSelfLoop)
			}
			if _, dup := seen[u][v]; dup {
				return nil, fmt.Errorf("%w: node %d lists neighbor %d twice (%w)", ErrInvalidGraph, u, v, ErrDuplicateEdge)
			}
			seen[u][v] = struct{}{}
		}
	}
	// Symmetry pass; all memberships are known by now.
	for u = 0; u < n; u++ {
		for _, v := range cp[u] {
			if _, ok := seen[v][u]; !ok {
				return nil, fmt.Errorf("%w: %d lists %d but not vice versa (%w)", ErrInvalidGraph, u, v, ErrAsymmetric)
			}
		}
	}

	return &Graph{adj: cp}, nil
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.adj) }

// Degree returns the number of neighbors of n.
// Complexity: O(1).
func (g *Graph) Degree(n NodeID) int { return len(g.adj[n]) }

// Neighbor returns the k-th neighbor of n, 0 ≤ k < Degree(n).
// Intended for hot paths (uniform neighbor sampling); no allocation.
// Complexity: O(1).
func (g *Graph) Neighbor(n NodeID, k int) NodeID { return g.adj[n][k] }

// Neighbors returns a copy of n's neighbor list. The copy keeps the Graph
// immutable even if the caller mutates the result.
// Complexity: O(deg(n)).
func (g *Graph) Neighbors(n NodeID) []NodeID {
	out := make([]NodeID, len(g.adj[n]))
	copy(out, g.adj[n])

	return out
}

// HasEdge reports whether u↔v is present.
// Complexity: O(min(deg(u), deg(v))).
func (g *Graph) HasEdge(u, v NodeID) bool {
	if u < 0 || v < 0 || int(u) >= len(g.adj) || int(v) >= len(g.adj) {
		return false
	}
	a := g.adj[u]
	if len(g.adj[v]) < len(a) {
		a, v = g.adj[v], u
	}
	for _, w := range a {
		if w == v {
			return true
		}
	}

	return false
}

// Nodes returns a lazy, restartable sequence over all node ids in
// ascending order. Each range over the result starts from 0 again.
func (g *Graph) Nodes() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for i := 0; i < len(g.adj); i++ {
			if !yield(NodeID(i)) {
				return
			}
		}
	}
}
