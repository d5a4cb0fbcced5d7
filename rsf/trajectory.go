// Package rsf loop-erased trajectory bookkeeping.
package rsf

import "github.com/riccardo1803/Wilson-algorithm-RSF/graphmodel"

// Trajectory is the ordered path of the walk in progress, with loops
// erased in place. After any number of Advance calls no node appears
// twice, and the consecutive pairs are exactly the surviving walk edges.
//
// Membership is tracked in an id→index map so erasure costs O(loop length)
// rather than the O(n) scans of a naive list.
//
// A Trajectory is owned by a single walk; Start begins a walk on the zero
// value and resets any previous one for reuse.
type Trajectory struct {
	nodes []graphmodel.NodeID
	index map[graphmodel.NodeID]int // node → position in nodes
}

// Start resets the trajectory to the single-element path [n].
// Complexity: O(previous length) to clear the index.
func (t *Trajectory) Start(n graphmodel.NodeID) {
	t.nodes = t.nodes[:0]
	if t.index == nil {
		t.index = make(map[graphmodel.NodeID]int)
	} else {
		clear(t.index)
	}
	t.nodes = append(t.nodes, n)
	t.index[n] = 0
}

// Advance appends next to the path, or, if next already occurs at index i,
// truncates the path to its first i+1 elements — deleting the loop and
// every edge inside it. Returns the number of nodes erased (0 on append).
// Complexity: O(1) amortized append, O(loop length) on erasure.
func (t *Trajectory) Advance(next graphmodel.NodeID) int {
	if i, ok := t.index[next]; ok {
		erased := len(t.nodes) - (i + 1)
		for _, n := range t.nodes[i+1:] {
			delete(t.index, n)
		}
		t.nodes = t.nodes[:i+1]
		return erased
	}
	t.index[next] = len(t.nodes)
	t.nodes = append(t.nodes, next)
	return 0
}

// Len returns the current path length in nodes.
func (t *Trajectory) Len() int { return len(t.nodes) }

// Last returns the current end of the path. Panics on an empty
// trajectory; the walk loop guarantees Start was called first.
func (t *Trajectory) Last() graphmodel.NodeID { return t.nodes[len(t.nodes)-1] }

// Contains reports whether n is on the current path.
// Complexity: O(1).
func (t *Trajectory) Contains(n graphmodel.NodeID) bool {
	_, ok := t.index[n]
	return ok
}

// Nodes returns a copy of the current path.
// Complexity: O(len).
func (t *Trajectory) Nodes() []graphmodel.NodeID {
	out := make([]graphmodel.NodeID, len(t.nodes))
	copy(out, t.nodes)

	return out
}

// Edges returns the consecutive-pair edges of the current path, oriented
// toward its end (the eventual root or merge point).
// Complexity: O(len).
func (t *Trajectory) Edges() []Edge {
	if len(t.nodes) < 2 {
		return nil
	}
	out := make([]Edge, 0, len(t.nodes)-1)
	for j := 0; j+1 < len(t.nodes); j++ {
		out = append(out, Edge{From: t.nodes[j], To: t.nodes[j+1]})
	}

	return out
}
