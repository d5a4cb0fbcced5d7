// Package rsf killed random-walk stepping.
package rsf

import (
	"math"
	"math/rand"

	"github.com/riccardo1803/Wilson-algorithm-RSF/graphmodel"
)

// killingWalker samples one step of a random walk with absorption.
// Absorption is decided before any move, with probability q/(q+deg) at the
// current node; otherwise the next node is uniform over its neighbors.
type killingWalker struct {
	graph *graphmodel.Graph
	q     float64
	rng   *rand.Rand
}

// absorbProbability returns q/(q+d), defined as 1 for q = +Inf (where the
// ratio itself would be NaN) and for degree 0 under q > 0.
func absorbProbability(q float64, d int) float64 {
	if math.IsInf(q, 1) {
		return 1
	}
	if q == 0 {
		return 0
	}
	return q / (q + float64(d))
}

// step samples one step from cur. It returns (StepAbsorbed, cur) when the
// walk is killed, else (StepContinued, next) for a uniformly chosen
// neighbor. The caller guarantees deg(cur) > 0 whenever q == 0.
// Consumes exactly one rng.Float64 plus one rng.Intn on a move.
func (w *killingWalker) step(cur graphmodel.NodeID) (StepOutcome, graphmodel.NodeID) {
	d := w.graph.Degree(cur)
	if w.rng.Float64() < absorbProbability(w.q, d) {
		return StepAbsorbed, cur
	}

	return StepContinued, w.graph.Neighbor(cur, w.rng.Intn(d))
}
