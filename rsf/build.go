// Package rsf forest construction: the walk/erase/absorb state machine.
package rsf

import (
	"fmt"
	"math"

	"github.com/riccardo1803/Wilson-algorithm-RSF/graphmodel"
)

// builder encapsulates the mutable state of one Build run.
type builder struct {
	graph    *graphmodel.Graph
	opts     Options
	walk     killingWalker
	traj     Trajectory
	covered  []bool // indexed by dense node id, write-once per node
	seedRoot []bool // q == 0 only: immediate root per component
	forest   *Forest
	steps    int // global walk-position counter (starts and moves alike)
}

// Build generates a random spanning forest of g with killing parameter q,
// applying any number of functional Options.
//
// Every node ends up in exactly one tree; each tree has exactly one root,
// found where its walk was absorbed. Under q == 0 no walk can be absorbed,
// so the first node of each connected component (in enumeration order) is
// seeded as that component's root and the remaining walks merge into it —
// classic Wilson's algorithm. The build is sequential and deterministic
// for a fixed seed. On any error no partial forest is returned.
//
// Returns ErrNilGraph, ErrOption, ErrKillingParameter, ErrNodeOrder,
// ErrIsolatedNode (matching graphmodel.ErrInvalidGraph) or ErrStepBudget.
//
// Expected complexity: O(V·τ) steps for mean walk length τ; for q > 0,
// τ ≤ (q+maxdeg)/q, so termination is almost sure on any finite graph.
func Build(g *graphmodel.Graph, q float64, opts ...Option) (*Forest, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if q < 0 || math.IsNaN(q) {
		return nil, fmt.Errorf("%w: q=%v", ErrKillingParameter, q)
	}
	// Every node is walked from eventually; under q == 0 a degree-0 node
	// would stall forever, so reject the configuration upfront.
	if q == 0 {
		for n := range g.Nodes() {
			if g.Degree(n) == 0 {
				return nil, fmt.Errorf("%w: node %d has degree 0 (%w)",
					graphmodel.ErrInvalidGraph, n, ErrIsolatedNode)
			}
		}
	}
	order, err := enumerationOrder(g, o.NodeOrder)
	if err != nil {
		return nil, err
	}

	// Without absorption a walk can only terminate against covered nodes,
	// so each component's first node in enumeration order is declared its
	// root immediately — Wilson's classic initial root, per component.
	var seedRoot []bool
	if q == 0 {
		seedRoot = componentSeeds(g, order)
	}

	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}
	b := &builder{
		graph:    g,
		opts:     o,
		walk:     killingWalker{graph: g, q: q, rng: rng},
		covered:  make([]bool, g.Order()),
		seedRoot: seedRoot,
		forest:   &Forest{},
	}

	b.opts.Log.V(1).Info("build started", "order", g.Order(), "q", q)
	for _, n := range order {
		if b.covered[n] {
			continue
		}
		if err = b.walkFrom(n); err != nil {
			return nil, err
		}
	}
	b.forest.Steps = b.steps
	b.opts.Log.V(1).Info("build finished",
		"roots", len(b.forest.Roots), "edges", len(b.forest.Edges), "steps", b.steps)

	return b.forest, nil
}

// enumerationOrder returns the walk-start order: ascending ids by default,
// or a validated copy of the caller's permutation.
func enumerationOrder(g *graphmodel.Graph, custom []graphmodel.NodeID) ([]graphmodel.NodeID, error) {
	n := g.Order()
	if custom == nil {
		order := make([]graphmodel.NodeID, 0, n)
		for id := range g.Nodes() {
			order = append(order, id)
		}
		return order, nil
	}
	if len(custom) != n {
		return nil, fmt.Errorf("%w: got %d ids for order %d", ErrNodeOrder, len(custom), n)
	}
	seen := make([]bool, n)
	for _, id := range custom {
		if id < 0 || int(id) >= n || seen[id] {
			return nil, fmt.Errorf("%w: id %d repeated or out of range", ErrNodeOrder, id)
		}
		seen[id] = true
	}

	return custom, nil
}

// componentSeeds marks, per connected component, the first node in the
// enumeration order. Used only under q == 0, where these nodes become
// immediate roots.
// Complexity: O(V+E).
func componentSeeds(g *graphmodel.Graph, order []graphmodel.NodeID) []bool {
	n := g.Order()
	label := make([]int, n)
	for i := range label {
		label[i] = -1
	}
	comps := 0
	var stack []graphmodel.NodeID
	for s := range g.Nodes() {
		if label[s] >= 0 {
			continue
		}
		label[s] = comps
		stack = append(stack[:0], s)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for k := 0; k < g.Degree(u); k++ {
				if v := g.Neighbor(u, k); label[v] < 0 {
					label[v] = comps
					stack = append(stack, v)
				}
			}
		}
		comps++
	}

	seeded := make([]bool, comps)
	out := make([]bool, n)
	for _, id := range order {
		if !seeded[label[id]] {
			seeded[label[id]] = true
			out[id] = true
		}
	}

	return out
}

// walkFrom runs one killed loop-erased walk starting at n and commits the
// surviving trajectory into the forest.
func (b *builder) walkFrom(n graphmodel.NodeID) error {
	b.traj.Start(n)
	if err := b.takePosition(); err != nil {
		return err
	}
	b.record(Event{Kind: EventStart, Node: n, Step: b.steps - 1})
	b.opts.Log.V(2).Info("walk started", "node", n)

	// Seeded roots absorb on their start position without sampling.
	if b.seedRoot != nil && b.seedRoot[n] {
		b.absorb()
		return nil
	}

	for {
		outcome, next := b.walk.step(b.traj.Last())
		if outcome == StepAbsorbed {
			b.absorb()
			return nil
		}

		if err := b.takePosition(); err != nil {
			return err
		}
		if erased := b.traj.Advance(next); erased > 0 {
			b.record(Event{Kind: EventErase, Node: next, Step: b.steps - 1, Keep: b.traj.Len()})
		} else {
			b.record(Event{Kind: EventExtend, Node: next, Step: b.steps - 1})
		}

		if b.covered[next] {
			b.opts.OnStep(StepMerged, next)
			b.record(Event{Kind: EventMerge, Node: next, Step: b.steps - 1})
			b.opts.Log.V(2).Info("walk merged", "node", next)
			b.commit()
			return nil
		}
		b.opts.OnStep(StepContinued, next)
	}
}

// absorb declares the trajectory's current end a root and commits.
func (b *builder) absorb() {
	root := b.traj.Last()
	b.forest.Roots = append(b.forest.Roots, root)
	b.forest.RootOrder = append(b.forest.RootOrder, b.steps-1)
	b.opts.OnStep(StepAbsorbed, root)
	b.record(Event{Kind: EventRoot, Node: root, Step: b.steps - 1})
	b.opts.Log.V(2).Info("root found", "node", root, "position", b.steps-1)
	b.commit()
}

// commit moves the trajectory's surviving edges into the forest and marks
// its nodes covered.
func (b *builder) commit() {
	b.forest.Edges = append(b.forest.Edges, b.traj.Edges()...)
	for _, n := range b.traj.nodes {
		b.covered[n] = true
	}
}

// takePosition advances the global walk-position counter, enforcing the
// optional step budget.
func (b *builder) takePosition() error {
	b.steps++
	if b.opts.StepBudget > 0 && b.steps > b.opts.StepBudget {
		return fmt.Errorf("%w: budget %d", ErrStepBudget, b.opts.StepBudget)
	}
	return nil
}

// record appends ev to the configured trace, if any.
func (b *builder) record(ev Event) {
	if b.opts.Trace != nil {
		b.opts.Trace.append(ev)
	}
}
