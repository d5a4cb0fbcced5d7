// Package rsf core types, tunable options, and sentinel errors.
package rsf

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/go-logr/logr"

	"github.com/riccardo1803/Wilson-algorithm-RSF/graphmodel"
)

// Sentinel errors for forest construction.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("rsf: graph is nil")

	// ErrKillingParameter indicates q < 0 or NaN.
	ErrKillingParameter = errors.New("rsf: killing parameter must be non-negative")

	// ErrIsolatedNode indicates a degree-0 node under q == 0, whose walk
	// could never terminate. Build wraps it together with
	// graphmodel.ErrInvalidGraph.
	ErrIsolatedNode = errors.New("rsf: isolated node cannot be walked when q is zero")

	// ErrNodeOrder indicates WithNodeOrder was not a permutation of all node ids.
	ErrNodeOrder = errors.New("rsf: node order must be a permutation of all node ids")

	// ErrStepBudget indicates the configured step budget was exhausted.
	ErrStepBudget = errors.New("rsf: step budget exceeded")

	// ErrOption is returned when an invalid Option is supplied.
	ErrOption = errors.New("rsf: invalid option supplied")
)

// Edge is a tree edge oriented toward its root: To is nearer the root
// than From (From's parent is To).
type Edge struct {
	From, To graphmodel.NodeID
}

// StepOutcome tags the result of one walk step.
type StepOutcome int

const (
	// StepContinued - the walk moved to a neighbor.
	StepContinued StepOutcome = iota
	// StepAbsorbed - the walk was killed; its current end is a new root.
	StepAbsorbed
	// StepMerged - the walk moved onto a covered node and was grafted
	// onto the existing forest.
	StepMerged
)

// String returns the outcome tag name.
func (s StepOutcome) String() string {
	switch s {
	case StepContinued:
		return "continued"
	case StepAbsorbed:
		return "absorbed"
	case StepMerged:
		return "merged"
	default:
		return fmt.Sprintf("StepOutcome(%d)", int(s))
	}
}

// Forest is the immutable output of Build: a partition of all nodes into
// rooted trees.
//
//   - Edges: committed walk edges, oriented toward their root.
//   - Roots: absorption points, in discovery order.
//   - RootOrder: for each root, the global walk-position index at which it
//     was discovered. Every walk start and every move occupies one
//     position; consumed only by replay/rendering layers.
//   - Steps: total number of walk positions taken by the build.
//
// Invariant: len(Edges) + len(Roots) equals the graph order.
type Forest struct {
	Edges     []Edge
	Roots     []graphmodel.NodeID
	RootOrder []int
	Steps     int
}

// Option configures forest construction via functional arguments.
// An invalid Option (e.g. negative budget) is recorded internally and
// surfaced as ErrOption when Build is invoked.
type Option func(*Options)

// Options holds parameters controlling a Build run.
type Options struct {
	// Seed seeds the deterministic RNG stream; 0 selects a fixed default
	// seed so that the zero value stays reproducible.
	Seed int64

	// Rand overrides Seed with a caller-owned generator when non-nil.
	// The stream is consumed sequentially over the whole build.
	Rand *rand.Rand

	// NodeOrder overrides the default ascending enumeration order.
	// Must be a permutation of all node ids; validated by Build.
	NodeOrder []graphmodel.NodeID

	// StepBudget, if > 0, bounds the total number of walk positions;
	// exceeding it aborts the build with ErrStepBudget.
	// A value of 0 explicitly disables the bound.
	StepBudget int

	// Log receives structured progress events; logr.Discard() by default.
	Log logr.Logger

	// Trace, when non-nil, records the delta event log for replay.
	// Recording never alters the produced forest.
	Trace *Trace

	// OnStep is called after every sampled walk step with its outcome and
	// the node concerned (next node, root, or merge point). Pure
	// observation; must not mutate the graph.
	OnStep func(StepOutcome, graphmodel.NodeID)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: default seed policy,
// ascending node order, no budget, discarded logger, no trace, no hook.
func DefaultOptions() Options {
	return Options{
		Log:    logr.Discard(),
		OnStep: func(StepOutcome, graphmodel.NodeID) {},
	}
}

// WithSeed seeds the build's RNG stream. Seed 0 selects the fixed default
// seed (reproducible zero value); any other value is used verbatim.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies a caller-owned RNG, overriding WithSeed. The generator
// must not be shared with other goroutines during the build.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithNodeOrder fixes the enumeration order of walk start nodes. The slice
// is copied; it must be a permutation of all node ids or Build fails with
// ErrNodeOrder.
func WithNodeOrder(order []graphmodel.NodeID) Option {
	return func(o *Options) {
		if order == nil {
			return
		}
		o.NodeOrder = make([]graphmodel.NodeID, len(order))
		copy(o.NodeOrder, order)
	}
}

// WithStepBudget bounds the total number of walk positions.
//
//	n > 0: abort with ErrStepBudget once exceeded
//	n == 0: explicit no bound
//	n < 0: invalid option → ErrOption
func WithStepBudget(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: StepBudget cannot be negative (%d)", ErrOption, n)
			return
		}
		o.StepBudget = n
	}
}

// WithLogger wires a logr.Logger into the build; by default logs are discarded.
func WithLogger(log logr.Logger) Option {
	return func(o *Options) { o.Log = log }
}

// WithTrace records the build's delta event log into tr for later replay.
func WithTrace(tr *Trace) Option {
	return func(o *Options) { o.Trace = tr }
}

// WithOnStep registers a per-step observation hook.
func WithOnStep(fn func(StepOutcome, graphmodel.NodeID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
