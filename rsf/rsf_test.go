package rsf_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riccardo1803/Wilson-algorithm-RSF/graphmodel"
	"github.com/riccardo1803/Wilson-algorithm-RSF/grid"
	"github.com/riccardo1803/Wilson-algorithm-RSF/rsf"
)

//----------------------------------------------------------------------------//
// Helpers
//----------------------------------------------------------------------------//

// buildPath constructs the path graph 0-1-...-(n-1).
func buildPath(t *testing.T, n int) *graphmodel.Graph {
	t.Helper()
	b := graphmodel.NewBuilder(n)
	for i := 1; i < n; i++ {
		require.NoError(t, b.AddEdge(graphmodel.NodeID(i-1), graphmodel.NodeID(i)))
	}
	return b.Build()
}

// buildTwoTriangles constructs two disjoint triangles {0,1,2} and {3,4,5}.
func buildTwoTriangles(t *testing.T) *graphmodel.Graph {
	t.Helper()
	b := graphmodel.NewBuilder(6)
	for _, e := range [][2]graphmodel.NodeID{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}} {
		require.NoError(t, b.AddEdge(e[0], e[1]))
	}
	return b.Build()
}

// assertWellFormed checks the structural forest invariants:
// every node is either a root or has exactly one parent edge, parent
// chains terminate at roots (no cycles), and |edges|+|roots| = |nodes|.
func assertWellFormed(t *testing.T, g *graphmodel.Graph, f *rsf.Forest) {
	t.Helper()
	n := g.Order()
	require.Equal(t, n, len(f.Edges)+len(f.Roots), "edge count + root count must equal node count")
	require.Equal(t, len(f.Roots), len(f.RootOrder), "RootOrder must align with Roots")

	parent := make(map[graphmodel.NodeID]graphmodel.NodeID, len(f.Edges))
	for _, e := range f.Edges {
		_, dup := parent[e.From]
		require.False(t, dup, "node %d has two parent edges", e.From)
		require.True(t, g.HasEdge(e.From, e.To), "forest edge %d→%d not in graph", e.From, e.To)
		parent[e.From] = e.To
	}
	isRoot := make(map[graphmodel.NodeID]bool, len(f.Roots))
	for _, r := range f.Roots {
		require.False(t, isRoot[r], "root %d listed twice", r)
		isRoot[r] = true
		_, hasParent := parent[r]
		require.False(t, hasParent, "root %d must not have a parent edge", r)
	}
	// Follow parent chains; each must reach a root within n hops.
	for node := range g.Nodes() {
		cur, hops := node, 0
		for !isRoot[cur] {
			next, ok := parent[cur]
			require.True(t, ok, "node %d reaches %d which is neither root nor child", node, cur)
			cur = next
			hops++
			require.LessOrEqual(t, hops, n, "cycle detected following parents from %d", node)
		}
	}
}

// components labels connected components of g by repeated traversal.
func components(g *graphmodel.Graph) map[graphmodel.NodeID]int {
	label := make(map[graphmodel.NodeID]int, g.Order())
	next := 0
	for s := range g.Nodes() {
		if _, ok := label[s]; ok {
			continue
		}
		stack := []graphmodel.NodeID{s}
		label[s] = next
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, v := range g.Neighbors(u) {
				if _, ok := label[v]; !ok {
					label[v] = next
					stack = append(stack, v)
				}
			}
		}
		next++
	}
	return label
}

//----------------------------------------------------------------------------//
// Validation Tests
//----------------------------------------------------------------------------//

// TestBuild_Errors exercises the fail-fast precondition checks.
func TestBuild_Errors(t *testing.T) {
	g := buildPath(t, 3)

	_, err := rsf.Build(nil, 1)
	assert.ErrorIs(t, err, rsf.ErrNilGraph, "nil graph must be rejected")

	_, err = rsf.Build(g, -0.5)
	assert.ErrorIs(t, err, rsf.ErrKillingParameter, "negative q must be rejected")

	_, err = rsf.Build(g, math.NaN())
	assert.ErrorIs(t, err, rsf.ErrKillingParameter, "NaN q must be rejected")

	_, err = rsf.Build(g, 1, rsf.WithStepBudget(-1))
	assert.ErrorIs(t, err, rsf.ErrOption, "negative budget must surface ErrOption")

	_, err = rsf.Build(g, 1, rsf.WithNodeOrder([]graphmodel.NodeID{0, 1}))
	assert.ErrorIs(t, err, rsf.ErrNodeOrder, "short order must be rejected")

	_, err = rsf.Build(g, 1, rsf.WithNodeOrder([]graphmodel.NodeID{0, 1, 1}))
	assert.ErrorIs(t, err, rsf.ErrNodeOrder, "repeated id must be rejected")
}

// TestBuild_IsolatedNode rejects a degree-0 node under q == 0 but accepts
// it under q > 0, where the walk absorbs immediately.
func TestBuild_IsolatedNode(t *testing.T) {
	g := graphmodel.NewBuilder(1).Build() // one node, no edges

	_, err := rsf.Build(g, 0)
	assert.ErrorIs(t, err, rsf.ErrIsolatedNode)
	assert.ErrorIs(t, err, graphmodel.ErrInvalidGraph, "isolated node is an invalid-graph class failure")

	f, err := rsf.Build(g, 2.5, rsf.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, []graphmodel.NodeID{0}, f.Roots)
	assert.Empty(t, f.Edges)
}

// TestBuild_StepBudget aborts a too-tight budget with no partial forest.
func TestBuild_StepBudget(t *testing.T) {
	l, err := grid.New(5, 5)
	require.NoError(t, err)

	f, err := rsf.Build(l.Graph(), 0, rsf.WithSeed(3), rsf.WithStepBudget(2))
	assert.ErrorIs(t, err, rsf.ErrStepBudget)
	assert.Nil(t, f, "no partial forest on budget exhaustion")

	// A generous budget must not perturb the result.
	bounded, err := rsf.Build(l.Graph(), 0, rsf.WithSeed(3), rsf.WithStepBudget(1<<20))
	require.NoError(t, err)
	free, err := rsf.Build(l.Graph(), 0, rsf.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, free, bounded)
}

//----------------------------------------------------------------------------//
// Forest Property Tests
//----------------------------------------------------------------------------//

// TestBuild_CoverageAndAcyclicity checks the structural invariants across
// several graphs, killing strengths, and seeds.
func TestBuild_CoverageAndAcyclicity(t *testing.T) {
	l, err := grid.New(6, 4)
	require.NoError(t, err)
	graphs := map[string]*graphmodel.Graph{
		"Path10":       buildPath(t, 10),
		"Grid6x4":      l.Graph(),
		"TwoTriangles": buildTwoTriangles(t),
	}
	for name, g := range graphs {
		for _, q := range []float64{0, 0.3, 1, 10} {
			for seed := int64(1); seed <= 5; seed++ {
				f, err := rsf.Build(g, q, rsf.WithSeed(seed))
				require.NoError(t, err, "%s q=%v seed=%d", name, q, seed)
				assertWellFormed(t, g, f)
			}
		}
	}
}

// TestBuild_OneRootPerComponent verifies the q=0 degenerate case: each
// connected component carries exactly one root and a spanning tree.
func TestBuild_OneRootPerComponent(t *testing.T) {
	g := buildTwoTriangles(t)
	comp := components(g)

	f, err := rsf.Build(g, 0, rsf.WithSeed(11))
	require.NoError(t, err)
	assertWellFormed(t, g, f)

	perComp := make(map[int]int)
	for _, r := range f.Roots {
		perComp[comp[r]]++
	}
	assert.Len(t, perComp, 2, "both components must be rooted")
	for c, count := range perComp {
		assert.Equal(t, 1, count, "component %d must have exactly one root", c)
	}
}

// TestBuild_ZeroQ_SpanningTree checks q=0 on a connected graph: a single
// root and |V|-1 edges.
func TestBuild_ZeroQ_SpanningTree(t *testing.T) {
	l, err := grid.New(5, 5)
	require.NoError(t, err)
	g := l.Graph()

	f, err := rsf.Build(g, 0, rsf.WithSeed(42))
	require.NoError(t, err)
	assertWellFormed(t, g, f)
	assert.Len(t, f.Roots, 1, "q=0 on a connected graph yields one tree")
	assert.Len(t, f.Edges, g.Order()-1)
}

// TestBuild_InfiniteQ checks q=+Inf: every node its own singleton root,
// no edges, roots in enumeration order, RootOrder 0..n-1.
func TestBuild_InfiniteQ(t *testing.T) {
	g := buildPath(t, 7)
	f, err := rsf.Build(g, math.Inf(1), rsf.WithSeed(1))
	require.NoError(t, err)

	assert.Empty(t, f.Edges)
	require.Len(t, f.Roots, 7)
	for i, r := range f.Roots {
		assert.Equal(t, graphmodel.NodeID(i), r)
		assert.Equal(t, i, f.RootOrder[i], "singleton root occupies one position each")
	}
	assert.Equal(t, 7, f.Steps)
}

// TestBuild_Determinism: identical seeds produce identical forests,
// whether seeded directly or via an equivalent caller-owned RNG.
func TestBuild_Determinism(t *testing.T) {
	l, err := grid.New(8, 8)
	require.NoError(t, err)
	g := l.Graph()

	a, err := rsf.Build(g, 0.7, rsf.WithSeed(99))
	require.NoError(t, err)
	b, err := rsf.Build(g, 0.7, rsf.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must reproduce the forest exactly")

	c, err := rsf.Build(g, 0.7, rsf.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	assert.Equal(t, a, c, "WithRand over the same source must match WithSeed")

	d, err := rsf.Build(g, 0.7, rsf.WithSeed(100))
	require.NoError(t, err)
	assert.NotEqual(t, a.Edges, d.Edges, "different seeds should diverge on a 8×8 grid")
}

// TestBuild_SmallGridScenario is the 2×2 lattice with q=1 (corner degree 2,
// absorption probability 1/3): terminates, yields 1..4 roots, and the edge
// count plus root count equals 4.
func TestBuild_SmallGridScenario(t *testing.T) {
	l, err := grid.New(2, 2)
	require.NoError(t, err)
	g := l.Graph()

	for seed := int64(1); seed <= 20; seed++ {
		f, err := rsf.Build(g, 1, rsf.WithSeed(seed))
		require.NoError(t, err, "seed %d", seed)
		assert.GreaterOrEqual(t, len(f.Roots), 1, "seed %d", seed)
		assert.LessOrEqual(t, len(f.Roots), 4, "seed %d", seed)
		assert.Equal(t, 4, len(f.Edges)+len(f.Roots), "seed %d", seed)
		assertWellFormed(t, g, f)
	}
}

// TestBuild_NodeOrder: a custom permutation changes only the sample, and
// the default order equals ascending ids.
func TestBuild_NodeOrder(t *testing.T) {
	l, err := grid.New(4, 4)
	require.NoError(t, err)
	g := l.Graph()

	order := make([]graphmodel.NodeID, g.Order())
	for i := range order {
		order[i] = graphmodel.NodeID(g.Order() - 1 - i)
	}
	f, err := rsf.Build(g, 0.5, rsf.WithSeed(5), rsf.WithNodeOrder(order))
	require.NoError(t, err)
	assertWellFormed(t, g, f)

	asc := make([]graphmodel.NodeID, g.Order())
	for i := range asc {
		asc[i] = graphmodel.NodeID(i)
	}
	explicit, err := rsf.Build(g, 0.5, rsf.WithSeed(5), rsf.WithNodeOrder(asc))
	require.NoError(t, err)
	implicit, err := rsf.Build(g, 0.5, rsf.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, implicit, explicit, "explicit ascending order must match the default")
}

// TestBuild_OnStepHook counts outcomes through the observation hook and
// cross-checks them against the forest.
func TestBuild_OnStepHook(t *testing.T) {
	l, err := grid.New(4, 3)
	require.NoError(t, err)
	g := l.Graph()

	counts := make(map[rsf.StepOutcome]int)
	f, err := rsf.Build(g, 0.8, rsf.WithSeed(17),
		rsf.WithOnStep(func(out rsf.StepOutcome, _ graphmodel.NodeID) { counts[out]++ }))
	require.NoError(t, err)

	assert.Equal(t, len(f.Roots), counts[rsf.StepAbsorbed], "one absorption per root")
	// Positions = walk starts + moves; every walk ends absorbed or merged.
	starts := f.Steps - counts[rsf.StepContinued] - counts[rsf.StepMerged]
	assert.Equal(t, counts[rsf.StepAbsorbed]+counts[rsf.StepMerged], starts, "each started walk terminates exactly once")
	assert.GreaterOrEqual(t, starts, 1)
}
