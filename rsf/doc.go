// Package rsf builds random spanning forests (RSF) of undirected graphs
// via killed loop-erased random walks — Wilson's algorithm generalized
// with an absorption ("killing") parameter q.
//
// 🚀 How it works:
//
//	Nodes are processed in a fixed enumeration order. For every node not
//	yet covered, a random walk starts; before each move the walk is
//	absorbed with probability q/(q+deg), making its current end a new
//	root. Otherwise it moves to a uniformly chosen neighbor, erasing any
//	loop it closes. A walk that hits an already-covered node is grafted
//	(merged) onto the existing forest. The surviving path is committed as
//	tree edges and its nodes marked covered.
//
// ✨ Key properties:
//   - q = 0 on a connected graph: classic Wilson — the first enumerated
//     node seeds the single root and the result is a uniform spanning tree.
//   - q = +Inf: every node is absorbed immediately; all singleton roots.
//   - Reproducible end-to-end from one seed (single sequential RNG stream).
//   - The enumeration order changes the sample, never its distribution.
//
// ⚙️ Usage:
//
//	g, _ := grid.New(20, 20)
//	forest, err := rsf.Build(g.Graph(), 0.5, rsf.WithSeed(42))
//
// Observability:
//
//   - WithTrace records an append-only delta log replayable into per-step
//     snapshots (for external animation); recording never touches the RNG.
//   - WithLogger accepts a logr.Logger (discarded by default).
//   - WithOnStep registers a per-step hook receiving the StepOutcome.
//
// Errors:
//
//   - ErrNilGraph: nil graph pointer.
//   - ErrKillingParameter: q < 0 or NaN.
//   - ErrIsolatedNode: degree-0 node with q == 0 (walk would never end);
//     also matches graphmodel.ErrInvalidGraph.
//   - ErrNodeOrder: WithNodeOrder is not a permutation of all node ids.
//   - ErrStepBudget: WithStepBudget exhausted before the build finished.
//   - ErrOption: invalid option value (e.g. negative budget).
//
// Performance: expected O(V·τ) where τ is the mean walk length; memory
// O(V+E) for the forest plus O(steps) when tracing.
package rsf
