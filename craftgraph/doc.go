// Package craftgraph builds and queries the directed recipe graph of the
// crafting economy.
//
// The graph G = (V,E) is bipartite-like:
//
//   - one PotionNode per potion kind,
//   - one RequirementNode per distinct (ingredient kind, quantity, quality)
//     requirement triple,
//   - one directed edge potion→requirement per recipe entry.
//
// Requirement triples shared by several recipes collapse into a single node
// with one incoming edge per owning potion. Recipes are static and acyclic,
// so a valid topological order always exists; TopologicalSort still detects
// cycles defensively and reports ErrCycleDetected, because the mutation API
// is public.
//
// Determinism:
//
//   - Nodes(), PotionNodes(), RequirementNodes(), Successors() and
//     Predecessors() all return IDs sorted lexicographically ascending.
//   - Build produces identical graphs for identical kind lists.
//   - ToDOT renders a stable node-link description suitable for Graphviz.
//
// Concurrency:
//
//	A Graph is NOT safe for concurrent mutation. The intended lifecycle is
//	build-once, query-many within a single simulation run.
//
// Errors:
//
//	ErrGraphNil       - nil *Graph passed to a query or sort.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrDuplicateEdge  - the same potion→requirement edge added twice.
//	ErrNoPotions      - Build invoked over an empty kind list.
//	ErrCycleDetected  - TopologicalSort found a back-edge.
//
// Complexity:
//
//   - Build: O(K·R) for K kinds with R-entry recipes.
//   - TopologicalSort: O(V + E) time, O(V) space.
//   - ToDOT: O(V + E).
package craftgraph
