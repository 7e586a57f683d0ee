// Package brew is the coordinator surface of the crafting economy: random
// potion picking, per-quality budgets, and the greedy allocation pass.
//
// RandomPotion selects one potion node uniformly at random and brews it;
// it never touches inventory.
//
// Allocate walks the recipe graph in topological order, brewing one potion
// per potion node, and greedily consumes stocked ingredients that match each
// requirement — but only while the ingredient tier's budget covers the
// instance cost. Budgets are NOT funded by the allocator: a nil budget
// starts every tier at zero, so a fresh pass brews potions yet removes
// nothing from stock. Consumption happens only after a caller funds the
// budget explicitly (Budget.Fund); the allocator never pre-funds it.
//
// Invariants:
//
//   - A budget line never goes negative: Spend succeeds only when
//     remaining ≥ cost.
//   - A stocked instance is consumed at most once per pass.
//   - Missing stock for a requirement is not an error; it is skipped.
//
// Determinism: for a fixed graph, stock and seed, the pass is fully
// reproducible — node order comes from TopologicalSort, stock iteration
// from the Keeper's insertion order, and draws from the caller's stream.
package brew
