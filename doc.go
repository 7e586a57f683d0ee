// Package potioncraft is an in-memory playground for modeling a small
// crafting economy — potions composed from quality-tiered ingredients,
// a directed recipe graph, and a greedy budget-bounded allocation pass.
//
// 🚀 What is potioncraft?
//
//	A small, deterministic library that brings together:
//		• Domain primitives: ingredient kinds, quality tiers, potion recipes
//		• Recipe graph: potion-kind nodes wired to their ingredient requirements
//		• Topological ordering: dependency-respecting traversal of the graph
//		• Greedy allocation: consume stocked ingredients within per-quality budgets
//		• Inventory keeping: add, remove, synthesize and report ingredient stock
//
// ✨ Why choose potioncraft?
//
//   - Deterministic by construction – every random draw flows through an
//     explicit, seedable stream; same seed ⇒ identical run
//   - Rock-solid guarantees – sentinel errors, no panics, in-code docs
//   - Minimal API – clear, intuitive naming per package
//
// Everything is organized under four subpackages plus one binary:
//
//	alchemy/      — ingredient & potion model, recipes, seeded randomness
//	craftgraph/   — the directed recipe graph, topological sort, DOT export
//	inventory/    — the ingredient keeper (stock bookkeeping)
//	brew/         — random potion picking, quality budgets, greedy allocation
//	cmd/potionsim — console simulation driver
//
// Quick ASCII example:
//
//	 Healing ──► Herb ×3 (normal)
//	    │
//	    └──────► Root ×1 (normal) ◄────── Invisibility
//
//	two potion nodes sharing one requirement node.
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and runnable examples.
//
//	go get github.com/katalvlaran/potioncraft
package potioncraft
