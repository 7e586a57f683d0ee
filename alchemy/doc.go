// Package alchemy defines the domain primitives of the crafting economy:
// ingredient kinds, quality tiers, concrete ingredients, potion kinds with
// their fixed recipes, and brewed potion instances.
//
// The model is a closed set of tagged variants rather than an open type
// hierarchy: IngredientKind, Quality and PotionKind are small enumerations
// backed by static tables (unit costs, recipes, power parameters). The
// variant sets are fixed for the lifetime of the process.
//
// Cost model:
//
//	Cost(ingredient) = Quantity × UnitCost(Quality)
//	UnitCost: normal=1, premium=3, legendary=5
//
// Power model:
//
//	Every brew draws an "extra power" value from a lagged Poisson
//	distribution parameterized per potion kind (mean, lag). Strength
//	potions report a flat +10 on top of the draw.
//
// Randomness:
//
//	All stochastic behavior flows through an explicit *rand.Rand built by
//	NewRand(seed); seed==0 selects a fixed default stream. Same seed ⇒
//	identical draws across runs. Nothing in this package reads time-based
//	entropy.
//
// Complexity: every operation in this package is O(1) except Recipe,
// which copies a fixed-size slice.
package alchemy
