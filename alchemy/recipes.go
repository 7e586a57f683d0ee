// Package alchemy - static recipe and power tables, plus Brew.
//
// Recipes are compile-time constants of the economy: every potion kind owns
// a fixed, non-empty, acyclic requirement list. The tables below are the
// single source of truth; Recipe returns defensive copies so callers can
// never corrupt them.
package alchemy

import "math/rand"

// recipe pairs the fixed requirement list of a potion kind with its
// extra-power draw parameters.
type recipe struct {
	requires []Ingredient // fixed requirement list, never empty
	mean     float64      // Poisson mean of the extra-power draw
	lag      int          // additive shift applied to every draw
	bonus    int          // flat bonus added to reported power
}

// recipes is the static table keyed by PotionKind. Requirement triples are
// unique within each list.
var recipes = [numPotionKinds]recipe{
	Healing: {
		requires: []Ingredient{
			{Kind: Herb, Quantity: 3, Quality: Normal},
			{Kind: Mushroom, Quantity: 2, Quality: Normal},
			{Kind: Root, Quantity: 1, Quality: Normal},
		},
		mean: 3, lag: 1,
	},
	Invisibility: {
		requires: []Ingredient{
			{Kind: Herb, Quantity: 2, Quality: Premium},
			{Kind: Mushroom, Quantity: 1, Quality: Normal},
			{Kind: Root, Quantity: 1, Quality: Normal},
		},
		mean: 2, lag: 1,
	},
	Strength: {
		requires: []Ingredient{
			{Kind: Herb, Quantity: 2, Quality: Legendary},
			{Kind: Mushroom, Quantity: 3, Quality: Premium},
			{Kind: Root, Quantity: 2, Quality: Premium},
		},
		mean: 4, lag: 2, bonus: 10,
	},
}

// Recipe returns a copy of the fixed requirement list of the kind.
// Out-of-range kinds yield nil. Complexity: O(len(recipe)).
func (p PotionKind) Recipe() []Ingredient {
	if !p.Valid() {
		return nil
	}

	src := recipes[p].requires
	out := make([]Ingredient, len(src))
	copy(out, src)

	return out
}

// PowerBonus returns the flat bonus the kind adds to reported power
// (+10 for Strength, 0 otherwise).
func (p PotionKind) PowerBonus() int {
	if !p.Valid() {
		return 0
	}

	return recipes[p].bonus
}

// PowerParams returns the (mean, lag) pair of the kind's extra-power draw.
// Out-of-range kinds yield (0, 0).
func (p PotionKind) PowerParams() (mean float64, lag int) {
	if !p.Valid() {
		return 0, 0
	}

	return recipes[p].mean, recipes[p].lag
}

// Brew instantiates a potion of the given kind: it materializes the
// extra-power attribute via a lagged Poisson draw and returns the potion
// together with the concrete ingredient instances its recipe specifies.
//
// Brew never touches any inventory; producing the value is its only effect
// beyond advancing rng. A nil rng selects the fixed default stream.
// Out-of-range kinds return ErrUnknownPotion.
//
// Complexity: O(len(recipe)) plus the expected O(mean) of the Poisson draw.
func Brew(kind PotionKind, rng *rand.Rand) (Potion, []Ingredient, error) {
	if !kind.Valid() {
		return Potion{}, nil, ErrUnknownPotion
	}

	mean, lag := kind.PowerParams()

	return Potion{
		Kind:       kind,
		ExtraPower: Poisson(rng, mean, lag),
	}, kind.Recipe(), nil
}
