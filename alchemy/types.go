// Package alchemy - core variant enumerations and instance types.
//
// This file declares Quality, IngredientKind, Ingredient, PotionKind and
// Potion, together with the static cost table. Recipes and power parameters
// live in recipes.go; randomness helpers live in rng.go.
package alchemy

import (
	"errors"
	"fmt"
)

// Sentinel errors for alchemy operations.
var (
	// ErrUnknownQuality indicates a Quality value outside the closed variant set.
	ErrUnknownQuality = errors.New("alchemy: unknown quality tier")

	// ErrUnknownIngredient indicates an IngredientKind outside the closed variant set.
	ErrUnknownIngredient = errors.New("alchemy: unknown ingredient kind")

	// ErrUnknownPotion indicates a PotionKind outside the closed variant set.
	ErrUnknownPotion = errors.New("alchemy: unknown potion kind")
)

// Quality is the closed set of ingredient quality tiers.
type Quality uint8

const (
	// Normal is the baseline tier (unit cost 1).
	Normal Quality = iota
	// Premium is the mid tier (unit cost 3).
	Premium
	// Legendary is the top tier (unit cost 5).
	Legendary

	numQualities
)

// qualityNames maps each tier to its display name.
var qualityNames = [numQualities]string{"normal", "premium", "legendary"}

// qualityCosts maps each tier to its per-unit cost.
var qualityCosts = [numQualities]int{1, 3, 5}

// Qualities returns all quality tiers in ascending cost order.
// The returned slice is a fresh copy; callers may mutate it freely.
func Qualities() []Quality {
	return []Quality{Normal, Premium, Legendary}
}

// String returns the display name of the tier ("normal", "premium",
// "legendary"), or "unknown" for out-of-range values.
func (q Quality) String() string {
	if !q.Valid() {
		return "unknown"
	}

	return qualityNames[q]
}

// UnitCost returns the per-unit cost multiplier of the tier.
// Out-of-range values cost 0 (they never match any budget line).
func (q Quality) UnitCost() int {
	if !q.Valid() {
		return 0
	}

	return qualityCosts[q]
}

// Valid reports whether q is a member of the closed variant set.
func (q Quality) Valid() bool { return q < numQualities }

// IngredientKind is the closed set of ingredient variants.
type IngredientKind uint8

const (
	// Herb is the leafy ingredient variant.
	Herb IngredientKind = iota
	// Mushroom is the fungal ingredient variant.
	Mushroom
	// Root is the subterranean ingredient variant.
	Root

	numIngredientKinds
)

// ingredientNames maps each kind to its display name.
var ingredientNames = [numIngredientKinds]string{"Herb", "Mushroom", "Root"}

// IngredientKinds returns all ingredient kinds in declaration order.
// The returned slice is a fresh copy; callers may mutate it freely.
func IngredientKinds() []IngredientKind {
	return []IngredientKind{Herb, Mushroom, Root}
}

// String returns the display name of the kind, or "unknown" when out of range.
func (k IngredientKind) String() string {
	if !k.Valid() {
		return "unknown"
	}

	return ingredientNames[k]
}

// Valid reports whether k is a member of the closed variant set.
func (k IngredientKind) Valid() bool { return k < numIngredientKinds }

// Ingredient is a concrete, immutable ingredient instance: a kind, a
// positive quantity, and a quality tier. Ingredients are plain values;
// two instances compare equal iff all three fields match (structural
// equality), which is exactly the matching rule inventory removal uses.
type Ingredient struct {
	// Kind selects the ingredient variant.
	Kind IngredientKind

	// Quantity is the number of units; always ≥ 1 for well-formed instances.
	Quantity int

	// Quality is the tier that determines the per-unit cost.
	Quality Quality
}

// Name returns the display name of the underlying kind.
func (i Ingredient) Name() string { return i.Kind.String() }

// Cost returns Quantity × UnitCost(Quality).
// Cost is multiplicative and monotonic in Quantity:
// Cost(2, premium) = 2 × Cost(1, premium) = 6.
func (i Ingredient) Cost() int { return i.Quantity * i.Quality.UnitCost() }

// String renders the instance as "<quantity> <quality> <kind>",
// e.g. "3 normal Herb".
func (i Ingredient) String() string {
	return fmt.Sprintf("%d %s %s", i.Quantity, i.Quality, i.Kind)
}

// PotionKind is the closed set of potion variants.
type PotionKind uint8

const (
	// Healing restores vitality; the cheapest recipe.
	Healing PotionKind = iota
	// Invisibility conceals the drinker; needs one premium herb batch.
	Invisibility
	// Strength empowers the drinker and reports a flat +10 power bonus.
	Strength

	numPotionKinds
)

// potionNames maps each kind to its display name.
var potionNames = [numPotionKinds]string{"Healing", "Invisibility", "Strength"}

// PotionKinds returns all potion kinds in declaration order.
// The returned slice is a fresh copy; callers may mutate it freely.
func PotionKinds() []PotionKind {
	return []PotionKind{Healing, Invisibility, Strength}
}

// String returns the display name of the kind, or "unknown" when out of range.
func (p PotionKind) String() string {
	if !p.Valid() {
		return "unknown"
	}

	return potionNames[p]
}

// Valid reports whether p is a member of the closed variant set.
func (p PotionKind) Valid() bool { return p < numPotionKinds }

// Potion is a brewed potion instance: the kind it was brewed from and the
// extra-power value drawn at brew time. Instances are plain values owned
// by the caller; no process-wide registry tracks them.
type Potion struct {
	// Kind is the potion variant this instance was brewed from.
	Kind PotionKind

	// ExtraPower is the lagged-Poisson draw materialized at brew time.
	ExtraPower int
}

// Power reports the effective power of the potion: the brew-time draw plus
// the kind's flat bonus (+10 for Strength, 0 otherwise).
func (p Potion) Power() int { return p.ExtraPower + p.Kind.PowerBonus() }

// String renders the instance as "<kind> potion (power <n>)".
func (p Potion) String() string {
	return fmt.Sprintf("%s potion (power %d)", p.Kind, p.Power())
}
