// Package inventory - the Keeper type and its stock bookkeeping.
package inventory

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/potioncraft/alchemy"
)

// Option configures a Keeper at construction time.
type Option func(*Keeper)

// WithMissHandler installs a diagnostic hook invoked when Remove finds no
// structurally-equal instance. The hook observes the miss; it cannot turn
// the no-op into a failure.
func WithMissHandler(fn func(alchemy.Ingredient)) Option {
	return func(k *Keeper) { k.onMiss = fn }
}

// Keeper holds ingredient stock keyed by display name. The zero value is
// not ready for use; construct with NewKeeper.
type Keeper struct {
	stock  map[string][]alchemy.Ingredient // name → ordered instances
	onMiss func(alchemy.Ingredient)        // optional removal-miss hook
}

// NewKeeper creates an empty Keeper.
// Complexity: O(1).
func NewKeeper(opts ...Option) *Keeper {
	k := &Keeper{stock: make(map[string][]alchemy.Ingredient)}
	for _, opt := range opts {
		opt(k)
	}

	return k
}

// Add appends the instance to its per-name collection, creating the
// collection if absent.
// Complexity: O(1) amortized.
func (k *Keeper) Add(ing alchemy.Ingredient) {
	k.stock[ing.Name()] = append(k.stock[ing.Name()], ing)
}

// Remove deletes the first structurally-equal match of ing, preserving the
// order of the remaining instances, and reports whether a match was found.
// A miss is a no-op (idempotent removal); the optional miss handler is
// notified. Draining a name's last instance drops the name entirely, so
// counts never reach below zero.
//
// Complexity: O(n) over the per-name collection.
func (k *Keeper) Remove(ing alchemy.Ingredient) bool {
	name := ing.Name()
	list, ok := k.stock[name]
	if !ok {
		k.missed(ing)

		return false
	}

	for i := range list {
		if list[i] == ing {
			list = append(list[:i], list[i+1:]...)
			if len(list) == 0 {
				delete(k.stock, name)
			} else {
				k.stock[name] = list
			}

			return true
		}
	}
	k.missed(ing)

	return false
}

// missed notifies the optional diagnostic hook about a removal no-op.
func (k *Keeper) missed(ing alchemy.Ingredient) {
	if k.onMiss != nil {
		k.onMiss(ing)
	}
}

// GenerateRandom synthesizes an ingredient of uniformly chosen kind,
// integer quantity in [1,5] and uniformly chosen quality, stocks it,
// and returns it. A nil rng selects the default deterministic stream.
//
// Complexity: O(1).
func (k *Keeper) GenerateRandom(rng *rand.Rand) alchemy.Ingredient {
	ing := alchemy.RandomIngredient(rng)
	k.Add(ing)

	return ing
}

// Count returns the number of instances held under the given name.
// Complexity: O(1).
func (k *Keeper) Count(name string) int {
	return len(k.stock[name])
}

// Len returns the total number of instances across all names.
// Complexity: O(names).
func (k *Keeper) Len() int {
	total := 0
	for _, list := range k.stock {
		total += len(list)
	}

	return total
}

// Stock returns a copy of the ordered instances held under the given name.
// Mutating the returned slice never affects the Keeper.
// Complexity: O(n).
func (k *Keeper) Stock(name string) []alchemy.Ingredient {
	list, ok := k.stock[name]
	if !ok {
		return nil
	}

	out := make([]alchemy.Ingredient, len(list))
	copy(out, list)

	return out
}

// StockLine is one row of a Report: an ingredient name and its held count.
type StockLine struct {
	Name  string
	Count int
}

// Report lists per-name counts for every name with stock, sorted by name
// ascending. Complexity: O(names log names).
func (k *Keeper) Report() []StockLine {
	lines := make([]StockLine, 0, len(k.stock))
	for name, list := range k.stock {
		lines = append(lines, StockLine{Name: name, Count: len(list)})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Name < lines[j].Name })

	return lines
}
