// Package brew - per-quality spendable budgets.
package brew

import "github.com/katalvlaran/potioncraft/alchemy"

// Budget maps each quality tier to its remaining spendable cost units.
// A fresh Budget starts every tier at zero; it must be funded explicitly
// before any consumption can happen.
type Budget map[alchemy.Quality]int

// NewBudget returns a Budget with every tier at zero.
// Complexity: O(tiers).
func NewBudget() Budget {
	b := make(Budget, 3)
	for _, q := range alchemy.Qualities() {
		b[q] = 0
	}

	return b
}

// Fund adds amount cost units to the tier's line. Non-positive amounts are
// ignored; funding can never push a line negative.
func (b Budget) Fund(q alchemy.Quality, amount int) {
	if amount <= 0 || !q.Valid() {
		return
	}
	b[q] += amount
}

// Remaining returns the tier's unspent cost units.
func (b Budget) Remaining(q alchemy.Quality) int {
	return b[q]
}

// Spend deducts cost from the tier's line and reports success. It refuses
// when remaining < cost or cost ≤ 0, so a line never goes negative.
func (b Budget) Spend(q alchemy.Quality, cost int) bool {
	if cost <= 0 || b[q] < cost {
		return false
	}
	b[q] -= cost

	return true
}
