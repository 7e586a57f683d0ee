package brew_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/potioncraft/alchemy"
	"github.com/katalvlaran/potioncraft/brew"
)

// TestBudget_StartsUnfunded verifies every tier opens at zero.
func TestBudget_StartsUnfunded(t *testing.T) {
	b := brew.NewBudget()
	for _, q := range alchemy.Qualities() {
		assert.Equal(t, 0, b.Remaining(q), "tier %s", q)
	}
}

// TestBudget_Fund verifies funding accumulates and rejects junk.
func TestBudget_Fund(t *testing.T) {
	b := brew.NewBudget()

	b.Fund(alchemy.Premium, 3)
	b.Fund(alchemy.Premium, 2)
	assert.Equal(t, 5, b.Remaining(alchemy.Premium))

	b.Fund(alchemy.Premium, 0)
	b.Fund(alchemy.Premium, -7)
	assert.Equal(t, 5, b.Remaining(alchemy.Premium))

	b.Fund(alchemy.Quality(42), 10) // outside the variant set: ignored
	assert.Equal(t, 0, b.Remaining(alchemy.Normal))
}

// TestBudget_Spend verifies afford-checked deduction: a line never goes
// negative.
func TestBudget_Spend(t *testing.T) {
	b := brew.NewBudget()
	b.Fund(alchemy.Normal, 5)

	assert.True(t, b.Spend(alchemy.Normal, 3))
	assert.Equal(t, 2, b.Remaining(alchemy.Normal))

	assert.False(t, b.Spend(alchemy.Normal, 3), "cost above remaining")
	assert.Equal(t, 2, b.Remaining(alchemy.Normal))

	assert.False(t, b.Spend(alchemy.Normal, 0))
	assert.False(t, b.Spend(alchemy.Normal, -1))

	assert.True(t, b.Spend(alchemy.Normal, 2))
	assert.Equal(t, 0, b.Remaining(alchemy.Normal))
	assert.False(t, b.Spend(alchemy.Normal, 1), "empty line refuses all costs")
}
