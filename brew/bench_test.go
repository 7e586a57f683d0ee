package brew_test

import (
	"testing"

	"github.com/katalvlaran/potioncraft/alchemy"
	"github.com/katalvlaran/potioncraft/brew"
	"github.com/katalvlaran/potioncraft/craftgraph"
	"github.com/katalvlaran/potioncraft/inventory"
)

// BenchmarkAllocate measures a funded pass over a 100-instance stock.
func BenchmarkAllocate(b *testing.B) {
	g, err := craftgraph.Build()
	if err != nil {
		b.Fatal(err)
	}
	rng := alchemy.NewRand(1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		k := inventory.NewKeeper()
		for j := 0; j < 100; j++ {
			k.GenerateRandom(rng)
		}
		budget := brew.NewBudget()
		for _, q := range alchemy.Qualities() {
			budget.Fund(q, 50)
		}
		b.StartTimer()

		if _, allocErr := brew.Allocate(g, k, budget, rng); allocErr != nil {
			b.Fatal(allocErr)
		}
	}
}
