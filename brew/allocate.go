// Package brew - the greedy budget-bounded allocation pass.
package brew

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/potioncraft/alchemy"
	"github.com/katalvlaran/potioncraft/craftgraph"
	"github.com/katalvlaran/potioncraft/inventory"
)

// Allocate runs the optimizer pass: it orders the recipe graph
// topologically, brews one potion per potion node in that order, and for
// each potion's requirement nodes greedily consumes matching stocked
// ingredients whose tier budget still covers their cost.
//
// Budget semantics:
//   - A nil budget is replaced by NewBudget() — every tier at zero — so a
//     fresh pass consumes nothing. Consumption requires the caller to fund
//     the budget beforehand; Allocate never funds it.
//   - Each successful consumption removes the instance from the keeper and
//     deducts its cost from the tier's line.
//
// Missing stock for a requirement is skipped, never an error. The returned
// slice holds exactly one potion per potion node, in topological order.
//
// Complexity: O(V + E + C·S) where C is the number of requirement visits
// and S the per-name stock size.
func Allocate(g *craftgraph.Graph, keeper *inventory.Keeper, budget Budget, rng *rand.Rand, opts ...craftgraph.TopoOption) ([]alchemy.Potion, error) {
	// 1. Validate collaborators.
	if g == nil {
		return nil, craftgraph.ErrGraphNil
	}
	if keeper == nil {
		return nil, ErrNilKeeper
	}
	// 2. A nil budget starts unfunded: all tiers at zero.
	if budget == nil {
		budget = NewBudget()
	}
	// 3. Fix the consumption order.
	order, err := craftgraph.TopologicalSort(g, opts...)
	if err != nil {
		return nil, fmt.Errorf("Allocate: %w", err)
	}

	// 4. Walk potion nodes in dependency order.
	optimized := make([]alchemy.Potion, 0, len(order))
	for _, id := range order {
		node, nodeErr := g.Node(id)
		if nodeErr != nil {
			return nil, fmt.Errorf("Allocate: %w", nodeErr)
		}
		if node.Kind != craftgraph.PotionNode {
			continue // requirement nodes are consumed via their owner below
		}

		potion, _, brewErr := alchemy.Brew(node.Potion, rng)
		if brewErr != nil {
			return nil, fmt.Errorf("Allocate: %w", brewErr)
		}
		optimized = append(optimized, potion)

		// 5. Consume affordable stock for each requirement of this potion.
		requirements, succErr := g.Successors(id)
		if succErr != nil {
			return nil, fmt.Errorf("Allocate: %w", succErr)
		}
		for _, reqID := range requirements {
			reqNode, reqErr := g.Node(reqID)
			if reqErr != nil {
				return nil, fmt.Errorf("Allocate: %w", reqErr)
			}
			consume(keeper, budget, reqNode.Requirement)
		}
	}

	return optimized, nil
}

// consume walks the keeper's stock matching the requirement's name and
// removes every instance whose tier budget still covers its cost,
// deducting on each success. Absent stock is a silent skip.
func consume(keeper *inventory.Keeper, budget Budget, req alchemy.Ingredient) {
	// Snapshot: removal during iteration must not skip instances.
	for _, ing := range keeper.Stock(req.Name()) {
		if budget.Remaining(ing.Quality) < ing.Cost() {
			continue // unaffordable at this point of the pass
		}
		if keeper.Remove(ing) {
			budget.Spend(ing.Quality, ing.Cost())
		}
	}
}
