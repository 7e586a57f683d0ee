// Package brew - uniform random potion picking.
package brew

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/potioncraft/alchemy"
	"github.com/katalvlaran/potioncraft/craftgraph"
)

// Sentinel errors for brew operations.
var (
	// ErrNilKeeper indicates a nil inventory keeper passed to Allocate.
	ErrNilKeeper = errors.New("brew: keeper is nil")

	// ErrNoPotionNodes indicates the graph holds no potion node to pick from.
	ErrNoPotionNodes = errors.New("brew: graph has no potion nodes")
)

// RandomPotion selects one potion node uniformly at random, brews it
// (materializing the extra-power draw), and returns the potion together
// with the concrete ingredient instances its recipe specifies.
//
// The pick is uniform over the sorted potion-node list, so a fixed seed
// reproduces the same choice. No inventory is touched. A nil rng selects
// the default deterministic stream.
//
// Complexity: O(V log V) for the node enumeration.
func RandomPotion(g *craftgraph.Graph, rng *rand.Rand) (alchemy.Potion, []alchemy.Ingredient, error) {
	if g == nil {
		return alchemy.Potion{}, nil, craftgraph.ErrGraphNil
	}

	potions := g.PotionNodes()
	if len(potions) == 0 {
		return alchemy.Potion{}, nil, ErrNoPotionNodes
	}

	id := potions[alchemy.PickIndex(rng, len(potions))]
	node, err := g.Node(id)
	if err != nil {
		return alchemy.Potion{}, nil, fmt.Errorf("RandomPotion: %w", err)
	}

	potion, ingredients, err := alchemy.Brew(node.Potion, rng)
	if err != nil {
		return alchemy.Potion{}, nil, fmt.Errorf("RandomPotion: %w", err)
	}

	return potion, ingredients, nil
}
