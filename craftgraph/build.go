// Package craftgraph - recipe-driven graph construction.
package craftgraph

import (
	"fmt"

	"github.com/katalvlaran/potioncraft/alchemy"
)

// Build constructs the recipe graph over the given potion kinds: one node
// per kind, one node per distinct requirement triple, one edge per recipe
// entry. Passing no kinds builds over the full closed set
// (alchemy.PotionKinds()).
//
// Build is deterministic: identical kind lists produce identical graphs.
// The extra-power draw of a brew never affects topology, so no randomness
// is consumed here. Duplicate kinds in the input are collapsed; their
// edges are only wired once.
//
// Errors are wrapped with "Build: %w"; callers branch with errors.Is
// against alchemy.ErrUnknownPotion.
//
// Complexity: O(K·R) for K kinds with R-entry recipes.
func Build(kinds ...alchemy.PotionKind) (*Graph, error) {
	if len(kinds) == 0 {
		kinds = alchemy.PotionKinds()
	}

	g := NewGraph()
	for _, kind := range kinds {
		if g.HasNode(PotionNodeID(kind)) {
			continue // duplicate input kind; already wired
		}

		potionID, err := g.AddPotion(kind)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}

		for _, ing := range kind.Recipe() {
			reqID, reqErr := g.AddRequirement(ing)
			if reqErr != nil {
				return nil, fmt.Errorf("Build: %w", reqErr)
			}
			if edgeErr := g.AddEdge(potionID, reqID); edgeErr != nil {
				return nil, fmt.Errorf("Build: %w", edgeErr)
			}
		}
	}

	return g, nil
}
