package craftgraph_test

import (
	"fmt"

	"github.com/katalvlaran/potioncraft/alchemy"
	"github.com/katalvlaran/potioncraft/craftgraph"
)

// ExampleBuild demonstrates building the full recipe graph and reading its
// census.
func ExampleBuild() {
	g, err := craftgraph.Build()
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}
	fmt.Println("potions:", len(g.PotionNodes()))
	fmt.Println("requirements:", len(g.RequirementNodes()))
	fmt.Println("edges:", g.EdgeCount())

	// Output:
	// potions: 3
	// requirements: 8
	// edges: 9
}

// ExampleTopologicalSort shows a dependency-respecting ordering: every
// potion node precedes the requirement nodes of its recipe.
func ExampleTopologicalSort() {
	g, _ := craftgraph.Build(alchemy.Healing)
	order, _ := craftgraph.TopologicalSort(g)

	for _, id := range order {
		fmt.Println(id)
	}

	// Output:
	// potion:Healing
	// need:Root x1 (normal)
	// need:Mushroom x2 (normal)
	// need:Herb x3 (normal)
}

// ExampleGraph_Predecessors finds the potions that share one requirement.
func ExampleGraph_Predecessors() {
	g, _ := craftgraph.Build()
	shared := craftgraph.RequirementNodeID(alchemy.Ingredient{
		Kind: alchemy.Root, Quantity: 1, Quality: alchemy.Normal,
	})
	owners, _ := g.Predecessors(shared)
	for _, id := range owners {
		fmt.Println(id)
	}

	// Output:
	// potion:Healing
	// potion:Invisibility
}
