package alchemy_test

import (
	"fmt"

	"github.com/katalvlaran/potioncraft/alchemy"
)

// ExampleIngredient_Cost demonstrates the multiplicative cost model.
func ExampleIngredient_Cost() {
	ing := alchemy.Ingredient{Kind: alchemy.Herb, Quantity: 2, Quality: alchemy.Premium}
	fmt.Println(ing, "costs", ing.Cost())

	// Output:
	// 2 premium Herb costs 6
}

// ExamplePotionKind_Recipe lists the fixed requirements of a potion kind.
func ExamplePotionKind_Recipe() {
	for _, ing := range alchemy.Strength.Recipe() {
		fmt.Println("-", ing)
	}

	// Output:
	// - 2 legendary Herb
	// - 3 premium Mushroom
	// - 2 premium Root
}

// ExampleBrew shows a deterministic, seeded brew.
func ExampleBrew() {
	potion, ingredients, err := alchemy.Brew(alchemy.Healing, alchemy.NewRand(42))
	if err != nil {
		fmt.Println("brew failed:", err)
		return
	}
	fmt.Println("brewed a", potion.Kind, "potion with", len(ingredients), "ingredients")
	fmt.Println("power is at least the lag:", potion.Power() >= 1)

	// Output:
	// brewed a Healing potion with 3 ingredients
	// power is at least the lag: true
}
