// Command potionsim drives the crafting economy from the console: it stocks
// a seeded inventory, picks a random potion, runs the greedy allocation
// pass, and reports the outcome. A second subcommand renders the recipe
// graph as Graphviz DOT.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/potioncraft/alchemy"
	"github.com/katalvlaran/potioncraft/brew"
	"github.com/katalvlaran/potioncraft/craftgraph"
	"github.com/katalvlaran/potioncraft/inventory"
)

func main() {
	app := &cli.App{
		Name:  "potionsim",
		Usage: "Simulate the potion crafting economy",
		Commands: []*cli.Command{
			simulateCmd,
			graphCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

var simulateCmd = &cli.Command{
	Name:    "simulate",
	Usage:   "Run one seeded end-to-end pass: stock, pick, allocate, report",
	Aliases: []string{"s"},
	Flags: []cli.Flag{
		&cli.Int64Flag{
			Name:  "seed",
			Value: 0,
			Usage: "random seed (0 selects the fixed default stream)",
		},
		&cli.IntFlag{
			Name:  "stock",
			Value: 10,
			Usage: "number of random ingredients to stock before allocating",
		},
		&cli.IntFlag{
			Name:  "fund-normal",
			Value: 0,
			Usage: "cost units to fund the normal tier with",
		},
		&cli.IntFlag{
			Name:  "fund-premium",
			Value: 0,
			Usage: "cost units to fund the premium tier with",
		},
		&cli.IntFlag{
			Name:  "fund-legendary",
			Value: 0,
			Usage: "cost units to fund the legendary tier with",
		},
	},
	Action: runSimulate,
}

var graphCmd = &cli.Command{
	Name:    "graph",
	Usage:   "Emit the recipe graph as Graphviz DOT on stdout",
	Aliases: []string{"g"},
	Action: func(_ *cli.Context) error {
		g, err := craftgraph.Build()
		if err != nil {
			return err
		}
		dot, err := craftgraph.ToDOT(g)
		if err != nil {
			return err
		}
		fmt.Print(dot)

		return nil
	},
}

func runSimulate(ctx *cli.Context) error {
	var (
		seed  = ctx.Int64("seed")
		stock = ctx.Int("stock")
		funds = map[alchemy.Quality]int{
			alchemy.Normal:    ctx.Int("fund-normal"),
			alchemy.Premium:   ctx.Int("fund-premium"),
			alchemy.Legendary: ctx.Int("fund-legendary"),
		}
	)
	if stock < 0 {
		return fmt.Errorf("invalid stock %d", stock)
	}

	g, err := craftgraph.Build()
	if err != nil {
		return err
	}
	rng := alchemy.NewRand(seed)

	// Stock the keeper; misses during allocation are diagnostic-only.
	keeper := inventory.NewKeeper(inventory.WithMissHandler(func(ing alchemy.Ingredient) {
		fmt.Printf("warning: %s was not in stock\n", ing)
	}))
	for i := 0; i < stock; i++ {
		fmt.Println("Generated ingredient:", keeper.GenerateRandom(rng))
	}
	printReport(keeper)

	// One random brew, inventory untouched.
	potion, ingredients, err := brew.RandomPotion(g, rng)
	if err != nil {
		return err
	}
	fmt.Println("Generated potion:", potion)
	for _, ing := range ingredients {
		fmt.Println("-", ing)
	}

	// Fund, then run the greedy pass.
	budget := brew.NewBudget()
	for q, amount := range funds {
		budget.Fund(q, amount)
	}
	optimized, err := brew.Allocate(g, keeper, budget, rng)
	if err != nil {
		return err
	}

	fmt.Println("Optimized potion creation:")
	for _, p := range optimized {
		fmt.Println("-", p)
	}
	printReport(keeper)

	return nil
}

func printReport(keeper *inventory.Keeper) {
	fmt.Println("Inventory:")
	for _, line := range keeper.Report() {
		fmt.Printf("- %s: %d\n", line.Name, line.Count)
	}
}
