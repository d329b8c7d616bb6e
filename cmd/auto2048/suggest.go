package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/auto2048/internal/board"
	"github.com/vovakirdan/auto2048/internal/expectimax"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <cells...>",
	Short: "Print the search values for one position",
	Long: `Analyze a single board and print the expectimax value of every
direction. The board is 16 cells in row-major order, 0 for empty, given
either as separate arguments or as one quoted string.

Examples:
  auto2048 suggest 2 2 0 0 0 0 0 0 0 0 0 0 0 0 0 4
  auto2048 suggest "128 64 32 16  8 4 2 0  0 0 0 0  0 0 0 2" --depth 4`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSuggest,
}

func init() {
	addSearchFlags(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if err := applySearchFlags(cmd, &cfg); err != nil {
		fail("%v", err)
	}

	b, err := board.Parse(strings.Join(args, " "))
	if err != nil {
		fail("%v", err)
	}

	sel := expectimax.NewSelector(expectimax.Config{
		Depth:   cfg.Search.Depth,
		Workers: cfg.Search.Workers,
		Cache:   cfg.Search.Cache,
	}, nil)
	a, err := sel.Analyze(context.Background(), b)
	if err != nil {
		fail("%v", err)
	}

	fmt.Println(b)
	fmt.Println()
	fmt.Printf("  %-5s  %s\n", "Move", "Value")
	fmt.Printf("  %-5s  %s\n", "----", "-----")
	for _, d := range board.Directions {
		value := "illegal"
		if a.Legal[d] {
			value = fmt.Sprintf("%.2f", a.Values[d])
		}
		mark := " "
		if a.Found && d == a.Best {
			mark = "*"
		}
		fmt.Printf("%s %-5s  %s\n", mark, d, value)
	}
	fmt.Println()

	if !a.Found {
		fmt.Println("No move changes the board: game over.")
		return
	}
	fmt.Printf("Best: %s (depth %d, %d nodes, %d cache hits, %s)\n",
		a.Best, sel.Depth(), a.Nodes, a.CacheHits, a.Elapsed)
}
