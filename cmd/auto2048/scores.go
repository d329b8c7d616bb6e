package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/auto2048/internal/platform/tui"
	"github.com/vovakirdan/auto2048/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [player]",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs, for one player or for everyone.

Examples:
  auto2048 scores
  auto2048 scores expectimax --limit 20
  auto2048 scores -i
  auto2048 scores random --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every run of the player")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	player := ""
	if len(args) == 1 {
		player = args[0]
	}

	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		fail("opening runs database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if player == "" {
			fail("--clear needs a player")
		}
		if err := store.ClearRuns(player); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared runs of %s\n", player)
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunLeaderboard(store, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	runs, err := store.TopRuns(player, flagLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	title := "all players"
	if player != "" {
		title = player
	}
	fmt.Printf("Top Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'auto2048 play' or 'auto2048 bench --save' to record some.")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %-6s  %-10s  %s\n", "Rank", "Player", "Score", "Tile", "Moves", "Reason", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %-6s  %-10s  %s\n", "----", "------", "-----", "----", "-----", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-10s  %-8d  %-5d  %-6d  %-10s  %s\n",
			i+1, r.Player, r.Score, r.MaxTile, r.Moves, r.Reason, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if player != "" {
		if st, err := store.PlayerStats(player); err == nil && st.Runs > 0 {
			fmt.Println()
			fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Best tile: %d\n",
				st.Runs, st.BestScore, st.AvgScore, st.BestTile)
		}
	}
}
