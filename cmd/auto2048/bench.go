package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/auto2048/internal/registry"
	"github.com/vovakirdan/auto2048/internal/runner"
	"github.com/vovakirdan/auto2048/internal/storage"
)

var (
	flagGames    int
	flagParallel int
	flagMaxMoves int
	flagSave     bool
)

var benchCmd = &cobra.Command{
	Use:   "bench [player]",
	Short: "Play headless games and summarize the scores",
	Long: `Play a number of games without a UI and print score statistics.
Game i uses seed --seed + i, so a bench with a fixed seed is reproducible.

Examples:
  auto2048 bench
  auto2048 bench random --games 200 --parallel 8
  auto2048 bench expectimax --depth 2 --seed 1 --save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagGames, "games", 0, "Number of games (default from config)")
	benchCmd.Flags().IntVar(&flagParallel, "parallel", 0, "Games played at once (default from config)")
	benchCmd.Flags().IntVar(&flagMaxMoves, "max-moves", -1, "Stop each game after this many moves (0 = no limit)")
	benchCmd.Flags().BoolVar(&flagSave, "save", false, "Record every game in the runs database")
	addSearchFlags(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if flagGames > 0 {
		cfg.Bench.Games = flagGames
	}
	if flagParallel > 0 {
		cfg.Bench.Parallel = flagParallel
	}
	if flagMaxMoves >= 0 {
		cfg.Bench.MaxMoves = flagMaxMoves
	}
	if err := applySearchFlags(cmd, &cfg); err != nil {
		fail("%v", err)
	}

	playerID := cfg.Play.Player
	if len(args) == 1 {
		playerID = args[0]
	}
	factory, err := registry.Lookup(playerID)
	if err != nil {
		fail("%v\nRun 'auto2048 list' to see available players.", err)
	}

	logger := newLogger(os.Stderr, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := runner.Bench(ctx, factory, playerOptions(cfg, 0, logger), runner.BenchOptions{
		Games:    cfg.Bench.Games,
		Parallel: cfg.Bench.Parallel,
		BaseSeed: flagSeed,
		MaxMoves: cfg.Bench.MaxMoves,
		Logger:   logger,
	})
	if err != nil {
		fail("bench: %v", err)
	}

	printSummary(playerID, runner.Summarize(results), time.Since(start))

	if flagSave {
		saveResults(cfg.Storage.DB, results)
	}
}

func printSummary(playerID string, s runner.Summary, elapsed time.Duration) {
	fmt.Printf("Bench - %s (%d games, %s)\n", playerID, s.Games, elapsed.Round(time.Millisecond))
	fmt.Println()
	fmt.Printf("  Score   %.0f ± %.0f  (%d%% CI %.0f - %.0f)\n",
		s.MeanScore, s.Stdev, runner.Confidence, s.CILow, s.CIHigh)
	fmt.Printf("  Moves   %.0f per game, %d total\n", s.MeanMoves, s.TotalMoves)
	fmt.Printf("  Best    %d (seed %d, tile %d)\n", s.Best.Score, s.Best.Seed, s.Best.MaxTile)
	fmt.Println()

	fmt.Printf("  %-6s  %-5s  %s\n", "Tile", "Games", "Reached")
	fmt.Printf("  %-6s  %-5s  %s\n", "----", "-----", "-------")
	for _, tc := range s.Tiles() {
		fmt.Printf("  %-6d  %-5d  %5.1f%%\n", tc.Tile, tc.Games, 100*s.Reached(tc.Tile))
	}
}

func saveResults(dbPath string, results []runner.Result) {
	store, err := storage.Open(dbPath)
	if err != nil {
		fail("opening runs database: %v", err)
	}
	defer store.Close()

	for _, r := range results {
		if _, err := store.SaveRun(runRecord(r)); err != nil {
			fail("saving run: %v", err)
		}
	}
	fmt.Printf("\nSaved %d runs to %s\n", len(results), dbPath)
}

func runRecord(r runner.Result) storage.RunRecord {
	return storage.RunRecord{
		Player:   r.Player,
		Seed:     r.Seed,
		Score:    r.Score,
		MaxTile:  r.MaxTile,
		Moves:    r.Moves,
		Reason:   string(r.Reason),
		Duration: r.Duration,
		Board:    r.Board,
	}
}
