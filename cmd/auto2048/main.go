// auto2048 plays 2048 in the terminal, either by hand or driven by an
// expectimax search.
//
// Usage:
//
//	auto2048 list                - List available players
//	auto2048 play [player]       - Watch a player, or play with --manual
//	auto2048 bench [player]      - Play headless games and summarize them
//	auto2048 suggest <16 cells>  - Analyze one position
//	auto2048 scores [player]     - Show recorded runs
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.auto2048/config.yaml)
//	--seed <value>      - Spawner seed for reproducible games
//	--db <path>         - Run database (default: ~/.auto2048/runs.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/auto2048/internal/config"
	"github.com/vovakirdan/auto2048/internal/registry"

	// Import players to register them
	_ "github.com/vovakirdan/auto2048/internal/players"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "auto2048",
	Short: "2048 in your terminal, with an expectimax autoplayer",
	Long: `auto2048 plays 2048 in the terminal. Watch the expectimax search play,
play yourself with hints, or benchmark players headless.

Available commands:
  list     - Show all available players
  play     - Watch a player or play manually
  bench    - Play many games without a UI and summarize
  suggest  - Print the search values for one position
  scores   - View recorded runs

Examples:
  auto2048 play
  auto2048 play --manual
  auto2048 bench greedy --games 50 --parallel 4
  auto2048 suggest "2 2 0 0 0 0 0 0 0 0 0 0 0 0 0 4"
  auto2048 scores expectimax`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Spawner seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to runs database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig reads the config file and applies the global flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DB = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// newLogger builds the application logger writing to w.
func newLogger(w io.Writer, cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "auto2048",
	})
	logger.SetLevel(cfg.LogLevel())
	return logger
}

// playerOptions returns registry options from the search config.
func playerOptions(cfg config.Config, seed int64, logger *log.Logger) registry.Options {
	return registry.Options{
		Depth:   cfg.Search.Depth,
		Workers: cfg.Search.Workers,
		Cache:   cfg.Search.Cache,
		Seed:    seed,
		Logger:  logger,
	}
}

// applySearchFlags overrides search settings with flags the user set.
func applySearchFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("depth") {
		cfg.Search.Depth = flagDepth
	}
	if cmd.Flags().Changed("workers") {
		cfg.Search.Workers = flagWorkers
	}
	if cmd.Flags().Changed("no-cache") {
		cfg.Search.Cache = !flagNoCache
	}
	return cfg.Validate()
}

// Search flags shared by play, bench and suggest
var (
	flagDepth   int
	flagWorkers int
	flagNoCache bool
)

func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagDepth, "depth", 3, "Search depth in plies")
	cmd.Flags().IntVar(&flagWorkers, "workers", 4, "Directions searched concurrently")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Disable the search memo")
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
