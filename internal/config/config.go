// Package config provides YAML-based configuration loading for the
// search, autoplay, benchmark, storage and logging settings.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// MaxDepth bounds the search depth; the tree grows roughly 30x per ply.
const MaxDepth = 6

// Config is the complete application configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Play    PlayConfig    `yaml:"play"`
	Bench   BenchConfig   `yaml:"bench"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`

	// Source is the file the configuration was read from, or "embedded"
	// or "builtin".
	Source string `yaml:"-"`
}

// SearchConfig controls the expectimax search.
type SearchConfig struct {
	Depth   int  `yaml:"depth"`
	Workers int  `yaml:"workers"`
	Cache   bool `yaml:"cache"`
}

// PlayConfig controls the interactive game.
type PlayConfig struct {
	Player    string `yaml:"player"`
	TickRate  int    `yaml:"tick_rate"`
	MoveEvery int    `yaml:"move_every"`
	Autoplay  bool   `yaml:"autoplay"`
}

// BenchConfig controls headless benchmarks.
type BenchConfig struct {
	Games    int `yaml:"games"`
	Parallel int `yaml:"parallel"`
	MaxMoves int `yaml:"max_moves"`
}

// StorageConfig locates the run ledger.
type StorageConfig struct {
	DB string `yaml:"db"`
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Search.Depth >= 0 && c.Search.Depth <= MaxDepth, "search.depth must be in [0, %d], got %d", MaxDepth, c.Search.Depth)
	check(c.Search.Workers >= 1, "search.workers must be >= 1, got %d", c.Search.Workers)
	check(c.Play.TickRate >= 1, "play.tick_rate must be >= 1, got %d", c.Play.TickRate)
	check(c.Play.MoveEvery >= 1, "play.move_every must be >= 1, got %d", c.Play.MoveEvery)
	check(c.Bench.Games >= 1, "bench.games must be >= 1, got %d", c.Bench.Games)
	check(c.Bench.Parallel >= 1, "bench.parallel must be >= 1, got %d", c.Bench.Parallel)
	check(c.Bench.MaxMoves >= 0, "bench.max_moves must be >= 0, got %d", c.Bench.MaxMoves)
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// LogLevel returns the parsed log level, or info if it does not parse.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
