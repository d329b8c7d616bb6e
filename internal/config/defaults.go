package config

import (
	_ "embed"
)

//go:embed defaults/auto2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{
			Depth:   3,
			Workers: 4,
			Cache:   true,
		},
		Play: PlayConfig{
			Player:    "expectimax",
			TickRate:  60,
			MoveEvery: 6,
			Autoplay:  true,
		},
		Bench: BenchConfig{
			Games:    10,
			Parallel: 2,
			MaxMoves: 0,
		},
		Storage: StorageConfig{
			DB: "~/.auto2048/runs.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Source: "builtin",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
