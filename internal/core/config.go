package core

// RuntimeConfig contains configuration passed to the game at reset.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Simulation ticks per second
	Seed      int64 // Spawner seed for reproducible games
	MoveEvery int   // Ticks between autoplay moves
	Autoplay  bool  // Start with the AI driving
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		Seed:      0, // 0 means pick a random seed in the platform layer
		MoveEvery: 6,
		Autoplay:  true,
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int
	Moves    int
	MaxTile  int
	GameOver bool
	Paused   bool
	Autoplay bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Moved bool // the board changed this tick
}
