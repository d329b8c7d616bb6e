package game

import "github.com/vovakirdan/auto2048/internal/board"

// Status is the coarse game status.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusGameOver Status = "game_over"
	StatusStuck    Status = "stuck"
	StatusPaused   Status = "paused"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Player   string
	Score    int
	Moves    int
	Board    board.Board
	MaxTile  int
	Autoplay bool
	LastMove string // "" until the player has decided once
	Status   Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	status := StatusPlaying
	switch {
	case g.gameOver:
		status = StatusGameOver
	case g.stuck:
		status = StatusStuck
	case g.paused || g.tooSmall:
		status = StatusPaused
	}

	last := ""
	if g.hasLast {
		last = "none"
		if g.last.Found {
			last = g.last.Dir.String()
		}
	}

	return Snapshot{
		Tick:     g.tick,
		Player:   g.PlayerID(),
		Score:    g.state.Score,
		Moves:    g.state.Moves,
		Board:    g.state.Board,
		MaxTile:  g.state.MaxTile(),
		Autoplay: g.autoplay,
		LastMove: last,
		Status:   status,
	}
}
