// Package runner plays headless games: one at a time with Play, or many
// concurrently with Bench, and summarises the outcome.
package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"lukechampine.com/frand"

	"github.com/vovakirdan/auto2048/internal/board"
	"github.com/vovakirdan/auto2048/internal/game"
	"github.com/vovakirdan/auto2048/internal/registry"
)

// Reason says why a game ended.
type Reason string

const (
	ReasonGameOver Reason = "game_over" // board full, no pair left
	ReasonNoMove   Reason = "no_move"   // the player found no legal move
	ReasonMaxMoves Reason = "max_moves"
)

// Result is the outcome of one finished game.
type Result struct {
	Player   string
	Seed     int64
	Score    int
	MaxTile  int
	Moves    int
	Board    board.Board
	Duration time.Duration
	Reason   Reason
}

// Options control a single game.
type Options struct {
	MaxMoves int // 0 means play until the game ends
	Logger   *log.Logger
}

func discard(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard)
	}
	return l
}

// RandomSeed returns a fresh positive seed.
func RandomSeed() int64 {
	return int64(frand.Uint64n(1<<62)) + 1
}

// Play runs one game with the given player and spawner seed. The context
// is checked between moves.
func Play(ctx context.Context, p registry.Player, seed int64, opts Options) (Result, error) {
	logger := discard(opts.Logger)
	start := time.Now()

	spawner := board.NewSpawner(seed)
	st := game.NewState(spawner)
	reason := ReasonGameOver

	for {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("runner: seed %d after %d moves: %w", seed, st.Moves, err)
		}
		if st.GameOver() {
			reason = ReasonGameOver
			break
		}
		if opts.MaxMoves > 0 && st.Moves >= opts.MaxMoves {
			reason = ReasonMaxMoves
			break
		}

		dir, ok := p.NextMove(st.Board)
		if !ok {
			reason = ReasonNoMove
			break
		}
		next, moved := st.Apply(dir, spawner)
		if !moved {
			// Players only return legal moves; treat anything else as giving up
			logger.Warn("player chose a no-op move", "player", p.ID(), "dir", dir)
			reason = ReasonNoMove
			break
		}
		st = next

		logger.Debug("move",
			"player", p.ID(),
			"dir", dir,
			"score", st.Score,
			"moves", st.Moves,
			"empty", board.EmptyCount(st.Board),
			"max", st.MaxTile())
	}

	res := Result{
		Player:   p.ID(),
		Seed:     seed,
		Score:    st.Score,
		MaxTile:  st.MaxTile(),
		Moves:    st.Moves,
		Board:    st.Board,
		Duration: time.Since(start),
		Reason:   reason,
	}

	logger.Info("game finished",
		"player", res.Player,
		"seed", res.Seed,
		"score", res.Score,
		"max", res.MaxTile,
		"moves", res.Moves,
		"reason", res.Reason,
		"elapsed", res.Duration.Round(time.Millisecond))

	return res, nil
}
