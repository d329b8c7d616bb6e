// Package players implements the built-in move choosers and registers
// them with the player registry.
package players

import (
	"context"

	"github.com/vovakirdan/auto2048/internal/board"
	"github.com/vovakirdan/auto2048/internal/expectimax"
	"github.com/vovakirdan/auto2048/internal/registry"
)

func init() {
	registry.Register("expectimax", func(opts registry.Options) registry.Player {
		return NewSearch("expectimax", "Expectimax", opts)
	})
	registry.Register("greedy", func(opts registry.Options) registry.Player {
		opts.Depth = 0
		return NewSearch("greedy", "Greedy (depth 0)", opts)
	})
}

// Search plays the move with the best expectimax value.
type Search struct {
	id, title string
	selector  *expectimax.Selector
}

// NewSearch creates a search player from registry options.
func NewSearch(id, title string, opts registry.Options) *Search {
	cfg := expectimax.Config{
		Depth:   opts.Depth,
		Workers: opts.Workers,
		Cache:   opts.Cache,
	}
	return &Search{
		id:       id,
		title:    title,
		selector: expectimax.NewSelector(cfg, opts.Logger),
	}
}

func (p *Search) ID() string    { return p.id }
func (p *Search) Title() string { return p.title }

// NextMove implements registry.Player.
func (p *Search) NextMove(b board.Board) (board.Direction, bool) {
	return p.selector.BestMove(b)
}

// Analyze exposes the full decision, including per-direction values.
func (p *Search) Analyze(ctx context.Context, b board.Board) (expectimax.Analysis, error) {
	return p.selector.Analyze(ctx, b)
}

// Analyzer is implemented by players that can explain their decisions.
type Analyzer interface {
	Analyze(ctx context.Context, b board.Board) (expectimax.Analysis, error)
}
