package expectimax

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/auto2048/internal/board"
)

// DefaultDepth is the number of plies searched below each candidate move.
const DefaultDepth = 3

// Config controls a Selector.
type Config struct {
	Depth     int       // plies below the candidate move, starting at a chance node
	Workers   int       // concurrent top-level directions; <1 means 1
	Cache     bool      // memoise search values within one decision
	Evaluator Evaluator // nil selects DefaultHeuristic
}

// DefaultConfig returns depth 3, one worker per direction and the memo on.
func DefaultConfig() Config {
	return Config{Depth: DefaultDepth, Workers: len(board.Directions), Cache: true}
}

// Analysis is the outcome of one decision.
type Analysis struct {
	Values    [len(board.Directions)]float64 // indexed by Direction
	Legal     [len(board.Directions)]bool
	Best      board.Direction
	Found     bool // false when no direction changes the board
	Nodes     int64
	CacheHits int64
	Elapsed   time.Duration
}

// Selector picks the move with the greatest expectimax value. Ties keep
// the earliest direction in Up, Down, Left, Right order.
type Selector struct {
	cfg    Config
	logger *log.Logger
}

// NewSelector creates a selector. A nil logger discards output.
func NewSelector(cfg Config, logger *log.Logger) *Selector {
	if cfg.Depth < 0 {
		cfg.Depth = 0
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Evaluator == nil {
		cfg.Evaluator = DefaultHeuristic()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Selector{cfg: cfg, logger: logger}
}

// Depth returns the configured search depth.
func (s *Selector) Depth() int { return s.cfg.Depth }

// Analyze searches every legal direction and reports their values. The
// context is checked before each direction is searched; a cancelled
// decision returns ctx.Err().
func (s *Selector) Analyze(ctx context.Context, b board.Board) (Analysis, error) {
	start := time.Now()

	var cache *Cache
	if s.cfg.Cache {
		cache = NewCache()
	}
	searcher := NewSearcher(s.cfg.Evaluator, cache)

	var a Analysis
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)

	for _, d := range board.Directions {
		next, _, moved := board.Simulate(b, d)
		if !moved {
			continue
		}
		a.Legal[d] = true
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Each goroutine owns its slot
			a.Values[d] = searcher.Search(next, s.cfg.Depth, Chance)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Analysis{}, err
	}
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}

	for _, d := range board.Directions {
		if !a.Legal[d] {
			continue
		}
		if !a.Found || a.Values[d] > a.Values[a.Best] {
			a.Best = d
			a.Found = true
		}
	}

	a.Nodes = searcher.Nodes()
	a.CacheHits = searcher.CacheHits()
	a.Elapsed = time.Since(start)

	if a.Found {
		s.logger.Debug("decision",
			"dir", a.Best,
			"value", a.Values[a.Best],
			"nodes", a.Nodes,
			"cache_hits", a.CacheHits,
			"elapsed", a.Elapsed)
	} else {
		s.logger.Debug("no legal move", "nodes", a.Nodes)
	}
	return a, nil
}

// BestMove returns the chosen direction, or false when the board is stuck.
func (s *Selector) BestMove(b board.Board) (board.Direction, bool) {
	a, err := s.Analyze(context.Background(), b)
	if err != nil {
		return board.Up, false
	}
	return a.Best, a.Found
}
