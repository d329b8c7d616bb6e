package expectimax

import (
	"sync/atomic"

	"github.com/vovakirdan/auto2048/internal/board"
)

// NodeKind distinguishes player plies from spawn plies.
type NodeKind int

const (
	Max NodeKind = iota
	Chance
)

func (k NodeKind) String() string {
	if k == Max {
		return "max"
	}
	return "chance"
}

// Spawn weights used by chance nodes. They mirror the live spawner.
const (
	chance2 = board.Spawn2Probability
	chance4 = board.Spawn4Probability
)

// Searcher evaluates positions by recursive expectimax. It consumes no
// randomness; a Searcher may be shared by concurrent callers.
type Searcher struct {
	eval  Evaluator
	cache *Cache // nil disables memoisation
	nodes atomic.Int64
}

// NewSearcher creates a searcher. A nil evaluator selects DefaultHeuristic;
// a nil cache disables memoisation.
func NewSearcher(eval Evaluator, cache *Cache) *Searcher {
	if eval == nil {
		eval = DefaultHeuristic()
	}
	return &Searcher{eval: eval, cache: cache}
}

// Nodes returns the number of Search calls made so far.
func (s *Searcher) Nodes() int64 { return s.nodes.Load() }

// CacheHits returns the number of memo hits, or 0 without a cache.
func (s *Searcher) CacheHits() int64 {
	if s.cache == nil {
		return 0
	}
	return int64(s.cache.Hits())
}

// Search returns the expectimax value of b searched depth plies deep,
// starting at a node of the given kind.
func (s *Searcher) Search(b board.Board, depth int, kind NodeKind) float64 {
	s.nodes.Add(1)

	if depth <= 0 {
		return s.eval.Evaluate(b)
	}

	if s.cache != nil {
		if v, ok := s.cache.Get(b, depth, kind); ok {
			return v
		}
	}

	var v float64
	if kind == Max {
		v = s.maxNode(b, depth)
	} else {
		v = s.chanceNode(b, depth)
	}

	if s.cache != nil {
		s.cache.Put(b, depth, kind, v)
	}
	return v
}

func (s *Searcher) maxNode(b board.Board, depth int) float64 {
	best := 0.0
	found := false
	for _, d := range board.Directions {
		next, _, moved := board.Simulate(b, d)
		if !moved {
			continue
		}
		v := s.Search(next, depth-1, Chance)
		if !found || v > best {
			best = v
			found = true
		}
	}
	if !found {
		// No direction changes the board
		return s.eval.Evaluate(b)
	}
	return best
}

func (s *Searcher) chanceNode(b board.Board, depth int) float64 {
	cells := board.EmptyCells(b)
	if len(cells) == 0 {
		return 0
	}

	total := 0.0
	for _, c := range cells {
		with2 := b
		with2[c.Y][c.X] = 2
		with4 := b
		with4[c.Y][c.X] = 4
		total += chance2*s.Search(with2, depth-1, Max) + chance4*s.Search(with4, depth-1, Max)
	}
	return total / float64(len(cells))
}
