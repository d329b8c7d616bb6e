package players

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/auto2048/internal/board"
	"github.com/vovakirdan/auto2048/internal/registry"
)

func init() {
	registry.Register("random", func(opts registry.Options) registry.Player {
		return NewRandom(opts.Seed)
	})
}

// Random plays a uniformly random legal move. It is the baseline the
// search players are benchmarked against.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom creates a seeded random player.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (*Random) ID() string    { return "random" }
func (*Random) Title() string { return "Random" }

// NextMove tries the directions in a random order and returns the first
// that changes the board.
func (p *Random) NextMove(b board.Board) (board.Direction, bool) {
	p.mu.Lock()
	order := p.rng.Perm(len(board.Directions))
	p.mu.Unlock()

	for _, i := range order {
		d := board.Directions[i]
		if _, _, moved := board.Simulate(b, d); moved {
			return d, true
		}
	}
	return board.Up, false
}
