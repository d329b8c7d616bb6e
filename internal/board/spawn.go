package board

import "math/rand"

// Spawn probabilities for a new tile.
const (
	Spawn2Probability = 0.9
	Spawn4Probability = 0.1
)

// Rand is the randomness the spawner consumes. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Spawner places new tiles on the live board. It is the only source of
// randomness in the game; search never consumes it.
type Spawner struct {
	rng Rand
}

// NewSpawner creates a spawner seeded for reproducible games.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// NewSpawnerWithRand creates a spawner using the given randomness source.
func NewSpawnerWithRand(rng Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn returns a copy of b with a new tile (2 or 4) in a random empty cell.
// A full board is returned unchanged.
func (s *Spawner) Spawn(b Board) Board {
	emptyCells := EmptyCells(b)
	if len(emptyCells) == 0 {
		return b
	}

	// Pick random empty cell
	cell := emptyCells[s.rng.Intn(len(emptyCells))]

	value := 2
	if s.rng.Float64() < Spawn4Probability {
		value = 4
	}

	b[cell.Y][cell.X] = value
	return b
}

// Initialize returns an empty board with two spawned tiles.
func Initialize(s *Spawner) Board {
	var b Board
	b = s.Spawn(b)
	return s.Spawn(b)
}

// ApplyMove simulates the move and spawns a tile if the board changed.
// The score grows by the merge total of the move.
func ApplyMove(b Board, dir Direction, score int, s *Spawner) (Board, int, bool) {
	next, gained, moved := Simulate(b, dir)
	if !moved {
		return b, score, false
	}
	return s.Spawn(next), score + gained, true
}
