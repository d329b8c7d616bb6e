// Package expectimax chooses moves by depth-limited expectimax search over
// the 2048 game tree. Max nodes pick the best slide; chance nodes average
// over every (empty cell, 2 or 4) spawn the game could produce.
package expectimax

import "github.com/vovakirdan/auto2048/internal/board"

// Heuristic weights.
const (
	WeightEmpty = 100
	WeightMax   = 100
)

// Evaluator scores a board at a search leaf. Implementations must be pure.
type Evaluator interface {
	Evaluate(b board.Board) float64
}

// Heuristic rewards empty cells and a large max tile and penalises
// differences between occupied neighbours.
type Heuristic struct {
	EmptyWeight float64
	MaxWeight   float64
}

// DefaultHeuristic returns the standard weights.
func DefaultHeuristic() Heuristic {
	return Heuristic{EmptyWeight: WeightEmpty, MaxWeight: WeightMax}
}

// Evaluate implements Evaluator.
func (h Heuristic) Evaluate(b board.Board) float64 {
	empty := float64(board.EmptyCount(b))
	maxTile := float64(board.MaxTile(b))
	return h.EmptyWeight*empty + h.MaxWeight*maxTile - float64(Smoothness(b))
}

// Smoothness sums |a-b| over every right and lower neighbour pair where
// both cells hold a tile.
func Smoothness(b board.Board) int {
	penalty := 0
	for y := range board.Size {
		for x := range board.Size {
			v := b[y][x]
			if v == 0 {
				continue
			}
			if x < board.Size-1 && b[y][x+1] != 0 {
				penalty += abs(v - b[y][x+1])
			}
			if y < board.Size-1 && b[y+1][x] != 0 {
				penalty += abs(v - b[y+1][x])
			}
		}
	}
	return penalty
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
