// Package board implements the 4x4 sliding-tile board: move simulation,
// tile spawning and terminal detection. Board is a value type, so every
// operation works on its own copy and never touches the caller's grid.
package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// Board represents a 4x4 game board. A zero cell is empty.
type Board [Size][Size]int

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// ErrInvalidBoard is returned by Parse for malformed input.
var ErrInvalidBoard = errors.New("board: invalid board")

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(b Board) []Cell {
	var cells []Cell
	for y := range Size {
		for x := range Size {
			if b[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// EmptyCount returns the number of empty cells.
func EmptyCount(b Board) int {
	n := 0
	for y := range Size {
		for x := range Size {
			if b[y][x] == 0 {
				n++
			}
		}
	}
	return n
}

// TileCount returns the number of occupied cells.
func TileCount(b Board) int {
	return Size*Size - EmptyCount(b)
}

// HasPossibleMerge returns true if any horizontally or vertically adjacent
// tiles hold the same value.
func HasPossibleMerge(b Board) bool {
	for y := range Size {
		for x := range Size {
			val := b[y][x]
			// Check right neighbor
			if x < Size-1 && b[y][x+1] == val {
				return true
			}
			// Check bottom neighbor
			if y < Size-1 && b[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// IsGameOver returns true if the board is full and no adjacent pair can merge.
func IsGameOver(b Board) bool {
	if EmptyCount(b) > 0 {
		return false
	}
	return !HasPossibleMerge(b)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(b Board) int {
	maxVal := 0
	for y := range Size {
		for x := range Size {
			if b[y][x] > maxVal {
				maxVal = b[y][x]
			}
		}
	}
	return maxVal
}

// IsPowerOfTwo reports whether v is a valid tile value (2, 4, 8, ...).
func IsPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// Parse reads a board from 16 integers in row-major order. Values may be
// separated by whitespace, commas or slashes.
func Parse(s string) (Board, error) {
	var b Board
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '/' || r == '\t' || r == '\n'
	})
	if len(fields) != Size*Size {
		return b, fmt.Errorf("%w: need %d cells, got %d", ErrInvalidBoard, Size*Size, len(fields))
	}
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return b, fmt.Errorf("%w: cell %d: %w", ErrInvalidBoard, i, err)
		}
		if v != 0 && !IsPowerOfTwo(v) {
			return b, fmt.Errorf("%w: cell %d: %d is not a power of two", ErrInvalidBoard, i, v)
		}
		b[i/Size][i%Size] = v
	}
	return b, nil
}

// String renders the board as a fixed-width text grid.
func (b Board) String() string {
	var sb strings.Builder
	line := "+" + strings.Repeat("------+", Size) + "\n"
	sb.WriteString(line)
	for y := range Size {
		sb.WriteString("|")
		for x := range Size {
			if b[y][x] == 0 {
				sb.WriteString("      |")
				continue
			}
			fmt.Fprintf(&sb, "%6d|", b[y][x])
		}
		sb.WriteString("\n")
		sb.WriteString(line)
	}
	return sb.String()
}
