package board

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in tie-breaking order.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// ParseDirection accepts direction names and their first letters, case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return Up, fmt.Errorf("board: unknown direction %q", s)
}

// slideRow slides and merges a single row to the left.
// Each output slot takes part in at most one merge, so [2,2,2,2]
// becomes [4,4,0,0] and [2,2,2,0] becomes [4,2,0,0].
func slideRow(row [Size]int) (result [Size]int, score int) {
	write := 0

	for _, v := range row {
		if v == 0 {
			continue
		}

		switch {
		case result[write] == 0:
			result[write] = v
		case result[write] == v:
			result[write] *= 2
			score += result[write]
			write++
		default:
			write++
			result[write] = v
		}
	}

	return result, score
}

// reverseRow reverses a row.
func reverseRow(row [Size]int) [Size]int {
	var result [Size]int
	for i := range Size {
		result[i] = row[Size-1-i]
	}
	return result
}

// transpose returns the matrix transpose.
func transpose(b Board) Board {
	var result Board
	for y := range Size {
		for x := range Size {
			result[y][x] = b[x][y]
		}
	}
	return result
}

func slideLeft(b Board) (Board, int) {
	var out Board
	total := 0
	for y := range Size {
		row, score := slideRow(b[y])
		out[y] = row
		total += score
	}
	return out, total
}

func slideRight(b Board) (Board, int) {
	var out Board
	total := 0
	for y := range Size {
		row, score := slideRow(reverseRow(b[y]))
		out[y] = reverseRow(row)
		total += score
	}
	return out, total
}

// Simulate performs a move in the given direction without spawning a tile.
// Returns the new board, the score gained from merges, and whether any
// cell changed. The input board is never modified.
func Simulate(b Board, dir Direction) (Board, int, bool) {
	var out Board
	var score int

	switch dir {
	case Left:
		out, score = slideLeft(b)
	case Right:
		out, score = slideRight(b)
	case Up:
		// Columns become rows, slide, then back
		out, score = slideLeft(transpose(b))
		out = transpose(out)
	case Down:
		out, score = slideRight(transpose(b))
		out = transpose(out)
	default:
		return b, 0, false
	}

	return out, score, out != b
}

// CanMove returns true if at least one direction changes the board.
func CanMove(b Board) bool {
	for _, d := range Directions {
		if _, _, moved := Simulate(b, d); moved {
			return true
		}
	}
	return false
}
