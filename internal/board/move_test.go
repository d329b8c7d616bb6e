package board

import (
	"math/rand"
	"testing"
)

func TestSlideRowMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		score    int
	}{
		{
			name:     "simple merge",
			input:    [4]int{2, 2, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    [4]int{2, 2, 2, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "double merge",
			input:    [4]int{2, 2, 2, 2},
			expected: [4]int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "no merge possible",
			input:    [4]int{2, 4, 8, 16},
			expected: [4]int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide with gap",
			input:    [4]int{0, 0, 2, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "slide with multiple gaps",
			input:    [4]int{2, 0, 0, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merged tile does not merge again",
			input:    [4]int{4, 2, 2, 0},
			expected: [4]int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "merge after distinct tile",
			input:    [4]int{2, 4, 4, 8},
			expected: [4]int{2, 8, 8, 0},
			score:    8,
		},
		{
			name:     "no change needed",
			input:    [4]int{4, 2, 0, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    0,
		},
		{
			name:     "empty row",
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile",
			input:    [4]int{0, 4, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := slideRow(tt.input)
			if result != tt.expected {
				t.Errorf("slideRow(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideRow(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestSimulateSingleRowLeft(t *testing.T) {
	tests := []struct {
		name  string
		row   [4]int
		want  [4]int
		score int
	}{
		{"four equal tiles", [4]int{2, 2, 2, 2}, [4]int{4, 4, 0, 0}, 8},
		{"no chained merge", [4]int{2, 2, 2, 0}, [4]int{4, 2, 0, 0}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Board{tt.row}
			got, score, moved := Simulate(b, Left)
			if got[0] != tt.want {
				t.Errorf("Simulate(Left) row = %v, want %v", got[0], tt.want)
			}
			if score != tt.score {
				t.Errorf("Simulate(Left) score = %d, want %d", score, tt.score)
			}
			if !moved {
				t.Error("Simulate(Left) should report moved")
			}
		})
	}
}

func TestSimulateLeft(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Board{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	result, score, moved := Simulate(board, Left)

	if result != expected {
		t.Errorf("Simulate(Left): got\n%v\nwant\n%v", result, expected)
	}

	if !moved {
		t.Error("Simulate(Left) should indicate board changed")
	}

	expectedScore := 4 + 8 + 8
	if score != expectedScore {
		t.Errorf("Simulate(Left) score = %d, want %d", score, expectedScore)
	}
}

func TestSimulateRight(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Board{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	result, _, moved := Simulate(board, Right)

	if result != expected {
		t.Errorf("Simulate(Right): got\n%v\nwant\n%v", result, expected)
	}

	if !moved {
		t.Error("Simulate(Right) should indicate board changed")
	}
}

func TestSimulateRightMergesFromTheRight(t *testing.T) {
	board := Board{{0, 2, 2, 2}}

	result, score, _ := Simulate(board, Right)

	if result[0] != [4]int{0, 0, 2, 4} {
		t.Errorf("Simulate(Right) row = %v, want [0 0 2 4]", result[0])
	}
	if score != 4 {
		t.Errorf("Simulate(Right) score = %d, want 4", score)
	}
}

func TestSimulateUp(t *testing.T) {
	board := Board{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	expected := Board{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, _, moved := Simulate(board, Up)

	if result != expected {
		t.Errorf("Simulate(Up): got\n%v\nwant\n%v", result, expected)
	}

	if !moved {
		t.Error("Simulate(Up) should indicate board changed")
	}
}

func TestSimulateDown(t *testing.T) {
	board := Board{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	result, _, moved := Simulate(board, Down)

	if result != expected {
		t.Errorf("Simulate(Down): got\n%v\nwant\n%v", result, expected)
	}

	if !moved {
		t.Error("Simulate(Down) should indicate board changed")
	}
}

func TestSimulateDoesNotMutateInput(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{0, 4, 4, 0},
		{0, 0, 0, 0},
		{8, 0, 0, 8},
	}
	orig := board

	for _, d := range Directions {
		Simulate(board, d)
		if board != orig {
			t.Fatalf("Simulate(%v) modified its input", d)
		}
	}
}

func TestNoChangeNotMoved(t *testing.T) {
	board := Board{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	// Sliding left when tiles are already left-aligned
	result, score, moved := Simulate(board, Left)

	if moved {
		t.Error("Simulate(Left) should not change already left-aligned tiles")
	}
	if result != board {
		t.Errorf("Simulate(Left) changed a stable board:\n%v", result)
	}
	if score != 0 {
		t.Errorf("Simulate(Left) score = %d, want 0", score)
	}
}

func randomBoard(rng *rand.Rand) Board {
	var b Board
	for y := range Size {
		for x := range Size {
			if rng.Intn(3) == 0 {
				continue
			}
			b[y][x] = 1 << (1 + rng.Intn(4))
		}
	}
	return b
}

func TestSimulateProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		b := randomBoard(rng)
		for _, d := range Directions {
			next, score, moved := Simulate(b, d)

			if score < 0 {
				t.Fatalf("Simulate(%v) score = %d on\n%v", d, score, b)
			}
			if moved != (next != b) {
				t.Fatalf("Simulate(%v) moved = %v but board changed = %v on\n%v", d, moved, next != b, b)
			}
			if TileCount(next) > TileCount(b) {
				t.Fatalf("Simulate(%v) increased tile count on\n%v", d, b)
			}
			for y := range Size {
				for x := range Size {
					if v := next[y][x]; v != 0 && !IsPowerOfTwo(v) {
						t.Fatalf("Simulate(%v) produced %d on\n%v", d, v, b)
					}
				}
			}

			// A move without merges leaves a board that is stable in that direction
			if score == 0 {
				again, _, movedAgain := Simulate(next, d)
				if movedAgain || again != next {
					t.Fatalf("Simulate(%v) is not stable after a merge-free move on\n%v", d, b)
				}
			}
		}
	}
}

func TestSimulateReachesFixedPoint(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 500; i++ {
		b := randomBoard(rng)
		for _, d := range Directions {
			cur := b
			stable := false
			for step := 0; step <= Size*Size; step++ {
				next, _, moved := Simulate(cur, d)
				if !moved {
					stable = true
					break
				}
				cur = next
			}
			if !stable {
				t.Fatalf("Simulate(%v) never stabilised from\n%v", d, b)
			}
		}
	}
}

func TestCanMove(t *testing.T) {
	stuck := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	if CanMove(stuck) {
		t.Error("CanMove should be false for a checkerboard")
	}

	if !CanMove(Board{{2}}) {
		t.Error("CanMove should be true with empty cells")
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"up", Up},
		{"D", Down},
		{" Left ", Left},
		{"r", Right},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil {
			t.Errorf("ParseDirection(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection should reject unknown names")
	}
}
