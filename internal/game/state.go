// Package game drives a single 2048 session: the value-typed State that
// headless runners thread through every move, and the interactive Game
// the terminal front end ticks, renders and snapshots.
package game

import "github.com/vovakirdan/auto2048/internal/board"

// State is one point of a game. It is passed and returned by value;
// nothing holds a reference to a live board.
type State struct {
	Board board.Board
	Score int
	Moves int
}

// NewState returns a fresh board with two spawned tiles.
func NewState(s *board.Spawner) State {
	return State{Board: board.Initialize(s)}
}

// Apply plays dir and spawns a tile if the board changed. A no-op move
// returns the state unchanged and false.
func (st State) Apply(dir board.Direction, s *board.Spawner) (State, bool) {
	next, score, moved := board.ApplyMove(st.Board, dir, st.Score, s)
	if !moved {
		return st, false
	}
	return State{Board: next, Score: score, Moves: st.Moves + 1}, true
}

// MaxTile returns the highest tile on the board.
func (st State) MaxTile() int {
	return board.MaxTile(st.Board)
}

// GameOver reports whether no move can change the board.
func (st State) GameOver() bool {
	return board.IsGameOver(st.Board)
}
