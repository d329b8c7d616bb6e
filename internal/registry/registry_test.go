package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/auto2048/internal/board"
)

type stubPlayer struct {
	opts Options
}

func (stubPlayer) ID() string    { return "stub" }
func (stubPlayer) Title() string { return "Stub Player" }
func (stubPlayer) NextMove(board.Board) (board.Direction, bool) {
	return board.Left, true
}

func init() {
	Register("stub", func(opts Options) Player { return stubPlayer{opts: opts} })
}

func TestCreate(t *testing.T) {
	p, err := Create("stub", Options{Depth: 5})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if p.ID() != "stub" {
		t.Errorf("ID() = %q, want stub", p.ID())
	}
	if got := p.(stubPlayer).opts.Depth; got != 5 {
		t.Errorf("options not passed through: depth = %d", got)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("nobody", DefaultOptions())
	if !errors.Is(err, ErrUnknownPlayer) {
		t.Errorf("Create() error = %v, want ErrUnknownPlayer", err)
	}
	if Exists("nobody") {
		t.Error("Exists(nobody) = true")
	}
}

func TestList(t *testing.T) {
	found := false
	for _, info := range List() {
		if info.ID == "stub" {
			found = true
			if info.Title != "Stub Player" {
				t.Errorf("Title = %q, want Stub Player", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() missing stub player")
	}
	if !Exists("stub") {
		t.Error("Exists(stub) = false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register should panic on duplicate ID")
		}
	}()
	Register("stub", func(Options) Player { return stubPlayer{} })
}
