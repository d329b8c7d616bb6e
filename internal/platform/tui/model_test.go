package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/auto2048/internal/core"
	"github.com/vovakirdan/auto2048/internal/game"
	"github.com/vovakirdan/auto2048/internal/players"
	"github.com/vovakirdan/auto2048/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 11
	cfg.MoveEvery = 1
	return cfg
}

func TestModelAutoplaySavesRunOnce(t *testing.T) {
	store := openStore(t)
	m := NewModel(game.New(players.NewRandom(5)), store, testConfig(), nil)
	m.Init()

	for i := 0; i < 20000 && !m.gameState.GameOver; i++ {
		m.Update(TickMsg(time.Now()))
	}
	if !m.gameState.GameOver {
		t.Fatal("random autoplay did not finish")
	}

	// Further ticks must not record the run again
	for i := 0; i < 10; i++ {
		m.Update(TickMsg(time.Now()))
	}

	runs, err := store.TopRuns("random", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.Seed != 11 || r.Reason != "game_over" {
		t.Errorf("run = %+v, want seed 11 reason game_over", r)
	}
	if r.Score != m.gameState.Score || r.Moves != m.gameState.Moves {
		t.Errorf("saved score/moves %d/%d, game has %d/%d", r.Score, r.Moves, m.gameState.Score, m.gameState.Moves)
	}
	if r.Board != m.game.Current().Board {
		t.Errorf("saved board differs from final board")
	}
}

func TestModelQuitBeforeMoveSavesNothing(t *testing.T) {
	store := openStore(t)
	cfg := testConfig()
	cfg.Autoplay = false
	m := NewModel(game.New(nil), store, cfg, nil)
	m.Init()

	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command does not quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quit")
	}

	runs, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs, want 0", len(runs))
	}
}

func TestModelRestartRecordsAbandonedGame(t *testing.T) {
	store := openStore(t)
	m := NewModel(game.New(players.NewRandom(1)), store, testConfig(), nil)
	m.Init()

	for i := 0; i < 5; i++ {
		m.Update(TickMsg(time.Now()))
	}
	if m.gameState.Moves == 0 {
		t.Fatal("no moves were played")
	}

	m.Update(runeKey('r'))
	m.Update(TickMsg(time.Now()))

	if m.gameState.Moves != 0 {
		t.Errorf("Moves after restart = %d, want 0", m.gameState.Moves)
	}
	runs, err := store.TopRuns("random", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Reason != "quit" {
		t.Errorf("runs = %+v, want one quit run", runs)
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	cfg := testConfig()
	cfg.Autoplay = false
	m := NewModel(game.New(nil), nil, cfg, nil)
	m.Init()
	before := m.game.Current().Board

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.game.Current().Board != before {
		t.Error("resize changed the board")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40-helpHeight {
		t.Errorf("screen = %dx%d, want 100x%d", m.screen.Width(), m.screen.Height(), 40-helpHeight)
	}
	if m.View() == "" {
		t.Error("View() is empty")
	}
}
