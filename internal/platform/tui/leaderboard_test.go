package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/auto2048/internal/storage"
)

func TestLeaderboardPlayers(t *testing.T) {
	store := openStore(t)
	for _, r := range []storage.RunRecord{
		{Player: "expectimax", Seed: 1, Score: 9000, MaxTile: 1024, Moves: 600, Reason: "game_over"},
		{Player: "expectimax", Seed: 2, Score: 12000, MaxTile: 1024, Moves: 700, Reason: "game_over"},
		{Player: "random", Seed: 3, Score: 900, MaxTile: 128, Moves: 100, Reason: "game_over"},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewLeaderboardModel(store, 120, 30)
	if got := len(m.players); got != 3 {
		t.Fatalf("players = %v, want all + 2", m.players)
	}
	if len(m.runs) != 3 {
		t.Errorf("all players tab shows %d runs, want 3", len(m.runs))
	}
	if m.runs[0].Score != 12000 {
		t.Errorf("top run score = %d, want 12000", m.runs[0].Score)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(LeaderboardModel)
	if m.players[m.cursor] != "expectimax" {
		t.Fatalf("selected %q, want expectimax", m.players[m.cursor])
	}
	if len(m.runs) != 2 || m.stats == nil || m.stats.BestScore != 12000 {
		t.Errorf("expectimax tab: %d runs, stats %+v", len(m.runs), m.stats)
	}
	if !strings.Contains(m.View(), "TOP RUNS - expectimax") {
		t.Error("View() missing title")
	}

	// Wraps backwards past the first tab
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(LeaderboardModel)
	if m.players[m.cursor] != "random" {
		t.Errorf("selected %q, want random", m.players[m.cursor])
	}
}

func TestLeaderboardEmpty(t *testing.T) {
	m := NewLeaderboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Errorf("empty leaderboard view:\n%s", m.View())
	}
}
