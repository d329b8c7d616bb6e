package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/auto2048/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap(true)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey('s'), core.ActionDown},
		{"a", runeKey('a'), core.ActionLeft},
		{"h", runeKey('h'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"hint", runeKey('?'), core.ActionHint},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionToggleAuto},
		{"pause", runeKey('p'), core.ActionPause},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"restart", runeKey('r'), core.ActionRestart},
		{"quit is handled by the model", runeKey('q'), core.ActionNone},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapWithoutPlayer(t *testing.T) {
	km := DefaultKeyMap(false)

	if got := km.Action(runeKey('?')); got != core.ActionNone {
		t.Errorf("hint without player = %v, want None", got)
	}
	if got := km.Action(tea.KeyMsg{Type: tea.KeySpace}); got != core.ActionNone {
		t.Errorf("autoplay without player = %v, want None", got)
	}
	if got := km.Action(runeKey('d')); got != core.ActionRight {
		t.Errorf("d = %v, want Right", got)
	}
}
