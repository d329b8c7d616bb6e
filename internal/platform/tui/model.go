package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/auto2048/internal/config"
	"github.com/vovakirdan/auto2048/internal/core"
	"github.com/vovakirdan/auto2048/internal/game"
	"github.com/vovakirdan/auto2048/internal/runner"
	"github.com/vovakirdan/auto2048/internal/storage"
)

// helpHeight is the number of terminal rows reserved below the game screen.
const helpHeight = 1

// Model is the Bubble Tea model for an interactive game.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	quitting   bool
	runSaved   bool // Whether the current game has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *Model {
	if cfg.Seed == 0 {
		cfg.Seed = runner.RandomSeed()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return &Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(g.PlayerID() != "manual"),
		help:       h,
		inputFrame: core.NewInputFrame(),
		started:    time.Now(),
	}
}

// Init starts the game and the tick loop.
func (m *Model) Init() tea.Cmd {
	m.reset()
	return tickCmd(m.config.TickRate)
}

func (m *Model) reset() {
	gcfg := m.config
	gcfg.ScreenH = max(gcfg.ScreenH-helpHeight, 0)
	m.game.Reset(gcfg)
	m.gameState = m.game.State()
	m.started = time.Now()
	m.runSaved = false
	m.logger.Info("game started", "player", m.game.PlayerID(), "seed", m.config.Seed)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next tick.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c" || msg.String() == "q":
		m.quitting = true
		m.saveRun("quit")
		return m, tea.Quit
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if a := m.keys.Action(msg); a != core.ActionNone {
		m.inputFrame.Set(a)
	}
	return m, nil
}

// handleResize keeps the board and updates the layout.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	h := max(msg.Height-helpHeight, 0)
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveRun("quit")
		m.config.Seed = runner.RandomSeed()
		m.reset()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		reason := runner.ReasonGameOver
		if m.game.Snapshot().Status == game.StatusStuck {
			reason = runner.ReasonNoMove
		}
		m.saveRun(string(reason))
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current game once. Games without a single move are
// not recorded.
func (m *Model) saveRun(reason string) {
	if m.runSaved || m.gameState.Moves == 0 {
		return
	}
	m.runSaved = true

	cur := m.game.Current()
	rec := storage.RunRecord{
		Player:   m.game.PlayerID(),
		Seed:     m.game.Seed(),
		Score:    cur.Score,
		MaxTile:  cur.MaxTile(),
		Moves:    cur.Moves,
		Reason:   reason,
		Duration: time.Since(m.started),
		Board:    cur.Board,
	}
	m.logger.Info("game finished",
		"player", rec.Player, "score", rec.Score, "max_tile", rec.MaxTile,
		"moves", rec.Moves, "reason", reason)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(rec); err != nil {
		m.logger.Warn("failed to save run", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(config.DataDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("failed to create screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.PlayerID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("failed to save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(g, store, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
