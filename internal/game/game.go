package game

import (
	"context"

	"github.com/vovakirdan/auto2048/internal/board"
	"github.com/vovakirdan/auto2048/internal/core"
	"github.com/vovakirdan/auto2048/internal/expectimax"
	"github.com/vovakirdan/auto2048/internal/registry"
)

// analyzer is implemented by players that report per-direction values.
type analyzer interface {
	Analyze(ctx context.Context, b board.Board) (expectimax.Analysis, error)
}

// Decision is the most recent move suggested by the player.
type Decision struct {
	Dir    board.Direction
	Found  bool
	Values [len(board.Directions)]float64
	Legal  [len(board.Directions)]bool
	Nodes  int64
	Scored bool // Values and Nodes are populated
}

// Game is an interactive 2048 session. Input comes from the keyboard or,
// with autoplay on, from the player every MoveEvery ticks.
type Game struct {
	player  registry.Player // nil disables autoplay and hints
	spawner *board.Spawner
	tick    uint64
	state   State

	moveEvery int
	seed      int64

	// Screen dimensions
	screenW int
	screenH int

	autoplay bool
	paused   bool
	gameOver bool
	stuck    bool
	tooSmall bool

	last    Decision
	hasLast bool
	hint    Decision
	hasHint bool
}

// New creates a game driven by the given player.
func New(p registry.Player) *Game {
	return &Game{player: p}
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.player == nil {
		return "2048"
	}
	return "2048 / " + g.player.Title()
}

// PlayerID returns the ID of the driving player, or "manual".
func (g *Game) PlayerID() string {
	if g.player == nil {
		return "manual"
	}
	return g.player.ID()
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.spawner = board.NewSpawner(cfg.Seed)
	g.seed = cfg.Seed
	g.tick = 0
	g.state = NewState(g.spawner)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.moveEvery = max(cfg.MoveEvery, 1)
	g.autoplay = cfg.Autoplay && g.player != nil
	g.paused = false
	g.gameOver = false
	g.stuck = false
	g.hasLast = false
	g.hasHint = false

	g.checkScreenSize()
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.terminal() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionToggleAuto) && g.player != nil {
		g.autoplay = !g.autoplay
	}

	if in.Has(core.ActionHint) && g.player != nil {
		g.hint = g.decide()
		g.hasHint = true
	}

	if dir, ok := manualDirection(in); ok {
		moved := g.play(dir)
		return core.StepResult{State: g.State(), Moved: moved}
	}

	if g.autoplay && g.tick%uint64(g.moveEvery) == 0 {
		d := g.decide()
		g.last = d
		g.hasLast = true
		if !d.Found {
			g.stuck = true
			return core.StepResult{State: g.State()}
		}
		moved := g.play(d.Dir)
		return core.StepResult{State: g.State(), Moved: moved}
	}

	return core.StepResult{State: g.State()}
}

func manualDirection(in core.InputFrame) (board.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return board.Up, true
	case in.Has(core.ActionDown):
		return board.Down, true
	case in.Has(core.ActionLeft):
		return board.Left, true
	case in.Has(core.ActionRight):
		return board.Right, true
	}
	return board.Up, false
}

// play applies a move to the live board and checks for game over.
func (g *Game) play(dir board.Direction) bool {
	next, moved := g.state.Apply(dir, g.spawner)
	if !moved {
		return false
	}
	g.state = next
	g.hasHint = false

	if g.state.GameOver() {
		g.gameOver = true
	}
	return true
}

// decide asks the player for a move.
func (g *Game) decide() Decision {
	if a, ok := g.player.(analyzer); ok {
		an, err := a.Analyze(context.Background(), g.state.Board)
		if err == nil {
			return Decision{
				Dir:    an.Best,
				Found:  an.Found,
				Values: an.Values,
				Legal:  an.Legal,
				Nodes:  an.Nodes,
				Scored: true,
			}
		}
	}
	dir, ok := g.player.NextMove(g.state.Board)
	return Decision{Dir: dir, Found: ok}
}

func (g *Game) terminal() bool {
	return g.gameOver || g.stuck
}

// Current returns the live board, score and move count.
func (g *Game) Current() State {
	return g.state
}

// Seed returns the spawner seed of this game.
func (g *Game) Seed() int64 {
	return g.seed
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Moves:    g.state.Moves,
		MaxTile:  g.state.MaxTile(),
		GameOver: g.terminal(),
		Paused:   g.paused || g.tooSmall,
		Autoplay: g.autoplay,
	}
}
