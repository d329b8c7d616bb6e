package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/auto2048/internal/config"
	"github.com/vovakirdan/auto2048/internal/core"
	"github.com/vovakirdan/auto2048/internal/game"
	"github.com/vovakirdan/auto2048/internal/platform/tui"
	"github.com/vovakirdan/auto2048/internal/registry"
	"github.com/vovakirdan/auto2048/internal/storage"
)

var (
	flagManual    bool
	flagMoveEvery int
	flagFPS       int
)

var playCmd = &cobra.Command{
	Use:   "play [player]",
	Short: "Watch a player or play manually",
	Long: `Start an interactive game. By default the configured player drives
the board; press Space to take over and ? to ask it for a hint.

Controls:
  Arrows/WASD - Move
  Space       - Toggle autoplay
  ?           - Hint
  P/Esc       - Pause
  R           - Restart
  Ctrl+S      - Screenshot
  Q/Ctrl+C    - Quit

Examples:
  auto2048 play
  auto2048 play greedy --move-every 2
  auto2048 play --manual
  auto2048 play --depth 4 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagManual, "manual", false, "Start with autoplay off")
	playCmd.Flags().IntVar(&flagMoveEvery, "move-every", 0, "Ticks between autoplay moves (default from config)")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (default from config)")
	addSearchFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if err := applySearchFlags(cmd, &cfg); err != nil {
		fail("%v", err)
	}

	playerID := cfg.Play.Player
	if len(args) == 1 {
		playerID = args[0]
	}
	if !registry.Exists(playerID) {
		fail("unknown player %q\nRun 'auto2048 list' to see available players.", playerID)
	}

	logger, closeLog := playLogger(cfg)
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	rc := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  cfg.Play.TickRate,
		Seed:      flagSeed,
		MoveEvery: cfg.Play.MoveEvery,
		Autoplay:  cfg.Play.Autoplay && !flagManual,
	}
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	if flagMoveEvery > 0 {
		rc.MoveEvery = flagMoveEvery
	}

	p, err := registry.Create(playerID, playerOptions(cfg, flagSeed, logger))
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		logger.Warn("could not open runs database", "err", err)
		store = nil
	}

	runErr := tui.Run(game.New(p), store, rc, logger)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

// playLogger routes logs to a file so they do not draw over the TUI.
func playLogger(cfg config.Config) (*log.Logger, func()) {
	dir := config.DataDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, cfg), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "auto2048.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard, cfg), func() {}
	}
	return newLogger(f, cfg), func() { f.Close() }
}
