package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagConfig string
	flagSpeed  string
	flagNoHelp bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tetris",
	Long: `Start a game of Tetris at the title menu.

Controls:
  Left/Right, A/D  - Move
  Up, W, X         - Rotate clockwise
  Down, S          - Soft drop (hold)
  Space            - Hard drop
  P                - Pause / resume
  Esc              - Back to the menu (the game can be continued)
  R                - Restart
  Q/Ctrl+C         - Quit

Speed options:
  slow    - Gravity every 800ms
  normal  - Gravity every 500ms
  fast    - Gravity every 300ms

Examples:
  tetris play
  tetris play --speed fast
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags, which the root command shares.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast")
	cmd.Flags().BoolVar(&flagNoHelp, "no-help", false, "Hide the key help line")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	preset, err := config.ParseSpeedPreset(flagSpeed)
	if err != nil {
		return err
	}

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyTetrisPreset(&cfg, preset)
	tetris.SetConfig(cfg)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		KeyRelease: cfg.Timing.SoftDropRelease(),
	}

	game, err := registry.Create(tetris.GameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("starting", "fall_ms", cfg.Timing.FallIntervalMS, "speed", string(preset), "fps", flagFPS)
	runErr := tui.Run(game, store, tui.Options{
		Runtime:  runtime,
		ShowHelp: cfg.Render.ShowHelp && !flagNoHelp,
		Logger:   logger,
	})

	// Close store before potential exit
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Error("closing score storage", "error", err)
		}
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
