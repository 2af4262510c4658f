// Package tetris implements the falling-block puzzle game: pieces, the board,
// and the menu/play/pause/game-over state machine that drives them.
package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// GameID is the registry and score-store identifier.
const GameID = "tetris"

// loadedConfig is set by the CLI before the game is created.
var loadedConfig *config.TetrisConfig

// SetConfig installs the configuration used by subsequent Reset calls.
func SetConfig(cfg config.TetrisConfig) {
	loadedConfig = &cfg
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game adapts the Controller to the platform's registry.Game interface.
type Game struct {
	cfg       config.TetrisConfig
	ctrl      *Controller
	highScore int
}

// New creates a Tetris game using the installed or discovered configuration.
func New() *Game {
	if loadedConfig != nil {
		return NewWithConfig(*loadedConfig)
	}
	cfg, err := config.LoadTetris("")
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Tetris game with an explicit configuration.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Reset starts over at the title menu with a piece sequence seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.ctrl = NewController(NewRandomSource(cfg.Seed), Timing{
		FallInterval:     g.cfg.Timing.FallInterval(),
		SoftDropInterval: g.cfg.Timing.SoftDropInterval(),
	})
}

// Step applies the frame's actions in arrival order, then advances gravity.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	for _, a := range in.Actions {
		g.ctrl.Handle(a)
		if g.ctrl.QuitRequested() {
			break
		}
	}
	g.ctrl.Tick(dt)

	return core.StepResult{
		State:        g.State(),
		LinesCleared: g.ctrl.TakeLinesCleared(),
	}
}

// State returns the platform-level view of the controller state.
func (g *Game) State() core.GameState {
	snap := g.ctrl.Snapshot()
	return core.GameState{
		Score:       snap.Score,
		Lines:       snap.Lines,
		InMenu:      snap.State == StateMenu,
		GameOver:    snap.State == StateGameOver,
		Paused:      snap.State == StatePaused,
		CanContinue: snap.CanContinue,
		Quit:        g.ctrl.QuitRequested(),
	}
}

// Snapshot returns the controller snapshot for rendering and tests.
func (g *Game) Snapshot() Snapshot {
	return g.ctrl.Snapshot()
}

// Controller exposes the underlying state machine.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// SetHighScore sets the best stored score shown in the side panel.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}
