package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// highScoreSetter is implemented by games that display the stored best score.
type highScoreSetter interface {
	SetHighScore(score int)
}

// Options configures a game session on the terminal.
type Options struct {
	Runtime  core.RuntimeConfig
	ShowHelp bool
	Logger   *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	showHelp   bool
	inputFrame core.InputFrame
	gameState  core.GameState
	softDrop   softDropTracker
	lastTick   time.Time
	highScore  int
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, store *storage.Store, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		showHelp:   opts.ShowHelp,
		inputFrame: core.NewInputFrame(),
		softDrop:   softDropTracker{release: cfg.KeyRelease},
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight(cfg.ScreenH))

	game.Reset(cfg)
	m.gameState = game.State()
	m.loadHighScore()

	logger.Debug("game ready", "game", game.ID(), "seed", cfg.Seed, "tick_rate", cfg.TickRate)
	return m
}

// boardHeight is the screen height left after the help line.
func (m Model) boardHeight(total int) int {
	if m.showHelp {
		return max(total-1, 0)
	}
	return total
}

func (m *Model) loadHighScore() {
	if m.store == nil {
		return
	}
	high, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read high score", "error", err)
		return
	}
	m.highScore = high
	if g, ok := m.game.(highScoreSetter); ok {
		g.SetHighScore(high)
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the action for the key, if any, for the next tick.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg, m.gameState)
	if action == core.ActionSoftDropStart {
		m.softDrop.Press(now)
	}
	m.inputFrame.Push(action)

	return m, nil
}

// handleResize processes window resize events.
// The board has a fixed size, so the game keeps running unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.boardHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the time elapsed since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	if m.softDrop.Released(now) {
		m.inputFrame.Push(core.ActionSoftDropEnd)
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	if from, to := stateName(prev), stateName(m.gameState); from != to {
		m.logger.Debug("state changed", "from", from, "to", to)
		if !m.gameState.Playing() {
			m.softDrop.Reset()
		}
	}
	if result.LinesCleared > 0 {
		m.logger.Debug("lines cleared", "count", result.LinesCleared, "score", m.gameState.Score)
	}

	m.recordGameOver()

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// recordGameOver saves the score once per finished game.
func (m *Model) recordGameOver() {
	if !m.gameState.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	m.logger.Info("game over", "score", m.gameState.Score, "lines", m.gameState.Lines)
	if m.gameState.Score <= 0 || m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Lines); err != nil {
		m.logger.Error("failed to save score", "error", err)
		return
	}
	if m.gameState.Score > m.highScore {
		m.highScore = m.gameState.Score
		if g, ok := m.game.(highScoreSetter); ok {
			g.SetHighScore(m.highScore)
		}
	}
}

// stateName names a platform-level state for logs.
func stateName(s core.GameState) string {
	switch {
	case s.InMenu:
		return "menu"
	case s.GameOver:
		return "game_over"
	case s.Paused:
		return "paused"
	default:
		return "playing"
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	if m.showHelp {
		out += "\n" + helpStyle.Render(centerText(m.help.View(m.keys.HelpFor(m.gameState)), m.config.ScreenW))
	}
	return out
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, opts Options) error {
	model := NewModel(game, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
