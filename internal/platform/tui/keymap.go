package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap holds the key bindings for every game state.
// The same physical key can mean different things depending on state
// (enter starts a game from the menu but resumes a paused one).
type KeyMap struct {
	// Menu
	StartNew key.Binding
	Continue key.Binding

	// Playing
	Left     key.Binding
	Right    key.Binding
	Rotate   key.Binding
	SoftDrop key.Binding
	HardDrop key.Binding
	Pause    key.Binding
	Escape   key.Binding

	// Paused and game over
	Resume    key.Binding
	Restart   key.Binding
	PlayAgain key.Binding
	Menu      key.Binding

	// Global
	Quit       key.Binding
	Help       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		StartNew: key.NewBinding(
			key.WithKeys("enter", "n"),
			key.WithHelp("enter", "new game"),
		),
		Continue: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "continue"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up", "w", "x"),
			key.WithHelp("↑/w", "rotate"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "soft drop"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "hard drop"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave"),
		),
		Resume: key.NewBinding(
			key.WithKeys("p", "enter"),
			key.WithHelp("p", "resume"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		PlayAgain: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "play again"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", "b"),
			key.WithHelp("m", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Action translates a key press to a game action for the given state.
// Returns ActionNone for keys that mean nothing in that state.
func (k KeyMap) Action(msg tea.KeyMsg, st core.GameState) core.Action {
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit
	}

	switch {
	case st.InMenu:
		switch {
		case key.Matches(msg, k.StartNew):
			return core.ActionStartNew
		case key.Matches(msg, k.Continue):
			return core.ActionContinue
		}

	case st.GameOver:
		switch {
		case key.Matches(msg, k.PlayAgain):
			return core.ActionRestart
		case key.Matches(msg, k.Menu):
			return core.ActionBackToMenu
		}

	case st.Paused:
		switch {
		case key.Matches(msg, k.Resume):
			return core.ActionResume
		case key.Matches(msg, k.Restart):
			return core.ActionRestart
		case key.Matches(msg, k.Menu):
			return core.ActionBackToMenu
		}

	default:
		switch {
		case key.Matches(msg, k.Left):
			return core.ActionMoveLeft
		case key.Matches(msg, k.Right):
			return core.ActionMoveRight
		case key.Matches(msg, k.Rotate):
			return core.ActionRotateCW
		case key.Matches(msg, k.SoftDrop):
			return core.ActionSoftDropStart
		case key.Matches(msg, k.HardDrop):
			return core.ActionHardDrop
		case key.Matches(msg, k.Pause):
			return core.ActionPause
		case key.Matches(msg, k.Escape):
			return core.ActionEscape
		}
	}

	return core.ActionNone
}

// stateHelp lists the bindings of a single game state.
type stateHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h stateHelp) ShortHelp() []key.Binding  { return h.short }
func (h stateHelp) FullHelp() [][]key.Binding { return h.full }

// HelpFor returns the bindings worth showing in the given state.
func (k KeyMap) HelpFor(st core.GameState) help.KeyMap {
	switch {
	case st.InMenu:
		cont := k.Continue
		cont.SetEnabled(st.CanContinue)
		short := []key.Binding{k.StartNew, cont, k.Quit}
		return stateHelp{short: short, full: [][]key.Binding{short, {k.Screenshot}}}
	case st.GameOver:
		short := []key.Binding{k.PlayAgain, k.Menu, k.Quit}
		return stateHelp{short: short, full: [][]key.Binding{short, {k.Screenshot}}}
	case st.Paused:
		short := []key.Binding{k.Resume, k.Restart, k.Menu, k.Quit}
		return stateHelp{short: short, full: [][]key.Binding{short, {k.Screenshot}}}
	default:
		return stateHelp{
			short: []key.Binding{k.Left, k.Right, k.Rotate, k.SoftDrop, k.HardDrop, k.Pause, k.Help},
			full: [][]key.Binding{
				{k.Left, k.Right, k.Rotate, k.SoftDrop, k.HardDrop},
				{k.Pause, k.Escape, k.Quit, k.Screenshot},
			},
		}
	}
}

// softDropTracker turns repeated soft drop key presses into a held state.
// Terminals send no key-up event, so the key counts as released once no
// repeat has arrived for the release window.
type softDropTracker struct {
	release time.Duration
	held    bool
	last    time.Time
}

// Press records a soft drop key press at now.
func (s *softDropTracker) Press(now time.Time) {
	s.held = true
	s.last = now
}

// Released reports, once, that the key has gone quiet for the release window.
func (s *softDropTracker) Released(now time.Time) bool {
	if !s.held || now.Sub(s.last) < s.release {
		return false
	}
	s.held = false
	return true
}

// Reset forgets any held key.
func (s *softDropTracker) Reset() {
	s.held = false
}
