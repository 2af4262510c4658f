package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// KeyRelease is how long the platform waits for a repeat of a held key
	// before treating it as released. Terminals report no key-up events.
	KeyRelease time.Duration
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		KeyRelease: 300 * time.Millisecond,
	}
}

// TickDuration returns the nominal length of one simulation tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score       int  // Current score
	Lines       int  // Rows cleared in the current game
	InMenu      bool // Title menu is showing
	GameOver    bool // Whether the game has ended
	Paused      bool // Whether the game is paused
	CanContinue bool // A saved game can be resumed from the menu
	Quit        bool // The game asked the platform to exit
}

// Playing reports whether a game is actively running.
func (s GameState) Playing() bool {
	return !s.InMenu && !s.GameOver && !s.Paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State        GameState
	LinesCleared int // Rows removed during this step
}
