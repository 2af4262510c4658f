// Package tui provides the Bubble Tea integration for the tetris game.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the time advanced by one tick so that a stalled
// terminal does not drop a piece several rows at once.
const maxFrameDelta = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the time elapsed between two ticks, clamped to
// [0, maxFrameDelta]. The first tick (zero prev) advances nothing.
func frameDelta(prev, now time.Time) time.Duration {
	if prev.IsZero() {
		return 0
	}
	return min(max(now.Sub(prev), 0), maxFrameDelta)
}
