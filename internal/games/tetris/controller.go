package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// State is the controller's current mode.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Timing holds the gravity periods.
type Timing struct {
	FallInterval     time.Duration
	SoftDropInterval time.Duration
}

// DefaultTiming returns the standard gravity periods.
func DefaultTiming() Timing {
	return Timing{
		FallInterval:     500 * time.Millisecond,
		SoftDropInterval: 100 * time.Millisecond,
	}
}

// Session is one game in progress.
type Session struct {
	Board  *Board
	Active *Piece
	Next   *Piece

	FallAccumulator time.Duration
	FallInterval    time.Duration
}

// Clone returns a deep copy that shares nothing with s.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	return &Session{
		Board:           s.Board.Clone(),
		Active:          s.Active.Clone(),
		Next:            s.Next.Clone(),
		FallAccumulator: s.FallAccumulator,
		FallInterval:    s.FallInterval,
	}
}

// Controller drives the menu/play/pause/game-over state machine.
// It is not safe for concurrent use; the caller owns it from one goroutine.
type Controller struct {
	state   State
	timing  Timing
	source  PieceSource
	session *Session
	saved   *Session // retained for Continue

	quit    bool
	cleared int // lines cleared since the last TakeLinesCleared
}

// NewController creates a controller in the Menu state.
func NewController(src PieceSource, timing Timing) *Controller {
	if timing.FallInterval <= 0 {
		timing.FallInterval = DefaultTiming().FallInterval
	}
	if timing.SoftDropInterval <= 0 {
		timing.SoftDropInterval = DefaultTiming().SoftDropInterval
	}
	return &Controller{
		state:  StateMenu,
		timing: timing,
		source: src,
	}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Session returns the live session, or nil before the first game.
func (c *Controller) Session() *Session { return c.session }

// HasSavedSession reports whether Continue is available from the menu.
func (c *Controller) HasSavedSession() bool { return c.saved != nil }

// QuitRequested reports whether a Quit action was received.
func (c *Controller) QuitRequested() bool { return c.quit }

// TakeLinesCleared returns the rows cleared since the previous call.
func (c *Controller) TakeLinesCleared() int {
	n := c.cleared
	c.cleared = 0
	return n
}

// Handle applies one input action. Actions that mean nothing in the
// current state are ignored.
func (c *Controller) Handle(a core.Action) {
	if a == core.ActionQuit {
		c.quit = true
		return
	}

	switch c.state {
	case StateMenu:
		c.handleMenu(a)
	case StatePlaying:
		c.handlePlaying(a)
	case StatePaused:
		c.handlePaused(a)
	case StateGameOver:
		c.handleGameOver(a)
	}
}

func (c *Controller) handleMenu(a core.Action) {
	switch a {
	case core.ActionStartNew:
		c.startSession(NewBoard())
	case core.ActionContinue:
		if c.saved == nil {
			return
		}
		c.session = c.saved.Clone()
		// A continued game waits in Paused until the player resumes.
		c.state = StatePaused
	}
}

func (c *Controller) handlePlaying(a core.Action) {
	s := c.session
	switch a {
	case core.ActionMoveLeft:
		c.tryMove(-1)
	case core.ActionMoveRight:
		c.tryMove(1)
	case core.ActionRotateCW:
		s.Active.Rotate()
		if !s.Board.IsValidPosition(s.Active) {
			s.Active.UndoRotate()
		}
	case core.ActionSoftDropStart:
		s.FallInterval = c.timing.SoftDropInterval
	case core.ActionSoftDropEnd:
		s.FallInterval = c.timing.FallInterval
	case core.ActionHardDrop:
		c.hardDrop()
	case core.ActionPause, core.ActionEscape:
		c.saved = s.Clone()
		c.state = StatePaused
	}
}

func (c *Controller) handlePaused(a core.Action) {
	switch a {
	case core.ActionResume:
		c.state = StatePlaying
	case core.ActionRestart:
		c.startSession(NewBoard())
	case core.ActionBackToMenu:
		c.state = StateMenu
	}
}

func (c *Controller) handleGameOver(a core.Action) {
	switch a {
	case core.ActionRestart:
		c.startSession(NewBoard())
	case core.ActionBackToMenu:
		c.saved = nil
		c.state = StateMenu
	}
}

// Tick advances gravity by dt. It does nothing outside Playing.
func (c *Controller) Tick(dt time.Duration) {
	if c.state != StatePlaying {
		return
	}
	s := c.session
	s.FallAccumulator += dt
	if s.FallAccumulator < s.FallInterval {
		return
	}

	s.Active.Translate(0, 1)
	if !s.Board.IsValidPosition(s.Active) {
		s.Active.Translate(0, -1)
		c.lockAndSpawn()
	}
	s.FallAccumulator = 0
	s.FallInterval = c.timing.FallInterval
}

// startSession begins a fresh game on b.
func (c *Controller) startSession(b *Board) {
	c.session = &Session{
		Board:        b,
		Active:       Spawn(c.source.Next(), b.Width()),
		Next:         Spawn(c.source.Next(), b.Width()),
		FallInterval: c.timing.FallInterval,
	}
	c.state = StatePlaying
	c.checkTopOut()
}

func (c *Controller) tryMove(dx int) {
	s := c.session
	s.Active.Translate(dx, 0)
	if !s.Board.IsValidPosition(s.Active) {
		s.Active.Translate(-dx, 0)
	}
}

func (c *Controller) hardDrop() {
	s := c.session
	for s.Board.IsValidPosition(s.Active) {
		s.Active.Translate(0, 1)
	}
	s.Active.Translate(0, -1)
	c.lockAndSpawn()
	s.FallAccumulator = 0
}

// lockAndSpawn settles the active piece, promotes the next one and
// ends the game if the new piece has nowhere to go.
func (c *Controller) lockAndSpawn() {
	s := c.session
	c.cleared += s.Board.LockPiece(s.Active)
	s.Active = s.Next
	s.Next = Spawn(c.source.Next(), s.Board.Width())
	c.checkTopOut()
}

func (c *Controller) checkTopOut() {
	s := c.session
	if s.Board.IsGameOver() || !s.Board.IsValidPosition(s.Active) {
		c.state = StateGameOver
	}
}
