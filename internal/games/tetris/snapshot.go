package tetris

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs.
// Mutating it has no effect on the controller.
type Snapshot struct {
	State       State
	Width       int
	Height      int
	Cells       [][]core.Color
	Active      []Point // absolute cells of the falling piece
	ActiveKind  Kind
	Next        Matrix
	NextKind    Kind
	HasPiece    bool // Active/Next are meaningful
	Score       int
	Lines       int
	CanContinue bool

	FallAccumulator time.Duration
	FallInterval    time.Duration
}

// ActiveColor returns the color of the falling piece.
func (s Snapshot) ActiveColor() core.Color {
	if !s.HasPiece {
		return core.ColorDefault
	}
	return s.ActiveKind.Color()
}

// NextColor returns the color of the preview piece.
func (s Snapshot) NextColor() core.Color {
	if !s.HasPiece {
		return core.ColorDefault
	}
	return s.NextKind.Color()
}

// Snapshot captures the current state.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		State:       c.state,
		Width:       BoardWidth,
		Height:      BoardHeight,
		CanContinue: c.saved != nil,
	}

	s := c.session
	if s == nil {
		snap.Cells = NewBoard().Cells()
		return snap
	}

	snap.Width = s.Board.Width()
	snap.Height = s.Board.Height()
	snap.Cells = s.Board.Cells()
	snap.Score = s.Board.Score()
	snap.Lines = s.Board.Lines()
	snap.FallAccumulator = s.FallAccumulator
	snap.FallInterval = s.FallInterval

	if s.Active != nil && s.Next != nil {
		snap.HasPiece = true
		snap.Active = slices.Collect(s.Active.Positions())
		snap.ActiveKind = s.Active.Kind
		snap.Next = s.Next.Shape.Clone()
		snap.NextKind = s.Next.Kind
	}
	return snap
}
