package tetris

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultTetrisConfig())
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	script := map[int][]core.Action{
		0:   {core.ActionStartNew},
		10:  {core.ActionMoveLeft, core.ActionMoveLeft},
		25:  {core.ActionRotateCW},
		40:  {core.ActionHardDrop},
		55:  {core.ActionSoftDropStart},
		70:  {core.ActionMoveRight, core.ActionRotateCW, core.ActionHardDrop},
		90:  {core.ActionPause},
		95:  {core.ActionResume},
		120: {core.ActionHardDrop},
	}

	dt := time.Second / 60
	input := core.NewInputFrame()
	for i := range 400 {
		input.Clear()
		for _, a := range script[i] {
			input.Push(a)
		}
		g1.Step(input, dt)
		g2.Step(input, dt)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("snapshots diverged:\n%+v\n%+v", snap1, snap2)
	}
	if snap1.State != StatePlaying && snap1.State != StateGameOver {
		t.Errorf("unexpected final state %v", snap1.State)
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	seq := func(seed int64) []Kind {
		src := NewRandomSource(seed)
		out := make([]Kind, 20)
		for i := range out {
			out[i] = src.Next()
		}
		return out
	}
	if reflect.DeepEqual(seq(1), seq(2)) {
		t.Error("different seeds produced the same 20-piece sequence")
	}
}

func TestStepAppliesInputsBeforeGravity(t *testing.T) {
	g := newTestGame(1)

	in := core.NewInputFrame()
	in.Push(core.ActionStartNew)
	g.Step(in, 0)
	start := g.Controller().Session().Active.Clone()

	in.Clear()
	in.Push(core.ActionMoveLeft)
	g.Step(in, 500*time.Millisecond)

	p := g.Controller().Session().Active
	if p.X != start.X-1 || p.Y != start.Y+1 {
		t.Errorf("piece at (%d, %d), expected move then fall to (%d, %d)", p.X, p.Y, start.X-1, start.Y+1)
	}
}

func TestStepKeepsActionOrder(t *testing.T) {
	g := newTestGame(1)

	// Resume before the game is paused does nothing.
	in := core.NewInputFrame()
	in.Push(core.ActionStartNew)
	in.Push(core.ActionResume)
	in.Push(core.ActionPause)
	res := g.Step(in, 0)
	if !res.State.Paused {
		t.Fatalf("state = %+v, expected paused", res.State)
	}

	in.Clear()
	in.Push(core.ActionPause)
	in.Push(core.ActionResume)
	res = g.Step(in, 0)
	if !res.State.Playing() {
		t.Errorf("state = %+v, expected playing", res.State)
	}

	in.Clear()
	in.Push(core.ActionResume)
	in.Push(core.ActionPause)
	res = g.Step(in, 0)
	if !res.State.Paused {
		t.Errorf("state = %+v, expected paused", res.State)
	}
}

func TestStepStopsAtQuit(t *testing.T) {
	g := newTestGame(1)

	in := core.NewInputFrame()
	in.Push(core.ActionQuit)
	in.Push(core.ActionStartNew)
	res := g.Step(in, 0)

	if !res.State.Quit {
		t.Error("Quit should be reported")
	}
	if !res.State.InMenu {
		t.Error("actions after Quit should not be applied")
	}
}

func TestStepReportsLinesCleared(t *testing.T) {
	g := newTestGame(1)
	in := core.NewInputFrame()
	in.Push(core.ActionStartNew)
	g.Step(in, 0)

	// Fill the bottom row except under the piece's lowest cells.
	s := g.Controller().Session()
	maxY := -1
	for pt := range s.Active.Positions() {
		maxY = max(maxY, pt.Y)
	}
	gaps := map[int]bool{}
	for pt := range s.Active.Positions() {
		if pt.Y == maxY {
			gaps[pt.X] = true
		}
	}
	for x := range BoardWidth {
		if !gaps[x] {
			s.Board.cells[19][x] = core.ColorGray
		}
	}

	in.Clear()
	in.Push(core.ActionHardDrop)
	res := g.Step(in, 0)

	if res.LinesCleared != 1 {
		t.Errorf("LinesCleared = %d, expected 1", res.LinesCleared)
	}
	if res.State.Score != 100 || res.State.Lines != 1 {
		t.Errorf("state = %+v, expected score 100 and 1 line", res.State)
	}
}

func TestRenderStates(t *testing.T) {
	g := newTestGame(3)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "T E T R I S") {
		t.Error("menu should show the title")
	}
	if strings.Contains(screen.String(), "Continue") {
		t.Error("menu should not offer Continue without a saved game")
	}

	in := core.NewInputFrame()
	in.Push(core.ActionStartNew)
	g.Step(in, 0)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"SCORE", "LINES", "HIGH", "NEXT", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("play screen missing %q", want)
		}
	}

	in.Clear()
	in.Push(core.ActionPause)
	g.Step(in, 0)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("paused screen should show overlay")
	}

	in.Clear()
	in.Push(core.ActionBackToMenu)
	g.Step(in, 0)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Continue") {
		t.Error("menu should offer Continue after leaving a game")
	}
}

func TestRenderActivePieceColor(t *testing.T) {
	g := newTestGame(3)
	in := core.NewInputFrame()
	in.Push(core.ActionStartNew)
	g.Step(in, 0)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	snap := g.Snapshot()
	area := core.NewRect(0, 0, 80, 24).Centered(layoutW, layoutH)
	p := snap.Active[0]
	cell := screen.GetCell(area.X+1+p.X*cellW, area.Y+1+p.Y)
	if cell.Color != snap.ActiveColor() || cell.Rune != '█' {
		t.Errorf("active cell drawn as %+v, expected '█' in %v", cell, snap.ActiveColor())
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(3)
	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("small screen should show a resize hint")
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("tetris should register itself")
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if g.Title() != "Tetris" {
		t.Errorf("Title() = %q", g.Title())
	}
}
