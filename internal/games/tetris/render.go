package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout constants, in screen columns/rows.
const (
	cellW      = 2
	panelW     = 14
	panelGap   = 2
	boardBoxW  = BoardWidth*cellW + 2
	boardBoxH  = BoardHeight + 2
	layoutW    = boardBoxW + panelGap + panelW
	layoutH    = boardBoxH
	emptyGlyph = " ."
)

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.ctrl.Snapshot()

	if dst.Width() < layoutW || dst.Height() < layoutH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", layoutW, layoutH))
		return
	}

	if snap.State == StateMenu {
		g.renderMenu(dst, snap)
		return
	}

	area := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(layoutW, layoutH)
	g.renderBoard(dst, area.X, area.Y, snap)
	g.renderPanel(dst, area.X+boardBoxW+panelGap, area.Y, snap)

	switch snap.State {
	case StatePaused:
		renderOverlay(dst, "Paused", "P resume  M menu")
	case StateGameOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d", snap.Score))
	}
}

func (g *Game) renderBoard(dst *core.Screen, ox, oy int, snap Snapshot) {
	dst.DrawBoxColor(core.NewRect(ox, oy, boardBoxW, boardBoxH), core.ColorGray)

	for y, row := range snap.Cells {
		for x, c := range row {
			if c == core.ColorDefault {
				g.drawCell(dst, ox, oy, x, y, emptyGlyph, core.ColorGray)
				continue
			}
			g.drawCell(dst, ox, oy, x, y, g.cfg.Render.Cell, c)
		}
	}

	if snap.HasPiece && snap.State != StateGameOver {
		for _, p := range snap.Active {
			if p.Y < 0 {
				continue
			}
			g.drawCell(dst, ox, oy, p.X, p.Y, g.cfg.Render.Cell, snap.ActiveColor())
		}
	}
}

// drawCell draws board cell (x, y) inside the frame whose corner is (ox, oy).
func (g *Game) drawCell(dst *core.Screen, ox, oy, x, y int, glyph string, c core.Color) {
	dst.DrawTextColor(ox+1+x*cellW, oy+1+y, glyph, c)
}

func (g *Game) renderPanel(dst *core.Screen, px, py int, snap Snapshot) {
	lines := []struct {
		label string
		value int
	}{
		{"SCORE", snap.Score},
		{"LINES", snap.Lines},
		{"HIGH", max(g.highScore, snap.Score)},
	}

	y := py + 1
	for _, l := range lines {
		dst.DrawTextColor(px, y, l.label, core.ColorGray)
		dst.DrawTextColor(px, y+1, fmt.Sprintf("%d", l.value), core.ColorBrightWhite)
		y += 3
	}

	if !g.cfg.Render.ShowNext || !snap.HasPiece {
		return
	}
	dst.DrawTextColor(px, y, "NEXT", core.ColorGray)
	y += 2
	for r, row := range snap.Next {
		for c, filled := range row {
			if filled {
				dst.DrawTextColor(px+c*cellW, y+r, g.cfg.Render.Cell, snap.NextColor())
			}
		}
	}
}

func (g *Game) renderMenu(dst *core.Screen, snap Snapshot) {
	cy := dst.Height()/2 - 4

	title := "T E T R I S"
	colors := []core.Color{
		core.ColorRed, core.ColorOrange, core.ColorYellow,
		core.ColorGreen, core.ColorCyan, core.ColorMagenta,
	}
	x := (dst.Width() - len(title)) / 2
	for i, r := range title {
		dst.SetColor(x+i, cy, r, colors[(i/2)%len(colors)])
	}

	items := []string{"Enter  New game"}
	if snap.CanContinue {
		items = append(items, "C      Continue")
	}
	items = append(items, "Q      Quit")

	for i, item := range items {
		dst.DrawTextCentered(cy+3+i, item)
	}

	if g.highScore > 0 {
		dst.DrawTextCenteredColor(cy+4+len(items), fmt.Sprintf("High score: %d", g.highScore), core.ColorGray)
	}
}

// renderOverlay draws a centered message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorBrightWhite)
	dst.DrawTextCenteredColor(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2)
}
