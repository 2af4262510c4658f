package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Board dimensions. The grid size is fixed.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// lineScores maps lines cleared by a single lock to points awarded.
var lineScores = [...]int{0, 100, 300, 500, 800}

// Board is the playfield. Row 0 is the top; core.ColorDefault marks an empty cell.
type Board struct {
	width  int
	height int
	cells  [][]core.Color
	score  int
	lines  int
}

// NewBoard creates an empty board of the standard size.
func NewBoard() *Board {
	return newBoard(BoardWidth, BoardHeight)
}

func newBoard(w, h int) *Board {
	b := &Board{width: w, height: h, cells: make([][]core.Color, h)}
	for y := range b.cells {
		b.cells[y] = make([]core.Color, w)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Score returns the accumulated score.
func (b *Board) Score() int { return b.score }

// Lines returns the total number of rows cleared.
func (b *Board) Lines() int { return b.lines }

// At returns the color at (x, y), or ColorDefault outside the grid.
func (b *Board) At(x, y int) core.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return core.ColorDefault
	}
	return b.cells[y][x]
}

// IsValidPosition reports whether every cell of f lies inside the grid
// horizontally, above the floor, and on an empty cell. Cells above the top
// (y < 0) are only checked against the side walls.
func (b *Board) IsValidPosition(f Footprint) bool {
	for p := range f.Positions() {
		if p.X < 0 || p.X >= b.width || p.Y >= b.height {
			return false
		}
		if p.Y >= 0 && b.cells[p.Y][p.X] != core.ColorDefault {
			return false
		}
	}
	return true
}

// LockPiece writes the piece's cells into the grid, clears full rows and
// returns how many were cleared. Cells above the top row are dropped.
func (b *Board) LockPiece(p *Piece) int {
	color := p.Color()
	for pt := range p.Positions() {
		if pt.Y < 0 || pt.X < 0 || pt.X >= b.width || pt.Y >= b.height {
			continue
		}
		b.cells[pt.Y][pt.X] = color
	}
	return b.ClearFullLines()
}

// ClearFullLines removes every full row, shifting the rows above down, and
// scores the total number removed as one clear.
func (b *Board) ClearFullLines() int {
	cleared := 0
	y := b.height - 1
	for y >= 0 {
		if !b.rowFull(y) {
			y--
			continue
		}
		cleared++
		// Shift everything above down by one; y now holds the next candidate.
		for y2 := y; y2 > 0; y2-- {
			copy(b.cells[y2], b.cells[y2-1])
		}
		clear(b.cells[0])
	}

	if cleared < len(lineScores) {
		b.score += lineScores[cleared]
	}
	b.lines += cleared
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c == core.ColorDefault {
			return false
		}
	}
	return true
}

// IsGameOver reports whether anything has settled in the top row.
func (b *Board) IsGameOver() bool {
	for _, c := range b.cells[0] {
		if c != core.ColorDefault {
			return true
		}
	}
	return false
}

// Cells returns a copy of the grid.
func (b *Board) Cells() [][]core.Color {
	out := make([][]core.Color, b.height)
	for y := range b.cells {
		out[y] = append([]core.Color(nil), b.cells[y]...)
	}
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		width:  b.width,
		height: b.height,
		cells:  b.Cells(),
		score:  b.score,
		lines:  b.lines,
	}
}
