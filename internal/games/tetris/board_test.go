package tetris

import (
	"iter"
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// cells is a bare footprint for placement tests.
type cells []Point

func (c cells) Positions() iter.Seq[Point] {
	return slices.Values(c)
}

// fillRow colors every cell of row y except the listed columns.
func fillRow(b *Board, y int, except ...int) {
	for x := range b.width {
		if slices.Contains(except, x) {
			continue
		}
		b.cells[y][x] = core.ColorGray
	}
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard()
	if b.Width() != 10 || b.Height() != 20 {
		t.Fatalf("board is %dx%d, expected 10x20", b.Width(), b.Height())
	}
	if b.IsGameOver() {
		t.Error("empty board should not be game over")
	}
	if b.Score() != 0 || b.Lines() != 0 {
		t.Error("empty board should have no score")
	}
}

func TestIsValidPosition(t *testing.T) {
	b := NewBoard()
	b.cells[5][5] = core.ColorRed
	b.cells[0][2] = core.ColorBlue

	tests := []struct {
		name  string
		cells cells
		want  bool
	}{
		{"inside empty", cells{{0, 0}, {9, 19}}, true},
		{"left of grid", cells{{-1, 3}}, false},
		{"right of grid", cells{{10, 3}}, false},
		{"below floor", cells{{4, 20}}, false},
		{"above top inside walls", cells{{4, -2}, {4, -1}}, true},
		{"above top outside walls", cells{{-1, -1}}, false},
		{"above top over filled column", cells{{2, -1}}, true},
		{"overlaps filled cell", cells{{5, 5}}, false},
		{"touches filled cell", cells{{4, 5}, {5, 4}, {6, 5}, {5, 6}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.IsValidPosition(tc.cells); got != tc.want {
				t.Errorf("IsValidPosition(%v) = %v, expected %v", tc.cells, got, tc.want)
			}
		})
	}
}

func TestIsValidPositionMatchesDefinition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := range 500 {
		b := NewBoard()
		for range rng.Intn(60) {
			b.cells[rng.Intn(BoardHeight)][rng.Intn(BoardWidth)] = core.ColorGreen
		}

		p := Spawn(Kinds[rng.Intn(len(Kinds))], BoardWidth)
		for range rng.Intn(4) {
			p.Rotate()
		}
		p.Translate(rng.Intn(14)-5, rng.Intn(26)-4)

		want := true
		for pt := range p.Positions() {
			if pt.X < 0 || pt.X >= BoardWidth || pt.Y >= BoardHeight {
				want = false
				break
			}
			if pt.Y >= 0 && b.cells[pt.Y][pt.X] != core.ColorDefault {
				want = false
				break
			}
		}

		if got := b.IsValidPosition(p); got != want {
			t.Fatalf("case %d: IsValidPosition = %v, expected %v for %v", i, got, want, slices.Collect(p.Positions()))
		}
	}
}

func TestLockPieceDropsCellsAboveTop(t *testing.T) {
	b := NewBoard()
	p := Spawn(KindI, BoardWidth)
	p.Rotate()         // vertical in column 5, rows 0..3
	p.Translate(0, -2) // rows -2..1

	b.LockPiece(p)

	for y := range BoardHeight {
		want := core.ColorDefault
		if y <= 1 {
			want = core.ColorCyan
		}
		if got := b.At(5, y); got != want {
			t.Errorf("cell (5, %d) = %v, expected %v", y, got, want)
		}
	}
	if !b.IsGameOver() {
		t.Error("piece locked into row 0 should end the game")
	}
}

func TestSingleLineClear(t *testing.T) {
	b := NewBoard()
	fillRow(b, 19, 9)
	b.cells[18][0] = core.ColorRed

	// Vertical I dropped into column 9, rows 16..19.
	p := Spawn(KindI, BoardWidth)
	p.Rotate()
	p.Translate(4, 16)

	if !b.IsValidPosition(p) {
		t.Fatal("setup: I piece should fit in column 9")
	}
	cleared := b.LockPiece(p)

	if cleared != 1 {
		t.Fatalf("cleared %d lines, expected 1", cleared)
	}
	if b.Score() != 100 {
		t.Errorf("score = %d, expected 100", b.Score())
	}
	if b.At(0, 19) != core.ColorRed {
		t.Error("row above the cleared line should shift down to the bottom")
	}
	for y := 17; y <= 19; y++ {
		if b.At(9, y) != core.ColorCyan {
			t.Errorf("remaining I cell should shift to (9, %d)", y)
		}
	}
	for x := range BoardWidth {
		if b.At(x, 0) != core.ColorDefault {
			t.Errorf("row 0 should be empty after a clear, got %v at x=%d", b.At(x, 0), x)
		}
	}
}

func TestHorizontalIClear(t *testing.T) {
	b := NewBoard()
	fillRow(b, 19, 6, 7, 8, 9)

	p := Spawn(KindI, BoardWidth)
	p.Translate(3, 18) // row 1 of the matrix lands on row 19, columns 6..9

	if got := b.LockPiece(p); got != 1 {
		t.Fatalf("cleared %d lines, expected 1", got)
	}
	if b.Score() != 100 {
		t.Errorf("score = %d, expected 100", b.Score())
	}
}

func TestScoringTable(t *testing.T) {
	tests := []struct {
		full  int
		score int
	}{
		{0, 0},
		{1, 100},
		{2, 300},
		{3, 500},
		{4, 800},
	}

	for _, tc := range tests {
		b := NewBoard()
		for y := BoardHeight - tc.full; y < BoardHeight; y++ {
			fillRow(b, y, 9)
		}
		p := Spawn(KindI, BoardWidth)
		p.Rotate()
		p.Translate(4, 16)

		cleared := b.LockPiece(p)
		if cleared != tc.full {
			t.Errorf("%d prepared rows: cleared %d", tc.full, cleared)
		}
		if b.Score() != tc.score {
			t.Errorf("%d lines: score = %d, expected %d", tc.full, b.Score(), tc.score)
		}
		if b.Lines() != tc.full {
			t.Errorf("%d lines: Lines() = %d", tc.full, b.Lines())
		}
	}
}

func TestClearNonAdjacentRows(t *testing.T) {
	b := NewBoard()
	fillRow(b, 19)
	fillRow(b, 18, 0)
	fillRow(b, 17)
	b.cells[16][3] = core.ColorMagenta

	cleared := b.ClearFullLines()
	if cleared != 2 {
		t.Fatalf("cleared %d lines, expected 2", cleared)
	}
	if b.Score() != 300 {
		t.Errorf("score = %d, expected 300", b.Score())
	}
	if b.At(0, 19) != core.ColorDefault || b.At(1, 19) != core.ColorGray {
		t.Error("partial row should end up on the bottom")
	}
	if b.At(3, 18) != core.ColorMagenta {
		t.Error("row above both clears should drop two rows")
	}
	if len(b.Cells()) != BoardHeight {
		t.Errorf("row count changed to %d", len(b.Cells()))
	}
	for y, row := range b.Cells() {
		if len(row) != BoardWidth {
			t.Errorf("row %d has %d cells", y, len(row))
		}
	}
}

func TestIsGameOver(t *testing.T) {
	b := NewBoard()
	b.cells[1][4] = core.ColorRed
	if b.IsGameOver() {
		t.Error("a cell in row 1 should not end the game")
	}
	b.cells[0][9] = core.ColorRed
	if !b.IsGameOver() {
		t.Error("a cell in row 0 should end the game")
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := NewBoard()
	fillRow(b, 19, 0)
	c := b.Clone()

	b.cells[19][0] = core.ColorRed
	b.ClearFullLines()

	if c.At(0, 19) != core.ColorDefault || c.Score() != 0 {
		t.Error("clone should not observe changes to the original")
	}

	cellsCopy := c.Cells()
	cellsCopy[0][0] = core.ColorRed
	if c.At(0, 0) != core.ColorDefault {
		t.Error("Cells() should return a copy")
	}
}
