package tetris

import (
	"iter"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ

	kindCount
)

// Kinds lists every tetromino kind in spawn-table order.
var Kinds = [kindCount]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Color returns the cell color a locked piece of this kind leaves on the board.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorCyan
	case KindJ:
		return core.ColorBlue
	case KindL:
		return core.ColorOrange
	case KindO:
		return core.ColorYellow
	case KindS:
		return core.ColorGreen
	case KindT:
		return core.ColorMagenta
	case KindZ:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

// Matrix is a row-major occupancy grid. Row 0 is the top of the shape.
type Matrix [][]bool

var spawnShapes = [kindCount][]string{
	KindI: {
		"....",
		"####",
		"....",
		"....",
	},
	KindJ: {
		"#..",
		"###",
		"...",
	},
	KindL: {
		"..#",
		"###",
		"...",
	},
	KindO: {
		"##",
		"##",
	},
	KindS: {
		".##",
		"##.",
		"...",
	},
	KindT: {
		".#.",
		"###",
		"...",
	},
	KindZ: {
		"##.",
		".##",
		"...",
	},
}

// ShapeOf returns a fresh copy of the spawn orientation for a kind.
func ShapeOf(k Kind) Matrix {
	rows := spawnShapes[k]
	m := make(Matrix, len(rows))
	for r, line := range rows {
		m[r] = make([]bool, len(line))
		for c, ch := range line {
			m[r][c] = ch == '#'
		}
	}
	return m
}

// Rows returns the number of matrix rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of matrix columns.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for r := range m {
		out[r] = append([]bool(nil), m[r]...)
	}
	return out
}

// Equal reports whether both matrices have the same dimensions and cells.
func (m Matrix) Equal(o Matrix) bool {
	if len(m) != len(o) {
		return false
	}
	for r := range m {
		if len(m[r]) != len(o[r]) {
			return false
		}
		for c := range m[r] {
			if m[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// RotateCW returns the matrix turned 90° clockwise:
// rotated[c][rows-1-r] = m[r][c].
func (m Matrix) RotateCW() Matrix {
	rows, cols := m.Rows(), m.Cols()
	rotated := make(Matrix, cols)
	for c := range rotated {
		rotated[c] = make([]bool, rows)
	}
	for r := range rows {
		for c := range cols {
			rotated[c][rows-1-r] = m[r][c]
		}
	}
	return rotated
}

// Point is an absolute board coordinate.
type Point struct {
	X, Y int
}

// Footprint is anything that occupies board cells. Board only needs this
// view of a piece, so pieces never depend on the board.
type Footprint interface {
	Positions() iter.Seq[Point]
}

// priorState is what a single UndoRotate restores.
type priorState struct {
	matrix Matrix
	x, y   int
}

// Piece is the falling tetromino.
type Piece struct {
	Kind  Kind
	Shape Matrix
	X, Y  int // top-left anchor of Shape on the board, Y may be negative

	prior *priorState // nil when there is nothing to undo
}

// Spawn creates a piece of the given kind, horizontally centered on a board
// of the given width and entering at the top row.
func Spawn(k Kind, boardWidth int) *Piece {
	shape := ShapeOf(k)
	return &Piece{
		Kind:  k,
		Shape: shape,
		X:     (boardWidth - shape.Cols()) / 2,
		Y:     0,
	}
}

// Color returns the piece's cell color.
func (p *Piece) Color() core.Color {
	return p.Kind.Color()
}

// Positions yields the absolute coordinates of every filled cell.
// Coordinates are computed from the current shape and origin on each call.
func (p *Piece) Positions() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for r, row := range p.Shape {
			for c, filled := range row {
				if !filled {
					continue
				}
				if !yield(Point{X: p.X + c, Y: p.Y + r}) {
					return
				}
			}
		}
	}
}

// Translate shifts the origin. No validation happens here.
func (p *Piece) Translate(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Rotate turns the shape clockwise and remembers the previous shape and
// origin. Only the most recent rotation can be undone.
func (p *Piece) Rotate() {
	p.prior = &priorState{matrix: p.Shape, x: p.X, y: p.Y}
	p.Shape = p.Shape.RotateCW()
}

// UndoRotate restores the state saved by the last Rotate, if any.
func (p *Piece) UndoRotate() {
	if p.prior == nil {
		return
	}
	p.Shape = p.prior.matrix
	p.X, p.Y = p.prior.x, p.prior.y
	p.prior = nil
}

// CanUndoRotate reports whether a rotation is pending undo.
func (p *Piece) CanUndoRotate() bool {
	return p.prior != nil
}

// Clone returns a deep copy, including the pending undo state.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	c := &Piece{Kind: p.Kind, Shape: p.Shape.Clone(), X: p.X, Y: p.Y}
	if p.prior != nil {
		c.prior = &priorState{matrix: p.prior.matrix.Clone(), x: p.prior.x, y: p.prior.y}
	}
	return c
}
