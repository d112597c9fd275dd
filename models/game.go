package models

import (
	"errors"
	"math/rand/v2"
	"time"
)

// ErrMinesPlanted is returned when mines are planted on a board that already has them.
var ErrMinesPlanted = errors.New("mines already planted")

// Coord is a board position. X is the column, Y is the row.
type Coord struct {
	X int
	Y int
}

// None is the coordinate used when the cursor is not over any cell.
var None = Coord{X: -1, Y: -1}

type Cell struct {
	Discovered    bool
	Flagged       bool
	Mined         bool
	AdjacentMines int
}

// CellView is the read-only copy of a cell handed to the presentation layer.
type CellView struct {
	Discovered    bool
	Flagged       bool
	Mined         bool
	AdjacentMines int
}

type State int

const (
	Setup State = iota
	Active
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Setup:
		return "setup"
	case Active:
		return "active"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Board owns a square grid of cells stored row-major.
type Board struct {
	cells []Cell
	size  int
	mines int
	r     *rand.Rand

	minesPlaced     bool
	discoveredCount int
	flagCount       int
	state           State
}

// NewBoard creates a size x size board that will hold mines mines once they
// are planted. A nil r uses a time seeded source.
func NewBoard(size, mines int, r *rand.Rand) (*Board, error) {
	if size <= 0 || mines < 0 || mines >= size*size {
		return nil, &InvalidBoardParamsError{Size: size, Mines: mines}
	}
	if r == nil {
		seed := uint64(time.Now().UnixNano())
		r = rand.New(rand.NewPCG(seed, seed>>1))
	}

	return &Board{
		cells: make([]Cell, size*size),
		size:  size,
		mines: mines,
		r:     r,
	}, nil
}

func (b *Board) Size() int            { return b.size }
func (b *Board) Mines() int           { return b.mines }
func (b *Board) MinesPlaced() bool    { return b.minesPlaced }
func (b *Board) DiscoveredCount() int { return b.discoveredCount }
func (b *Board) FlagCount() int       { return b.flagCount }
func (b *Board) State() State         { return b.state }

// MinesRemaining is the mine counter shown to the player. It goes negative
// when more cells are flagged than there are mines.
func (b *Board) MinesRemaining() int {
	return b.mines - b.flagCount
}

func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.size && c.Y >= 0 && c.Y < b.size
}

func (b *Board) index(c Coord) int {
	return c.Y*b.size + c.X
}

func (b *Board) cell(c Coord) *Cell {
	return &b.cells[b.index(c)]
}

// CellAt returns a copy of the cell at c. The second result is false when c
// is outside the board.
func (b *Board) CellAt(c Coord) (CellView, bool) {
	if !b.InBounds(c) {
		return CellView{}, false
	}
	cell := b.cell(c)
	return CellView{
		Discovered:    cell.Discovered,
		Flagged:       cell.Flagged,
		Mined:         cell.Mined,
		AdjacentMines: cell.AdjacentMines,
	}, true
}

// neighbors calls fn for each in-bounds cell around c, diagonals included.
func (b *Board) neighbors(c Coord, fn func(n Coord)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Coord{X: c.X + dx, Y: c.Y + dy}
			if b.InBounds(n) {
				fn(n)
			}
		}
	}
}

// Mined lists the coordinates of every mine in row-major order.
func (b *Board) Mined() []Coord {
	var coords []Coord
	for i, cell := range b.cells {
		if cell.Mined {
			coords = append(coords, Coord{X: i % b.size, Y: i / b.size})
		}
	}
	return coords
}
