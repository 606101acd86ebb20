// Package tetris implements the falling-piece engine: board, tetromino
// shapes, collision resolution, line clearing and the tick-driven state
// machine. The package is pure logic with no external dependencies; the
// platform layer drives it once per frame and renders the resulting
// snapshot.
package tetris

import (
	"errors"
	"fmt"
)

// Standard playfield dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// ErrOutOfBounds reports direct cell access outside the grid. It indicates
// a caller bug: the public move/rotate API never produces out-of-bounds
// coordinates.
var ErrOutOfBounds = errors.New("tetris: cell out of bounds")

// ColorID identifies the color of a filled cell. Zero is reserved for
// empty cells.
type ColorID uint8

// Cell is a single board cell: empty, or filled with a color.
type Cell struct {
	Filled bool
	Color  ColorID
}

// Board is a fixed-size grid of locked cells. Rows are indexed top (0) to
// bottom (height-1). Only the lock-merge step and the line clearer mutate
// it.
type Board struct {
	width  int
	height int
	cells  [][]Cell
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(width, height int) *Board {
	b := &Board{
		width:  width,
		height: height,
	}
	b.cells = make([][]Cell, height)
	for y := range b.cells {
		b.cells[y] = make([]Cell, width)
	}
	return b
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether (x, y) lies inside the grid.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// IsOccupied reports whether the cell at (x, y) is filled.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (b *Board) IsOccupied(x, y int) (bool, error) {
	if !b.InBounds(x, y) {
		return false, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	return b.cells[y][x].Filled, nil
}

// Cell returns the cell at (x, y).
// Returns ErrOutOfBounds for coordinates outside the grid.
func (b *Board) Cell(x, y int) (Cell, error) {
	if !b.InBounds(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	return b.cells[y][x], nil
}

// SetCell fills the cell at (x, y) with the given color.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (b *Board) SetCell(x, y int, color ColorID) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	b.cells[y][x] = Cell{Filled: true, Color: color}
	return nil
}

// RowIsFull reports whether every cell in row y is filled.
// Returns false for out-of-range rows.
func (b *Board) RowIsFull(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for x := 0; x < b.width; x++ {
		if !b.cells[y][x].Filled {
			return false
		}
	}
	return true
}

// RemoveRow deletes row y, shifts all rows above it down by one, and
// inserts an empty row at the top. Out-of-range rows are ignored.
func (b *Board) RemoveRow(y int) {
	if y < 0 || y >= b.height {
		return
	}
	for row := y; row > 0; row-- {
		copy(b.cells[row], b.cells[row-1])
	}
	for x := 0; x < b.width; x++ {
		b.cells[0][x] = Cell{}
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := NewBoard(b.width, b.height)
	for y := range b.cells {
		copy(clone.cells[y], b.cells[y])
	}
	return clone
}

// Equal reports whether two boards have identical dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}
