package model

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Grid is a fixed-size matrix of cells.
//
// A Grid returned by the Engine or FromCells is never modified afterwards; every
// operation that changes cells produces a new Grid, so any holder of a Grid keeps
// observing the same values.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// newGrid allocates an all-dead grid, backing every row with one contiguous slice
func newGrid(rows, cols int) *Grid {
	cells := make([][]Cell, rows)
	buf := make([]Cell, rows*cols)
	for i := range cells {
		start := i * cols
		cells[i] = buf[start : start+cols : start+cols]
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// FromCells builds a grid from literal cell data.
// Every row must have the same length and hold only Dead or Alive.
func FromCells(cells [][]Cell) (*Grid, error) {
	rows := len(cells)
	if rows == 0 {
		return nil, errors.Wrap(ErrInvalidGrid, "[FromCells] grid has no rows")
	}
	cols := len(cells[0])
	if cols == 0 {
		return nil, errors.Wrap(ErrInvalidGrid, "[FromCells] grid has no columns")
	}

	g := newGrid(rows, cols)
	for row := range cells {
		if len(cells[row]) != cols {
			return nil, errors.Wrapf(ErrInvalidGrid, "[FromCells] row %d has %d cells, want %d", row, len(cells[row]), cols)
		}
		for col, c := range cells[row] {
			if c != Dead && c != Alive {
				return nil, errors.Wrapf(ErrInvalidGrid, "[FromCells] cell (%d,%d) has value %d", row, col, c)
			}
			g.cells[row][col] = c
		}
	}
	return g, nil
}

// Rows returns the number of rows of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns of the grid
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (row, col) is a valid coordinate of the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Cell returns the state of the cell at (row, col)
func (g *Grid) Cell(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Dead, outOfBounds("Cell", g, row, col)
	}
	return g.cells[row][col], nil
}

// IsAlive reports whether the cell at (row, col) is alive, false outside the grid
func (g *Grid) IsAlive(row, col int) bool {
	return g.InBounds(row, col) && g.cells[row][col] == Alive
}

// Cells returns a copy of the cell matrix
func (g *Grid) Cells() [][]Cell {
	return g.clone().cells
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.rows {
		for col := range g.cols {
			count += int(g.cells[row][col])
		}
	}
	return
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for row := range g.rows {
		for col := range g.cols {
			h.Write([]byte{byte(g.cells[row][col])})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the grid as rows of 0 and 1
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for row := range g.rows {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := range g.cols {
			b.WriteByte('0' + byte(g.cells[row][col]))
		}
	}
	return b.String()
}

func (g *Grid) clone() *Grid {
	next := newGrid(g.rows, g.cols)
	for row := range g.cells {
		copy(next.cells[row], g.cells[row])
	}
	return next
}

// reset kills every cell. Only valid on grids nobody else holds.
func (g *Grid) reset() {
	for row := range g.cells {
		clear(g.cells[row])
	}
}
