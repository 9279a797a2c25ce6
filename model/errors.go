package model

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds is returned when a coordinate falls outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidGrid is returned when literal cell data breaks the grid invariants
	ErrInvalidGrid = errors.New("invalid grid")
)

func outOfBounds(op string, g *Grid, row, col int) error {
	return errors.Wrapf(ErrOutOfBounds, "[%s] (%d,%d) outside %dx%d grid", op, row, col, g.rows, g.cols)
}
