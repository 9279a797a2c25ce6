package model

import (
	"math/rand/v2"

	"github.com/sheikhrachel/go-gol/rules"
)

// Engine computes grids and their successor generations.
//
// Engine never mutates a grid it was given. It is not safe for concurrent use because
// of its random source; callers serialize access.
type Engine struct {
	offsets []rules.Offset
	rng     *rand.Rand
	pool    *GridPool
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithOffsets sets the neighbor offsets counted for each cell
func WithOffsets(offsets []rules.Offset) EngineOption {
	return func(e *Engine) {
		e.offsets = append([]rules.Offset(nil), offsets...)
	}
}

// WithSeed makes CreateRandom deterministic
func WithSeed(seed int64) EngineOption {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewPCG(uint64(seed), 0))
	}
}

// WithPool takes next-generation buffers from pool instead of allocating them
func WithPool(pool *GridPool) EngineOption {
	return func(e *Engine) {
		e.pool = pool
	}
}

// NewEngine creates an engine counting the Moore neighborhood with a randomly seeded source
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		offsets: rules.MooreNeighborhood(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return e
}

// CreateEmpty returns a grid of the given dimensions with every cell dead
func (e *Engine) CreateEmpty(rows, cols int) *Grid {
	return newGrid(rows, cols)
}

// CreateRandom returns a grid where each cell is alive with probability aliveProbability
func (e *Engine) CreateRandom(rows, cols int, aliveProbability float64) *Grid {
	g := newGrid(rows, cols)
	for row := range rows {
		for col := range cols {
			// Float64 is in [0,1): probability 0 never matches, 1 always does
			if e.rng.Float64() < aliveProbability {
				g.cells[row][col] = Alive
			}
		}
	}
	return g
}

// ToggleCell returns a copy of grid with the cell at (row, col) flipped
func (e *Engine) ToggleCell(grid *Grid, row, col int) (*Grid, error) {
	if !grid.InBounds(row, col) {
		return nil, outOfBounds("ToggleCell", grid, row, col)
	}

	next := grid.clone()
	next.cells[row][col] ^= Alive
	return next, nil
}

// AdvanceGeneration calculates the next generation of grid.
// Neighbor counts are read from grid only and written to a separate buffer.
func (e *Engine) AdvanceGeneration(grid *Grid) *Grid {
	var next *Grid
	if e.pool != nil {
		next = e.pool.Get(grid.rows, grid.cols)
	} else {
		next = newGrid(grid.rows, grid.cols)
	}

	for row := range grid.rows {
		for col := range grid.cols {
			neighbors := e.countNeighbors(grid, row, col)
			next.cells[row][col] = Cell(rules.NextState(uint8(grid.cells[row][col]), neighbors))
		}
	}
	return next
}

// Release hands a grid nobody will read again back to the engine's pool
func (e *Engine) Release(grid *Grid) {
	GridToPool(grid, e.pool)
}

// countNeighbors counts living neighbors, skipping offsets outside the grid
func (e *Engine) countNeighbors(grid *Grid, row, col int) (count int) {
	for _, o := range e.offsets {
		r, c := row+o.DRow, col+o.DCol
		if grid.InBounds(r, c) {
			count += int(grid.cells[r][c])
		}
	}
	return
}
