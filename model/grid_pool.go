package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles next-generation buffers
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid of the requested dimensions from the pool
func (p *GridPool) Get(rows, cols int) *Grid {
	g := p.pool.Get().(*Grid)
	if g.rows != rows || g.cols != cols {
		return newGrid(rows, cols)
	}
	return g
}

// Put returns a grid to the pool, clearing its state.
// The caller must hold the only reference to g.
func (p *GridPool) Put(g *Grid) {
	g.reset()
	p.pool.Put(g)
}
