package game

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

const minInterval = time.Millisecond

// Reasons a running simulation stopped by itself
const (
	ReasonGenerationLimit = "generation limit"
	ReasonExtinct         = "extinct"
	ReasonStagnant        = "stagnant"
)

// State is a point-in-time view of the controller
type State struct {
	Grid       *model.Grid
	Generation int
	Running    bool
	LiveCells  int
	Stagnant   bool
	// StopReason is set when the run loop stopped the simulation itself
	StopReason string
	Stats      utils.Stats
}

// Controller drives an Engine: it owns the current grid and the running flag and
// advances one generation per interval while running.
//
// All methods are safe for concurrent use. Grids returned by Snapshot are never
// modified. Subscribers run with the controller locked: they must not call back into
// it, and the grid they see is only valid until they return when the engine has a pool.
type Controller struct {
	cfg    utils.Config
	engine *model.Engine

	mu          sync.Mutex
	grid        *model.Grid
	shared      bool
	generation  int
	running     bool
	stagnant    bool
	stopReason  string
	history     *model.History
	stats       *utils.Stats
	lastStep    time.Time
	subscribers []func(State)
}

// NewController creates a stopped controller holding an empty grid
func NewController(cfg utils.Config, engine *model.Engine) *Controller {
	return &Controller{
		cfg:     cfg,
		engine:  engine,
		grid:    engine.CreateEmpty(cfg.Rows, cfg.Cols),
		history: model.NewHistory(cfg.HistorySize),
		stats:   utils.NewStats(),
	}
}

// Config returns the configuration the controller was created with
func (c *Controller) Config() utils.Config {
	return c.cfg
}

// Subscribe registers fn to be called with the new state after every change
func (c *Controller) Subscribe(fn func(State)) {
	c.mu.Lock()
	c.subscribers = append(c.subscribers, fn)
	c.mu.Unlock()
}

// Snapshot returns the current state
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shared = true
	return c.state()
}

// Start resumes advancing generations on every tick
func (c *Controller) Start() {
	c.update(func() {
		c.running = true
		c.stopReason = ""
		c.lastStep = time.Now()
	})
}

// Stop pauses the simulation; the current grid is kept
func (c *Controller) Stop() {
	c.update(func() {
		c.running = false
	})
}

// ToggleRunning starts a stopped simulation and stops a running one
func (c *Controller) ToggleRunning() {
	c.update(func() {
		c.running = !c.running
		if c.running {
			c.stopReason = ""
			c.lastStep = time.Now()
		}
	})
}

// Step advances exactly one generation, whether running or not
func (c *Controller) Step() {
	c.update(c.advance)
}

// Randomize replaces the grid with a randomly seeded one
func (c *Controller) Randomize() {
	c.update(func() {
		c.replace(c.engine.CreateRandom(c.cfg.Rows, c.cfg.Cols, c.cfg.AliveProbability))
	})
}

// Clear replaces the grid with an empty one and resets the generation counter
func (c *Controller) Clear() {
	c.update(func() {
		c.replace(c.engine.CreateEmpty(c.cfg.Rows, c.cfg.Cols))
	})
}

// ToggleCell flips the cell at (row, col)
func (c *Controller) ToggleCell(row, col int) error {
	c.mu.Lock()
	next, err := c.engine.ToggleCell(c.grid, row, col)
	if err != nil {
		c.mu.Unlock()
		return errors.Wrap(err, "[ToggleCell] failed to toggle cell")
	}
	c.setGrid(next)
	c.stagnant = false
	c.history.Reset()
	c.notify()
	c.mu.Unlock()
	return nil
}

// Run advances the grid every configured interval while running, until ctx is done
func (c *Controller) Run(ctx context.Context) error {
	interval := max(c.cfg.Interval, minInterval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.tick()
		}
	}
}

// tick advances one generation if the simulation is running
func (c *Controller) tick() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.advance()
	c.notify()
	c.mu.Unlock()
}

// advance computes the next generation and applies the stop conditions. Requires c.mu.
func (c *Controller) advance() {
	start := time.Now()
	next := c.engine.AdvanceGeneration(c.grid)

	c.stagnant = c.history.IsStagnant(next)
	c.history.Record(next)
	c.setGrid(next)
	c.generation++

	live := next.CountLivingCells()
	if !c.lastStep.IsZero() && c.running {
		c.stats.Update(c.generation, live, start.Sub(c.lastStep))
	} else {
		c.stats.Update(c.generation, live, time.Since(start))
	}
	c.lastStep = start

	if !c.running {
		return
	}
	switch {
	case c.cfg.MaxGenerations > 0 && c.generation >= c.cfg.MaxGenerations:
		c.halt(ReasonGenerationLimit)
	case c.cfg.StopWhenStagnant && live == 0:
		c.halt(ReasonExtinct)
	case c.cfg.StopWhenStagnant && c.stagnant:
		c.halt(ReasonStagnant)
	}
}

func (c *Controller) halt(reason string) {
	c.running = false
	c.stopReason = reason
}

// replace installs a fresh grid and forgets everything about the previous one. Requires c.mu.
func (c *Controller) replace(g *model.Grid) {
	c.setGrid(g)
	c.generation = 0
	c.stagnant = false
	c.stopReason = ""
	c.history.Reset()
	c.stats = utils.NewStats()
}

// setGrid swaps the current grid, recycling the previous one when nobody else holds it
func (c *Controller) setGrid(g *model.Grid) {
	if !c.shared {
		c.engine.Release(c.grid)
	}
	c.grid = g
	c.shared = false
}

// update runs fn under the lock and notifies subscribers
func (c *Controller) update(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn()
	c.notify()
}

func (c *Controller) state() State {
	return State{
		Grid:       c.grid,
		Generation: c.generation,
		Running:    c.running,
		LiveCells:  c.grid.CountLivingCells(),
		Stagnant:   c.stagnant,
		StopReason: c.stopReason,
		Stats:      *c.stats,
	}
}

// notify calls every subscriber with the current state. Requires c.mu.
func (c *Controller) notify() {
	if len(c.subscribers) == 0 {
		return
	}
	st := c.state()
	for _, fn := range c.subscribers {
		fn(st)
	}
}
