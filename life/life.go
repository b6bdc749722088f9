// Package life implements a double-buffered Conway's Game of Life engine
// whose generation steps are computed in parallel on a pool.Pool. The grid is
// bounded: cells outside it are simply absent, not wrapped around.
package life

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"lifeaccel/pool"
)

var (
	// ErrDimensions reports non-positive grid dimensions.
	ErrDimensions = errors.New("life: grid dimensions must be positive")

	// ErrNilPool reports an engine constructed without a worker pool.
	ErrNilPool = errors.New("life: nil worker pool")

	// ErrParallelism reports a non-positive parallelism override.
	ErrParallelism = errors.New("life: parallelism must be positive")

	// ErrProbability reports a fill probability outside [0, 1].
	ErrProbability = errors.New("life: fill probability must be in [0, 1]")

	// ErrOutOfRange reports cell coordinates outside the grid.
	ErrOutOfRange = errors.New("life: cell out of range")
)

// Engine owns two same-shaped row-major cell buffers and steps generations by
// partitioning the row range into contiguous chunks, one task per chunk.
// During a step every task reads only cur and writes only its own row range
// of nxt; the buffers swap by slice-header exchange once the barrier clears.
//
// The engine is driven from a single goroutine. Accessors are safe whenever
// no step is in flight.
type Engine struct {
	rows, cols int
	cur, nxt   []uint8
	pool       *pool.Pool
	chunks     int
	rng        *rand.Rand
}

// Option adjusts engine construction.
type Option func(*Engine)

// WithSeed pins the pseudorandom source used by Randomize so runs are
// reproducible. Without it the engine seeds from the wall clock.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithParallelism overrides the number of row chunks per step, which
// otherwise matches the pool's worker count.
func WithParallelism(n int) Option {
	return func(e *Engine) { e.chunks = n }
}

// NewEngine allocates an all-dead grid of rows x cols backed by p.
func NewEngine(rows, cols int, p *pool.Pool, opts ...Option) (*Engine, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, rows, cols)
	}
	if p == nil {
		return nil, ErrNilPool
	}
	e := &Engine{
		rows: rows,
		cols: cols,
		cur:  make([]uint8, rows*cols),
		nxt:  make([]uint8, rows*cols),
		pool: p,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.chunks == 0 {
		e.chunks = p.Workers()
	}
	if e.chunks < 1 {
		return nil, fmt.Errorf("%w: %d", ErrParallelism, e.chunks)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e, nil
}

// Dimensions returns the fixed grid shape as (rows, cols).
func (e *Engine) Dimensions() (int, int) { return e.rows, e.cols }

// Randomize sets every cell alive independently with probability fill.
// Out-of-range probabilities are rejected, not clamped.
func (e *Engine) Randomize(fill float64) error {
	if !(fill >= 0 && fill <= 1) {
		return fmt.Errorf("%w: %v", ErrProbability, fill)
	}
	for i := range e.cur {
		if e.rng.Float64() < fill {
			e.cur[i] = 1
		} else {
			e.cur[i] = 0
		}
	}
	return nil
}

// Step advances the grid by one generation.
func (e *Engine) Step() error {
	return e.StepContext(context.Background())
}

// StepContext advances the grid by one generation, submitting one row-chunk
// task per configured degree of parallelism and waiting on the pool's
// barrier. The last chunk absorbs the remainder rows. If a task fails or ctx
// fires first, the buffers are not swapped and the current generation stays
// observable unchanged.
func (e *Engine) StepContext(ctx context.Context) error {
	n := e.chunks
	if n > e.rows {
		n = e.rows
	}
	chunk := e.rows / n
	for i := 0; i < n; i++ {
		start := i * chunk
		end := start + chunk
		if i == n-1 {
			end = e.rows
		}
		if err := e.pool.Submit(func() error {
			e.stepRows(start, end)
			return nil
		}); err != nil {
			return fmt.Errorf("life: submitting chunk [%d,%d): %w", start, end, err)
		}
	}
	if err := e.pool.WaitContext(ctx); err != nil {
		return fmt.Errorf("life: step barrier: %w", err)
	}
	e.cur, e.nxt = e.nxt, e.cur
	return nil
}

// stepRows computes the next generation for rows in [start, end), reading
// only cur and writing only this chunk's rows of nxt.
func (e *Engine) stepRows(start, end int) {
	for row := start; row < end; row++ {
		base := row * e.cols
		for col := 0; col < e.cols; col++ {
			n := e.liveNeighbors(row, col)
			alive := e.cur[base+col] == 1
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				e.nxt[base+col] = 1
			} else {
				e.nxt[base+col] = 0
			}
		}
	}
}

// liveNeighbors counts the live cells of the Moore neighborhood around
// (row, col). Neighbors beyond the grid edge are absent, not wrapped.
func (e *Engine) liveNeighbors(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= e.rows {
			continue
		}
		base := r * e.cols
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := col + dc
			if c < 0 || c >= e.cols {
				continue
			}
			count += int(e.cur[base+c])
		}
	}
	return count
}

// LiveCellCount returns the number of alive cells in the current generation.
func (e *Engine) LiveCellCount() int {
	count := 0
	for _, v := range e.cur {
		count += int(v)
	}
	return count
}

// CellAt reports whether the cell at (row, col) is alive.
func (e *Engine) CellAt(row, col int) (bool, error) {
	if row < 0 || row >= e.rows || col < 0 || col >= e.cols {
		return false, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}
	return e.cur[row*e.cols+col] == 1, nil
}

// SetCell writes a single cell of the current generation, for seeding
// patterns and test fixtures.
func (e *Engine) SetCell(row, col int, alive bool) error {
	if row < 0 || row >= e.rows || col < 0 || col >= e.cols {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}
	if alive {
		e.cur[row*e.cols+col] = 1
	} else {
		e.cur[row*e.cols+col] = 0
	}
	return nil
}

// ForEachAlive calls fn for every live cell of the current generation in
// row-major order. Renderers iterate live cells through this accessor.
func (e *Engine) ForEachAlive(fn func(row, col int)) {
	for row := 0; row < e.rows; row++ {
		base := row * e.cols
		for col := 0; col < e.cols; col++ {
			if e.cur[base+col] == 1 {
				fn(row, col)
			}
		}
	}
}
