// Package pool provides a fixed-size pool of worker goroutines consuming a
// shared FIFO queue of independent tasks, with a blocking quiescence barrier.
// It carries no knowledge of any simulation and is reusable for any flat
// batch of parallel work.
package pool

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
)

var (
	// ErrNoWorkers reports a pool constructed with a non-positive worker count.
	ErrNoWorkers = errors.New("pool: worker count must be positive")

	// ErrNilTask reports a nil task passed to Submit.
	ErrNilTask = errors.New("pool: nil task")

	// ErrClosed reports an operation on a pool after Shutdown.
	ErrClosed = errors.New("pool: closed")
)

// Task is a single unit of work. The returned error is collected by the pool
// and surfaced by the next Wait or WaitContext call.
type Task func() error

// Pool executes submitted tasks on a fixed set of long-lived worker
// goroutines. A single mutex guards the queue and the counters so that the
// completion bookkeeping and the quiescence check form one critical section;
// workCond wakes idle workers, idleCond wakes barrier waiters.
type Pool struct {
	mu       sync.Mutex
	workCond *sync.Cond
	idleCond *sync.Cond

	queue  []Task
	active int
	errs   []error
	closed bool

	workers int
	wg      sync.WaitGroup
}

// New constructs a pool with workerCount worker goroutines. It fails fast on
// a non-positive count rather than defaulting silently.
func New(workerCount int) (*Pool, error) {
	if workerCount < 1 {
		return nil, fmt.Errorf("%w: %d", ErrNoWorkers, workerCount)
	}
	p := &Pool{workers: workerCount}
	p.workCond = sync.NewCond(&p.mu)
	p.idleCond = sync.NewCond(&p.mu)
	p.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go p.workerLoop()
	}
	return p, nil
}

// NewDefault constructs a pool sized to the available hardware parallelism.
func NewDefault() *Pool {
	p, _ := New(runtime.NumCPU())
	return p
}

// workerLoop suspends until work arrives or the pool stops, executes one task
// at a time, and broadcasts to barrier waiters when the pool drains.
func (p *Pool) workerLoop() {
	defer p.wg.Done()
	p.mu.Lock()
	for {
		for len(p.queue) == 0 && !p.closed {
			p.workCond.Wait()
		}
		if p.closed {
			p.mu.Unlock()
			return
		}
		task := p.queue[0]
		p.queue = p.queue[1:]
		p.active++
		p.mu.Unlock()

		err := runTask(task)

		p.mu.Lock()
		p.active--
		if err != nil {
			p.errs = append(p.errs, err)
		}
		if len(p.queue) == 0 && p.active == 0 {
			p.idleCond.Broadcast()
		}
	}
}

// runTask executes a task, converting a panic into an ordinary error so a
// failing computation cannot take the worker down with it.
func runTask(t Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pool: task panic: %v", r)
		}
	}()
	return t()
}

// Submit appends task to the queue and wakes one worker. It never blocks.
// FIFO admission order is preserved; execution order across workers is not.
func (p *Pool) Submit(task Task) error {
	if task == nil {
		return ErrNilTask
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	p.queue = append(p.queue, task)
	p.workCond.Signal()
	return nil
}

// Wait blocks until the pool is quiescent: no queued and no active tasks.
// Every task submitted before the call has completed once Wait returns.
// It returns the joined errors of all tasks finished since the previous
// barrier, draining them. Safe to call repeatedly, including on an idle pool.
func (p *Pool) Wait() error {
	p.mu.Lock()
	for !p.quiescentLocked() {
		p.idleCond.Wait()
	}
	err := p.drainErrsLocked()
	p.mu.Unlock()
	return err
}

// WaitContext is Wait with a cancellation point. If ctx fires before the pool
// drains, the context error is returned and collected task errors are left in
// place for a later barrier.
func (p *Pool) WaitContext(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		p.mu.Lock()
		p.idleCond.Broadcast()
		p.mu.Unlock()
	})
	defer stop()

	p.mu.Lock()
	for !p.quiescentLocked() {
		if err := ctx.Err(); err != nil {
			p.mu.Unlock()
			return err
		}
		p.idleCond.Wait()
	}
	err := p.drainErrsLocked()
	p.mu.Unlock()
	return err
}

// Shutdown stops the pool: tasks still queued are abandoned, suspended
// workers are woken to exit, and all workers are joined before returning.
// In-flight tasks run to completion. Idempotent, and terminal.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		p.queue = nil
		p.workCond.Broadcast()
		p.idleCond.Broadcast()
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the fixed worker count the pool was constructed with.
func (p *Pool) Workers() int { return p.workers }

// Queued returns the number of tasks admitted but not yet started.
func (p *Pool) Queued() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Active returns the number of tasks currently executing.
func (p *Pool) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

func (p *Pool) quiescentLocked() bool {
	return len(p.queue) == 0 && p.active == 0
}

func (p *Pool) drainErrsLocked() error {
	if len(p.errs) == 0 {
		return nil
	}
	err := errors.Join(p.errs...)
	p.errs = nil
	return err
}
