package pool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNonPositiveWorkerCount(t *testing.T) {
	for _, n := range []int{0, -1, -8} {
		p, err := New(n)
		require.ErrorIs(t, err, ErrNoWorkers, "worker count %d", n)
		require.Nil(t, p)
	}
}

func TestNewDefaultStarts(t *testing.T) {
	p := NewDefault()
	require.NotNil(t, p)
	defer p.Shutdown()
	assert.Positive(t, p.Workers())
}

// TestQuiescenceBarrier submits K counting tasks, waits, and requires the
// counter to read exactly K on return, over many rounds and worker counts.
func TestQuiescenceBarrier(t *testing.T) {
	for _, workers := range []int{1, 2, 4, 8} {
		p, err := New(workers)
		require.NoError(t, err)

		for round, k := range []int{0, 1, 2, 7, 16, 64, 257} {
			var counter atomic.Int64
			for i := 0; i < k; i++ {
				require.NoError(t, p.Submit(func() error {
					counter.Add(1)
					return nil
				}))
			}
			require.NoError(t, p.Wait())
			assert.Equal(t, int64(k), counter.Load(),
				"workers=%d round=%d", workers, round)
		}
		p.Shutdown()
	}
}

func TestWaitIsIdempotent(t *testing.T) {
	p, err := New(2)
	require.NoError(t, err)
	defer p.Shutdown()

	// An idle pool is already quiescent; repeated waits must not block.
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Wait())
	}
}

func TestSubmitNilTask(t *testing.T) {
	p, err := New(1)
	require.NoError(t, err)
	defer p.Shutdown()
	require.ErrorIs(t, p.Submit(nil), ErrNilTask)
}

func TestSubmitAfterShutdown(t *testing.T) {
	p, err := New(1)
	require.NoError(t, err)
	p.Shutdown()
	require.ErrorIs(t, p.Submit(func() error { return nil }), ErrClosed)
}

func TestShutdownIsIdempotent(t *testing.T) {
	p, err := New(2)
	require.NoError(t, err)
	p.Shutdown()
	p.Shutdown()
}

// TestShutdownAbandonsQueuedTasks blocks the only worker, queues more work,
// and requires that shutdown drops the queued tasks without running them.
func TestShutdownAbandonsQueuedTasks(t *testing.T) {
	p, err := New(1)
	require.NoError(t, err)

	gate := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, p.Submit(func() error {
		close(started)
		<-gate
		return nil
	}))
	<-started

	var ran atomic.Int64
	for i := 0; i < 8; i++ {
		require.NoError(t, p.Submit(func() error {
			ran.Add(1)
			return nil
		}))
	}

	done := make(chan struct{})
	go func() {
		p.Shutdown()
		close(done)
	}()

	// The queue is dropped as soon as the stop flag is set; only then may the
	// in-flight blocker be released, or the worker would drain the queue.
	require.Eventually(t, func() bool { return p.Queued() == 0 },
		time.Second, time.Millisecond)
	close(gate)
	<-done

	assert.Equal(t, int64(0), ran.Load(), "abandoned tasks must never run")
}

func TestWaitSurfacesTaskErrors(t *testing.T) {
	p, err := New(4)
	require.NoError(t, err)
	defer p.Shutdown()

	errBoom := errors.New("boom")
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Submit(func() error { return errBoom }))
	}
	require.NoError(t, p.Submit(func() error { return nil }))

	err = p.Wait()
	require.ErrorIs(t, err, errBoom)

	// The barrier drains collected errors; a clean round reports clean.
	require.NoError(t, p.Wait())
}

func TestWaitSurfacesTaskPanics(t *testing.T) {
	p, err := New(2)
	require.NoError(t, err)
	defer p.Shutdown()

	require.NoError(t, p.Submit(func() error { panic("kaboom") }))
	err = p.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task panic")
	assert.Contains(t, err.Error(), "kaboom")
}

func TestWaitContextDeadline(t *testing.T) {
	p, err := New(1)
	require.NoError(t, err)

	gate := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, p.Submit(func() error {
		close(started)
		<-gate
		return nil
	}))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, p.WaitContext(ctx), context.DeadlineExceeded)

	close(gate)
	require.NoError(t, p.Wait())
	p.Shutdown()
}

func TestWaitContextCompletes(t *testing.T) {
	p, err := New(4)
	require.NoError(t, err)
	defer p.Shutdown()

	var counter atomic.Int64
	for i := 0; i < 32; i++ {
		require.NoError(t, p.Submit(func() error {
			counter.Add(1)
			return nil
		}))
	}
	require.NoError(t, p.WaitContext(context.Background()))
	assert.Equal(t, int64(32), counter.Load())
}

func TestQueuedAndActiveCounters(t *testing.T) {
	p, err := New(1)
	require.NoError(t, err)

	gate := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, p.Submit(func() error {
		close(started)
		<-gate
		return nil
	}))
	<-started
	require.NoError(t, p.Submit(func() error { return nil }))

	assert.Equal(t, 1, p.Active())
	assert.Equal(t, 1, p.Queued())

	close(gate)
	require.NoError(t, p.Wait())
	assert.Equal(t, 0, p.Active())
	assert.Equal(t, 0, p.Queued())
	p.Shutdown()
}

func BenchmarkSubmitWait(b *testing.B) {
	p := NewDefault()
	defer p.Shutdown()

	var sink atomic.Int64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for t := 0; t < p.Workers(); t++ {
			_ = p.Submit(func() error {
				sink.Add(1)
				return nil
			})
		}
		_ = p.Wait()
	}
}
