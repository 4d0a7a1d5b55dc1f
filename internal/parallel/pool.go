// Package parallel provides a bounded worker pool for running independent
// checks concurrently.
package parallel

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Result records the outcome of one submitted function.
type Result struct {
	ID       string
	Err      error
	Duration time.Duration
}

// Pool runs submitted functions with bounded concurrency.
type Pool struct {
	maxWorkers int
	semaphore  chan struct{}
	wg         sync.WaitGroup
	mu         sync.Mutex
	results    []Result
	errs       []error
	failFast   bool
	ctx        context.Context
	cancel     context.CancelFunc
}

// New creates a pool that runs at most maxWorkers functions at once.
// A maxWorkers of 0 means unbounded. With failFast, the first error
// cancels the work that has not started yet.
func New(ctx context.Context, maxWorkers int, failFast bool) *Pool {
	ctx, cancel := context.WithCancel(ctx)
	return &Pool{
		maxWorkers: maxWorkers,
		semaphore:  make(chan struct{}, maxWorkers),
		failFast:   failFast,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Submit schedules fn under the given id. Submission never blocks; the
// worker waits for a free slot before running.
func (p *Pool) Submit(id string, fn func() error) {
	select {
	case <-p.ctx.Done():
		return
	default:
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		if p.maxWorkers > 0 {
			select {
			case p.semaphore <- struct{}{}:
				defer func() { <-p.semaphore }()
			case <-p.ctx.Done():
				return
			}
		}

		select {
		case <-p.ctx.Done():
			return
		default:
		}

		start := time.Now()
		err := fn()

		p.mu.Lock()
		defer p.mu.Unlock()

		p.results = append(p.results, Result{ID: id, Err: err, Duration: time.Since(start)})
		if err != nil {
			p.errs = append(p.errs, fmt.Errorf("%s: %w", id, err))
			if p.failFast {
				p.cancel()
			}
		}
	}()
}

// Wait blocks until all submitted work has finished and returns the
// collected results and errors.
func (p *Pool) Wait() ([]Result, []error) {
	p.wg.Wait()
	p.cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	results := make([]Result, len(p.results))
	copy(results, p.results)
	errs := make([]error, len(p.errs))
	copy(errs, p.errs)
	return results, errs
}
