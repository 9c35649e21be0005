// Package worker provides a worker pool for parallel candidate verification.
package worker

import (
	"context"
	"sync"

	"github.com/lgbarn/chesspuzzle-go/internal/puzzle"
)

// WorkItem represents a candidate to be verified.
type WorkItem struct {
	Candidate *puzzle.Candidate
	Index     int // Original index for tracking
}

// ProcessResult represents the result of verifying a candidate.
type ProcessResult struct {
	Index        int
	Verification *puzzle.Verification // nil when Error is set
	Error        error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc on a fixed number of worker goroutines. It holds
// no per-run state, so Map may be called repeatedly.
type Pool struct {
	numWorkers  int
	bufferSize  int
	processFunc ProcessFunc
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// BufferSize returns the channel buffer size.
func (p *Pool) BufferSize() int {
	return p.bufferSize
}

// Map runs every item through the pool and returns the results in item
// order. Once ctx is done no further items are processed; those get a
// result carrying ctx.Err().
func (p *Pool) Map(ctx context.Context, items []WorkItem) []ProcessResult {
	work := make(chan WorkItem, p.bufferSize)
	out := make(chan ProcessResult, p.bufferSize)

	var wg sync.WaitGroup
	for i := 0; i < p.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range work {
				if ctx.Err() != nil {
					continue // Drain without processing
				}
				out <- p.processFunc(item)
			}
		}()
	}

	go func() {
		defer func() {
			close(work)
			wg.Wait()
			close(out)
		}()
		for _, item := range items {
			if ctx.Err() != nil {
				return
			}
			select {
			case work <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	results := make([]ProcessResult, len(items))
	done := make([]bool, len(items))
	for r := range out {
		if r.Index >= 0 && r.Index < len(results) {
			results[r.Index] = r
			done[r.Index] = true
		}
	}

	for i, ok := range done {
		if !ok {
			results[i] = ProcessResult{Index: i, Error: contextErr(ctx)}
		}
	}
	return results
}

func contextErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return context.Canceled
}
