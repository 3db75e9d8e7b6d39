package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ScanlineFunc renders a single row
type ScanlineFunc func(y int) (ScanlineStats, error)

// ScanlineResult contains the result from rendering a row
type ScanlineResult struct {
	Stats ScanlineStats
	Error error
}

// WorkerPool renders rows in parallel. Rows must not share mutable state
// other than the surface, which is written one row per task.
type WorkerPool struct {
	numWorkers int
	render     ScanlineFunc
}

// NewWorkerPool creates a pool of numWorkers goroutines (0 = CPU count)
func NewWorkerPool(numWorkers int, render ScanlineFunc) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers, render: render}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every row in rows. onResult, if non-nil, is called from the
// calling goroutine once per finished row, in completion order. The first
// row error or a cancelled context stops the remaining work.
func (wp *WorkerPool) Run(ctx context.Context, rows []int, onResult func(ScanlineResult)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(ctx)

	taskQueue := make(chan int)
	resultQueue := make(chan ScanlineResult, wp.numWorkers)

	g.Go(func() error {
		defer close(taskQueue)
		for _, y := range rows {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case taskQueue <- y:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < wp.numWorkers; i++ {
		g.Go(func() error {
			for y := range taskQueue {
				stats, err := wp.render(y)
				select {
				case resultQueue <- ScanlineResult{Stats: stats, Error: err}:
				case <-ctx.Done():
					return ctx.Err()
				}
				if err != nil {
					return err
				}
			}
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(resultQueue)
	}()

	for result := range resultQueue {
		if onResult != nil && result.Error == nil {
			onResult(result)
		}
	}

	return g.Wait()
}
