package life

import (
	"fmt"
	"runtime"
	"sync"
)

// minRowsPerWorker keeps tiny grids from being shredded into bands smaller
// than the per-goroutine scheduling overhead is worth.
const minRowsPerWorker = 4

// Evaluator runs a per-cell kernel over the whole grid using a fixed number
// of row-band workers. Each worker writes a disjoint set of output cells and
// reads only the frozen read buffer, so a pass needs no locking; the only
// synchronization is the WaitGroup marking the pass boundary.
type Evaluator struct {
	workers int
}

// NewEvaluator constructs an evaluator. workers == 0 selects one worker per
// CPU; a negative count is a setup failure.
func NewEvaluator(workers int) (*Evaluator, error) {
	if workers < 0 {
		return nil, fmt.Errorf("%w: worker count %d", ErrEvaluatorFailure, workers)
	}
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	return &Evaluator{workers: workers}, nil
}

// Workers returns the configured worker count.
func (ev *Evaluator) Workers() int { return ev.workers }

// Dispatch evaluates kernel(x, y) for every cell of a w*h grid, split into
// contiguous row bands. It returns only after every cell has been evaluated.
// A panicking kernel is reported as an evaluator failure rather than tearing
// down the process; the pass still runs to completion on the other bands.
func (ev *Evaluator) Dispatch(w, h int, kernel func(x, y int)) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrEvaluatorFailure, w, h)
	}

	rowsPerWorker := h / ev.workers
	if rowsPerWorker < minRowsPerWorker {
		rowsPerWorker = minRowsPerWorker
	} else if rowsPerWorker*ev.workers < h {
		rowsPerWorker++
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for y0 := 0; y0 < h; y0 += rowsPerWorker {
		y1 := y0 + rowsPerWorker
		if y1 > h {
			y1 = h
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("%w: kernel panic: %v", ErrEvaluatorFailure, r)
					}
					mu.Unlock()
				}
			}()
			for y := y0; y < y1; y++ {
				for x := 0; x < w; x++ {
					kernel(x, y)
				}
			}
		}(y0, y1)
	}
	wg.Wait()
	return firstErr
}
