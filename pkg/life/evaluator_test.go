package life

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestNewEvaluatorRejectsNegativeWorkers(t *testing.T) {
	if _, err := NewEvaluator(-1); !errors.Is(err, ErrEvaluatorFailure) {
		t.Fatalf("NewEvaluator(-1) err = %v, want ErrEvaluatorFailure", err)
	}
}

func TestNewEvaluatorDefaultsWorkers(t *testing.T) {
	ev, err := NewEvaluator(0)
	if err != nil {
		t.Fatalf("NewEvaluator(0): %v", err)
	}
	if ev.Workers() <= 0 {
		t.Fatalf("Workers() = %d, want > 0", ev.Workers())
	}
}

func TestDispatchVisitsEveryCellExactlyOnce(t *testing.T) {
	const w, h = 37, 53 // deliberately not divisible by typical worker counts
	for _, workers := range []int{1, 2, 7, 64} {
		ev, err := NewEvaluator(workers)
		if err != nil {
			t.Fatalf("NewEvaluator(%d): %v", workers, err)
		}
		visits := make([]int32, w*h)
		if err := ev.Dispatch(w, h, func(x, y int) {
			atomic.AddInt32(&visits[y*w+x], 1)
		}); err != nil {
			t.Fatalf("Dispatch with %d workers: %v", workers, err)
		}
		for i, n := range visits {
			if n != 1 {
				t.Fatalf("cell %d visited %d times with %d workers", i, n, workers)
			}
		}
	}
}

func TestDispatchRejectsEmptyGrid(t *testing.T) {
	ev, err := NewEvaluator(2)
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}
	if err := ev.Dispatch(0, 8, func(int, int) {}); !errors.Is(err, ErrEvaluatorFailure) {
		t.Fatalf("Dispatch on empty grid err = %v, want ErrEvaluatorFailure", err)
	}
}

func TestDispatchReportsKernelPanic(t *testing.T) {
	ev, err := NewEvaluator(4)
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}
	err = ev.Dispatch(16, 16, func(x, y int) {
		if x == 7 && y == 9 {
			panic("kernel blew up")
		}
	})
	if !errors.Is(err, ErrEvaluatorFailure) {
		t.Fatalf("Dispatch err = %v, want ErrEvaluatorFailure", err)
	}
}
