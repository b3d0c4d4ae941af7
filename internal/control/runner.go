// Package control drives the engine's tick cadence on behalf of a front
// end. The engine itself never blocks on a clock; everything time-based
// lives here.
package control

import (
	"sync"
	"time"

	"lifelab/pkg/core"
	"lifelab/pkg/life"
)

// Listener receives the engine status after every state change.
type Listener func(life.Status)

// Runner serializes step, seed and edit commands against one engine and
// optionally advances it on a fixed interval until the detector reports an
// end or the step limit is hit.
type Runner struct {
	eng      *life.Engine
	interval time.Duration
	maxSteps int

	mu        sync.Mutex
	running   bool
	stopCh    chan struct{}
	listeners []Listener
}

// NewRunner wraps an engine. maxSteps == 0 means unlimited.
func NewRunner(eng *life.Engine, interval time.Duration, maxSteps int) *Runner {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Runner{eng: eng, interval: interval, maxSteps: maxSteps}
}

// Engine exposes the wrapped engine for read-only consumers.
func (r *Runner) Engine() *life.Engine { return r.eng }

// Subscribe registers a status listener.
func (r *Runner) Subscribe(l Listener) {
	r.mu.Lock()
	r.listeners = append(r.listeners, l)
	r.mu.Unlock()
	l(r.eng.Query())
}

// Running reports whether the tick loop is active.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Start launches the tick loop. Calling it while running is a no-op.
func (r *Runner) Start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.stopCh = make(chan struct{})
	stopCh := r.stopCh
	r.mu.Unlock()

	go r.loop(stopCh)
}

// Stop halts the tick loop. Manual commands keep working afterwards.
func (r *Runner) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	close(r.stopCh)
	r.mu.Unlock()
	r.notify()
}

// StepOnce advances one generation and runs termination detection.
func (r *Runner) StepOnce() error {
	defer r.notify()
	if err := r.eng.Step(); err != nil {
		return err
	}
	r.eng.CheckTermination()
	return nil
}

// Randomize reseeds the grid with the given alive density.
func (r *Runner) Randomize(p float64) {
	r.eng.Randomize(p)
	r.notify()
}

// Clear kills every cell.
func (r *Runner) Clear() {
	r.eng.Clear()
	r.notify()
}

// LoadPattern places a catalog pattern; unknown names leave state untouched.
func (r *Runner) LoadPattern(name string) error {
	err := r.eng.LoadPattern(name)
	r.notify()
	return err
}

// ToggleCell flips a single cell. Out-of-grid coordinates are a no-op.
func (r *Runner) ToggleCell(x, y int) {
	size := r.eng.Size()
	if x < 0 || x >= size.W || y < 0 || y >= size.H {
		return
	}
	alive := core.IsAlive(r.eng.Snapshot()[y*size.W+x])
	r.eng.DrawCell(x, y, !alive)
	r.notify()
}

func (r *Runner) loop(stopCh chan struct{}) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if err := r.StepOnce(); err != nil {
				r.Stop()
				return
			}
			st := r.eng.Query()
			if st.HasEnded || (r.maxSteps > 0 && st.Generation >= r.maxSteps) {
				r.Stop()
				return
			}
		}
	}
}

func (r *Runner) notify() {
	r.mu.Lock()
	listeners := append([]Listener(nil), r.listeners...)
	r.mu.Unlock()
	st := r.eng.Query()
	for _, l := range listeners {
		l(st)
	}
}
