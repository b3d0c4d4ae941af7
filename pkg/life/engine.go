package life

import (
	"fmt"
	"sync"

	"lifelab/pkg/core"
)

// DefaultFillProbability is the alive density used by seed operations that
// do not specify one.
const DefaultFillProbability = 0.3

// Config controls engine construction.
type Config struct {
	Width  int
	Height int

	// Workers is the parallel evaluator size; 0 selects one per CPU.
	Workers int

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 512, Height: 512, Workers: 0, Seed: 42}
}

// Status is the engine state reported to control and render layers.
type Status struct {
	Generation int
	AliveCount int
	HasEnded   bool
	EndReason  string
}

// Engine owns the authoritative grid state and advances it one generation at
// a time. All operations on one engine share a single exclusion domain: a
// step, a seed, an edit or a read-back never overlaps another. Within a
// step the per-cell evaluation is lock-free by construction (see Evaluator).
type Engine struct {
	mu sync.Mutex

	bufs *BufferPair
	eval *Evaluator
	det  *Detector
	rng  *core.RNG

	generation int
	aliveCount int
	hasEnded   bool
	endReason  string

	// checkedGen marks the newest generation the detector has observed, so
	// polling CheckTermination between steps cannot feed the same state
	// into the history twice.
	checkedGen int
}

// New constructs an engine with default workers and seed.
func New(w, h int) (*Engine, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig constructs an engine. Dimensions must be positive and the
// evaluator must come up; both failures abort construction.
func NewWithConfig(cfg Config) (*Engine, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrConfiguration, cfg.Width, cfg.Height)
	}
	eval, err := NewEvaluator(cfg.Workers)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		bufs: NewBufferPair(cfg.Width, cfg.Height),
		eval: eval,
		det:  NewDetector(),
		rng:  core.NewRNG(cfg.Seed),
	}
	e.reseed()
	return e, nil
}

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size {
	e.mu.Lock()
	defer e.mu.Unlock()
	g := e.bufs.Read()
	return core.Size{W: g.W, H: g.H}
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Cells exposes the current read buffer for a render layer. The returned
// slice is a view, not a copy; consumers must treat it as read-only.
func (e *Engine) Cells() []uint8 { return e.ReadBuffer() }

// ReadBuffer returns a read-only view of the current state. The view is only
// stable on the goroutine driving the engine: after the next Step the grid
// behind it becomes the write target. Consumers on other goroutines must use
// Snapshot instead.
func (e *Engine) ReadBuffer() []uint8 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bufs.Read().Cells()
}

// Snapshot returns a copy of the current state. Unlike ReadBuffer, the copy
// stays valid while other goroutines keep stepping or editing the engine.
func (e *Engine) Snapshot() []uint8 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bufs.Snapshot()
}

// Reset reseeds the RNG and randomizes the board at the default density.
func (e *Engine) Reset(seed int64) {
	e.mu.Lock()
	e.rng = core.NewRNG(seed)
	e.mu.Unlock()
	e.Randomize(DefaultFillProbability)
}

// Randomize seeds every cell alive with independent probability p.
func (e *Engine) Randomize(p float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	core.FillBernoulli(e.rng.Source(), e.bufs.Read().Cells(), p)
	e.reseed()
}

// Clear kills every cell.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bufs.Read().Clear()
	e.reseed()
}

// LoadPattern clears the grid and places the named catalog pattern centered
// on it. Offsets falling outside the grid are silently dropped. An unknown
// name returns ErrPatternNotFound and leaves all state untouched.
func (e *Engine) LoadPattern(name string) error {
	p, ok := LookupPattern(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrPatternNotFound, name)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	g := e.bufs.Read()
	g.Clear()

	minX, minY, maxX, maxY := p.Bounds()
	originX := g.W/2 - (maxX-minX+1)/2
	originY := g.H/2 - (maxY-minY+1)/2
	for _, c := range p.Cells {
		x := originX + c.X - minX
		y := originY + c.Y - minY
		if x < 0 || x >= g.W || y < 0 || y >= g.H {
			continue
		}
		g.Cells()[g.Index(x, y)] = core.CellAlive
	}
	e.reseed()
	return nil
}

// DrawCell sets a single cell. Coordinates outside the grid are a no-op.
// The edit is a full snapshot, single-cell mutation and full restore; it is
// a correctness-first path and not meant for bulk writes.
func (e *Engine) DrawCell(x, y int, alive bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	g := e.bufs.Read()
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return
	}
	cells := e.bufs.Snapshot()
	if alive {
		cells[g.Index(x, y)] = core.CellAlive
	} else {
		cells[g.Index(x, y)] = core.CellDead
	}
	e.bufs.Restore(cells)
	e.reseed()
}

// Step advances exactly one generation: a full kernel pass from the read
// buffer into the write buffer followed by an atomic role swap. It does not
// report termination; see CheckTermination.
func (e *Engine) Step() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	read, write := e.bufs.Read(), e.bufs.Write()
	if err := e.eval.Dispatch(read.W, read.H, func(x, y int) {
		transitionCell(read, write, x, y)
	}); err != nil {
		// The write buffer may hold a partial pass; the read buffer is
		// untouched, so the observable state stays at the old generation.
		return err
	}
	e.bufs.Swap()
	e.generation++
	e.aliveCount = e.bufs.Read().CountAlive()
	return nil
}

// CheckTermination classifies the current state as EXTINCT, STABLE or
// PERIODIC using the bounded fingerprint history. Once ended, the verdict is
// sticky until the next seed or edit. Each generation is observed at most
// once, so calling this repeatedly without stepping is harmless.
func (e *Engine) CheckTermination() (bool, string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.hasEnded {
		return true, e.endReason
	}

	e.aliveCount = e.bufs.Read().CountAlive()
	if e.aliveCount == 0 {
		e.hasEnded = true
		e.endReason = ReasonExtinction
		return true, e.endReason
	}
	if e.checkedGen == e.generation {
		return false, ""
	}
	e.checkedGen = e.generation

	ended, reason := e.det.Observe(e.aliveCount, Fingerprint(e.bufs.Read().Cells()))
	if ended {
		e.hasEnded = true
		e.endReason = reason
	}
	return ended, reason
}

// Query reports the engine state for a control layer.
func (e *Engine) Query() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Status{
		Generation: e.generation,
		AliveCount: e.aliveCount,
		HasEnded:   e.hasEnded,
		EndReason:  e.endReason,
	}
}

// reseed resets run-scoped state after any seed or edit. Callers hold e.mu.
func (e *Engine) reseed() {
	e.generation = 0
	e.aliveCount = e.bufs.Read().CountAlive()
	e.hasEnded = false
	e.endReason = ""
	e.checkedGen = -1
	e.det.Reset()
}
