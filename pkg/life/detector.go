package life

import (
	"fmt"

	"lifelab/pkg/core"
)

// HistoryDepth bounds the fingerprint window. Periods longer than this are
// never detected and fingerprint collisions can misclassify a state; the
// detector is deliberately approximate.
const HistoryDepth = 10

// End-reason strings surfaced to consumers. These are part of the interface
// contract, not free-form diagnostics.
const (
	ReasonExtinction = "EXTINCTION - all cells dead"
	ReasonStable     = "STABLE STATE - pattern unchanged"
	reasonPeriodicF  = "PERIODIC LOOP - period of %d generations"
)

// PeriodicReason formats the end reason for an orbit of the given period.
func PeriodicReason(period int) string {
	return fmt.Sprintf(reasonPeriodicF, period)
}

// Fingerprint hashes the set of alive-cell positions with a base-31
// polynomial over row-major linear indices, truncated to 32 bits. Dead cells
// contribute nothing, so two grids with the same alive set hash identically
// regardless of how their dead bytes are encoded.
func Fingerprint(cells []uint8) uint32 {
	var h uint32
	for i, v := range cells {
		if core.IsAlive(v) {
			h = h*31 + uint32(i)
		}
	}
	return h
}

// Detector classifies terminal dynamical regimes from a bounded FIFO of past
// state fingerprints. It holds fingerprints produced since the last reseed
// only.
type Detector struct {
	history []uint32
}

// NewDetector returns an empty detector.
func NewDetector() *Detector {
	return &Detector{history: make([]uint32, 0, HistoryDepth)}
}

// Reset drops all history. Call on any reseed.
func (d *Detector) Reset() {
	d.history = d.history[:0]
}

// Observe inspects one completed generation and reports whether it is a
// terminal state. aliveCount and fp must describe the same grid contents.
//
// A fingerprint matching the most recent history entry means the previous
// generation already had this exact state (fixed point). A match further
// back at distance d means the state recurs with period d. An unmatched
// fingerprint is appended, evicting the oldest entry past HistoryDepth.
func (d *Detector) Observe(aliveCount int, fp uint32) (ended bool, reason string) {
	if aliveCount == 0 {
		return true, ReasonExtinction
	}
	for i, past := range d.history {
		if past != fp {
			continue
		}
		if i == len(d.history)-1 {
			return true, ReasonStable
		}
		return true, PeriodicReason(len(d.history) - i)
	}
	d.history = append(d.history, fp)
	if len(d.history) > HistoryDepth {
		d.history = d.history[1:]
	}
	return false, ""
}

// Depth returns the number of fingerprints currently held.
func (d *Detector) Depth() int { return len(d.history) }
