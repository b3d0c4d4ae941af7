package life

import (
	"testing"

	"lifelab/pkg/core"
)

func TestDetectorExtinctionWinsOverHistory(t *testing.T) {
	d := NewDetector()
	if ended, reason := d.Observe(0, 12345); !ended || reason != ReasonExtinction {
		t.Fatalf("Observe(0, _) = (%v, %q), want extinction", ended, reason)
	}
}

func TestDetectorStableOnImmediateRepeat(t *testing.T) {
	d := NewDetector()
	if ended, _ := d.Observe(4, 7); ended {
		t.Fatal("first observation must not end the run")
	}
	ended, reason := d.Observe(4, 7)
	if !ended || reason != ReasonStable {
		t.Fatalf("repeat observation = (%v, %q), want (true, %q)", ended, reason, ReasonStable)
	}
}

func TestDetectorPeriodIsDistanceFromMatch(t *testing.T) {
	d := NewDetector()
	for fp := uint32(1); fp <= 5; fp++ {
		if ended, _ := d.Observe(3, fp); ended {
			t.Fatalf("distinct fingerprint %d ended the run", fp)
		}
	}
	// Fingerprint 1 sits 5 entries back.
	ended, reason := d.Observe(3, 1)
	if !ended || reason != PeriodicReason(5) {
		t.Fatalf("verdict = (%v, %q), want (true, %q)", ended, reason, PeriodicReason(5))
	}
}

func TestDetectorWindowEvictsOldest(t *testing.T) {
	d := NewDetector()
	for fp := uint32(1); fp <= uint32(HistoryDepth)+1; fp++ {
		if ended, _ := d.Observe(3, fp); ended {
			t.Fatalf("distinct fingerprint %d ended the run", fp)
		}
	}
	if got := d.Depth(); got != HistoryDepth {
		t.Fatalf("history depth = %d, want %d", got, HistoryDepth)
	}
	// Fingerprint 1 was evicted, so an orbit of period HistoryDepth+1 goes
	// unnoticed. That bound is part of the detector's contract.
	if ended, _ := d.Observe(3, 1); ended {
		t.Fatal("evicted fingerprint must not be matched")
	}
}

func TestDetectorResetDropsHistory(t *testing.T) {
	d := NewDetector()
	d.Observe(3, 42)
	d.Reset()
	if got := d.Depth(); got != 0 {
		t.Fatalf("depth after Reset = %d, want 0", got)
	}
	if ended, _ := d.Observe(3, 42); ended {
		t.Fatal("pre-reset fingerprints must not be matched")
	}
}

func TestFingerprintCountsAliveCellsOnly(t *testing.T) {
	a := []uint8{0, core.CellAlive, 0, 0, core.CellAlive, 0}
	// Same alive set under sloppier channel encodings.
	b := []uint8{10, 200, 90, 0, core.CellAlive, 128}
	if Fingerprint(a) != Fingerprint(b) {
		t.Fatal("fingerprint must depend only on the alive set")
	}

	c := []uint8{core.CellAlive, 0, 0, 0, core.CellAlive, 0}
	if Fingerprint(a) == Fingerprint(c) {
		t.Fatal("different alive sets should not collide here")
	}
}

func TestFingerprintPolynomialForm(t *testing.T) {
	cells := make([]uint8, 100)
	cells[3] = core.CellAlive
	cells[17] = core.CellAlive
	cells[64] = core.CellAlive

	want := uint32(0)
	for _, idx := range []uint32{3, 17, 64} {
		want = want*31 + idx
	}
	if got := Fingerprint(cells); got != want {
		t.Fatalf("Fingerprint = %d, want %d", got, want)
	}
}
