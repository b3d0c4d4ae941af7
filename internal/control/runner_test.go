package control

import (
	"testing"
	"time"

	"lifelab/pkg/core"
	"lifelab/pkg/life"
)

func newRunner(t *testing.T, pattern string, interval time.Duration) *Runner {
	t.Helper()
	eng, err := life.New(16, 16)
	if err != nil {
		t.Fatalf("life.New: %v", err)
	}
	if pattern != "" {
		if err := eng.LoadPattern(pattern); err != nil {
			t.Fatalf("LoadPattern(%q): %v", pattern, err)
		}
	}
	return NewRunner(eng, interval, 0)
}

func TestStepOnceRunsDetection(t *testing.T) {
	r := newRunner(t, "block", time.Millisecond)
	if err := r.StepOnce(); err != nil {
		t.Fatalf("StepOnce: %v", err)
	}
	if err := r.StepOnce(); err != nil {
		t.Fatalf("StepOnce: %v", err)
	}
	st := r.Engine().Query()
	if !st.HasEnded || st.EndReason != life.ReasonStable {
		t.Fatalf("block not detected as stable after two steps: %+v", st)
	}
}

func TestRunnerStopsOnTermination(t *testing.T) {
	r := newRunner(t, "block", time.Millisecond)
	r.Start()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if !r.Running() && r.Engine().Query().HasEnded {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("runner did not stop after the detector reported an end")
}

func TestSnapshotConsumerSeesWholeGenerations(t *testing.T) {
	// A glider keeps exactly 5 alive cells in every generation and never
	// terminates on this grid within the detector window, so any torn frame
	// read concurrently with the tick loop shows up as a different count.
	r := newRunner(t, "glider", time.Millisecond)
	r.Start()
	defer r.Stop()

	eng := r.Engine()
	deadline := time.Now().Add(200 * time.Millisecond)
	for time.Now().Before(deadline) {
		cells := eng.Snapshot()
		alive := 0
		for _, c := range cells {
			if core.IsAlive(c) {
				alive++
			}
		}
		if alive != 5 {
			t.Fatalf("torn frame: %d alive cells, want 5", alive)
		}
	}
}

func TestRunnerStopsAtStepLimit(t *testing.T) {
	eng, err := life.New(32, 32)
	if err != nil {
		t.Fatalf("life.New: %v", err)
	}
	if err := eng.LoadPattern("glider"); err != nil {
		t.Fatalf("LoadPattern: %v", err)
	}
	r := NewRunner(eng, time.Millisecond, 3)
	r.Start()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if !r.Running() {
			st := eng.Query()
			if st.HasEnded {
				t.Fatalf("glider must not terminate, got %+v", st)
			}
			if st.Generation != 3 {
				t.Fatalf("runner stopped at generation %d, want 3", st.Generation)
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("runner did not stop at the step limit")
}

func TestToggleCell(t *testing.T) {
	r := newRunner(t, "", time.Millisecond)
	r.Clear()

	r.ToggleCell(2, 3)
	if got := r.Engine().Query().AliveCount; got != 1 {
		t.Fatalf("alive count after toggle = %d, want 1", got)
	}
	r.ToggleCell(2, 3)
	if got := r.Engine().Query().AliveCount; got != 0 {
		t.Fatalf("alive count after second toggle = %d, want 0", got)
	}

	r.ToggleCell(-1, 99)
	if got := r.Engine().Query().AliveCount; got != 0 {
		t.Fatalf("out-of-grid toggle changed state, alive = %d", got)
	}
}

func TestSubscribeNotifiesOnCommands(t *testing.T) {
	r := newRunner(t, "blinker", time.Millisecond)

	var statuses []life.Status
	r.Subscribe(func(st life.Status) { statuses = append(statuses, st) })
	if len(statuses) != 1 {
		t.Fatalf("subscribe must emit the current status, got %d", len(statuses))
	}
	if err := r.StepOnce(); err != nil {
		t.Fatalf("StepOnce: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("step must notify listeners, got %d notifications", len(statuses))
	}
	if statuses[1].Generation != 1 {
		t.Fatalf("notified generation = %d, want 1", statuses[1].Generation)
	}
}
