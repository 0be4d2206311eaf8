package rowan

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

// captureStderr runs fn and returns everything it wrote to os.Stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func TestTickStats_RecordAndTotal(t *testing.T) {
	var s tickStats
	s.record(PhaseInput, 1*time.Millisecond)
	s.record(PhaseState, 2*time.Millisecond)
	s.record(PhaseRender, 3*time.Millisecond)

	if s.inputTime != 1*time.Millisecond {
		t.Errorf("inputTime = %v, want 1ms", s.inputTime)
	}
	if s.stateTime != 2*time.Millisecond {
		t.Errorf("stateTime = %v, want 2ms", s.stateTime)
	}
	if s.renderTime != 3*time.Millisecond {
		t.Errorf("renderTime = %v, want 3ms", s.renderTime)
	}
	if s.total() != 6*time.Millisecond {
		t.Errorf("total() = %v, want 6ms", s.total())
	}
}

func TestLoop_DebugLogPrintsPhaseTimings(t *testing.T) {
	loop := NewLoop(nopInput(), nopState(), nopDisplay())
	loop.SetDebugMode(true)
	defer loop.SetDebugMode(false)
	loop.Start()

	output := captureStderr(t, func() {
		tick(t, loop)
		tick(t, loop)
	})

	if !strings.Contains(output, "[rowan] tick 1 |") {
		t.Errorf("expected tick 1 stats in stderr, got: %q", output)
	}
	if !strings.Contains(output, "[rowan] tick 2 |") {
		t.Errorf("expected tick 2 stats in stderr, got: %q", output)
	}
	if !strings.Contains(output, "input:") || !strings.Contains(output, "render:") {
		t.Errorf("expected per-phase timings in stderr, got: %q", output)
	}
}

func TestLoop_DebugLogWarnsOnSlowTick(t *testing.T) {
	loop := NewLoop(nopInput(), nopState(), nopDisplay())
	loop.SetDebugMode(true)
	defer loop.SetDebugMode(false)
	loop.stats = tickStats{tick: 7, stateTime: debugSlowTick + 10*time.Millisecond}

	output := captureStderr(t, func() {
		loop.debugLog()
	})

	if !strings.Contains(output, "warning: tick 7 took") {
		t.Errorf("expected slow-tick warning in stderr, got: %q", output)
	}
}

func TestLoop_NoDebugOutputWhenDisabled(t *testing.T) {
	loop := NewLoop(nopInput(), nopState(), nopDisplay())
	loop.Start()

	output := captureStderr(t, func() {
		tick(t, loop)
		loop.debugLog()
	})

	if output != "" {
		t.Errorf("debug output while disabled: %q", output)
	}
}
