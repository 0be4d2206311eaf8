package rowan

import (
	"fmt"
	"os"
	"time"
)

// tickStats holds per-tick phase timings.
// Only populated when Loop.debug is true.
type tickStats struct {
	tick       uint64
	inputTime  time.Duration
	stateTime  time.Duration
	renderTime time.Duration
}

func (s *tickStats) record(p Phase, d time.Duration) {
	switch p {
	case PhaseInput:
		s.inputTime = d
	case PhaseState:
		s.stateTime = d
	case PhaseRender:
		s.renderTime = d
	}
}

func (s *tickStats) total() time.Duration {
	return s.inputTime + s.stateTime + s.renderTime
}

// debugSlowTick is the total phase time above which a tick is flagged slow.
// At 60 ticks per second the budget is ~16ms; double that before warning.
const debugSlowTick = 33 * time.Millisecond

// debugLog prints the current tick's phase timings to stderr.
func (l *Loop) debugLog() {
	if !l.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[rowan] tick %d | input: %v | state: %v | render: %v | total: %v\n",
		l.stats.tick, l.stats.inputTime, l.stats.stateTime, l.stats.renderTime, l.stats.total())
	if l.stats.total() > debugSlowTick {
		_, _ = fmt.Fprintf(os.Stderr,
			"[rowan] warning: tick %d took %v (threshold %v)\n",
			l.stats.tick, l.stats.total(), debugSlowTick)
	}
}
