package rowan

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputManager is the input-acquisition capability, invoked first each tick.
type InputManager interface {
	ProcessInput() error
}

// StateManager advances the simulation, invoked after input and before
// render each tick. The simulation state it owns is opaque to the loop.
type StateManager interface {
	UpdateState() error
}

// DisplayManager renders the frame, invoked last each tick. Initialize runs
// once when the loop starts; an Initialize failure is logged and does not
// prevent the loop from running.
type DisplayManager interface {
	Initialize() error
	Render(screen *ebiten.Image) error
}

// InputFunc adapts a plain function to InputManager.
type InputFunc func() error

// ProcessInput calls f.
func (f InputFunc) ProcessInput() error { return f() }

// StateFunc adapts a plain function to StateManager.
type StateFunc func() error

// UpdateState calls f.
func (f StateFunc) UpdateState() error { return f() }

// DisplayFunc adapts a render function to DisplayManager with a no-op
// Initialize.
type DisplayFunc func(screen *ebiten.Image) error

// Initialize does nothing.
func (f DisplayFunc) Initialize() error { return nil }

// Render calls f.
func (f DisplayFunc) Render(screen *ebiten.Image) error { return f(screen) }

// Phase identifies one stage of a tick.
type Phase uint8

const (
	PhaseInput  Phase = iota // input acquisition
	PhaseState               // simulation advance
	PhaseRender              // frame rendering
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseState:
		return "state"
	case PhaseRender:
		return "render"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// PhaseError is the captured outcome of a failed tick phase: which phase,
// on which tick, and the failure itself (a returned error, or a recovered
// panic wrapped into one).
type PhaseError struct {
	Phase Phase
	Tick  uint64
	Err   error
}

// Error implements the error interface.
func (e *PhaseError) Error() string {
	return fmt.Sprintf("rowan: %s phase failed on tick %d: %v", e.Phase, e.Tick, e.Err)
}

// Unwrap returns the underlying phase failure.
func (e *PhaseError) Unwrap() error { return e.Err }

// LoopState is the loop's lifecycle state.
type LoopState uint8

const (
	LoopIdle    LoopState = iota // constructed, not yet started
	LoopRunning                  // started; runs until the host exits
)

// String returns the state name.
func (s LoopState) String() string {
	switch s {
	case LoopIdle:
		return "idle"
	case LoopRunning:
		return "running"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Loop drives the fixed per-tick sequence input → state → render across its
// three injected managers. It implements ebiten.Game: the engine schedules
// every tick before the previous tick's outcome is known, and the Loop never
// lets a phase failure cross the Game boundary, so one bad tick cannot stop
// the ticks after it. A failing phase is captured, reported, and the rest of
// that tick is skipped; the next tick starts fresh at input.
//
// A Loop is single-threaded: all methods are called from the engine's run
// loop (or from a test driving Update/Draw directly).
type Loop struct {
	input   InputManager
	state   StateManager
	display DisplayManager

	status     LoopState
	ticks      uint64
	skipRender bool // an earlier phase failed this tick
	quit       bool // a phase requested host shutdown

	width, height int
	showFPS       bool
	fps           fpsOverlay

	onError func(*PhaseError)
	debug   bool
	stats   tickStats
}

// NewLoop creates a loop owning references to its three manager
// collaborators. All three must be non-nil; assembling partial loops from
// closures is what the InputFunc/StateFunc/DisplayFunc adapters are for.
func NewLoop(input InputManager, state StateManager, display DisplayManager) *Loop {
	if input == nil || state == nil || display == nil {
		panic("rowan: NewLoop requires non-nil input, state, and display managers")
	}
	return &Loop{input: input, state: state, display: display}
}

// Start transitions the loop from idle to running. The display manager is
// initialized exactly once here; if Initialize fails (or panics), the
// failure is logged and the loop starts anyway — input and state keep
// ticking even when the display could not set itself up. Calling Start on
// a loop that is already running is a no-op.
func (l *Loop) Start() {
	if l.status != LoopIdle {
		return
	}
	if err := guard(l.display.Initialize); err != nil {
		log.Printf("rowan: display initialize failed: %v (loop starting anyway)", err)
	}
	l.status = LoopRunning
}

// State returns the loop's lifecycle state.
func (l *Loop) State() LoopState {
	return l.status
}

// TickCount returns the number of ticks begun since Start.
func (l *Loop) TickCount() uint64 {
	return l.ticks
}

// SetSize fixes the loop's logical screen size. When unset, Layout mirrors
// the outside size. Run sets this from its RunConfig.
func (l *Loop) SetSize(width, height int) {
	l.width, l.height = width, height
}

// SetShowFPS toggles the FPS/TPS overlay drawn after the render phase.
func (l *Loop) SetShowFPS(show bool) {
	l.showFPS = show
}

// SetErrorHandler replaces the default phase-failure report (a standard-log
// line) with fn. The handler runs synchronously on the game loop thread;
// a nil fn restores the default.
func (l *Loop) SetErrorHandler(fn func(*PhaseError)) {
	l.onError = fn
}

// SetDebugMode enables or disables debug mode. When enabled, per-tick phase
// timings are printed to stderr and sprite-sheet lookup misses are logged.
func (l *Loop) SetDebugMode(enabled bool) {
	l.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Loop debug flag so that
// sheet lookups (which lack a Loop pointer) can check it cheaply. Only
// valid with a single Loop; multiple Loops with differing debug modes
// will reflect whichever called SetDebugMode last.
var globalDebug bool

// Update runs the input and state phases of one tick. It implements
// ebiten.Game; the engine calls it once per tick while the loop is the
// running game. A phase failure marks the rest of the tick skipped and
// Update still returns nil — the only error Update ever returns is
// ebiten.Termination, passed through when a phase asks the host to quit.
func (l *Loop) Update() error {
	if l.status != LoopRunning {
		return nil
	}
	if l.quit {
		return ebiten.Termination
	}

	l.ticks++
	l.skipRender = false
	if l.debug {
		l.stats = tickStats{tick: l.ticks}
	}

	if err := l.runPhase(PhaseInput, l.input.ProcessInput); err != nil {
		return l.failTick(PhaseInput, err)
	}
	if err := l.runPhase(PhaseState, l.state.UpdateState); err != nil {
		return l.failTick(PhaseState, err)
	}
	return nil
}

// Draw runs the render phase of the current tick, unless an earlier phase
// already failed it. It implements ebiten.Game.
func (l *Loop) Draw(screen *ebiten.Image) {
	if l.status != LoopRunning {
		return
	}

	if !l.skipRender {
		err := l.runPhase(PhaseRender, func() error { return l.display.Render(screen) })
		switch {
		case err == nil:
		case errors.Is(err, ebiten.Termination):
			// Honored at the top of the next Update; Draw cannot return it.
			l.quit = true
		default:
			l.report(&PhaseError{Phase: PhaseRender, Tick: l.ticks, Err: err})
		}
	}

	if l.showFPS {
		l.fps.draw(screen)
	}
	if l.debug {
		l.debugLog()
	}
}

// Layout implements ebiten.Game, reporting the fixed logical size set via
// SetSize, or the outside size when none is set.
func (l *Loop) Layout(outsideWidth, outsideHeight int) (int, int) {
	if l.width > 0 && l.height > 0 {
		return l.width, l.height
	}
	return outsideWidth, outsideHeight
}

// failTick handles a failed Update-side phase: termination requests pass
// through to the engine, anything else is reported and the remaining phases
// of this tick are skipped. The loop itself always keeps running.
func (l *Loop) failTick(p Phase, err error) error {
	if errors.Is(err, ebiten.Termination) {
		return err
	}
	l.skipRender = true
	l.report(&PhaseError{Phase: p, Tick: l.ticks, Err: err})
	return nil
}

// runPhase executes one phase under the panic guard, timing it in debug mode.
func (l *Loop) runPhase(p Phase, fn func() error) error {
	if !l.debug {
		return guard(fn)
	}
	t0 := time.Now()
	err := guard(fn)
	l.stats.record(p, time.Since(t0))
	return err
}

// report delivers a PhaseError to the configured handler, or to the
// standard logger when none is set. A panicking handler is contained the
// same way a panicking phase is.
func (l *Loop) report(e *PhaseError) {
	if l.onError == nil {
		log.Print(e)
		return
	}
	if err := guard(func() error { l.onError(e); return nil }); err != nil {
		log.Printf("rowan: error handler failed: %v", err)
	}
}

// guard runs fn, converting a panic into an error so that nothing unwinds
// across the loop into the engine.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
