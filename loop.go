package blaze

import (
	"fmt"
	"os"
)

// LoopState is the scheduler's lifecycle state.
type LoopState uint8

const (
	// LoopStopped means the loop ignores host ticks entirely.
	LoopStopped LoopState = iota
	// LoopRunning means fixed and frame callbacks fire each host tick.
	LoopRunning
	// LoopPaused means host ticks still refresh the baseline timestamp but
	// no callbacks fire, so resuming does not produce one giant delta.
	LoopPaused
)

// String returns the state name for logs.
func (s LoopState) String() string {
	switch s {
	case LoopStopped:
		return "stopped"
	case LoopRunning:
		return "running"
	case LoopPaused:
		return "paused"
	default:
		return "unknown"
	}
}

const (
	minTargetFPS = 1
	maxTargetFPS = 120

	// defaultMaxAccumulator caps carried simulation backlog. A single slow
	// host tick can force at most maxAccumulator/fixedStep catch-up fixed
	// steps, which breaks the spiral of death: without the cap, a tick that
	// takes longer than the time it simulates queues ever more steps.
	defaultMaxAccumulator = 0.2
)

// LoopConfig configures a Loop. Zero values select the defaults.
type LoopConfig struct {
	// TargetFPS is the fixed-update rate. Defaults to 60, clamps to [1, 120].
	TargetFPS int
	// MaxAccumulator is the backlog cap in seconds. Defaults to 0.2, and is
	// floored at one fixed step so fixed updates always fire.
	MaxAccumulator float64
}

// Loop schedules a fixed simulation cadence against a variable host frame
// rate. The host calls [Loop.Tick] once per animation frame with the current
// time; the loop drains whole fixed steps from an accumulator, then fires
// the variable frame callback once.
//
// Loop is single-threaded: Tick and every state transition must come from
// the same goroutine (the host's frame callback). Stop and Pause take
// effect on the next host tick, never mid-frame.
type Loop struct {
	clock *Clock
	state LoopState

	targetFPS      int
	fixedStep      float64
	maxAccumulator float64

	accumulator float64
	lastTime    float64
	hasBaseline bool

	onFrame func(dt float64)
	onFixed func(dt float64)
}

// NewLoop creates a stopped Loop and its Clock.
func NewLoop(cfg LoopConfig) *Loop {
	fps := cfg.TargetFPS
	if fps == 0 {
		fps = 60
	}
	fps = clampFPS(fps)

	maxAcc := cfg.MaxAccumulator
	if maxAcc <= 0 {
		maxAcc = defaultMaxAccumulator
	}

	step := 1.0 / float64(fps)
	if maxAcc < step {
		// A cap below one fixed step would starve the simulation: the
		// accumulator could never reach a whole step.
		maxAcc = step
	}
	return &Loop{
		clock:          NewClock(step),
		targetFPS:      fps,
		fixedStep:      step,
		maxAccumulator: maxAcc,
	}
}

// Clock returns the loop's clock.
func (l *Loop) Clock() *Clock {
	return l.clock
}

// State returns the current lifecycle state.
func (l *Loop) State() LoopState {
	return l.state
}

// FixedStep returns the fixed-update step size in seconds (1/targetFPS).
func (l *Loop) FixedStep() float64 {
	return l.fixedStep
}

// TargetFPS returns the configured fixed-update rate.
func (l *Loop) TargetFPS() int {
	return l.targetFPS
}

// OnFrame registers the single variable-rate callback, invoked once per host
// tick after all fixed steps for that tick have run. Downstream fan-out
// (multiple subscribers) lives in [World].
func (l *Loop) OnFrame(cb func(dt float64)) {
	l.onFrame = cb
}

// OnFixedUpdate registers the single fixed-rate callback, invoked zero or
// more times per host tick, always with exactly the fixed step.
func (l *Loop) OnFixedUpdate(cb func(dt float64)) {
	l.onFixed = cb
}

// SetFPS changes the fixed-update rate. Values outside [1, 120] clamp with
// a warning. The fixed step becomes 1/fps and the clock is informed.
func (l *Loop) SetFPS(fps int) {
	clamped := clampFPS(fps)
	if clamped != fps {
		warnf("SetFPS(%d) out of range, clamped to %d", fps, clamped)
	}
	l.targetFPS = clamped
	l.fixedStep = 1.0 / float64(clamped)
	if l.maxAccumulator < l.fixedStep {
		l.maxAccumulator = l.fixedStep
	}
	l.clock.setFixedDelta(l.fixedStep)
}

// Start transitions Stopped or Paused to Running. The accumulator and
// baseline are zeroed so the first tick after Start produces a small delta;
// on the Stopped→Running edge the clock resets too. Calling Start while
// already running logs a warning and does nothing.
func (l *Loop) Start() {
	if l.state == LoopRunning {
		warnf("Start called while already running; ignored")
		return
	}
	if l.state == LoopStopped {
		l.clock.Reset()
	}
	l.accumulator = 0
	l.hasBaseline = false
	l.state = LoopRunning
}

// Stop transitions to Stopped and discards the accumulator and baseline.
// Idempotent: stopping a stopped loop is a no-op.
func (l *Loop) Stop() {
	if l.state == LoopStopped {
		return
	}
	l.state = LoopStopped
	l.accumulator = 0
	l.hasBaseline = false
}

// Pause transitions Running to Paused. While paused the host keeps ticking
// and the baseline timestamp keeps refreshing, but no callbacks fire.
// Any other source state logs a warning and does nothing.
func (l *Loop) Pause() {
	if l.state != LoopRunning {
		warnf("Pause called while %s; ignored", l.state)
		return
	}
	l.state = LoopPaused
}

// Resume transitions Paused back to Running. Because Tick refreshed the
// baseline on every paused frame, the first resumed delta reflects only the
// gap since the last host tick, not the whole paused duration.
func (l *Loop) Resume() {
	if l.state != LoopPaused {
		warnf("Resume called while %s; ignored", l.state)
		return
	}
	l.state = LoopRunning
}

// Tick advances the loop. The host calls it once per animation frame with
// the current time in seconds (any monotonic origin). The first tick after
// Start establishes the baseline and produces a zero delta.
func (l *Loop) Tick(now float64) {
	if l.state == LoopStopped {
		return
	}

	// Refresh the baseline unconditionally — in every state — before
	// deciding whether to simulate. This is what keeps the post-resume
	// delta small.
	var rawDt float64
	if l.hasBaseline {
		rawDt = now - l.lastTime
	}
	l.lastTime = now
	l.hasBaseline = true

	if l.state == LoopPaused {
		return
	}

	dt := rawDt
	if dt < 0 {
		dt = 0
	}
	if dt > l.maxAccumulator {
		dt = l.maxAccumulator
	}

	l.clock.update(dt)

	l.accumulator += dt
	if l.accumulator > l.maxAccumulator {
		// Discard backlog beyond the cap instead of replaying it.
		l.accumulator = l.maxAccumulator
	}

	for l.accumulator >= l.fixedStep {
		if l.onFixed != nil {
			l.onFixed(l.fixedStep)
		}
		l.accumulator -= l.fixedStep
	}

	if l.onFrame != nil {
		l.onFrame(dt)
	}
}

func clampFPS(fps int) int {
	if fps < minTargetFPS {
		return minTargetFPS
	}
	if fps > maxTargetFPS {
		return maxTargetFPS
	}
	return fps
}

// warnf prints an engine warning to stderr.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[blaze] warning: "+format+"\n", args...)
}
