package blaze

// maxFrameDelta caps a single frame's delta so a stall (tab switch, debugger
// break, long GC) cannot inject a giant step into simulation time.
const maxFrameDelta = 0.1

// Clock tracks per-frame timing for a single engine instance. It is a pure
// state holder: the [Loop] feeds it once per host tick, nothing else writes
// to it.
type Clock struct {
	delta      float64 // last frame's delta, clamped to maxFrameDelta
	elapsed    float64 // sum of clamped deltas since the last Reset
	frameCount uint64
	fps        float64
	fixedDelta float64
	timeScale  float64

	// Rolling FPS window. Raw (unclamped) samples accumulate until a full
	// second has passed, then fps recomputes once. A per-frame readout is
	// too twitchy to be useful.
	fpsWindow float64
	fpsFrames int
}

// NewClock creates a Clock with timeScale 1 and the given fixed step size.
func NewClock(fixedDelta float64) *Clock {
	return &Clock{
		fixedDelta: fixedDelta,
		timeScale:  1,
	}
}

// update ingests one frame's raw delta in seconds. Called by the Loop.
func (c *Clock) update(rawDelta float64) {
	clamped := clamp(rawDelta, 0, maxFrameDelta)
	c.delta = clamped
	c.elapsed += clamped
	c.frameCount++

	c.fpsWindow += rawDelta
	c.fpsFrames++
	if c.fpsWindow >= 1 {
		c.fps = float64(c.fpsFrames) / c.fpsWindow
		c.fpsWindow = 0
		c.fpsFrames = 0
	}
}

// Delta returns the last frame's delta in seconds, clamped and scaled by
// the current time scale. A time scale of 0 freezes this at 0 while the
// host loop keeps ticking.
func (c *Clock) Delta() float64 {
	return c.delta * c.timeScale
}

// UnscaledDelta returns the last frame's clamped delta ignoring the time
// scale. Use this for things that must keep moving during slow-motion or
// pause, like UI countdowns.
func (c *Clock) UnscaledDelta() float64 {
	return c.delta
}

// Elapsed returns total simulation time in seconds since the last Reset.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// FrameCount returns the number of frames ingested since the last Reset.
func (c *Clock) FrameCount() uint64 {
	return c.frameCount
}

// FPS returns the frame rate averaged over the last full second. It reads 0
// until the first second of samples completes.
func (c *Clock) FPS() float64 {
	return c.fps
}

// FixedDelta returns the constant fixed-update step size in seconds.
func (c *Clock) FixedDelta() float64 {
	return c.fixedDelta
}

// TimeScale returns the current simulation time multiplier.
func (c *Clock) TimeScale() float64 {
	return c.timeScale
}

// SetTimeScale sets the simulation time multiplier. Negative values clamp
// to 0; time does not run backwards.
func (c *Clock) SetTimeScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	c.timeScale = scale
}

// Reset zeroes every accumulator. The Loop calls this on the
// Stopped→Running transition so a restarted engine does not resume into a
// stale elapsed time. The time scale and fixed step are configuration, not
// accumulators, and survive a reset.
func (c *Clock) Reset() {
	c.delta = 0
	c.elapsed = 0
	c.frameCount = 0
	c.fps = 0
	c.fpsWindow = 0
	c.fpsFrames = 0
}

// setFixedDelta is called by the Loop when the target FPS changes.
func (c *Clock) setFixedDelta(d float64) {
	c.fixedDelta = d
}
