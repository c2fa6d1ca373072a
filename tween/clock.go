package tween

import "time"

// AnimClock tracks the elapsed playback time of a tween against its cycle
// duration and repeat policy. All cycle accounting derives from the single
// elapsed value, so seeking and ticking agree by construction
type AnimClock struct {
	elapsed  time.Duration
	cycle    time.Duration
	total    TotalDuration
	strategy RepeatStrategy
}

// NewAnimClock builds a clock for one cycle of the given duration repeated
// per count
func NewAnimClock(cycle time.Duration, count RepeatCount, strategy RepeatStrategy) AnimClock {
	return AnimClock{
		cycle:    cycle,
		total:    count.total(cycle),
		strategy: strategy,
	}
}

// Elapsed returns the clamped elapsed playback time
func (c *AnimClock) Elapsed() time.Duration {
	return c.elapsed
}

// CycleDuration returns the duration of a single cycle
func (c *AnimClock) CycleDuration() time.Duration {
	return c.cycle
}

// Total returns the total playback duration
func (c *AnimClock) Total() TotalDuration {
	return c.total
}

// Strategy returns the repeat strategy
func (c *AnimClock) Strategy() RepeatStrategy {
	return c.strategy
}

// State derives the activity state from elapsed time
func (c *AnimClock) State() State {
	if fin, ok := c.total.Finite(); ok && c.elapsed >= fin {
		return StateCompleted
	}
	return StateActive
}

// TimesCompleted returns the number of cycle boundaries crossed since the
// clock started
func (c *AnimClock) TimesCompleted() uint32 {
	if c.cycle <= 0 {
		return 0
	}
	return uint32(c.elapsed / c.cycle)
}

// Progress returns the fraction of the current cycle in [0,1). A completed
// clock reports exactly 1 so the final lens application lands on the end
// value even when the total truncates the last cycle
func (c *AnimClock) Progress() float64 {
	if c.State() == StateCompleted || c.cycle <= 0 {
		return 1
	}
	return float64(c.elapsed%c.cycle) / float64(c.cycle)
}

// Tick advances the clock by dt, clamping at the total duration. It returns
// the resulting state and the number of cycle boundaries crossed; a large
// dt may cross several at once
func (c *AnimClock) Tick(dt time.Duration) (State, uint32) {
	if dt < 0 {
		dt = 0
	}
	before := c.TimesCompleted()
	elapsed := c.elapsed + dt
	if elapsed < c.elapsed {
		// overflow saturates
		elapsed = 1<<63 - 1
	}
	if fin, ok := c.total.Finite(); ok && elapsed > fin {
		elapsed = fin
	}
	c.elapsed = elapsed
	return c.State(), c.TimesCompleted() - before
}

// SetElapsed seeks to an absolute elapsed time, clamped to [0, total]. It
// returns the resulting state and the number of cycle boundaries crossed
// in either direction between the old and new positions
func (c *AnimClock) SetElapsed(elapsed time.Duration) (State, uint32) {
	if elapsed < 0 {
		elapsed = 0
	}
	if fin, ok := c.total.Finite(); ok && elapsed > fin {
		elapsed = fin
	}
	before := c.TimesCompleted()
	c.elapsed = elapsed
	after := c.TimesCompleted()
	if after < before {
		return c.State(), before - after
	}
	return c.State(), after - before
}

// Reset rewinds the clock to the start
func (c *AnimClock) Reset() {
	c.elapsed = 0
}
