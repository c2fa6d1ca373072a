package tween

import (
	"fmt"
	"reflect"
	"time"
)

// Delay is a tweenable that consumes time without touching any target.
// It is untyped: TargetType returns nil, so a composite containing only
// delays cannot resolve a target and is rejected at construction
type Delay struct {
	elapsed  time.Duration
	duration time.Duration
}

// NewDelay builds a delay of the given duration. A delay exists only to
// consume time, so a non-positive duration is a construction bug and panics
func NewDelay(d time.Duration) *Delay {
	if d <= 0 {
		panic(fmt.Sprintf("tween: non-positive delay duration %v", d))
	}
	return &Delay{duration: d}
}

// Then builds a sequence playing this delay followed by next
func (d *Delay) Then(next Tweenable) (*Sequence, error) {
	return NewSequence(d, next)
}

// Duration returns the delay duration
func (d *Delay) Duration() time.Duration {
	return d.duration
}

// TotalDuration returns the delay duration; delays do not repeat
func (d *Delay) TotalDuration() TotalDuration {
	return FiniteTotal(d.duration)
}

// Elapsed returns the clamped elapsed time
func (d *Delay) Elapsed() time.Duration {
	return d.elapsed
}

// SetElapsed seeks to an absolute elapsed time, clamped to [0, duration]
func (d *Delay) SetElapsed(elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > d.duration {
		elapsed = d.duration
	}
	d.elapsed = elapsed
}

// TargetType returns nil; a delay mutates nothing
func (d *Delay) TargetType() reflect.Type {
	return nil
}

// Step consumes dt. The target is ignored
func (d *Delay) Step(dt time.Duration, _ any) (StepResult, error) {
	if d.elapsed >= d.duration {
		return StepResult{State: StateCompleted}, nil
	}
	if dt < 0 {
		dt = 0
	}
	d.elapsed += dt
	if d.elapsed >= d.duration {
		d.elapsed = d.duration
		return StepResult{State: StateCompleted, CyclesCompleted: 1}, nil
	}
	return StepResult{State: StateActive}, nil
}

// Rewind resets the delay to the start
func (d *Delay) Rewind() error {
	d.elapsed = 0
	return nil
}
