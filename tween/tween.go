package tween

import (
	"fmt"
	"reflect"
	"time"

	"github.com/lixenwraith/tween/ease"
)

// Tween is a single animation over targets of type T: one easing curve, one
// clock, one lens. The zero value is not usable; construct with New
type Tween[T any] struct {
	method      ease.Method
	clock       AnimClock
	direction   PlaybackDirection
	lens        Lens[T]
	onCompleted func()
}

// New builds a tween playing one cycle of the given duration, repeated per
// count. It panics on a non-positive duration, except for the degenerate
// For(0) policy which completes on its first step
func New[T any](method ease.Method, duration time.Duration, count RepeatCount, strategy RepeatStrategy, lens Lens[T]) *Tween[T] {
	if duration <= 0 && !count.isZeroFor() {
		panic(fmt.Sprintf("tween: non-positive cycle duration %v", duration))
	}
	if method == nil {
		method = ease.Linear
	}
	return &Tween[T]{
		method: method,
		clock:  NewAnimClock(duration, count, strategy),
		lens:   lens,
	}
}

// NewOnce builds a single-cycle tween
func NewOnce[T any](method ease.Method, duration time.Duration, lens Lens[T]) *Tween[T] {
	return New(method, duration, Once(), Repeat, lens)
}

// WithDirection sets the initial playback direction. Backward plays the
// lens from its end value toward its start value
func (t *Tween[T]) WithDirection(d PlaybackDirection) *Tween[T] {
	t.direction = d
	return t
}

// WithCompleted registers a callback invoked once when the tween completes.
// Rewinding re-arms it
func (t *Tween[T]) WithCompleted(cb func()) *Tween[T] {
	t.onCompleted = cb
	return t
}

// Then builds a sequence playing this tween followed by next
func (t *Tween[T]) Then(next Tweenable) (*Sequence, error) {
	return NewSequence(t, next)
}

// Direction returns the current playback direction, which flips over time
// under MirroredRepeat
func (t *Tween[T]) Direction() PlaybackDirection {
	return t.direction
}

// Progress returns the fraction of the current cycle in [0,1), or exactly
// 1 once completed
func (t *Tween[T]) Progress() float64 {
	return t.clock.Progress()
}

// TimesCompleted returns the number of cycle boundaries crossed so far
func (t *Tween[T]) TimesCompleted() uint32 {
	return t.clock.TimesCompleted()
}

// Duration returns the single-cycle duration
func (t *Tween[T]) Duration() time.Duration {
	return t.clock.CycleDuration()
}

// TotalDuration returns the full playback duration including repeats
func (t *Tween[T]) TotalDuration() TotalDuration {
	return t.clock.Total()
}

// Elapsed returns the clamped elapsed playback time
func (t *Tween[T]) Elapsed() time.Duration {
	return t.clock.Elapsed()
}

// SetElapsed seeks to an absolute elapsed time. Under MirroredRepeat the
// direction is flipped once per boundary between the old and new positions
// so that a later step renders the correct half of the ping-pong. A seek
// landing on a finite total withholds the final flip, same as Step
func (t *Tween[T]) SetElapsed(elapsed time.Duration) {
	before := t.effectiveFlips()
	t.clock.SetElapsed(elapsed)
	if t.clock.Strategy() == MirroredRepeat && (before^t.effectiveFlips())&1 == 1 {
		t.direction = t.direction.Flip()
	}
}

// effectiveFlips counts the direction flips applied so far. The completing
// boundary never flips, so a completed clock withholds one
func (t *Tween[T]) effectiveFlips() uint32 {
	times := t.clock.TimesCompleted()
	if t.clock.State() == StateCompleted && times > 0 {
		times--
	}
	return times
}

// TargetType returns *T's element type
func (t *Tween[T]) TargetType() reflect.Type {
	return reflect.TypeFor[T]()
}

// Step advances the clock by dt and applies the eased value to target,
// which must be a *T. The lens always runs on the completing step with the
// cycle fraction forced to 1, so the target lands exactly on the boundary
// value regardless of the delta that crossed it
func (t *Tween[T]) Step(dt time.Duration, target any) (StepResult, error) {
	p, ok := target.(*T)
	if !ok {
		return StepResult{}, fmt.Errorf("%w: want *%v, got %T", ErrTargetTypeMismatch, reflect.TypeFor[T](), target)
	}
	if t.clock.State() == StateCompleted {
		return StepResult{State: StateCompleted}, nil
	}

	state, cycles := t.clock.Tick(dt)
	fraction := t.clock.Progress()

	// The final boundary does not flip direction: the last rendered frame
	// must hold the end value of the last played half-cycle
	flips := cycles
	if state == StateCompleted {
		fraction = 1
		if flips > 0 {
			flips--
		}
	}
	if t.clock.Strategy() == MirroredRepeat && flips&1 == 1 {
		t.direction = t.direction.Flip()
	}

	factor := fraction
	if t.direction.IsBackward() {
		factor = 1 - factor
	}
	if t.lens != nil {
		t.lens.Lerp(p, t.method(factor))
	}
	if state == StateCompleted && t.onCompleted != nil {
		t.onCompleted()
	}
	return StepResult{State: state, CyclesCompleted: cycles}, nil
}

// Rewind resets the clock and restores the initial direction. It fails
// with ErrRewindUnbounded for backward playback over an infinite repeat,
// which has no start position; the tween is left unchanged in that case
func (t *Tween[T]) Rewind() error {
	dir := t.direction
	if t.clock.Strategy() == MirroredRepeat && t.effectiveFlips()&1 == 1 {
		dir = dir.Flip()
	}
	if dir == Backward && t.clock.Total().IsInfinite() {
		return fmt.Errorf("%w: backward playback over infinite repeat", ErrRewindUnbounded)
	}
	t.direction = dir
	t.clock.Reset()
	return nil
}
