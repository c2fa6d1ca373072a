// Package tween implements the playback state machine for interpolation
// animations: a clock with repeat and mirroring policies, typed lenses that
// write eased values into targets, and composable tweenables (Tween, Delay,
// Sequence, Tracks) stepped by externally supplied time deltas.
package tween

import (
	"errors"
	"reflect"
	"time"
)

var (
	// ErrTargetTypeMismatch is returned when a step receives a target whose
	// concrete type differs from the tweenable's declared target type
	ErrTargetTypeMismatch = errors.New("tween: target type mismatch")

	// ErrUntypedTweenable is returned when a composite cannot derive any
	// target type from its children (for example a sequence of bare delays)
	ErrUntypedTweenable = errors.New("tween: tweenable has no target type")

	// ErrEmptySequence is returned when a composite is built with no children
	ErrEmptySequence = errors.New("tween: sequence needs at least one child")

	// ErrRewindUnbounded is returned when rewinding has no defined origin,
	// such as backward playback over an infinite repeat
	ErrRewindUnbounded = errors.New("tween: no rewind origin")
)

// Tweenable is an animation that mutates a target over time. Implementations
// are not safe for concurrent use; a tweenable belongs to a single animator.
//
// Step receives the pointer to the mutable target. Typed implementations
// assert it to their concrete pointer type and return ErrTargetTypeMismatch
// on failure; Delay ignores it entirely
type Tweenable interface {
	// Duration returns the duration of a single cycle. For composites this
	// is the sum over children
	Duration() time.Duration

	// TotalDuration returns the full playback duration including repeats
	TotalDuration() TotalDuration

	// Elapsed returns the clamped elapsed playback time
	Elapsed() time.Duration

	// SetElapsed seeks to an absolute elapsed time, clamped to [0, total].
	// Seeking alone does not mutate the target; the next step does
	SetElapsed(elapsed time.Duration)

	// TargetType returns the concrete target type this tweenable mutates,
	// or nil when it does not touch a target (Delay)
	TargetType() reflect.Type

	// Step advances by dt and applies the lens to target. Completed
	// tweenables return StateCompleted without mutating
	Step(dt time.Duration, target any) (StepResult, error)

	// Rewind resets playback to the start, restoring the initial direction
	Rewind() error
}
