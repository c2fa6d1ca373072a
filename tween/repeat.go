package tween

import "time"

// State is the internal activity state of a tweenable, derived from its
// clock. It is orthogonal to an animator's user-controlled playback state
type State uint8

const (
	// StateActive means stepping still advances the animation
	StateActive State = iota

	// StateCompleted means the animation reached its total duration.
	// Further steps are no-ops that neither mutate nor re-notify
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "Active"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// PlaybackDirection maps the cycle fraction to the interpolation factor.
// Backward playback uses factor' = 1 - factor. Under MirroredRepeat the
// direction flips automatically on each cycle boundary crossing
type PlaybackDirection uint8

const (
	// Forward plays from the lens start value toward its end value
	Forward PlaybackDirection = iota

	// Backward plays from the lens end value toward its start value
	Backward
)

// IsBackward reports whether the factor mapping is reversed
func (d PlaybackDirection) IsBackward() bool {
	return d == Backward
}

// Flip returns the opposite direction
func (d PlaybackDirection) Flip() PlaybackDirection {
	if d == Forward {
		return Backward
	}
	return Forward
}

func (d PlaybackDirection) String() string {
	if d == Backward {
		return "Backward"
	}
	return "Forward"
}

// RepeatStrategy selects what happens when a cycle boundary is crossed
type RepeatStrategy uint8

const (
	// Repeat jumps back to the cycle start on each boundary
	Repeat RepeatStrategy = iota

	// MirroredRepeat ping-pongs, flipping direction on each boundary.
	// A full loop (start -> end -> start) counts as two completed cycles
	MirroredRepeat
)

func (s RepeatStrategy) String() string {
	if s == MirroredRepeat {
		return "MirroredRepeat"
	}
	return "Repeat"
}

type repeatKind uint8

const (
	repeatFinite repeatKind = iota
	repeatFor
	repeatInfinite
)

// RepeatCount determines the total playback duration of a tween relative
// to its cycle duration
type RepeatCount struct {
	kind     repeatKind
	count    uint32
	duration time.Duration
}

// Once plays a single cycle
func Once() RepeatCount {
	return Finite(1)
}

// Finite plays exactly n cycles; the total duration is n times the cycle
// duration
func Finite(n uint32) RepeatCount {
	return RepeatCount{kind: repeatFinite, count: n}
}

// For plays for exactly d, which may truncate the last cycle mid-way
func For(d time.Duration) RepeatCount {
	return RepeatCount{kind: repeatFor, duration: d}
}

// Infinite repeats without bound
func Infinite() RepeatCount {
	return RepeatCount{kind: repeatInfinite}
}

// total resolves the repeat policy against a cycle duration
func (rc RepeatCount) total(cycle time.Duration) TotalDuration {
	switch rc.kind {
	case repeatFor:
		return FiniteTotal(rc.duration)
	case repeatInfinite:
		return InfiniteTotal()
	default:
		return FiniteTotal(time.Duration(rc.count) * cycle)
	}
}

// isZeroFor reports the degenerate-but-legal For(0) policy, the only
// configuration under which a zero cycle duration is accepted
func (rc RepeatCount) isZeroFor() bool {
	return rc.kind == repeatFor && rc.duration == 0
}

// TotalDuration is a finite-or-infinite playback total
type TotalDuration struct {
	d        time.Duration
	infinite bool
}

// FiniteTotal wraps a bounded total duration
func FiniteTotal(d time.Duration) TotalDuration {
	return TotalDuration{d: d}
}

// InfiniteTotal is an unbounded total duration
func InfiniteTotal() TotalDuration {
	return TotalDuration{infinite: true}
}

// IsInfinite reports whether the total is unbounded
func (t TotalDuration) IsInfinite() bool {
	return t.infinite
}

// Finite returns the bounded duration, or false when infinite
func (t TotalDuration) Finite() (time.Duration, bool) {
	if t.infinite {
		return 0, false
	}
	return t.d, true
}

func (t TotalDuration) String() string {
	if t.infinite {
		return "Infinite"
	}
	return t.d.String()
}

// StepResult is the outcome of stepping a tweenable by a time delta
type StepResult struct {
	// State is the activity state after the step
	State State

	// CyclesCompleted is the number of cycle boundaries crossed during
	// this step. Large deltas may cross several boundaries at once
	CyclesCompleted uint32

	// NeedsRetarget signals that the mutable target must be re-resolved
	// before the next step. Reserved for heterogeneously-typed sequences,
	// which are currently rejected at construction; always false
	NeedsRetarget bool
}
