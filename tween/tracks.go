package tween

import (
	"fmt"
	"reflect"
	"time"
)

// Tracks plays its children in parallel against the same target. It
// completes when the longest child does; shorter children hold their end
// value once finished. As with Sequence, typed children must agree on a
// single target type
type Tracks struct {
	children []Tweenable
	typ      reflect.Type
	elapsed  time.Duration
	duration time.Duration
	total    TotalDuration
}

// NewTracks builds a parallel group over the given children
func NewTracks(children ...Tweenable) (*Tracks, error) {
	if len(children) == 0 {
		return nil, ErrEmptySequence
	}
	t := &Tracks{}
	for _, child := range children {
		if ct := child.TargetType(); ct != nil {
			if t.typ == nil {
				t.typ = ct
			} else if t.typ != ct {
				return nil, fmt.Errorf("%w: tracks mix %v and %v", ErrTargetTypeMismatch, t.typ, ct)
			}
		}
		t.children = append(t.children, child)
		if child.Duration() > t.duration {
			t.duration = child.Duration()
		}
		if t.total.IsInfinite() {
			continue
		}
		fin, ok := child.TotalDuration().Finite()
		if !ok {
			t.total = InfiniteTotal()
		} else if fin > t.total.d {
			t.total = FiniteTotal(fin)
		}
	}
	if t.typ == nil {
		return nil, fmt.Errorf("%w: tracks contain no typed child", ErrUntypedTweenable)
	}
	return t, nil
}

// Duration returns the longest single-cycle duration among children
func (t *Tracks) Duration() time.Duration {
	return t.duration
}

// TotalDuration returns the longest child total, infinite if any child
// repeats without bound
func (t *Tracks) TotalDuration() TotalDuration {
	return t.total
}

// Elapsed returns the clamped elapsed playback time
func (t *Tracks) Elapsed() time.Duration {
	return t.elapsed
}

// SetElapsed seeks every child to the same absolute time; children clamp
// individually at their own totals
func (t *Tracks) SetElapsed(elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	if fin, ok := t.total.Finite(); ok && elapsed > fin {
		elapsed = fin
	}
	t.elapsed = elapsed
	for _, child := range t.children {
		child.SetElapsed(elapsed)
	}
}

// TargetType returns the target type shared by the typed children
func (t *Tracks) TargetType() reflect.Type {
	return t.typ
}

// Step advances every child by dt. Children listed later win when several
// lenses write the same field
func (t *Tracks) Step(dt time.Duration, target any) (StepResult, error) {
	if dt < 0 {
		dt = 0
	}
	var cycles uint32
	state := StateCompleted
	for _, child := range t.children {
		res, err := child.Step(dt, target)
		if err != nil {
			return StepResult{}, err
		}
		cycles += res.CyclesCompleted
		if res.State == StateActive {
			state = StateActive
		}
	}
	t.elapsed += dt
	if fin, ok := t.total.Finite(); ok && t.elapsed > fin {
		t.elapsed = fin
	}
	return StepResult{State: state, CyclesCompleted: cycles}, nil
}

// Rewind resets every child
func (t *Tracks) Rewind() error {
	for _, child := range t.children {
		if err := child.Rewind(); err != nil {
			return err
		}
	}
	t.elapsed = 0
	return nil
}
