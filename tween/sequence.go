package tween

import (
	"fmt"
	"reflect"
	"time"
)

// Sequence plays its children one after another, threading leftover time
// across child boundaries so a single large step can finish one child and
// advance well into the next.
//
// All typed children must share one target type; untyped children (Delay)
// are welcome in between. Heterogeneously-typed sequences are rejected at
// construction because the animator resolves a single target per step
type Sequence struct {
	children []Tweenable
	typ      reflect.Type
	index    int
	elapsed  time.Duration
	duration time.Duration
	total    TotalDuration
}

// NewSequence builds a sequence over the given children, in play order
func NewSequence(children ...Tweenable) (*Sequence, error) {
	if len(children) == 0 {
		return nil, ErrEmptySequence
	}
	s := &Sequence{children: make([]Tweenable, 0, len(children))}
	for _, child := range children {
		if err := s.Append(child); err != nil {
			return nil, err
		}
	}
	if s.typ == nil {
		return nil, fmt.Errorf("%w: sequence contains no typed child", ErrUntypedTweenable)
	}
	return s, nil
}

// Append adds a child at the end of the sequence. Its target type must
// match the type already derived from earlier children
func (s *Sequence) Append(child Tweenable) error {
	if ct := child.TargetType(); ct != nil {
		if s.typ == nil {
			s.typ = ct
		} else if s.typ != ct {
			return fmt.Errorf("%w: sequence mixes %v and %v", ErrTargetTypeMismatch, s.typ, ct)
		}
	}
	s.children = append(s.children, child)
	s.duration += child.Duration()
	if s.total.IsInfinite() {
		return nil
	}
	fin, ok := child.TotalDuration().Finite()
	if !ok {
		s.total = InfiniteTotal()
		return nil
	}
	s.total = FiniteTotal(s.total.d + fin)
	return nil
}

// Index returns the position of the currently playing child. Once the
// sequence completes it reports the last child
func (s *Sequence) Index() int {
	if s.index >= len(s.children) {
		return len(s.children) - 1
	}
	return s.index
}

// Duration returns the sum of the children's single-cycle durations
func (s *Sequence) Duration() time.Duration {
	return s.duration
}

// TotalDuration returns the sum of the children's totals, infinite if any
// child repeats without bound
func (s *Sequence) TotalDuration() TotalDuration {
	return s.total
}

// Elapsed returns the clamped elapsed playback time across all children
func (s *Sequence) Elapsed() time.Duration {
	return s.elapsed
}

// SetElapsed seeks across child boundaries: earlier children are marked
// fully elapsed, the child owning the position is seeked into, and later
// children are reset to their start
func (s *Sequence) SetElapsed(elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	if fin, ok := s.total.Finite(); ok && elapsed > fin {
		elapsed = fin
	}
	s.elapsed = elapsed

	remaining := elapsed
	s.index = len(s.children)
	for i, child := range s.children {
		fin, finite := child.TotalDuration().Finite()
		if !finite || remaining < fin {
			s.index = i
			child.SetElapsed(remaining)
			for _, rest := range s.children[i+1:] {
				rest.SetElapsed(0)
			}
			return
		}
		child.SetElapsed(fin)
		remaining -= fin
	}
}

// TargetType returns the target type shared by the typed children
func (s *Sequence) TargetType() reflect.Type {
	return s.typ
}

// Step advances the current child by dt. When a child completes mid-step
// the remaining delta carries into the next child, which also receives a
// zero-delta step at the exact boundary so its start value is applied on
// the same frame
func (s *Sequence) Step(dt time.Duration, target any) (StepResult, error) {
	if dt < 0 {
		dt = 0
	}
	var cycles uint32
	remaining := dt
	for s.index < len(s.children) {
		child := s.children[s.index]

		var capacity time.Duration
		bounded := false
		if fin, ok := child.TotalDuration().Finite(); ok {
			capacity = fin - child.Elapsed()
			bounded = true
		}

		res, err := child.Step(remaining, target)
		if err != nil {
			return StepResult{}, err
		}
		cycles += res.CyclesCompleted

		if res.State == StateActive {
			s.consume(remaining)
			return StepResult{State: StateActive, CyclesCompleted: cycles}, nil
		}

		// child done: restore it for a future sequence rewind, charge only
		// the time it actually consumed, and move on with the leftover
		if err := child.Rewind(); err != nil {
			return StepResult{}, err
		}
		if !bounded || capacity > remaining {
			capacity = remaining
		}
		s.consume(capacity)
		remaining -= capacity
		s.index++
	}
	return StepResult{State: StateCompleted, CyclesCompleted: cycles}, nil
}

func (s *Sequence) consume(d time.Duration) {
	s.elapsed += d
	if fin, ok := s.total.Finite(); ok && s.elapsed > fin {
		s.elapsed = fin
	}
}

// Rewind resets every child and restarts at the first
func (s *Sequence) Rewind() error {
	for _, child := range s.children {
		if err := child.Rewind(); err != nil {
			return err
		}
	}
	s.index = 0
	s.elapsed = 0
	return nil
}
