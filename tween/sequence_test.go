package tween

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/tween/ease"
)

func threeMoves(t *testing.T) *Sequence {
	t.Helper()
	seq, err := NewSequence(
		NewOnce(ease.Linear, time.Second, moveX(0, 10)),
		NewOnce(ease.Linear, time.Second, moveX(10, 20)),
		NewOnce(ease.Linear, time.Second, moveX(20, 30)),
	)
	if err != nil {
		t.Fatalf("sequence: %v", err)
	}
	return seq
}

func TestSequenceConstruction(t *testing.T) {
	if _, err := NewSequence(); !errors.Is(err, ErrEmptySequence) {
		t.Errorf("empty: err = %v, want ErrEmptySequence", err)
	}
	if _, err := NewSequence(NewDelay(time.Second)); !errors.Is(err, ErrUntypedTweenable) {
		t.Errorf("all delays: err = %v, want ErrUntypedTweenable", err)
	}

	type other struct{ V float64 }
	mixed := NewOnce(ease.Linear, time.Second, LensFunc[other](func(o *other, f float64) { o.V = f }))
	if _, err := NewSequence(NewOnce(ease.Linear, time.Second, moveX(0, 1)), mixed); !errors.Is(err, ErrTargetTypeMismatch) {
		t.Errorf("mixed types: err = %v, want ErrTargetTypeMismatch", err)
	}

	// delays in between are fine and do not disturb the derived type
	seq, err := NewSequence(NewDelay(time.Second), NewOnce(ease.Linear, time.Second, moveX(0, 1)))
	if err != nil {
		t.Fatalf("delay + tween: %v", err)
	}
	if want := NewOnce(ease.Linear, time.Second, moveX(0, 1)).TargetType(); seq.TargetType() != want {
		t.Errorf("target type = %v, want %v", seq.TargetType(), want)
	}
}

func TestSequenceDurations(t *testing.T) {
	seq := threeMoves(t)
	if seq.Duration() != 3*time.Second {
		t.Errorf("duration = %v, want 3s", seq.Duration())
	}
	fin, ok := seq.TotalDuration().Finite()
	if !ok || fin != 3*time.Second {
		t.Errorf("total = %v, want finite 3s", seq.TotalDuration())
	}

	seq2, err := NewSequence(
		NewOnce(ease.Linear, time.Second, moveX(0, 1)),
		New(ease.Linear, time.Second, Infinite(), Repeat, moveX(0, 1)),
	)
	if err != nil {
		t.Fatalf("sequence: %v", err)
	}
	if !seq2.TotalDuration().IsInfinite() {
		t.Errorf("total = %v, want infinite", seq2.TotalDuration())
	}
}

func TestSequenceThreadsLeftoverDelta(t *testing.T) {
	seq := threeMoves(t)
	var s sprite

	// one step finishes child 0, all of child 1, and half of child 2
	res, err := seq.Step(2500*time.Millisecond, &s)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if res.State != StateActive {
		t.Errorf("state = %v, want Active", res.State)
	}
	if res.CyclesCompleted != 2 {
		t.Errorf("cycles = %d, want 2", res.CyclesCompleted)
	}
	if seq.Index() != 2 {
		t.Errorf("index = %d, want 2", seq.Index())
	}
	if !approx(s.X, 25) {
		t.Errorf("X = %v, want 25", s.X)
	}
	if seq.Elapsed() != 2500*time.Millisecond {
		t.Errorf("elapsed = %v, want 2.5s", seq.Elapsed())
	}

	res, err = seq.Step(time.Second, &s)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if res.State != StateCompleted || res.CyclesCompleted != 1 {
		t.Errorf("result = %+v, want completed with 1 cycle", res)
	}
	if s.X != 30 {
		t.Errorf("X = %v, want 30", s.X)
	}
}

func TestSequenceExactBoundary(t *testing.T) {
	// landing exactly on a child boundary still applies the next child's
	// start value on the same step, via its zero-delta step
	seq, err := NewSequence(
		NewOnce(ease.Linear, time.Second, moveX(0, 10)),
		NewOnce(ease.Linear, time.Second, moveX(100, 200)),
	)
	if err != nil {
		t.Fatalf("sequence: %v", err)
	}
	var s sprite

	res, err := seq.Step(time.Second, &s)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if res.State != StateActive || res.CyclesCompleted != 1 {
		t.Errorf("result = %+v", res)
	}
	if seq.Index() != 1 {
		t.Errorf("index = %d, want 1", seq.Index())
	}
	if s.X != 100 {
		t.Errorf("X = %v, want 100 (second child's start)", s.X)
	}
}

func TestSequenceSetElapsed(t *testing.T) {
	seq := threeMoves(t)
	var s sprite

	seq.SetElapsed(1700 * time.Millisecond)
	if seq.Index() != 1 {
		t.Errorf("index = %d, want 1", seq.Index())
	}
	if seq.Elapsed() != 1700*time.Millisecond {
		t.Errorf("elapsed = %v", seq.Elapsed())
	}

	// seeking alone does not touch the target; the next step does
	if s.X != 0 {
		t.Fatalf("seek mutated target: X = %v", s.X)
	}
	seq.Step(0, &s)
	if !approx(s.X, 17) {
		t.Errorf("X = %v, want 17", s.X)
	}

	// seeking backward resets later children
	seq.SetElapsed(200 * time.Millisecond)
	if seq.Index() != 0 {
		t.Errorf("index = %d, want 0", seq.Index())
	}
	seq.Step(0, &s)
	if !approx(s.X, 2) {
		t.Errorf("X = %v, want 2", s.X)
	}
}

func TestSequenceRewind(t *testing.T) {
	seq := threeMoves(t)
	var s sprite

	seq.Step(10*time.Second, &s)
	if err := seq.Rewind(); err != nil {
		t.Fatalf("rewind: %v", err)
	}
	if seq.Index() != 0 || seq.Elapsed() != 0 {
		t.Errorf("index = %d, elapsed = %v after rewind", seq.Index(), seq.Elapsed())
	}
	seq.Step(500*time.Millisecond, &s)
	if !approx(s.X, 5) {
		t.Errorf("X = %v, want 5 on replay", s.X)
	}
}

func TestSequenceWithDelay(t *testing.T) {
	seq, err := NewSequence(
		NewDelay(time.Second),
		NewOnce(ease.Linear, time.Second, fadeLens(0, 1)),
	)
	if err != nil {
		t.Fatalf("sequence: %v", err)
	}
	var s sprite

	seq.Step(500*time.Millisecond, &s)
	if s.Opacity != 0 {
		t.Errorf("opacity = %v during delay, want 0", s.Opacity)
	}
	seq.Step(time.Second, &s)
	if !approx(s.Opacity, 0.5) {
		t.Errorf("opacity = %v, want 0.5", s.Opacity)
	}
}

func TestDelay(t *testing.T) {
	d := NewDelay(time.Second)
	if d.TargetType() != nil {
		t.Errorf("delay target type = %v, want nil", d.TargetType())
	}

	res, err := d.Step(600*time.Millisecond, nil)
	if err != nil || res.State != StateActive {
		t.Errorf("result = (%+v, %v), want active", res, err)
	}
	res, _ = d.Step(600*time.Millisecond, nil)
	if res.State != StateCompleted || res.CyclesCompleted != 1 {
		t.Errorf("result = %+v, want completed with 1 cycle", res)
	}
	if d.Elapsed() != time.Second {
		t.Errorf("elapsed = %v, want clamp at duration", d.Elapsed())
	}
	res, _ = d.Step(time.Second, nil)
	if res.State != StateCompleted || res.CyclesCompleted != 0 {
		t.Errorf("repeated completion result = %+v", res)
	}
}

func TestNewDelayPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewDelay(0) did not panic")
		}
	}()
	NewDelay(0)
}

func TestTracksParallel(t *testing.T) {
	tr, err := NewTracks(
		NewOnce(ease.Linear, 2*time.Second, moveX(0, 10)),
		NewOnce(ease.Linear, time.Second, fadeLens(0, 1)),
	)
	if err != nil {
		t.Fatalf("tracks: %v", err)
	}
	var s sprite

	if tr.Duration() != 2*time.Second {
		t.Errorf("duration = %v, want longest child", tr.Duration())
	}

	res, err := tr.Step(time.Second, &s)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if res.State != StateActive {
		t.Errorf("state = %v, want Active while the long child runs", res.State)
	}
	if !approx(s.X, 5) || s.Opacity != 1 {
		t.Errorf("target = %+v, want X=5 Opacity=1", s)
	}

	res, _ = tr.Step(time.Second, &s)
	if res.State != StateCompleted {
		t.Errorf("state = %v, want Completed", res.State)
	}
	if s.X != 10 {
		t.Errorf("X = %v, want 10", s.X)
	}
}
