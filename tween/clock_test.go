package tween

import (
	"testing"
	"time"
)

func TestAnimClockTickBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		cycle      time.Duration
		count      RepeatCount
		dt         time.Duration
		wantState  State
		wantCycles uint32
	}{
		{"within first cycle", time.Second, Once(), 300 * time.Millisecond, StateActive, 0},
		{"exact completion", time.Second, Once(), time.Second, StateCompleted, 1},
		{"overshoot clamps", time.Second, Once(), 5 * time.Second, StateCompleted, 1},
		{"multi boundary", time.Second, Finite(4), 2500 * time.Millisecond, StateActive, 2},
		{"finite completion", time.Second, Finite(3), 3 * time.Second, StateCompleted, 3},
		{"for truncates mid cycle", time.Second, For(2500 * time.Millisecond), 3 * time.Second, StateCompleted, 2},
		{"infinite never completes", time.Second, Infinite(), time.Hour, StateActive, 3600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewAnimClock(tt.cycle, tt.count, Repeat)
			state, cycles := c.Tick(tt.dt)
			if state != tt.wantState {
				t.Errorf("state = %v, want %v", state, tt.wantState)
			}
			if cycles != tt.wantCycles {
				t.Errorf("cycles = %d, want %d", cycles, tt.wantCycles)
			}
		})
	}
}

func TestAnimClockCycleDecomposition(t *testing.T) {
	// elapsed = k*D + r must agree between one large tick and many small ones
	c1 := NewAnimClock(time.Second, Finite(10), Repeat)
	c2 := NewAnimClock(time.Second, Finite(10), Repeat)

	c1.Tick(3700 * time.Millisecond)

	var total uint32
	for i := 0; i < 37; i++ {
		_, n := c2.Tick(100 * time.Millisecond)
		total += n
	}

	if c1.Elapsed() != c2.Elapsed() {
		t.Errorf("elapsed diverged: %v vs %v", c1.Elapsed(), c2.Elapsed())
	}
	if c1.TimesCompleted() != 3 || total != 3 {
		t.Errorf("times completed = %d (batch) / %d (summed), want 3", c1.TimesCompleted(), total)
	}
	if got := c1.Progress(); !approx(got, 0.7) {
		t.Errorf("progress = %v, want 0.7", got)
	}
}

func TestAnimClockSetElapsed(t *testing.T) {
	c := NewAnimClock(time.Second, Finite(5), Repeat)
	c.Tick(4200 * time.Millisecond)

	state, cycles := c.SetElapsed(1500 * time.Millisecond)
	if state != StateActive || cycles != 3 {
		t.Errorf("backward seek = (%v, %d), want (Active, 3)", state, cycles)
	}
	if c.Elapsed() != 1500*time.Millisecond {
		t.Errorf("elapsed = %v", c.Elapsed())
	}

	state, cycles = c.SetElapsed(10 * time.Second)
	if state != StateCompleted || cycles != 4 {
		t.Errorf("clamped seek = (%v, %d), want (Completed, 4)", state, cycles)
	}
	if c.Elapsed() != 5*time.Second {
		t.Errorf("elapsed = %v, want clamp at total", c.Elapsed())
	}

	if _, cycles = c.SetElapsed(-time.Second); c.Elapsed() != 0 {
		t.Errorf("negative seek did not clamp to zero")
	}
}

func TestAnimClockProgressCompleted(t *testing.T) {
	// For() totals that truncate a cycle still report progress 1 at the end
	c := NewAnimClock(time.Second, For(1500*time.Millisecond), Repeat)
	c.Tick(2 * time.Second)
	if c.State() != StateCompleted {
		t.Fatalf("state = %v, want Completed", c.State())
	}
	if got := c.Progress(); got != 1 {
		t.Errorf("progress = %v, want 1", got)
	}
}

func TestAnimClockZeroTotal(t *testing.T) {
	c := NewAnimClock(0, For(0), Repeat)
	state, cycles := c.Tick(time.Millisecond)
	if state != StateCompleted || cycles != 0 {
		t.Errorf("zero total = (%v, %d), want (Completed, 0)", state, cycles)
	}
	if got := c.Progress(); got != 1 {
		t.Errorf("progress = %v, want 1", got)
	}
}

func approx(got, want float64) bool {
	d := got - want
	return d < 1e-9 && d > -1e-9
}
