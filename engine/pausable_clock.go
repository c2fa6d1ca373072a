package engine

import (
	"sync"
	"time"
)

// PausableClock produces the time deltas that drive stepping. Pausing
// freezes delta production without disturbing wall-clock tracking, so a
// paused loop resumes without a catch-up jump
type PausableClock struct {
	mu sync.Mutex

	lastTick    time.Time
	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewPausableClock creates a running clock
func NewPausableClock() *PausableClock {
	return &PausableClock{lastTick: time.Now()}
}

// Tick returns the unpaused time elapsed since the previous Tick. While
// paused it returns zero
func (pc *PausableClock) Tick() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := time.Now()
	if pc.paused {
		pc.lastTick = now
		return 0
	}
	dt := now.Sub(pc.lastTick)
	pc.lastTick = now
	if dt < 0 {
		return 0
	}
	return dt
}

// Pause stops delta production
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = time.Now()
}

// Resume restarts delta production. The pause gap is excluded from the
// next Tick's delta
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	now := time.Now()
	pc.totalPaused += now.Sub(pc.pauseStart)
	pc.lastTick = now
	pc.paused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}

// TotalPaused returns cumulative pause time
func (pc *PausableClock) TotalPaused() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	total := pc.totalPaused
	if pc.paused {
		total += time.Since(pc.pauseStart)
	}
	return total
}
