package engine

import (
	"fmt"

	"github.com/lixenwraith/tween/parameter"
	"github.com/lixenwraith/tween/tween"
)

// PlaybackState is the user-controlled play/pause state of an animator.
// It is orthogonal to the tweenable's Active/Completed state: a playing
// animator may sit on a completed tweenable, and a paused one may hold
// an animation mid-flight
type PlaybackState uint8

const (
	// StatePlaying means stepping advances the animation
	StatePlaying PlaybackState = iota

	// StatePaused means stepping skips the animator entirely
	StatePaused
)

func (s PlaybackState) String() string {
	if s == StatePaused {
		return "Paused"
	}
	return "Playing"
}

// Animator drives one tweenable against one resolved target. Animators
// are attached to entities via Engine.Attach; all mutation goes through
// the engine's stepping lock, so the struct itself carries no locking
type Animator struct {
	tweenable tween.Tweenable
	target    Target
	state     PlaybackState
	speed     float64

	destroyOnCompletion bool
	notified            bool
}

// NewAnimator creates a playing animator at normal speed with the implicit
// self target. It panics on a nil or untyped tweenable: an animation that
// can never resolve a target is a construction bug, not a runtime state
func NewAnimator(t tween.Tweenable) *Animator {
	if t == nil {
		panic("engine: animator requires a tweenable")
	}
	if t.TargetType() == nil {
		panic("engine: animator requires a typed tweenable")
	}
	return &Animator{
		tweenable: t,
		target:    SelfTarget(),
		speed:     parameter.DefaultAnimatorSpeed,
	}
}

// WithTarget sets the resolution target
func (a *Animator) WithTarget(t Target) *Animator {
	a.target = t
	return a
}

// WithSpeed sets the playback speed multiplier
func (a *Animator) WithSpeed(speed float64) *Animator {
	a.SetSpeed(speed)
	return a
}

// WithPaused starts the animator paused
func (a *Animator) WithPaused() *Animator {
	a.state = StatePaused
	return a
}

// WithDestroyOnCompletion makes the engine drop the animator once its
// animation completes
func (a *Animator) WithDestroyOnCompletion() *Animator {
	a.destroyOnCompletion = true
	return a
}

// Tweenable returns the driven animation
func (a *Animator) Tweenable() tween.Tweenable {
	return a.tweenable
}

// SetTweenable swaps the driven animation and re-arms completion
// notification. The replacement must be non-nil and typed
func (a *Animator) SetTweenable(t tween.Tweenable) error {
	if t == nil {
		return ErrNilTweenable
	}
	if t.TargetType() == nil {
		return fmt.Errorf("%w: animator requires a typed tweenable", tween.ErrUntypedTweenable)
	}
	a.tweenable = t
	a.notified = false
	return nil
}

// Target returns the resolution target
func (a *Animator) Target() Target {
	return a.target
}

// SetTarget redirects the animator to a new target. The next step resolves
// it fresh
func (a *Animator) SetTarget(t Target) {
	a.target = t
}

// State returns the playback state
func (a *Animator) State() PlaybackState {
	return a.state
}

// Play resumes stepping
func (a *Animator) Play() {
	a.state = StatePlaying
}

// Pause suspends stepping, freezing the animation mid-flight
func (a *Animator) Pause() {
	a.state = StatePaused
}

// Stop pauses and rewinds. The target keeps its last written value until
// the animator plays again
func (a *Animator) Stop() error {
	a.state = StatePaused
	if err := a.tweenable.Rewind(); err != nil {
		return err
	}
	a.notified = false
	return nil
}

// Speed returns the playback speed multiplier
func (a *Animator) Speed() float64 {
	return a.speed
}

// SetSpeed sets the playback speed multiplier, clamped at zero. At zero
// the engine skips the animator entirely, equivalent to pausing
func (a *Animator) SetSpeed(speed float64) {
	if speed < 0 {
		speed = 0
	}
	a.speed = speed
}

// Completed reports whether the animation finished and notification fired
func (a *Animator) Completed() bool {
	return a.notified
}
