// Package engine hosts the animation runtime: a world of entities,
// components, resources and assets, animators that drive tweenables
// against resolved targets, and the batch stepping loop that publishes
// playback notifications.
package engine

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/tween/core"
	"github.com/lixenwraith/tween/event"
	"github.com/lixenwraith/tween/tween"
)

// Engine owns the world and the attached animators, and steps them in
// attachment order. One engine, one stepping goroutine; Attach and Detach
// may be called concurrently with stepping
type Engine struct {
	world *World

	mu        sync.Mutex
	animators map[core.Entity]*Animator
	order     []core.Entity

	debugChecks bool

	// Cached metric pointers, written on the stepping path
	attached    *atomic.Int64
	completed   *atomic.Int64
	stepErrors  *atomic.Int64
	eventsQueue *event.Queue
}

// NewEngine creates an engine with a fresh world
func NewEngine() *Engine {
	w := NewWorld()
	st := w.Resources().Status
	return &Engine{
		world:       w,
		animators:   make(map[core.Entity]*Animator),
		attached:    st.Ints.Get("animators.attached"),
		completed:   st.Ints.Get("animations.completed"),
		stepErrors:  st.Ints.Get("steps.failed"),
		eventsQueue: w.Resources().Event.Queue,
	}
}

// World returns the engine's world
func (e *Engine) World() *World {
	return e.world
}

// SetDebugChecks toggles the aliased-target warning. When enabled, each
// batch logs once per pair of animators resolving the same pointer;
// last write wins either way
func (e *Engine) SetDebugChecks(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.debugChecks = enabled
}

// Attach binds an animator to an entity, replacing any previous one.
// Stepping order follows first attachment order
func (e *Engine) Attach(ent core.Entity, a *Animator) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.animators[ent]; !exists {
		e.order = append(e.order, ent)
		e.attached.Add(1)
	}
	e.animators[ent] = a
}

// Detach removes an entity's animator and publishes a dropped notification
func (e *Engine) Detach(ent core.Entity) {
	e.mu.Lock()
	if _, exists := e.animators[ent]; !exists {
		e.mu.Unlock()
		return
	}
	e.remove(ent)
	e.mu.Unlock()

	e.eventsQueue.Push(event.Event{
		Type:    event.EventAnimatorDropped,
		Payload: &AnimatorDroppedPayload{Entity: ent, Reason: DropRequested},
	})
}

// AnimatorOf returns the animator attached to an entity
func (e *Engine) AnimatorOf(ent core.Entity) (*Animator, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, ok := e.animators[ent]
	return a, ok
}

// Count returns the number of attached animators
func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.animators)
}

// StepAll advances every attached animator by dt, in attachment order.
// Notifications buffer during the batch and publish afterward, so a
// consumer never observes a half-stepped batch
func (e *Engine) StepAll(dt time.Duration) {
	e.mu.Lock()
	e.world.Resources().Time.Update(dt)
	batch := newStepBatch(e)
	for _, ent := range e.order {
		if a, ok := e.animators[ent]; ok {
			batch.step(ent, a, dt)
		}
	}
	batch.prune()
	e.mu.Unlock()

	batch.publish()
}

// StepOne advances a single entity's animator by dt
func (e *Engine) StepOne(ent core.Entity, dt time.Duration) error {
	e.mu.Lock()
	a, ok := e.animators[ent]
	if !ok {
		e.mu.Unlock()
		return fmt.Errorf("%w: entity %d", ErrAnimatorNotFound, ent)
	}
	batch := newStepBatch(e)
	batch.step(ent, a, dt)
	batch.prune()
	e.mu.Unlock()

	batch.publish()
	return nil
}

// StepMany advances the listed entities by dt, in the given order, and
// returns how many of them had an animator attached. Entities without
// animators are skipped
func (e *Engine) StepMany(dt time.Duration, entities ...core.Entity) int {
	e.mu.Lock()
	batch := newStepBatch(e)
	stepped := 0
	for _, ent := range entities {
		if a, ok := e.animators[ent]; ok {
			batch.step(ent, a, dt)
			stepped++
		}
	}
	batch.prune()
	e.mu.Unlock()

	batch.publish()
	return stepped
}

// remove drops the entity from the map and the order slice. Caller holds
// the engine lock
func (e *Engine) remove(ent core.Entity) {
	delete(e.animators, ent)
	for i, o := range e.order {
		if o == ent {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	e.attached.Add(-1)
}

// stepBatch accumulates notifications and pending drops for one stepping
// pass. Events publish only after the whole batch has stepped
type stepBatch struct {
	engine *Engine
	events []event.Event
	drops  []AnimatorDroppedPayload
	seen   map[any]core.Entity
}

func newStepBatch(e *Engine) *stepBatch {
	b := &stepBatch{engine: e}
	if e.debugChecks {
		b.seen = make(map[any]core.Entity)
	}
	return b
}

// step advances one animator, isolating failures: a failing animator is
// logged, dropped, and the rest of the batch continues
func (b *stepBatch) step(ent core.Entity, a *Animator, dt time.Duration) {
	if a.state == StatePaused || a.speed <= 0 || a.notified {
		return
	}

	target, err := resolveTarget(b.engine.world, a.target, ent, a.tweenable.TargetType())
	if err != nil {
		b.fail(ent, err)
		return
	}

	if b.seen != nil {
		if prev, aliased := b.seen[target]; aliased {
			log.Printf("tween: entities %d and %d animate the same target, last write wins", prev, ent)
		} else {
			b.seen[target] = ent
		}
	}

	scaled := time.Duration(float64(dt) * a.speed)
	res, err := a.tweenable.Step(scaled, target)
	if err != nil {
		b.fail(ent, err)
		return
	}

	if res.CyclesCompleted > 0 {
		b.events = append(b.events, event.Event{
			Type:    event.EventCycleCompleted,
			Payload: &CycleCompletedPayload{Entity: ent, Target: a.target, Count: res.CyclesCompleted},
		})
	}
	if res.State == tween.StateCompleted {
		a.notified = true
		b.engine.completed.Add(1)
		b.events = append(b.events, event.Event{
			Type:    event.EventAnimationCompleted,
			Payload: &AnimationCompletedPayload{Entity: ent, Target: a.target},
		})
		if a.destroyOnCompletion {
			b.drops = append(b.drops, AnimatorDroppedPayload{Entity: ent, Reason: DropCompleted})
		}
	}
}

func (b *stepBatch) fail(ent core.Entity, err error) {
	log.Printf("tween: dropping animator on entity %d: %v", ent, err)
	b.engine.stepErrors.Add(1)
	b.drops = append(b.drops, AnimatorDroppedPayload{Entity: ent, Reason: DropFailed})
}

// prune removes dropped animators. Caller holds the engine lock
func (b *stepBatch) prune() {
	for i := range b.drops {
		b.engine.remove(b.drops[i].Entity)
		b.events = append(b.events, event.Event{
			Type:    event.EventAnimatorDropped,
			Payload: &b.drops[i],
		})
	}
}

// publish pushes buffered notifications. Called outside the engine lock
func (b *stepBatch) publish() {
	for _, ev := range b.events {
		b.engine.eventsQueue.Push(ev)
	}
}
