package engine

import (
	"reflect"
	"sync"
	"time"

	"github.com/lixenwraith/tween/event"
	"github.com/lixenwraith/tween/status"
)

// Resource holds singleton world resources, initialized during World
// creation and accessed via World.Resources
type Resource struct {
	// Time is updated once per stepping batch
	Time *TimeResource

	// Event carries playback notifications to the application loop
	Event *EventQueueResource

	// Telemetry
	Status *status.Registry

	// User-defined singletons and asset collections, keyed by type for
	// target resolution
	mu         sync.RWMutex
	singletons map[reflect.Type]any
	assets     map[reflect.Type]assetCollection
}

func newResource() *Resource {
	return &Resource{
		Time:       &TimeResource{},
		Event:      &EventQueueResource{Queue: event.NewQueue()},
		Status:     status.NewRegistry(),
		singletons: make(map[reflect.Type]any),
		assets:     make(map[reflect.Type]assetCollection),
	}
}

// TimeResource tracks the animation timeline fed by external deltas
type TimeResource struct {
	// Elapsed is the accumulated stepped time
	Elapsed time.Duration

	// Delta is the duration of the last stepping batch
	Delta time.Duration

	// Frame is the stepping batch count
	Frame int64
}

// Update modifies TimeResource fields in-place (zero allocation)
// Must be called from the single stepping goroutine
func (tr *TimeResource) Update(dt time.Duration) {
	tr.Elapsed += dt
	tr.Delta = dt
	tr.Frame++
}

// EventQueueResource wraps the notification queue for application access
type EventQueueResource struct {
	Queue *event.Queue
}

// InsertResource stores a singleton of type R in the world, replacing any
// previous value, and returns the stable pointer animations write through
func InsertResource[R any](w *World, val R) *R {
	r := w.resources
	t := reflect.TypeFor[R]()

	r.mu.Lock()
	defer r.mu.Unlock()
	if ptr, ok := r.singletons[t]; ok {
		p := ptr.(*R)
		*p = val
		return p
	}
	ptr := &val
	r.singletons[t] = ptr
	return ptr
}

// ResourceOf retrieves the singleton of type R, or false if absent
func ResourceOf[R any](w *World) (*R, bool) {
	r := w.resources
	r.mu.RLock()
	defer r.mu.RUnlock()
	ptr, ok := r.singletons[reflect.TypeFor[R]()]
	if !ok {
		return nil, false
	}
	return ptr.(*R), true
}

// RemoveResource deletes the singleton of type R
func RemoveResource[R any](w *World) {
	r := w.resources
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.singletons, reflect.TypeFor[R]())
}

// resolveSingleton looks up a singleton pointer by type
func (r *Resource) resolveSingleton(t reflect.Type) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ptr, ok := r.singletons[t]
	return ptr, ok
}

// resolveAssets looks up an asset collection by element type
func (r *Resource) resolveAssets(t reflect.Type) (assetCollection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.assets[t]
	return c, ok
}
