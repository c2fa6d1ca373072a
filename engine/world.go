package engine

import (
	"reflect"
	"sync"

	"github.com/lixenwraith/tween/core"
)

// componentStore is the type-erased view of a Store[T], used for entity
// cleanup and target resolution by reflect.Type
type componentStore interface {
	removeEntity(core.Entity)
	resolveEntity(core.Entity) (any, bool)
}

// World contains all entities, their component stores, and the shared
// resources animations target
type World struct {
	mu         sync.RWMutex
	nextEntity core.Entity
	alive      map[core.Entity]struct{}
	stores     map[reflect.Type]componentStore
	resources  *Resource
}

// NewWorld creates an empty world with initialized resources
func NewWorld() *World {
	return &World{
		nextEntity: 1,
		alive:      make(map[core.Entity]struct{}),
		stores:     make(map[reflect.Type]componentStore),
		resources:  newResource(),
	}
}

// Resources returns the world's singleton resources
func (w *World) Resources() *Resource {
	return w.resources
}

// CreateEntity creates a new entity and returns its ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntity
	w.nextEntity++
	w.alive[id] = struct{}{}
	return id
}

// DestroyEntity removes an entity and all its components
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	stores := make([]componentStore, 0, len(w.stores))
	for _, s := range w.stores {
		stores = append(stores, s)
	}
	delete(w.alive, e)
	w.mu.Unlock()

	// Store locks are independent of the world lock
	for _, s := range stores {
		s.removeEntity(e)
	}
}

// Alive reports whether the entity exists
func (w *World) Alive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.alive[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.alive)
}

// storeByType returns the registered store for a component type
func (w *World) storeByType(t reflect.Type) (componentStore, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	s, ok := w.stores[t]
	return s, ok
}

// StoreFor returns the component store for type T, creating and
// registering it on first use
func StoreFor[T any](w *World) *Store[T] {
	t := reflect.TypeFor[T]()

	w.mu.RLock()
	s, ok := w.stores[t]
	w.mu.RUnlock()
	if ok {
		return s.(*Store[T])
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if s, ok := w.stores[t]; ok {
		return s.(*Store[T])
	}
	ns := NewStore[T]()
	w.stores[t] = ns
	return ns
}

// AddComponent attaches a component to an entity and returns its stable
// pointer, or false when the entity is dead
func AddComponent[T any](w *World, e core.Entity, val T) (*T, bool) {
	if !w.Alive(e) {
		return nil, false
	}
	return StoreFor[T](w).SetComponent(e, val), true
}

// GetComponent retrieves an entity's component pointer
func GetComponent[T any](w *World, e core.Entity) (*T, bool) {
	return StoreFor[T](w).GetComponent(e)
}

// RemoveComponent detaches a component from an entity
func RemoveComponent[T any](w *World, e core.Entity) {
	StoreFor[T](w).RemoveEntity(e)
}
