package engine

import (
	"sync"

	"github.com/lixenwraith/tween/core"
)

// Store is a generic container for a specific component type T
// Components are held by pointer so lenses mutate them in place
type Store[T any] struct {
	mu         sync.RWMutex
	components map[core.Entity]*T
	entities   []core.Entity // Array of entities that have this component
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]*T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// SetComponent inserts or replaces a component for an entity and returns
// the stable pointer animations write through
func (s *Store[T]) SetComponent(e core.Entity, val T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ptr, exists := s.components[e]; exists {
		*ptr = val
		return ptr
	}
	ptr := &val
	s.components[e] = ptr
	s.entities = append(s.entities, e)
	return ptr
}

// GetComponent retrieves a component pointer for an entity
func (s *Store[T]) GetComponent(e core.Entity) (*T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ptr, ok := s.components[e]
	return ptr, ok
}

// RemoveEntity deletes a component from an entity
func (s *Store[T]) RemoveEntity(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; exists {
		delete(s.components, e)
		for i, entity := range s.entities {
			if entity == e {
				s.entities[i] = s.entities[len(s.entities)-1]
				s.entities = s.entities[:len(s.entities)-1]
				break
			}
		}
	}
}

// HasEntity checks if entity has this component
func (s *Store[T]) HasEntity(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// GetAllEntities returns all entities with this component type
func (s *Store[T]) GetAllEntities() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// CountEntities returns number of entities with this component
func (s *Store[T]) CountEntities() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// ClearAllComponents removes all components from this store
func (s *Store[T]) ClearAllComponents() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = make(map[core.Entity]*T)
	s.entities = make([]core.Entity, 0, 64)
}

// removeEntity implements componentStore for type-erased cleanup
func (s *Store[T]) removeEntity(e core.Entity) {
	s.RemoveEntity(e)
}

// resolveEntity implements componentStore for type-erased target resolution
func (s *Store[T]) resolveEntity(e core.Entity) (any, bool) {
	ptr, ok := s.GetComponent(e)
	if !ok {
		return nil, false
	}
	return ptr, true
}
