package engine

import (
	"reflect"
	"sync"

	"github.com/lixenwraith/tween/core"
)

// assetCollection is the type-erased view of an Assets[A], used for target
// resolution by element type
type assetCollection interface {
	resolveAsset(core.AssetID) (any, bool)
}

// Assets is an id-keyed collection of shared values of type A. A single
// asset may be referenced from many entities; animating it moves every
// referent at once
type Assets[A any] struct {
	mu     sync.RWMutex
	items  map[core.AssetID]*A
	nextID core.AssetID
}

// NewAssets creates an empty collection
func NewAssets[A any]() *Assets[A] {
	return &Assets[A]{
		items:  make(map[core.AssetID]*A),
		nextID: 1,
	}
}

// Add inserts a new asset and returns its id
func (a *Assets[A]) Add(val A) core.AssetID {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.nextID
	a.nextID++
	a.items[id] = &val
	return id
}

// Get retrieves an asset pointer by id
func (a *Assets[A]) Get(id core.AssetID) (*A, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	ptr, ok := a.items[id]
	return ptr, ok
}

// Remove deletes an asset by id
func (a *Assets[A]) Remove(id core.AssetID) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.items, id)
}

// Len returns the number of stored assets
func (a *Assets[A]) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.items)
}

// resolveAsset implements assetCollection
func (a *Assets[A]) resolveAsset(id core.AssetID) (any, bool) {
	ptr, ok := a.Get(id)
	if !ok {
		return nil, false
	}
	return ptr, true
}

// RegisterAssets creates (or returns) the world's asset collection for
// element type A and registers it for target resolution
func RegisterAssets[A any](w *World) *Assets[A] {
	r := w.resources
	t := reflect.TypeFor[A]()

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.assets[t]; ok {
		return c.(*Assets[A])
	}
	c := NewAssets[A]()
	r.assets[t] = c
	return c
}

// AssetsOf retrieves the registered collection for element type A
func AssetsOf[A any](w *World) (*Assets[A], bool) {
	r := w.resources
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.assets[reflect.TypeFor[A]()]
	if !ok {
		return nil, false
	}
	return c.(*Assets[A]), true
}
