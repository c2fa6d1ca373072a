package engine

import (
	"fmt"
	"reflect"

	"github.com/lixenwraith/tween/core"
)

// TargetKind selects where an animator's mutable value lives
type TargetKind uint8

const (
	// TargetSelf animates a component of the tweenable's target type on
	// the entity the animator is attached to. This is the default
	TargetSelf TargetKind = iota

	// TargetComponent animates a component on an explicit entity
	TargetComponent

	// TargetResource animates a world singleton
	TargetResource

	// TargetAsset animates a shared asset by id
	TargetAsset
)

func (k TargetKind) String() string {
	switch k {
	case TargetSelf:
		return "Self"
	case TargetComponent:
		return "Component"
	case TargetResource:
		return "Resource"
	case TargetAsset:
		return "Asset"
	default:
		return "Unknown"
	}
}

// Target identifies the mutable value an animator resolves before each
// step. The zero value is the implicit self target
type Target struct {
	Kind   TargetKind
	Entity core.Entity
	Asset  core.AssetID
	typ    reflect.Type
}

// SelfTarget animates the owning entity's component of the tweenable's
// target type
func SelfTarget() Target {
	return Target{Kind: TargetSelf}
}

// ComponentTarget animates component C on the given entity
func ComponentTarget[C any](e core.Entity) Target {
	return Target{Kind: TargetComponent, Entity: e, typ: reflect.TypeFor[C]()}
}

// ResourceTarget animates the world singleton of type R
func ResourceTarget[R any]() Target {
	return Target{Kind: TargetResource, typ: reflect.TypeFor[R]()}
}

// AssetTarget animates the asset with the given id in the collection of
// element type A
func AssetTarget[A any](id core.AssetID) Target {
	return Target{Kind: TargetAsset, Asset: id, typ: reflect.TypeFor[A]()}
}

// Type returns the target's value type, or nil for a self target whose
// type comes from the animator's tweenable
func (t Target) Type() reflect.Type {
	return t.typ
}

// resolveTarget returns the pointer the lens writes through. Resolution
// runs before every step so stale entities, removed components, and
// dropped assets surface as errors instead of writes into freed values
func resolveTarget(w *World, t Target, owner core.Entity, selfType reflect.Type) (any, error) {
	kind := t.Kind
	typ := t.typ
	entity := t.Entity
	if kind == TargetSelf {
		kind = TargetComponent
		typ = selfType
		entity = owner
	}

	switch kind {
	case TargetComponent:
		if !w.Alive(entity) {
			return nil, fmt.Errorf("%w: entity %d", ErrEntityNotFound, entity)
		}
		store, ok := w.storeByType(typ)
		if !ok {
			return nil, fmt.Errorf("%w: no %v on entity %d", ErrComponentNotFound, typ, entity)
		}
		ptr, ok := store.resolveEntity(entity)
		if !ok {
			return nil, fmt.Errorf("%w: no %v on entity %d", ErrComponentNotFound, typ, entity)
		}
		return ptr, nil

	case TargetResource:
		ptr, ok := w.resources.resolveSingleton(typ)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrResourceNotFound, typ)
		}
		return ptr, nil

	case TargetAsset:
		coll, ok := w.resources.resolveAssets(typ)
		if !ok {
			return nil, fmt.Errorf("%w: no %v collection registered", ErrAssetNotFound, typ)
		}
		ptr, ok := coll.resolveAsset(t.Asset)
		if !ok {
			return nil, fmt.Errorf("%w: %v id %d", ErrAssetNotFound, typ, t.Asset)
		}
		return ptr, nil

	default:
		return nil, fmt.Errorf("%w: unknown target kind %d", ErrComponentNotFound, kind)
	}
}
