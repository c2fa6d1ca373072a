package engine

import "errors"

var (
	// ErrEntityNotFound is returned when resolving a target on a dead or
	// unknown entity
	ErrEntityNotFound = errors.New("engine: entity not found")

	// ErrComponentNotFound is returned when the target entity exists but
	// lacks the component the lens writes to
	ErrComponentNotFound = errors.New("engine: component not found")

	// ErrResourceNotFound is returned when no resource of the target type
	// was inserted into the world
	ErrResourceNotFound = errors.New("engine: resource not found")

	// ErrAssetNotFound is returned when the asset collection is missing or
	// the asset id is not present in it
	ErrAssetNotFound = errors.New("engine: asset not found")

	// ErrAnimatorNotFound is returned when stepping an entity that has no
	// attached animator
	ErrAnimatorNotFound = errors.New("engine: animator not found")

	// ErrNilTweenable is returned when an animator is given a nil tweenable
	ErrNilTweenable = errors.New("engine: nil tweenable")
)
