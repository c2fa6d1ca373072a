package component

import "github.com/quasilyte/gmath"

// TransformComponent represents an entity's placement in world space
type TransformComponent struct {
	Position gmath.Vec
	Rotation float64 // Radians
	Scale    gmath.Vec
}

// NewTransform creates a transform at the given position with unit scale
func NewTransform(pos gmath.Vec) TransformComponent {
	return TransformComponent{
		Position: pos,
		Scale:    gmath.Vec{X: 1, Y: 1},
	}
}
