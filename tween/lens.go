package tween

// Lens writes an interpolated value into a subset of the target's fields.
// The factor is the eased interpolation factor; easing curves such as back
// or elastic produce factors outside [0,1], and lenses are expected to
// extrapolate rather than clamp unless their field domain requires it
type Lens[T any] interface {
	Lerp(target *T, factor float64)
}

// LensFunc adapts a plain function to the Lens interface
type LensFunc[T any] func(target *T, factor float64)

// Lerp calls f
func (f LensFunc[T]) Lerp(target *T, factor float64) {
	f(target, factor)
}
