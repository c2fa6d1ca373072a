package event

// EventType represents the type of animation notification
type EventType int

const (
	// === Playback Event ===

	// EventCycleCompleted signals one or more cycle boundary crossings on an
	// animator during a single step. Batched: Count carries the number of
	// boundaries the step crossed
	// Trigger: Stepping an animator across a cycle boundary
	// Consumer: Application loop | Payload: *engine.CycleCompletedPayload
	EventCycleCompleted EventType = iota

	// EventAnimationCompleted signals an animator's tweenable reached its
	// total duration. Emitted at most once per playback; rewinding re-arms
	// Trigger: Stepping an animator to completion
	// Consumer: Application loop | Payload: *engine.AnimationCompletedPayload
	EventAnimationCompleted

	// EventAnimatorDropped signals an animator was removed from the engine,
	// either on request, on destroy-on-completion, or after a step failure
	// Trigger: Engine pruning pass
	// Consumer: Application loop | Payload: *engine.AnimatorDroppedPayload
	EventAnimatorDropped
)

// Event represents a single notification with metadata
type Event struct {
	Type    EventType
	Payload any
}
