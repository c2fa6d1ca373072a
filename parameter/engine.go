package parameter

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the notification ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Animator Defaults
const (
	// DefaultAnimatorSpeed is the playback speed multiplier of a fresh animator
	DefaultAnimatorSpeed = 1.0
)
