package engine

import "github.com/lixenwraith/tween/core"

// DropReason explains why an animator left the engine
type DropReason uint8

const (
	// DropRequested means the application detached the animator
	DropRequested DropReason = iota

	// DropCompleted means destroy-on-completion fired
	DropCompleted

	// DropFailed means a step failed (dead target, type mismatch) and the
	// engine discarded the animator to isolate the failure
	DropFailed
)

func (r DropReason) String() string {
	switch r {
	case DropRequested:
		return "Requested"
	case DropCompleted:
		return "Completed"
	case DropFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// CycleCompletedPayload reports cycle boundary crossings on one animator
// during a single step. Count batches multiple crossings from one large
// delta into a single notification. Target travels in the payload since
// the animator may already be pruned when the consumer reads it
type CycleCompletedPayload struct {
	Entity core.Entity
	Target Target
	Count  uint32
}

// AnimationCompletedPayload reports an animation reaching its total
// duration. Emitted at most once per playback; Stop and SetTweenable
// re-arm it
type AnimationCompletedPayload struct {
	Entity core.Entity
	Target Target
}

// AnimatorDroppedPayload reports an animator removed from the engine
type AnimatorDroppedPayload struct {
	Entity core.Entity
	Reason DropReason
}
