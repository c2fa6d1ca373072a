// Package content loads declarative animation definitions from YAML files
// and builds runnable tweenables from them. Lens construction goes through
// a name-keyed builder registry so applications can expose their own
// component lenses to content authors.
package content

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownAnimation is returned when building a name the library
	// does not define
	ErrUnknownAnimation = errors.New("content: unknown animation")

	// ErrUnknownLens is returned when a step names an unregistered lens
	ErrUnknownLens = errors.New("content: unknown lens")

	// ErrUnknownEase is returned when a step names an unknown easing curve
	ErrUnknownEase = errors.New("content: unknown ease")

	// ErrBadStep is returned when a step definition is structurally invalid
	ErrBadStep = errors.New("content: bad step definition")
)

// File is the top-level YAML document
type File struct {
	Animations map[string]AnimationDef `yaml:"animations"`
}

// AnimationDef defines one named animation: either a single inline step
// or a sequence of steps
type AnimationDef struct {
	StepDef `yaml:",inline"`
	Steps   []StepDef `yaml:"steps"`
}

// StepDef defines one tweenable: a pure delay, or a lens-driven tween
type StepDef struct {
	// Delay makes this step a pure wait; all other fields must be empty
	Delay Duration `yaml:"delay"`

	// Lens names a registered lens builder
	Lens string `yaml:"lens"`

	// Ease names a curve from the ease package; empty means linear
	Ease string `yaml:"ease"`

	// Duration is the length of one cycle
	Duration Duration `yaml:"duration"`

	// Repeat is "once" (default), "infinite", "for:<duration>", or a
	// cycle count
	Repeat string `yaml:"repeat"`

	// Mirrored selects ping-pong repetition
	Mirrored bool `yaml:"mirrored"`

	// Backward starts playback from the lens end value
	Backward bool `yaml:"backward"`

	// Params carries lens-specific values (start, end, colors)
	Params Params `yaml:"params"`
}

// Duration wraps time.Duration with Go duration string parsing ("250ms")
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("%w: duration must be a string like \"250ms\"", ErrBadStep)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadStep, err)
	}
	*d = Duration(v)
	return nil
}

// Std returns the wrapped time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
