package content

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/tween/tween"
)

// Library holds parsed animation definitions. Building is repeatable:
// every Build call returns a fresh tweenable, so one definition can drive
// many animators
type Library struct {
	mu   sync.RWMutex
	defs map[string]AnimationDef
}

// Parse reads a YAML document into a library
func Parse(data []byte) (*Library, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("content: parse: %w", err)
	}
	lib := &Library{defs: make(map[string]AnimationDef, len(f.Animations))}
	for name, def := range f.Animations {
		if err := validate(def); err != nil {
			return nil, fmt.Errorf("animation %q: %w", name, err)
		}
		lib.defs[name] = def
	}
	return lib, nil
}

// Load parses a YAML file into a library
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	return Parse(data)
}

// validate rejects definitions no builder could turn into a tweenable
func validate(def AnimationDef) error {
	if len(def.Steps) == 0 {
		return validateStep(def.StepDef)
	}
	if def.Lens != "" || def.Delay != 0 {
		return fmt.Errorf("%w: inline fields and steps are exclusive", ErrBadStep)
	}
	for i, step := range def.Steps {
		if err := validateStep(step); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

func validateStep(def StepDef) error {
	if def.Delay != 0 {
		if def.Lens != "" || def.Duration != 0 {
			return fmt.Errorf("%w: delay steps take no lens or duration", ErrBadStep)
		}
		if def.Delay < 0 {
			return fmt.Errorf("%w: negative delay", ErrBadStep)
		}
		return nil
	}
	if def.Lens == "" {
		return fmt.Errorf("%w: step needs a lens or a delay", ErrBadStep)
	}
	if _, ok := GetBuilder(def.Lens); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLens, def.Lens)
	}
	return nil
}

// Names returns the defined animation names, sorted
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.defs))
	for name := range l.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs a fresh tweenable for the named animation
func (l *Library) Build(name string) (tween.Tweenable, error) {
	l.mu.RLock()
	def, ok := l.defs[name]
	l.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAnimation, name)
	}

	if len(def.Steps) == 0 {
		return buildStep(def.StepDef)
	}

	children := make([]tween.Tweenable, 0, len(def.Steps))
	for i, step := range def.Steps {
		child, err := buildStep(step)
		if err != nil {
			return nil, fmt.Errorf("animation %q step %d: %w", name, i, err)
		}
		children = append(children, child)
	}
	seq, err := tween.NewSequence(children...)
	if err != nil {
		return nil, fmt.Errorf("animation %q: %w", name, err)
	}
	return seq, nil
}

// replace swaps the definitions wholesale (hot reload)
func (l *Library) replace(defs map[string]AnimationDef) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.defs = defs
}

func buildStep(def StepDef) (tween.Tweenable, error) {
	if def.Delay != 0 {
		return tween.NewDelay(def.Delay.Std()), nil
	}
	builder, ok := GetBuilder(def.Lens)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLens, def.Lens)
	}
	return builder(def)
}
