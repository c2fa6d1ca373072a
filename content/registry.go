package content

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lixenwraith/tween/ease"
	"github.com/lixenwraith/tween/tween"
)

// StepBuilder builds a tweenable from a parsed step definition
type StepBuilder func(def StepDef) (tween.Tweenable, error)

var (
	buildersMu sync.RWMutex
	builders   = make(map[string]StepBuilder)
)

// RegisterBuilder adds a step builder by lens name
func RegisterBuilder(name string, builder StepBuilder) {
	buildersMu.Lock()
	defer buildersMu.Unlock()
	builders[name] = builder
}

// GetBuilder retrieves a step builder by lens name
func GetBuilder(name string) (StepBuilder, bool) {
	buildersMu.RLock()
	defer buildersMu.RUnlock()
	b, ok := builders[name]
	return b, ok
}

// BuilderNames returns all registered lens names
func BuilderNames() []string {
	buildersMu.RLock()
	defer buildersMu.RUnlock()
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	return names
}

// RegisterLens registers a lens factory under name. The factory turns the
// step's params into a typed lens; the surrounding tween is assembled from
// the step's ease, duration, repeat, and direction fields
func RegisterLens[T any](name string, factory func(params Params) (tween.Lens[T], error)) {
	RegisterBuilder(name, func(def StepDef) (tween.Tweenable, error) {
		l, err := factory(def.Params)
		if err != nil {
			return nil, fmt.Errorf("lens %q: %w", name, err)
		}
		method, err := easeByName(def.Ease)
		if err != nil {
			return nil, err
		}
		if def.Duration <= 0 {
			return nil, fmt.Errorf("%w: lens %q needs a positive duration", ErrBadStep, name)
		}
		count, err := parseRepeat(def.Repeat)
		if err != nil {
			return nil, err
		}
		strategy := tween.Repeat
		if def.Mirrored {
			strategy = tween.MirroredRepeat
		}
		tw := tween.New(method, def.Duration.Std(), count, strategy, l)
		if def.Backward {
			tw.WithDirection(tween.Backward)
		}
		return tw, nil
	})
}

func easeByName(name string) (ease.Method, error) {
	if name == "" {
		return ease.Linear, nil
	}
	m, ok := ease.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
	}
	return m, nil
}

// parseRepeat reads "once", "infinite", "for:<duration>", or a cycle count
func parseRepeat(s string) (tween.RepeatCount, error) {
	switch {
	case s == "" || s == "once":
		return tween.Once(), nil
	case s == "infinite":
		return tween.Infinite(), nil
	case strings.HasPrefix(s, "for:"):
		d, err := time.ParseDuration(strings.TrimPrefix(s, "for:"))
		if err != nil {
			return tween.RepeatCount{}, fmt.Errorf("%w: repeat %q: %v", ErrBadStep, s, err)
		}
		return tween.For(d), nil
	default:
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return tween.RepeatCount{}, fmt.Errorf("%w: repeat %q", ErrBadStep, s)
		}
		return tween.Finite(uint32(n)), nil
	}
}
