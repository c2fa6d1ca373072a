package content

import (
	"fmt"

	"github.com/quasilyte/gmath"

	"github.com/lixenwraith/tween/core"
)

// Params holds lens-specific values from a step's params block
type Params map[string]any

// Float returns a numeric parameter
func (p Params) Float(key string) (float64, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing param %q", ErrBadStep, key)
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("%w: param %q is not a number", ErrBadStep, key)
	}
	return f, nil
}

// Vec returns a vector parameter written as {x: 1, y: 2}
func (p Params) Vec(key string) (gmath.Vec, error) {
	m, err := p.sub(key)
	if err != nil {
		return gmath.Vec{}, err
	}
	x, err := m.Float("x")
	if err != nil {
		return gmath.Vec{}, err
	}
	y, err := m.Float("y")
	if err != nil {
		return gmath.Vec{}, err
	}
	return gmath.Vec{X: x, Y: y}, nil
}

// RGB returns a color parameter written as {r: 255, g: 128, b: 0}
func (p Params) RGB(key string) (core.RGB, error) {
	m, err := p.sub(key)
	if err != nil {
		return core.RGB{}, err
	}
	r, err := m.channel("r")
	if err != nil {
		return core.RGB{}, err
	}
	g, err := m.channel("g")
	if err != nil {
		return core.RGB{}, err
	}
	b, err := m.channel("b")
	if err != nil {
		return core.RGB{}, err
	}
	return core.RGB{R: r, G: g, B: b}, nil
}

func (p Params) sub(key string) (Params, error) {
	v, ok := p[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing param %q", ErrBadStep, key)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: param %q is not a mapping", ErrBadStep, key)
	}
	return Params(m), nil
}

func (p Params) channel(key string) (uint8, error) {
	f, err := p.Float(key)
	if err != nil {
		return 0, err
	}
	if f < 0 || f > 255 {
		return 0, fmt.Errorf("%w: channel %q out of range: %v", ErrBadStep, key, f)
	}
	return uint8(f), nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
