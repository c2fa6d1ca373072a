package lens

import (
	"testing"

	"github.com/quasilyte/gmath"

	"github.com/lixenwraith/tween/component"
	"github.com/lixenwraith/tween/core"
)

func TestTransformPositionLens(t *testing.T) {
	l := TransformPositionLens{
		Start: gmath.Vec{X: 0, Y: 10},
		End:   gmath.Vec{X: 100, Y: 20},
	}
	tr := component.NewTransform(gmath.Vec{})

	l.Lerp(&tr, 0.5)
	if !approx(tr.Position.X, 50) || !approx(tr.Position.Y, 15) {
		t.Errorf("position = %v", tr.Position)
	}

	// overshoot extrapolates past the endpoints
	l.Lerp(&tr, 1.2)
	if !approx(tr.Position.X, 120) {
		t.Errorf("position.X = %v, want 120", tr.Position.X)
	}

	// scale untouched by the position lens
	if tr.Scale.X != 1 || tr.Scale.Y != 1 {
		t.Errorf("scale = %v", tr.Scale)
	}
}

func TestTransformRotationLens(t *testing.T) {
	l := TransformRotationLens{Start: 0, End: 3.14}
	var tr component.TransformComponent
	l.Lerp(&tr, 0.5)
	if !approx(tr.Rotation, 1.57) {
		t.Errorf("rotation = %v, want 1.57", tr.Rotation)
	}
}

func approx(got, want float64) bool {
	d := got - want
	return d < 1e-9 && d > -1e-9
}

func TestGlyphFgLens(t *testing.T) {
	l := GlyphFgLens{
		Start: core.RGB{R: 0, G: 100, B: 200},
		End:   core.RGB{R: 200, G: 100, B: 0},
	}
	g := component.GlyphComponent{Rune: '@'}

	l.Lerp(&g, 0.5)
	if g.Fg != (core.RGB{R: 100, G: 100, B: 100}) {
		t.Errorf("fg = %+v", g.Fg)
	}
	if g.Rune != '@' {
		t.Error("lens touched the rune")
	}

	// channel overshoot clamps at the color domain
	l.Lerp(&g, 2)
	if g.Fg != (core.RGB{R: 255, G: 100, B: 0}) {
		t.Errorf("fg = %+v", g.Fg)
	}
}

func TestOpacityLensClamps(t *testing.T) {
	l := OpacityLens{Start: 0, End: 1}
	var o component.OpacityComponent

	l.Lerp(&o, 0.3)
	if !approx(o.Value, 0.3) {
		t.Errorf("value = %v", o.Value)
	}
	l.Lerp(&o, 1.5)
	if o.Value != 1 {
		t.Errorf("value = %v, want clamp at 1", o.Value)
	}
	l.Lerp(&o, -0.5)
	if o.Value != 0 {
		t.Errorf("value = %v, want clamp at 0", o.Value)
	}
}

func TestPaletteFgLens(t *testing.T) {
	l := PaletteFgLens{Start: core.RGBBlack, End: core.RGBWhite}
	p := component.PaletteAsset{Bg: core.RGBBlack}

	l.Lerp(&p, 1)
	if p.Fg != core.RGBWhite {
		t.Errorf("fg = %+v", p.Fg)
	}
	if p.Bg != core.RGBBlack {
		t.Error("lens touched the background")
	}
}
