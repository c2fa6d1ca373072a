// Package lens provides ready-made lenses for the built-in components.
// A lens writes the interpolated value for an eased factor into one slice
// of its target; factors outside [0,1] from overshooting curves
// extrapolate, except for color channels which clamp at their domain.
package lens

import (
	"github.com/quasilyte/gmath"

	"github.com/lixenwraith/tween/component"
	"github.com/lixenwraith/tween/core"
)

// TransformPositionLens animates TransformComponent.Position
type TransformPositionLens struct {
	Start gmath.Vec
	End   gmath.Vec
}

func (l TransformPositionLens) Lerp(target *component.TransformComponent, factor float64) {
	target.Position = gmath.Vec{
		X: gmath.Lerp(l.Start.X, l.End.X, factor),
		Y: gmath.Lerp(l.Start.Y, l.End.Y, factor),
	}
}

// TransformRotationLens animates TransformComponent.Rotation between two
// angles in radians, along the signed difference End-Start
type TransformRotationLens struct {
	Start float64
	End   float64
}

func (l TransformRotationLens) Lerp(target *component.TransformComponent, factor float64) {
	target.Rotation = gmath.Lerp(l.Start, l.End, factor)
}

// TransformScaleLens animates TransformComponent.Scale
type TransformScaleLens struct {
	Start gmath.Vec
	End   gmath.Vec
}

func (l TransformScaleLens) Lerp(target *component.TransformComponent, factor float64) {
	target.Scale = gmath.Vec{
		X: gmath.Lerp(l.Start.X, l.End.X, factor),
		Y: gmath.Lerp(l.Start.Y, l.End.Y, factor),
	}
}

// GlyphFgLens animates GlyphComponent.Fg
type GlyphFgLens struct {
	Start core.RGB
	End   core.RGB
}

func (l GlyphFgLens) Lerp(target *component.GlyphComponent, factor float64) {
	target.Fg = l.Start.Lerp(l.End, factor)
}

// GlyphBgLens animates GlyphComponent.Bg
type GlyphBgLens struct {
	Start core.RGB
	End   core.RGB
}

func (l GlyphBgLens) Lerp(target *component.GlyphComponent, factor float64) {
	target.Bg = l.Start.Lerp(l.End, factor)
}

// TextColorLens animates TextComponent.Color
type TextColorLens struct {
	Start core.RGB
	End   core.RGB
}

func (l TextColorLens) Lerp(target *component.TextComponent, factor float64) {
	target.Color = l.Start.Lerp(l.End, factor)
}

// OpacityLens animates OpacityComponent.Value, clamped to [0,1]
type OpacityLens struct {
	Start float64
	End   float64
}

func (l OpacityLens) Lerp(target *component.OpacityComponent, factor float64) {
	v := gmath.Lerp(l.Start, l.End, factor)
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	target.Value = v
}

// PaletteFgLens animates PaletteAsset.Fg, recoloring every entity that
// renders through the palette
type PaletteFgLens struct {
	Start core.RGB
	End   core.RGB
}

func (l PaletteFgLens) Lerp(target *component.PaletteAsset, factor float64) {
	target.Fg = l.Start.Lerp(l.End, factor)
}
