package component

import "github.com/lixenwraith/tween/core"

// GlyphComponent represents a single renderable character cell
type GlyphComponent struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
}

// TextComponent represents a renderable text run
type TextComponent struct {
	Text  string
	Color core.RGB
}

// OpacityComponent represents render transparency in [0,1]
type OpacityComponent struct {
	Value float64
}

// PaletteAsset is a shared color pair referenced by many entities.
// Animating it through an asset target recolors every referent at once
type PaletteAsset struct {
	Fg core.RGB
	Bg core.RGB
}
