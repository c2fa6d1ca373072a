package content

import (
	"github.com/lixenwraith/tween/component"
	"github.com/lixenwraith/tween/lens"
	"github.com/lixenwraith/tween/tween"
)

// Built-in lens builders for the stock components. Applications register
// additional lenses for their own component types the same way
func init() {
	RegisterLens("transform_position", func(p Params) (tween.Lens[component.TransformComponent], error) {
		start, err := p.Vec("start")
		if err != nil {
			return nil, err
		}
		end, err := p.Vec("end")
		if err != nil {
			return nil, err
		}
		return lens.TransformPositionLens{Start: start, End: end}, nil
	})

	RegisterLens("transform_rotation", func(p Params) (tween.Lens[component.TransformComponent], error) {
		start, err := p.Float("start")
		if err != nil {
			return nil, err
		}
		end, err := p.Float("end")
		if err != nil {
			return nil, err
		}
		return lens.TransformRotationLens{Start: start, End: end}, nil
	})

	RegisterLens("transform_scale", func(p Params) (tween.Lens[component.TransformComponent], error) {
		start, err := p.Vec("start")
		if err != nil {
			return nil, err
		}
		end, err := p.Vec("end")
		if err != nil {
			return nil, err
		}
		return lens.TransformScaleLens{Start: start, End: end}, nil
	})

	RegisterLens("glyph_fg", func(p Params) (tween.Lens[component.GlyphComponent], error) {
		start, err := p.RGB("start")
		if err != nil {
			return nil, err
		}
		end, err := p.RGB("end")
		if err != nil {
			return nil, err
		}
		return lens.GlyphFgLens{Start: start, End: end}, nil
	})

	RegisterLens("glyph_bg", func(p Params) (tween.Lens[component.GlyphComponent], error) {
		start, err := p.RGB("start")
		if err != nil {
			return nil, err
		}
		end, err := p.RGB("end")
		if err != nil {
			return nil, err
		}
		return lens.GlyphBgLens{Start: start, End: end}, nil
	})

	RegisterLens("text_color", func(p Params) (tween.Lens[component.TextComponent], error) {
		start, err := p.RGB("start")
		if err != nil {
			return nil, err
		}
		end, err := p.RGB("end")
		if err != nil {
			return nil, err
		}
		return lens.TextColorLens{Start: start, End: end}, nil
	})

	RegisterLens("opacity", func(p Params) (tween.Lens[component.OpacityComponent], error) {
		start, err := p.Float("start")
		if err != nil {
			return nil, err
		}
		end, err := p.Float("end")
		if err != nil {
			return nil, err
		}
		return lens.OpacityLens{Start: start, End: end}, nil
	})

	RegisterLens("palette_fg", func(p Params) (tween.Lens[component.PaletteAsset], error) {
		start, err := p.RGB("start")
		if err != nil {
			return nil, err
		}
		end, err := p.RGB("end")
		if err != nil {
			return nil, err
		}
		return lens.PaletteFgLens{Start: start, End: end}, nil
	})
}
