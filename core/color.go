package core

// RGB stores explicit 8-bit color channels, decoupled from any renderer
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Lerp interpolates per channel toward dst by factor t.
// t outside [0,1] extrapolates and is clamped per channel
func (c RGB) Lerp(dst RGB, t float64) RGB {
	return RGB{
		R: lerpChannel(c.R, dst.R, t),
		G: lerpChannel(c.G, dst.G, t),
		B: lerpChannel(c.B, dst.B, t),
	}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
