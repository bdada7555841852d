package paint

import "math"

// Color is a plain RGBA value. Alpha 255 is opaque.
type Color struct {
	R, G, B, A uint8
}

// RGB builds a color from 8-bit components.
func RGB(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBF builds a color from components in [0, 1].
func RGBF(r, g, b, a float64) Color {
	return Color{
		R: uint8(clamp01(r) * 255),
		G: uint8(clamp01(g) * 255),
		B: uint8(clamp01(b) * 255),
		A: uint8(clamp01(a) * 255),
	}
}

// HSV builds a color from a hue in degrees (wrapped into [0, 360)) with
// saturation, value, and alpha in the 0-255 range.
func HSV(hue float64, s, v, a uint8) Color {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	sf := float64(s) / 255
	vf := float64(v) / 255

	c := vf * sf
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := vf - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Color{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: a,
	}
}

// WheelRGB maps v in [0, 1530] onto a six-band color wheel: red, magenta,
// blue, cyan, green, yellow, back to red, each band a 255-step linear ramp.
// Values outside the range come back black.
func WheelRGB(v int) Color {
	switch {
	case v >= 0 && v <= 255:
		return Color{R: 255, G: 0, B: uint8(v), A: 255}
	case v <= 510:
		return Color{R: uint8(255 - (v - 255)), G: 0, B: 255, A: 255}
	case v <= 765:
		return Color{R: 0, G: uint8(v - 510), B: 255, A: 255}
	case v <= 1020:
		return Color{R: 0, G: 255, B: uint8(255 - (v - 765)), A: 255}
	case v <= 1275:
		return Color{R: uint8(v - 1020), G: 255, B: 0, A: 255}
	case v <= 1530:
		return Color{R: 255, G: uint8(255 - (v - 1275)), B: 0, A: 255}
	}
	return Color{A: 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
