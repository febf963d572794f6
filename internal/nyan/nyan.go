// Package nyan implements the optional color-rotation presentation
// mode: an HSL<->RGB conversion pair and a hue-rotation helper. It has
// no dependency on the CHIP-8 core; the presentation window is the
// only caller.
package nyan

import "math"

// RGB is a color with each channel in [0, 1].
type RGB struct {
	R, G, B float64
}

// HSL is a color in hue/saturation/lightness form. Hue is in degrees,
// [0, 360); saturation and lightness are in [0, 1].
type HSL struct {
	H int
	S float64
	L float64
}

func minOf(a, b float64) float64 {
	if a <= b {
		return a
	}
	return b
}

func maxOf(a, b float64) float64 {
	if a >= b {
		return a
	}
	return b
}

// RGBToHSL converts an RGB color to HSL.
func RGBToHSL(c RGB) HSL {
	min := minOf(minOf(c.R, c.G), c.B)
	max := maxOf(maxOf(c.R, c.G), c.B)
	chroma := max - min

	hsl := HSL{L: (min + max) / 2}

	if min == max {
		hsl.S = 0
		hsl.H = 0
		return hsl
	}

	switch max {
	case c.R:
		hsl.H = int(math.Round(60 * ((c.G - c.B) / chroma)))
	case c.G:
		hsl.H = int(math.Round(60 * (2 + (c.B-c.R)/chroma)))
	default:
		hsl.H = int(math.Round(60 * (4 + (c.R-c.G)/chroma)))
	}

	if hsl.H < 0 {
		hsl.H += 360
	} else if hsl.H > 360 {
		hsl.H -= 360
	}

	hsl.S = chroma / (1 - math.Abs(2*max-chroma-1))

	return hsl
}

// HSLToRGB converts an HSL color back to RGB.
func HSLToRGB(hsl HSL) RGB {
	if hsl.S == 0 {
		return RGB{R: hsl.L, G: hsl.L, B: hsl.L}
	}

	chroma := (1 - math.Abs(2*hsl.L-1)) * hsl.S
	hue := float64(((hsl.H % 360) + 360) % 360)
	hueF := hue / 60
	x := chroma * (1 - math.Abs(math.Mod(hueF, 2)-1))

	var r, g, b float64
	switch {
	case hueF <= 1:
		r, g, b = chroma, x, 0
	case hueF <= 2:
		r, g, b = x, chroma, 0
	case hueF <= 3:
		r, g, b = 0, chroma, x
	case hueF <= 4:
		r, g, b = 0, x, chroma
	case hueF <= 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	m := hsl.L - chroma/2
	return RGB{R: r + m, G: g + m, B: b + m}
}

// RotateHue advances c's hue by degreesPerFrame (wrapping mod 360) and
// returns the resulting color, preserving saturation and lightness.
// It is the presentation window's "Nyan mode" foreground color step.
func RotateHue(c RGB, degreesPerFrame int) RGB {
	hsl := RGBToHSL(c)
	hsl.H = ((hsl.H+degreesPerFrame)%360 + 360) % 360
	return HSLToRGB(hsl)
}
