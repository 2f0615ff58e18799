package csscolor

import (
	"image/color"
	"math"
)

// HSL is a colour in the hue, saturation, lightness space.
type HSL struct {
	// H is the hue in degrees, [0, 360).
	H float64

	// S is the saturation, [0, 1].
	S float64

	// L is the lightness, [0, 1].
	L float64

	// A is the alpha, [0, 1].
	A float64
}

// RGBA implements [color.Color].
func (c HSL) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts the colour to 8-bit non-premultiplied RGBA.
func (c HSL) NRGBA() color.NRGBA {
	r, g, b := hslToRGB(wrapHue(c.H)/360, c.S, c.L)
	return color.NRGBA{
		R: unitToByte(r),
		G: unitToByte(g),
		B: unitToByte(b),
		A: unitToByte(c.A),
	}
}

// HSLToRGB converts a hue in degrees and byte-scaled saturation and lightness
// to RGB. The alpha byte is passed through unchanged.
func HSLToRGB(hue int, saturation, lightness, alpha uint8) color.NRGBA {
	r, g, b := hslToRGB(wrapHue(float64(hue))/360, float64(saturation)/255, float64(lightness)/255)
	return color.NRGBA{
		R: unitToByte(r),
		G: unitToByte(g),
		B: unitToByte(b),
		A: alpha,
	}
}

// hslToRGB is the sextant conversion. All inputs and outputs are in [0, 1].
func hslToRGB(h, sl, l float64) (r, g, b float64) {
	// Chroma peak.
	var v float64
	if l <= 0.5 {
		v = l * (1 + sl)
	} else {
		v = l + sl - l*sl
	}
	if v <= 0 {
		return l, l, l
	}

	var (
		m       = l + l - v
		sv      = (v - m) / v
		sextant int
	)
	h *= 6
	if h >= 6 {
		h = 0
	}
	sextant = int(h)

	var (
		fract = h - float64(sextant)
		vsf   = v * sv * fract
		mid1  = m + vsf
		mid2  = v - vsf
	)
	switch sextant {
	case 0:
		return v, mid1, m
	case 1:
		return mid2, v, m
	case 2:
		return m, v, mid1
	case 3:
		return m, mid2, v
	case 4:
		return mid1, m, v
	default:
		return v, m, mid2
	}
}

// wrapHue maps any angle in degrees onto [0, 360).
func wrapHue(deg float64) float64 {
	return math.Mod(math.Mod(deg, 360)+360, 360)
}

func unitToByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(math.Round(v * 255))
}
