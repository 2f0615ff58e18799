package pixel

import "image/color"

// Models for the standard color types.
var (
	MonoModel   color.Model = color.ModelFunc(monoModel)
	Gray4Model  color.Model = color.ModelFunc(gray4Model)
	CRGB15Model color.Model = color.ModelFunc(crgb15Model)
	CRGB16Model color.Model = color.ModelFunc(crgb16Model)
)

var (
	Off = Mono{false}
	On  = Mono{true}
)

// Displays have no alpha channel. All models work on the premultiplied
// values returned by [color.Color.RGBA], which composites translucent colors
// over black.

// luma returns the 16-bit luminance of c.
func luma(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()

	// These coefficients (the fractions 0.299, 0.587 and 0.114) are the same
	// as those given by the JFIF specification and used by func RGBToYCbCr in
	// ycbcr.go. Note that 19595 + 38470 + 7471 equals 65536.
	return (19595*r + 38470*g + 7471*b + 1<<15) >> 16
}

// Mono represents a 1-bit monochrome color.
type Mono struct {
	On bool
}

func (c Mono) RGBA() (r, g, b, a uint32) {
	if c.On {
		return 0xffff, 0xffff, 0xffff, 0xffff
	}
	return 0, 0, 0, 0xffff
}

// monoModel thresholds at half luminance.
func monoModel(c color.Color) color.Color {
	if _, ok := c.(Mono); ok {
		return c
	}
	return Mono{On: luma(c) >= 0x8000}
}

// Gray4 represents a 4-bit grayscale color.
type Gray4 struct {
	Y uint8
}

func (c Gray4) RGBA() (r, g, b, a uint32) {
	y := uint32(c.Y & 0xf)
	y |= y << 4
	y |= y << 8
	return y, y, y, 0xffff
}

func gray4Model(c color.Color) color.Color {
	switch c := c.(type) {
	case Gray4:
		return c
	case Mono:
		if c.On {
			return Gray4{Y: 0xf}
		}
		return Gray4{}
	}
	return Gray4{Y: uint8(luma(c) >> 12)}
}

// CRGB15 represents a 15-bit 5-5-5 RGB color.
type CRGB15 struct {
	// CIgnore, 1, CRed, 5, CGreen, 5, CBlue, 5
	V uint16
}

func (c CRGB15) RGBA() (r, g, b, a uint32) {
	return expand5(uint32(c.V>>10)), expand5(uint32(c.V>>5)), expand5(uint32(c.V)), 0xffff
}

func crgb15Model(c color.Color) color.Color {
	if _, ok := c.(CRGB15); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return CRGB15{uint16((r>>11)<<10 | (g>>11)<<5 | b>>11)}
}

// CRGB16 represents a 16-bit 5-6-5 RGB color.
type CRGB16 struct {
	// CRed, 5, CGreen, 6, CBlue, 5
	V uint16
}

func (c CRGB16) RGBA() (r, g, b, a uint32) {
	return expand5(uint32(c.V >> 11)), expand6(uint32(c.V >> 5)), expand5(uint32(c.V)), 0xffff
}

func crgb16Model(c color.Color) color.Color {
	switch c := c.(type) {
	case CRGB16:
		return c
	case Mono:
		if c.On {
			return CRGB16{0xffff}
		}
		return CRGB16{}
	}
	r, g, b, _ := c.RGBA()
	return CRGB16{uint16((r>>11)<<11 | (g>>10)<<5 | b>>11)}
}

// expand5 widens the low 5 bits of v to 16 bits by replicating the high bits
// into the low bits.
func expand5(v uint32) uint32 {
	v &= 0x1f
	v = v<<3 | v>>2
	return v | v<<8
}

// expand6 widens the low 6 bits of v to 16 bits.
func expand6(v uint32) uint32 {
	v &= 0x3f
	v = v<<2 | v>>4
	return v | v<<8
}
