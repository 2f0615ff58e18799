package pixel

import (
	"encoding/binary"
	"errors"
	"image/color"
	"strings"
)

// ErrFormat is returned for an unknown pixel format name.
var ErrFormat = errors.New("pixel: unknown format")

// Format is a display pixel format.
type Format uint8

// Supported formats.
const (
	FormatMono   Format = iota // 1-bit monochrome
	FormatGray4                // 4-bit grayscale
	FormatRGB555               // 15-bit 5-5-5 RGB
	FormatRGB565               // 16-bit 5-6-5 RGB
)

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "mono", "1":
		return FormatMono, nil
	case "gray4", "grey4", "4":
		return FormatGray4, nil
	case "rgb555", "crgb15", "15":
		return FormatRGB555, nil
	case "rgb565", "crgb16", "16":
		return FormatRGB565, nil
	default:
		return 0, ErrFormat
	}
}

func (f Format) String() string {
	switch f {
	case FormatMono:
		return "mono"
	case FormatGray4:
		return "gray4"
	case FormatRGB555:
		return "rgb555"
	case FormatRGB565:
		return "rgb565"
	default:
		return "invalid"
	}
}

// BitsPerPixel is the storage size of one pixel.
func (f Format) BitsPerPixel() int {
	switch f {
	case FormatMono:
		return 1
	case FormatGray4:
		return 4
	default:
		return 16
	}
}

// Model is the color model of the format.
func (f Format) Model() color.Model {
	switch f {
	case FormatMono:
		return MonoModel
	case FormatGray4:
		return Gray4Model
	case FormatRGB555:
		return CRGB15Model
	default:
		return CRGB16Model
	}
}

// value converts c to the format and returns its raw bits.
func (f Format) value(c color.Color) uint16 {
	switch c := f.Model().Convert(c).(type) {
	case Mono:
		if c.On {
			return 1
		}
		return 0
	case Gray4:
		return uint16(c.Y & 0xf)
	case CRGB15:
		return c.V & 0x7fff
	case CRGB16:
		return c.V
	default:
		return 0
	}
}

// color is the inverse of value.
func (f Format) color(v uint16) color.Color {
	switch f {
	case FormatMono:
		return Mono{On: v&1 != 0}
	case FormatGray4:
		return Gray4{Y: uint8(v & 0xf)}
	case FormatRGB555:
		return CRGB15{v & 0x7fff}
	default:
		return CRGB16{v}
	}
}

// Pack converts c to the format and returns it as it is sent to a display.
// Sub-byte formats occupy the high bits of a single byte, 16-bit formats are
// big endian.
func (f Format) Pack(c color.Color) []byte {
	v := f.value(c)
	if bits := f.BitsPerPixel(); bits < 8 {
		return []byte{byte(v << (8 - bits))}
	}
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}
