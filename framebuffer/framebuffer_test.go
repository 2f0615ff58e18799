package framebuffer

import (
	"encoding/binary"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/csscolor/pixel"
	"github.com/BeatGlow/csscolor/swatch"
)

var (
	layout565 = Layout{
		BitsPerPixel: 16,
		Red:          BitField{Offset: 11, Length: 5},
		Green:        BitField{Offset: 5, Length: 6},
		Blue:         BitField{Offset: 0, Length: 5},
	}
	layout555 = Layout{
		BitsPerPixel: 16,
		Red:          BitField{Offset: 10, Length: 5},
		Green:        BitField{Offset: 5, Length: 5},
		Blue:         BitField{Offset: 0, Length: 5},
	}
)

func TestLayoutFormat(t *testing.T) {
	f, err := layout565.Format()
	require.NoError(t, err)
	assert.Equal(t, pixel.FormatRGB565, f)

	f, err = layout555.Format()
	require.NoError(t, err)
	assert.Equal(t, pixel.FormatRGB555, f)

	bgr := layout565
	bgr.Red.Offset, bgr.Blue.Offset = 0, 11
	_, err = bgr.Format()
	assert.ErrorIs(t, err, ErrPixelFormat)

	rgba := Layout{
		BitsPerPixel: 32,
		Red:          BitField{Offset: 16, Length: 8},
		Green:        BitField{Offset: 8, Length: 8},
		Blue:         BitField{Offset: 0, Length: 8},
		Alpha:        BitField{Offset: 24, Length: 8},
	}
	_, err = rgba.Format()
	assert.ErrorIs(t, err, ErrPixelFormat)
}

func TestNewFramebufferTooSmall(t *testing.T) {
	_, err := newFramebuffer("fb-test", make([]byte, 10), 4, 4, 8, layout565, binary.LittleEndian)
	assert.Error(t, err)

	_, err = newFramebuffer("fb-test", make([]byte, 32), 4, 4, 8, layout555, binary.LittleEndian)
	assert.NoError(t, err)
}

func TestFramebufferShow(t *testing.T) {
	// Rows are padded to 12 bytes.
	pix := make([]byte, 12*2)
	fb, err := newFramebuffer("fb-test", pix, 4, 2, 12, layout565, binary.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, "framebuffer fb-test ((4,2) rgb565)", fb.String())

	require.NoError(t, swatch.Show(fb, color.NRGBA{R: 0xff, A: 0xff}))
	assert.Equal(t, []byte{0x00, 0xf8}, pix[0:2])
	assert.Equal(t, []byte{0x00, 0xf8}, pix[6:8])
	assert.Equal(t, []byte{0x00, 0xf8}, pix[12:14])
	assert.Equal(t, []byte{0x00, 0x00}, pix[8:10], "row padding")

	require.NoError(t, fb.Halt())
	assert.Equal(t, color.Color(pixel.CRGB16{}), fb.At(3, 1))
	require.NoError(t, fb.Close())
}

func TestFramebufferDraw(t *testing.T) {
	fb, err := newFramebuffer("fb-test", make([]byte, 4*4*2), 4, 4, 8, layout555, binary.BigEndian)
	require.NoError(t, err)

	src := image.NewUniform(color.NRGBA{B: 0xff, A: 0xff})
	require.NoError(t, fb.Draw(image.Rect(0, 0, 2, 2), src, image.Point{}))
	assert.Equal(t, color.Color(pixel.CRGB15{V: 0x001f}), fb.At(1, 1))
	assert.Equal(t, color.Color(pixel.CRGB15{}), fb.At(2, 2))
}
