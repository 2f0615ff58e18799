package main

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/csscolor"
	"github.com/BeatGlow/csscolor/palette"
	"github.com/BeatGlow/csscolor/pixel"
)

func TestPrintColors(t *testing.T) {
	var (
		buf    bytes.Buffer
		format = pixel.FormatRGB565
		p      = &printer{w: &buf, parser: csscolor.NewParser(nil), format: &format}
	)

	colors, labels, err := p.printColors([]string{"red", "nope", "#00ff0080"})
	assert.ErrorIs(t, err, errParse)
	assert.Equal(t, []color.NRGBA{{R: 255, A: 255}, {G: 255, A: 128}}, colors)
	assert.Equal(t, []string{"red", "#00ff0080"}, labels)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "red "))
	assert.True(t, strings.HasSuffix(lines[0], "rgba(255, 0, 0, 255) #ff0000ff rgb565:f800"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "rgba(0, 255, 0, 128) #00ff0080 rgb565:07e0"), lines[1])
}

func TestPrintColorsStrict(t *testing.T) {
	var buf bytes.Buffer
	p := &printer{w: &buf, parser: csscolor.NewParser(&csscolor.Config{Strict: true})}

	_, _, err := p.printColors([]string{"rgb(256, 0, 0)"})
	assert.ErrorIs(t, err, errParse)
	assert.Empty(t, buf.String())
}

func TestPrintPalette(t *testing.T) {
	var buf bytes.Buffer
	p := &printer{w: &buf}
	p.printPalette(&palette.Palette{
		Name: "mono",
		Path: "mono.toml",
		Entries: []palette.Entry{
			{Name: "bg", Value: "black", Color: color.NRGBA{A: 255}},
		},
	})

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# mono (mono.toml)\n"))
	assert.Contains(t, out, "rgba(0, 0, 0, 255) #000000ff\n")
}

func TestWriteSwatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatch.png")
	colors := []color.NRGBA{{R: 255, A: 255}, {B: 255, A: 255}}
	require.NoError(t, writeSwatch(path, colors, []string{"", ""}, 32))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}
