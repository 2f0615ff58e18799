// Package swatch renders parsed colours as sample images.
//
// A swatch is a rounded box filled with the colour, over a checkerboard that
// makes the alpha channel visible, with an optional text label drawn in black
// or white, whichever reads better on the rendered colour.
package swatch

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/display"

	"github.com/BeatGlow/csscolor/draw"
	"github.com/BeatGlow/csscolor/pixel"
)

// Checkerboard colours.
var (
	checkerLight = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	checkerDark  = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
)

// Options for rendering a swatch.
type Options struct {
	// Width of a swatch in pixels.
	Width int

	// Height of a swatch in pixels.
	Height int

	// Radius of the rounded corners, 0 for square corners.
	Radius int

	// Checker is the checkerboard cell size, 0 disables the checkerboard.
	Checker int

	// FontSize of the label in points at 72 DPI.
	FontSize float64
}

// DefaultOptions are used when no options are given.
var DefaultOptions = Options{
	Width:    160,
	Height:   96,
	Radius:   8,
	Checker:  8,
	FontSize: 14,
}

func (opt *Options) orDefault() *Options {
	if opt == nil {
		return &DefaultOptions
	}
	o := *opt
	if o.Width <= 0 {
		o.Width = DefaultOptions.Width
	}
	if o.Height <= 0 {
		o.Height = DefaultOptions.Height
	}
	if o.FontSize <= 0 {
		o.FontSize = DefaultOptions.FontSize
	}
	return &o
}

var goRegular = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

// Render a single labelled swatch. An empty label draws no text.
func Render(c color.NRGBA, label string, opt *Options) (*image.NRGBA, error) {
	return Strip([]color.NRGBA{c}, []string{label}, opt)
}

// Strip renders the colours side by side, one swatch each. Labels are matched
// to colours by index; missing labels draw no text.
func Strip(colors []color.NRGBA, labels []string, opt *Options) (*image.NRGBA, error) {
	opt = opt.orDefault()
	img := image.NewNRGBA(image.Rect(0, 0, opt.Width*len(colors), opt.Height))

	var face font.Face
	for i, c := range colors {
		cell := image.Rect(i*opt.Width, 0, (i+1)*opt.Width, opt.Height)
		if opt.Checker > 0 {
			draw.Checkerboard(img, cell, opt.Checker, checkerLight, checkerDark)
		}
		draw.RoundedBox(img, cell, opt.Radius, c)

		if i >= len(labels) || labels[i] == "" {
			continue
		}
		if face == nil {
			f, err := goRegular()
			if err != nil {
				return nil, fmt.Errorf("swatch: parse font: %w", err)
			}
			face = truetype.NewFace(f, &truetype.Options{
				Size:    opt.FontSize,
				DPI:     72,
				Hinting: font.HintingFull,
			})
			defer face.Close()
		}
		drawLabel(img, cell, face, labels[i])
	}
	return img, nil
}

// drawLabel centres text in cell.
func drawLabel(img *image.NRGBA, cell image.Rectangle, face font.Face, text string) {
	center := image.Pt((cell.Min.X+cell.Max.X)/2, (cell.Min.Y+cell.Max.Y)/2)
	ink := LabelColor(img.At(center.X, center.Y))

	bounds, _ := font.BoundString(face, text)
	var (
		w = (bounds.Max.X - bounds.Min.X).Ceil()
		h = (bounds.Max.Y - bounds.Min.Y).Ceil()
		x = center.X - w/2 - bounds.Min.X.Floor()
		y = center.Y - h/2 - bounds.Min.Y.Floor()
	)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// LabelColor returns black for light backgrounds and white for dark ones.
func LabelColor(background color.Color) color.Color {
	if pixel.MonoModel.Convert(background).(pixel.Mono).On {
		return color.Black
	}
	return color.White
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("swatch: encode png: %w", err)
	}
	return nil
}

// Show fills the display with the colour, converted to the display's own
// colour model.
func Show(d display.Drawer, c color.Color) error {
	src := image.NewUniform(d.ColorModel().Convert(c))
	if err := d.Draw(d.Bounds(), src, image.Point{}); err != nil {
		return fmt.Errorf("swatch: draw to %s: %w", d, err)
	}
	return nil
}

// ShowImage draws img, such as a rendered swatch, to the display.
func ShowImage(d display.Drawer, img image.Image) error {
	if err := d.Draw(d.Bounds(), img, img.Bounds().Min); err != nil {
		return fmt.Errorf("swatch: draw to %s: %w", d, err)
	}
	return nil
}
