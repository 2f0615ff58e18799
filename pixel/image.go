package pixel

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/BeatGlow/csscolor/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values in the layout a display expects.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int

	// Format of the pixels in Pix.
	Format Format

	// Order of 16-bit pixels.
	Order binary.ByteOrder
}

// NewImage returns a blank image of the given size in format f.
//
// Sub-byte pixels are packed most significant bits first and every row starts
// on a whole byte.
func NewImage(f Format, w, h int) *Buffer {
	stride := (w*f.BitsPerPixel() + 7) / 8 // round up to whole bytes
	return &Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Format: f,
		Order:  binary.BigEndian,
	}
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) ColorModel() color.Model {
	return p.Format.Model()
}

// locate returns the byte index and shift of the pixel at (x, y) for sub-byte
// formats.
func (p *Buffer) locate(x, y int) (index int, shift uint) {
	bits := p.Format.BitsPerPixel()
	offset := (x - p.Rect.Min.X) * bits
	index = (y-p.Rect.Min.Y)*p.Stride + offset/8
	shift = uint(8 - bits - offset%8)
	return
}

func (p *Buffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	bits := p.Format.BitsPerPixel()
	if bits >= 8 {
		i := (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
		return p.Format.color(p.Order.Uint16(p.Pix[i:]))
	}

	index, shift := p.locate(x, y)
	mask := byte(1)<<bits - 1
	return p.Format.color(uint16(p.Pix[index]>>shift) & uint16(mask))
}

func (p *Buffer) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := p.Format.value(c)
	bits := p.Format.BitsPerPixel()
	if bits >= 8 {
		i := (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
		p.Order.PutUint16(p.Pix[i:], v)
		return
	}

	index, shift := p.locate(x, y)
	mask := byte(1)<<bits - 1
	p.Pix[index] = p.Pix[index]&^(mask<<shift) | byte(v)&mask<<shift
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func (p *Buffer) Fill(c color.Color) {
	v := p.Format.value(c)
	bits := p.Format.BitsPerPixel()
	if bits >= 8 {
		bytes := make([]byte, 2)
		p.Order.PutUint16(bytes, v)
		for i, l := 0, len(p.Pix); i < l; i += 2 {
			copy(p.Pix[i:], bytes)
		}
		return
	}

	// Replicate the pixel across the byte.
	value := byte(v)
	for n := bits; n < 8; n *= 2 {
		value |= value << n
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// Interface checks.
var _ Image = (*Buffer)(nil)
