// Package framebuffer shows swatches on the operating system's native
// framebuffer.
//
// This requires framebuffer device support in the operating system. A
// framebuffer opened with [Open] is a periph.io display.Drawer and can be
// passed to the swatch package like any other display.
package framebuffer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"

	"github.com/BeatGlow/csscolor/draw"
	"github.com/BeatGlow/csscolor/pixel"
)

// Errors.
var (
	ErrNotSupported = errors.New("framebuffer: not supported")
	ErrPixelFormat  = errors.New("framebuffer: unsupported pixel format")
)

// BitField describes where a colour channel lives within a pixel.
type BitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// Layout is the pixel layout reported by the device.
type Layout struct {
	BitsPerPixel            uint32
	Red, Green, Blue, Alpha BitField
}

// Format returns the pixel format matching the layout.
func (l Layout) Format() (pixel.Format, error) {
	if l.Alpha.Length == 0 && l.Red.Length == 5 && l.Green.Offset == 5 && l.Blue.Offset == 0 && l.Blue.Length == 5 {
		switch {
		case l.BitsPerPixel == 16 && l.Red.Offset == 11 && l.Green.Length == 6:
			return pixel.FormatRGB565, nil
		case (l.BitsPerPixel == 15 || l.BitsPerPixel == 16) && l.Red.Offset == 10 && l.Green.Length == 5:
			return pixel.FormatRGB555, nil
		}
	}
	return 0, ErrPixelFormat
}

// Framebuffer is a mapped framebuffer device.
type Framebuffer struct {
	*pixel.Buffer
	name  string
	unmap func() error
}

func newFramebuffer(name string, pix []byte, width, height, stride int, layout Layout, order binary.ByteOrder) (*Framebuffer, error) {
	f, err := layout.Format()
	if err != nil {
		return nil, fmt.Errorf("%w (%d bpp)", err, layout.BitsPerPixel)
	}
	if stride < width*2 || len(pix) < stride*height {
		return nil, fmt.Errorf("framebuffer: %s: %d bytes too small for %dx%d", name, len(pix), width, height)
	}
	return &Framebuffer{
		Buffer: &pixel.Buffer{
			Rect:   image.Rect(0, 0, width, height),
			Pix:    pix[:stride*height],
			Stride: stride,
			Format: f,
			Order:  order,
		},
		name: name,
	}, nil
}

func (fb *Framebuffer) String() string {
	return fmt.Sprintf("framebuffer %s (%s %s)", fb.name, fb.Rect.Size(), fb.Format)
}

// Draw src into dstRect, replacing what was there.
func (fb *Framebuffer) Draw(dstRect image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(fb.Buffer, dstRect, src, sp, draw.Src)
	return nil
}

// Halt blanks the framebuffer.
func (fb *Framebuffer) Halt() error {
	fb.Fill(color.Black)
	return nil
}

// Close unmaps the framebuffer device.
func (fb *Framebuffer) Close() error {
	if fb.unmap == nil {
		return nil
	}
	err := fb.unmap()
	fb.unmap = nil
	return err
}

// Interface checks.
var _ display.Drawer = (*Framebuffer)(nil)
