package draw

import (
	"image"
	"image/color"
)

// HorizontalLine draws a line between (x,y) and (x+w,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	for i := 0; i < w; i++ {
		dst.Set(x+i, y, c)
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	for i := 0; i < h; i++ {
		dst.Set(x, y+i, c)
	}
}

// Rectangle draws the outline of rect.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	if rect.Empty() {
		return
	}
	w, h := rect.Dx(), rect.Dy()
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, w, c)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, w, c)
	VerticalLine(dst, rect.Min.X, rect.Min.Y, h, c)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y, h, c)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	Fill(dst, rect, c, Over)
}

// RoundedBox draws a filled rectangle with radius pixels rounded corners.
func RoundedBox(dst Image, rect image.Rectangle, radius int, c color.Color) {
	if limit := min(rect.Dx(), rect.Dy()) / 2; radius > limit {
		radius = limit
	}
	if radius <= 0 {
		Box(dst, rect, c)
		return
	}
	DrawMask(dst, rect, image.NewUniform(c), image.Point{}, roundedMask{rect: rect, r: radius}, rect.Min, Over)
}

// roundedMask is opaque inside a rectangle with rounded corners.
type roundedMask struct {
	rect image.Rectangle
	r    int
}

func (m roundedMask) ColorModel() color.Model {
	return color.AlphaModel
}

func (m roundedMask) Bounds() image.Rectangle {
	return m.rect
}

func (m roundedMask) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(m.rect) {
		return color.Transparent
	}
	// Distance from the pixel centre to the inner rectangle the corner
	// circles are centred on, doubled to stay in integers.
	var (
		px, py = 2*x + 1, 2*y + 1
		dx     = max(2*(m.rect.Min.X+m.r)-px, 0, px-2*(m.rect.Max.X-m.r))
		dy     = max(2*(m.rect.Min.Y+m.r)-py, 0, py-2*(m.rect.Max.Y-m.r))
	)
	if dx*dx+dy*dy > 4*m.r*m.r {
		return color.Transparent
	}
	return color.Opaque
}

// Checkerboard fills rect with alternating size by size squares of a and b.
func Checkerboard(dst Image, rect image.Rectangle, size int, a, b color.Color) {
	if size <= 0 {
		size = 1
	}
	for y := rect.Min.Y; y < rect.Max.Y; y += size {
		for x := rect.Min.X; x < rect.Max.X; x += size {
			c := a
			if ((x-rect.Min.X)/size+(y-rect.Min.Y)/size)%2 != 0 {
				c = b
			}
			cell := image.Rect(x, y, x+size, y+size).Intersect(rect)
			Fill(dst, cell, c, Src)
		}
	}
}
