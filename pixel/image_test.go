package pixel

import (
	"bytes"
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestImage(t *testing.T) {
	for _, f := range []Format{FormatMono, FormatGray4, FormatRGB555, FormatRGB565} {
		t.Run(f.String(), func(it *testing.T) {
			testImage(it, f)
		})
	}
}

func testImage(t *testing.T, f Format) {
	t.Helper()
	testCases := []image.Point{
		image.Point{},
		image.Pt(1, 1),
		image.Pt(3, 2),
		image.Pt(256, 32),
		image.Pt(17, 64),
	}
	model := f.Model()
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := NewImage(f, test.X, test.Y)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != model {
				it.Errorf("expected color model %T, got %T", model, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("neighbours", func(itt *testing.T) {
				if test.X < 2 {
					return
				}
				i.Clear()
				i.Set(1, 0, color.White)
				if v := i.At(0, 0); v != model.Convert(color.Black) {
					itt.Fatalf("setting (1,0) changed (0,0) to %#+v", v)
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				before := append([]byte(nil), i.Pix...)
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						if (image.Point{X: x, Y: y}).In(i.Rect) {
							continue
						}
						i.Set(x, y, testRandomColor())
						if v := i.At(x, y); v != color.Transparent {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
							return
						}
					}
				}
				if !bytes.Equal(before, i.Pix) {
					itt.Fatal("out of bounds writes changed the buffer")
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				i.Fill(c)
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.ColorModel().Convert(c); i.At(x, y) != v {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						return
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := monoModel(i.At(x, y)); v != Off {
						itt.Fatalf("pixel (%d,%d) is not black", x, y)
					}
				}
			})
		})
	}
}

func TestPack(t *testing.T) {
	testCases := []struct {
		Format Format
		In     color.Color
		Want   []byte
	}{
		{FormatMono, color.White, []byte{0x80}},
		{FormatMono, color.Black, []byte{0x00}},
		{FormatGray4, color.White, []byte{0xf0}},
		{FormatRGB555, color.NRGBA{R: 0xff, A: 0xff}, []byte{0x7c, 0x00}},
		{FormatRGB565, color.NRGBA{R: 0xff, A: 0xff}, []byte{0xf8, 0x00}},
		{FormatRGB565, color.NRGBA{B: 0xff, A: 0xff}, []byte{0x00, 0x1f}},
	}
	for _, test := range testCases {
		t.Run(test.Format.String(), func(it *testing.T) {
			if v := test.Format.Pack(test.In); !bytes.Equal(v, test.Want) {
				it.Errorf("expected %#x, got %#x", test.Want, v)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatMono, FormatGray4, FormatRGB555, FormatRGB565} {
		v, err := ParseFormat(f.String())
		if err != nil {
			t.Fatal(err)
		}
		if v != f {
			t.Errorf("expected %s, got %s", f, v)
		}
	}
	if _, err := ParseFormat("cmyk"); err != ErrFormat {
		t.Errorf("expected %v, got %v", ErrFormat, err)
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
