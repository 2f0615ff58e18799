package draw

import (
	"image"
	"image/color"
	"testing"
)

var (
	testBlack = color.NRGBA{A: 0xff}
	testRed   = color.NRGBA{R: 0xff, A: 0xff}
	testBlue  = color.NRGBA{B: 0xff, A: 0xff}
)

func TestRectangle(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	Rectangle(dst, image.Rect(1, 1, 7, 5), testRed)

	for _, p := range []image.Point{{1, 1}, {6, 1}, {1, 4}, {6, 4}, {3, 1}, {1, 3}} {
		if v := dst.NRGBAAt(p.X, p.Y); v != testRed {
			t.Errorf("expected outline pixel %s to be red, got %#+v", p, v)
		}
	}
	for _, p := range []image.Point{{0, 0}, {3, 3}, {7, 5}} {
		if v := dst.NRGBAAt(p.X, p.Y); v != (color.NRGBA{}) {
			t.Errorf("expected pixel %s to be untouched, got %#+v", p, v)
		}
	}
}

func TestBox(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	Box(dst, image.Rect(1, 1, 3, 3), testBlue)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := color.NRGBA{}
			if x >= 1 && x < 3 && y >= 1 && y < 3 {
				want = testBlue
			}
			if v := dst.NRGBAAt(x, y); v != want {
				t.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, v, want)
			}
		}
	}
}

func TestRoundedBox(t *testing.T) {
	r := image.Rect(0, 0, 20, 20)
	dst := image.NewNRGBA(r)
	RoundedBox(dst, r, 6, testRed)

	for _, p := range []image.Point{{0, 0}, {19, 0}, {0, 19}, {19, 19}} {
		if v := dst.NRGBAAt(p.X, p.Y); v != (color.NRGBA{}) {
			t.Errorf("expected corner %s to stay transparent, got %#+v", p, v)
		}
	}
	for _, p := range []image.Point{{10, 10}, {10, 0}, {0, 10}, {19, 10}, {10, 19}} {
		if v := dst.NRGBAAt(p.X, p.Y); v != testRed {
			t.Errorf("expected pixel %s to be red, got %#+v", p, v)
		}
	}
}

func TestRoundedBoxZeroRadius(t *testing.T) {
	r := image.Rect(0, 0, 4, 4)
	dst := image.NewNRGBA(r)
	RoundedBox(dst, r, 0, testRed)
	if v := dst.NRGBAAt(0, 0); v != testRed {
		t.Errorf("expected square corner, got %#+v", v)
	}
}

func TestCheckerboard(t *testing.T) {
	r := image.Rect(0, 0, 8, 8)
	dst := image.NewNRGBA(r)
	Checkerboard(dst, r, 4, testBlack, testRed)

	testCases := []struct {
		P    image.Point
		Want color.NRGBA
	}{
		{image.Pt(0, 0), testBlack},
		{image.Pt(3, 3), testBlack},
		{image.Pt(4, 0), testRed},
		{image.Pt(0, 4), testRed},
		{image.Pt(7, 7), testBlack},
	}
	for _, test := range testCases {
		if v := dst.NRGBAAt(test.P.X, test.P.Y); v != test.Want {
			t.Errorf("pixel %s is %#+v, expected %#+v", test.P, v, test.Want)
		}
	}
}
