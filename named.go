package csscolor

import (
	"image/color"
	"sort"
	"strings"
)

// named holds the 16 basic keywords. The set is closed.
var named = map[string]color.NRGBA{
	"white":   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"silver":  {R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
	"gray":    {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"black":   {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	"red":     {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	"maroon":  {R: 0x80, G: 0x00, B: 0x00, A: 0xff},
	"yellow":  {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	"olive":   {R: 0x80, G: 0x80, B: 0x00, A: 0xff},
	"lime":    {R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	"green":   {R: 0x00, G: 0x80, B: 0x00, A: 0xff},
	"aqua":    {R: 0x00, G: 0xff, B: 0xff, A: 0xff},
	"teal":    {R: 0x00, G: 0x80, B: 0x80, A: 0xff},
	"blue":    {R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	"navy":    {R: 0x00, G: 0x00, B: 0x80, A: 0xff},
	"fuchsia": {R: 0xff, G: 0x00, B: 0xff, A: 0xff},
	"purple":  {R: 0x80, G: 0x00, B: 0x80, A: 0xff},
}

// Named looks up one of the basic colour keywords, ignoring case.
func Named(name string) (color.NRGBA, bool) {
	c, ok := named[strings.ToLower(name)]
	return c, ok
}

// Names returns the recognised colour keywords in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
