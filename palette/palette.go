// Package palette loads named CSS colour palettes from TOML files.
//
// A palette file looks like:
//
//	name = "solarized"
//	strict = true
//
//	[colors]
//	base03 = "#002b36"
//	yellow = "hsl(45, 100%, 35%)"
//	shadow = "rgba(0, 0, 0, 50%)"
//
// Every colour is parsed when the file is loaded; a single bad entry fails
// the whole palette.
package palette

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/BeatGlow/csscolor"
)

// File is the on-disk palette format.
type File struct {
	// Name of the palette, defaults to the file name without extension.
	Name string `toml:"name"`

	// Strict parses the colours with a strict parser.
	Strict bool `toml:"strict"`

	// Colors maps entry names to CSS colour literals.
	Colors map[string]string `toml:"colors"`
}

// Entry is a parsed palette colour.
type Entry struct {
	// Name is the key in the palette file.
	Name string

	// Value is the CSS literal as written.
	Value string

	// Color is the parsed colour.
	Color color.NRGBA
}

// Palette is a loaded palette.
type Palette struct {
	// Name of the palette.
	Name string

	// Path the palette was loaded from.
	Path string

	// Entries sorted by name.
	Entries []Entry
}

// Lookup returns the colour of the named entry.
func (p *Palette) Lookup(name string) (color.NRGBA, bool) {
	i := sort.Search(len(p.Entries), func(i int) bool {
		return p.Entries[i].Name >= name
	})
	if i < len(p.Entries) && p.Entries[i].Name == name {
		return p.Entries[i].Color, true
	}
	return color.NRGBA{}, false
}

// Load reads and parses a palette file.
func Load(path string) (*Palette, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("palette: decode %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		slog.Warn("palette: ignoring unknown key", "path", path, "key", key.String())
	}
	if f.Name == "" {
		base := filepath.Base(path)
		f.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	p, err := f.Parse()
	if err != nil {
		return nil, fmt.Errorf("palette: %s: %w", path, err)
	}
	p.Path = path
	return p, nil
}

// Parse parses all colours of the file.
func (f *File) Parse() (*Palette, error) {
	parser := csscolor.NewParser(&csscolor.Config{Strict: f.Strict})
	p := &Palette{
		Name:    f.Name,
		Entries: make([]Entry, 0, len(f.Colors)),
	}
	for name, value := range f.Colors {
		c, err := parser.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("colour %q: %w", name, err)
		}
		p.Entries = append(p.Entries, Entry{Name: name, Value: value, Color: c})
	}
	sort.Slice(p.Entries, func(i, j int) bool {
		return p.Entries[i].Name < p.Entries[j].Name
	})
	return p, nil
}

// Glob loads every palette file matching pattern, which may contain ** to
// match any number of directories.
func Glob(pattern string) ([]*Palette, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("palette: glob %q: %w", pattern, err)
	}
	sort.Strings(paths)

	palettes := make([]*Palette, 0, len(paths))
	for _, path := range paths {
		p, err := Load(path)
		if err != nil {
			return nil, err
		}
		palettes = append(palettes, p)
	}
	return palettes, nil
}
