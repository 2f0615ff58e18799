package csscolor

import (
	"errors"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var errNotNumber = errors.New("not a number")

var (
	hexPattern       = regexp.MustCompile(`(?i)^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})?`)
	strictHexPattern = regexp.MustCompile(`(?i)^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})?$`)
	shortHexPattern  = regexp.MustCompile(`(?i)^#?([0-9a-f])([0-9a-f])([0-9a-f])$`)
)

// Config is the parser configuration.
type Config struct {
	// Strict rejects numeric components outside of their range with a
	// [RangeError] instead of clamping them, and rejects text trailing a
	// six or eight digit hex colour instead of ignoring it.
	Strict bool
}

// Parser converts CSS colour literals to RGBA. A Parser has no mutable state
// and is safe for concurrent use.
type Parser struct {
	strict bool
}

var defaultParser = new(Parser)

// NewParser returns a parser for the given configuration. A nil config
// selects the lenient defaults.
func NewParser(config *Config) *Parser {
	if config == nil {
		config = new(Config)
	}
	return &Parser{strict: config.Strict}
}

// Parse a CSS colour with the lenient default parser.
//
// Supported are #rrggbb, #rrggbbaa, #rgb (the # is optional), rgb(r, g, b),
// rgba(r, g, b, a), hsl(h, s, l), hsla(h, s, l, a) and the 16 basic colour
// keywords.
func Parse(s string) (color.NRGBA, error) {
	return defaultParser.Parse(s)
}

// recognizer reports whether s has the shape of its grammar. A matching
// grammar with an invalid component returns an error and ends the search.
type recognizer func(p *Parser, s string) (color.NRGBA, bool, error)

// grammars in the order they are tried.
var grammars = []recognizer{
	(*Parser).parseHex,
	(*Parser).parseShortHex,
	(*Parser).parseRGB,
	(*Parser).parseRGBA,
	(*Parser).parseHSL,
	(*Parser).parseHSLA,
	(*Parser).parseNamed,
}

// Parse a CSS colour.
func (p *Parser) Parse(s string) (color.NRGBA, error) {
	if strings.TrimSpace(s) == "" {
		return color.NRGBA{}, formatError(s, ErrEmpty)
	}
	for _, grammar := range grammars {
		c, ok, err := grammar(p, s)
		if err != nil {
			return color.NRGBA{}, err
		}
		if ok {
			return c, nil
		}
	}
	return color.NRGBA{}, formatError(s, nil)
}

func (p *Parser) parseHex(s string) (color.NRGBA, bool, error) {
	pattern := hexPattern
	if p.strict {
		pattern = strictHexPattern
	}
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return color.NRGBA{}, false, nil
	}
	c := color.NRGBA{
		R: hexByte(m[1]),
		G: hexByte(m[2]),
		B: hexByte(m[3]),
		A: 0xff,
	}
	if m[4] != "" {
		// Raw byte, not a fraction.
		c.A = hexByte(m[4])
	}
	return c, true, nil
}

func (p *Parser) parseShortHex(s string) (color.NRGBA, bool, error) {
	m := shortHexPattern.FindStringSubmatch(s)
	if m == nil {
		return color.NRGBA{}, false, nil
	}
	return color.NRGBA{
		R: nibbleByte(m[1]),
		G: nibbleByte(m[2]),
		B: nibbleByte(m[3]),
		A: 0xff,
	}, true, nil
}

func (p *Parser) parseRGB(s string) (color.NRGBA, bool, error) {
	args := arguments(s, "rgb")
	if len(args) != 3 {
		return color.NRGBA{}, false, nil
	}
	var (
		c   = color.NRGBA{A: 0xff}
		err error
	)
	if c.R, err = p.rgbComponent(args[0]); err != nil {
		return c, false, err
	}
	if c.G, err = p.rgbComponent(args[1]); err != nil {
		return c, false, err
	}
	if c.B, err = p.rgbComponent(args[2]); err != nil {
		return c, false, err
	}
	return c, true, nil
}

func (p *Parser) parseRGBA(s string) (color.NRGBA, bool, error) {
	args := arguments(s, "rgba")
	if len(args) != 4 {
		return color.NRGBA{}, false, nil
	}
	var (
		c   color.NRGBA
		err error
	)
	if c.R, err = p.rgbComponent(args[0]); err != nil {
		return c, false, err
	}
	if c.G, err = p.rgbComponent(args[1]); err != nil {
		return c, false, err
	}
	if c.B, err = p.rgbComponent(args[2]); err != nil {
		return c, false, err
	}
	a, err := p.component(args[3], 1)
	if err != nil {
		return c, false, err
	}
	c.A = uint8(a)
	return c, true, nil
}

func (p *Parser) parseHSL(s string) (color.NRGBA, bool, error) {
	args := arguments(s, "hsl")
	if len(args) != 3 {
		return color.NRGBA{}, false, nil
	}
	hsl, err := p.hsl(args[0], args[1], args[2])
	if err != nil {
		return color.NRGBA{}, false, err
	}
	hsl.A = 1
	return hsl.NRGBA(), true, nil
}

func (p *Parser) parseHSLA(s string) (color.NRGBA, bool, error) {
	args := arguments(s, "hsla")
	if len(args) != 4 {
		return color.NRGBA{}, false, nil
	}
	hsl, err := p.hsl(args[0], args[1], args[2])
	if err != nil {
		return color.NRGBA{}, false, err
	}
	if hsl.A, err = p.unit(args[3]); err != nil {
		return color.NRGBA{}, false, err
	}
	return hsl.NRGBA(), true, nil
}

func (p *Parser) parseNamed(s string) (color.NRGBA, bool, error) {
	c, ok := Named(s)
	return c, ok, nil
}

func (p *Parser) hsl(hue, saturation, lightness string) (c HSL, err error) {
	h, err := ParseHue(hue)
	if err != nil {
		return c, err
	}
	c.H = float64(h)
	if c.S, err = p.unit(saturation); err != nil {
		return c, err
	}
	if c.L, err = p.unit(lightness); err != nil {
		return c, err
	}
	return c, nil
}

// rgbComponent parses a channel given as a number in [0, 255] or as a
// percentage, truncated to a byte.
func (p *Parser) rgbComponent(s string) (uint8, error) {
	v, err := p.component(s, 255)
	return uint8(v), err
}

// unit parses a number in [0, 1] or a percentage as a fraction in [0, 1].
func (p *Parser) unit(s string) (float64, error) {
	v, err := p.component(s, 1)
	return v / 255, err
}

// component parses a percentage, or a plain number in [0, max], and scales
// the result to [0, 255].
func (p *Parser) component(s string, max float64) (float64, error) {
	s = strings.TrimSpace(s)
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := p.clamp(pct, 100, 0)
		return v * 255 / 100, err
	}
	v, err := p.clamp(s, max, 0)
	return v * 255 / max, err
}

func (p *Parser) clamp(s string, max, min float64) (float64, error) {
	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	if v > max || v < min {
		if p.strict {
			return 0, &RangeError{Input: strings.TrimSpace(s), Value: v, Min: min, Max: max}
		}
		v = math.Max(math.Min(v, max), min)
	}
	return v, nil
}

// ParseClamp parses s as a decimal number and clamps it to [min, max].
func ParseClamp(s string, max, min float64) (float64, error) {
	return defaultParser.clamp(s, max, min)
}

// ParseHue parses an angle in degrees, wrapping it onto [0, 360).
func ParseHue(s string) (int, error) {
	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	return int(wrapHue(v)), nil
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	// Hex floats and digit separators are not decimal notation.
	if strings.ContainsAny(s, "xX_") {
		return 0, formatError(s, errNotNumber)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, formatError(s, errNotNumber)
	}
	return v, nil
}

// arguments splits the comma separated arguments of name(...). It returns nil
// if s is not a call to name.
func arguments(s, name string) []string {
	prefix := name + "("
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, ")") {
		return nil
	}
	return strings.Split(s[len(prefix):len(s)-1], ",")
}

func hexByte(s string) uint8 {
	v, _ := strconv.ParseUint(s, 16, 8)
	return uint8(v)
}

// nibbleByte expands a single hex digit d to 0xdd.
func nibbleByte(s string) uint8 {
	v := hexByte(s)
	return v + v<<4
}
