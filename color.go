package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a color in hue/saturation/lightness space with an alpha channel.
// H is expressed in turns ([0, 1)), S, L and A are in [0, 1].
// Colors are plain values and compare with ==.
type Color struct {
	H float64
	S float64
	L float64
	A float64
}

// Hsla returns a color from its components.
func Hsla(h, s, l, a float64) Color {
	return Color{H: h, S: s, L: l, A: a}
}

// Rgb returns an opaque color from a packed 0xRRGGBB value.
func Rgb(hex uint32) Color {
	return Rgba(hex<<8 | 0xff)
}

// Rgba returns a color from a packed 0xRRGGBBAA value.
func Rgba(hex uint32) Color {
	// Same scaling as colorful.Hex, so Rgb(0xff00ff) == MustParseColor("#ff00ff").
	const factor = 1.0 / 255.0
	c := colorful.Color{
		R: float64(uint8(hex>>24)) * factor,
		G: float64(uint8(hex>>16)) * factor,
		B: float64(uint8(hex>>8)) * factor,
	}
	return fromColorful(c, float64(uint8(hex))/255)
}

// ParseColor parses a "#rgb", "#rrggbb" or "#rrggbbaa" literal. Surrounding
// whitespace is not allowed.
// Failures are reported as a *ParseError of kind InvalidColorLiteral.
func ParseColor(s string) (Color, error) {
	literal := s
	if !strings.HasPrefix(literal, "#") || !isHexDigits(literal[1:]) {
		return Color{}, &ParseError{Kind: InvalidColorLiteral, Value: s}
	}

	alpha := 1.0
	switch len(literal) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(literal[7:], 16, 8)
		if err != nil {
			return Color{}, &ParseError{Kind: InvalidColorLiteral, Value: s, Err: err}
		}
		alpha = float64(a) / 255
		literal = literal[:7]
	default:
		return Color{}, &ParseError{Kind: InvalidColorLiteral, Value: s}
	}

	c, err := colorful.Hex(literal)
	if err != nil {
		return Color{}, &ParseError{Kind: InvalidColorLiteral, Value: s, Err: err}
	}
	return fromColorful(c, alpha), nil
}

// MustParseColor is like ParseColor but panics on invalid input.
// Intended for package-level tables of known literals.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// fromColorful converts an RGB color to HSLA. Rgba and ParseColor both go
// through here so equal literals always produce identical values.
func fromColorful(c colorful.Color, alpha float64) Color {
	h, s, l := c.Hsl()
	return Color{H: h / 360, S: s, L: l, A: alpha}
}

// Colorful returns the RGB representation of c, ignoring alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Hsl(c.H*360, c.S, c.L)
}

// Opacity returns a copy of c with the alpha channel set to a.
func (c Color) Opacity(a float64) Color {
	c.A = a
	return c
}

// Over composites c onto bg and returns an opaque color.
func (c Color) Over(bg Color) Color {
	if c.A >= 1 {
		return c
	}
	return fromColorful(c.Colorful().BlendRgb(bg.Colorful(), 1-clamp01(c.A)).Clamped(), 1)
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when it is not fully opaque.
func (c Color) Hex() string {
	hex := c.Colorful().Clamped().Hex()
	if c.A >= 1 {
		return hex
	}
	return fmt.Sprintf("%s%02x", hex, uint8(math.Round(clamp01(c.A)*255)))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// isHexDigits reports whether s is non-empty and made of hex digits only.
// colorful.Hex scans with fmt.Sscanf, which skips spaces between fields.
func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune("0123456789abcdefABCDEF", rune(s[i])) {
			return false
		}
	}
	return true
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
