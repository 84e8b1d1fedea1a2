package text

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an opaque 24-bit RGB color, parseable from hex or from the
// fixed 16-entry legacy palette name.
type Color struct {
	R, G, B uint8
}

// legacyPalette is the fixed 16-color set used before protocol 735 (no hex
// color support). Order matches the vanilla formatting codes 0-9, a-f.
var legacyPalette = []struct {
	Name string
	Code byte
	Color
}{
	{"black", '0', Color{0x00, 0x00, 0x00}},
	{"dark_blue", '1', Color{0x00, 0x00, 0xAA}},
	{"dark_green", '2', Color{0x00, 0xAA, 0x00}},
	{"dark_aqua", '3', Color{0x00, 0xAA, 0xAA}},
	{"dark_red", '4', Color{0xAA, 0x00, 0x00}},
	{"dark_purple", '5', Color{0xAA, 0x00, 0xAA}},
	{"gold", '6', Color{0xFF, 0xAA, 0x00}},
	{"gray", '7', Color{0xAA, 0xAA, 0xAA}},
	{"dark_gray", '8', Color{0x55, 0x55, 0x55}},
	{"blue", '9', Color{0x55, 0x55, 0xFF}},
	{"green", 'a', Color{0x55, 0xFF, 0x55}},
	{"aqua", 'b', Color{0x55, 0xFF, 0xFF}},
	{"red", 'c', Color{0xFF, 0x55, 0x55}},
	{"light_purple", 'd', Color{0xFF, 0x55, 0xFF}},
	{"yellow", 'e', Color{0xFF, 0xFF, 0x55}},
	{"white", 'f', Color{0xFF, 0xFF, 0xFF}},
}

// ColorByLegacyCode resolves a single legacy formatting code character
// (0-9, a-f) to its Color and name. ok is false for non-color codes.
func ColorByLegacyCode(code byte) (Color, string, bool) {
	code = lowerByte(code)
	for _, c := range legacyPalette {
		if c.Code == code {
			return c.Color, c.Name, true
		}
	}
	return Color{}, "", false
}

// ColorByName resolves a legacy palette name (e.g. "dark_purple") to its
// Color.
func ColorByName(name string) (Color, bool) {
	for _, c := range legacyPalette {
		if c.Name == name {
			return c.Color, true
		}
	}
	return Color{}, false
}

// ParseColor parses "#RGB", "#RRGGBB", or a legacy palette name.
func ParseColor(s string) (Color, error) {
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}
	if c, ok := ColorByName(s); ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("text: unknown color %q", s)
}

func parseHexColor(s string) (Color, error) {
	hexDigits := s[1:]
	switch len(hexDigits) {
	case 3:
		r, err := strconv.ParseUint(hexDigits[0:1], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("text: invalid hex color %q: %w", s, err)
		}
		g, err := strconv.ParseUint(hexDigits[1:2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("text: invalid hex color %q: %w", s, err)
		}
		b, err := strconv.ParseUint(hexDigits[2:3], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("text: invalid hex color %q: %w", s, err)
		}
		return Color{uint8(r * 17), uint8(g * 17), uint8(b * 17)}, nil
	case 6:
		v, err := strconv.ParseUint(hexDigits, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("text: invalid hex color %q: %w", s, err)
		}
		return Color{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
	default:
		return Color{}, fmt.Errorf("text: invalid hex color %q", s)
	}
}

// Hex renders the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NearestLegacyName maps an arbitrary color to the closest legacy palette
// entry by squared RGB distance.
func (c Color) NearestLegacyName() string {
	best := legacyPalette[0]
	bestDist := math.MaxFloat64
	for _, candidate := range legacyPalette {
		dr := float64(c.R) - float64(candidate.R)
		dg := float64(c.G) - float64(candidate.G)
		db := float64(c.B) - float64(candidate.B)
		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			bestDist = dist
			best = candidate
		}
	}
	return best.Name
}

// Lerp linearly interpolates between a and b by t in [0,1].
func Lerp(a, b Color, t float64) Color {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return Color{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B)}
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
