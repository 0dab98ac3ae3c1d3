package ergo

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is a straight (non-premultiplied) RGBA color.
// Each component is in the range [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGBA implements color.Color. The result is alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	r = uint32(clamp01(c.R)*alpha*0xffff + 0.5)
	g = uint32(clamp01(c.G)*alpha*0xffff + 0.5)
	b = uint32(clamp01(c.B)*alpha*0xffff + 0.5)
	a = uint32(alpha*0xffff + 0.5)
	return r, g, b, a
}

// NRGBA converts the color to an 8-bit straight-alpha color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// IsOpaqueWhite reports whether c leaves a texture unchanged when used as
// a tint.
func (c Color) IsOpaqueWhite() bool {
	return c.R >= 1 && c.G >= 1 && c.B >= 1 && c.A >= 1
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// NewColor creates a color from RGBA components.
func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB8 creates an opaque color from 8-bit components.
func RGB8(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: 1,
	}
}

// ParseHex parses a hex color in one of the forms "RGB", "RGBA",
// "RRGGBB" or "RRGGBBAA", with or without a leading '#'. Forms without an
// alpha digit are opaque.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")

	var digits int
	switch len(hex) {
	case 3, 4:
		digits = 1
	case 6, 8:
		digits = 2
	default:
		return Black, fmt.Errorf("ergo: hex color %q: want 3, 4, 6 or 8 digits", s)
	}

	ch := [4]uint32{0, 0, 0, 255}
	for i := 0; i*digits < len(hex); i++ {
		v, ok := parseHex(hex[i*digits : (i+1)*digits])
		if !ok {
			return Black, fmt.Errorf("ergo: hex color %q: invalid digit", s)
		}
		if digits == 1 {
			v *= 17
		}
		ch[i] = v
	}

	return Color{
		R: float32(ch[0]) / 255,
		G: float32(ch[1]) / 255,
		B: float32(ch[2]) / 255,
		A: float32(ch[3]) / 255,
	}, nil
}

// Hex is ParseHex for literals. Malformed input yields opaque black.
func Hex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		return Black
	}
	return c
}

// parseHex decodes one or two hex digits.
func parseHex(s string) (uint32, bool) {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
			c -= '0'
		case 'a' <= c && c <= 'f':
			c -= 'a' - 10
		case 'A' <= c && c <= 'F':
			c -= 'A' - 10
		default:
			return 0, false
		}
		v = v*16 + uint32(c)
	}
	return v, true
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func to8(x float32) uint8 {
	return uint8(clamp01(x)*255 + 0.5)
}

// Common colors. The dark and accent tones follow the usual game-toolkit
// palette so demo output matches what drawing code expects.
var (
	Transparent = NewColor(0, 0, 0, 0)
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Gray        = RGB8(130, 130, 130)
	Red         = RGB8(230, 41, 55)
	Orange      = RGB8(255, 161, 0)
	Yellow      = RGB8(253, 249, 0)
	Green       = RGB8(0, 228, 48)
	DarkGreen   = RGB8(0, 117, 44)
	Blue        = RGB8(0, 121, 241)
	DarkBlue    = RGB8(0, 82, 172)
	Magenta     = RGB8(255, 0, 255)
	DarkBrown   = RGB8(76, 63, 47)
)
