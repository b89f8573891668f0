package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color4 is an RGBA color with float64 components in [0,1].
type Color4 struct {
	R, G, B, A float64
}

func From8BitRgb(r, g, b, a byte) Color4 {
	return Color4{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
		A: float64(a) / 255.0,
	}
}

// FromHex parses "#RGB" or "#RRGGBB". The result is opaque.
func FromHex(s string) (Color4, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color4{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color4{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return From8BitRgb(byte(v>>16), byte(v>>8), byte(v), 255), nil
}

// MustHex is FromHex for compile-time constants; it panics on bad input.
func MustHex(s string) Color4 {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with its alpha replaced.
func (c Color4) WithAlpha(a float64) Color4 {
	return Color4{
		R: c.R,
		G: c.G,
		B: c.B,
		A: a,
	}
}

// ToNRGBA returns the color as 8-bit non-premultiplied RGBA (truncating).
func (c Color4) ToNRGBA() color.NRGBA {
	return color.NRGBA{
		to8bit(c.R),
		to8bit(c.G),
		to8bit(c.B),
		to8bit(c.A),
	}
}

// Hex returns "#RRGGBB", dropping alpha.
func (c Color4) Hex() string {
	n := c.ToNRGBA()
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}

// CSS returns the color as a CSS color: hex when opaque, rgba() otherwise.
func (c Color4) CSS() string {
	if c.A >= 1 {
		return c.Hex()
	}
	n := c.ToNRGBA()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", n.R, n.G, n.B, strconv.FormatFloat(clamp01(c.A), 'f', -1, 64))
}

// --- helpers ---

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// to8bit truncates 255 * clamp01(x) toward zero.
func to8bit(x float64) uint8 {
	return uint8(255.0*clamp01(x) + 1e-9)
}
