package core

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA stores explicit 8-bit color channels, decoupled from any renderer
type RGBA struct {
	R, G, B, A uint8
}

// Predefined colors
var (
	Transparent = RGBA{}
	Black       = RGBA{0, 0, 0, 255}
	White       = RGBA{255, 255, 255, 255}
)

// ParseHex decodes "#RRGGBB" or "#RRGGBBAA" into a color.
// Six-digit values are fully opaque.
func ParseHex(s string) (RGBA, error) {
	if !strings.HasPrefix(s, "#") {
		return RGBA{}, fmt.Errorf("color %q: missing '#' prefix", s)
	}
	alpha := uint8(255)
	hex := s
	if len(s) == 9 {
		var a uint8
		if _, err := fmt.Sscanf(strings.ToLower(s[7:]), "%02x", &a); err != nil {
			return RGBA{}, fmt.Errorf("color %q: invalid alpha channel", s)
		}
		alpha = a
		hex = s[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGBA{r, g, b, alpha}, nil
}

// MustParseHex is ParseHex for compile-time constants in code paths
// where a malformed literal is a programming error
func MustParseHex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex renders "#RRGGBB", or "#RRGGBBAA" when the color is not opaque
func (c RGBA) Hex() string {
	if c.A != 255 {
		return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Lerp interpolates toward dst in sRGB space.
// t at or beyond either endpoint returns that endpoint exactly, so
// converged animations carry no rounding drift.
func (c RGBA) Lerp(dst RGBA, t float64) RGBA {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return dst
	}
	from := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	to := colorful.Color{R: float64(dst.R) / 255, G: float64(dst.G) / 255, B: float64(dst.B) / 255}
	r, g, b := from.BlendRgb(to, t).RGB255()
	return RGBA{r, g, b, lerpChannel(c.A, dst.A, t)}
}

// Blend performs alpha blending over the base color: result = src*alpha + base*(1-alpha).
// The base alpha channel is preserved.
func (c RGBA) Blend(src RGBA, alpha float64) RGBA {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return RGBA{src.R, src.G, src.B, c.A}
	}
	inv := 1.0 - alpha
	return RGBA{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
		A: c.A,
	}
}

// ColorPtrEqual compares optional colors: two nils are equal, a nil
// never equals a set value
func ColorPtrEqual(a, b *RGBA) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
