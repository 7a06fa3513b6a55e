package core

import (
	"fmt"
	"image/color"
	"strconv"
)

// RGBA is a straight (non-premultiplied) colour with components in [0, 1].
// Fades interpolate these components, so alpha is kept as a float.
type RGBA struct {
	R, G, B, A float64
}

// Predefined colours.
var (
	Transparent = RGBA{}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
	Black       = RGBA{A: 1}
	// Sky is the clear colour behind every parallax layer.
	Sky = RGBA{R: 0.462745098, G: 0.576470588, B: 0.701960784, A: 1}
)

// RGB creates an opaque colour.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// WithAlpha returns the colour with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Lerp interpolates every component, alpha included.
func (c RGBA) Lerp(to RGBA, t float64) RGBA {
	return RGBA{
		R: Lerp(c.R, to.R, t),
		G: Lerp(c.G, to.G, t),
		B: Lerp(c.B, to.B, t),
		A: Lerp(c.A, to.A, t),
	}
}

// Over composites c on top of an opaque background.
func (c RGBA) Over(bg RGBA) RGBA {
	a := ClampF(c.A, 0, 1)
	return RGBA{
		R: c.R*a + bg.R*(1-a),
		G: c.G*a + bg.G*(1-a),
		B: c.B*a + bg.B*(1-a),
		A: 1,
	}
}

// Hex returns the colour as #rrggbb, ignoring alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

// NRGBA converts to the standard library colour type.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

func to8(v float64) uint8 {
	return uint8(ClampF(v, 0, 1)*255 + 0.5)
}

// ParseHex parses #rrggbb or #rrggbbaa.
func ParseHex(s string) (RGBA, error) {
	if len(s) != 7 && len(s) != 9 || s[0] != '#' {
		return RGBA{}, fmt.Errorf("core: bad colour %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("core: bad colour %q: %w", s, err)
	}
	if len(s) == 7 {
		v = v<<8 | 0xff
	}
	ch := func(shift uint) float64 { return float64(v>>shift&0xff) / 255 }
	return RGBA{R: ch(24), G: ch(16), B: ch(8), A: ch(0)}, nil
}

// MustParseHex is like ParseHex but panics on a malformed colour. It is
// meant for colour literals in code.
func MustParseHex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
