package colors

import (
	"fmt"
	"strconv"
	"strings"
)

type Color [4]float32

var (
	Transparent = Color{0, 0, 0, 0}
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Magenta     = Color{1, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
)

var named = map[string]Color{
	"transparent": Transparent,
	"white":       White,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"black":       Black,
	"magenta":     Magenta,
	"cyan":        Cyan,
	"yellow":      Yellow,
	"gray":        Gray,
	"darkgray":    DarkGray,
}

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Visible reports whether the colour has any opacity.
func (c Color) Visible() bool { return c[3] > 0 }

// Parse reads a colour name or a "#rrggbb" / "#rrggbbaa" hex string.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := named[s]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return Color{}, fmt.Errorf("colors: invalid colour %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colors: invalid colour %q: %w", s, err)
	}
	return Color{
		float32(v>>24&0xff) / 255,
		float32(v>>16&0xff) / 255,
		float32(v>>8&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}
