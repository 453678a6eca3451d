package styled

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB text color. Colors obtained by name remember that
// name, so a named color and the equal hex value are different colors.
type Color struct {
	rgb  uint32
	name string
}

// Hex creates a color from a 0xRRGGBB value.
func Hex(v uint32) Color {
	return Color{rgb: v & 0xffffff}
}

// RGB creates a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{rgb: uint32(r)<<16 | uint32(g)<<8 | uint32(b)}
}

// Value returns the color as 0xRRGGBB.
func (c Color) Value() uint32 {
	return c.rgb
}

// Components returns the red, green and blue components.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c.rgb >> 16), uint8(c.rgb >> 8), uint8(c.rgb)
}

// Name returns the color name, or "" for colors created from a hex value.
func (c Color) Name() string {
	return c.name
}

// HexString returns the color as "#rrggbb".
func (c Color) HexString() string {
	return fmt.Sprintf("#%06x", c.rgb)
}

// String returns the name for named colors and "#rrggbb" otherwise.
func (c Color) String() string {
	if c.name != "" {
		return c.name
	}
	return c.HexString()
}

// The sixteen named colors.
var (
	Black       = Color{0x000000, "black"}
	DarkBlue    = Color{0x0000aa, "dark_blue"}
	DarkGreen   = Color{0x00aa00, "dark_green"}
	DarkAqua    = Color{0x00aaaa, "dark_aqua"}
	DarkRed     = Color{0xaa0000, "dark_red"}
	DarkPurple  = Color{0xaa00aa, "dark_purple"}
	Gold        = Color{0xffaa00, "gold"}
	Gray        = Color{0xaaaaaa, "gray"}
	DarkGray    = Color{0x555555, "dark_gray"}
	Blue        = Color{0x5555ff, "blue"}
	Green       = Color{0x55ff55, "green"}
	Aqua        = Color{0x55ffff, "aqua"}
	Red         = Color{0xff5555, "red"}
	LightPurple = Color{0xff55ff, "light_purple"}
	Yellow      = Color{0xffff55, "yellow"}
	White       = Color{0xffffff, "white"}
)

var namedColors = map[string]Color{
	"black":        Black,
	"dark_blue":    DarkBlue,
	"dark_green":   DarkGreen,
	"dark_aqua":    DarkAqua,
	"dark_red":     DarkRed,
	"dark_purple":  DarkPurple,
	"gold":         Gold,
	"gray":         Gray,
	"grey":         Gray,
	"dark_gray":    DarkGray,
	"dark_grey":    DarkGray,
	"blue":         Blue,
	"green":        Green,
	"aqua":         Aqua,
	"red":          Red,
	"light_purple": LightPurple,
	"yellow":       Yellow,
	"white":        White,
}

// Named looks up one of the sixteen named colors. The spellings "grey"
// and "dark_grey" are accepted.
func Named(name string) (Color, bool) {
	c, ok := namedColors[strings.ToLower(name)]
	return c, ok
}

// ParseColor parses a color name or a "#rrggbb" hex value.
func ParseColor(s string) (Color, error) {
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 {
			return Color{}, fmt.Errorf("invalid hex color %q: want #rrggbb", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q", s)
		}
		return Hex(uint32(v)), nil
	}
	if c, ok := Named(s); ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}
