package core

import "fmt"

// Color is a pixel color token. One token fills one cell of a Frame.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined color tokens. ColorClear is transparent and never drawn.
const (
	ColorClear Color = iota
	ColorDefault
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// tokenColors maps the single-character pixel-art tokens used by the asset
// tables to colors.
var tokenColors = map[rune]Color{
	'.': ColorClear,
	'#': ColorDefault,
	'r': ColorRed,
	'g': ColorGreen,
	'y': ColorYellow,
	'b': ColorBlue,
	'm': ColorMagenta,
	'c': ColorCyan,
	'w': ColorWhite,
	'R': ColorBrightRed,
	'G': ColorBrightGreen,
	'Y': ColorBrightYellow,
	'B': ColorBrightBlue,
	'M': ColorBrightMagenta,
	'C': ColorBrightCyan,
	'W': ColorBrightWhite,
	'o': ColorOrange,
	'a': ColorGray,
}

// ParseColorToken converts a pixel-art token to a Color.
func ParseColorToken(r rune) (Color, bool) {
	c, ok := tokenColors[r]
	return c, ok
}

// ParseColorName converts a color name such as "bright_red" to a Color.
func ParseColorName(name string) (Color, error) {
	switch name {
	case "clear":
		return ColorClear, nil
	case "default":
		return ColorDefault, nil
	case "red":
		return ColorRed, nil
	case "green":
		return ColorGreen, nil
	case "yellow":
		return ColorYellow, nil
	case "blue":
		return ColorBlue, nil
	case "magenta":
		return ColorMagenta, nil
	case "cyan":
		return ColorCyan, nil
	case "white":
		return ColorWhite, nil
	case "bright_red":
		return ColorBrightRed, nil
	case "bright_green":
		return ColorBrightGreen, nil
	case "bright_yellow":
		return ColorBrightYellow, nil
	case "bright_blue":
		return ColorBrightBlue, nil
	case "bright_magenta":
		return ColorBrightMagenta, nil
	case "bright_cyan":
		return ColorBrightCyan, nil
	case "bright_white":
		return ColorBrightWhite, nil
	case "orange":
		return ColorOrange, nil
	case "gray":
		return ColorGray, nil
	default:
		return ColorClear, fmt.Errorf("unknown color %q", name)
	}
}

// Palette recolors tokens at draw time. Templates are never modified; a
// palette is an overlay owned by the entity that draws with it.
type Palette map[Color]Color

// Map returns the overlay color for c, or c itself when the palette has no entry.
func (p Palette) Map(c Color) Color {
	if p == nil {
		return c
	}
	if mapped, ok := p[c]; ok {
		return mapped
	}
	return c
}
