package core

import "image/color"

// Color is a terminal foreground color for a screen cell.
// Values map onto ANSI 256-color codes in the terminal frontend.
type Color uint8

// Terminal colors.
const (
	ColorDefault Color = iota
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

// Game palette. Collectibles and obstacles pick one of Palette uniformly;
// the player always uses PlayerColor.
var (
	ColorRGBARed     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorRGBAGreen   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ColorRGBABlue    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	ColorRGBAYellow  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	ColorRGBAMagenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}

	PlayerColor = color.RGBA{R: 255, G: 128, B: 0, A: 255}

	Palette = []color.RGBA{
		ColorRGBARed,
		ColorRGBAGreen,
		ColorRGBABlue,
		ColorRGBAYellow,
		ColorRGBAMagenta,
	}
)

var termColors = map[color.RGBA]Color{
	ColorRGBARed:     ColorBrightRed,
	ColorRGBAGreen:   ColorBrightGreen,
	ColorRGBABlue:    ColorBrightBlue,
	ColorRGBAYellow:  ColorBrightYellow,
	ColorRGBAMagenta: ColorBrightMagenta,
	PlayerColor:      ColorOrange,
}

// TermColor returns the terminal color used to display c.
// Colors outside the game palette fall back to ColorDefault.
func TermColor(c color.RGBA) Color {
	if tc, ok := termColors[c]; ok {
		return tc
	}
	return ColorDefault
}
