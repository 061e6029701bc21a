package main

import (
	"image/color"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// ColorOf maps a glyph to the color it is shown in. Letters pick the color
// whose name they start with, digits 1-7 index the palette directly and
// everything else uses the terminal default.
func ColorOf(glyph rune) ColorTag {
	switch unicode.ToLower(glyph) {
	case 'r':
		return ColorRed
	case 'g':
		return ColorGreen
	case 'y':
		return ColorYellow
	case 'b':
		return ColorBlue
	case 'm':
		return ColorMagenta
	case 'c':
		return ColorCyan
	case 'w':
		return ColorWhite
	}
	if glyph >= '1' && glyph < '0'+rune(numColors) {
		return ColorTag(glyph - '0')
	}
	return ColorDefault
}

func (c ColorTag) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	default:
		return "default"
	}
}

// ANSI foreground colors, indexed by tag.
var ansiColors = [numColors]string{"", "1", "2", "3", "4", "5", "6", "7"}

// Colors used for PNG export on a white background.
var rgbColors = [numColors]color.RGBA{
	ColorDefault: {0, 0, 0, 255},
	ColorRed:     {200, 30, 30, 255},
	ColorGreen:   {30, 150, 40, 255},
	ColorYellow:  {190, 160, 0, 255},
	ColorBlue:    {30, 60, 200, 255},
	ColorMagenta: {170, 40, 170, 255},
	ColorCyan:    {0, 150, 160, 255},
	ColorWhite:   {150, 150, 150, 255},
}

func glyphStyle(tag ColorTag) lipgloss.Style {
	style := lipgloss.NewStyle()
	if tag > ColorDefault && tag < numColors {
		style = style.Foreground(lipgloss.Color(ansiColors[tag]))
	}
	return style
}

// colorize renders one cell, with color when enabled.
func colorize(glyph rune, enabled bool) string {
	if !enabled || glyph == blankCell {
		return string(glyph)
	}
	return glyphStyle(ColorOf(glyph)).Render(string(glyph))
}

func pngColor(glyph rune) color.RGBA {
	tag := ColorOf(glyph)
	if tag < 0 || tag >= numColors {
		tag = ColorDefault
	}
	return rgbColors[tag]
}
