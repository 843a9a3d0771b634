package core

import "strings"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorPink
	ColorAmber
	ColorEmerald
	ColorViolet
	ColorSlate
)

var colorNames = map[string]Color{
	"default": ColorDefault,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"orange":  ColorOrange,
	"gray":    ColorGray,
	"pink":    ColorPink,
	"amber":   ColorAmber,
	"emerald": ColorEmerald,
	"violet":  ColorViolet,
	"slate":   ColorSlate,
}

// ParseColor looks up a color by its lowercase name (e.g. "emerald").
// Returns ColorDefault and false for unknown names.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// String returns the configuration name of the color.
func (c Color) String() string {
	for name, v := range colorNames {
		if v == c {
			return name
		}
	}
	return "default"
}

// Attr is a set of text attributes applied on top of a cell's color.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrFaint
	AttrStrike
	AttrReverse
)

// Has reports whether all bits of other are set.
func (a Attr) Has(other Attr) bool {
	return a&other == other
}
