package bingo

import (
	"github.com/vovakirdan/tui-bingo/internal/config"
	"github.com/vovakirdan/tui-bingo/internal/core"
)

// Theme holds the resolved colors used to draw the board.
type Theme struct {
	Columns [Size]core.Color
	Line    core.Color
	Button  core.Color
}

// DefaultTheme returns the pink/orange/amber/emerald/violet palette.
func DefaultTheme() Theme {
	return Theme{
		Columns: [Size]core.Color{core.ColorPink, core.ColorOrange, core.ColorAmber, core.ColorEmerald, core.ColorViolet},
		Line:    core.ColorEmerald,
		Button:  core.ColorAmber,
	}
}

// ThemeFrom resolves a theme config, keeping defaults for unknown names.
func ThemeFrom(tc config.ThemeConfig) Theme {
	t := DefaultTheme()
	for i, name := range tc.Columns {
		if i >= Size {
			break
		}
		if c, ok := core.ParseColor(name); ok {
			t.Columns[i] = c
		}
	}
	if c, ok := core.ParseColor(tc.Line); ok {
		t.Line = c
	}
	if c, ok := core.ParseColor(tc.Button); ok {
		t.Button = c
	}
	return t
}
