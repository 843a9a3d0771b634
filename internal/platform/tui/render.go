package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-bingo/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:     "1",
	core.ColorGreen:   "2",
	core.ColorYellow:  "3",
	core.ColorBlue:    "4",
	core.ColorMagenta: "5",
	core.ColorCyan:    "6",
	core.ColorWhite:   "7",
	core.ColorOrange:  "208",
	core.ColorGray:    "245",
	core.ColorPink:    "212",
	core.ColorAmber:   "214",
	core.ColorEmerald: "42",
	core.ColorViolet:  "141",
	core.ColorSlate:   "103",
}

// cellStyle is the part of a cell that affects its escape sequence.
type cellStyle struct {
	color core.Color
	attr  core.Attr
}

// styleFor builds the lipgloss style for a color and attribute set.
func styleFor(r *lipgloss.Renderer, cs cellStyle) lipgloss.Style {
	style := r.NewStyle()
	if code, ok := colorCodes[cs.color]; ok {
		style = style.Foreground(lipgloss.Color(code))
	}
	if cs.attr.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if cs.attr.Has(core.AttrFaint) {
		style = style.Faint(true)
	}
	if cs.attr.Has(core.AttrStrike) {
		style = style.Strikethrough(true)
	}
	if cs.attr.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return RenderScreenWith(lipgloss.DefaultRenderer(), s)
}

// RenderScreenWith renders using a specific renderer, e.g. one bound to an
// SSH session's color profile.
func RenderScreenWith(r *lipgloss.Renderer, s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[cellStyle]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{cell.Color, cell.Attr}

			// Collect consecutive cells with the same style
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{cell.Color, cell.Attr}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}

			style, ok := styles[start]
			if !ok {
				style = styleFor(r, start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
