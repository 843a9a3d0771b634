package bingo

import (
	"fmt"
	"unicode"

	"github.com/vovakirdan/tui-bingo/internal/core"
)

// Render draws the board into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.TooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small for the board")
		return
	}

	done := Detect(g.state.Selected)

	g.drawButton(dst)
	g.drawLetters(dst, done.Lines())
	for pos := range g.state.Tiles {
		g.drawTile(dst, pos)
	}
	g.drawLineMarkers(dst, done)
	g.drawStatus(dst, done.Lines())
}

// drawButton draws the Randomize control.
func (g *Game) drawButton(dst *core.Screen) {
	b := g.layout.Button
	dst.DrawStyledText(b.X, b.Y, buttonLabel, g.theme.Button, core.AttrBold)
}

// drawLetters draws B I N G O, striking letters left to right as lines complete.
func (g *Game) drawLetters(dst *core.Screen, lines int) {
	struck := StruckLetters(lines)
	for i, p := range g.layout.Letters {
		if i < struck {
			dash := core.Cell{Rune: '─', Color: g.theme.Line}
			dst.SetCell(p.X-1, p.Y, dash)
			dst.SetCell(p.X, p.Y, core.Cell{Rune: Letters[i], Color: g.theme.Line, Attr: core.AttrBold | core.AttrStrike})
			dst.SetCell(p.X+1, p.Y, dash)
			continue
		}
		dst.SetCell(p.X, p.Y, core.Cell{Rune: Letters[i], Color: g.theme.Columns[i], Attr: core.AttrBold})
	}
}

// drawTile draws one tile colored by its column.
func (g *Game) drawTile(dst *core.Screen, pos int) {
	r := g.layout.Tiles[pos]
	_, col := RowCol(pos)
	color := g.theme.Columns[col]
	selected := g.state.Selected.Has(pos)

	border := core.AttrFaint
	text := core.AttrBold
	textColor := core.ColorWhite
	if selected {
		border = core.AttrBold
		text = core.AttrStrike | core.AttrFaint
		textColor = core.ColorSlate
	}
	if pos == g.cursor {
		text |= core.AttrReverse
	}

	label := fmt.Sprintf("%2d", g.state.Tiles[pos])
	if g.layout.Compact {
		dst.SetCell(r.X, r.Y, core.Cell{Rune: '[', Color: color, Attr: border})
		dst.DrawStyledText(r.X+1, r.Y, label, textColor, text)
		dst.SetCell(r.Right()-1, r.Y, core.Cell{Rune: ']', Color: color, Attr: border})
		return
	}

	dst.DrawBox(r, color, border)
	if selected {
		// Shade the tile interior so marked tiles read as filled
		dst.DrawRect(core.NewRect(r.X+1, r.Y+1, r.W-2, 1), core.Cell{Rune: '░', Color: color, Attr: core.AttrFaint})
	}
	dst.DrawStyledText(r.X+(r.W-len(label))/2, r.Y+1, label, textColor, text)
}

// drawLineMarkers strikes through completed rows and columns. Digits stay
// visible and take the marker color.
func (g *Game) drawLineMarkers(dst *core.Screen, done Completion) {
	line := g.theme.Line
	grid := g.layout.Grid

	for r := 0; r < Size; r++ {
		if !done.Rows[r] {
			continue
		}
		_, y := g.layout.Tiles[r*Size].Center()
		for x := grid.X; x < grid.Right(); x++ {
			g.markCell(dst, x, y, '━', line)
		}
	}

	for c := 0; c < Size; c++ {
		if !done.Cols[c] {
			continue
		}
		x, _ := g.layout.Tiles[c].Center()
		for y := grid.Y; y < grid.Bottom(); y++ {
			if dst.Get(x, y) == '━' {
				dst.SetCell(x, y, core.Cell{Rune: '╋', Color: line, Attr: core.AttrBold})
				continue
			}
			g.markCell(dst, x, y, '┃', line)
		}
	}
}

// markCell overlays a marker rune unless the cell holds a digit.
func (g *Game) markCell(dst *core.Screen, x, y int, r rune, color core.Color) {
	cell := dst.GetCell(x, y)
	if unicode.IsDigit(cell.Rune) {
		cell.Color = color
		dst.SetCell(x, y, cell)
		return
	}
	dst.SetCell(x, y, core.Cell{Rune: r, Color: color, Attr: core.AttrBold})
}

// drawStatus draws the line counter under the grid.
func (g *Game) drawStatus(dst *core.Screen, lines int) {
	status := fmt.Sprintf("Lines %d/%d  ·  Marked %d  ·  Board #%d",
		lines, Size*2, g.state.Selected.Len(), g.state.Epoch+1)
	if g.state.Latch == Fired {
		status += "  ·  ★ BINGO! ★"
	}
	x := (dst.Width() - len([]rune(status))) / 2
	color := core.ColorGray
	if g.state.Latch == Fired {
		color = g.theme.Line
	}
	dst.DrawStyledText(x, g.layout.StatusY, status, color, 0)
}
