// Package export renders a board as a printable PNG card.
package export

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/tui-bingo/internal/core"
	"github.com/vovakirdan/tui-bingo/internal/games/bingo"
)

// Card geometry in pixels.
const (
	cellSize = 96
	margin   = 24
	header   = 72
	footer   = 32

	CardWidth  = 2*margin + bingo.Size*cellSize
	CardHeight = margin + header + bingo.Size*cellSize + footer + margin
)

// palette maps board colors to print colors.
var palette = map[core.Color]color.RGBA{
	core.ColorRed:     {0xe5, 0x48, 0x4d, 0xff},
	core.ColorGreen:   {0x30, 0xa4, 0x6c, 0xff},
	core.ColorYellow:  {0xf5, 0xd9, 0x0a, 0xff},
	core.ColorBlue:    {0x00, 0x90, 0xff, 0xff},
	core.ColorMagenta: {0xd6, 0x40, 0x9f, 0xff},
	core.ColorCyan:    {0x05, 0xa2, 0xc2, 0xff},
	core.ColorWhite:   {0xf0, 0xf0, 0xf0, 0xff},
	core.ColorOrange:  {0xf7, 0x6b, 0x15, 0xff},
	core.ColorGray:    {0x8b, 0x8d, 0x98, 0xff},
	core.ColorPink:    {0xec, 0x48, 0x99, 0xff},
	core.ColorAmber:   {0xf5, 0x9e, 0x0b, 0xff},
	core.ColorEmerald: {0x10, 0xb9, 0x81, 0xff},
	core.ColorViolet:  {0x8b, 0x5c, 0xf6, 0xff},
	core.ColorSlate:   {0x64, 0x74, 0x8b, 0xff},
}

var (
	paper = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ink   = color.RGBA{0x1f, 0x29, 0x37, 0xff}
)

// RGBA returns the print color for c, ink for the default color.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return ink
}

// Card draws a board state with a B I N G O header. Marked tiles are filled
// with their column color and completed lines are struck through.
type Card struct {
	State bingo.State
	Theme bingo.Theme
	Label string // Footer text, e.g. the seed
}

// Render draws the card into an image.
func (c Card) Render() (image.Image, error) {
	dc, err := c.draw()
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG encodes the card as PNG to w.
func (c Card) WritePNG(w io.Writer) error {
	dc, err := c.draw()
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("export: cannot encode png: %w", err)
	}
	return nil
}

// SavePNG writes the card to a PNG file.
func (c Card) SavePNG(path string) error {
	dc, err := c.draw()
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("export: cannot write %s: %w", path, err)
	}
	return nil
}

// TileOrigin returns the top-left pixel of a tile.
func TileOrigin(pos int) (x, y float64) {
	row, col := bingo.RowCol(pos)
	return float64(margin + col*cellSize), float64(margin + header + row*cellSize)
}

func (c Card) draw() (*gg.Context, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("export: failed to parse font: %w", err)
	}
	face := func(size float64) font.Face {
		return truetype.NewFace(ttf, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	dc := gg.NewContext(CardWidth, CardHeight)
	dc.SetColor(paper)
	dc.Clear()

	// Header letters
	dc.SetFontFace(face(44))
	for col, letter := range bingo.Letters {
		dc.SetColor(RGBA(c.Theme.Columns[col]))
		cx := float64(margin + col*cellSize + cellSize/2)
		dc.DrawStringAnchored(string(letter), cx, float64(margin+header/2), 0.5, 0.5)
	}

	// Tiles
	dc.SetFontFace(face(36))
	for pos, value := range c.State.Tiles {
		_, col := bingo.RowCol(pos)
		x, y := TileOrigin(pos)
		colColor := RGBA(c.Theme.Columns[col])

		dc.DrawRectangle(x+3, y+3, cellSize-6, cellSize-6)
		if c.State.Selected.Has(pos) {
			dc.SetColor(colColor)
			dc.FillPreserve()
		}
		dc.SetColor(colColor)
		dc.SetLineWidth(3)
		dc.Stroke()

		dc.SetColor(ink)
		if c.State.Selected.Has(pos) {
			dc.SetColor(paper)
		}
		dc.DrawStringAnchored(fmt.Sprintf("%d", value), x+cellSize/2, y+cellSize/2, 0.5, 0.4)
	}

	c.drawLines(dc)

	if c.Label != "" {
		dc.SetFontFace(face(14))
		dc.SetColor(RGBA(core.ColorSlate))
		dc.DrawStringAnchored(c.Label, CardWidth/2, float64(CardHeight-margin-footer/2), 0.5, 0.5)
	}

	return dc, nil
}

// drawLines strokes through every completed row and column.
func (c Card) drawLines(dc *gg.Context) {
	done := bingo.Detect(c.State.Selected)
	dc.SetColor(RGBA(c.Theme.Line))
	dc.SetLineWidth(6)
	dc.SetLineCapRound()

	left := float64(margin + 12)
	right := float64(margin + bingo.Size*cellSize - 12)
	top := float64(margin + header + 12)
	bottom := float64(margin + header + bingo.Size*cellSize - 12)

	for r, complete := range done.Rows {
		if complete {
			y := float64(margin + header + r*cellSize + cellSize/2)
			dc.DrawLine(left, y, right, y)
			dc.Stroke()
		}
	}
	for col, complete := range done.Cols {
		if complete {
			x := float64(margin + col*cellSize + cellSize/2)
			dc.DrawLine(x, top, x, bottom)
			dc.Stroke()
		}
	}
}
