package bingo

import "github.com/vovakirdan/tui-bingo/internal/core"

// Layout constants for the full-size board.
const (
	tileW       = 7 // Boxed tile width including borders
	tileH       = 3 // Boxed tile height including borders
	tileGap     = 1 // Horizontal gap between tiles
	fullHeight  = 21
	buttonLabel = "[ Randomize ]"
)

// Layout constants for the compact board used on short terminals.
const (
	compactTileW  = 4 // "[12]"
	compactHeight = 11
)

// Layout places the board elements on a screen of a given size.
type Layout struct {
	Button   core.Rect
	Letters  [Size]core.Point
	Tiles    [Cells]core.Rect
	Grid     core.Rect
	StatusY  int
	Compact  bool
	TooSmall bool
}

// NewLayout computes the layout for a width x height screen.
// Boxed 7x3 tiles are used when they fit, otherwise single-line tiles.
func NewLayout(width, height int) Layout {
	var l Layout

	tw, th, total := tileW, tileH, fullHeight
	if width < Size*tileW+(Size-1)*tileGap || height < fullHeight {
		tw, th, total = compactTileW, 1, compactHeight
		l.Compact = true
	}

	gridW := Size*tw + (Size-1)*tileGap
	if width < gridW || height < total {
		l.TooSmall = true
		return l
	}

	x0 := (width - gridW) / 2
	y0 := (height - total) / 2

	// Button, blank, letters, blank, grid, blank, status
	labelW := len(buttonLabel)
	l.Button = core.NewRect(x0+(gridW-labelW)/2, y0, labelW, 1)
	lettersY := y0 + 2
	gridY := y0 + 4
	l.Grid = core.NewRect(x0, gridY, gridW, Size*th)
	l.StatusY = gridY + Size*th + 1

	for c := 0; c < Size; c++ {
		l.Letters[c] = core.Point{X: x0 + c*(tw+tileGap) + tw/2, Y: lettersY}
	}
	for pos := 0; pos < Cells; pos++ {
		row, col := RowCol(pos)
		l.Tiles[pos] = core.NewRect(x0+col*(tw+tileGap), gridY+row*th, tw, th)
	}

	return l
}

// TileAt returns the tile position under screen cell (x, y).
func (l Layout) TileAt(x, y int) (int, bool) {
	if l.TooSmall || !l.Grid.Contains(x, y) {
		return 0, false
	}
	for pos, r := range l.Tiles {
		if r.Contains(x, y) {
			return pos, true
		}
	}
	return 0, false
}

// OnButton reports whether (x, y) hits the Randomize button.
func (l Layout) OnButton(x, y int) bool {
	return !l.TooSmall && l.Button.Contains(x, y)
}
