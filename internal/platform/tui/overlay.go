package tui

import (
	"math"

	"github.com/vovakirdan/tui-bingo/internal/confetti"
	"github.com/vovakirdan/tui-bingo/internal/core"
)

// Overlay is a confetti.Surface drawn over the board. Particles live in a
// virtual pixel space of cellW x cellH pixels per terminal cell.
type Overlay struct {
	cols, rows   int
	cellW, cellH float64
	layers       []*overlayLayer
}

// NewOverlay creates an overlay for a cols x rows screen.
func NewOverlay(cols, rows int, cellW, cellH float64) *Overlay {
	if cellW <= 0 {
		cellW = 8
	}
	if cellH <= 0 {
		cellH = 16
	}
	return &Overlay{cols: cols, rows: rows, cellW: cellW, cellH: cellH}
}

// Resize changes the covered screen area. Open layers keep their sprites.
func (o *Overlay) Resize(cols, rows int) {
	o.cols = cols
	o.rows = rows
}

// Viewport implements confetti.Surface.
func (o *Overlay) Viewport() (float64, float64) {
	return float64(o.cols) * o.cellW, float64(o.rows) * o.cellH
}

// OpenLayer implements confetti.Surface.
func (o *Overlay) OpenLayer() confetti.Layer {
	l := &overlayLayer{owner: o, sprites: make(map[confetti.SpriteID]confetti.Sprite)}
	o.layers = append(o.layers, l)
	return l
}

// Layers returns the number of open layers.
func (o *Overlay) Layers() int {
	return len(o.layers)
}

// Sprites returns the number of sprites across open layers.
func (o *Overlay) Sprites() int {
	n := 0
	for _, l := range o.layers {
		n += len(l.sprites)
	}
	return n
}

// Draw paints every sprite onto dst, later layers on top. Sprites outside
// the screen are clipped.
func (o *Overlay) Draw(dst *core.Screen) {
	for _, l := range o.layers {
		for _, id := range l.order {
			s, ok := l.sprites[id]
			if !ok {
				continue
			}
			x := int(math.Floor(s.X / o.cellW))
			y := int(math.Floor(s.Y / o.cellH))
			if x < 0 || y < 0 || x >= dst.Width() || y >= dst.Height() {
				continue
			}
			dst.SetCell(x, y, spriteCell(s))
		}
	}
}

func (o *Overlay) remove(l *overlayLayer) {
	for i, open := range o.layers {
		if open == l {
			o.layers = append(o.layers[:i], o.layers[i+1:]...)
			return
		}
	}
}

// overlayLayer is one effect's container.
type overlayLayer struct {
	owner   *Overlay
	next    confetti.SpriteID
	order   []confetti.SpriteID
	sprites map[confetti.SpriteID]confetti.Sprite
	closed  bool
}

func (l *overlayLayer) Create(s confetti.Sprite) confetti.SpriteID {
	l.next++
	l.sprites[l.next] = s
	l.order = append(l.order, l.next)
	return l.next
}

func (l *overlayLayer) Update(id confetti.SpriteID, s confetti.Sprite) {
	if _, ok := l.sprites[id]; ok {
		l.sprites[id] = s
	}
}

func (l *overlayLayer) Destroy(id confetti.SpriteID) {
	delete(l.sprites, id)
}

func (l *overlayLayer) Close() {
	if l.closed {
		return
	}
	l.closed = true
	l.sprites = map[confetti.SpriteID]confetti.Sprite{}
	l.order = nil
	l.owner.remove(l)
}

// Glyphs for rectangles by rotation, one per eighth of a turn.
var rectGlyphs = [4]rune{'▬', '◣', '▮', '◢'}

// spriteCell picks a glyph for a sprite. Shape and size choose the base
// glyph, rotation animates rectangles and low opacity fades to a dot.
func spriteCell(s confetti.Sprite) core.Cell {
	var r rune
	switch {
	case s.Opacity < 0.2:
		r = '·'
	case s.Shape == confetti.ShapeCircle && s.Size >= 10:
		r = '●'
	case s.Shape == confetti.ShapeCircle:
		r = '•'
	default:
		turn := math.Mod(s.Rotation, math.Pi)
		if turn < 0 {
			turn += math.Pi
		}
		r = rectGlyphs[int(turn/(math.Pi/4))%len(rectGlyphs)]
	}

	var attr core.Attr
	if s.Opacity < 0.5 {
		attr = core.AttrFaint
	} else if s.Opacity >= 0.95 {
		attr = core.AttrBold
	}
	return core.Cell{Rune: r, Color: s.Color, Attr: attr}
}
