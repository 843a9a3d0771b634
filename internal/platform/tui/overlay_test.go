package tui

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-bingo/internal/confetti"
	"github.com/vovakirdan/tui-bingo/internal/core"
)

func TestOverlayViewport(t *testing.T) {
	o := NewOverlay(80, 24, 8, 16)
	w, h := o.Viewport()
	if w != 640 || h != 384 {
		t.Errorf("Viewport() = (%g, %g), expected (640, 384)", w, h)
	}

	o.Resize(40, 10)
	w, h = o.Viewport()
	if w != 320 || h != 160 {
		t.Errorf("Viewport() after Resize = (%g, %g), expected (320, 160)", w, h)
	}
}

func TestOverlayDrawMapsPixelsToCells(t *testing.T) {
	o := NewOverlay(10, 5, 8, 16)
	l := o.OpenLayer()
	l.Create(confetti.Sprite{X: 20, Y: 40, Opacity: 1, Size: 12, Shape: confetti.ShapeCircle, Color: core.ColorPink})

	screen := core.NewScreen(10, 5)
	o.Draw(screen)

	// 20/8 = 2.5 -> column 2, 40/16 = 2.5 -> row 2
	cell := screen.GetCell(2, 2)
	if cell.Rune != '●' {
		t.Errorf("Cell rune = %q, expected '●'", cell.Rune)
	}
	if cell.Color != core.ColorPink {
		t.Errorf("Cell color = %v, expected pink", cell.Color)
	}
}

func TestOverlayClipsOffscreen(t *testing.T) {
	o := NewOverlay(10, 5, 8, 16)
	l := o.OpenLayer()
	l.Create(confetti.Sprite{X: -4, Y: 10, Opacity: 1})
	l.Create(confetti.Sprite{X: 500, Y: 10, Opacity: 1})
	l.Create(confetti.Sprite{X: 10, Y: 900, Opacity: 1})

	screen := core.NewScreen(10, 5)
	o.Draw(screen)

	if got := screen.String(); got != core.NewScreen(10, 5).String() {
		t.Errorf("Offscreen sprites were drawn:\n%s", got)
	}
}

func TestOverlayLayerClose(t *testing.T) {
	o := NewOverlay(10, 5, 8, 16)
	a := o.OpenLayer()
	b := o.OpenLayer()
	a.Create(confetti.Sprite{})
	b.Create(confetti.Sprite{})

	if o.Layers() != 2 || o.Sprites() != 2 {
		t.Fatalf("Layers/Sprites = %d/%d, expected 2/2", o.Layers(), o.Sprites())
	}

	a.Close()
	a.Close()
	if o.Layers() != 1 || o.Sprites() != 1 {
		t.Errorf("After Close Layers/Sprites = %d/%d, expected 1/1", o.Layers(), o.Sprites())
	}
}

func TestOverlayUpdateDestroy(t *testing.T) {
	o := NewOverlay(10, 5, 8, 16)
	l := o.OpenLayer()
	id := l.Create(confetti.Sprite{X: 0, Y: 0, Opacity: 1, Shape: confetti.ShapeCircle})
	l.Update(id, confetti.Sprite{X: 72, Y: 64, Opacity: 1, Shape: confetti.ShapeCircle})

	screen := core.NewScreen(10, 5)
	o.Draw(screen)
	if screen.Get(0, 0) != ' ' || screen.Get(9, 4) != '•' {
		t.Errorf("Update did not move the sprite:\n%s", screen.String())
	}

	l.Destroy(id)
	if o.Sprites() != 0 {
		t.Errorf("Sprites() = %d after Destroy, expected 0", o.Sprites())
	}
}

func TestSpriteCell(t *testing.T) {
	tests := []struct {
		name   string
		sprite confetti.Sprite
		rune   rune
		attr   core.Attr
	}{
		{"big circle", confetti.Sprite{Shape: confetti.ShapeCircle, Size: 12, Opacity: 1}, '●', core.AttrBold},
		{"small circle", confetti.Sprite{Shape: confetti.ShapeCircle, Size: 6, Opacity: 0.8}, '•', 0},
		{"flat rect", confetti.Sprite{Shape: confetti.ShapeRect, Rotation: 0.1, Opacity: 1}, '▬', core.AttrBold},
		{"upright rect", confetti.Sprite{Shape: confetti.ShapeRect, Rotation: math.Pi / 2, Opacity: 1}, '▮', core.AttrBold},
		{"wrapped rotation", confetti.Sprite{Shape: confetti.ShapeRect, Rotation: math.Pi + 0.1, Opacity: 1}, '▬', core.AttrBold},
		{"negative rotation", confetti.Sprite{Shape: confetti.ShapeRect, Rotation: -0.1, Opacity: 1}, '◢', core.AttrBold},
		{"fading", confetti.Sprite{Shape: confetti.ShapeRect, Opacity: 0.3}, '▬', core.AttrFaint},
		{"nearly gone", confetti.Sprite{Shape: confetti.ShapeCircle, Size: 12, Opacity: 0.1}, '·', core.AttrFaint},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cell := spriteCell(tc.sprite)
			if cell.Rune != tc.rune || cell.Attr != tc.attr {
				t.Errorf("spriteCell() = (%q, %v), expected (%q, %v)", cell.Rune, cell.Attr, tc.rune, tc.attr)
			}
		})
	}
}

func TestOverlayHostsEffect(t *testing.T) {
	o := NewOverlay(80, 24, 8, 16)
	q := &confetti.Queue{}
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	e := confetti.Spawn(o, q, confetti.DefaultParams(), rand.New(rand.NewSource(3)), start)
	if o.Layers() != 1 || o.Sprites() != 140 {
		t.Fatalf("Layers/Sprites = %d/%d, expected 1/140", o.Layers(), o.Sprites())
	}

	now := start
	for q.Pending() {
		now = now.Add(16 * time.Millisecond)
		q.RunFrame(now)
	}

	if !e.Done() {
		t.Error("Effect should be done")
	}
	if o.Layers() != 0 || o.Sprites() != 0 {
		t.Errorf("After teardown Layers/Sprites = %d/%d, expected 0/0", o.Layers(), o.Sprites())
	}
}
