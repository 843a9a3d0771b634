package bingo

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-bingo/internal/config"
	"github.com/vovakirdan/tui-bingo/internal/core"
)

func newTestGame(t *testing.T, w, h int) *Game {
	t.Helper()
	g := New(config.Default())
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: 12345})
	return g
}

func click(g *Game, pos int) core.StepResult {
	x, y := g.Layout().Tiles[pos].Center()
	in := core.NewInputFrame()
	in.Click(x, y)
	return g.Step(in)
}

func TestClickTogglesTile(t *testing.T) {
	g := newTestGame(t, 80, 23)

	click(g, 7)
	if !g.Board().Selected.Has(7) {
		t.Fatal("tile 7 should be marked after click")
	}
	if g.Cursor() != 7 {
		t.Errorf("Cursor() = %d, want 7", g.Cursor())
	}

	click(g, 7)
	if g.Board().Selected.Has(7) {
		t.Fatal("tile 7 should be unmarked after second click")
	}
	if g.State().Marks != 2 {
		t.Errorf("Marks = %d, want 2", g.State().Marks)
	}
}

func TestClickOutsideBoardIgnored(t *testing.T) {
	g := newTestGame(t, 80, 23)
	in := core.NewInputFrame()
	in.Click(0, 0)
	in.Click(79, 22)

	res := g.Step(in)
	if len(res.Events) != 0 {
		t.Errorf("Events = %v, want none", res.Events)
	}
	if g.Board().Selected != 0 {
		t.Errorf("Selected = %b, want empty", g.Board().Selected)
	}
}

func TestClickButtonShuffles(t *testing.T) {
	g := newTestGame(t, 80, 23)
	click(g, 0)

	b := g.Layout().Button
	in := core.NewInputFrame()
	in.Click(b.X+1, b.Y)
	res := g.Step(in)

	if !res.Has(core.EventShuffled) {
		t.Fatalf("Events = %v, want EventShuffled", res.Events)
	}
	if res.State.Epoch != 1 {
		t.Errorf("Epoch = %d, want 1", res.State.Epoch)
	}
	if g.Board().Selected != 0 {
		t.Error("shuffle should clear marks")
	}
}

func TestKeyboardCursorAndToggle(t *testing.T) {
	g := newTestGame(t, 80, 23)

	moves := []core.Action{core.ActionRight, core.ActionRight, core.ActionDown}
	for _, a := range moves {
		in := core.NewInputFrame()
		in.Set(a)
		g.Step(in)
	}
	if g.Cursor() != 7 {
		t.Fatalf("Cursor() = %d, want 7", g.Cursor())
	}

	in := core.NewInputFrame()
	in.Set(core.ActionToggle)
	g.Step(in)
	if !g.Board().Selected.Has(7) {
		t.Error("ActionToggle should mark the cursor tile")
	}

	// Cursor is clamped at the edges
	for i := 0; i < 10; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionUp)
		in.Set(core.ActionLeft)
		g.Step(in)
	}
	if g.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0 after moving past the corner", g.Cursor())
	}
}

func TestCelebrationEventOncePerEpoch(t *testing.T) {
	g := newTestGame(t, 80, 23)

	celebrations := 0
	marks := append(seq(0, 20), 20, 21, 22)
	for _, pos := range marks {
		if click(g, pos).Has(core.EventCelebrate) {
			celebrations++
		}
	}
	if celebrations != 1 {
		t.Fatalf("celebrations = %d, want 1", celebrations)
	}
	if !g.State().Celebrated {
		t.Error("State().Celebrated should be true")
	}

	// Reshuffle and win again: one more celebration
	in := core.NewInputFrame()
	in.Set(core.ActionShuffle)
	g.Step(in)
	for _, pos := range seq(0, Cells) {
		if click(g, pos).Has(core.EventCelebrate) {
			celebrations++
		}
	}
	if celebrations != 2 {
		t.Errorf("celebrations = %d, want 2 after a new epoch", celebrations)
	}
}

func TestCustomThreshold(t *testing.T) {
	cfg := config.Default()
	cfg.Celebration.Threshold = 1
	g := New(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 23, Seed: 1})

	var fired bool
	for _, pos := range rowByRow[0] {
		fired = click(g, pos).Has(core.EventCelebrate)
	}
	if !fired {
		t.Error("threshold 1 should fire on the first line")
	}
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(t, 80, 23)
	g2 := newTestGame(t, 80, 23)

	for i := 0; i < 5; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionShuffle)
		g1.Step(in)
		g2.Step(in)
	}
	if g1.Board().Tiles != g2.Board().Tiles {
		t.Errorf("same seed produced different boards:\n%v\n%v", g1.Board().Tiles, g2.Board().Tiles)
	}
}

func TestResizeKeepsState(t *testing.T) {
	g := newTestGame(t, 80, 23)
	click(g, 3)

	g.Resize(30, 12)
	if !g.Layout().Compact {
		t.Error("30x12 should use the compact layout")
	}
	if !g.Board().Selected.Has(3) {
		t.Error("resize must not clear marks")
	}

	// Clicks still hit tiles in the compact layout
	click(g, 4)
	if !g.Board().Selected.Has(4) {
		t.Error("compact click did not mark tile 4")
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		compact  bool
		tooSmall bool
	}{
		{"standard terminal", 80, 23, false, false},
		{"exact full size", 39, 21, false, false},
		{"short terminal", 80, 15, true, false},
		{"narrow terminal", 30, 23, true, false},
		{"tiny terminal", 20, 8, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(tt.w, tt.h)
			if l.Compact != tt.compact || l.TooSmall != tt.tooSmall {
				t.Fatalf("NewLayout(%d, %d) compact=%v tooSmall=%v, want %v/%v",
					tt.w, tt.h, l.Compact, l.TooSmall, tt.compact, tt.tooSmall)
			}
			if l.TooSmall {
				if _, ok := l.TileAt(tt.w/2, tt.h/2); ok {
					t.Error("TileAt should miss on a too-small layout")
				}
				return
			}
			if l.StatusY >= tt.h {
				t.Errorf("StatusY = %d, outside height %d", l.StatusY, tt.h)
			}
			for pos, r := range l.Tiles {
				got, ok := l.TileAt(r.X, r.Y)
				if !ok || got != pos {
					t.Errorf("TileAt(corner of %d) = %d, %v", pos, got, ok)
				}
				if r.Right() > tt.w || r.Bottom() > tt.h {
					t.Errorf("tile %d %+v outside %dx%d", pos, r, tt.w, tt.h)
				}
			}
		})
	}
}

func TestRenderLettersAndMarkers(t *testing.T) {
	g := newTestGame(t, 80, 23)
	screen := core.NewScreen(80, 23)

	// Row 0 and column 2: two lines
	for _, pos := range []int{0, 1, 2, 3, 4, 7, 12, 17, 22} {
		click(g, pos)
	}
	g.Render(screen)

	l := g.Layout()
	for i, p := range l.Letters {
		cell := screen.GetCell(p.X, p.Y)
		if cell.Rune != Letters[i] {
			t.Fatalf("letter %d = %q, want %q", i, cell.Rune, Letters[i])
		}
		struck := cell.Attr.Has(core.AttrStrike)
		if struck != (i < 2) {
			t.Errorf("letter %c struck = %v, want %v", Letters[i], struck, i < 2)
		}
	}

	// Row marker across the gap between tiles 0 and 1
	_, rowY := l.Tiles[0].Center()
	gapX := l.Tiles[0].Right()
	if got := screen.Get(gapX, rowY); got != '━' {
		t.Errorf("row marker at gap = %q, want '━'", got)
	}

	// Column marker on the top border of tile 12
	colX, _ := l.Tiles[12].Center()
	if got := screen.Get(colX, l.Tiles[12].Y); got != '┃' {
		t.Errorf("column marker = %q, want '┃'", got)
	}

	// Incomplete row 1 has no marker
	_, row1Y := l.Tiles[5].Center()
	if got := screen.Get(l.Tiles[5].Right(), row1Y); got == '━' {
		t.Error("incomplete row should not be marked")
	}

	if !strings.Contains(screen.String(), "Lines 2/10") {
		t.Errorf("status line missing:\n%s", screen.String())
	}
	if !strings.Contains(screen.String(), "[ Randomize ]") {
		t.Error("Randomize button missing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 20, 6)
	screen := core.NewScreen(20, 6)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected too-small message, got:\n%s", screen.String())
	}
}

func TestText(t *testing.T) {
	g := newTestGame(t, 80, 23)
	click(g, 0)

	text := g.Text()
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != Size+1 {
		t.Fatalf("Text() has %d lines, want %d:\n%s", len(lines), Size+1, text)
	}
	if !strings.Contains(lines[0], "B") || !strings.Contains(lines[0], "O") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "( 1)") {
		t.Errorf("marked tile not shown: %q", lines[1])
	}
}
