package bingo

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-bingo/internal/config"
	"github.com/vovakirdan/tui-bingo/internal/core"
)

// Game is the interactive bingo board.
// It contains pure logic with no Bubble Tea dependency; the platform maps
// keys and mouse presses to input frames and draws the rendered screen.
type Game struct {
	threshold int
	theme     Theme

	rng    *rand.Rand
	seed   int64
	state  State
	cursor int

	layout  Layout
	screenW int
	screenH int
}

// New creates a board using the given configuration.
func New(cfg config.Config) *Game {
	return &Game{
		threshold: cfg.Celebration.Threshold,
		theme:     ThemeFrom(cfg.Theme),
	}
}

// ID returns the board identifier used in the win history.
func (g *Game) ID() string {
	return "bingo"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Bingo"
}

// Reset initializes the board: tiles 1..25 in order, nothing marked,
// latch armed and the cursor on the first tile.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.state = NewState()
	g.cursor = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the layout without touching the board state.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.layout = NewLayout(width, height)
}

// Step applies one input frame. Keyboard actions are applied before clicks,
// clicks in arrival order. The celebration latch is checked after every mark.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	if in.Has(core.ActionShuffle) {
		events = append(events, g.shuffle())
	}

	g.moveCursor(in)

	if in.Has(core.ActionToggle) {
		events = append(events, g.mark(g.cursor))
	}

	for _, click := range in.Clicks {
		if g.layout.OnButton(click.X, click.Y) {
			events = append(events, g.shuffle())
			continue
		}
		if pos, ok := g.layout.TileAt(click.X, click.Y); ok {
			g.cursor = pos
			events = append(events, g.mark(pos))
		}
	}

	return core.StepResult{
		State:  g.State(),
		Events: compact(events),
	}
}

// shuffle randomizes the board and re-arms the latch.
func (g *Game) shuffle() core.Event {
	g.state = Shuffle(g.state, g.rng)
	return core.EventShuffled
}

// mark toggles a tile and fires the celebration if the threshold is reached.
func (g *Game) mark(pos int) core.Event {
	g.state = Toggle(g.state, pos)

	var fired bool
	g.state, fired = Celebrate(g.state, g.threshold)
	if fired {
		return core.EventCelebrate
	}
	return core.EventNone
}

// moveCursor applies directional actions, clamped to the grid.
func (g *Game) moveCursor(in core.InputFrame) {
	row, col := RowCol(g.cursor)
	if in.Has(core.ActionUp) {
		row--
	}
	if in.Has(core.ActionDown) {
		row++
	}
	if in.Has(core.ActionLeft) {
		col--
	}
	if in.Has(core.ActionRight) {
		col++
	}
	row = core.Clamp(row, 0, Size-1)
	col = core.Clamp(col, 0, Size-1)
	g.cursor = row*Size + col
}

// compact drops EventNone entries.
func compact(events []core.Event) []core.Event {
	out := events[:0]
	for _, e := range events {
		if e != core.EventNone {
			out = append(out, e)
		}
	}
	return out
}

// State returns a summary of the board for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Lines:      Detect(g.state.Selected).Lines(),
		Marks:      g.state.Marks,
		Epoch:      g.state.Epoch,
		Celebrated: g.state.Latch == Fired,
	}
}

// Board returns the current board state.
func (g *Game) Board() State {
	return g.state
}

// Cursor returns the keyboard-focused position.
func (g *Game) Cursor() int {
	return g.cursor
}

// Layout returns the current layout.
func (g *Game) Layout() Layout {
	return g.layout
}

// Seed returns the RNG seed the board was reset with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Text renders the board as plain text, marked tiles shown as "(n)".
func (g *Game) Text() string {
	var b strings.Builder
	for _, l := range Letters {
		fmt.Fprintf(&b, "  %c  ", l)
	}
	b.WriteString("\n")
	for pos, v := range g.state.Tiles {
		if g.state.Selected.Has(pos) {
			fmt.Fprintf(&b, " (%2d)", v)
		} else {
			fmt.Fprintf(&b, "  %2d ", v)
		}
		if pos%Size == Size-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
