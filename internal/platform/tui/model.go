package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bingo/internal/config"
	"github.com/vovakirdan/tui-bingo/internal/confetti"
	"github.com/vovakirdan/tui-bingo/internal/core"
	"github.com/vovakirdan/tui-bingo/internal/games/bingo"
	"github.com/vovakirdan/tui-bingo/internal/storage"
)

// Options configures a board model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables the win history
	Logger  *log.Logger    // nil discards
	Player  string

	// Clipboard receives the board text on copy. Nil disables copying.
	Clipboard func(string) error

	// Renderer styles the output. Nil uses the default renderer.
	Renderer *lipgloss.Renderer

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// SystemClipboard writes to the local clipboard.
func SystemClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// Model is the Bubble Tea model for the bingo board.
type Model struct {
	game     *bingo.Game
	screen   *core.Screen
	overlay  *Overlay
	frames   *frameScheduler
	effects  *effectSet
	params   confetti.Params
	fxRand   *rand.Rand
	store    *storage.Store
	logger   *log.Logger
	renderer *lipgloss.Renderer

	config     core.RuntimeConfig
	player     string
	clipboard  func(string) error
	now        func() time.Time
	epochStart time.Time

	keys     KeyMap
	help     help.Model
	status   string
	width    int
	height   int
	quitting bool
}

// effectSet tracks running effects so they can be closed with the view.
type effectSet struct {
	running []*confetti.Effect
}

func (s *effectSet) add(e *confetti.Effect) {
	s.running = append(s.running, e)
}

// prune forgets effects that finished on their own.
func (s *effectSet) prune() {
	live := s.running[:0]
	for _, e := range s.running {
		if !e.Done() {
			live = append(live, e)
		}
	}
	s.running = live
}

func (s *effectSet) closeAll() {
	for _, e := range s.running {
		e.Close()
	}
	s.running = nil
}

// NewModel creates a new board model.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	player := opts.Player
	if player == "" {
		player = "local"
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:       bingo.New(opts.Config),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		overlay:    NewOverlay(cfg.ScreenW, cfg.ScreenH, opts.Config.Confetti.CellWidth, opts.Config.Confetti.CellHeight),
		frames:     newFrameScheduler(cfg.TickRate),
		effects:    &effectSet{},
		params:     confetti.ParamsFrom(opts.Config.Confetti),
		fxRand:     rand.New(rand.NewSource(cfg.Seed)),
		store:      opts.Store,
		logger:     logger,
		renderer:   renderer,
		config:     cfg,
		player:     player,
		clipboard:  opts.Clipboard,
		now:        now,
		epochStart: now(),
		keys:       DefaultKeyMap(),
		help:       h,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}

	m.game.Reset(cfg)
	m.relayout()
	return m
}

// Init implements tea.Model. The board is idle until input arrives.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	}

	in := core.NewInputFrame()
	if m.keys.MapKeyToFrame(msg, &in) {
		m.quitting = true
		m.Close()
		return m, tea.Quit
	}

	if in.Has(core.ActionCopy) {
		m.copyBoard()
		return m, nil
	}
	if in.Empty() {
		return m, nil
	}
	return m.apply(in)
}

// handleMouse turns a left press into a click. Releases and motion are ignored.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	m.status = ""

	in := core.NewInputFrame()
	in.Click(msg.X, msg.Y)
	return m.apply(in)
}

// handleResize processes window resize events. The board keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.relayout()
	return m, nil
}

// handleFrame advances running effects by one frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	cmd := m.frames.run(now)
	m.effects.prune()
	return m, cmd
}

// relayout sizes the board to the space left above the help bar.
func (m *Model) relayout() {
	boardH := max(m.height-lipgloss.Height(m.help.View(m.keys)), 0)
	m.config.ScreenW = m.width
	m.config.ScreenH = boardH
	m.screen.Resize(m.width, boardH)
	m.game.Resize(m.width, boardH)
	m.overlay.Resize(m.width, boardH)
}

// apply steps the board and reacts to its events.
func (m Model) apply(in core.InputFrame) (tea.Model, tea.Cmd) {
	result := m.game.Step(in)

	for _, e := range result.Events {
		switch e {
		case core.EventShuffled:
			m.epochStart = m.now()
			m.logger.Debug("board shuffled", "epoch", result.State.Epoch)
		case core.EventCelebrate:
			m.celebrate(result.State)
		}
	}

	return m, m.frames.next()
}

// celebrate starts the confetti and records the win.
func (m *Model) celebrate(state core.GameState) {
	now := m.now()
	m.effects.add(confetti.Spawn(m.overlay, m.frames, m.params, m.fxRand, now))

	win := storage.Win{
		Epoch:    state.Epoch,
		Lines:    state.Lines,
		Marks:    state.Marks,
		Duration: now.Sub(m.epochStart),
		Seed:     m.game.Seed(),
		Player:   m.player,
	}
	m.logger.Info("bingo", "epoch", win.Epoch, "lines", win.Lines, "marks", win.Marks, "duration", win.Duration)

	if m.store != nil {
		if _, err := m.store.SaveWin(win); err != nil {
			m.logger.Warn("could not record win", "error", err)
		}
	}
}

// copyBoard puts the board text on the clipboard.
func (m *Model) copyBoard() {
	if m.clipboard == nil {
		m.status = "clipboard not available"
		return
	}
	if err := m.clipboard(m.game.Text()); err != nil {
		m.logger.Warn("clipboard write failed", "error", err)
		m.status = "copy failed"
		return
	}
	m.status = "board copied"
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := config.ScreenshotDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		m.status = "screenshot failed"
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot write screenshot", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.status = "saved " + path
}

// draw renders the board with the confetti on top.
func (m Model) draw() {
	m.game.Render(m.screen)
	m.overlay.Draw(m.screen)
}

// footer renders the status line or the help bar.
func (m Model) footer() string {
	style := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	if m.status != "" {
		return style.Render(m.status)
	}
	return style.Render(m.help.View(m.keys))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreenWith(m.renderer, m.screen) + "\n" + m.footer()
}

// Close stops every running effect and releases its layer.
func (m Model) Close() {
	m.effects.closeAll()
}

// Run starts the Bubble Tea program with a board model.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.Close()
	}
	return err
}
