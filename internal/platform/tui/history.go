package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bingo/internal/storage"
)

const maxHistory = 100 // Max wins to load per view

// HistoryView selects which wins the table lists.
type HistoryView int

const (
	HistoryRecent HistoryView = iota
	HistoryFastest
)

func (v HistoryView) String() string {
	if v == HistoryFastest {
		return "FASTEST"
	}
	return "RECENT"
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Switch, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "recent/fastest"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the win history screen.
type HistoryModel struct {
	store    *storage.Store
	view     HistoryView
	wins     []storage.Win
	stats    *storage.WinStats
	err      error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Time", Width: 9},
		{Title: "Lines", Width: 6},
		{Title: "Marks", Width: 6},
		{Title: "Player", Width: 12},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for title, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the current view and the stats from the store.
func (m *HistoryModel) load() {
	m.wins = nil
	m.stats = nil
	m.err = nil

	if m.store == nil {
		m.updateTableRows()
		return
	}

	var wins []storage.Win
	var err error
	if m.view == HistoryFastest {
		wins, err = m.store.FastestWins(maxHistory)
	} else {
		wins, err = m.store.RecentWins(maxHistory)
	}
	if err != nil {
		m.err = err
	} else {
		m.wins = wins
	}

	if stats, err := m.store.Stats(); err == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded wins.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.wins))
	for i, w := range m.wins {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			formatDuration(w.Duration),
			fmt.Sprintf("%d", w.Lines),
			fmt.Sprintf("%d", w.Marks),
			w.Player,
			w.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatDuration renders a win time as m:ss.t.
func formatDuration(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	minutes := int(d / time.Minute)
	seconds := (d % time.Minute).Seconds()
	return fmt.Sprintf("%d:%04.1f", minutes, seconds)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.view == HistoryRecent {
				m.view = HistoryFastest
			} else {
				m.view = HistoryRecent
			}
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("BINGO HISTORY - "+m.view.String(), m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the whole history.
func (m HistoryModel) statsLine() string {
	if m.stats == nil || m.stats.Count == 0 {
		return "No wins yet"
	}
	return fmt.Sprintf("Wins %d · Fastest %s · Avg marks %.1f · Last %s",
		m.stats.Count,
		formatDuration(m.stats.Fastest),
		m.stats.AvgMarks,
		m.stats.LastWin.Format("Jan 02 15:04"),
	)
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.err != nil {
		return emptyStyle.Render("Could not load history:\n" + m.err.Error())
	}
	if len(m.wins) == 0 {
		return emptyStyle.Render("No bingos recorded yet.\nComplete five lines to get on the board!")
	}
	return m.table.View()
}

// centerText pads text to be centered in the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunHistory runs the win history screen.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
