// Package tui provides the Bubble Tea integration for the bingo board.
// It handles the terminal UI loop, input mapping, the confetti overlay and
// the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bingo/internal/confetti"
)

// FrameMsg delivers an animation frame timestamp.
type FrameMsg time.Time

// frameScheduler adapts confetti.Scheduler to Bubble Tea. A tick is only
// requested while callbacks are queued, and never more than one at a time.
type frameScheduler struct {
	queue    confetti.Queue
	interval time.Duration
	inFlight bool
}

func newFrameScheduler(fps int) *frameScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &frameScheduler{interval: time.Second / time.Duration(fps)}
}

// ScheduleFrame implements confetti.Scheduler.
func (f *frameScheduler) ScheduleFrame(fn confetti.FrameFunc) {
	f.queue.ScheduleFrame(fn)
}

// next returns the tick command for the next frame, or nil when idle.
func (f *frameScheduler) next() tea.Cmd {
	if f.inFlight || !f.queue.Pending() {
		return nil
	}
	f.inFlight = true
	return tea.Tick(f.interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// run executes one frame and requests the following one.
func (f *frameScheduler) run(now time.Time) tea.Cmd {
	f.inFlight = false
	f.queue.RunFrame(now)
	return f.next()
}

// idle reports whether no frame is queued.
func (f *frameScheduler) idle() bool {
	return !f.queue.Pending()
}
