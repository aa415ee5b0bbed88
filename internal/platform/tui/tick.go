// Package tui hosts snake sessions in Bubble Tea, locally and over SSH.
// It owns the tick timer, key bindings and turning the cell buffer into a
// styled frame.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Timer identifies the
// timer that sent it; ticks from a stopped timer are dropped.
type TickMsg struct {
	Timer int
	Time  time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration, timer int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Timer: timer, Time: t}
	})
}
