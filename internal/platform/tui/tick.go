// Package tui runs dodger inside a Bubble Tea program: it maps keys to
// actions, queues them between frames, schedules ticks and turns the screen
// buffer into styled terminal output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one frame of the game loop.
type TickMsg time.Time

// tickCmd returns a command that sends a TickMsg after one frame budget.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
