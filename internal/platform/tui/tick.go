// Package tui provides the Bubble Tea integration for the bomber game.
// It handles the terminal UI loop, input buffering, menus, the scoreboard
// and SSH sessions. The simulation itself is stepped by a loop.Loop; the
// UI only redraws.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a redraw.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(max(1, fps))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
