// Package tui provides the Bubble Tea front end for the pathfinder: the grid
// editor, the animated search runner, the history table and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent when the pause between two animation frames is over.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after delay.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
