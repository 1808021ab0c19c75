// Package tui runs snake games in the terminal with Bubble Tea: the frame
// loop, key bindings, the variant menu and the run history screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game frame.
type TickMsg time.Time

// tickCmd returns a command that sends one TickMsg after a frame.
func tickCmd(frame time.Duration) tea.Cmd {
	return tea.Tick(frame, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
