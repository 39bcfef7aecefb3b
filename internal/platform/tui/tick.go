// Package tui is the terminal frontend: a Bubble Tea program that schedules
// frame ticks, feeds key presses into the held-key map and paints game
// snapshots with lipgloss colors. The same model is served over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame loop tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after a
// frame interval at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
