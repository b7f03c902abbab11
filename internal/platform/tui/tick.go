// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping and score saving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge-creeps/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval returns the wall-clock time between ticks.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next simulation tick.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
