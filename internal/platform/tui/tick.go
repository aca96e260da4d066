// Package tui provides the Bubble Tea integration for the catch arcade.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// firstTickDT is the simulation step used before a previous tick exists.
const firstTickDT = 1.0 / 60.0

// SimTickMsg triggers a simulation tick. The model measures dt from the
// wall-clock time between consecutive messages.
type SimTickMsg time.Time

// MoveTickMsg triggers a paddle movement tick. Movement always advances by
// the configured fixed step, whatever time actually passed.
type MoveTickMsg time.Time

func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// simTickCmd schedules the next simulation tick.
func simTickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return SimTickMsg(t)
	})
}

// moveTickCmd schedules the next movement tick.
func moveTickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return MoveTickMsg(t)
	})
}

// measureDT returns the seconds between two ticks, or firstTickDT when there
// was no previous tick.
func measureDT(prev, now time.Time) float64 {
	if prev.IsZero() {
		return firstTickDT
	}
	dt := now.Sub(prev).Seconds()
	if dt < 0 {
		return 0
	}
	return dt
}
