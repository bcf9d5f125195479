package ui

import (
	"github.com/five82/pomodoro/internal/pomodoro"
)

// activityLine describes one event for the activity list.
func activityLine(e pomodoro.Event) string {
	line := e.Kind.String() + " → " + e.Phase.String()
	if e.Manual {
		line += " (manual)"
	}
	return line
}

// truncate shortens s to max runes, ending with an ellipsis when cut.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
