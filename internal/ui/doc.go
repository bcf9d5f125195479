// Package ui provides the terminal interface of the pomodoro timer.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. It never owns timer state: every key that
// changes the timer calls into state.Store, and a refresh tick pulls a fresh
// state.Snapshot a few times per second so the countdown stays current while
// the tick source runs on its own goroutine.
//
// # Package Structure
//
//   - app.go: Model, Update loop, key handling and Run
//   - header.go: status bar and command bar
//   - timer.go: countdown panel, progress bar and recent activity
//   - help.go: keyboard shortcut overlay
//   - keys.go: key bindings (bubbles/key)
//   - theme.go: color themes with per-phase colors
//   - style_helpers.go: BgStyle for gap-free background bars
//
// # Key Bindings
//
//	w        start working
//	r / R    start a short / long rest
//	space/p  pause or continue
//	m        toggle the terminal bell (persisted)
//	T        cycle theme (persisted)
//	h / ?    help
//	q        quit
//
// # Preferences
//
// Theme and bell choices are written to the prefs file as soon as they
// change. A failed save is logged and shown in the command bar; the UI keeps
// running with the new choice.
package ui
