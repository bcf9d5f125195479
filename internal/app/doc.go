// Package app is the composition root of the pomodoro timer.
//
// # Overview
//
// Run loads configuration and preferences, builds the notifiers and the
// shared state.Store, starts the tick source and then hands control to either
// the Bubble Tea UI or the headless loop.
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> godotenv.Load()     optional .env overrides
//	       ├─────> config.Load()       defaults < TOML < env
//	       ├─────> applyOverrides()    CLI flags win
//	       ├─────> prefs.Load()        theme + bell
//	       ├─────> state.NewStore()    controller + notifiers
//	       ├─────> StartTicker()       one Tick per second while counting
//	       └─────> ui.Run() | headless (blocks)
//
// # Tick Source
//
// StartTicker never calls Tick while the store is paused or idle. It blocks on
// the store's Wake channel instead, and every wake restarts the one-second
// interval so a phase entered by hand always gets a full first second.
//
// # Logging
//
// Logs use charmbracelet/log and carry a per-run session id. Headless runs
// log to stderr. The TUI owns the terminal, so interactive runs append to
// the configured log file instead.
//
// # Error Handling
//
// Configuration problems are returned from Run before anything starts.
// Notification failures are logged and never reach the timer.
package app
