// Package state provides the thread-safe home of the running timer.
//
// # Overview
//
// pomodoro.Controller is deliberately unsynchronized. Store wraps exactly one
// controller behind a single mutex so the tick source goroutine and the UI
// can both drive it:
//
//	Tick source:                 UI:
//	┌────────────────┐          ┌──────────────────┐
//	│ store.Tick()   │          │ store.StartWork()│
//	│      ↓         │          │ store.Snapshot() │
//	│ wait interval  │─────────→│      ↓           │
//	│  repeat...     │ (mutex)  │  render          │
//	└────────────────┘          └──────────────────┘
//
// # Wake Signal
//
// Every user action (StartWork, StartRest, TogglePause) sends a coalescing
// signal on Wake(). The tick source uses it to stop promptly on pause, to
// resume promptly after it, and to restart its interval when a new phase is
// entered by hand. Tick never signals.
//
// # Event History
//
// Store records the last 32 notification events so the UI can show recent
// activity. Snapshot returns a copy of that history along with the
// controller state.
//
// # Notifiers
//
// The notifier passed to NewStore runs inside the store's lock. It must
// return quickly and must not call back into the Store.
package state
