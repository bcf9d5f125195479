// Package config loads the timer configuration.
//
// # Resolution Order
//
//  1. Built-in defaults (25m work, 5m short rest, 15m long rest, 4 cycles)
//  2. The TOML file at the given path, or ~/.config/pomodoro/config.toml
//  3. POMODORO_WORK, POMODORO_SHORT_REST, POMODORO_LONG_REST, POMODORO_CYCLES
//
// A missing file is not an error. Command line flags are applied by the
// caller after Load returns.
//
// # TOML Format
//
//	work = "25m"
//	short_rest = "5m"
//	long_rest = "15m"
//	cycles = 4
//	log_file = "~/.local/state/pomodoro/pomodoro.log"
//
//	[sounds]
//	work_started = "paplay ~/sounds/start.oga"
//	work_ended = "paplay ~/sounds/finish.oga"
//
// Durations use Go duration syntax and are truncated to whole seconds.
//
// # Validation
//
// Validate rejects any duration shorter than one second and any cycle count
// below one. Load leaves it to the caller so command-line flags can still
// replace a bad file or environment value; app.Run validates the merged
// result. The state machine assumes valid input.
package config
