// Package pomodoro implements the work/rest phase state machine.
//
// # Overview
//
// A Controller cycles through Working, ShortResting and LongResting phases.
// It starts Idle and never terminates. Four operations mutate it:
//
//   - StartWork: manual entry into Working (emits WorkStarted)
//   - StartRest: manual entry into a short or long rest (emits WorkEnded)
//   - TogglePause: flips the counting flag
//   - Tick: consumes one second and applies the automatic transition rule
//
// # Automatic Transitions
//
// When a tick brings the countdown to zero or below, Next decides what
// happens:
//
//	Working, short rests left > 0  → ShortResting, one short rest consumed
//	Working, short rests left == 0 → LongResting, cycle counter reset
//	ShortResting or LongResting    → Working
//	Idle                           → nothing
//
// Every work session ended by the countdown increments
// CompletedWorkSessions; every long rest entered by the countdown increments
// CompletedLongCycles. Manual StartRest calls never touch that bookkeeping.
//
// # Concurrency
//
// The Controller does no locking and starts no goroutines. It expects one
// sequential stream of calls; state.Store provides that for the application.
//
// # Notifications
//
// A Notifier passed to New receives an Event on every phase entry, after the
// new state is in place. Notifiers run synchronously inside the mutating
// call and must not call back into the Controller.
package pomodoro
