package app

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

const defaultTickInterval = time.Second

// Tickable is the part of state.Store the tick source drives.
type Tickable interface {
	Counting() bool
	Wake() <-chan struct{}
	Tick()
}

// StartTicker launches the tick source. While target is counting it calls
// Tick once per interval; while paused it blocks until woken and never
// calls Tick. Every wake restarts the interval. The returned channel is
// closed when the goroutine exits after ctx is cancelled.
func StartTicker(ctx context.Context, target Tickable, interval time.Duration, logger *log.Logger) <-chan struct{} {
	if interval <= 0 {
		interval = defaultTickInterval
	}
	if logger == nil {
		logger = log.Default()
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		runTicker(ctx, target, interval, logger)
	}()
	return done
}

func runTicker(ctx context.Context, target Tickable, interval time.Duration, logger *log.Logger) {
	for {
		if !target.Counting() {
			logger.Debug("tick source idle")
			select {
			case <-ctx.Done():
				return
			case <-target.Wake():
				continue
			}
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-target.Wake():
			timer.Stop()
		case <-timer.C:
			// a phase entered as the timer fired gets a full interval
			if wakePending(target) {
				continue
			}
			// a pause may have landed while the timer was firing
			if target.Counting() {
				target.Tick()
				logger.Debug("tick")
			}
		}
	}
}

// wakePending consumes a queued wake signal, if any.
func wakePending(target Tickable) bool {
	select {
	case <-target.Wake():
		return true
	default:
		return false
	}
}
