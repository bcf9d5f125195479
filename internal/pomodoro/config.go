package pomodoro

import (
	"errors"
	"fmt"
)

// Config holds the session durations in seconds and the long cycle length.
type Config struct {
	WorkSeconds       int
	ShortRestSeconds  int
	LongRestSeconds   int
	CyclesPerLongRest int
}

// DefaultConfig is the classic 25/5/15 rhythm with a long rest every fourth pomodoro.
func DefaultConfig() Config {
	return Config{
		WorkSeconds:       25 * 60,
		ShortRestSeconds:  5 * 60,
		LongRestSeconds:   15 * 60,
		CyclesPerLongRest: 4,
	}
}

// DurationFor returns the configured length of phase p in seconds. Idle
// reports the work duration since that is what the display shows before the
// first session starts.
func (c Config) DurationFor(p Phase) int {
	switch p {
	case ShortResting:
		return c.ShortRestSeconds
	case LongResting:
		return c.LongRestSeconds
	default:
		return c.WorkSeconds
	}
}

// Validate checks the values a caller must guarantee before building a
// Controller. The controller itself never calls it.
func (c Config) Validate() error {
	var errs []error
	if c.WorkSeconds <= 0 {
		errs = append(errs, fmt.Errorf("work duration must be positive, got %ds", c.WorkSeconds))
	}
	if c.ShortRestSeconds <= 0 {
		errs = append(errs, fmt.Errorf("short rest duration must be positive, got %ds", c.ShortRestSeconds))
	}
	if c.LongRestSeconds <= 0 {
		errs = append(errs, fmt.Errorf("long rest duration must be positive, got %ds", c.LongRestSeconds))
	}
	if c.CyclesPerLongRest < 1 {
		errs = append(errs, fmt.Errorf("cycles per long rest must be at least 1, got %d", c.CyclesPerLongRest))
	}
	return errors.Join(errs...)
}

func (c Config) shortRestsPerCycle() int {
	if c.CyclesPerLongRest < 1 {
		return 0
	}
	return c.CyclesPerLongRest - 1
}
