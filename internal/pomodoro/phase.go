package pomodoro

import "fmt"

// Phase is the current mode of the timer.
type Phase uint8

const (
	Idle Phase = iota
	Working
	ShortResting
	LongResting
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Working:
		return "Working"
	case ShortResting:
		return "Short Rest"
	case LongResting:
		return "Long Rest"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Label returns the heading shown to the user for the phase.
func (p Phase) Label() string {
	switch p {
	case Working:
		return "WORKING"
	case ShortResting, LongResting:
		return "RESTING"
	default:
		return "IDLE"
	}
}

// IsRest reports whether p is one of the two rest phases.
func (p Phase) IsRest() bool {
	return p == ShortResting || p == LongResting
}
