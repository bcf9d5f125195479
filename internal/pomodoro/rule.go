package pomodoro

// Transition is the outcome of evaluating the automatic transition rule.
type Transition uint8

const (
	// Stay means no phase change is due.
	Stay Transition = iota
	// ToShortRest ends a work session with a short rest.
	ToShortRest
	// ToLongRest ends a work session with a long rest and closes the cycle.
	ToLongRest
	// ToWork resumes work after an expired rest.
	ToWork
)

// Next evaluates the automatic transition rule for the post-decrement
// countdown. It has no side effects.
func Next(phase Phase, remaining, shortRestsLeft int) Transition {
	if remaining > 0 {
		return Stay
	}
	switch phase {
	case Working:
		if shortRestsLeft > 0 {
			return ToShortRest
		}
		return ToLongRest
	case ShortResting, LongResting:
		return ToWork
	default:
		return Stay
	}
}
