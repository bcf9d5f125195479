package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops
	// secondary counters.
	LayoutCompactWidth = 80

	// LayoutMaxBarWidth caps the progress bar on wide terminals.
	LayoutMaxBarWidth = 50
)

// maxActivity is the most history lines shown below the timer.
const maxActivity = 6
