package pomodoro

import "time"

// EventKind identifies one of the two notification events.
type EventKind uint8

const (
	WorkStarted EventKind = iota + 1
	WorkEnded
)

func (k EventKind) String() string {
	switch k {
	case WorkStarted:
		return "work started"
	case WorkEnded:
		return "work ended"
	default:
		return "unknown"
	}
}

// Event is emitted on every phase entry.
type Event struct {
	Kind   EventKind
	Phase  Phase // phase just entered
	Manual bool  // triggered by StartWork/StartRest rather than the countdown
	At     time.Time
	State  Snapshot
}

// Notifier receives work started / work ended events. Implementations must
// not call back into the Controller.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to a Notifier.
type NotifierFunc func(Event)

func (f NotifierFunc) Notify(e Event) { f(e) }

// Snapshot is a read-only copy of the controller state.
type Snapshot struct {
	Config                Config
	Phase                 Phase
	RemainingSeconds      int
	Counting              bool
	ShortRestsLeft        int
	CompletedWorkSessions int
	CompletedLongCycles   int
	TotalWorkedSeconds    int
}

// Progress returns the elapsed fraction of the current phase in [0, 1].
func (s Snapshot) Progress() float64 {
	if s.Phase == Idle {
		return 0
	}
	total := s.Config.DurationFor(s.Phase)
	if total <= 0 {
		return 1
	}
	p := float64(total-s.RemainingSeconds) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Controller is the phase state machine. It is not safe for concurrent use;
// callers serialize access (see state.Store).
type Controller struct {
	cfg      Config
	notifier Notifier
	now      func() time.Time

	phase                 Phase
	remaining             int
	counting              bool
	shortRestsLeft        int
	completedWorkSessions int
	completedLongCycles   int
	totalWorkedSeconds    int
}

// Option customizes a Controller.
type Option func(*Controller)

// WithClock overrides the time source used to stamp events.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// New returns an idle controller. A nil notifier discards events.
func New(cfg Config, notifier Notifier, opts ...Option) *Controller {
	c := &Controller{
		cfg:            cfg,
		notifier:       notifier,
		now:            time.Now,
		phase:          Idle,
		remaining:      max(0, cfg.WorkSeconds),
		shortRestsLeft: cfg.shortRestsPerCycle(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StartWork enters the Working phase from any phase.
func (c *Controller) StartWork() {
	c.enterWork(true)
}

// StartRest enters a rest phase from any phase. Cycle bookkeeping is left
// untouched; only the countdown updates it.
func (c *Controller) StartRest(long bool) {
	c.enterRest(long, true)
}

// TogglePause flips the counting flag. It is inert while Idle.
func (c *Controller) TogglePause() {
	if c.phase == Idle {
		return
	}
	c.counting = !c.counting
}

// Tick consumes one second. Ticks delivered while not counting are ignored.
func (c *Controller) Tick() {
	if !c.counting || c.phase == Idle {
		return
	}

	worked := c.phase == Working
	c.remaining--
	if worked {
		c.totalWorkedSeconds++
	}

	switch Next(c.phase, c.remaining, c.shortRestsLeft) {
	case ToShortRest:
		c.shortRestsLeft--
		c.completedWorkSessions++
		c.enterRest(false, false)
	case ToLongRest:
		c.shortRestsLeft = c.cfg.shortRestsPerCycle()
		c.completedLongCycles++
		c.completedWorkSessions++
		c.enterRest(true, false)
	case ToWork:
		c.enterWork(false)
	}
}

func (c *Controller) enterWork(manual bool) {
	c.phase = Working
	c.remaining = max(0, c.cfg.WorkSeconds)
	c.counting = true
	c.emit(WorkStarted, manual)
}

func (c *Controller) enterRest(long, manual bool) {
	if long {
		c.phase = LongResting
		c.remaining = max(0, c.cfg.LongRestSeconds)
	} else {
		c.phase = ShortResting
		c.remaining = max(0, c.cfg.ShortRestSeconds)
	}
	c.counting = true
	c.emit(WorkEnded, manual)
}

func (c *Controller) emit(kind EventKind, manual bool) {
	if c.notifier == nil {
		return
	}
	c.notifier.Notify(Event{
		Kind:   kind,
		Phase:  c.phase,
		Manual: manual,
		At:     c.now(),
		State:  c.Snapshot(),
	})
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Config:                c.cfg,
		Phase:                 c.phase,
		RemainingSeconds:      c.remaining,
		Counting:              c.counting,
		ShortRestsLeft:        c.shortRestsLeft,
		CompletedWorkSessions: c.completedWorkSessions,
		CompletedLongCycles:   c.completedLongCycles,
		TotalWorkedSeconds:    c.totalWorkedSeconds,
	}
}

func (c *Controller) Phase() Phase               { return c.phase }
func (c *Controller) RemainingSeconds() int      { return c.remaining }
func (c *Controller) IsCounting() bool           { return c.counting }
func (c *Controller) ShortRestsLeft() int        { return c.shortRestsLeft }
func (c *Controller) CompletedWorkSessions() int { return c.completedWorkSessions }
func (c *Controller) CompletedLongCycles() int   { return c.completedLongCycles }
func (c *Controller) TotalWorkedSeconds() int    { return c.totalWorkedSeconds }
func (c *Controller) Config() Config             { return c.cfg }
