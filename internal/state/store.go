package state

import (
	"sync"
	"time"

	"github.com/five82/pomodoro/internal/pomodoro"
)

// historyLimit bounds the number of events kept for display.
const historyLimit = 32

// Snapshot represents the latest timer state available to the UI.
type Snapshot struct {
	pomodoro.Snapshot
	History     []pomodoro.Event // oldest first
	LastUpdated time.Time
}

// LastEvent returns the most recent event, if any.
func (s Snapshot) LastEvent() (pomodoro.Event, bool) {
	if len(s.History) == 0 {
		return pomodoro.Event{}, false
	}
	return s.History[len(s.History)-1], true
}

// Store serializes every call into a single Controller. The tick source and
// the UI may call it from different goroutines.
type Store struct {
	mu          sync.Mutex
	ctrl        *pomodoro.Controller
	history     []pomodoro.Event
	lastUpdated time.Time
	wake        chan struct{}
}

// NewStore builds the controller and wires notifier behind the store's own
// event history. Notifiers run with the store locked.
func NewStore(cfg pomodoro.Config, notifier pomodoro.Notifier, opts ...pomodoro.Option) *Store {
	s := &Store{
		wake:        make(chan struct{}, 1),
		lastUpdated: time.Now(),
	}
	s.ctrl = pomodoro.New(cfg, pomodoro.NotifierFunc(func(e pomodoro.Event) {
		s.recordLocked(e)
		if notifier != nil {
			notifier.Notify(e)
		}
	}), opts...)
	return s
}

// StartWork enters Working.
func (s *Store) StartWork() {
	s.mutate(func(c *pomodoro.Controller) { c.StartWork() })
	s.signal()
}

// StartRest enters a short or long rest.
func (s *Store) StartRest(long bool) {
	s.mutate(func(c *pomodoro.Controller) { c.StartRest(long) })
	s.signal()
}

// TogglePause pauses or resumes counting.
func (s *Store) TogglePause() {
	s.mutate(func(c *pomodoro.Controller) { c.TogglePause() })
	s.signal()
}

// Tick consumes one second.
func (s *Store) Tick() {
	s.mutate(func(c *pomodoro.Controller) { c.Tick() })
}

// Counting reports whether the tick source should be delivering ticks.
func (s *Store) Counting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.IsCounting()
}

// Wake is signalled after every user action. Signals coalesce.
func (s *Store) Wake() <-chan struct{} {
	return s.wake
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Snapshot:    s.ctrl.Snapshot(),
		History:     cloneHistory(s.history),
		LastUpdated: s.lastUpdated,
	}
}

func (s *Store) mutate(fn func(*pomodoro.Controller)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ctrl)
	s.lastUpdated = time.Now()
}

func (s *Store) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// recordLocked must be called with s.mu held.
func (s *Store) recordLocked(e pomodoro.Event) {
	s.history = append(s.history, e)
	if over := len(s.history) - historyLimit; over > 0 {
		s.history = append(s.history[:0], s.history[over:]...)
	}
}

func cloneHistory(events []pomodoro.Event) []pomodoro.Event {
	if len(events) == 0 {
		return nil
	}
	dup := make([]pomodoro.Event, len(events))
	copy(dup, events)
	return dup
}
