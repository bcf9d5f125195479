// Package notify turns pomodoro events into something the user can hear or read.
package notify

import (
	"io"
	"os/exec"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/five82/pomodoro/internal/pomodoro"
)

// Multi fans an event out to every notifier in order, skipping nils.
type Multi []pomodoro.Notifier

func (m Multi) Notify(e pomodoro.Event) {
	for _, n := range m {
		if n != nil {
			n.Notify(e)
		}
	}
}

// Bell rings the terminal bell. It can be muted at runtime.
type Bell struct {
	mu      sync.Mutex
	w       io.Writer
	enabled atomic.Bool
}

// NewBell returns a Bell writing to w.
func NewBell(w io.Writer, enabled bool) *Bell {
	b := &Bell{w: w}
	b.enabled.Store(enabled)
	return b
}

func (b *Bell) Notify(e pomodoro.Event) {
	if b == nil || !b.enabled.Load() || b.w == nil {
		return
	}
	rings := 1
	if e.Kind == pomodoro.WorkEnded {
		rings = 2
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = io.WriteString(b.w, strings.Repeat("\a", rings))
}

// Enabled reports whether the bell rings.
func (b *Bell) Enabled() bool {
	return b != nil && b.enabled.Load()
}

// SetEnabled mutes or unmutes the bell.
func (b *Bell) SetEnabled(on bool) {
	if b != nil {
		b.enabled.Store(on)
	}
}

// Command runs a shell command per event kind, for example a sound player.
// Commands are started asynchronously so the caller never blocks on them.
type Command struct {
	WorkStarted string
	WorkEnded   string
	Shell       string // defaults to /bin/sh
	Logger      *log.Logger

	wg sync.WaitGroup
}

func (c *Command) Notify(e pomodoro.Event) {
	line := c.WorkStarted
	if e.Kind == pomodoro.WorkEnded {
		line = c.WorkEnded
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	shell := c.Shell
	if shell == "" {
		shell = "/bin/sh"
	}
	cmd := exec.Command(shell, "-c", line)
	if err := cmd.Start(); err != nil {
		c.logger().Error("failed to start notification command", "event", e.Kind, "cmd", line, "err", err)
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := cmd.Wait(); err != nil {
			c.logger().Warn("notification command failed", "event", e.Kind, "cmd", line, "err", err)
		}
	}()
}

// Wait blocks until every started command has exited.
func (c *Command) Wait() {
	c.wg.Wait()
}

func (c *Command) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

// Log records every event as a structured log line.
type Log struct {
	Logger *log.Logger
}

func (l Log) Notify(e pomodoro.Event) {
	logger := l.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Info(e.Kind.String(),
		"phase", e.Phase,
		"manual", e.Manual,
		"remaining", pomodoro.FormatClock(e.State.RemainingSeconds),
		"pomodoros", e.State.CompletedWorkSessions,
		"cycles", e.State.CompletedLongCycles,
		"worked", pomodoro.FormatClock(e.State.TotalWorkedSeconds),
	)
}
