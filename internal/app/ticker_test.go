package app

import (
	"context"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	counting atomic.Bool
	ticks    atomic.Int64
	wake     chan struct{}
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{wake: make(chan struct{}, 1)}
}

func (f *fakeTarget) Counting() bool        { return f.counting.Load() }
func (f *fakeTarget) Wake() <-chan struct{} { return f.wake }

func (f *fakeTarget) Tick() { f.ticks.Add(1) }

func (f *fakeTarget) set(counting bool) {
	f.counting.Store(counting)
	select {
	case f.wake <- struct{}{}:
	default:
	}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestTicker_NeverTicksWhilePaused(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	target := newFakeTarget()
	done := StartTicker(ctx, target, 2*time.Millisecond, quietLogger())

	time.Sleep(40 * time.Millisecond)
	assert.Zero(t, target.ticks.Load())

	cancel()
	<-done
}

func TestTicker_TicksWhileCountingAndStopsOnPause(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	target := newFakeTarget()
	done := StartTicker(ctx, target, 2*time.Millisecond, quietLogger())

	target.set(true)
	require.Eventually(t, func() bool { return target.ticks.Load() >= 5 }, time.Second, time.Millisecond)

	target.set(false)
	time.Sleep(10 * time.Millisecond)
	paused := target.ticks.Load()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, paused, target.ticks.Load(), "ticks delivered while paused")

	target.set(true)
	require.Eventually(t, func() bool { return target.ticks.Load() > paused+3 }, time.Second, time.Millisecond)

	cancel()
	<-done
}

func TestTicker_WakeRestartsInterval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	target := newFakeTarget()
	target.counting.Store(true)
	done := StartTicker(ctx, target, 100*time.Millisecond, quietLogger())

	// keep waking faster than the interval; no tick can complete
	for i := 0; i < 10; i++ {
		target.set(true)
		time.Sleep(5 * time.Millisecond)
	}
	assert.Zero(t, target.ticks.Load())

	require.Eventually(t, func() bool { return target.ticks.Load() >= 1 }, time.Second, time.Millisecond)
	cancel()
	<-done
}

func TestTicker_ExitsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	target := newFakeTarget()
	target.counting.Store(true)

	done := StartTicker(ctx, target, time.Hour, nil)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ticker did not exit after cancel")
	}
}

func TestTicker_DefaultInterval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	target := newFakeTarget()

	done := StartTicker(ctx, target, 0, quietLogger())
	cancel()
	<-done
	assert.Zero(t, target.ticks.Load())
}

func TestWakePending_ConsumesQueuedSignal(t *testing.T) {
	target := newFakeTarget()
	assert.False(t, wakePending(target))

	target.set(true)
	assert.True(t, wakePending(target), "queued wake must win over a due tick")
	assert.False(t, wakePending(target), "signal must be consumed")
}
