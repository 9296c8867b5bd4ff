// Package sched drives a fixed-rate update callback from a variable-rate
// stream of host display-refresh notifications.
package sched

import (
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/log"
)

// ErrorSink receives failures recovered from the tick callback. The scheduler
// reports a failure once per streak: identical consecutive failures are
// suppressed until a tick completes cleanly.
type ErrorSink interface {
	FrameError(err error)
}

// SinkFunc adapts a plain function to an ErrorSink.
type SinkFunc func(err error)

func (f SinkFunc) FrameError(err error) { f(err) }

// LogSink returns the default sink, which reports through a structured logger
// on stderr.
func LogSink() ErrorSink {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sched",
	})
	return SinkFunc(func(err error) {
		logger.Error("tick callback failed", "err", err)
	})
}

// Scheduler meters a stream of host frame notifications down to a fixed tick
// rate. It fires at most one tick per notification: a notification arriving
// before a full interval has elapsed is skipped outright, and an arbitrarily
// late notification never triggers a catch-up burst.
//
// After each tick the overshoot remainder is carried into the next baseline
// (lastTick = now - delta mod interval), so the long-run average tick rate
// stays locked to the target even though individual ticks jitter with the
// host refresh timing.
//
// A Scheduler is single-threaded: Start, Stop and Notify must all be called
// from the same goroutine, which is the natural shape when Notify is driven
// from a game loop's per-frame update.
type Scheduler struct {
	clock Clock
	sink  ErrorSink

	fn       func()
	interval float64
	lastTick float64
	running  bool
	gen      uint64

	lastFail string
}

// New builds a scheduler. A nil clock gets the system monotonic clock and a
// nil sink gets LogSink.
func New(clock Clock, sink ErrorSink) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	if sink == nil {
		sink = LogSink()
	}
	return &Scheduler{clock: clock, sink: sink}
}

// Handle stops the tick stream it was returned for. A stale handle, left over
// from before a later Start call, is inert.
type Handle struct {
	s   *Scheduler
	gen uint64
}

// Stop cancels the loop if this handle still owns it. Safe to call more than
// once.
func (h *Handle) Stop() {
	if h.s.gen == h.gen {
		h.s.Stop()
	}
}

// Start installs fn as the tick callback at the given interval in
// milliseconds and returns a handle that stops it. Starting while already
// running first cancels the previous loop, so the latest call always wins and
// two concurrent tick streams can never exist.
func (s *Scheduler) Start(fn func(), intervalMs float64) *Handle {
	s.Stop()
	s.gen++
	s.fn = fn
	s.interval = intervalMs
	s.lastTick = s.clock.Now()
	s.lastFail = ""
	s.running = true
	return &Handle{s: s, gen: s.gen}
}

// Stop cancels the pending tick stream. It does not interrupt a callback
// already in flight. Idempotent.
func (s *Scheduler) Stop() {
	s.running = false
	s.fn = nil
}

// Running reports whether a tick stream is installed.
func (s *Scheduler) Running() bool {
	return s.running
}

// Notify reports one host display-refresh notification and returns whether a
// tick fired. Less than a full interval since the last tick means the
// notification is skipped entirely, with no state change.
func (s *Scheduler) Notify() bool {
	if !s.running {
		return false
	}
	now := s.clock.Now()
	delta := now - s.lastTick
	if delta < s.interval {
		return false
	}
	s.invoke()
	s.lastTick = now - math.Mod(delta, s.interval)
	return true
}

// invoke runs the callback with panic isolation. A crashed frame is reported
// and dropped; the loop must outlive it.
func (s *Scheduler) invoke() {
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprint(r)
			if msg != s.lastFail {
				s.lastFail = msg
				s.sink.FrameError(fmt.Errorf("tick panicked: %s", msg))
			}
			return
		}
		s.lastFail = ""
	}()
	s.fn()
}
