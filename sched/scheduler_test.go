package sched

import (
	"math/rand"
	"testing"
)

type fakeClock struct {
	t float64
}

func (c *fakeClock) Now() float64 { return c.t }

type recordSink struct {
	errs []error
}

func (r *recordSink) FrameError(err error) { r.errs = append(r.errs, err) }

func TestNoTickBeforeFullInterval(t *testing.T) {
	clk := &fakeClock{}
	s := New(clk, &recordSink{})

	ticks := 0
	s.Start(func() { ticks++ }, 100)

	// Notifications every 10ms, never accumulating a full interval.
	for _, at := range []float64{10, 30, 50, 70, 90} {
		clk.t = at
		if s.Notify() {
			t.Fatalf("tick fired at t=%v before a full interval elapsed", at)
		}
	}
	if ticks != 0 {
		t.Errorf("expected 0 ticks, got %d", ticks)
	}
}

func TestOneTickPerNotification(t *testing.T) {
	clk := &fakeClock{}
	s := New(clk, &recordSink{})

	ticks := 0
	s.Start(func() { ticks++ }, 10)

	// Each notification arrives far beyond the interval; a catch-up burst
	// would show up as more than one callback per Notify.
	for i := 0; i < 5; i++ {
		clk.t += 100
		before := ticks
		if !s.Notify() {
			t.Fatalf("notification %d did not tick", i)
		}
		if ticks != before+1 {
			t.Fatalf("notification %d fired %d callbacks", i, ticks-before)
		}
	}
}

func TestDriftCorrectionTrace(t *testing.T) {
	clk := &fakeClock{}
	s := New(clk, &recordSink{})

	ticks := 0
	s.Start(func() { ticks++ }, 10)

	fired := []bool{}
	for _, at := range []float64{0, 9, 21, 31} {
		clk.t = at
		fired = append(fired, s.Notify())
	}
	want := []bool{false, false, true, true}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("notification %d: fired=%v, want %v", i, fired[i], want[i])
		}
	}
	if ticks != 2 {
		t.Errorf("expected exactly 2 ticks, got %d", ticks)
	}

	// After the t=31 tick the baseline sits at 30, so t=40 is exactly one
	// interval later and must fire.
	clk.t = 40
	if !s.Notify() {
		t.Error("t=40 should tick from the drift-corrected baseline of 30")
	}
}

func TestAverageRateConvergesUnderJitter(t *testing.T) {
	clk := &fakeClock{}
	s := New(clk, &recordSink{})

	const target = 1000.0 / 60.0
	ticks := 0
	s.Start(func() { ticks++ }, target)

	// Notifications arrive at a jittery ~144Hz host refresh while the target
	// is 60Hz. The residual carry must keep the cumulative tick count locked
	// to elapsed/target instead of drifting a little later every tick.
	rng := rand.New(rand.NewSource(1))
	const n = 10000
	for i := 0; i < n; i++ {
		clk.t += 7 + (rng.Float64()*4 - 2)
		s.Notify()
	}

	want := clk.t / target
	got := float64(ticks)
	if diff := got - want; diff < -2 || diff > 2 {
		t.Errorf("tick count %v drifted from expected %v", got, want)
	}
}

func TestPanicIsolation(t *testing.T) {
	clk := &fakeClock{}
	sink := &recordSink{}
	s := New(clk, sink)

	mode := "boom"
	ticks := 0
	s.Start(func() {
		ticks++
		if mode != "" {
			panic(mode)
		}
	}, 10)

	for i := 0; i < 5; i++ {
		clk.t += 10
		if !s.Notify() {
			t.Fatalf("loop stopped ticking after panic %d", i)
		}
	}
	if len(sink.errs) != 1 {
		t.Fatalf("identical failure streak reported %d times, want 1", len(sink.errs))
	}

	// A clean tick resets the streak; the next failure is reported again.
	mode = ""
	clk.t += 10
	s.Notify()
	mode = "boom"
	clk.t += 10
	s.Notify()
	if len(sink.errs) != 2 {
		t.Errorf("failure after clean tick reported %d times, want 2", len(sink.errs))
	}
	if ticks != 7 {
		t.Errorf("expected 7 callback invocations, got %d", ticks)
	}
}

func TestStopHaltsTicks(t *testing.T) {
	clk := &fakeClock{}
	s := New(clk, &recordSink{})

	ticks := 0
	h := s.Start(func() { ticks++ }, 10)

	clk.t = 15
	s.Notify()
	h.Stop()
	h.Stop() // idempotent

	for i := 0; i < 3; i++ {
		clk.t += 20
		if s.Notify() {
			t.Fatal("tick fired after Stop")
		}
	}
	if ticks != 1 {
		t.Errorf("expected 1 tick before stop, got %d", ticks)
	}
}

func TestRestartReplacesPreviousLoop(t *testing.T) {
	clk := &fakeClock{}
	s := New(clk, &recordSink{})

	first, second := 0, 0
	h1 := s.Start(func() { first++ }, 10)
	h2 := s.Start(func() { second++ }, 10)

	// The stale handle must not cancel the replacement loop.
	h1.Stop()

	clk.t = 15
	if !s.Notify() {
		t.Fatal("replacement loop did not tick")
	}
	if first != 0 || second != 1 {
		t.Errorf("ticks went to the wrong loop: first=%d second=%d", first, second)
	}

	h2.Stop()
	clk.t = 30
	if s.Notify() {
		t.Error("tick fired after the live handle stopped the loop")
	}
}

func TestStopFromInsideCallback(t *testing.T) {
	clk := &fakeClock{}
	s := New(clk, &recordSink{})

	ticks := 0
	var h *Handle
	h = s.Start(func() {
		ticks++
		h.Stop()
	}, 10)

	clk.t = 10
	s.Notify()
	clk.t = 20
	s.Notify()
	if ticks != 1 {
		t.Errorf("expected the callback to stop its own loop after 1 tick, got %d", ticks)
	}
}
