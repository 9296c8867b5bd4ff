package sched

import "time"

// Clock provides monotonic millisecond timestamps for the scheduler and
// anything else that paces itself against it.
type Clock interface {
	Now() float64
}

type systemClock struct {
	start time.Time
}

func (c systemClock) Now() float64 {
	return float64(time.Since(c.start).Microseconds()) / 1000.0
}

// SystemClock returns a monotonic clock starting at zero.
func SystemClock() Clock {
	return systemClock{start: time.Now()}
}
