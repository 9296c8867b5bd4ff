// Package game ties the scheduler, the input tracker and the drawing surface
// into the run loop user code programs against.
package game

// Event is a placeholder for a future discrete event system. The queue
// passed to update callbacks is always empty today.
type Event struct {
	Kind string
	Data any
}

// driver threads the user state through the callback lifecycle: init once,
// update per tick, destroy exactly once when an update requests termination.
// The state value is owned here and only ever handed out by pointer.
type driver[T any] struct {
	state   T
	update  func(*T, []Event) bool
	destroy func(*T)
	stop    func()
	done    bool
}

func newDriver[T any](init func() T, update func(*T, []Event) bool, destroy func(*T)) *driver[T] {
	return &driver[T]{
		state:   init(),
		update:  update,
		destroy: destroy,
	}
}

// tick runs one update. A true return from the update callback tears the
// loop down: destroy fires once, then the scheduler handle is stopped. The
// driver stays done forever after; there is no restart from this path.
func (d *driver[T]) tick() {
	if d.done {
		return
	}
	if d.update(&d.state, nil) {
		d.done = true
		d.destroy(&d.state)
		if d.stop != nil {
			d.stop()
		}
	}
}
