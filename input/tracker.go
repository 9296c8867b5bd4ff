// Package input resolves raw host key events to a fixed set of logical pad
// buttons and answers "held" and "just pressed" queries against them.
package input

import "github.com/hajimehoshi/ebiten/v2"

// oneFrameMs approximates one tick at 60Hz. A press younger than this window
// counts as "just pressed".
const oneFrameMs = 1000.0 / 60.0

// Tracker records, per logical button, the monotonic millisecond timestamp of
// its release-to-press transition, or 0 while released. Key-repeat events for
// a held button are no-ops so the press timestamp never moves while held.
//
// IsJustPressed is a wall-clock window heuristic, not a per-tick edge flag:
// an update loop running slower than 60Hz may observe the same press as
// "just pressed" on more than one tick, and a loop stalled past the window
// can miss the edge entirely while still observing IsDown. Consumers that
// need exact once-per-press semantics should latch the edge themselves.
type Tracker struct {
	now       func() float64
	pressedAt [buttonCount]float64

	prevHeld [buttonCount]bool
}

// NewTracker builds a tracker reading timestamps from now, a monotonic
// millisecond clock.
func NewTracker(now func() float64) *Tracker {
	return &Tracker{now: now}
}

// KeyDown records a raw key press. Unmapped keys are silently ignored.
// A press for an already-down button leaves its timestamp untouched.
func (t *Tracker) KeyDown(key ebiten.Key) {
	b, ok := bindings[key]
	if !ok {
		return
	}
	if t.pressedAt[b] != 0 {
		return
	}
	t.pressedAt[b] = t.now()
}

// KeyUp records a raw key release, unconditionally clearing the button.
func (t *Tracker) KeyUp(key ebiten.Key) {
	b, ok := bindings[key]
	if !ok {
		return
	}
	t.pressedAt[b] = 0
}

// IsDown reports whether the button is currently held.
func (t *Tracker) IsDown(b Button) bool {
	return t.pressedAt[b] != 0
}

// IsJustPressed reports whether the button was pressed within the last
// ~16.666ms.
func (t *Tracker) IsJustPressed(b Button) bool {
	ts := t.pressedAt[b]
	return ts != 0 && t.now()-ts < oneFrameMs
}

// PollKeyboard samples the live keyboard state for every bound key and
// synthesizes KeyDown/KeyUp edges from changes since the previous poll. Call
// it once per host frame, before the scheduler is notified.
func (t *Tracker) PollKeyboard() {
	for key, b := range bindings {
		held := ebiten.IsKeyPressed(key)
		if held && !t.prevHeld[b] {
			t.KeyDown(key)
		}
		if !held && t.prevHeld[b] {
			t.KeyUp(key)
		}
		t.prevHeld[b] = held
	}
}
