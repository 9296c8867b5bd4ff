package game

import "testing"

type counters struct {
	inits     int
	updates   int
	destroys  int
	stateSeen []int
}

func TestDriverLifecycle(t *testing.T) {
	c := &counters{}

	stopCalls := 0
	d := newDriver(
		func() int {
			c.inits++
			return 7
		},
		func(state *int, events []Event) bool {
			c.updates++
			c.stateSeen = append(c.stateSeen, *state)
			*state++
			if len(events) != 0 {
				t.Errorf("event queue should be empty, got %d events", len(events))
			}
			return c.updates == 3
		},
		func(state *int) {
			c.destroys++
			if *state != 10 {
				t.Errorf("destroy saw state %d, want 10", *state)
			}
		},
	)
	d.stop = func() { stopCalls++ }

	if c.inits != 1 {
		t.Fatalf("init ran %d times, want 1", c.inits)
	}

	for i := 0; i < 6; i++ {
		d.tick()
	}

	if c.updates != 3 {
		t.Errorf("update ran %d times, want 3 (no ticks after termination)", c.updates)
	}
	if c.destroys != 1 {
		t.Errorf("destroy ran %d times, want exactly 1", c.destroys)
	}
	if stopCalls != 1 {
		t.Errorf("stop handle called %d times, want 1", stopCalls)
	}

	// The same state value is threaded by reference through every tick.
	want := []int{7, 8, 9}
	for i, v := range want {
		if c.stateSeen[i] != v {
			t.Errorf("tick %d saw state %d, want %d", i, c.stateSeen[i], v)
		}
	}
}

func TestDriverStaysDone(t *testing.T) {
	destroys := 0
	d := newDriver(
		func() struct{} { return struct{}{} },
		func(*struct{}, []Event) bool { return true },
		func(*struct{}) { destroys++ },
	)

	d.tick()
	d.tick()
	if destroys != 1 {
		t.Errorf("destroy ran %d times after repeat ticks, want 1", destroys)
	}
	if !d.done {
		t.Error("driver should stay done")
	}
}

func TestConfigDefaults(t *testing.T) {
	c := Config{}.withDefaults()
	if c.CanvasWidth != 256 || c.CanvasHeight != 240 {
		t.Errorf("default canvas = %dx%d, want 256x240", c.CanvasWidth, c.CanvasHeight)
	}
	if c.WindowWidth != 256 || c.WindowHeight != 240 {
		t.Errorf("window should default to canvas size, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.TargetFPS != 60 {
		t.Errorf("default fps = %v, want 60", c.TargetFPS)
	}

	c = Config{CanvasWidth: 128, CanvasHeight: 128, WindowWidth: 512}.withDefaults()
	if c.WindowWidth != 512 || c.WindowHeight != 128 {
		t.Errorf("explicit window width must survive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
}
