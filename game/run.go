package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"famikit/canvas"
	"famikit/input"
	"famikit/sched"
)

// activeTracker backs the package-level input queries while a loop runs.
var activeTracker *input.Tracker

// IsDown reports whether the logical button is currently held.
func IsDown(b input.Button) bool {
	return activeTracker != nil && activeTracker.IsDown(b)
}

// IsJustPressed reports whether the logical button was pressed within the
// last ~16.666ms. See input.Tracker for the window semantics.
func IsJustPressed(b input.Button) bool {
	return activeTracker != nil && activeTracker.IsJustPressed(b)
}

// loopGame bridges the framework onto the ebiten run loop. Ebiten's Update
// calls arrive at display refresh rate (TPS synced to FPS) and act as the
// host frame notifications feeding the scheduler; Draw just presents the
// offscreen canvas.
type loopGame[T any] struct {
	cfg     Config
	sch     *sched.Scheduler
	tracker *input.Tracker
	drv     *driver[T]
	surface *canvas.Surface
}

func (g *loopGame[T]) Update() error {
	g.tracker.PollKeyboard()
	g.sch.Notify()
	if g.drv.done {
		return ebiten.Termination
	}
	return nil
}

func (g *loopGame[T]) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.Image(), nil)
}

func (g *loopGame[T]) Layout(_, _ int) (int, int) {
	return g.cfg.CanvasWidth, g.cfg.CanvasHeight
}

// Run opens the window and drives the loop until the update callback returns
// true or the window closes. init builds the game state once; update runs at
// cfg.TargetFPS with the (currently always empty) event queue; destroy runs
// exactly once when update requests termination.
//
// Update callbacks draw onto canvas.Screen(), which Run binds to an
// offscreen surface at the configured canvas resolution.
func Run[T any](cfg Config, init func() T, update func(*T, []Event) bool, destroy func(*T)) error {
	cfg = cfg.withDefaults()

	clock := sched.SystemClock()
	tracker := input.NewTracker(clock.Now)
	activeTracker = tracker
	defer func() { activeTracker = nil }()

	surface := canvas.New(cfg.CanvasWidth, cfg.CanvasHeight)
	canvas.Bind(surface)

	sch := sched.New(clock, nil)
	drv := newDriver(init, update, destroy)
	h := sch.Start(drv.tick, 1000.0/cfg.TargetFPS)
	drv.stop = h.Stop

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(ebiten.SyncWithFPS)

	return ebiten.RunGame(&loopGame[T]{
		cfg:     cfg,
		sch:     sch,
		tracker: tracker,
		drv:     drv,
		surface: surface,
	})
}
