package game

// Config describes the window and loop for a Run call.
type Config struct {
	Title string

	// Canvas is the fixed logical resolution games draw at.
	CanvasWidth  int
	CanvasHeight int

	// Window defaults to the canvas size when zero; the canvas is scaled to
	// fill it.
	WindowWidth  int
	WindowHeight int

	// TargetFPS is the update tick rate, 60 when zero.
	TargetFPS float64

	Resizable bool
}

func (c Config) withDefaults() Config {
	if c.CanvasWidth == 0 {
		c.CanvasWidth = 256
	}
	if c.CanvasHeight == 0 {
		c.CanvasHeight = 240
	}
	if c.WindowWidth == 0 {
		c.WindowWidth = c.CanvasWidth
	}
	if c.WindowHeight == 0 {
		c.WindowHeight = c.CanvasHeight
	}
	if c.TargetFPS == 0 {
		c.TargetFPS = 60
	}
	return c
}
