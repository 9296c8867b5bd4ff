package input

import "github.com/hajimehoshi/ebiten/v2"

// Button is one of the fixed logical pad buttons. Raw host key codes are
// resolved to Buttons through the static binding table; games never see key
// codes.
type Button int

const (
	A Button = iota
	B
	Up
	Down
	Left
	Right
	Start
	Select

	buttonCount
)

func (b Button) String() string {
	switch b {
	case A:
		return "A"
	case B:
		return "B"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Start:
		return "Start"
	case Select:
		return "Select"
	default:
		return "Unknown"
	}
}

// bindings maps raw key codes to logical buttons. Each button is bound to
// exactly one key; unmapped keys are ignored by the tracker.
var bindings = map[ebiten.Key]Button{
	ebiten.KeyX:          A,
	ebiten.KeyZ:          B,
	ebiten.KeyArrowUp:    Up,
	ebiten.KeyArrowDown:  Down,
	ebiten.KeyArrowLeft:  Left,
	ebiten.KeyArrowRight: Right,
	ebiten.KeyEnter:      Start,
	ebiten.KeyShiftRight: Select,
}
