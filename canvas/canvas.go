// Package canvas wraps an ebiten image with the small set of drawing
// primitives the framework exposes: clear, filled rectangles, tinted sprite
// blits and debug text.
package canvas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Surface is a fixed-size draw target. The loop driver owns one offscreen
// surface at the configured canvas resolution and scales it to the window.
type Surface struct {
	img *ebiten.Image
}

// New allocates a blank surface.
func New(w, h int) *Surface {
	return &Surface{img: ebiten.NewImage(w, h)}
}

// FromImage wraps an existing image as a surface.
func FromImage(img *ebiten.Image) *Surface {
	return &Surface{img: img}
}

// Image exposes the underlying draw target for direct ebiten calls.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the whole surface with a color.
func (s *Surface) Clear(clr color.Color) {
	s.img.Fill(clr)
}

// FillRect draws an axis-aligned filled rectangle.
func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// DrawSprite blits a sprite at (x, y). A nil tint draws the sprite unchanged;
// otherwise every pixel is scaled by the tint color.
func (s *Surface) DrawSprite(sprite *ebiten.Image, x, y float64, tint color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	if tint != nil {
		op.ColorScale.ScaleWithColor(tint)
	}
	s.img.DrawImage(sprite, op)
}

// Text draws a one-line debug string with the built-in 7x13 face. Baseline
// sits at y; small HUD text only, real text goes through a font sheet.
func (s *Surface) Text(str string, x, y int, clr color.Color) {
	text.Draw(s.img, str, basicfont.Face7x13, x, y, clr)
}

// SubSprite slices a region out of a sprite sheet. The returned image shares
// pixels with the sheet.
func SubSprite(sheet *ebiten.Image, x, y, w, h int) *ebiten.Image {
	return sheet.SubImage(image.Rect(x, y, x+w, y+h)).(*ebiten.Image)
}

// Solid builds a w-by-h sprite filled with a single color, the placeholder
// used when no art is loaded.
func Solid(w, h int, clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(clr)
	return img
}

// screen is the surface bound by the running loop driver; package-level so
// update callbacks can draw without threading the surface through user state.
var screen *Surface

// Bind installs the surface returned by Screen. The loop driver calls this
// once at startup.
func Bind(s *Surface) {
	screen = s
}

// Screen returns the currently bound draw surface, or nil outside a running
// game.
func Screen() *Surface {
	return screen
}
