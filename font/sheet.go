// Package font slices a fixed-cell glyph atlas into drawable characters.
// A sheet covers printable ASCII (space through tilde) laid out row-major.
package font

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	firstGlyph = ' '
	lastGlyph  = '~'
)

// Sheet is a glyph atlas with uniform cells.
type Sheet struct {
	img   *ebiten.Image
	cellW int
	cellH int
	cols  int

	glyphs map[rune]*ebiten.Image
}

// NewSheet wraps an atlas image whose glyphs occupy cellW-by-cellH cells.
// The column count is derived from the image width.
func NewSheet(img *ebiten.Image, cellW, cellH int) *Sheet {
	return &Sheet{
		img:    img,
		cellW:  cellW,
		cellH:  cellH,
		cols:   img.Bounds().Dx() / cellW,
		glyphs: make(map[rune]*ebiten.Image),
	}
}

// glyphCell returns the atlas cell index for r, or -1 when the sheet has no
// glyph for it.
func glyphCell(r rune) int {
	if r < firstGlyph || r > lastGlyph {
		return -1
	}
	return int(r - firstGlyph)
}

// Glyph returns the sub-image for r, or nil for characters outside the sheet.
func (s *Sheet) Glyph(r rune) *ebiten.Image {
	if g, ok := s.glyphs[r]; ok {
		return g
	}
	cell := glyphCell(r)
	if cell < 0 {
		return nil
	}
	x := (cell % s.cols) * s.cellW
	y := (cell / s.cols) * s.cellH
	g := s.img.SubImage(image.Rect(x, y, x+s.cellW, y+s.cellH)).(*ebiten.Image)
	s.glyphs[r] = g
	return g
}

// Draw renders str onto dst with its top-left corner at (x, y). Characters
// without a glyph advance the pen but draw nothing. A nil tint draws the
// glyphs as-is.
func (s *Sheet) Draw(dst *ebiten.Image, str string, x, y int, tint color.Color) {
	penX := x
	for _, r := range str {
		if r == '\n' {
			penX = x
			y += s.cellH
			continue
		}
		if g := s.Glyph(r); g != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(penX), float64(y))
			if tint != nil {
				op.ColorScale.ScaleWithColor(tint)
			}
			dst.DrawImage(g, op)
		}
		penX += s.cellW
	}
}

// Measure returns the pixel size str would occupy when drawn.
func (s *Sheet) Measure(str string) (w, h int) {
	line, maxLine, lines := 0, 0, 1
	for _, r := range str {
		if r == '\n' {
			lines++
			line = 0
			continue
		}
		line++
		if line > maxLine {
			maxLine = line
		}
	}
	return maxLine * s.cellW, lines * s.cellH
}
