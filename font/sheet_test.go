package font

import "testing"

func TestGlyphCell(t *testing.T) {
	cases := []struct {
		r    rune
		want int
	}{
		{' ', 0},
		{'!', 1},
		{'0', 16},
		{'A', 33},
		{'~', 94},
		{'\n', -1},
		{'\t', -1},
		{rune(127), -1},
		{'é', -1},
	}
	for _, c := range cases {
		if got := glyphCell(c.r); got != c.want {
			t.Errorf("glyphCell(%q) = %d, want %d", c.r, got, c.want)
		}
	}
}

func TestMeasure(t *testing.T) {
	s := &Sheet{cellW: 8, cellH: 12}

	w, h := s.Measure("HELLO")
	if w != 40 || h != 12 {
		t.Errorf("Measure single line = %dx%d, want 40x12", w, h)
	}

	w, h = s.Measure("HI\nSCORE!")
	if w != 48 || h != 24 {
		t.Errorf("Measure multi line = %dx%d, want 48x24", w, h)
	}

	w, h = s.Measure("")
	if w != 0 || h != 12 {
		t.Errorf("Measure empty = %dx%d, want 0x12", w, h)
	}
}
