package ascii

import (
	"strings"
	"unicode/utf8"
)

// Grid is a finished piece of ASCII art, one string per row.
type Grid []string

func (g Grid) String() string {
	return strings.Join(g, "\n")
}

func (g Grid) Height() int {
	return len(g)
}

// Width returns the rune length of the first row. Rows of a grid produced by
// one conversion all share it.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return utf8.RuneCountInString(g[0])
}

// FirstRune returns the first rune of s, or def when s is empty. Callers use
// it to read a fill character from user input.
func FirstRune(s string, def rune) rune {
	for _, r := range s {
		return r
	}
	return def
}

// FrameFunc produces the grid for a given animation frame. Implementations
// are pure functions of the frame index, so an animation can be restarted or
// resumed from any point.
type FrameFunc func(frame int) Grid

// FromBytes converts a buffer of grayscale pixel rows into a grid, width
// pixels per row.
func FromBytes(buf []byte, width int, ramp Ramp) Grid {
	if width < 1 || len(buf) < width {
		return nil
	}
	grid := make(Grid, 0, len(buf)/width)
	var b strings.Builder
	for i, pix := range buf {
		b.WriteRune(ramp.Glyph(pix))
		if (i+1)%width == 0 {
			grid = append(grid, b.String())
			b.Reset()
		}
	}
	return grid
}
