package pattern

import (
	"strings"

	"asciistudio/internal/ascii"
)

// Spacing reflows a grid with letter spacing, line spacing and a horizontal
// font scale. The zero value (and values below 1) leave the grid unchanged.
type Spacing struct {
	Letter    int
	Line      int
	FontScale int
}

// Apply returns a reflowed copy of the grid.
func (s Spacing) Apply(grid ascii.Grid) ascii.Grid {
	out := make(ascii.Grid, 0, len(grid))
	for _, line := range grid {
		runes := []rune(line)

		if s.Letter > 1 {
			var b strings.Builder
			gap := strings.Repeat(" ", s.Letter-1)
			for i, r := range runes {
				b.WriteRune(r)
				if i < len(runes)-1 {
					b.WriteString(gap)
				}
			}
			runes = []rune(b.String())
		}

		if s.FontScale > 1 {
			var b strings.Builder
			for _, r := range runes {
				for i := 0; i < s.FontScale; i++ {
					b.WriteRune(r)
				}
			}
			runes = []rune(b.String())
		}

		out = append(out, string(runes))
	}

	if s.Line > 1 {
		spaced := make(ascii.Grid, 0, len(out)*s.Line)
		for i, line := range out {
			spaced = append(spaced, line)
			if i < len(out)-1 {
				for j := 0; j < s.Line-1; j++ {
					spaced = append(spaced, "")
				}
			}
		}
		return spaced
	}
	return out
}
