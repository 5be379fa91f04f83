// Package pattern procedurally generates ASCII art from closed-form
// geometric formulas. Every generator is a pure function of its parameters:
// identical inputs yield byte-identical grids.
package pattern

import (
	"math"
	"strings"

	"asciistudio/internal/ascii"
)

// Banner renders text in the block-letter font using the fill character,
// centered in the given width. The result always has FontHeight rows.
func Banner(text string, width int, fill rune) ascii.Grid {
	if width < 1 {
		width = 1
	}

	rows := make([]strings.Builder, FontHeight)
	for _, r := range strings.ToUpper(text) {
		glyph, ok := blockFont[r]
		if !ok {
			glyph = blockFont[' ']
		}
		for i := 0; i < FontHeight; i++ {
			if rows[i].Len() > 0 {
				rows[i].WriteByte(' ')
			}
			rows[i].WriteString(glyph[i])
		}
	}

	grid := make(ascii.Grid, FontHeight)
	for i := range rows {
		line := strings.ReplaceAll(rows[i].String(), "X", string(fill))
		grid[i] = fitRow(line, width)
	}
	return grid
}

// fitRow centers a row within width, padding with spaces or truncating.
func fitRow(line string, width int) string {
	runes := []rune(line)
	if len(runes) >= width {
		return string(runes[:width])
	}
	left := (width - len(runes)) / 2
	right := width - len(runes) - left
	return strings.Repeat(" ", left) + string(runes) + strings.Repeat(" ", right)
}

// Wave draws one period-advancing sine band across the grid.
func Wave(width, height int, phase float64) ascii.Grid {
	grid := make(ascii.Grid, 0, height)
	var row strings.Builder
	for y := 0; y < height; y++ {
		row.Reset()
		for x := 0; x < width; x++ {
			waveY := float64(height)/2 +
				float64(height)/4*math.Sin(float64(x)/float64(width)*4*math.Pi+phase)
			if math.Abs(float64(y)-waveY) < 0.5 {
				row.WriteByte('~')
			} else {
				row.WriteByte(' ')
			}
		}
		grid = append(grid, row.String())
	}
	return grid
}

// Circle draws a ring of the given radius. Columns are sampled at half
// resolution so the ring stays round in a terminal cell grid.
func Circle(radius int, fill rune) ascii.Grid {
	grid := make(ascii.Grid, 0, radius*2+1)
	var row strings.Builder
	for y := -radius; y <= radius; y++ {
		row.Reset()
		for x := -radius * 2; x <= radius*2; x++ {
			dist := math.Hypot(float64(x)/2, float64(y))
			if math.Abs(dist-float64(radius)) < 0.5 {
				row.WriteRune(fill)
			} else {
				row.WriteByte(' ')
			}
		}
		grid = append(grid, row.String())
	}
	return grid
}

// Spiral draws an Archimedean spiral. density controls how tightly the arms
// wind; rotation advances the whole figure, which animates it.
func Spiral(size int, density, rotation float64) ascii.Grid {
	grid := make(ascii.Grid, 0, size*2)
	center := float64(size)
	var row strings.Builder
	for y := 0; y < size*2; y++ {
		row.Reset()
		for x := 0; x < size*2; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			dist := math.Hypot(dx, dy)
			angle := math.Atan2(dy, dx) + rotation
			v := math.Mod(angle+dist*density, 2*math.Pi)
			if v < 0 {
				v += 2 * math.Pi
			}
			if v < math.Pi {
				row.WriteByte('*')
			} else {
				row.WriteByte(' ')
			}
		}
		grid = append(grid, row.String())
	}
	return grid
}

// Heart fills the implicit heart curve (x²+y²−1)³ − x²y³ < 0.
func Heart(size int) ascii.Grid {
	grid := make(ascii.Grid, 0, size*2)
	var row strings.Builder
	for y := 0; y < size*2; y++ {
		row.Reset()
		for x := 0; x < size*3; x++ {
			px := (float64(x) - float64(size)*1.5) / float64(size)
			py := (float64(size)*0.8 - float64(y)) / float64(size)
			v := math.Pow(px*px+py*py-1, 3) - px*px*math.Pow(py, 3)
			if v < 0 {
				row.WriteRune('♥')
			} else {
				row.WriteByte(' ')
			}
		}
		grid = append(grid, row.String())
	}
	return grid
}

// Box wraps multi-line text in a border of the fill character.
func Box(text string, padding int, fill rune) ascii.Grid {
	if padding < 0 {
		padding = 0
	}
	lines := strings.Split(text, "\n")
	maxWidth := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxWidth {
			maxWidth = n
		}
	}

	border := strings.Repeat(string(fill), maxWidth+padding*2+2)
	pad := strings.Repeat(" ", padding)

	grid := make(ascii.Grid, 0, len(lines)+2)
	grid = append(grid, border)
	for _, line := range lines {
		fillRight := strings.Repeat(" ", maxWidth-len([]rune(line)))
		grid = append(grid, string(fill)+pad+line+fillRight+pad+string(fill))
	}
	grid = append(grid, border)
	return grid
}

// WaveFrames returns the wave animation: phase advances one full period per
// fps frames.
func WaveFrames(width, height, fps int) ascii.FrameFunc {
	return func(frame int) ascii.Grid {
		phase := float64(frame) / float64(fps) * 2 * math.Pi
		return Wave(width, height, phase)
	}
}

// SpiralFrames returns the spiral animation, rotating a quarter turn per
// second of frames.
func SpiralFrames(size int, density float64, fps int) ascii.FrameFunc {
	return func(frame int) ascii.Grid {
		rotation := float64(frame) / float64(fps) * math.Pi / 2
		return Spiral(size, density, rotation)
	}
}
