// Package render3d rasterizes rotating 3D primitives onto a character grid
// with per-cell z-buffering and Lambert shading.
package render3d

import (
	"math"
	"strings"

	"asciistudio/internal/ascii"
)

// brightnessRamp orders glyphs from dim to bright for shaded surfaces.
const brightnessRamp = ".,-~:;=!*#$@"

const cameraDistance = 5.0

// Canvas is a character grid with a depth buffer. Cells keep the nearest
// sample: a later, farther point never overwrites a nearer one.
type Canvas struct {
	width, height int
	centerX       int
	cells         [][]rune
	zbuf          [][]float64
}

func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:   width,
		height:  height,
		centerX: width / 2,
		cells:   make([][]rune, height),
		zbuf:    make([][]float64, height),
	}
	for y := range c.cells {
		c.cells[y] = make([]rune, width)
		c.zbuf[y] = make([]float64, width)
	}
	c.Reset()
	return c
}

// Reset clears all cells and depths for the next frame.
func (c *Canvas) Reset() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = ' '
			c.zbuf[y][x] = math.Inf(1)
		}
	}
}

// SetCenter moves the horizontal projection center, letting several objects
// share one canvas.
func (c *Canvas) SetCenter(x int) { c.centerX = x }

// project maps a 3D point to screen coordinates with a perspective divide.
// Coordinates round to nearest so a symmetric object projects symmetrically.
func (c *Canvas) project(v Vec3) (int, int, float64) {
	factor := cameraDistance / (cameraDistance + v.Z)
	sx := c.centerX + int(math.Round(v.X*factor*20))
	sy := c.height/2 - int(math.Round(v.Y*factor*10))
	return sx, sy, v.Z
}

// plot writes one shaded sample, z-buffered.
func (c *Canvas) plot(x, y int, z, brightness float64) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	// The camera sits on the negative z side, so smaller z is nearer.
	if z >= c.zbuf[y][x] {
		return
	}
	c.zbuf[y][x] = z
	idx := int(brightness * float64(len(brightnessRamp)-1))
	if idx < 0 {
		idx = 0
	} else if idx >= len(brightnessRamp) {
		idx = len(brightnessRamp) - 1
	}
	c.cells[y][x] = rune(brightnessRamp[idx])
}

// Grid snapshots the canvas as an ASCII grid.
func (c *Canvas) Grid() ascii.Grid {
	grid := make(ascii.Grid, c.height)
	var b strings.Builder
	for y := range c.cells {
		b.Reset()
		for _, r := range c.cells[y] {
			b.WriteRune(r)
		}
		grid[y] = b.String()
	}
	return grid
}
