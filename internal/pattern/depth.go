package pattern

import (
	"math"
	"strings"

	"asciistudio/internal/ascii"
)

// DepthFunc reports a cell's depth in [0,1]. Zero means background.
type DepthFunc func(x, y, width, height int) float64

// edgeChars shade detected edges, darkest first; the index grows with depth,
// so near cells get the lightest edge glyph.
const edgeChars = "#@%&*+=-~."

// depthChars shade interior cells in 0.1 depth steps; depths above 0.9 get
// the final '&'.
const depthChars = ".:-=+*#%@&"

func edgeChar(depth float64) byte {
	i := int(depth * 10)
	if i > len(edgeChars)-1 {
		i = len(edgeChars) - 1
	}
	return edgeChars[i]
}

func depthChar(depth float64) byte {
	for i := 0; i < len(depthChars)-1; i++ {
		if depth <= float64(i+1)/10 {
			return depthChars[i]
		}
	}
	return depthChars[len(depthChars)-1]
}

// DepthRender shades a depth field into a grid. Interior cells take a glyph
// from the depth charset; cells on an edge (an 8-neighbour is background, or
// a lit neighbour's depth differs by more than 0.3) take one from the edge
// charset. Grid-border cells are never marked as edges.
func DepthRender(f DepthFunc, width, height int) ascii.Grid {
	depth := make([][]float64, height)
	for y := range depth {
		depth[y] = make([]float64, width)
		for x := range depth[y] {
			depth[y][x] = f(x, y, width, height)
		}
	}

	edges := make([][]bool, height)
	for y := range edges {
		edges[y] = make([]bool, width)
	}
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			d := depth[y][x]
			if d <= 0 {
				continue
			}
			for dy := -1; dy <= 1 && !edges[y][x]; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					n := depth[y+dy][x+dx]
					if n == 0 || (n > 0 && math.Abs(n-d) > 0.3) {
						edges[y][x] = true
						break
					}
				}
			}
		}
	}

	grid := make(ascii.Grid, 0, height)
	var row strings.Builder
	for y := 0; y < height; y++ {
		row.Reset()
		for x := 0; x < width; x++ {
			switch {
			case depth[y][x] <= 0:
				row.WriteByte(' ')
			case edges[y][x]:
				row.WriteByte(edgeChar(depth[y][x]))
			default:
				row.WriteByte(depthChar(depth[y][x]))
			}
		}
		grid = append(grid, row.String())
	}
	return grid
}

// CircleDepth shades a filled circle: the ring itself sits at depth 1.0 and
// the interior falls off with distance from the centre.
func CircleDepth(radius int) ascii.Grid {
	r := float64(radius)
	return DepthRender(func(x, y, w, h int) float64 {
		dx := float64(x-w/2) / 2
		dy := float64(y - h/2)
		dist := math.Hypot(dx, dy)
		switch {
		case math.Abs(dist-r) < 0.5:
			return 1.0
		case dist < r:
			return math.Max(0.1, 1-dist/r*0.8)
		default:
			return 0
		}
	}, radius*4+1, radius*2+1)
}

// SpiralDepth shades the spiral arms by their sweep angle.
func SpiralDepth(size int, density, rotation float64) ascii.Grid {
	return DepthRender(func(x, y, w, h int) float64 {
		dx := float64(x - w/2)
		dy := float64(y - h/2)
		dist := math.Hypot(dx, dy)
		angle := math.Atan2(dy, dx) + rotation
		v := math.Mod(angle+dist*density, 2*math.Pi)
		if v < 0 {
			v += 2 * math.Pi
		}
		if v < math.Pi {
			return math.Max(0.1, v/math.Pi)
		}
		return 0
	}, size*2, size*2)
}

// HeartDepth shades the heart interior, brightest at the centre.
func HeartDepth(size int) ascii.Grid {
	s := float64(size)
	return DepthRender(func(x, y, w, h int) float64 {
		px := (float64(x) - float64(w)/2) / s
		py := (float64(h)/2 - float64(y)) / s
		v := math.Pow(px*px+py*py-1, 3) - px*px*math.Pow(py, 3)
		if v >= 0 {
			return 0
		}
		return math.Max(0.1, 1-math.Hypot(px, py)*0.5)
	}, size*3, size*2)
}
