// Package export rasterizes finished ASCII grids to image and video files
// using a fixed monospace font.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"asciistudio/internal/ascii"
)

// margin is the pixel padding around the rendered text.
const margin = 10

// Options configures an Exporter. Zero values fall back to the built-in
// 7x13 bitmap face, white text on black.
type Options struct {
	FontPath string
	FontSize float64
	FG, BG   color.Color
}

// Exporter draws ASCII grids into pixel buffers.
type Exporter struct {
	face   font.Face
	ascent int
	charW  int
	charH  int
	fg, bg color.Color
}

// New builds an exporter, loading the TTF font if one is given.
func New(opts Options) (*Exporter, error) {
	face := font.Face(basicfont.Face7x13)
	if opts.FontPath != "" {
		data, err := os.ReadFile(opts.FontPath)
		if err != nil {
			return nil, fmt.Errorf("loading font: %w", err)
		}
		f, err := truetype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing font %s: %v", opts.FontPath, err)
		}
		size := opts.FontSize
		if size <= 0 {
			size = 10
		}
		face = truetype.NewFace(f, &truetype.Options{Size: size})
	}

	adv, ok := face.GlyphAdvance('M')
	if !ok {
		adv = fixed.I(7)
	}
	metrics := face.Metrics()

	fg, bg := opts.FG, opts.BG
	if fg == nil {
		fg = color.White
	}
	if bg == nil {
		bg = color.Black
	}

	return &Exporter{
		face:   face,
		ascent: metrics.Ascent.Ceil(),
		charW:  adv.Ceil(),
		charH:  metrics.Height.Ceil(),
		fg:     fg,
		bg:     bg,
	}, nil
}

// FrameSize returns the pixel dimensions for a grid of the given character
// dimensions. Both are rounded up to even numbers so video encoders accept
// them.
func (e *Exporter) FrameSize(cols, rows int) (int, int) {
	w := cols*e.charW + 2*margin
	h := rows*e.charH + 2*margin
	return w + w%2, h + h%2
}

// Rasterize draws a grid into a new pixel buffer of the given dimensions.
func (e *Exporter) Rasterize(grid ascii.Grid, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(e.bg), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(e.fg),
		Face: e.face,
	}
	for i, line := range grid {
		d.Dot = fixed.P(margin, margin+i*e.charH+e.ascent)
		d.DrawString(line)
	}
	return img
}

// Image renders a grid to a PNG or JPEG file, chosen by extension.
func (e *Exporter) Image(grid ascii.Grid, path string) error {
	w, h := e.FrameSize(grid.Width(), grid.Height())
	img := e.Rasterize(grid, w, h)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	default:
		return png.Encode(f, img)
	}
}
