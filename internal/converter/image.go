// Package converter turns images, videos and webcam streams into ASCII grids.
package converter

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"asciistudio/internal/ascii"
)

// RowCompression corrects for a terminal cell being roughly twice as tall as
// it is wide.
const RowCompression = 0.55

// Options controls a single conversion.
type Options struct {
	Width    int
	Detailed bool
	Invert   bool
	Filter   string
}

func (o Options) validate() error {
	if o.Width < 1 {
		return fmt.Errorf("%w: width must be at least 1, got %d", ErrInvalidInput, o.Width)
	}
	if o.Filter != "" {
		if _, ok := filters[o.Filter]; !ok {
			return fmt.Errorf("%w: unknown filter %q", ErrInvalidInput, o.Filter)
		}
	}
	return nil
}

// TargetHeight computes the character-grid height for a requested width,
// preserving the source aspect ratio under RowCompression.
func TargetHeight(width, srcW, srcH int) int {
	h := int(float64(width) * float64(srcH) / float64(srcW) * RowCompression)
	if h < 1 {
		h = 1
	}
	return h
}

// Image converts a decoded image into an ASCII grid.
func Image(img image.Image, opts Options) (ascii.Grid, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("%w: zero-sized image", ErrInvalidInput)
	}

	if opts.Filter != "" {
		img = applyFilter(img, opts.Filter)
	}

	height := TargetHeight(opts.Width, bounds.Dx(), bounds.Dy())
	small := resize.Resize(uint(opts.Width), uint(height), img, resize.Bilinear)

	ramp := ascii.Select(opts.Detailed, opts.Invert)
	sb := small.Bounds()

	grid := make(ascii.Grid, 0, height)
	var row strings.Builder
	for y := sb.Min.Y; y < sb.Max.Y; y++ {
		row.Reset()
		for x := sb.Min.X; x < sb.Max.X; x++ {
			r, g, b, _ := small.At(x, y).RGBA()
			gray := ascii.Gray(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			row.WriteRune(ramp.Glyph(gray))
		}
		grid = append(grid, row.String())
	}
	return grid, nil
}

// ImageFile loads and converts an image file. PNG, JPEG, GIF, BMP and WebP
// are supported.
func ImageFile(path string, opts Options) (ascii.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return Image(img, opts)
}
