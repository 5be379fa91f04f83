package converter

import (
	"image"
	"sort"

	"github.com/disintegration/gift"
)

// Color filter pre-passes. Each is a pure pixel-wise transform producing a
// new buffer; the source image is never mutated.
var filters = map[string]*gift.GIFT{
	"grayscale":  gift.New(gift.Grayscale()),
	"sepia":      gift.New(gift.Sepia(100)),
	"negative":   gift.New(gift.Invert()),
	"tint-red":   gift.New(gift.ColorBalance(40, -20, -20)),
	"tint-green": gift.New(gift.ColorBalance(-20, 40, -20)),
	"tint-blue":  gift.New(gift.ColorBalance(-20, -20, 40)),
}

// Filters lists the available filter names, sorted.
func Filters() []string {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func applyFilter(img image.Image, name string) image.Image {
	g := filters[name]
	dst := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}
