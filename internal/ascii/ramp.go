package ascii

// Ramp is an ordered set of glyphs from densest to sparsest. Brightness maps
// linearly onto it, so darker pixels pick heavier glyphs.
type Ramp []rune

var (
	// Simple is a coarse 12-glyph ramp.
	Simple = Ramp("@#S%?*+;:,. ")

	// Detailed is a 70-glyph ramp for finer tonal range.
	Detailed = Ramp("$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. ")
)

// Select returns the detailed or simple ramp, reversed when invert is set.
// Reversal happens here, once per conversion, never per pixel.
func Select(detailed, invert bool) Ramp {
	r := Simple
	if detailed {
		r = Detailed
	}
	if invert {
		r = r.Reversed()
	}
	return r
}

// Reversed returns a reversed copy. The receiver is not modified.
func (r Ramp) Reversed() Ramp {
	out := make(Ramp, len(r))
	for i, g := range r {
		out[len(r)-1-i] = g
	}
	return out
}

// Glyph maps a grayscale value onto the ramp.
func (r Ramp) Glyph(gray uint8) rune {
	return r[int(gray)*(len(r)-1)/255]
}

// Gray converts an RGB triple to grayscale using the unweighted mean.
// The original renderer used a plain average rather than perceptual luma;
// that behavior is kept.
func Gray(r, g, b uint8) uint8 {
	return uint8((int(r) + int(g) + int(b)) / 3)
}
