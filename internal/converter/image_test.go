package converter

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"asciistudio/internal/ascii"
)

func uniformImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestAllWhiteTwoByTwo(t *testing.T) {
	// 2x2 white at width 2: the 0.55 row compression floors the height to a
	// single row of two spaces (the simple ramp's lightest glyph).
	img := uniformImage(2, 2, color.White)
	grid, err := Image(img, Options{Width: 2})
	if err != nil {
		t.Fatal(err)
	}
	want := ascii.Grid{"  "}
	if diff := cmp.Diff(want, grid); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestAllBlackDarkestGlyph(t *testing.T) {
	grid, err := Image(uniformImage(4, 4, color.Black), Options{Width: 4})
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range grid {
		for _, r := range row {
			if r != '@' {
				t.Fatalf("black image produced %q, want '@'", r)
			}
		}
	}
}

func TestGridDimensions(t *testing.T) {
	tests := []struct {
		srcW, srcH, width int
		wantH             int
	}{
		{10, 10, 7, 3},   // 7 * 1.0 * 0.55 = 3.85
		{100, 50, 40, 11}, // 40 * 0.5 * 0.55 = 11
		{2, 2, 2, 1},
		{100, 1, 50, 1}, // floors below one row, clamped
	}
	for _, tc := range tests {
		img := uniformImage(tc.srcW, tc.srcH, color.White)
		grid, err := Image(img, Options{Width: tc.width})
		if err != nil {
			t.Fatal(err)
		}
		if grid.Height() != tc.wantH {
			t.Errorf("%dx%d at width %d: height %d, want %d",
				tc.srcW, tc.srcH, tc.width, grid.Height(), tc.wantH)
		}
		for _, row := range grid {
			if n := len([]rune(row)); n != tc.width {
				t.Errorf("row length %d, want %d", n, tc.width)
			}
		}
	}
}

func TestInvalidWidth(t *testing.T) {
	_, err := Image(uniformImage(2, 2, color.White), Options{Width: 0})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestZeroSizedImage(t *testing.T) {
	_, err := Image(image.NewRGBA(image.Rect(0, 0, 0, 0)), Options{Width: 10})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestUnknownFilter(t *testing.T) {
	_, err := Image(uniformImage(2, 2, color.White), Options{Width: 2, Filter: "posterize"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestNegativeFilterFlipsExtremes(t *testing.T) {
	grid, err := Image(uniformImage(4, 4, color.White), Options{Width: 4, Filter: "negative"})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range grid[0] {
		if r != '@' {
			t.Fatalf("negated white produced %q, want '@'", r)
		}
	}
}

func TestInvertTwiceRoundTrips(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.Gray{Y: uint8(x * y * 4)})
		}
	}

	opts := Options{Width: 8}
	base, err := Image(img, opts)
	if err != nil {
		t.Fatal(err)
	}

	opts.Invert = !opts.Invert
	opts.Invert = !opts.Invert
	again, err := Image(img, opts)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(base, again); diff != "" {
		t.Errorf("double invert changed output (-want +got):\n%s", diff)
	}
}

func TestImageFileNotFound(t *testing.T) {
	_, err := ImageFile(filepath.Join(t.TempDir(), "nope.png"), Options{Width: 10})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestImageFileDecodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ImageFile(path, Options{Width: 10})
	if !errors.Is(err, ErrDecode) {
		t.Errorf("got %v, want ErrDecode", err)
	}
}

func TestFilterDoesNotMutateSource(t *testing.T) {
	img := uniformImage(2, 2, color.White).(*image.RGBA)
	before := append([]uint8(nil), img.Pix...)
	if _, err := Image(img, Options{Width: 2, Filter: "negative"}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, img.Pix); diff != "" {
		t.Errorf("source pixels changed (-want +got):\n%s", diff)
	}
}

func TestTargetHeightNeverZero(t *testing.T) {
	if h := TargetHeight(1, 1000, 1); h != 1 {
		t.Errorf("TargetHeight = %d, want 1", h)
	}
}
