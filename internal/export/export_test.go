package export

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"asciistudio/internal/ascii"
)

func TestFrameSizeEven(t *testing.T) {
	e, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	w, h := e.FrameSize(13, 7)
	if w%2 != 0 || h%2 != 0 {
		t.Errorf("frame size %dx%d not even", w, h)
	}
	if w <= 2*margin || h <= 2*margin {
		t.Errorf("frame size %dx%d too small", w, h)
	}
}

func TestRasterizeColors(t *testing.T) {
	e, err := New(Options{
		FG: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		BG: color.RGBA{A: 255},
	})
	if err != nil {
		t.Fatal(err)
	}

	grid := ascii.Grid{"@@@@@@@@", "@@@@@@@@"}
	w, h := e.FrameSize(grid.Width(), grid.Height())
	img := e.Rasterize(grid, w, h)

	if got := img.Bounds(); got.Dx() != w || got.Dy() != h {
		t.Fatalf("image bounds %v, want %dx%d", got, w, h)
	}

	// Corner is padding, so background.
	if r, g, b, _ := img.At(0, 0).RGBA(); r != 0 || g != 0 || b != 0 {
		t.Errorf("corner pixel not background: %d %d %d", r, g, b)
	}

	// Some pixel inside the text block must be lit.
	lit := false
	for y := margin; y < h-margin && !lit; y++ {
		for x := margin; x < w-margin; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r > 0 {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Error("no foreground pixels drawn")
	}
}

func TestImageWritesPNG(t *testing.T) {
	e, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "art.png")
	if err := e.Image(ascii.Grid{"HELLO"}, path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("output is not a valid PNG: %v", err)
	}
}

func TestMissingFont(t *testing.T) {
	_, err := New(Options{FontPath: filepath.Join(t.TempDir(), "nope.ttf")})
	if err == nil {
		t.Error("expected an error for a missing font file")
	}
}

func TestVideoRejectsBadArgs(t *testing.T) {
	e, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Video(nil, "out.mp4", 15); err == nil {
		t.Error("expected an error for zero frames")
	}
	if err := e.Video([]ascii.Grid{{"x"}}, "out.mp4", 0); err == nil {
		t.Error("expected an error for zero fps")
	}
}
