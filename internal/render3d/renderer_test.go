package render3d

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderDeterministic(t *testing.T) {
	for _, shape := range Shapes {
		a, err := Render(shape, 1.5, 0.7, DefaultWidth, DefaultHeight)
		if err != nil {
			t.Fatal(err)
		}
		b, err := Render(shape, 1.5, 0.7, DefaultWidth, DefaultHeight)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("%s not deterministic:\n%s", shape, diff)
		}
	}
}

func TestCubeAngleZeroSymmetric(t *testing.T) {
	grid, err := Render("cube", 1.5, 0, DefaultWidth, DefaultHeight)
	if err != nil {
		t.Fatal(err)
	}

	cx := DefaultWidth / 2
	for y, row := range grid {
		cells := []rune(row)
		for d := 1; d <= DefaultWidth-1-cx; d++ {
			left := cells[cx-d] != ' '
			right := cells[cx+d] != ' '
			if left != right {
				t.Fatalf("row %d asymmetric at offset %d: left=%v right=%v",
					y, d, left, right)
			}
		}
	}
}

func TestCubeNonEmpty(t *testing.T) {
	grid, err := Render("cube", 1.5, 0, DefaultWidth, DefaultHeight)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.ContainsAny(grid.String(), brightnessRamp) {
		t.Error("cube rendered nothing")
	}
}

func TestUnknownShape(t *testing.T) {
	if _, err := Render("dodecahedron", 1.5, 0, 10, 10); err == nil {
		t.Error("expected an error for an unknown shape")
	}
	if _, err := Animate("dodecahedron", 1.5, 1, 10, 10); err == nil {
		t.Error("expected an error for an unknown shape")
	}
}

func TestZBufferKeepsNearest(t *testing.T) {
	c := NewCanvas(10, 10)

	// Near sample first, far second: the far one must not win.
	c.plot(5, 5, -1, 1.0)
	c.plot(5, 5, 1, 0.0)
	if got := c.cells[5][5]; got != '@' {
		t.Errorf("far sample overwrote near one: got %q", got)
	}

	// Far first, near second: the near one replaces it.
	c.Reset()
	c.plot(5, 5, 1, 0.0)
	c.plot(5, 5, -1, 1.0)
	if got := c.cells[5][5]; got != '@' {
		t.Errorf("near sample did not replace far one: got %q", got)
	}
}

func TestPlotClampsAndClips(t *testing.T) {
	c := NewCanvas(4, 4)
	// Out-of-bounds samples are dropped, not panics.
	c.plot(-1, 0, 0, 1)
	c.plot(0, -1, 0, 1)
	c.plot(4, 0, 0, 1)
	c.plot(0, 4, 0, 1)

	// Brightness outside [0,1] clamps to the ramp ends.
	c.plot(1, 1, 0, 2.5)
	if got := c.cells[1][1]; got != '@' {
		t.Errorf("over-bright sample: got %q, want '@'", got)
	}
	c.plot(2, 2, 0, -0.5)
	if got := c.cells[2][2]; got != '.' {
		t.Errorf("negative brightness: got %q, want '.'", got)
	}
}

func TestAnimateAdvances(t *testing.T) {
	frames, err := Animate("torus", 1.5, 1, DefaultWidth, DefaultHeight)
	if err != nil {
		t.Fatal(err)
	}
	if cmp.Diff(frames(0), frames(12)) == "" {
		t.Error("animation frames 0 and 12 are identical")
	}
	// Revisiting a frame index reproduces it exactly.
	tenth := frames(10)
	if diff := cmp.Diff(tenth, frames(10)); diff != "" {
		t.Errorf("frame 10 not reproducible:\n%s", diff)
	}
}

func TestRotationsPreserveLength(t *testing.T) {
	v := Vec3{1, 2, 3}
	for _, rotated := range []Vec3{
		v.RotateX(0.7), v.RotateY(1.3), v.RotateZ(2.1), v.rotate(0.3, 0.6, 0.9),
	} {
		got := rotated.Dot(rotated)
		want := v.Dot(v)
		if diff := got - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("rotation changed length: %v vs %v", got, want)
		}
	}
}

func TestLambertClamps(t *testing.T) {
	if got := lambert(Vec3{0, 0, -1}); got != 1 {
		t.Errorf("normal facing the light: %v, want 1", got)
	}
	if got := lambert(Vec3{0, 0, 1}); got != 0 {
		t.Errorf("normal facing away: %v, want 0", got)
	}
}
