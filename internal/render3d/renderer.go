package render3d

import (
	"fmt"

	"asciistudio/internal/ascii"
)

// Default canvas size, matching an 80x40 terminal viewport.
const (
	DefaultWidth  = 80
	DefaultHeight = 40
)

const (
	sphereDetail = 30
	torusDetail  = 40
)

// Shapes lists the supported shape tags.
var Shapes = []string{"cube", "sphere", "torus", "pyramid", "mixed"}

// Render draws one shape at a fixed rotation angle. The per-axis angle
// multipliers match the animated versions, so a static render at angle a is
// exactly the animation frame with that base angle.
func Render(shape string, size, angle float64, width, height int) (ascii.Grid, error) {
	c := NewCanvas(width, height)
	if err := drawShape(c, shape, size, angle); err != nil {
		return nil, err
	}
	return c.Grid(), nil
}

func drawShape(c *Canvas, shape string, size, angle float64) error {
	switch shape {
	case "cube":
		DrawCube(c, angle, angle*0.7, angle*0.5, size)
	case "pyramid":
		DrawPyramid(c, angle, angle*0.7, angle*0.5, size)
	case "sphere":
		DrawSphere(c, angle*0.6, angle, size, sphereDetail)
	case "torus":
		DrawTorus(c, angle, angle*0.6, angle*1.4, size*4/3, size*2/3, torusDetail)
	case "mixed":
		third := c.width / 3
		c.SetCenter(third / 2)
		DrawCube(c, angle, angle*0.7, angle*0.5, size*2/3)
		c.SetCenter(third + third/2)
		DrawTorus(c, angle, angle*0.5, angle*0.8, size, size*0.47, torusDetail)
		c.SetCenter(2*third + third/2)
		DrawSphere(c, angle*0.8, angle, size*2/3, sphereDetail)
		c.SetCenter(c.width / 2)
	default:
		return fmt.Errorf("unknown shape %q", shape)
	}
	return nil
}

// Animate returns the rotation animation for a shape. The angle advances by
// 0.05 radians per frame, scaled by speed; per-axis multipliers follow the
// static render.
func Animate(shape string, size, speed float64, width, height int) (ascii.FrameFunc, error) {
	// Validate the tag up front so the animation loop cannot fail.
	if _, err := Render(shape, size, 0, 1, 1); err != nil {
		return nil, err
	}
	c := NewCanvas(width, height)
	return func(frame int) ascii.Grid {
		c.Reset()
		angle := float64(frame) * 0.05 * speed
		drawShape(c, shape, size, angle)
		return c.Grid()
	}, nil
}
