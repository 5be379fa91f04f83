package render3d

import "math"

// faceSteps is the sampling resolution along each face parameter. Fixed so
// that output for a given angle and size is fully reproducible.
const faceSteps = 24

var cubeVertices = [8]Vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

var cubeFaces = [6][4]int{
	{0, 1, 2, 3}, {4, 5, 6, 7}, // front, back
	{0, 1, 5, 4}, {2, 3, 7, 6}, // bottom, top
	{0, 3, 7, 4}, {1, 2, 6, 5}, // left, right
}

var cubeNormals = [6]Vec3{
	{0, 0, -1}, {0, 0, 1},
	{0, -1, 0}, {0, 1, 0},
	{-1, 0, 0}, {1, 0, 0},
}

// DrawCube draws a solid cube rotated by the three Euler angles.
func DrawCube(c *Canvas, ax, ay, az, size float64) {
	var rotated [8]Vec3
	for i, v := range cubeVertices {
		rotated[i] = v.Scale(size).rotate(ax, ay, az)
	}
	for i, face := range cubeFaces {
		normal := cubeNormals[i].rotate(ax, ay, az)
		brightness := lambert(normal)
		fillQuad(c,
			rotated[face[0]], rotated[face[1]],
			rotated[face[2]], rotated[face[3]],
			brightness)
	}
}

var pyramidVertices = [5]Vec3{
	{0, 1, 0}, // apex
	{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1},
}

var pyramidFaces = [6][3]int{
	{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 1}, // sides
	{1, 2, 3}, {1, 3, 4}, // base
}

// DrawPyramid draws a solid square pyramid. Face normals come from the edge
// cross products, so no normal table is needed.
func DrawPyramid(c *Canvas, ax, ay, az, size float64) {
	var rotated [5]Vec3
	for i, v := range pyramidVertices {
		rotated[i] = v.Scale(size).rotate(ax, ay, az)
	}
	for _, face := range pyramidFaces {
		v1, v2, v3 := rotated[face[0]], rotated[face[1]], rotated[face[2]]
		normal := v2.Sub(v1).Cross(v3.Sub(v1)).Normalize()
		fillTriangle(c, v1, v2, v3, lambert(normal))
	}
}

// DrawSphere draws a solid sphere sampled on a latitude/longitude grid.
func DrawSphere(c *Canvas, ax, ay, radius float64, detail int) {
	for i := 0; i < detail; i++ {
		for j := 0; j < detail; j++ {
			theta := float64(i) / float64(detail) * math.Pi
			phi := float64(j) / float64(detail) * 2 * math.Pi

			p := Vec3{
				radius * math.Sin(theta) * math.Cos(phi),
				radius * math.Sin(theta) * math.Sin(phi),
				radius * math.Cos(theta),
			}.RotateX(ax).RotateY(ay)

			sx, sy, z := c.project(p)
			c.plot(sx, sy, z, lambert(p.Normalize()))
		}
	}
}

// DrawTorus draws a solid torus with ring radius bigR and tube radius tubeR.
func DrawTorus(c *Canvas, ax, ay, az, bigR, tubeR float64, detail int) {
	for i := 0; i < detail; i++ {
		for j := 0; j < detail; j++ {
			theta := float64(i) / float64(detail) * 2 * math.Pi
			phi := float64(j) / float64(detail) * 2 * math.Pi

			p := Vec3{
				(bigR + tubeR*math.Cos(phi)) * math.Cos(theta),
				(bigR + tubeR*math.Cos(phi)) * math.Sin(theta),
				tubeR * math.Sin(phi),
			}.rotate(ax, ay, az)

			// Tube normal: from the rotated ring center out to the point.
			center := Vec3{
				bigR * math.Cos(theta),
				bigR * math.Sin(theta),
				0,
			}.rotate(ax, ay, az)

			sx, sy, z := c.project(p)
			c.plot(sx, sy, z, lambert(p.Sub(center).Normalize()))
		}
	}
}

func lerp(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// fillQuad samples the bilinear patch spanned by the four corners.
func fillQuad(c *Canvas, v1, v2, v3, v4 Vec3, brightness float64) {
	for i := 0; i <= faceSteps; i++ {
		t := float64(i) / faceSteps
		top := lerp(v1, v2, t)
		bottom := lerp(v4, v3, t)
		for j := 0; j <= faceSteps; j++ {
			p := lerp(top, bottom, float64(j)/faceSteps)
			sx, sy, z := c.project(p)
			c.plot(sx, sy, z, brightness)
		}
	}
}

// fillTriangle samples the triangle on a barycentric grid.
func fillTriangle(c *Canvas, v1, v2, v3 Vec3, brightness float64) {
	for i := 0; i <= faceSteps; i++ {
		for j := 0; j <= faceSteps-i; j++ {
			a := float64(i) / faceSteps
			b := float64(j) / faceSteps
			p := v1.Add(v2.Sub(v1).Scale(a)).Add(v3.Sub(v1).Scale(b))
			sx, sy, z := c.project(p)
			c.plot(sx, sy, z, brightness)
		}
	}
}
