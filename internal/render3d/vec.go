package render3d

import "math"

// Vec3 is a point or direction in 3D space.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Normalize() Vec3 {
	length := math.Sqrt(v.Dot(v))
	if length == 0 {
		return v
	}
	return v.Scale(1 / length)
}

// RotateX rotates about the X axis by angle radians.
func (v Vec3) RotateX(angle float64) Vec3 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Vec3{v.X, v.Y*cos - v.Z*sin, v.Y*sin + v.Z*cos}
}

// RotateY rotates about the Y axis.
func (v Vec3) RotateY(angle float64) Vec3 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Vec3{v.X*cos + v.Z*sin, v.Y, -v.X*sin + v.Z*cos}
}

// RotateZ rotates about the Z axis.
func (v Vec3) RotateZ(angle float64) Vec3 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Vec3{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos, v.Z}
}

// rotate applies the three Euler rotations in X, Y, Z order.
func (v Vec3) rotate(ax, ay, az float64) Vec3 {
	return v.RotateX(ax).RotateY(ay).RotateZ(az)
}

// lightDir is the fixed scene light, pointing out of the screen toward the
// viewer side.
var lightDir = Vec3{0, 0, -1}

// lambert returns the clamped dot product of a unit normal with the light.
func lambert(normal Vec3) float64 {
	d := normal.Dot(lightDir)
	if d < 0 {
		return 0
	}
	return d
}
