// Package math provides the float32 vector and matrix types used by the
// fibration pipeline: 3D vectors for projected geometry, 4D vectors and
// 4x4 rotors for points on the unit 3-sphere.
package math

import (
	"errors"
	"math"
)

// Epsilon is the smallest length NormalizeChecked accepts.
const Epsilon = 1e-6

// ErrDegenerate is returned when a vector is too short to normalize.
var ErrDegenerate = errors.New("degenerate vector")

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X)*float64(v.X) + float64(v.Y)*float64(v.Y) + float64(v.Z)*float64(v.Z)))
}

// Normalize returns a unit vector, or the zero vector if v has zero length.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// NormalizeChecked returns a unit vector or ErrDegenerate when v is shorter
// than Epsilon.
func (v Vec3) NormalizeChecked() (Vec3, error) {
	l := v.Length()
	if l < Epsilon || !isFinite(l) {
		return Vec3{}, ErrDegenerate
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}, nil
}

// AnyOrthogonal returns a unit vector orthogonal to v.
// For the zero vector it returns +Z.
func (v Vec3) AnyOrthogonal() Vec3 {
	v = v.Normalize()
	ax, ay, az := abs(v.X), abs(v.Y), abs(v.Z)
	var helper Vec3
	switch {
	case ax <= ay && ax <= az:
		helper = Vec3{X: 1}
	case ay <= az:
		helper = Vec3{Y: 1}
	default:
		helper = Vec3{Z: 1}
	}
	o, err := v.Cross(helper).NormalizeChecked()
	if err != nil {
		return Vec3{Z: 1}
	}
	return o
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// Array returns the components as an array, the layout vertex buffers use.
func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func isFinite(f float32) bool {
	d := float64(f)
	return !math.IsNaN(d) && !math.IsInf(d, 0)
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
