package math

import "math"

// Vec4 is a 4D vector. Points of the unit 3-sphere are stored as Vec4.
type Vec4 struct {
	X, Y, Z, W float32
}

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Scale returns v * scalar.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the dot product.
func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Length returns the magnitude.
func (v Vec4) Length() float32 {
	x, y, z, w := float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)
	return float32(math.Sqrt(x*x + y*y + z*z + w*w))
}

// Normalize returns a unit vector, or the zero vector if v has zero length.
func (v Vec4) Normalize() Vec4 {
	l := v.Length()
	if l == 0 {
		return Vec4{}
	}
	return v.Scale(1 / l)
}

// NormalizeChecked returns a unit vector or ErrDegenerate when v is shorter
// than Epsilon.
func (v Vec4) NormalizeChecked() (Vec4, error) {
	l := v.Length()
	if l < Epsilon || !isFinite(l) {
		return Vec4{}, ErrDegenerate
	}
	return v.Scale(1 / l), nil
}

// XYZ drops the W component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec4) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z) && isFinite(v.W)
}

// Component returns the i-th coordinate (0=X .. 3=W).
func (v Vec4) Component(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		return v.W
	}
}

// Array returns the components as an array, the layout vertex buffers use.
func (v Vec4) Array() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}
