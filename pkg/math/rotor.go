package math

import "math"

// Plane names one of the six coordinate planes of 4D space by its two axes.
type Plane struct {
	U, V int
}

// Coordinate planes. Axis 0..3 are X, Y, Z, W.
var (
	PlaneXY = Plane{0, 1}
	PlaneXZ = Plane{0, 2}
	PlaneXW = Plane{0, 3}
	PlaneYZ = Plane{1, 2}
	PlaneYW = Plane{1, 3}
	PlaneZW = Plane{2, 3}
)

// Rotor returns the rotation by theta radians in the plane spanned by axes
// u and v, leaving the other two axes fixed:
//
//	M[u][u] = M[v][v] = cos θ
//	M[u][v] = -sin θ
//	M[v][u] =  sin θ
//
// Invalid axis pairs yield the identity.
func Rotor(u, v int, theta float32) Mat4 {
	m := Identity()
	if u == v || u < 0 || v < 0 || u > 3 || v > 3 {
		return m
	}
	s64, c64 := math.Sincos(float64(theta))
	c, s := float32(c64), float32(s64)
	m.Set(u, u, c)
	m.Set(v, v, c)
	m.Set(u, v, -s)
	m.Set(v, u, s)
	return m
}

// Rotor returns the elementary rotor of this plane.
func (p Plane) Rotor(theta float32) Mat4 {
	return Rotor(p.U, p.V, theta)
}

// Bivector holds one rotation angle per coordinate plane.
type Bivector struct {
	XY, XZ, XW, YZ, YW, ZW float32
}

// Rotor composes the six plane rotations as XY∘XZ∘XW∘YZ∘YW∘ZW, so the ZW
// rotation is applied to a vector first and XY last. The order is fixed;
// plane rotations in 4D do not commute.
func (b Bivector) Rotor() Mat4 {
	r := Identity()
	r = PlaneZW.Rotor(b.ZW).Mul(r)
	r = PlaneYW.Rotor(b.YW).Mul(r)
	r = PlaneYZ.Rotor(b.YZ).Mul(r)
	r = PlaneXW.Rotor(b.XW).Mul(r)
	r = PlaneXZ.Rotor(b.XZ).Mul(r)
	r = PlaneXY.Rotor(b.XY).Mul(r)
	return r
}

// Scale returns the bivector with every angle multiplied by s.
func (b Bivector) Scale(s float32) Bivector {
	return Bivector{b.XY * s, b.XZ * s, b.XW * s, b.YZ * s, b.YW * s, b.ZW * s}
}

// Compose returns rotors[0] ∘ rotors[1] ∘ ... ; the last rotor is applied first.
func Compose(rotors ...Mat4) Mat4 {
	r := Identity()
	for _, m := range rotors {
		r = r.Mul(m)
	}
	return r
}
