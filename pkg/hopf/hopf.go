// Package hopf builds renderable geometry for the Hopf fibration of the
// 3-sphere: fibers are sampled on S³, rotated by a 4D rotor, projected
// stereographically into R³ and swept into tubes.
//
// Everything here is pure computation over caller-owned values. Builders
// return fresh meshes; nothing is cached between calls.
package hopf

import (
	gomath "math"

	"github.com/Faultbox/hopf-fibration/pkg/math"
)

// FiberPeriod is the parameter length of one full fiber. The half-angle
// form of the map means nu must advance 4π to close the circle.
const FiberPeriod = 4 * gomath.Pi

// Map returns the point of the 3-sphere on the fiber selected by
// (xi, eta) at parameter nu:
//
//	x0 = cos((nu+xi)/2) sin(eta)
//	x1 = sin((nu+xi)/2) sin(eta)
//	x2 = cos((nu-xi)/2) cos(eta)
//	x3 = sin((nu-xi)/2) cos(eta)
//
// The result has unit length for every real input.
func Map(xi, nu, eta float32) math.Vec4 {
	a := (float64(nu) + float64(xi)) / 2
	b := (float64(nu) - float64(xi)) / 2
	se, ce := gomath.Sincos(float64(eta))
	sa, ca := gomath.Sincos(a)
	sb, cb := gomath.Sincos(b)
	return math.Vec4{
		X: float32(ca * se),
		Y: float32(sa * se),
		Z: float32(cb * ce),
		W: float32(sb * ce),
	}
}

// Circle identifies one fiber by its base-point angles.
// Xi is the longitude on the base sphere, Eta the latitude in [0, π/2].
type Circle struct {
	Xi  float32
	Eta float32
}

// Point returns the fiber point at parameter nu.
func (c Circle) Point(nu float32) math.Vec4 {
	return Map(c.Xi, nu, c.Eta)
}
