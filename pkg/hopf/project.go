package hopf

import "github.com/Faultbox/hopf-fibration/pkg/math"

// Projection defaults.
const (
	DefaultScale       = 0.5
	DefaultPoleEpsilon = 1e-4
)

// Projector rotates points of S³ and projects them stereographically from
// the pole (0,0,0,1) into R³. A zero Scale or PoleEpsilon selects the default.
type Projector struct {
	Rotor       math.Mat4
	Scale       float32
	PoleEpsilon float32
}

// NewProjector returns a projector with default scale and pole epsilon.
func NewProjector(rotor math.Mat4) Projector {
	return Projector{
		Rotor:       rotor,
		Scale:       DefaultScale,
		PoleEpsilon: DefaultPoleEpsilon,
	}
}

// Rotate applies the rotor.
func (p Projector) Rotate(v math.Vec4) math.Vec4 {
	return p.Rotor.MulVec4(v)
}

// Denominator returns 1 - w of the rotated point.
func (p Projector) Denominator(v math.Vec4) float32 {
	return 1 - p.Rotate(v).W
}

// NearPole reports whether the rotated point is within PoleEpsilon of the
// projection pole, where Project clamps the denominator.
func (p Projector) NearPole(v math.Vec4) bool {
	d := p.Denominator(v)
	return d < p.EffectivePoleEpsilon() && d > -p.EffectivePoleEpsilon()
}

// Project rotates v and maps it to R³ as scale·xyz/(1-w).
// Points at the pole are pushed out to a large but finite distance instead
// of producing Inf; use NearPole to detect them.
func (p Projector) Project(v math.Vec4) math.Vec3 {
	out, _ := p.projectRotated(p.Rotate(v))
	return out
}

// projectRotated projects an already rotated point and reports whether the
// denominator was clamped.
func (p Projector) projectRotated(r math.Vec4) (math.Vec3, bool) {
	eps := p.EffectivePoleEpsilon()
	d := 1 - r.W
	pole := false
	switch {
	case d >= 0 && d < eps:
		d, pole = eps, true
	case d < 0 && d > -eps:
		d, pole = -eps, true
	}
	s := p.EffectiveScale() / d
	return math.Vec3{X: r.X * s, Y: r.Y * s, Z: r.Z * s}, pole
}

// EffectiveScale returns Scale, or DefaultScale when it is zero.
func (p Projector) EffectiveScale() float32 {
	if p.Scale == 0 {
		return DefaultScale
	}
	return p.Scale
}

// EffectivePoleEpsilon returns PoleEpsilon, or DefaultPoleEpsilon when it is
// not positive.
func (p Projector) EffectivePoleEpsilon() float32 {
	if p.PoleEpsilon <= 0 {
		return DefaultPoleEpsilon
	}
	return p.PoleEpsilon
}

// Stereographic is the unguarded projection xyz/(1-w). It returns infinite
// or NaN coordinates at the pole.
func Stereographic(v math.Vec4) math.Vec3 {
	d := 1 - v.W
	return math.Vec3{X: v.X / d, Y: v.Y / d, Z: v.Z / d}
}
