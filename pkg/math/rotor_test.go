package math

import (
	"math"
	"testing"
)

func TestRotorConvention(t *testing.T) {
	theta := float32(0.6)
	m := Rotor(1, 3, theta)
	c := float32(math.Cos(0.6))
	s := float32(math.Sin(0.6))

	checks := []struct {
		r, c int
		want float32
	}{
		{1, 1, c},
		{3, 3, c},
		{1, 3, -s},
		{3, 1, s},
		{0, 0, 1},
		{2, 2, 1},
		{0, 1, 0},
		{2, 3, 0},
	}
	for _, ch := range checks {
		if got := m.At(ch.r, ch.c); abs(got-ch.want) > 1e-6 {
			t.Errorf("Rotor(1,3)[%d][%d] = %v, want %v", ch.r, ch.c, got, ch.want)
		}
	}
}

func TestRotorInvalidAxes(t *testing.T) {
	for _, p := range [][2]int{{0, 0}, {-1, 2}, {1, 4}} {
		if m := Rotor(p[0], p[1], 1); m != Identity() {
			t.Errorf("Rotor(%d,%d) should be identity, got %v", p[0], p[1], m)
		}
	}
}

func TestRotorInverseComposition(t *testing.T) {
	planes := []Plane{PlaneXY, PlaneXZ, PlaneXW, PlaneYZ, PlaneYW, PlaneZW}
	id := Identity()

	for _, p := range planes {
		for _, theta := range []float32{0.1, 1, math.Pi / 2, 3} {
			m := p.Rotor(theta).Mul(p.Rotor(-theta))
			for i := range m {
				if abs(m[i]-id[i]) > 1e-6 {
					t.Fatalf("plane %v θ=%v: R(θ)R(-θ) element %d = %v, want %v", p, theta, i, m[i], id[i])
				}
			}
		}
	}
}

func TestBivectorRotorIsOrthonormal(t *testing.T) {
	r := Bivector{
		XY: math.Pi / 6,
		XZ: math.Pi / 7,
		XW: math.Pi / 5,
		YZ: math.Pi / 8,
		YW: math.Pi / 9,
		ZW: math.Pi / 10,
	}.Rotor()

	if !r.IsOrthogonal(1e-6) {
		t.Errorf("composed rotor is not orthogonal: %v", r)
	}
	if d := r.Determinant(); abs(d-1) > 1e-5 {
		t.Errorf("composed rotor determinant = %v, want 1", d)
	}
}

func TestBivectorOrder(t *testing.T) {
	b := Bivector{XY: 0.4, ZW: 1.3, XW: -0.7}
	want := Compose(PlaneXY.Rotor(0.4), PlaneXW.Rotor(-0.7), PlaneZW.Rotor(1.3))
	got := b.Rotor()
	for i := range got {
		if abs(got[i]-want[i]) > 1e-6 {
			t.Fatalf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRotorPreservesLength(t *testing.T) {
	v := Vec4{0.5, -0.5, 0.5, 0.5}
	r := Bivector{XY: 1, XZ: 2, XW: 3, YZ: 4, YW: 5, ZW: 6}.Rotor()
	if l := r.MulVec4(v).Length(); abs(l-1) > 1e-5 {
		t.Errorf("rotated length = %v, want 1", l)
	}
}

func TestQuarterTurnXW(t *testing.T) {
	// A quarter turn in the XW plane takes +X to +W.
	got := Rotor(0, 3, math.Pi/2).MulVec4(Vec4{X: 1})
	if abs(got.X) > 1e-6 || abs(got.W-1) > 1e-6 {
		t.Errorf("Rotor(0,3,π/2)·(1,0,0,0) = %v, want (0,0,0,1)", got)
	}
}

func TestComposeLongChainStaysOrthogonal(t *testing.T) {
	step := Compose(PlaneXZ.Rotor(-0.013), PlaneYZ.Rotor(0.007))
	r := Identity()
	for i := 1; i <= 10000; i++ {
		r = step.Mul(r)
		if i%64 == 0 {
			r = r.Orthonormalize()
		}
	}
	if !r.IsOrthogonal(1e-4) {
		t.Errorf("accumulated rotor drifted: %v", r)
	}
}
