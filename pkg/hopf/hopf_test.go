package hopf

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/hopf-fibration/pkg/math"
)

func approxEqual(a, b, tol float32) bool {
	d := a - b
	return d <= tol && d >= -tol
}

func TestMapUnitSphere(t *testing.T) {
	steps := 24
	for i := 0; i <= steps; i++ {
		eta := float32(float64(i) / float64(steps) * gomath.Pi / 2)
		for j := 0; j < steps; j++ {
			xi := float32(float64(j) / float64(steps) * 2 * gomath.Pi)
			for k := 0; k < steps; k++ {
				nu := float32(float64(k) / float64(steps) * FiberPeriod)
				if l := Map(xi, nu, eta).Length(); !approxEqual(l, 1, 1e-5) {
					t.Fatalf("|Map(%v, %v, %v)| = %v, want 1", xi, nu, eta, l)
				}
			}
		}
	}
}

func TestMapKnownPoint(t *testing.T) {
	got := Map(0, 0, gomath.Pi/4)
	want := math.Vec4{X: 0.70710677, Z: 0.70710677}
	if !approxEqual(got.X, want.X, 1e-6) || !approxEqual(got.Y, 0, 1e-6) ||
		!approxEqual(got.Z, want.Z, 1e-6) || !approxEqual(got.W, 0, 1e-6) {
		t.Errorf("Map(0, 0, π/4) = %v, want %v", got, want)
	}
}

func TestMapOutOfRangeInputs(t *testing.T) {
	tests := []struct {
		name        string
		xi, nu, eta float32
	}{
		{"negative eta", 0.3, 1, -0.7},
		{"large nu", 1, 1000, 0.4},
		{"large xi", -250, 2, 1.2},
		{"eta beyond pi/2", 0, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Map(tt.xi, tt.nu, tt.eta)
			if !p.IsFinite() {
				t.Fatalf("Map returned non-finite %v", p)
			}
			if l := p.Length(); !approxEqual(l, 1, 1e-5) {
				t.Errorf("length = %v, want 1", l)
			}
		})
	}
}

func TestFiberPeriod(t *testing.T) {
	c := Circle{Xi: 0.9, Eta: 0.6}
	for _, nu := range []float32{0, 0.5, 2, 5} {
		a := c.Point(nu)
		b := c.Point(nu + FiberPeriod)
		if a.Sub(b).Length() > 1e-5 {
			t.Errorf("Point(%v) = %v, Point(%v+4π) = %v", nu, a, nu, b)
		}
		// Half a period reaches the antipode.
		h := c.Point(nu + FiberPeriod/2)
		if a.Add(h).Length() > 1e-5 {
			t.Errorf("Point(%v+2π) = %v, want %v", nu, h, a.Scale(-1))
		}
	}
}

func TestCirclePointMatchesMap(t *testing.T) {
	c := Circle{Xi: 1.3, Eta: 0.2}
	if got, want := c.Point(0.77), Map(1.3, 0.77, 0.2); got != want {
		t.Errorf("Point = %v, Map = %v", got, want)
	}
}
