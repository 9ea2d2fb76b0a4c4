package math

import (
	"errors"
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 12}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("Normalize of zero vector = %v, want zero", z)
	}
}

func TestNormalizeChecked(t *testing.T) {
	if _, err := (Vec3{}).NormalizeChecked(); !errors.Is(err, ErrDegenerate) {
		t.Errorf("Vec3 zero: expected ErrDegenerate, got %v", err)
	}
	if _, err := (Vec3{1e-9, 0, 0}).NormalizeChecked(); !errors.Is(err, ErrDegenerate) {
		t.Errorf("Vec3 tiny: expected ErrDegenerate, got %v", err)
	}
	if _, err := (Vec4{}).NormalizeChecked(); !errors.Is(err, ErrDegenerate) {
		t.Errorf("Vec4 zero: expected ErrDegenerate, got %v", err)
	}

	n, err := Vec4{0, 2, 0, 0}.NormalizeChecked()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != (Vec4{0, 1, 0, 0}) {
		t.Errorf("NormalizeChecked = %v, want (0,1,0,0)", n)
	}
}

func TestAnyOrthogonal(t *testing.T) {
	tests := []Vec3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1, 2, 3},
		{-5, 0.1, 0.1},
		{},
	}

	for _, v := range tests {
		o := v.AnyOrthogonal()
		if l := o.Length(); abs(l-1) > 1e-5 {
			t.Errorf("AnyOrthogonal(%v) length = %v, want 1", v, l)
		}
		if d := o.Dot(v.Normalize()); abs(d) > 1e-5 {
			t.Errorf("AnyOrthogonal(%v) = %v not orthogonal (dot %v)", v, o, d)
		}
	}
}

func TestIsFinite(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())

	if !(Vec3{1, 2, 3}).IsFinite() {
		t.Error("finite Vec3 reported as non-finite")
	}
	if (Vec3{inf, 0, 0}).IsFinite() {
		t.Error("Vec3 with +Inf reported as finite")
	}
	if (Vec4{0, 0, 0, nan}).IsFinite() {
		t.Error("Vec4 with NaN reported as finite")
	}
}

func TestVec4Length(t *testing.T) {
	v := Vec4{1, 1, 1, 1}
	if got := v.Length(); got != 2 {
		t.Errorf("Vec4.Length() = %v, want 2", got)
	}
	if got := v.XYZ(); got != (Vec3{1, 1, 1}) {
		t.Errorf("Vec4.XYZ() = %v", got)
	}
}

func TestVec4Component(t *testing.T) {
	v := Vec4{1, 2, 3, 4}
	for i := 0; i < 4; i++ {
		if got := v.Component(i); got != float32(i+1) {
			t.Errorf("Component(%d) = %v, want %v", i, got, i+1)
		}
	}
}
