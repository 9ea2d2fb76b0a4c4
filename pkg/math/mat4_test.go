package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Rotor(0, 2, 0.7)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestMulOrder(t *testing.T) {
	// Scale then rotate: (1,0,0,0) -> (2,0,0,0) -> (0,2,0,0)
	a := Rotor(0, 1, float32(math.Pi/2))
	b := Scale(2, 1, 1)
	got := a.Mul(b).MulVec4(Vec4{X: 1})

	if abs(got.X) > 1e-6 || abs(got.Y-2) > 1e-6 {
		t.Errorf("A.Mul(B) should apply B first: got %+v, want (0, 2, 0, 0)", got)
	}
}

func TestAtSet(t *testing.T) {
	var m Mat4
	m.Set(1, 3, 7)
	if m[13] != 7 {
		t.Errorf("Set(1, 3) should write index 13 (column-major), got %v", m)
	}
	if m.At(1, 3) != 7 {
		t.Errorf("At(1, 3) = %v, want 7", m.At(1, 3))
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestTranspose(t *testing.T) {
	var m Mat4
	for i := range m {
		m[i] = float32(i)
	}
	tr := m.Transpose()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if tr.At(r, c) != m.At(c, r) {
				t.Fatalf("Transpose(%d,%d) = %v, want %v", r, c, tr.At(r, c), m.At(c, r))
			}
		}
	}
	if tr.Transpose() != m {
		t.Error("double transpose should be the original matrix")
	}
}

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		want float32
	}{
		{"identity", Identity(), 1},
		{"scale", Scale(2, 3, 4), 24},
		{"rotor", Rotor(1, 3, 1.1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Determinant(); abs(got-tt.want) > 1e-5 {
				t.Errorf("Determinant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrthonormalizeRestoresDrift(t *testing.T) {
	r := Bivector{XY: 0.3, XW: 1.2, YZ: -0.4, ZW: 0.9}.Rotor()

	// Simulate accumulated rounding error.
	drifted := r
	for i := range drifted {
		drifted[i] *= 1.01
	}
	drifted[3] += 0.02
	if drifted.IsOrthogonal(1e-4) {
		t.Fatal("test setup: drifted matrix should not be orthogonal")
	}

	fixed := drifted.Orthonormalize()
	if !fixed.IsOrthogonal(1e-5) {
		t.Errorf("Orthonormalize result is not orthogonal: %v", fixed)
	}
	if d := fixed.Determinant(); abs(d-1) > 1e-5 {
		t.Errorf("Orthonormalize determinant = %v, want 1", d)
	}
	for i := range fixed {
		if abs(fixed[i]-r[i]) > 0.05 {
			t.Errorf("element %d moved too far: got %v, want ~%v", i, fixed[i], r[i])
		}
	}
}

func TestOrthonormalizeSingular(t *testing.T) {
	var zero Mat4
	got := zero.Orthonormalize()
	if !got.IsOrthogonal(1e-6) {
		t.Errorf("Orthonormalize(0) should still yield a rotation, got %v", got)
	}
	if d := got.Determinant(); abs(d-1) > 1e-6 {
		t.Errorf("determinant = %v, want 1", d)
	}
}

func TestMulVec4(t *testing.T) {
	m := Scale(2, 3, 4)
	got := m.MulVec4(Vec4{1, 1, 1, 1})
	want := Vec4{2, 3, 4, 1}
	if got != want {
		t.Errorf("MulVec4 = %v, want %v", got, want)
	}
}
