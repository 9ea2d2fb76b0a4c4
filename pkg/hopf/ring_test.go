package hopf

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/hopf-fibration/pkg/math"
)

func TestSampleRingInvalidResolution(t *testing.T) {
	_, err := SampleRing(Circle{Eta: 1}, NewProjector(math.Identity()), 2)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSampleRingEquator(t *testing.T) {
	// eta = π/2 with no rotation is the unit circle in the xy plane,
	// halved by the default scale.
	r, err := SampleRing(Circle{Eta: gomath.Pi / 2}, NewProjector(math.Identity()), 64)
	if err != nil {
		t.Fatalf("SampleRing: %v", err)
	}
	if r.Degenerate {
		t.Error("equator ring should not be degenerate")
	}
	if r.PoleSamples != 0 {
		t.Errorf("PoleSamples = %d, want 0", r.PoleSamples)
	}
	if r.Centroid.Length() > 1e-5 {
		t.Errorf("Centroid = %v, want origin", r.Centroid)
	}
	if !approxEqual(abs32(r.Normal.Z), 1, 1e-5) {
		t.Errorf("Normal = %v, want ±Z", r.Normal)
	}
	for i, p := range r.Points {
		if l := p.Length(); !approxEqual(l, 0.5, 1e-5) {
			t.Fatalf("point %d at radius %v, want 0.5", i, l)
		}
		if d := r.Binormals[i].Dot(r.Normal); !approxEqual(d, 0, 1e-5) {
			t.Errorf("binormal %d not orthogonal to normal (dot %v)", i, d)
		}
	}
}

func TestSampleRingThroughPole(t *testing.T) {
	// eta = 0 with no rotation passes through the projection pole and
	// projects onto the z axis.
	r, err := SampleRing(Circle{Eta: 0}, NewProjector(math.Identity()), 64)
	if err != nil {
		t.Fatalf("SampleRing: %v", err)
	}
	if !r.Degenerate {
		t.Error("ring through the pole should be degenerate")
	}
	if r.PoleSamples == 0 {
		t.Error("expected at least one pole sample")
	}
	if !r.Normal.IsFinite() || !approxEqual(r.Normal.Length(), 1, 1e-5) {
		t.Errorf("Normal = %v, want finite unit vector", r.Normal)
	}
	if !approxEqual(r.Normal.Z, 0, 1e-5) {
		t.Errorf("Normal = %v, want orthogonal to the z axis", r.Normal)
	}
	for i, b := range r.Binormals {
		if !b.IsFinite() || !approxEqual(b.Length(), 1, 1e-5) {
			t.Fatalf("binormal %d = %v, want finite unit vector", i, b)
		}
	}
}

func TestBuildTubeClosure(t *testing.T) {
	const major, minor = 32, 8
	r, err := SampleRing(Circle{Xi: 0.4, Eta: 0.9}, NewProjector(math.Bivector{XW: 0.3, YZ: 0.2}.Rotor()), major)
	if err != nil {
		t.Fatalf("SampleRing: %v", err)
	}
	m := BuildTube(r, 0.02, minor)

	if got, want := len(m.Vertices), major*minor; got != want {
		t.Errorf("vertex count = %d, want %d", got, want)
	}
	if got, want := len(m.Indices), major*minor*6; got != want {
		t.Errorf("index count = %d, want %d", got, want)
	}
	if got, want := m.TriangleCount(), 2*major*minor; got != want {
		t.Errorf("TriangleCount = %d, want %d", got, want)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	refs := make([]int, len(m.Vertices))
	for _, idx := range m.Indices {
		refs[idx]++
	}
	for v, n := range refs {
		if n != 6 {
			t.Fatalf("vertex %d referenced %d times, want 6", v, n)
		}
	}
}

func TestBuildTubeFirstCell(t *testing.T) {
	r, err := SampleRing(Circle{Eta: 1}, NewProjector(math.Identity()), 4)
	if err != nil {
		t.Fatalf("SampleRing: %v", err)
	}
	m := BuildTube(r, 0.1, 3)

	want := []uint32{0, 3, 1, 1, 3, 4}
	for i, w := range want {
		if m.Indices[i] != w {
			t.Fatalf("Indices[:6] = %v, want %v", m.Indices[:6], want)
		}
	}

	// Last cell wraps in both directions back to vertex 0.
	last := m.Indices[len(m.Indices)-6:]
	wantLast := []uint32{11, 2, 9, 9, 2, 0}
	for i, w := range wantLast {
		if last[i] != w {
			t.Fatalf("last cell = %v, want %v", last, wantLast)
		}
	}
}

func TestBuildTubeRadius(t *testing.T) {
	const radius = 0.05
	const minor = 6
	r, err := SampleRing(Circle{Xi: 2, Eta: 0.7}, NewProjector(math.Rotor(1, 2, 0.5)), 48)
	if err != nil {
		t.Fatalf("SampleRing: %v", err)
	}
	m := BuildTube(r, radius, minor)

	for i, pt := range r.Points {
		for j := 0; j < minor; j++ {
			v := m.Vertices[i*minor+j]
			p := math.Vec3{X: v.Position[0], Y: v.Position[1], Z: v.Position[2]}
			if d := p.Distance(pt); !approxEqual(d, radius, 1e-4) {
				t.Fatalf("vertex (%d,%d) at distance %v from ring, want %v", i, j, d, radius)
			}
			n := math.Vec3{X: v.Normal[0], Y: v.Normal[1], Z: v.Normal[2]}
			if !approxEqual(n.Length(), 1, 1e-5) {
				t.Fatalf("vertex (%d,%d) normal length %v", i, j, n.Length())
			}
			if v.Source != r.Sources[i].Array() {
				t.Fatalf("vertex (%d,%d) source %v, want %v", i, j, v.Source, r.Sources[i])
			}
		}
	}
}

func TestBuildTubeTooCoarse(t *testing.T) {
	r, err := SampleRing(Circle{Eta: 1}, NewProjector(math.Identity()), 8)
	if err != nil {
		t.Fatalf("SampleRing: %v", err)
	}
	if m := BuildTube(r, 0.1, 2); len(m.Vertices) != 0 || len(m.Indices) != 0 {
		t.Errorf("minorRes 2 should give an empty mesh, got %d vertices", len(m.Vertices))
	}
}

func TestBuildRingPoleCases(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MajorRes = 64
	cfg.MinorRes = 8

	tests := []struct {
		name   string
		circle Circle
		rotor  math.Mat4
	}{
		{"eta 0", Circle{Eta: 0}, math.Identity()},
		{"eta pi/2", Circle{Eta: gomath.Pi / 2}, math.Identity()},
		{"rotated onto pole", Circle{Eta: gomath.Pi / 2}, math.Rotor(0, 3, gomath.Pi/2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, err := BuildRing(tt.circle, cfg.Projector(tt.rotor), cfg)
			if err != nil {
				t.Fatalf("BuildRing: %v", err)
			}
			if err := m.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}

func TestBuildRingInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"major", func(c *Config) { c.MajorRes = 2 }},
		{"minor", func(c *Config) { c.MinorRes = 0 }},
		{"radius zero", func(c *Config) { c.TubeRadius = 0 }},
		{"radius negative", func(c *Config) { c.TubeRadius = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, _, err := BuildRing(Circle{Eta: 1}, NewProjector(math.Identity()), cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
