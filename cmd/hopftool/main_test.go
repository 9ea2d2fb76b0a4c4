package main

import (
	"testing"

	"github.com/Faultbox/hopf-fibration/internal/config"
	"github.com/Faultbox/hopf-fibration/pkg/hopf"
)

func smallConfig(t *testing.T, preset string) hopf.Config {
	t.Helper()
	cfg, err := hopf.Preset(preset)
	if err != nil {
		t.Fatalf("Preset(%s): %v", preset, err)
	}
	cfg.MajorRes = 24
	cfg.MinorRes = 4
	cfg.WireRes = 32
	if cfg.LongitudeBands > 4 {
		cfg.LongitudeBands = 4
	}
	return cfg
}

func TestRunChecks(t *testing.T) {
	for _, preset := range hopf.PresetNames() {
		t.Run(preset, func(t *testing.T) {
			results := runChecks(smallConfig(t, preset))
			if len(results) != len(checks) {
				t.Fatalf("got %d results, want %d", len(results), len(checks))
			}
			for _, r := range results {
				if r.Err != nil {
					t.Errorf("%s: %v", r.Name, r.Err)
				}
			}
		})
	}
}

func TestExportMesh(t *testing.T) {
	cfg := smallConfig(t, "grid")
	fibers := len(hopf.Circles(cfg))

	tests := []struct {
		name      string
		wire      bool
		primitive hopf.Primitive
		vertices  int
		count     int
	}{
		{"tubes", false, hopf.Triangles, fibers * 24 * 4, fibers * 24 * 4 * 2},
		{"wires", true, hopf.Lines, fibers * 32, fibers * 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := exportMesh(cfg, tt.wire)
			if err != nil {
				t.Fatalf("exportMesh: %v", err)
			}
			if m.Primitive != tt.primitive {
				t.Errorf("primitive = %v, want %v", m.Primitive, tt.primitive)
			}
			if len(m.Vertices) != tt.vertices {
				t.Errorf("vertices = %d, want %d", len(m.Vertices), tt.vertices)
			}
			if got := primitiveCount(m); got != tt.count {
				t.Errorf("primitives = %d, want %d", got, tt.count)
			}
			if err := m.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}

func TestBuildReport(t *testing.T) {
	cfg := config.Default()
	cfg.Fibration.Preset = "single"
	cfg.Fibration.MajorRes = 32
	cfg.Fibration.MinorRes = 5

	r, err := buildReport(cfg)
	if err != nil {
		t.Fatalf("buildReport: %v", err)
	}
	if r.Fibers != 1 || r.Tube.Vertices != 32*5 || r.Tube.Triangles != 32*5*2 {
		t.Errorf("report = %+v", r)
	}
	if r.Wire.Segments != r.Wire.Points {
		t.Errorf("wire loop has %d points and %d segments", r.Wire.Points, r.Wire.Segments)
	}
	for i := 0; i < 3; i++ {
		if r.Tube.BoundsMin[i] > r.Tube.BoundsMax[i] {
			t.Errorf("bounds axis %d inverted: %v > %v", i, r.Tube.BoundsMin[i], r.Tube.BoundsMax[i])
		}
	}
}

func TestOptionsLoad(t *testing.T) {
	o := &options{preset: "grid", major: 40, latitudes: 3}
	cfg, err := o.load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	fib, err := cfg.Fibration.Hopf()
	if err != nil {
		t.Fatalf("Hopf: %v", err)
	}
	if fib.MajorRes != 40 || fib.LatitudeBands != 3 || len(fib.Latitudes) != 0 {
		t.Errorf("fibration = %+v", fib)
	}

	bad := &options{preset: "spiral"}
	if _, err := bad.load(); err == nil {
		t.Error("unknown preset accepted")
	}
}
