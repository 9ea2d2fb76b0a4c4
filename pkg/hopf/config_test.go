package hopf

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/hopf-fibration/pkg/math"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
	for _, name := range PresetNames() {
		cfg, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", name, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Preset(%q).Validate() = %v", name, err)
		}
	}
}

func TestPresetUnknown(t *testing.T) {
	if _, err := Preset("spiral"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestPresetCopiesLatitudes(t *testing.T) {
	a, _ := Preset("bands")
	a.Latitudes[0] = 42
	b, _ := Preset("bands")
	if b.Latitudes[0] == 42 {
		t.Error("Preset returned a shared Latitudes slice")
	}
}

func TestCircles(t *testing.T) {
	tests := []struct {
		name   string
		preset string
		want   int
	}{
		{"bands", "bands", 32 * 8},
		{"grid", "grid", 5 * 32},
		{"single", "single", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _ := Preset(tt.preset)
			if got := len(Circles(cfg)); got != tt.want {
				t.Errorf("len(Circles) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCirclesGridLatitudes(t *testing.T) {
	cfg, _ := Preset("grid")
	circles := Circles(cfg)
	n := cfg.LongitudeBands

	if circles[0].Eta != 0 {
		t.Errorf("first latitude = %v, want 0", circles[0].Eta)
	}
	if last := circles[len(circles)-1].Eta; !approxEqual(last, gomath.Pi/2, 1e-6) {
		t.Errorf("last latitude = %v, want π/2", last)
	}
	if got := circles[n].Eta; !approxEqual(got, gomath.Pi/8, 1e-6) {
		t.Errorf("second band latitude = %v, want π/8", got)
	}
	if got := circles[1].Xi; !approxEqual(got, 2*gomath.Pi/32, 1e-6) {
		t.Errorf("second longitude = %v, want 2π/32", got)
	}
}

func TestCirclesSingleBand(t *testing.T) {
	cfg, _ := Preset("single")
	c := Circles(cfg)
	if len(c) != 1 || !approxEqual(c[0].Eta, gomath.Pi/4, 1e-6) || c[0].Xi != 0 {
		t.Errorf("Circles(single) = %v, want [{0 π/4}]", c)
	}
}

func TestCirclesExplicitLatitudes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Latitudes = []float32{0.1, 0.2}
	cfg.LongitudeBands = 3
	got := Circles(cfg)
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	if got[1].Eta != 0.2 || got[1].Xi != 0 {
		t.Errorf("got[1] = %v, want {0 0.2}", got[1])
	}
	if got[2].Eta != 0.1 || !approxEqual(got[2].Xi, 2*gomath.Pi/3, 1e-6) {
		t.Errorf("got[2] = %v, want {2π/3 0.1}", got[2])
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"wire res", func(c *Config) { c.WireRes = 1 }},
		{"longitudes", func(c *Config) { c.LongitudeBands = 0 }},
		{"latitudes", func(c *Config) { c.Latitudes = nil; c.LatitudeBands = 0 }},
		{"pole epsilon", func(c *Config) { c.PoleEpsilon = -1 }},
		{"nan radius", func(c *Config) { c.TubeRadius = float32(gomath.NaN()) }},
		{"nan latitude", func(c *Config) { c.Latitudes = []float32{float32(gomath.NaN())} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestConfigProjector(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scale = 3
	p := cfg.Projector(math.Identity())
	if p.Scale != 3 || p.PoleEpsilon != cfg.PoleEpsilon {
		t.Errorf("Projector = %+v", p)
	}
}
