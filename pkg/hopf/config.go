package hopf

import (
	"fmt"
	gomath "math"
	"sort"

	"github.com/Faultbox/hopf-fibration/pkg/math"
)

// Config selects which fibers are drawn and how finely they are meshed.
type Config struct {
	MajorRes   int     // samples along each fiber (tube mode)
	MinorRes   int     // samples around the tube cross-section
	TubeRadius float32 // tube radius in projected units
	WireRes    int     // samples along each fiber (wire mode)

	// Latitudes, when set, lists the fiber latitudes explicitly.
	// Otherwise LatitudeBands evenly spaced latitudes in [0, π/2] are used.
	Latitudes      []float32
	LatitudeBands  int
	LongitudeBands int

	Scale       float32
	PoleEpsilon float32
}

// DefaultConfig returns the "bands" preset.
func DefaultConfig() Config {
	cfg, _ := Preset("bands")
	return cfg
}

// bandLatitudes are the fiber latitudes of the "bands" preset: two thin
// rings near the poles of the base sphere plus two groups of three.
var bandLatitudes = []float32{
	0.025, gomath.Pi/2 - 0.025,
	0.3, 0.4, 0.5,
	1.1, 1.2, 1.3,
}

var presets = map[string]Config{
	"bands": {
		MajorRes:       128,
		MinorRes:       12,
		TubeRadius:     0.01,
		WireRes:        512,
		Latitudes:      bandLatitudes,
		LongitudeBands: 32,
		Scale:          DefaultScale,
		PoleEpsilon:    DefaultPoleEpsilon,
	},
	"grid": {
		MajorRes:       96,
		MinorRes:       8,
		TubeRadius:     0.008,
		WireRes:        1024,
		LatitudeBands:  5,
		LongitudeBands: 32,
		Scale:          DefaultScale,
		PoleEpsilon:    DefaultPoleEpsilon,
	},
	"single": {
		MajorRes:       256,
		MinorRes:       24,
		TubeRadius:     0.03,
		WireRes:        512,
		LatitudeBands:  1,
		LongitudeBands: 1,
		Scale:          DefaultScale,
		PoleEpsilon:    DefaultPoleEpsilon,
	},
}

// Preset returns a named configuration.
func Preset(name string) (Config, error) {
	cfg, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, name)
	}
	cfg.Latitudes = append([]float32(nil), cfg.Latitudes...)
	return cfg, nil
}

// PresetNames returns the known preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate reports settings that cannot produce a closed mesh.
func (c Config) Validate() error {
	switch {
	case c.MajorRes < 3:
		return fmt.Errorf("%w: major resolution %d < 3", ErrInvalidConfig, c.MajorRes)
	case c.MinorRes < 3:
		return fmt.Errorf("%w: minor resolution %d < 3", ErrInvalidConfig, c.MinorRes)
	case !(c.TubeRadius > 0) || gomath.IsInf(float64(c.TubeRadius), 0):
		return fmt.Errorf("%w: tube radius %g must be positive", ErrInvalidConfig, c.TubeRadius)
	case c.WireRes < 2:
		return fmt.Errorf("%w: wire resolution %d < 2", ErrInvalidConfig, c.WireRes)
	case c.LongitudeBands < 1:
		return fmt.Errorf("%w: longitude bands %d < 1", ErrInvalidConfig, c.LongitudeBands)
	case len(c.Latitudes) == 0 && c.LatitudeBands < 1:
		return fmt.Errorf("%w: latitude bands %d < 1", ErrInvalidConfig, c.LatitudeBands)
	case c.PoleEpsilon < 0:
		return fmt.Errorf("%w: pole epsilon %g < 0", ErrInvalidConfig, c.PoleEpsilon)
	}
	for _, eta := range c.Latitudes {
		if gomath.IsNaN(float64(eta)) || gomath.IsInf(float64(eta), 0) {
			return fmt.Errorf("%w: latitude %g", ErrInvalidConfig, eta)
		}
	}
	return nil
}

// Projector returns a projector with the scale and pole epsilon of c.
func (c Config) Projector(rotor math.Mat4) Projector {
	return Projector{Rotor: rotor, Scale: c.Scale, PoleEpsilon: c.PoleEpsilon}
}

// Circles enumerates the fibers selected by c. Longitudes are 2πk/N.
// With explicit Latitudes every longitude gets one fiber per latitude;
// otherwise latitude i of L is i/(L-1)·π/2, and a single band sits at π/4.
func Circles(c Config) []Circle {
	n := c.LongitudeBands
	if n < 1 {
		return nil
	}
	xi := func(k int) float32 {
		return float32(2 * gomath.Pi * float64(k) / float64(n))
	}

	if len(c.Latitudes) > 0 {
		out := make([]Circle, 0, n*len(c.Latitudes))
		for k := 0; k < n; k++ {
			for _, eta := range c.Latitudes {
				out = append(out, Circle{Xi: xi(k), Eta: eta})
			}
		}
		return out
	}

	l := c.LatitudeBands
	if l < 1 {
		return nil
	}
	out := make([]Circle, 0, n*l)
	for i := 0; i < l; i++ {
		eta := float32(gomath.Pi / 4)
		if l > 1 {
			eta = float32(float64(i) / float64(l-1) * gomath.Pi / 2)
		}
		for k := 0; k < n; k++ {
			out = append(out, Circle{Xi: xi(k), Eta: eta})
		}
	}
	return out
}
