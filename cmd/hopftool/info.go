package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/hopf-fibration/internal/config"
	"github.com/Faultbox/hopf-fibration/pkg/hopf"
	"github.com/Faultbox/hopf-fibration/pkg/math"
)

// report summarizes the meshes one configuration produces.
type report struct {
	Preset     string  `yaml:"preset"`
	Fibers     int     `yaml:"fibers"`
	Latitudes  int     `yaml:"latitudes"`
	Longitudes int     `yaml:"longitudes"`
	MajorRes   int     `yaml:"major_res"`
	MinorRes   int     `yaml:"minor_res"`
	TubeRadius float32 `yaml:"tube_radius"`

	Tube tubeReport `yaml:"tube"`
	Wire wireReport `yaml:"wire"`
}

type tubeReport struct {
	Vertices        int        `yaml:"vertices"`
	Triangles       int        `yaml:"triangles"`
	DegenerateRings int        `yaml:"degenerate_rings"`
	PoleSamples     int        `yaml:"pole_samples"`
	BoundsMin       [3]float32 `yaml:"bounds_min,flow"`
	BoundsMax       [3]float32 `yaml:"bounds_max,flow"`
	BuildMillis     float64    `yaml:"build_ms"`
}

type wireReport struct {
	Points   int `yaml:"points"`
	Segments int `yaml:"segments"`
}

// buildReport runs both pipelines with the identity rotor.
func buildReport(cfg *config.Config) (report, error) {
	fib, err := cfg.Fibration.Hopf()
	if err != nil {
		return report{}, err
	}

	start := time.Now()
	mesh, stats, err := hopf.BuildTubes(fib, fib.Projector(math.Identity()))
	if err != nil {
		return report{}, fmt.Errorf("build tubes: %w", err)
	}
	took := time.Since(start)

	wires, err := hopf.BuildWires(fib)
	if err != nil {
		return report{}, fmt.Errorf("build wires: %w", err)
	}

	latitudes := fib.LatitudeBands
	if len(fib.Latitudes) > 0 {
		latitudes = len(fib.Latitudes)
	}

	r := report{
		Preset:     cfg.Fibration.Preset,
		Fibers:     stats.Rings,
		Latitudes:  latitudes,
		Longitudes: fib.LongitudeBands,
		MajorRes:   fib.MajorRes,
		MinorRes:   fib.MinorRes,
		TubeRadius: fib.TubeRadius,
		Tube: tubeReport{
			Vertices:        stats.Vertices,
			Triangles:       stats.Triangles,
			DegenerateRings: stats.DegenerateRings,
			PoleSamples:     stats.PoleSamples,
			BuildMillis:     float64(took.Microseconds()) / 1000,
		},
		Wire: wireReport{
			Points:   len(wires.Points),
			Segments: wires.SegmentCount(),
		},
	}
	if lo, hi, ok := mesh.Bounds(); ok {
		r.Tube.BoundsMin = lo.Array()
		r.Tube.BoundsMax = hi.Array()
	}
	return r, nil
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	asYAML := fs.Bool("yaml", false, "Print the report as YAML")
	o := registerOptions(fs)
	cfg := mustLoad(fs, o, args)

	r, err := buildReport(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *asYAML {
		data, err := yaml.Marshal(r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	fmt.Printf("Preset:     %s\n", r.Preset)
	fmt.Printf("Fibers:     %d (%d latitudes x %d longitudes)\n", r.Fibers, r.Latitudes, r.Longitudes)
	fmt.Printf("Resolution: %d x %d, radius %g\n", r.MajorRes, r.MinorRes, r.TubeRadius)
	fmt.Println()
	fmt.Println("Tube mesh:")
	fmt.Printf("  Vertices:   %d\n", r.Tube.Vertices)
	fmt.Printf("  Triangles:  %d\n", r.Tube.Triangles)
	fmt.Printf("  Degenerate: %d rings, %d pole samples\n", r.Tube.DegenerateRings, r.Tube.PoleSamples)
	fmt.Printf("  Bounds:     %v .. %v\n", r.Tube.BoundsMin, r.Tube.BoundsMax)
	fmt.Printf("  Build:      %.2f ms\n", r.Tube.BuildMillis)
	fmt.Println()
	fmt.Println("Wire mesh:")
	fmt.Printf("  Points:     %d\n", r.Wire.Points)
	fmt.Printf("  Segments:   %d\n", r.Wire.Segments)
}
