package hopf

import (
	"fmt"

	"github.com/Faultbox/hopf-fibration/pkg/math"
)

// BuildStats summarizes one pipeline run.
type BuildStats struct {
	Rings           int
	Vertices        int
	Triangles       int
	DegenerateRings int
	PoleSamples     int
}

// BuildTubes runs the whole pipeline for every fiber of cfg and aggregates
// the tubes into one mesh suitable for a single draw call.
func BuildTubes(cfg Config, p Projector) (Mesh, BuildStats, error) {
	var stats BuildStats
	if err := cfg.Validate(); err != nil {
		return Mesh{}, stats, err
	}

	circles := Circles(cfg)
	perRing := cfg.MajorRes * cfg.MinorRes
	out := Mesh{
		Vertices:  make([]Vertex, 0, len(circles)*perRing),
		Indices:   make([]uint32, 0, len(circles)*perRing*6),
		Primitive: Triangles,
	}

	for _, c := range circles {
		r, err := SampleRing(c, p, cfg.MajorRes)
		if err != nil {
			return Mesh{}, stats, fmt.Errorf("ring %d: %w", stats.Rings, err)
		}
		out.Append(BuildTube(r, cfg.TubeRadius, cfg.MinorRes))

		stats.Rings++
		stats.PoleSamples += r.PoleSamples
		if r.Degenerate {
			stats.DegenerateRings++
		}
	}

	stats.Vertices = len(out.Vertices)
	stats.Triangles = out.TriangleCount()
	return out, stats, nil
}

// BuildWires aggregates the unprojected fiber loops of cfg.
func BuildWires(cfg Config) (LineMesh, error) {
	if err := cfg.Validate(); err != nil {
		return LineMesh{}, err
	}
	circles := Circles(cfg)
	out := LineMesh{
		Points:  make([]math.Vec4, 0, len(circles)*cfg.WireRes),
		Indices: make([]uint32, 0, len(circles)*cfg.WireRes*2),
	}
	for _, c := range circles {
		out.Append(BuildFiber(c, cfg.WireRes))
	}
	return out, nil
}
