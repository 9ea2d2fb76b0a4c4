package main

import (
	"flag"
	"fmt"
	gomath "math"
	"os"

	"github.com/Faultbox/hopf-fibration/pkg/hopf"
	"github.com/Faultbox/hopf-fibration/pkg/math"
)

// check is one named invariant of the fibration pipeline.
type check struct {
	name string
	run  func(cfg hopf.Config) error
}

var checks = []check{
	{"reference point", checkReferencePoint},
	{"unit sphere", checkUnitSphere},
	{"rotor orthogonality", checkRotors},
	{"ring closure", checkRingClosure},
	{"aggregation", checkAggregation},
	{"pole safety", checkPoleSafety},
	{"wire loops", checkWires},
}

// checkResult is the outcome of one check.
type checkResult struct {
	Name string
	Err  error
}

// runChecks runs every check against cfg.
func runChecks(cfg hopf.Config) []checkResult {
	results := make([]checkResult, 0, len(checks))
	for _, c := range checks {
		results = append(results, checkResult{Name: c.name, Err: c.run(cfg)})
	}
	return results
}

func cmdCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	o := registerOptions(fs)
	cfg := mustLoad(fs, o, args)

	fib, err := cfg.Fibration.Hopf()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, r := range runChecks(fib) {
		if r.Err != nil {
			failed++
			fmt.Printf("FAIL  %-20s %v\n", r.Name, r.Err)
			continue
		}
		fmt.Printf("ok    %s\n", r.Name)
	}
	if failed > 0 {
		fmt.Printf("\n%d of %d checks failed\n", failed, len(checks))
		os.Exit(1)
	}
}

const checkTolerance = 1e-5

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) <= checkTolerance
}

func checkReferencePoint(hopf.Config) error {
	got := hopf.Map(0, 0, gomath.Pi/4)
	want := math.Vec4{X: 0.70710677, Z: 0.70710677}
	if !near(got.X, want.X) || !near(got.Y, want.Y) || !near(got.Z, want.Z) || !near(got.W, want.W) {
		return fmt.Errorf("Map(0, 0, π/4) = %+v, want %+v", got, want)
	}
	return nil
}

func checkUnitSphere(cfg hopf.Config) error {
	for _, c := range hopf.Circles(cfg) {
		for i := 0; i < cfg.MajorRes; i++ {
			nu := float32(hopf.FiberPeriod * float64(i) / float64(cfg.MajorRes))
			p := c.Point(nu)
			if l := p.Length(); !near(l, 1) {
				return fmt.Errorf("fiber %+v at nu=%g has length %g", c, nu, l)
			}
		}
	}
	return nil
}

func checkRotors(hopf.Config) error {
	planes := []math.Plane{math.PlaneXY, math.PlaneXZ, math.PlaneXW, math.PlaneYZ, math.PlaneYW, math.PlaneZW}
	angles := []float32{0, 0.3, gomath.Pi / 2, 2.5, -1}
	for _, p := range planes {
		for _, theta := range angles {
			r := p.Rotor(theta)
			if !r.IsOrthogonal(checkTolerance) {
				return fmt.Errorf("rotor %v(%g) is not orthogonal", p, theta)
			}
			back := r.Mul(p.Rotor(-theta))
			id := math.Identity()
			for i := range back {
				if !near(back[i], id[i]) {
					return fmt.Errorf("rotor %v(%g) times its inverse is not identity", p, theta)
				}
			}
		}
	}
	return nil
}

func checkRingClosure(cfg hopf.Config) error {
	p := cfg.Projector(math.Identity())
	for _, c := range hopf.Circles(cfg) {
		m, _, err := hopf.BuildRing(c, p, cfg)
		if err != nil {
			return err
		}
		refs := make([]int, len(m.Vertices))
		for _, idx := range m.Indices {
			refs[idx]++
		}
		for i, n := range refs {
			if n != 6 {
				return fmt.Errorf("fiber %+v: vertex %d referenced %d times, want 6", c, i, n)
			}
		}
	}
	return nil
}

func checkAggregation(cfg hopf.Config) error {
	m, stats, err := hopf.BuildTubes(cfg, cfg.Projector(math.Identity()))
	if err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}
	want := len(hopf.Circles(cfg)) * cfg.MajorRes * cfg.MinorRes
	if stats.Vertices != want {
		return fmt.Errorf("%d vertices, want %d", stats.Vertices, want)
	}
	if stats.Triangles != 2*want {
		return fmt.Errorf("%d triangles, want %d", stats.Triangles, 2*want)
	}
	return nil
}

// checkPoleSafety turns X into W so (1,0,0,0) lands on the projection pole.
func checkPoleSafety(cfg hopf.Config) error {
	p := cfg.Projector(math.Rotor(0, 3, gomath.Pi/2))
	if !p.NearPole(math.Vec4{X: 1}) {
		return fmt.Errorf("(1,0,0,0) not at the pole, denominator %g", p.Denominator(math.Vec4{X: 1}))
	}
	if q := p.Project(math.Vec4{X: 1}); !q.IsFinite() {
		return fmt.Errorf("pole projects to %+v", q)
	}
	m, _, err := hopf.BuildTubes(cfg, p)
	if err != nil {
		return err
	}
	return m.Validate()
}

func checkWires(cfg hopf.Config) error {
	m, err := hopf.BuildWires(cfg)
	if err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}
	if want := len(hopf.Circles(cfg)) * cfg.WireRes; m.SegmentCount() != want {
		return fmt.Errorf("%d segments, want %d", m.SegmentCount(), want)
	}
	return nil
}
