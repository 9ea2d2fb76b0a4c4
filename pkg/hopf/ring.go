package hopf

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/hopf-fibration/pkg/math"
)

// Ring is one fiber sampled, rotated and projected into R³, together with
// the frame used to sweep a tube around it.
type Ring struct {
	Circle    Circle
	Points    []math.Vec3 // projected samples
	Sources   []math.Vec4 // rotated S³ samples
	Centroid  math.Vec3
	Normal    math.Vec3   // shared by all samples
	Binormals []math.Vec3 // one per sample, unit length

	// Degenerate is set when the frame needed a fallback: the samples
	// were collinear (a fiber through the projection pole becomes a line)
	// or a sample coincided with the centroid.
	Degenerate bool

	// PoleSamples counts samples whose denominator was clamped.
	PoleSamples int
}

// SampleRing samples majorRes points of the fiber over one full period,
// projects them with p and derives the sweep frame:
//
//	centroid = mean of the samples
//	normal   = normalize((P(0)-centroid) × (P(π)-centroid))
//	binormal = normalize(P(nu_i) - centroid)
//
// P(π), a quarter of the period, is evaluated directly so majorRes need not
// be a multiple of four.
func SampleRing(c Circle, p Projector, majorRes int) (Ring, error) {
	if majorRes < 3 {
		return Ring{}, fmt.Errorf("%w: major resolution %d < 3", ErrInvalidConfig, majorRes)
	}

	r := Ring{
		Circle:    c,
		Points:    make([]math.Vec3, majorRes),
		Sources:   make([]math.Vec4, majorRes),
		Binormals: make([]math.Vec3, majorRes),
	}

	var sx, sy, sz float64
	for i := 0; i < majorRes; i++ {
		nu := float32(FiberPeriod * float64(i) / float64(majorRes))
		src := p.Rotate(c.Point(nu))
		pt, pole := p.projectRotated(src)
		if pole {
			r.PoleSamples++
		}
		if !src.IsFinite() || !pt.IsFinite() {
			return Ring{}, fmt.Errorf("%w: fiber (xi=%g, eta=%g) sample %d", ErrDegenerateGeometry, c.Xi, c.Eta, i)
		}
		r.Sources[i] = src
		r.Points[i] = pt
		sx += float64(pt.X)
		sy += float64(pt.Y)
		sz += float64(pt.Z)
	}
	n := float64(majorRes)
	r.Centroid = math.Vec3{X: float32(sx / n), Y: float32(sy / n), Z: float32(sz / n)}

	first, _ := p.projectRotated(p.Rotate(c.Point(0)))
	quarter, _ := p.projectRotated(p.Rotate(c.Point(gomath.Pi)))
	normal, err := first.Sub(r.Centroid).Cross(quarter.Sub(r.Centroid)).NormalizeChecked()
	if err != nil {
		r.Degenerate = true
		r.lineFrame()
		return r, nil
	}
	r.Normal = normal

	for i, pt := range r.Points {
		b, err := pt.Sub(r.Centroid).NormalizeChecked()
		if err != nil {
			r.Degenerate = true
			b = normal.AnyOrthogonal()
		}
		r.Binormals[i] = b
	}
	return r, nil
}

// lineFrame builds the frame for collinear samples: the normal is any
// direction orthogonal to the line and every binormal completes it to a
// right-handed pair, so the tube becomes a cylinder around the line.
// When all samples coincide the normal is +Z.
func (r *Ring) lineFrame() {
	var dir math.Vec3
	var far float32
	for _, pt := range r.Points {
		d := pt.Sub(r.Centroid)
		if l := d.Length(); l > far {
			far, dir = l, d
		}
	}

	r.Normal = math.Vec3{Z: 1}
	if far >= math.Epsilon {
		r.Normal = dir.AnyOrthogonal()
	}
	b, err := r.Normal.Cross(dir).NormalizeChecked()
	if err != nil {
		b = r.Normal.AnyOrthogonal()
	}
	for i := range r.Binormals {
		r.Binormals[i] = b
	}
}

// BuildTube sweeps a circle of tubeRadius around every sample of r:
//
//	p_ij = point_i + tubeRadius·(cos θ_j·normal + sin θ_j·binormal_i),  θ_j = 2πj/minorRes
//
// Vertex (i, j) has index i*minorRes + j. Each grid cell yields the
// triangles (i,j),(i+1,j),(i,j+1) and (i,j+1),(i+1,j),(i+1,j+1) with both
// directions wrapping, so the surface is closed and every vertex is
// referenced by exactly six index entries. Fewer than three samples or
// minorRes < 3 give an empty mesh.
func BuildTube(r Ring, tubeRadius float32, minorRes int) Mesh {
	major := len(r.Points)
	if major < 3 || minorRes < 3 {
		return Mesh{Primitive: Triangles}
	}

	// Cross-section directions are shared by every ring sample.
	cosT := make([]float32, minorRes)
	sinT := make([]float32, minorRes)
	for j := 0; j < minorRes; j++ {
		s, c := gomath.Sincos(2 * gomath.Pi * float64(j) / float64(minorRes))
		cosT[j], sinT[j] = float32(c), float32(s)
	}

	mesh := Mesh{
		Vertices:  make([]Vertex, 0, major*minorRes),
		Indices:   make([]uint32, 0, major*minorRes*6),
		Primitive: Triangles,
	}

	for i, pt := range r.Points {
		b := r.Binormals[i]
		src := r.Sources[i].Array()
		for j := 0; j < minorRes; j++ {
			dir := r.Normal.Scale(cosT[j]).Add(b.Scale(sinT[j]))
			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: pt.Add(dir.Scale(tubeRadius)).Array(),
				Normal:   dir.Normalize().Array(),
				Source:   src,
			})
		}
	}

	idx := func(i, j int) uint32 {
		return uint32((i%major)*minorRes + j%minorRes)
	}
	for i := 0; i < major; i++ {
		for j := 0; j < minorRes; j++ {
			a, b, c, d := idx(i, j), idx(i+1, j), idx(i, j+1), idx(i+1, j+1)
			mesh.Indices = append(mesh.Indices, a, b, c, c, b, d)
		}
	}
	return mesh
}

// BuildRing samples the fiber with the resolutions of cfg and sweeps its tube.
func BuildRing(c Circle, p Projector, cfg Config) (Mesh, Ring, error) {
	if err := cfg.Validate(); err != nil {
		return Mesh{}, Ring{}, err
	}
	r, err := SampleRing(c, p, cfg.MajorRes)
	if err != nil {
		return Mesh{}, Ring{}, err
	}
	return BuildTube(r, cfg.TubeRadius, cfg.MinorRes), r, nil
}
