package hopf

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/hopf-fibration/pkg/math"
)

// Primitive is the GL primitive a mesh's indices describe.
type Primitive int

const (
	Triangles Primitive = iota
	Lines
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	default:
		return fmt.Sprintf("Primitive(%d)", int(p))
	}
}

// Vertex is the interleaved tube vertex uploaded to the GPU.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Source   [4]float32 // rotated S³ point, drives axis coloring
}

// VertexStride is the byte size of one Vertex.
const VertexStride = 10 * 4

// Mesh is an indexed triangle mesh in R³.
type Mesh struct {
	Vertices  []Vertex
	Indices   []uint32
	Primitive Primitive
}

// TriangleCount returns the number of triangles described by the indices.
func (m *Mesh) TriangleCount() int {
	if m.Primitive != Triangles {
		return 0
	}
	return len(m.Indices) / 3
}

// Append adds part to m, offsetting part's indices by the current vertex count.
func (m *Mesh) Append(part Mesh) {
	offset := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, part.Vertices...)
	for _, idx := range part.Indices {
		m.Indices = append(m.Indices, idx+offset)
	}
}

// Merge concatenates parts into a single mesh.
func Merge(parts ...Mesh) Mesh {
	var nv, ni int
	for _, p := range parts {
		nv += len(p.Vertices)
		ni += len(p.Indices)
	}
	out := Mesh{
		Vertices: make([]Vertex, 0, nv),
		Indices:  make([]uint32, 0, ni),
	}
	if len(parts) > 0 {
		out.Primitive = parts[0].Primitive
	}
	for _, p := range parts {
		out.Append(p)
	}
	return out
}

// Validate checks that every index refers to an existing vertex and that
// every vertex attribute is finite.
func (m *Mesh) Validate() error {
	n := uint32(len(m.Vertices))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: indices[%d] = %d, vertex count %d", ErrDanglingIndex, i, idx, n)
		}
	}
	for i, v := range m.Vertices {
		if !finite(v.Position[:]) || !finite(v.Normal[:]) || !finite(v.Source[:]) {
			return fmt.Errorf("%w: vertex %d %+v", ErrNonFinite, i, v)
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounds of all vertex positions.
// ok is false for an empty mesh.
func (m *Mesh) Bounds() (lo, hi math.Vec3, ok bool) {
	if len(m.Vertices) == 0 {
		return lo, hi, false
	}
	p := m.Vertices[0].Position
	lo = math.Vec3{X: p[0], Y: p[1], Z: p[2]}
	hi = lo
	for _, v := range m.Vertices[1:] {
		p := v.Position
		lo.X, hi.X = minf(lo.X, p[0]), maxf(hi.X, p[0])
		lo.Y, hi.Y = minf(lo.Y, p[1]), maxf(hi.Y, p[1])
		lo.Z, hi.Z = minf(lo.Z, p[2]), maxf(hi.Z, p[2])
	}
	return lo, hi, true
}

// LineMesh is a set of unprojected S³ points joined by line segments.
// Indices come in pairs (GL_LINES) so several fibers share one draw call.
type LineMesh struct {
	Points  []math.Vec4
	Indices []uint32
}

// SegmentCount returns the number of line segments.
func (m *LineMesh) SegmentCount() int {
	return len(m.Indices) / 2
}

// Append adds part to m, offsetting part's indices by the current point count.
func (m *LineMesh) Append(part LineMesh) {
	offset := uint32(len(m.Points))
	m.Points = append(m.Points, part.Points...)
	for _, idx := range part.Indices {
		m.Indices = append(m.Indices, idx+offset)
	}
}

// Validate checks indices and coordinates like Mesh.Validate.
func (m *LineMesh) Validate() error {
	n := uint32(len(m.Points))
	if len(m.Indices)%2 != 0 {
		return fmt.Errorf("%w: odd index count %d", ErrDanglingIndex, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: indices[%d] = %d, point count %d", ErrDanglingIndex, i, idx, n)
		}
	}
	for i, p := range m.Points {
		if !p.IsFinite() {
			return fmt.Errorf("%w: point %d %v", ErrNonFinite, i, p)
		}
	}
	return nil
}

// Floats flattens the points for upload as a vec4 attribute.
func (m *LineMesh) Floats() []float32 {
	out := make([]float32, 0, len(m.Points)*4)
	for _, p := range m.Points {
		out = append(out, p.X, p.Y, p.Z, p.W)
	}
	return out
}

func finite(vs []float32) bool {
	for _, f := range vs {
		if gomath.IsNaN(float64(f)) || gomath.IsInf(float64(f), 0) {
			return false
		}
	}
	return true
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
