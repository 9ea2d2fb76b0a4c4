package hopf

import "github.com/Faultbox/hopf-fibration/pkg/math"

// BuildFiber samples res points of the fiber over one full period without
// rotating or projecting them, joined into a closed loop of line segments.
// The wireframe viewer uploads these once and rotates on the GPU.
// res < 2 gives an empty mesh.
func BuildFiber(c Circle, res int) LineMesh {
	if res < 2 {
		return LineMesh{}
	}
	m := LineMesh{
		Points:  make([]math.Vec4, res),
		Indices: make([]uint32, 0, res*2),
	}
	for k := 0; k < res; k++ {
		m.Points[k] = c.Point(float32(FiberPeriod * float64(k) / float64(res)))
		m.Indices = append(m.Indices, uint32(k), uint32((k+1)%res))
	}
	return m
}
