package hopf

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ writes m as a Wavefront OBJ file with positions, normals and
// one face (or line) per primitive. The mesh is validated first.
func WriteOBJ(w io.Writer, m Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# hopf fibration: %d vertices, %d %s\n", len(m.Vertices), primitiveCount(m), m.Primitive)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.Position[0], v.Position[1], v.Position[2])
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal[0], v.Normal[1], v.Normal[2])
	}

	// OBJ indices are 1-based.
	switch m.Primitive {
	case Lines:
		for i := 0; i+1 < len(m.Indices); i += 2 {
			fmt.Fprintf(bw, "l %d %d\n", m.Indices[i]+1, m.Indices[i+1]+1)
		}
	default:
		for i := 0; i+2 < len(m.Indices); i += 3 {
			a, b, c := m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		}
	}
	return bw.Flush()
}

func primitiveCount(m Mesh) int {
	if m.Primitive == Lines {
		return len(m.Indices) / 2
	}
	return len(m.Indices) / 3
}
