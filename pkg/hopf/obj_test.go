package hopf

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Faultbox/hopf-fibration/pkg/math"
)

func TestWriteOBJ(t *testing.T) {
	m := Mesh{
		Vertices: []Vertex{
			{Position: [3]float32{0, 0, 0}, Normal: [3]float32{0, 0, 1}},
			{Position: [3]float32{1, 0, 0}, Normal: [3]float32{0, 0, 1}},
			{Position: [3]float32{0, 1, 0}, Normal: [3]float32{0, 0, 1}},
		},
		Indices: []uint32{0, 1, 2},
	}

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, m); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"v 1 0 0\n",
		"vn 0 0 1\n",
		"f 1//1 2//2 3//3\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "\nv "); n != 3 {
		t.Errorf("got %d vertex lines, want 3", n)
	}
}

func TestWriteOBJLines(t *testing.T) {
	m := Mesh{
		Vertices:  make([]Vertex, 3),
		Indices:   []uint32{0, 1, 1, 2},
		Primitive: Lines,
	}

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, m); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}
	if !strings.Contains(buf.String(), "l 2 3\n") {
		t.Errorf("missing second segment:\n%s", buf.String())
	}
}

func TestWriteOBJRejectsDangling(t *testing.T) {
	m := Mesh{Vertices: make([]Vertex, 2), Indices: []uint32{0, 1, 2}}
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, m); !errors.Is(err, ErrDanglingIndex) {
		t.Errorf("WriteOBJ = %v, want ErrDanglingIndex", err)
	}
	if buf.Len() != 0 {
		t.Error("wrote output for an invalid mesh")
	}
}

func TestWriteOBJTube(t *testing.T) {
	cfg, err := Preset("single")
	if err != nil {
		t.Fatalf("Preset: %v", err)
	}
	cfg.MajorRes, cfg.MinorRes = 8, 3

	m, stats, err := BuildTubes(cfg, cfg.Projector(math.Identity()))
	if err != nil {
		t.Fatalf("BuildTubes: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, m); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}
	if n := strings.Count(buf.String(), "\nf "); n != stats.Triangles {
		t.Errorf("got %d faces, want %d", n, stats.Triangles)
	}
}
