package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/hopf-fibration/pkg/hopf"
	"github.com/Faultbox/hopf-fibration/pkg/math"
)

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	wire := fs.Bool("wire", false, "Export projected fiber polylines instead of tubes")
	o := registerOptions(fs)
	cfg := mustLoad(fs, o, args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: hopftool export [options] <out.obj>")
		os.Exit(1)
	}
	path := fs.Arg(0)

	fib, err := cfg.Fibration.Hopf()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	mesh, err := exportMesh(fib, *wire)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := hopf.WriteOBJ(f, mesh); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d vertices, %d %s)\n", path, len(mesh.Vertices), primitiveCount(mesh), mesh.Primitive)
}

// exportMesh builds the tube mesh, or with wire set, the fiber loops
// projected with the identity rotor.
func exportMesh(fib hopf.Config, wire bool) (hopf.Mesh, error) {
	p := fib.Projector(math.Identity())
	if !wire {
		m, _, err := hopf.BuildTubes(fib, p)
		return m, err
	}

	lines, err := hopf.BuildWires(fib)
	if err != nil {
		return hopf.Mesh{}, err
	}
	m := hopf.Mesh{
		Vertices:  make([]hopf.Vertex, len(lines.Points)),
		Indices:   lines.Indices,
		Primitive: hopf.Lines,
	}
	for i, pt := range lines.Points {
		m.Vertices[i] = hopf.Vertex{
			Position: p.Project(pt).Array(),
			Source:   pt.Array(),
		}
	}
	return m, nil
}

func primitiveCount(m hopf.Mesh) int {
	if m.Primitive == hopf.Lines {
		return len(m.Indices) / 2
	}
	return m.TriangleCount()
}
