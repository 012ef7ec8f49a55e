package inspect

import (
	"fmt"
	"math"

	"github.com/hschendel/stl"
	"github.com/ungerik/go3d/float64/vec3"
)

// Report summarizes a triangle mesh read from an STL file. Measures are in
// the file's units (mm for everything this tool generates).
type Report struct {
	Path      string
	Triangles int
	Min, Max  vec3.T
	// SurfaceArea is the sum of all triangle areas.
	SurfaceArea float64
	// Volume is the enclosed volume via the divergence theorem. Only
	// meaningful when the mesh is watertight.
	Volume float64
	// Watertight reports whether every edge is shared by exactly two
	// triangles.
	Watertight bool
}

// File reads an STL file (binary or ASCII) and measures it.
func File(path string) (Report, error) {
	sol, err := stl.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("read %s: %w", path, err)
	}
	r := measure(sol)
	r.Path = path
	return r, nil
}

// Validate returns an error when the report describes a mesh that should not
// be printed: no triangles, zero extent, or open edges.
func Validate(r Report) error {
	if r.Triangles == 0 {
		return fmt.Errorf("%s: mesh has no triangles", r.Path)
	}
	d := vec3.Sub(&r.Max, &r.Min)
	if d[0] <= 0 || d[1] <= 0 || d[2] <= 0 {
		return fmt.Errorf("%s: mesh has zero extent", r.Path)
	}
	if !r.Watertight {
		return fmt.Errorf("%s: mesh is not watertight", r.Path)
	}
	return nil
}

// edgeKey identifies an undirected edge by its quantized endpoints. STL
// repeats shared vertices per triangle, so endpoints from adjacent triangles
// match only up to float noise; quantizing to 1e-4 mm merges them.
func edgeKey(a, b vec3.T) string {
	ka := fmt.Sprintf("%.4f,%.4f,%.4f", a[0], a[1], a[2])
	kb := fmt.Sprintf("%.4f,%.4f,%.4f", b[0], b[1], b[2])
	if ka < kb {
		return ka + "|" + kb
	}
	return kb + "|" + ka
}

func toVec(v stl.Vec3) vec3.T {
	return vec3.T{float64(v[0]), float64(v[1]), float64(v[2])}
}

func measure(sol *stl.Solid) Report {
	r := Report{
		Triangles: len(sol.Triangles),
		Min:       vec3.T{math.Inf(1), math.Inf(1), math.Inf(1)},
		Max:       vec3.T{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
	edges := make(map[string]int, 3*len(sol.Triangles)/2)
	for _, t := range sol.Triangles {
		v0 := toVec(t.Vertices[0])
		v1 := toVec(t.Vertices[1])
		v2 := toVec(t.Vertices[2])
		for _, v := range []vec3.T{v0, v1, v2} {
			for i := 0; i < 3; i++ {
				r.Min[i] = math.Min(r.Min[i], v[i])
				r.Max[i] = math.Max(r.Max[i], v[i])
			}
		}
		e1 := vec3.Sub(&v1, &v0)
		e2 := vec3.Sub(&v2, &v0)
		cross := vec3.Cross(&e1, &e2)
		r.SurfaceArea += cross.Length() / 2
		// Signed tetrahedron volume against the origin; the open faces of a
		// leaky mesh simply fail to cancel, which Watertight reports anyway.
		c12 := vec3.Cross(&v1, &v2)
		r.Volume += vec3.Dot(&v0, &c12) / 6
		edges[edgeKey(v0, v1)]++
		edges[edgeKey(v1, v2)]++
		edges[edgeKey(v2, v0)]++
	}
	r.Volume = math.Abs(r.Volume)
	if r.Triangles > 0 {
		r.Watertight = true
		for _, n := range edges {
			if n != 2 {
				r.Watertight = false
				break
			}
		}
	}
	return r
}
