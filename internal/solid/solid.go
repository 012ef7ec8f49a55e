package solid

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Point2 is a vertex of a 2D profile, in mm.
type Point2 struct {
	X, Y float64
}

// Solid is an immutable 3D solid. Every operation returns a new Solid; no
// operation mutates its receiver or arguments. The underlying representation
// is an sdfx signed distance field, so booleans cannot fail at composition
// time; degenerate inputs are rejected by the constructors instead.
type Solid struct {
	s sdf.SDF3
}

// SDF returns the underlying signed distance field for rendering.
func (s Solid) SDF() sdf.SDF3 {
	return s.s
}

// Box returns a solid box of the given dimensions, centered at the origin.
func Box(x, y, z float64) (Solid, error) {
	if x <= 0 || y <= 0 || z <= 0 {
		return Solid{}, fmt.Errorf("box dimensions must be positive, got %g x %g x %g", x, y, z)
	}
	b, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return Solid{}, err
	}
	return Solid{s: b}, nil
}

// Cylinder returns a solid cylinder with its axis on Z, centered at the origin.
func Cylinder(height, radius float64) (Solid, error) {
	if height <= 0 || radius <= 0 {
		return Solid{}, fmt.Errorf("cylinder height and radius must be positive, got h=%g r=%g", height, radius)
	}
	c, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return Solid{}, err
	}
	return Solid{s: c}, nil
}

// Prism extrudes a closed 2D polygon along Z. The profile lies in the XY
// plane and the extrusion is centered on Z, so the result spans
// [-height/2, height/2]. Vertices wind counter-clockwise.
func Prism(profile []Point2, height float64) (Solid, error) {
	if len(profile) < 3 {
		return Solid{}, fmt.Errorf("prism profile needs at least 3 vertices, got %d", len(profile))
	}
	if height <= 0 {
		return Solid{}, fmt.Errorf("prism height must be positive, got %g", height)
	}
	vs := make([]v2.Vec, len(profile))
	for i, p := range profile {
		vs[i] = v2.Vec{X: p.X, Y: p.Y}
	}
	poly, err := sdf.Polygon2D(vs)
	if err != nil {
		return Solid{}, err
	}
	return Solid{s: sdf.Extrude3D(poly, height)}, nil
}

// Disc extrudes a circle of the given radius along Z, centered at the origin.
func Disc(radius, height float64) (Solid, error) {
	if radius <= 0 || height <= 0 {
		return Solid{}, fmt.Errorf("disc radius and height must be positive, got r=%g h=%g", radius, height)
	}
	c, err := sdf.Circle2D(radius)
	if err != nil {
		return Solid{}, err
	}
	return Solid{s: sdf.Extrude3D(c, height)}, nil
}

// OpenBox returns a box hollowed from the top: solid bottom of thickness
// wall, walls of thickness wall, open +Z face. Outer dimensions are
// x by y by z, centered at the origin.
func OpenBox(x, y, z, wall float64) (Solid, error) {
	if wall <= 0 {
		return Solid{}, fmt.Errorf("wall thickness must be positive, got %g", wall)
	}
	if 2*wall >= x || 2*wall >= y || wall >= z {
		return Solid{}, fmt.Errorf("wall %g leaves no interior in %g x %g x %g box", wall, x, y, z)
	}
	outer, err := Box(x, y, z)
	if err != nil {
		return Solid{}, err
	}
	// Cavity is full outer height shifted up by wall: its top pierces the
	// +Z face (open top) while its bottom sits one wall above the -Z face
	// (solid bottom).
	cavity, err := Box(x-2*wall, y-2*wall, z)
	if err != nil {
		return Solid{}, err
	}
	return outer.Cut(cavity.Translate(0, 0, wall)), nil
}

// Union returns the boolean union of the receiver and the given solids.
func (s Solid) Union(others ...Solid) Solid {
	all := make([]sdf.SDF3, 0, len(others)+1)
	all = append(all, s.s)
	for _, o := range others {
		all = append(all, o.s)
	}
	return Solid{s: sdf.Union3D(all...)}
}

// Cut subtracts the tool from the receiver.
func (s Solid) Cut(tool Solid) Solid {
	return Solid{s: sdf.Difference3D(s.s, tool.s)}
}

// Translate moves the solid by (x, y, z).
func (s Solid) Translate(x, y, z float64) Solid {
	return Solid{s: sdf.Transform3D(s.s, sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z}))}
}

// RotateX rotates the solid around the X axis by the given angle in radians
// (right hand rule).
func (s Solid) RotateX(a float64) Solid {
	return Solid{s: sdf.Transform3D(s.s, sdf.RotateX(a))}
}

// RotateY rotates the solid around the Y axis by the given angle in radians.
func (s Solid) RotateY(a float64) Solid {
	return Solid{s: sdf.Transform3D(s.s, sdf.RotateY(a))}
}

// RotateZ rotates the solid around the Z axis by the given angle in radians.
func (s Solid) RotateZ(a float64) Solid {
	return Solid{s: sdf.Transform3D(s.s, sdf.RotateZ(a))}
}

// Size returns the dimensions of the solid's bounding box.
func (s Solid) Size() (x, y, z float64) {
	if s.s == nil {
		return 0, 0, 0
	}
	d := s.s.BoundingBox().Size()
	return d.X, d.Y, d.Z
}

// Evaluate returns the signed distance from the point to the solid's
// surface: negative inside, positive outside.
func (s Solid) Evaluate(x, y, z float64) float64 {
	return s.s.Evaluate(v3.Vec{X: x, Y: y, Z: z})
}

// IsEmpty reports whether the solid is unset or has a degenerate bounding
// box. An empty solid must never reach the exporter.
func (s Solid) IsEmpty() bool {
	if s.s == nil {
		return true
	}
	x, y, z := s.Size()
	return x <= 0 || y <= 0 || z <= 0
}
