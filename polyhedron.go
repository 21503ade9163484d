package polytope

import (
	"github.com/akmonengine/polytope/boundary"
	"github.com/akmonengine/polytope/geom"
	"github.com/akmonengine/polytope/halfspace"
	"github.com/go-gl/mathgl/mgl64"
)

// Polyhedron is a convex 3D polytope with its triangulated boundary.
type Polyhedron struct {
	Points       []mgl64.Vec3
	Vertices     []mgl64.Vec3
	Ridges       []boundary.Ridge
	Faces        []boundary.Face
	Inequalities []halfspace.PlaneInequality // one per face
}

func newPolyhedron(points []mgl64.Vec3, faces []boundary.Face) *Polyhedron {
	p := &Polyhedron{
		Points:       points,
		Vertices:     boundary.VerticesFromFaces(faces),
		Ridges:       boundary.RidgesFromFaces(faces),
		Faces:        faces,
		Inequalities: make([]halfspace.PlaneInequality, len(faces)),
	}
	for i, f := range faces {
		p.Inequalities[i] = f.Inequality()
	}
	return p
}

// Triangles returns the faces as index triples into Vertices, wound counterclockwise when seen
// from outside.
func (p *Polyhedron) Triangles() [][3]int {
	triangles := make([][3]int, 0, len(p.Faces))
	for _, f := range p.Faces {
		a, b, c := f.Points[0], f.Points[1], f.Points[2]
		t := [3]int{geom.IndexOf(p.Vertices, a), geom.IndexOf(p.Vertices, b), geom.IndexOf(p.Vertices, c)}
		if b.Sub(a).Cross(c.Sub(a)).Dot(f.Normal) < 0 {
			t[1], t[2] = t[2], t[1]
		}
		triangles = append(triangles, t)
	}
	return triangles
}

// Centre returns the mean of the input points.
func (p *Polyhedron) Centre() mgl64.Vec3 {
	return geom.Mean(p.Points)
}

// Bounds returns the bounding box of the input points.
func (p *Polyhedron) Bounds() geom.AABB[mgl64.Vec3] {
	return geom.NewAABB(p.Points)
}

// IsVertex reports whether point is a hull vertex.
func (p *Polyhedron) IsVertex(point mgl64.Vec3) bool {
	return geom.Contains(p.Vertices, point)
}

// Contains reports whether point lies inside the polyhedron or on its boundary.
func (p *Polyhedron) Contains(point mgl64.Vec3) bool {
	return halfspace.SatisfiesAll(p.Inequalities, point)
}
