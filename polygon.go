package polytope

import (
	"github.com/akmonengine/polytope/boundary"
	"github.com/akmonengine/polytope/geom"
	"github.com/akmonengine/polytope/halfspace"
	"github.com/go-gl/mathgl/mgl64"
)

// Polygon is a convex polygon with its boundary.
type Polygon struct {
	// Points the polygon was built from
	Points []mgl64.Vec2
	// Hull vertices, counterclockwise
	Vertices []mgl64.Vec2
	// Edges[i] joins Vertices[i] to Vertices[i+1]
	Edges []boundary.Edge
	// Inequalities[i] is the half-plane of Edges[i] containing the polygon
	Inequalities []halfspace.Inequality
}

func newPolygon(points, vertices []mgl64.Vec2) *Polygon {
	n := len(vertices)
	p := &Polygon{
		Points:       points,
		Vertices:     vertices,
		Edges:        make([]boundary.Edge, n),
		Inequalities: make([]halfspace.Inequality, n),
	}

	for i := range vertices {
		a, b, next := vertices[i], vertices[(i+1)%n], vertices[(i+2)%n]
		p.Edges[i] = boundary.Edge{A: a, B: b}
		p.Inequalities[i] = halfspace.FromPoints(a, b, next)
	}
	return p
}

// Triangles returns a fan triangulation of the polygon as index triples into Vertices:
// [0, i, i-1] for i in [2, n).
func (p *Polygon) Triangles() [][3]int {
	if len(p.Vertices) < 3 {
		return nil
	}
	triangles := make([][3]int, 0, len(p.Vertices)-2)
	for i := 2; i < len(p.Vertices); i++ {
		triangles = append(triangles, [3]int{0, i, i - 1})
	}
	return triangles
}

// Area returns the area enclosed by the polygon.
func (p *Polygon) Area() float64 {
	area := 0.0
	n := len(p.Vertices)
	for i := range p.Vertices {
		area += geom.Cross2(mgl64.Vec2{}, p.Vertices[i], p.Vertices[(i+1)%n])
	}
	return area / 2
}

// Centre returns the mean of the input points.
func (p *Polygon) Centre() mgl64.Vec2 {
	return geom.Mean(p.Points)
}

// Bounds returns the bounding box of the input points.
func (p *Polygon) Bounds() geom.AABB[mgl64.Vec2] {
	return geom.NewAABB(p.Points)
}

// IsVertex reports whether point is a hull vertex.
func (p *Polygon) IsVertex(point mgl64.Vec2) bool {
	return geom.Contains(p.Vertices, point)
}

// Contains reports whether point lies inside the polygon or on its boundary.
func (p *Polygon) Contains(point mgl64.Vec2) bool {
	return halfspace.SatisfiesAll(p.Inequalities, point)
}
