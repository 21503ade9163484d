// Package boundary holds the pieces a convex hull boundary is made of: 2D edges, 3D triangular
// faces and 4D tetrahedral hyperfacets, together with their visibility predicates.
//
// Once corrected, a face or facet normal points away from the hull interior, and a point is
// visible from it when it lies strictly outside (signed distance > geom.Epsilon).
package boundary

import (
	"math"

	"github.com/akmonengine/polytope/geom"
	"github.com/akmonengine/polytope/halfspace"
	"github.com/go-gl/mathgl/mgl64"
)

// Edge is an undirected segment of a 2D hull boundary.
type Edge struct {
	A, B mgl64.Vec2
}

// Equal reports whether e and other join the same two points, in either order.
func (e Edge) Equal(other Edge) bool {
	return (geom.Equal(e.A, other.A) && geom.Equal(e.B, other.B)) ||
		(geom.Equal(e.A, other.B) && geom.Equal(e.B, other.A))
}

// Inequality returns the half-plane bounded by the edge's supporting line that contains
// reference.
func (e Edge) Inequality(reference mgl64.Vec2) halfspace.Inequality {
	return halfspace.FromPoints(e.A, e.B, reference)
}

// IsVisible reports whether eye lies outside the supporting line of e, on the side opposite
// to reference.
func (e Edge) IsVisible(eye, reference mgl64.Vec2) bool {
	return !e.Inequality(reference).WithinBounds(eye)
}

// DistanceFrom returns the distance from p to the line through e.
func (e Edge) DistanceFrom(p mgl64.Vec2) float64 {
	a := e.B.Y() - e.A.Y()
	b := -(e.B.X() - e.A.X())
	c := e.B.X()*e.A.Y() - e.B.Y()*e.A.X()

	return math.Abs(a*p.X()+b*p.Y()+c) / math.Sqrt(a*a+b*b)
}

// Length returns |B - A|.
func (e Edge) Length() float64 {
	return geom.Distance(e.A, e.B)
}

// Segment is an undirected segment between two points of a 3D or 4D boundary.
type Segment[T geom.Vector[T]] struct {
	A, B T
}

// Ridge is an edge of a 3D face.
type Ridge = Segment[mgl64.Vec3]

// Equal reports whether s and other join the same two points, in either order.
func (s Segment[T]) Equal(other Segment[T]) bool {
	return (geom.Equal(s.A, other.A) && geom.Equal(s.B, other.B)) ||
		(geom.Equal(s.A, other.B) && geom.Equal(s.B, other.A))
}

// Normalized returns the segment with A <= B lexicographically.
func (s Segment[T]) Normalized() Segment[T] {
	if geom.Compare(s.A, s.B) > 0 {
		return Segment[T]{A: s.B, B: s.A}
	}
	return s
}

// Length returns |B - A|.
func (s Segment[T]) Length() float64 {
	return geom.Distance(s.A, s.B)
}
