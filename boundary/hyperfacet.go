package boundary

import (
	"github.com/akmonengine/polytope/geom"
	"github.com/akmonengine/polytope/halfspace"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// SubFacet is a triangle bounding a HyperFacet.
type SubFacet [3]mgl64.Vec4

// Equal reports whether s and other share the same three vertices, in any order.
func (s SubFacet) Equal(other SubFacet) bool {
	return sameSet(s[:], other[:])
}

// HyperFacet is a tetrahedral cell of a 4D hull boundary and the hyperplane through it.
type HyperFacet struct {
	Points   [4]mgl64.Vec4
	Normal   mgl64.Vec4
	Distance float64
}

// NewHyperFacet builds the cell through p0..p3 with normal Cross4(p1-p0, p2-p1, p3-p2). The
// normal is not oriented: see CorrectNormal.
func NewHyperFacet(p0, p1, p2, p3 mgl64.Vec4) (HyperFacet, error) {
	n, err := geom.Normalize(geom.Cross4(p1.Sub(p0), p2.Sub(p1), p3.Sub(p2)))
	if err != nil {
		return HyperFacet{}, errors.Wrapf(err, "hyperfacet %v, %v, %v, %v has no volume", p0, p1, p2, p3)
	}

	return HyperFacet{
		Points:   [4]mgl64.Vec4{p0, p1, p2, p3},
		Normal:   n,
		Distance: n.Dot(p0),
	}, nil
}

// SignedDistance returns the distance from p to the hyperplane, positive on the normal side.
func (h HyperFacet) SignedDistance(p mgl64.Vec4) float64 {
	return h.Normal.Dot(p) - h.Distance
}

// IsVisible reports whether eye lies strictly in front of the cell.
func (h HyperFacet) IsVisible(eye mgl64.Vec4) bool {
	return h.SignedDistance(eye) > geom.Epsilon
}

// FlipNormal reverses the orientation of the hyperplane.
func (h *HyperFacet) FlipNormal() {
	h.Normal = h.Normal.Mul(-1)
	h.Distance = -h.Distance
}

// CorrectNormal orients the cell so the interior points lie behind it, with the same voting
// rule as Face.CorrectNormal.
func (h *HyperFacet) CorrectNormal(interior ...mgl64.Vec4) bool {
	front, behind := 0, 0
	for _, p := range interior {
		d := h.SignedDistance(p)
		switch {
		case d > geom.Epsilon:
			front++
		case d < -geom.Epsilon:
			behind++
		}
	}

	if front > behind {
		h.FlipNormal()
	}
	return front == 0 || behind == 0
}

// SubFacets returns the four bounding triangles, each omitting one vertex:
// {p0,p1,p3}, {p0,p2,p3}, {p1,p2,p3}, {p0,p1,p2}.
func (h HyperFacet) SubFacets() [4]SubFacet {
	p := h.Points
	return [4]SubFacet{
		{p[0], p[1], p[3]},
		{p[0], p[2], p[3]},
		{p[1], p[2], p[3]},
		{p[0], p[1], p[2]},
	}
}

// Segments returns the six edges of the cell.
func (h HyperFacet) Segments() [6]Segment[mgl64.Vec4] {
	p := h.Points
	return [6]Segment[mgl64.Vec4]{
		{A: p[0], B: p[1]}, {A: p[0], B: p[2]}, {A: p[0], B: p[3]},
		{A: p[1], B: p[2]}, {A: p[1], B: p[3]}, {A: p[2], B: p[3]},
	}
}

// Equal reports whether h and other share the same four vertices, in any order.
func (h HyperFacet) Equal(other HyperFacet) bool {
	return sameSet(h.Points[:], other.Points[:])
}

// Inequality returns the half-space behind the cell, Normal·p <= Distance.
func (h HyperFacet) Inequality() halfspace.HyperplaneInequality {
	return halfspace.HyperplaneInequality{Normal: h.Normal.Mul(-1), Offset: h.Distance}
}
