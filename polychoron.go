package polytope

import (
	"github.com/akmonengine/polytope/boundary"
	"github.com/akmonengine/polytope/geom"
	"github.com/akmonengine/polytope/halfspace"
	"github.com/go-gl/mathgl/mgl64"
)

// Polychoron is a convex 4D polytope with its boundary split in tetrahedral cells.
type Polychoron struct {
	Points       []mgl64.Vec4
	Vertices     []mgl64.Vec4
	Segments     []boundary.Segment[mgl64.Vec4]
	SubFacets    []boundary.SubFacet
	Facets       []boundary.HyperFacet
	Inequalities []halfspace.HyperplaneInequality // one per facet
}

func newPolychoron(points []mgl64.Vec4, facets []boundary.HyperFacet) *Polychoron {
	p := &Polychoron{
		Points:       points,
		Vertices:     boundary.VerticesFromFacets(facets),
		Segments:     boundary.SegmentsFromFacets(facets),
		SubFacets:    boundary.SubFacetsFromFacets(facets),
		Facets:       facets,
		Inequalities: make([]halfspace.HyperplaneInequality, len(facets)),
	}
	for i, h := range facets {
		p.Inequalities[i] = h.Inequality()
	}
	return p
}

// Centre returns the mean of the input points.
func (p *Polychoron) Centre() mgl64.Vec4 {
	return geom.Mean(p.Points)
}

// Bounds returns the bounding box of the input points.
func (p *Polychoron) Bounds() geom.AABB[mgl64.Vec4] {
	return geom.NewAABB(p.Points)
}

// IsVertex reports whether point is a hull vertex.
func (p *Polychoron) IsVertex(point mgl64.Vec4) bool {
	return geom.Contains(p.Vertices, point)
}

// Contains reports whether point lies inside the polychoron or on its boundary.
func (p *Polychoron) Contains(point mgl64.Vec4) bool {
	return halfspace.SatisfiesAll(p.Inequalities, point)
}
