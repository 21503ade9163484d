package boundary

import (
	"github.com/akmonengine/polytope/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// VerticesFromEdges returns the distinct endpoints of edges, in order of first appearance.
func VerticesFromEdges(edges []Edge) []mgl64.Vec2 {
	points := make([]mgl64.Vec2, 0, 2*len(edges))
	for _, e := range edges {
		points = append(points, e.A, e.B)
	}
	return geom.Dedup(points)
}

// VerticesFromFaces returns the distinct vertices of faces, in order of first appearance.
func VerticesFromFaces(faces []Face) []mgl64.Vec3 {
	points := make([]mgl64.Vec3, 0, 3*len(faces))
	for _, f := range faces {
		points = append(points, f.Points[:]...)
	}
	return geom.Dedup(points)
}

// RidgesFromFaces returns the distinct edges of faces.
func RidgesFromFaces(faces []Face) []Ridge {
	ridges := make([]Ridge, 0, 3*len(faces))
	for _, f := range faces {
		for _, r := range f.Ridges() {
			if !containsFunc(ridges, r, Ridge.Equal) {
				ridges = append(ridges, r)
			}
		}
	}
	return ridges
}

// VerticesFromFacets returns the distinct vertices of facets, in order of first appearance.
func VerticesFromFacets(facets []HyperFacet) []mgl64.Vec4 {
	points := make([]mgl64.Vec4, 0, 4*len(facets))
	for _, h := range facets {
		points = append(points, h.Points[:]...)
	}
	return geom.Dedup(points)
}

// SubFacetsFromFacets returns the distinct bounding triangles of facets.
func SubFacetsFromFacets(facets []HyperFacet) []SubFacet {
	subs := make([]SubFacet, 0, 2*len(facets))
	for _, h := range facets {
		for _, s := range h.SubFacets() {
			if !containsFunc(subs, s, SubFacet.Equal) {
				subs = append(subs, s)
			}
		}
	}
	return subs
}

// SegmentsFromFacets returns the distinct edges of facets.
func SegmentsFromFacets(facets []HyperFacet) []Segment[mgl64.Vec4] {
	segments := make([]Segment[mgl64.Vec4], 0, 3*len(facets))
	for _, h := range facets {
		for _, s := range h.Segments() {
			if !containsFunc(segments, s, Segment[mgl64.Vec4].Equal) {
				segments = append(segments, s)
			}
		}
	}
	return segments
}

func containsFunc[E any](items []E, item E, equal func(a, b E) bool) bool {
	for _, it := range items {
		if equal(it, item) {
			return true
		}
	}
	return false
}
