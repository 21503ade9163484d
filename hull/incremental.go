package hull

import (
	"github.com/akmonengine/polytope/boundary"
	"github.com/akmonengine/polytope/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// Incremental2D returns the edges of the hull of points, built by the beneath-beyond method.
// The edges are not ordered.
func Incremental2D(points []mgl64.Vec2, tracer Tracer) ([]boundary.Edge, error) {
	return incremental(points, tracer, edgeOps)
}

func edgeOps(centre mgl64.Vec2) cellOps[mgl64.Vec2, boundary.Edge, mgl64.Vec2] {
	return cellOps[mgl64.Vec2, boundary.Edge, mgl64.Vec2]{
		newCell: func(points []mgl64.Vec2) (boundary.Edge, error) {
			return boundary.Edge{A: points[0], B: points[1]}, nil
		},
		visible: func(e boundary.Edge, eye mgl64.Vec2) bool {
			return edgeSees(e, eye, centre)
		},
		ridges: func(e boundary.Edge) []mgl64.Vec2 {
			return []mgl64.Vec2{e.A, e.B}
		},
		ridgePoints: func(p mgl64.Vec2) []mgl64.Vec2 {
			return []mgl64.Vec2{p}
		},
		ridgeEqual: geom.Equal[mgl64.Vec2],
	}
}

// edgeSees reports whether eye is strictly outside the supporting line of e, or on that line
// beyond the segment. The second case keeps collinear points from surviving as hull vertices.
func edgeSees(e boundary.Edge, eye, centre mgl64.Vec2) bool {
	if e.IsVisible(eye, centre) {
		return true
	}
	if e.DistanceFrom(eye) > geom.Epsilon {
		return false
	}
	d := e.B.Sub(e.A)
	t := eye.Sub(e.A).Dot(d) / d.Dot(d)
	return t < 0 || t > 1
}

// Incremental3D returns the triangular faces of the hull of points, with normals pointing
// outward. Every vertex of the result is an extreme point.
func Incremental3D(points []mgl64.Vec3, tracer Tracer) ([]boundary.Face, error) {
	faces, err := incremental(points, tracer, faceOps)
	if err != nil {
		return nil, err
	}
	return refine(faces, tracer, faceOps, func(f boundary.Face) []mgl64.Vec3 {
		return f.Points[:]
	}, func(f boundary.Face) mgl64.Vec3 {
		return f.Normal
	})
}

func faceOps(centre mgl64.Vec3) cellOps[mgl64.Vec3, boundary.Face, boundary.Ridge] {
	return cellOps[mgl64.Vec3, boundary.Face, boundary.Ridge]{
		newCell: func(points []mgl64.Vec3) (boundary.Face, error) {
			f, err := boundary.NewFace(points[0], points[1], points[2])
			if err != nil {
				return f, err
			}
			f.CorrectNormal(centre)
			return f, nil
		},
		visible: boundary.Face.IsVisible,
		ridges: func(f boundary.Face) []boundary.Ridge {
			r := f.Ridges()
			return r[:]
		},
		ridgePoints: func(r boundary.Ridge) []mgl64.Vec3 {
			return []mgl64.Vec3{r.A, r.B}
		},
		ridgeEqual: boundary.Ridge.Equal,
	}
}

// Incremental4D returns the tetrahedral hyperfacets of the hull of points, with normals
// pointing outward. Every vertex of the result is an extreme point.
func Incremental4D(points []mgl64.Vec4, tracer Tracer) ([]boundary.HyperFacet, error) {
	facets, err := incremental(points, tracer, facetOps)
	if err != nil {
		return nil, err
	}
	return refine(facets, tracer, facetOps, func(h boundary.HyperFacet) []mgl64.Vec4 {
		return h.Points[:]
	}, func(h boundary.HyperFacet) mgl64.Vec4 {
		return h.Normal
	})
}

func facetOps(centre mgl64.Vec4) cellOps[mgl64.Vec4, boundary.HyperFacet, boundary.SubFacet] {
	return cellOps[mgl64.Vec4, boundary.HyperFacet, boundary.SubFacet]{
		newCell: func(points []mgl64.Vec4) (boundary.HyperFacet, error) {
			h, err := boundary.NewHyperFacet(points[0], points[1], points[2], points[3])
			if err != nil {
				return h, err
			}
			h.CorrectNormal(centre)
			return h, nil
		},
		visible: boundary.HyperFacet.IsVisible,
		ridges: func(h boundary.HyperFacet) []boundary.SubFacet {
			s := h.SubFacets()
			return s[:]
		},
		ridgePoints: func(s boundary.SubFacet) []mgl64.Vec4 {
			return s[:]
		},
		ridgeEqual: boundary.SubFacet.Equal,
	}
}

// incremental seeds a builder with the cell operations for the seed centre and adds every
// remaining point.
func incremental[T geom.Vector[T], F any, R any](points []T, tracer Tracer, ops func(centre T) cellOps[T, F, R]) ([]F, error) {
	simplex, rest, err := prepare(points)
	if err != nil {
		return nil, err
	}

	b := newPolytopeBuilder(ops(geom.Mean(simplex)), tracer)
	if err := b.buildInitialCells(simplex); err != nil {
		return nil, err
	}
	if err := b.run(rest); err != nil {
		return nil, err
	}
	return b.result(), nil
}

// refine drops the vertices that were extreme when added but ended up inside a face or on an
// edge of the hull, and rebuilds the hull from the extreme vertices alone. A point extreme in the
// full set stays extreme in every subset, so the rebuild never meets a flat vertex again.
func refine[T geom.Vector[T], F any, R any](cells []F, tracer Tracer, ops func(centre T) cellOps[T, F, R],
	points func(F) []T, normal func(F) T) ([]F, error) {
	extreme, flat := splitVertices(cells, points, normal)
	if len(flat) == 0 {
		return cells, nil
	}

	tracer = orNop(tracer)
	for _, p := range flat {
		tracer.Drop(geom.Components(p))
	}
	return incremental(extreme, nil, ops)
}
