// Package polytope builds convex polytopes in 2, 3 and 4 dimensions, either from a point set
// (V-representation) or from a system of half-space inequalities (H-representation).
//
// A zero Builder is ready to use. The package-level functions use the default Builder.
package polytope

import (
	"strings"

	"github.com/akmonengine/polytope/boundary"
	"github.com/akmonengine/polytope/geom"
	"github.com/akmonengine/polytope/halfspace"
	"github.com/akmonengine/polytope/hull"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// DefaultWorkers is the number of goroutines used when Builder.Workers is not positive.
const DefaultWorkers = 1

// Algorithm2D selects the planar hull algorithm.
type Algorithm2D int

const (
	GrahamScan Algorithm2D = iota
	GiftWrap
	Incremental
)

var algorithmNames = map[Algorithm2D]string{
	GrahamScan:  "graham",
	GiftWrap:    "giftwrap",
	Incremental: "incremental",
}

func (a Algorithm2D) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAlgorithm2D returns the algorithm named name (graham, giftwrap or incremental).
func ParseAlgorithm2D(name string) (Algorithm2D, error) {
	for a, n := range algorithmNames {
		if strings.EqualFold(n, name) {
			return a, nil
		}
	}
	return GrahamScan, errors.Errorf("unknown 2D hull algorithm %q", name)
}

// Builder computes hulls and polytopes. The zero value is ready to use.
type Builder struct {
	// Planar hull algorithm, Graham scan by default
	Algorithm2D Algorithm2D
	// Goroutines used to filter feasible points
	Workers int
	// Receives the progress of the incremental hulls, may be nil
	Tracer hull.Tracer
}

func (b *Builder) workers() int {
	return max(DefaultWorkers, b.Workers)
}

// ConvexHull2D returns the hull vertices of points in counterclockwise order.
func (b *Builder) ConvexHull2D(points []mgl64.Vec2) ([]mgl64.Vec2, error) {
	switch b.Algorithm2D {
	case GrahamScan:
		return hull.GrahamScan(points)
	case GiftWrap:
		return hull.GiftWrap(points)
	case Incremental:
		edges, err := hull.Incremental2D(points, b.Tracer)
		if err != nil {
			return nil, err
		}
		return geom.SortCounterClockwise(boundary.VerticesFromEdges(edges)), nil
	}
	return nil, errors.Errorf("unknown 2D hull algorithm %d", b.Algorithm2D)
}

// ConvexHull3D returns the outward oriented triangular faces of the hull of points.
func (b *Builder) ConvexHull3D(points []mgl64.Vec3) ([]boundary.Face, error) {
	return hull.Incremental3D(points, b.Tracer)
}

// ConvexHull4D returns the outward oriented hyperfacets of the hull of points.
func (b *Builder) ConvexHull4D(points []mgl64.Vec4) ([]boundary.HyperFacet, error) {
	return hull.Incremental4D(points, b.Tracer)
}

// FromPoints2D builds the polygon spanned by points.
func (b *Builder) FromPoints2D(points []mgl64.Vec2) (*Polygon, error) {
	vertices, err := b.ConvexHull2D(points)
	if err != nil {
		return nil, err
	}
	return newPolygon(points, vertices), nil
}

// FromPoints3D builds the polyhedron spanned by points.
func (b *Builder) FromPoints3D(points []mgl64.Vec3) (*Polyhedron, error) {
	faces, err := b.ConvexHull3D(points)
	if err != nil {
		return nil, err
	}
	return newPolyhedron(points, faces), nil
}

// FromPoints4D builds the polychoron spanned by points.
func (b *Builder) FromPoints4D(points []mgl64.Vec4) (*Polychoron, error) {
	facets, err := b.ConvexHull4D(points)
	if err != nil {
		return nil, err
	}
	return newPolychoron(points, facets), nil
}

// FromInequalities2D builds the polygon bounded by inequalities. The region must be bounded
// and have at least three vertices.
func (b *Builder) FromInequalities2D(inequalities []halfspace.Inequality) (*Polygon, error) {
	p, err := b.FromPoints2D(b.DeriveFeasiblePoints2D(inequalities))
	return p, errors.Wrap(err, "feasible region")
}

// FromInequalities3D builds the polyhedron bounded by inequalities.
func (b *Builder) FromInequalities3D(inequalities []halfspace.PlaneInequality) (*Polyhedron, error) {
	p, err := b.FromPoints3D(b.DeriveFeasiblePoints3D(inequalities))
	return p, errors.Wrap(err, "feasible region")
}

// FromInequalities4D builds the polychoron bounded by inequalities.
func (b *Builder) FromInequalities4D(inequalities []halfspace.HyperplaneInequality) (*Polychoron, error) {
	p, err := b.FromPoints4D(b.DeriveFeasiblePoints4D(inequalities))
	return p, errors.Wrap(err, "feasible region")
}

var defaultBuilder = &Builder{}

// ConvexHull2D returns the Graham scan hull of points.
func ConvexHull2D(points []mgl64.Vec2) ([]mgl64.Vec2, error) {
	return defaultBuilder.ConvexHull2D(points)
}

// ConvexHull3D returns the faces of the hull of points.
func ConvexHull3D(points []mgl64.Vec3) ([]boundary.Face, error) {
	return defaultBuilder.ConvexHull3D(points)
}

// ConvexHull4D returns the hyperfacets of the hull of points.
func ConvexHull4D(points []mgl64.Vec4) ([]boundary.HyperFacet, error) {
	return defaultBuilder.ConvexHull4D(points)
}

// DeriveFeasiblePoints2D returns the vertices of the region bounded by inequalities.
func DeriveFeasiblePoints2D(inequalities []halfspace.Inequality) []mgl64.Vec2 {
	return defaultBuilder.DeriveFeasiblePoints2D(inequalities)
}

// DeriveFeasiblePoints3D returns the vertices of the region bounded by inequalities.
func DeriveFeasiblePoints3D(inequalities []halfspace.PlaneInequality) []mgl64.Vec3 {
	return defaultBuilder.DeriveFeasiblePoints3D(inequalities)
}

// DeriveFeasiblePoints4D returns the vertices of the region bounded by inequalities.
func DeriveFeasiblePoints4D(inequalities []halfspace.HyperplaneInequality) []mgl64.Vec4 {
	return defaultBuilder.DeriveFeasiblePoints4D(inequalities)
}
