// Package hull computes convex hulls of finite point sets in 2, 3 and 4 dimensions.
//
// Two planar algorithms return the hull as an ordered counterclockwise vertex list:
// GrahamScan and GiftWrap. The incremental (beneath-beyond) algorithms return the boundary
// primitives of the hull: edges in 2D, triangular faces in 3D and tetrahedral hyperfacets in 4D.
//
// All algorithms are deterministic: points are processed in input order.
package hull

import "github.com/akmonengine/polytope/geom"

// Tracer receives the progress of the incremental algorithms. Points are given as their
// components.
type Tracer interface {
	// Seed is called once with the initial simplex.
	Seed(simplex [][]float64)
	// Step is called when point extends the hull, with the number of boundary primitives it
	// sees and the size of the horizon it is connected to.
	Step(point []float64, visible, horizon int)
	// Drop is called when point turns out to be inside the current hull.
	Drop(point []float64)
}

type nopTracer struct{}

func (nopTracer) Seed([][]float64)          {}
func (nopTracer) Step([]float64, int, int) {}
func (nopTracer) Drop([]float64)           {}

func orNop(t Tracer) Tracer {
	if t == nil {
		return nopTracer{}
	}
	return t
}

func traceSeed[T geom.Vector[T]](t Tracer, simplex []T) {
	comps := make([][]float64, len(simplex))
	for i, p := range simplex {
		comps[i] = geom.Components(p)
	}
	t.Seed(comps)
}
