package polytope

import (
	"github.com/akmonengine/polytope/geom"
	"github.com/akmonengine/polytope/halfspace"
	"github.com/go-gl/mathgl/mgl64"
)

// DeriveFeasiblePoints2D intersects every pair of boundary lines and keeps the intersections
// satisfying all inequalities. Parallel pairs are skipped.
func (b *Builder) DeriveFeasiblePoints2D(inequalities []halfspace.Inequality) []mgl64.Vec2 {
	candidates := intersectAll(inequalities, 2, func(sel []halfspace.Inequality) (mgl64.Vec2, error) {
		return sel[0].Intersection(sel[1])
	})
	return filterFeasible(b.workers(), inequalities, candidates)
}

// DeriveFeasiblePoints3D intersects every triple of boundary planes and keeps the intersections
// satisfying all inequalities.
func (b *Builder) DeriveFeasiblePoints3D(inequalities []halfspace.PlaneInequality) []mgl64.Vec3 {
	candidates := intersectAll(inequalities, 3, func(sel []halfspace.PlaneInequality) (mgl64.Vec3, error) {
		return halfspace.IntersectPlanes(sel[0], sel[1], sel[2])
	})
	return filterFeasible(b.workers(), inequalities, candidates)
}

// DeriveFeasiblePoints4D intersects every quadruple of boundary hyperplanes and keeps the
// intersections satisfying all inequalities.
func (b *Builder) DeriveFeasiblePoints4D(inequalities []halfspace.HyperplaneInequality) []mgl64.Vec4 {
	candidates := intersectAll(inequalities, 4, func(sel []halfspace.HyperplaneInequality) (mgl64.Vec4, error) {
		return halfspace.IntersectHyperplanes(sel[0], sel[1], sel[2], sel[3])
	})
	return filterFeasible(b.workers(), inequalities, candidates)
}

// intersectAll returns the deduplicated intersections of every k-subset of constraints, in
// lexicographic subset order. Subsets without a unique intersection are skipped.
func intersectAll[C any, T geom.Vector[T]](constraints []C, k int, intersect func([]C) (T, error)) []T {
	var points []T
	selection := make([]C, k)
	combinations(len(constraints), k, func(indices []int) {
		for i, idx := range indices {
			selection[i] = constraints[idx]
		}
		if p, err := intersect(selection); err == nil {
			points = append(points, p)
		}
	})

	grid := NewSpatialGrid[T](gridCellSize, len(points))
	for _, p := range points {
		grid.Insert(p)
	}
	return grid.Points()
}

const gridCellSize = 1.0

// combinations calls fn with every increasing k-subset of [0, n).
func combinations(n, k int, fn func(indices []int)) {
	if k <= 0 || k > n {
		return
	}
	indices := make([]int, k)
	var rec func(pos, start int)
	rec = func(pos, start int) {
		if pos == k {
			fn(indices)
			return
		}
		for i := start; i <= n-(k-pos); i++ {
			indices[pos] = i
			rec(pos+1, i+1)
		}
	}
	rec(0, 0)
}

// filterFeasible keeps the candidates satisfying every constraint, preserving their order.
// Candidates are checked concurrently by workers goroutines.
func filterFeasible[T geom.Vector[T], C halfspace.Constraint[T]](workers int, constraints []C, candidates []T) []T {
	keep := make([]bool, len(candidates))
	indices := make([]int, len(candidates))
	for i := range indices {
		indices[i] = i
	}

	task(workers, indices, func(i int) {
		keep[i] = halfspace.SatisfiesAll(constraints, candidates[i])
	})

	feasible := make([]T, 0, len(candidates))
	for i, ok := range keep {
		if ok {
			feasible = append(feasible, candidates[i])
		}
	}
	return feasible
}
