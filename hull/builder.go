package hull

import (
	"slices"

	"github.com/akmonengine/polytope/geom"
	"github.com/akmonengine/polytope/halfspace"
	"github.com/pkg/errors"
)

// cellOps describes one kind of boundary primitive (cell) for the incremental builder: edges
// with point ridges in 2D, faces with segment ridges in 3D, hyperfacets with triangle ridges
// in 4D.
type cellOps[T geom.Vector[T], F any, R any] struct {
	// newCell builds the cell through points, its normal oriented away from the interior.
	newCell     func(points []T) (F, error)
	visible     func(cell F, eye T) bool
	ridges      func(cell F) []R
	ridgePoints func(ridge R) []T
	ridgeEqual  func(a, b R) bool
}

// ridgeEntry counts how many visible cells share a ridge. A ridge seen once is on the horizon.
type ridgeEntry[R any] struct {
	Ridge R
	Count int
}

// polytopeBuilder grows a hull one point at a time.
type polytopeBuilder[T geom.Vector[T], F any, R any] struct {
	ops    cellOps[T, F, R]
	tracer Tracer

	cells          []F
	ridges         []ridgeEntry[R]
	visibleIndices []int
}

func newPolytopeBuilder[T geom.Vector[T], F any, R any](ops cellOps[T, F, R], tracer Tracer) *polytopeBuilder[T, F, R] {
	return &polytopeBuilder[T, F, R]{
		ops:            ops,
		tracer:         orNop(tracer),
		cells:          make([]F, 0, polytopeInitialCapacity),
		ridges:         make([]ridgeEntry[R], 0, polytopeInitialCapacity),
		visibleIndices: make([]int, 0, polytopeInitialCapacity),
	}
}

const polytopeInitialCapacity = 64

// buildInitialCells creates the cells of the seed simplex, each omitting one vertex.
func (b *polytopeBuilder[T, F, R]) buildInitialCells(simplex []T) error {
	traceSeed(b.tracer, simplex)

	for skip := range simplex {
		points := make([]T, 0, len(simplex)-1)
		points = append(points, simplex[:skip]...)
		points = append(points, simplex[skip+1:]...)

		cell, err := b.ops.newCell(points)
		if err != nil {
			return errors.Wrap(err, "invalid seed simplex")
		}
		b.cells = append(b.cells, cell)
	}
	return nil
}

// run adds every outside point until the frontier is empty. After each step the remaining
// frontier is filtered against the current cells.
func (b *polytopeBuilder[T, F, R]) run(points []T) error {
	outside := b.filterOutside(points)
	for len(outside) > 0 {
		p := outside[0]

		visible, horizon, err := b.addPoint(p)
		if err != nil {
			return err
		}
		if visible == 0 {
			b.tracer.Drop(geom.Components(p))
		} else {
			b.tracer.Step(geom.Components(p), visible, horizon)
		}

		outside = b.filterOutside(outside[1:])
	}
	return nil
}

// addPoint replaces the cells visible from p with cells joining the horizon to p. It returns
// the number of visible cells and of horizon ridges.
func (b *polytopeBuilder[T, F, R]) addPoint(p T) (int, int, error) {
	b.findVisibleCells(p)
	if len(b.visibleIndices) == 0 {
		return 0, 0, nil
	}
	visible := len(b.visibleIndices)

	b.findHorizon()
	b.removeVisibleCells()

	horizon, err := b.addHorizonCells(p)
	return visible, horizon, err
}

func (b *polytopeBuilder[T, F, R]) isOutside(p T) bool {
	for _, c := range b.cells {
		if b.ops.visible(c, p) {
			return true
		}
	}
	return false
}

func (b *polytopeBuilder[T, F, R]) filterOutside(points []T) []T {
	outside := make([]T, 0, len(points))
	for _, p := range points {
		if b.isOutside(p) {
			outside = append(outside, p)
		} else {
			b.tracer.Drop(geom.Components(p))
		}
	}
	return outside
}

// findVisibleCells populates visibleIndices with the cells seeing p.
func (b *polytopeBuilder[T, F, R]) findVisibleCells(p T) {
	b.visibleIndices = b.visibleIndices[:0]
	for i, c := range b.cells {
		if b.ops.visible(c, p) {
			b.visibleIndices = append(b.visibleIndices, i)
		}
	}
}

// findHorizon counts the ridges of the visible cells. Ridges shared by two visible cells are
// interior to the visible region; the others separate it from the rest of the hull.
func (b *polytopeBuilder[T, F, R]) findHorizon() {
	b.ridges = b.ridges[:0]
	for _, idx := range b.visibleIndices {
		for _, r := range b.ops.ridges(b.cells[idx]) {
			if i := b.findRidgeIndex(r); i >= 0 {
				b.ridges[i].Count++
			} else {
				b.ridges = append(b.ridges, ridgeEntry[R]{Ridge: r, Count: 1})
			}
		}
	}
}

func (b *polytopeBuilder[T, F, R]) findRidgeIndex(r R) int {
	for i := range b.ridges {
		if b.ops.ridgeEqual(b.ridges[i].Ridge, r) {
			return i
		}
	}
	return -1
}

// removeVisibleCells drops the visible cells, keeping the order of the others.
func (b *polytopeBuilder[T, F, R]) removeVisibleCells() {
	slices.Sort(b.visibleIndices)
	kept := b.cells[:0]
	next := 0
	for i, c := range b.cells {
		if next < len(b.visibleIndices) && b.visibleIndices[next] == i {
			next++
			continue
		}
		kept = append(kept, c)
	}
	b.cells = kept
}

// addHorizonCells connects every horizon ridge to p.
func (b *polytopeBuilder[T, F, R]) addHorizonCells(p T) (int, error) {
	horizon := 0
	for _, entry := range b.ridges {
		if entry.Count != 1 {
			continue
		}
		horizon++

		points := append(slices.Clone(b.ops.ridgePoints(entry.Ridge)), p)
		cell, err := b.ops.newCell(points)
		if err != nil {
			return horizon, errors.Wrap(err, "could not connect horizon")
		}
		b.cells = append(b.cells, cell)
	}
	return horizon, nil
}

// result returns a copy of the current cells.
func (b *polytopeBuilder[T, F, R]) result() []F {
	return slices.Clone(b.cells)
}

// splitVertices separates the vertices of cells, in first-seen order, into the extreme ones and
// the ones lying inside a flat piece of the boundary. A vertex is extreme when the normals of its
// incident cells span every axis; inside a face or on an edge they span fewer.
func splitVertices[T geom.Vector[T], F any](cells []F, points func(F) []T, normal func(F) T) (extreme, flat []T) {
	var vertices []T
	var normals [][][]float64
	for _, c := range cells {
		n := geom.Components(normal(c))
		for _, p := range points(c) {
			idx := geom.IndexOf(vertices, p)
			if idx < 0 {
				idx = len(vertices)
				vertices = append(vertices, p)
				normals = append(normals, nil)
			}
			normals[idx] = append(normals[idx], slices.Clone(n))
		}
	}

	dim := geom.Dimension[T]()
	for i, v := range vertices {
		if halfspace.ReducedRowEchelon(normals[i]) == dim {
			extreme = append(extreme, v)
		} else {
			flat = append(flat, v)
		}
	}
	return extreme, flat
}

// seedSimplex returns dimension+1 affinely independent points: the two most distant axis
// extremes, then repeatedly the point farthest from the flat spanned so far.
func seedSimplex[T geom.Vector[T]](points []T) ([]T, error) {
	dim := geom.Dimension[T]()

	a, b, ok := geom.FarthestPair(geom.AxisExtremes(points))
	if !ok {
		return nil, errors.Wrap(geom.ErrDegenerateInput, "all points are coincident")
	}
	dir, err := geom.Normalize(b.Sub(a))
	if err != nil {
		return nil, err
	}

	simplex := []T{a, b}
	basis := []T{dir}
	for len(simplex) <= dim {
		best, bestDist := -1, geom.Epsilon
		var bestDir T
		for i, p := range points {
			if d, dir := geom.DistanceToFlat(p, a, basis); d > bestDist {
				best, bestDist, bestDir = i, d, dir
			}
		}
		if best < 0 {
			return nil, errors.Wrapf(geom.ErrDegenerateInput, "all points lie in a %d-dimensional flat", len(basis))
		}
		simplex = append(simplex, points[best])
		basis = append(basis, bestDir)
	}
	return simplex, nil
}

// prepare checks the point count, removes duplicates and finds the seed simplex. It returns the
// seed and the remaining points in input order.
func prepare[T geom.Vector[T]](points []T) ([]T, []T, error) {
	dim := geom.Dimension[T]()
	if len(points) < dim+1 {
		return nil, nil, errors.Wrapf(geom.ErrInsufficientPoints, "%dD hull needs %d points, got %d", dim, dim+1, len(points))
	}

	unique := geom.Dedup(points)
	simplex, err := seedSimplex(unique)
	if err != nil {
		return nil, nil, err
	}

	rest := unique
	for _, s := range simplex {
		rest = geom.Without(rest, s)
	}
	return simplex, rest, nil
}
