package polytope

import (
	"math"

	"github.com/akmonengine/polytope/geom"
)

// CellKey is the integer coordinates of a grid cell. Axes beyond the point dimension stay 0.
type CellKey [4]int

// SpatialGrid is a uniform hashed grid indexing points up to geom.Epsilon equality. A point is
// registered in every cell its epsilon box touches, so an equal point is always found in the
// cell holding the query point.
type SpatialGrid[T geom.Vector[T]] struct {
	cellSize float64
	cells    [][]int
	cellMask int
	points   []T
}

// NewSpatialGrid creates a grid of cellSize cells hashed into numCells buckets, rounded up to a
// power of two. cellSize must be larger than 2*geom.Epsilon.
func NewSpatialGrid[T geom.Vector[T]](cellSize float64, numCells int) *SpatialGrid[T] {
	numCells = nextPowerOfTwo(numCells)

	cells := make([][]int, numCells)
	for i := range cells {
		cells[i] = make([]int, 0, 4)
	}

	return &SpatialGrid[T]{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert adds p unless an equal point is already indexed. It returns the index of p or of its
// equal, and whether p was added.
func (sg *SpatialGrid[T]) Insert(p T) (int, bool) {
	if idx := sg.Find(p); idx >= 0 {
		return idx, false
	}

	idx := len(sg.points)
	sg.points = append(sg.points, p)

	lo, hi := make([]float64, 0, 4), make([]float64, 0, 4)
	for _, c := range geom.Components(p) {
		lo = append(lo, c-geom.Epsilon)
		hi = append(hi, c+geom.Epsilon)
	}
	sg.forEachCell(sg.worldToCell(lo), sg.worldToCell(hi), func(key CellKey) {
		cellIdx := sg.hashCell(key)
		sg.cells[cellIdx] = append(sg.cells[cellIdx], idx)
	})
	return idx, true
}

// Find returns the index of the indexed point equal to p, or -1.
func (sg *SpatialGrid[T]) Find(p T) int {
	cellIdx := sg.hashCell(sg.worldToCell(geom.Components(p)))
	for _, idx := range sg.cells[cellIdx] {
		if geom.Equal(sg.points[idx], p) {
			return idx
		}
	}
	return -1
}

// Points returns the indexed points in insertion order.
func (sg *SpatialGrid[T]) Points() []T {
	return sg.points
}

// forEachCell calls fn for every cell of the box [lo, hi].
func (sg *SpatialGrid[T]) forEachCell(lo, hi CellKey, fn func(key CellKey)) {
	key := lo
	for {
		fn(key)

		axis := 0
		for ; axis < len(key); axis++ {
			if key[axis] < hi[axis] {
				key[axis]++
				break
			}
			key[axis] = lo[axis]
		}
		if axis == len(key) {
			return
		}
	}
}

func (sg *SpatialGrid[T]) worldToCell(pos []float64) CellKey {
	var key CellKey
	for i, c := range pos {
		key[i] = int(math.Floor(c / sg.cellSize))
	}
	return key
}

func (sg *SpatialGrid[T]) hashCell(key CellKey) int {
	h := (key[0] * 73856093) ^ (key[1] * 19349663) ^ (key[2] * 83492791) ^ (key[3] * 50331653)
	return h & sg.cellMask
}
