package geom

import "math"

// AABB represents an axis-aligned bounding box.
type AABB[T Vector[T]] struct {
	Min T
	Max T
}

// NewAABB returns the smallest box holding every point. The box of no points is the zero box.
func NewAABB[T Vector[T]](points []T) AABB[T] {
	if len(points) == 0 {
		return AABB[T]{}
	}
	n := Dimension[T]()
	lo := append([]float64(nil), Components(points[0])...)
	hi := append([]float64(nil), Components(points[0])...)

	for _, p := range points[1:] {
		c := Components(p)
		for i := 0; i < n; i++ {
			lo[i] = math.Min(lo[i], c[i])
			hi[i] = math.Max(hi[i], c[i])
		}
	}

	return AABB[T]{Min: FromComponents[T](lo), Max: FromComponents[T](hi)}
}

// ContainsPoint checks if a point is inside the AABB, boundary included up to Epsilon.
func (a AABB[T]) ContainsPoint(point T) bool {
	p, lo, hi := Components(point), Components(a.Min), Components(a.Max)
	for i := range p {
		if p[i] < lo[i]-Epsilon || p[i] > hi[i]+Epsilon {
			return false
		}
	}
	return true
}

// Overlaps checks if two AABBs overlap on every axis.
func (a AABB[T]) Overlaps(other AABB[T]) bool {
	aLo, aHi := Components(a.Min), Components(a.Max)
	bLo, bHi := Components(other.Min), Components(other.Max)
	for i := range aLo {
		if aHi[i] < bLo[i] || aLo[i] > bHi[i] {
			return false
		}
	}
	return true
}

// Centre returns the middle of the box.
func (a AABB[T]) Centre() T {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Size returns the extent of the box on every axis.
func (a AABB[T]) Size() T {
	return a.Max.Sub(a.Min)
}
