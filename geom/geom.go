// Package geom holds the vector primitives shared by the hull algorithms.
//
// Points are plain mgl64 vectors. Equality between points is never bitwise: two points are the
// same point when every component differs by less than Epsilon. Collections are ordered slices
// scanned linearly, so the first representative of a cluster of equal points is the one kept.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Epsilon is the tolerance used by every comparison in the module, whatever the dimension.
const Epsilon = 1e-10

// Vector is satisfied by mgl64.Vec2, mgl64.Vec3 and mgl64.Vec4.
type Vector[T any] interface {
	mgl64.Vec2 | mgl64.Vec3 | mgl64.Vec4

	Add(T) T
	Sub(T) T
	Mul(float64) T
	Dot(T) float64
	Len() float64
}

// Components returns the coordinates of v as a slice.
func Components[T Vector[T]](v T) []float64 {
	switch c := any(v).(type) {
	case mgl64.Vec2:
		return c[:]
	case mgl64.Vec3:
		return c[:]
	case mgl64.Vec4:
		return c[:]
	}
	return nil
}

// FromComponents builds a vector from its coordinates. Missing coordinates are zero, extra ones
// are ignored.
func FromComponents[T Vector[T]](c []float64) T {
	var v T
	switch p := any(&v).(type) {
	case *mgl64.Vec2:
		copy(p[:], c)
	case *mgl64.Vec3:
		copy(p[:], c)
	case *mgl64.Vec4:
		copy(p[:], c)
	}
	return v
}

// Dimension returns the number of coordinates of T.
func Dimension[T Vector[T]]() int {
	var zero T
	return len(Components(zero))
}

// At returns component i of v.
func At[T Vector[T]](v T, i int) (float64, error) {
	c := Components(v)
	if i < 0 || i >= len(c) {
		return 0, errors.Wrapf(ErrOutOfRange, "index %d for dimension %d", i, len(c))
	}
	return c[i], nil
}

// Equal reports whether every component of a and b differs by less than Epsilon.
func Equal[T Vector[T]](a, b T) bool {
	ca, cb := Components(a), Components(b)
	for i := range ca {
		if math.Abs(ca[i]-cb[i]) >= Epsilon {
			return false
		}
	}
	return true
}

// Compare orders vectors lexicographically (x, then y, then z, then w).
func Compare[T Vector[T]](a, b T) int {
	ca, cb := Components(a), Components(b)
	for i := range ca {
		if ca[i] != cb[i] {
			if ca[i] < cb[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// MulElem multiplies a and b component-wise.
func MulElem[T Vector[T]](a, b T) T {
	ca, cb := Components(a), Components(b)
	out := make([]float64, len(ca))
	for i := range ca {
		out[i] = ca[i] * cb[i]
	}
	return FromComponents[T](out)
}

// DivElem divides a by b component-wise. A zero component of b yields an infinite or NaN
// component, as float division does.
func DivElem[T Vector[T]](a, b T) T {
	ca, cb := Components(a), Components(b)
	out := make([]float64, len(ca))
	for i := range ca {
		out[i] = ca[i] / cb[i]
	}
	return FromComponents[T](out)
}

// Distance returns the euclidean distance between a and b.
func Distance[T Vector[T]](a, b T) float64 {
	return a.Sub(b).Len()
}

// Normalize returns v scaled to unit length. It fails on vectors shorter than Epsilon.
func Normalize[T Vector[T]](v T) (T, error) {
	l := v.Len()
	if l < Epsilon {
		return v, errors.Wrap(ErrDegenerateInput, "cannot normalize a zero-length vector")
	}
	return v.Mul(1.0 / l), nil
}

// Mean returns the arithmetic centroid of points, or the zero vector for an empty slice.
func Mean[T Vector[T]](points []T) T {
	var sum T
	if len(points) == 0 {
		return sum
	}
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / float64(len(points)))
}

// IndexOf returns the index of the first point of points equal to p, or -1.
func IndexOf[T Vector[T]](points []T, p T) int {
	for i := range points {
		if Equal(points[i], p) {
			return i
		}
	}
	return -1
}

// Contains reports whether points holds a point equal to p.
func Contains[T Vector[T]](points []T, p T) bool {
	return IndexOf(points, p) >= 0
}

// Dedup returns points without repetitions, keeping the first representative of each group of
// equal points and the input order.
func Dedup[T Vector[T]](points []T) []T {
	unique := make([]T, 0, len(points))
	for _, p := range points {
		if !Contains(unique, p) {
			unique = append(unique, p)
		}
	}
	return unique
}

// Without returns a copy of points with every point equal to p removed.
func Without[T Vector[T]](points []T, p T) []T {
	out := make([]T, 0, len(points))
	for _, q := range points {
		if !Equal(q, p) {
			out = append(out, q)
		}
	}
	return out
}

// AxisExtremes returns, for every axis, the point with the smallest and the point with the
// largest coordinate on that axis: [min x, max x, min y, max y, ...].
func AxisExtremes[T Vector[T]](points []T) []T {
	if len(points) == 0 {
		return nil
	}
	n := Dimension[T]()
	extremes := make([]T, 2*n)
	for axis := 0; axis < n; axis++ {
		extremes[2*axis] = points[0]
		extremes[2*axis+1] = points[0]
	}

	for _, p := range points {
		c := Components(p)
		for axis := 0; axis < n; axis++ {
			if c[axis] < Components(extremes[2*axis])[axis] {
				extremes[2*axis] = p
			}
			if c[axis] > Components(extremes[2*axis+1])[axis] {
				extremes[2*axis+1] = p
			}
		}
	}
	return extremes
}

// FarthestPair returns the two points of candidates with the largest mutual distance.
// ok is false when no two candidates are further apart than Epsilon.
func FarthestPair[T Vector[T]](candidates []T) (a, b T, ok bool) {
	best := Epsilon
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			if d := Distance(candidates[i], candidates[j]); d > best {
				best = d
				a, b, ok = candidates[i], candidates[j], true
			}
		}
	}
	return a, b, ok
}

// DistanceToFlat returns the distance from p to the affine flat through origin spanned by the
// orthonormal vectors of basis, and the unit direction of the residual. The direction is the
// zero vector when p lies on the flat.
func DistanceToFlat[T Vector[T]](p, origin T, basis []T) (float64, T) {
	r := p.Sub(origin)
	for _, b := range basis {
		r = r.Sub(b.Mul(r.Dot(b)))
	}
	d := r.Len()
	if d < Epsilon {
		var zero T
		return d, zero
	}
	return d, r.Mul(1.0 / d)
}
