package halfspace

import (
	"fmt"

	"github.com/akmonengine/polytope/geom"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// HyperplaneInequality is the 4D half-space Normal·p + Offset >= 0.
type HyperplaneInequality struct {
	Normal mgl64.Vec4
	Offset float64
}

// Eval returns Normal·p + Offset.
func (h HyperplaneInequality) Eval(p mgl64.Vec4) float64 {
	return h.Normal.Dot(p) + h.Offset
}

// WithinBounds reports whether p satisfies the inequality, boundary included.
func (h HyperplaneInequality) WithinBounds(p mgl64.Vec4) bool {
	return h.Eval(p) >= -geom.Epsilon
}

// Negate returns the complementary half-space sharing the same boundary.
func (h HyperplaneInequality) Negate() HyperplaneInequality {
	return HyperplaneInequality{Normal: h.Normal.Mul(-1), Offset: -h.Offset}
}

func (h HyperplaneInequality) String() string {
	n := h.Normal
	return fmt.Sprintf("(%g)x + (%g)y + (%g)z + (%g)w + (%g) >= 0", n[0], n[1], n[2], n[3], h.Offset)
}

// HyperplaneFromPoints returns the half-space bounded by the hyperplane through p0..p3 that
// contains reference.
func HyperplaneFromPoints(p0, p1, p2, p3, reference mgl64.Vec4) (HyperplaneInequality, error) {
	n, err := geom.Normalize(geom.Cross4(p1.Sub(p0), p2.Sub(p1), p3.Sub(p2)))
	if err != nil {
		return HyperplaneInequality{}, errors.Wrapf(err, "points %v, %v, %v, %v are coplanar", p0, p1, p2, p3)
	}

	h := HyperplaneInequality{Normal: n, Offset: -n.Dot(p0)}
	if !h.WithinBounds(reference) {
		h = h.Negate()
	}
	return h, nil
}

// IntersectHyperplanes returns the single point shared by four boundary hyperplanes.
func IntersectHyperplanes(h1, h2, h3, h4 HyperplaneInequality) (mgl64.Vec4, error) {
	m := make([][]float64, 0, 4)
	for _, h := range [4]HyperplaneInequality{h1, h2, h3, h4} {
		n := h.Normal
		m = append(m, []float64{n[0], n[1], n[2], n[3], -h.Offset})
	}

	x, err := solveAugmented(m)
	if err != nil {
		return mgl64.Vec4{}, err
	}
	return mgl64.Vec4{x[0], x[1], x[2], x[3]}, nil
}
