package halfspace

import (
	"fmt"
	"math"

	"github.com/akmonengine/polytope/geom"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// PlaneInequality is the half-space A·x + B·y + C·z + D >= 0.
type PlaneInequality struct {
	A, B, C, D float64
}

// Eval returns A·x + B·y + C·z + D at p. For a unit normal this is the signed distance to
// the plane.
func (pl PlaneInequality) Eval(p mgl64.Vec3) float64 {
	return pl.A*p.X() + pl.B*p.Y() + pl.C*p.Z() + pl.D
}

// Distance returns the signed euclidean distance from p to the boundary plane, positive on the
// satisfying side.
func (pl PlaneInequality) Distance(p mgl64.Vec3) float64 {
	return pl.Eval(p) / pl.Normal().Len()
}

// WithinBounds reports whether p satisfies the inequality, boundary included.
func (pl PlaneInequality) WithinBounds(p mgl64.Vec3) bool {
	return pl.Eval(p) >= -geom.Epsilon
}

// Normal returns (A, B, C).
func (pl PlaneInequality) Normal() mgl64.Vec3 {
	return mgl64.Vec3{pl.A, pl.B, pl.C}
}

// Negate returns the complementary half-space sharing the same boundary.
func (pl PlaneInequality) Negate() PlaneInequality {
	return PlaneInequality{-pl.A, -pl.B, -pl.C, -pl.D}
}

func (pl PlaneInequality) String() string {
	return fmt.Sprintf("(%g)x + (%g)y + (%g)z + (%g) >= 0", pl.A, pl.B, pl.C, pl.D)
}

// PlaneFromPoints returns the half-space bounded by the plane through p1, p2 and p3 that
// contains reference. The normal is normalize((p1-p2) x (p2-p3)), flipped if needed.
func PlaneFromPoints(p1, p2, p3, reference mgl64.Vec3) (PlaneInequality, error) {
	n, err := geom.Normalize(p1.Sub(p2).Cross(p2.Sub(p3)))
	if err != nil {
		return PlaneInequality{}, errors.Wrapf(err, "points %v, %v, %v are collinear", p1, p2, p3)
	}

	pl := PlaneInequality{n.X(), n.Y(), n.Z(), -n.Dot(p1)}
	if !pl.WithinBounds(reference) {
		pl = pl.Negate()
	}
	return pl, nil
}

// AreParallel reports whether the boundary planes of a and b have parallel normals.
func AreParallel(a, b PlaneInequality) bool {
	return a.Normal().Cross(b.Normal()).Len() < geom.Epsilon
}

// IntersectPlanes returns the single point shared by the boundary planes of p1, p2 and p3.
// Pairwise parallel planes, or normals whose triple product vanishes, have no unique
// intersection.
func IntersectPlanes(p1, p2, p3 PlaneInequality) (mgl64.Vec3, error) {
	if AreParallel(p1, p2) || AreParallel(p2, p3) || AreParallel(p1, p3) {
		return mgl64.Vec3{}, errors.Wrap(geom.ErrUndefinedIntersection, "parallel planes")
	}
	if math.Abs(geom.TripleProduct(p1.Normal(), p2.Normal(), p3.Normal())) < geom.Epsilon {
		return mgl64.Vec3{}, errors.Wrap(geom.ErrUndefinedIntersection, "planes share a common direction")
	}

	x, err := solveAugmented([][]float64{
		{p1.A, p1.B, p1.C, -p1.D},
		{p2.A, p2.B, p2.C, -p2.D},
		{p3.A, p3.B, p3.C, -p3.D},
	})
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return mgl64.Vec3{x[0], x[1], x[2]}, nil
}
