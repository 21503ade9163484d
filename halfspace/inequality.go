// Package halfspace implements linear half-space constraints in 2, 3 and 4 dimensions and the
// intersection of their boundary hyperplanes.
//
// Every constraint has the form n·x + d >= 0: a point satisfies it when the left-hand side is at
// least -geom.Epsilon.
package halfspace

import (
	"fmt"
	"math"

	"github.com/akmonengine/polytope/geom"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Constraint is a half-space over points of type T.
type Constraint[T geom.Vector[T]] interface {
	WithinBounds(point T) bool
}

// SatisfiesAll reports whether point lies within every constraint.
func SatisfiesAll[T geom.Vector[T], C Constraint[T]](constraints []C, point T) bool {
	for _, c := range constraints {
		if !c.WithinBounds(point) {
			return false
		}
	}
	return true
}

// Inequality is the half-plane A·x + B·y + D >= 0.
type Inequality struct {
	A, B, D float64
}

// Eval returns A·x + B·y + D at p.
func (in Inequality) Eval(p mgl64.Vec2) float64 {
	return in.A*p.X() + in.B*p.Y() + in.D
}

// WithinBounds reports whether p satisfies the inequality, boundary included.
func (in Inequality) WithinBounds(p mgl64.Vec2) bool {
	return in.Eval(p) >= -geom.Epsilon
}

// OnBoundary reports whether p lies on the boundary line.
func (in Inequality) OnBoundary(p mgl64.Vec2) bool {
	return math.Abs(in.Eval(p)) <= geom.Epsilon
}

// Normal returns (A, B).
func (in Inequality) Normal() mgl64.Vec2 {
	return mgl64.Vec2{in.A, in.B}
}

// Negate returns the complementary half-plane sharing the same boundary.
func (in Inequality) Negate() Inequality {
	return Inequality{-in.A, -in.B, -in.D}
}

// Intersection returns the point where the boundary lines of in and other cross. Parallel or
// coincident lines have no unique intersection.
func (in Inequality) Intersection(other Inequality) (mgl64.Vec2, error) {
	det := in.A*other.B - other.A*in.B
	if math.Abs(det) < geom.Epsilon {
		return mgl64.Vec2{}, errors.Wrapf(geom.ErrUndefinedIntersection, "lines %v and %v are parallel", in, other)
	}

	x, err := solveAugmented([][]float64{
		{in.A, in.B, -in.D},
		{other.A, other.B, -other.D},
	})
	if err != nil {
		return mgl64.Vec2{}, err
	}
	return mgl64.Vec2{x[0], x[1]}, nil
}

func (in Inequality) String() string {
	return fmt.Sprintf("(%g)x + (%g)y + (%g) >= 0", in.A, in.B, in.D)
}

// FromPoints returns the half-plane bounded by the line through a and b that contains
// reference. Horizontal and vertical lines are built directly; other lines use their slope and
// intercept.
func FromPoints(a, b, reference mgl64.Vec2) Inequality {
	var in Inequality

	switch {
	case geom.YEquals(a, b):
		in = Inequality{0, 1, -a.Y()}
	case geom.XEquals(a, b):
		in = Inequality{1, 0, -a.X()}
	default:
		slope := (b.Y() - a.Y()) / (b.X() - a.X())
		intercept := a.Y() - slope*a.X()
		in = Inequality{-slope, 1, -intercept}
	}

	if in.WithinBounds(reference) {
		return in
	}
	return in.Negate()
}
