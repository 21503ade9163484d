package geom

import "github.com/pkg/errors"

var (
	// ErrInsufficientPoints is returned when a hull is requested from fewer points than the
	// dimension requires (3 in 2D, 4 in 3D, 5 in 4D).
	ErrInsufficientPoints = errors.New("insufficient points")

	// ErrDegenerateInput is returned when the points are coincident, collinear or coplanar
	// and no non-degenerate initial simplex exists.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrUndefinedIntersection is returned when a set of boundary hyperplanes has no unique
	// intersection point (parallel or dependent normals).
	ErrUndefinedIntersection = errors.New("no unique intersection")

	// ErrOutOfRange is returned by component accessors for an index outside [0, dimension).
	ErrOutOfRange = errors.New("component index out of range")
)
