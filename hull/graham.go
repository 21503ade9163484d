package hull

import (
	"github.com/akmonengine/polytope/geom"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// GrahamScan returns the hull of points as counterclockwise vertices, starting from the lowest
// point (lowest x on ties). Points on a hull edge between two vertices are not part of the
// result.
func GrahamScan(points []mgl64.Vec2) ([]mgl64.Vec2, error) {
	if len(points) < 3 {
		return nil, errors.Wrapf(geom.ErrInsufficientPoints, "graham scan needs 3 points, got %d", len(points))
	}

	sorted := geom.SortCounterClockwise(geom.Dedup(points))
	if len(sorted) < 3 {
		return nil, errors.Wrap(geom.ErrDegenerateInput, "points are coincident or collinear")
	}

	stack := make([]mgl64.Vec2, 0, len(sorted))
	stack = append(stack, sorted[0], sorted[1], sorted[2])
	for _, p := range sorted[3:] {
		for len(stack) > 1 && geom.TurnDirection(stack[len(stack)-2], stack[len(stack)-1], p) != geom.CounterClockwise {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, p)
	}

	return stack, nil
}
