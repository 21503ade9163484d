package hull

import (
	"slices"

	"github.com/akmonengine/polytope/geom"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// GiftWrap returns the hull of points as counterclockwise vertices, starting from the leftmost
// point (lowest y on ties). It runs in O(nh) for h hull vertices.
func GiftWrap(points []mgl64.Vec2) ([]mgl64.Vec2, error) {
	if len(points) < 3 {
		return nil, errors.Wrapf(geom.ErrInsufficientPoints, "gift wrapping needs 3 points, got %d", len(points))
	}

	sorted := geom.Dedup(points)
	slices.SortFunc(sorted, geom.Compare[mgl64.Vec2])

	start := sorted[0]
	current := start
	var wrapped []mgl64.Vec2
	for {
		wrapped = append(wrapped, current)
		if len(wrapped) > len(sorted) {
			return nil, errors.Wrap(geom.ErrDegenerateInput, "gift wrapping did not close")
		}

		next := current
		for _, p := range sorted {
			if geom.Equal(p, current) {
				continue
			}
			if geom.Equal(next, current) {
				next = p
				continue
			}
			switch geom.TurnDirection(current, next, p) {
			case geom.Clockwise:
				next = p
			case geom.Collinear:
				if geom.Distance(current, p) > geom.Distance(current, next) {
					next = p
				}
			}
		}

		if geom.Equal(next, current) || geom.Equal(next, start) {
			break
		}
		current = next
	}

	if len(wrapped) < 3 {
		return nil, errors.Wrap(geom.ErrDegenerateInput, "points are coincident or collinear")
	}
	return wrapped, nil
}
