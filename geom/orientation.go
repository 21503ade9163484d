package geom

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// Turn is the direction taken when walking a -> b -> c.
type Turn int

const (
	CounterClockwise Turn = -1
	Collinear        Turn = 0
	Clockwise        Turn = 1
)

// Cross2 returns the z component of (a-o) x (b-o). It is positive when b lies to the left of
// the directed line o -> a.
func Cross2(o, a, b mgl64.Vec2) float64 {
	return (a.X()-o.X())*(b.Y()-o.Y()) - (a.Y()-o.Y())*(b.X()-o.X())
}

// TurnDirection classifies the turn a -> b -> c from the sign of (b-a) x (c-b):
// positive is clockwise, negative counterclockwise and |value| < Epsilon collinear.
func TurnDirection(a, b, c mgl64.Vec2) Turn {
	dir := (b.Y()-a.Y())*(c.X()-b.X()) - (b.X()-a.X())*(c.Y()-b.Y())
	if math.Abs(dir) < Epsilon {
		return Collinear
	}
	if dir > 0 {
		return Clockwise
	}
	return CounterClockwise
}

// XEquals reports whether a and b share the same x coordinate.
func XEquals(a, b mgl64.Vec2) bool {
	return math.Abs(a.X()-b.X()) < Epsilon
}

// YEquals reports whether a and b share the same y coordinate.
func YEquals(a, b mgl64.Vec2) bool {
	return math.Abs(a.Y()-b.Y()) < Epsilon
}

// LowestPoint returns the index of the point with the lowest y, ties broken by the lowest x.
func LowestPoint(points []mgl64.Vec2) int {
	lowest := 0
	for i := 1; i < len(points); i++ {
		p, p0 := points[i], points[lowest]
		if YEquals(p, p0) {
			if p.X() < p0.X() {
				lowest = i
			}
		} else if p.Y() < p0.Y() {
			lowest = i
		}
	}
	return lowest
}

// ComparePolarAngle orders a and b by polar angle around p0, closer points first when the
// angles are equal.
func ComparePolarAngle(p0, a, b mgl64.Vec2) int {
	turn := TurnDirection(p0, a, b)
	if turn == Collinear {
		da, db := Distance(p0, a), Distance(p0, b)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		}
		return 0
	}
	return int(turn)
}

// RemoveSameAngle keeps only the farthest point of every run of points collinear with p0.
// points must already be sorted by ComparePolarAngle.
func RemoveSameAngle(points []mgl64.Vec2, p0 mgl64.Vec2) []mgl64.Vec2 {
	kept := make([]mgl64.Vec2, 0, len(points))
	for i := 0; i < len(points); i++ {
		for i < len(points)-1 && TurnDirection(p0, points[i], points[i+1]) == Collinear {
			i++
		}
		kept = append(kept, points[i])
	}
	return kept
}

// SortCounterClockwise returns the points ordered counterclockwise starting from the lowest
// point. Points sharing a polar angle with the lowest point collapse to the farthest one.
func SortCounterClockwise(points []mgl64.Vec2) []mgl64.Vec2 {
	if len(points) == 0 {
		return nil
	}
	lowest := LowestPoint(points)
	p0 := points[lowest]

	rest := make([]mgl64.Vec2, 0, len(points)-1)
	rest = append(rest, points[:lowest]...)
	rest = append(rest, points[lowest+1:]...)

	slices.SortStableFunc(rest, func(a, b mgl64.Vec2) int {
		return ComparePolarAngle(p0, a, b)
	})
	rest = RemoveSameAngle(rest, p0)

	return append([]mgl64.Vec2{p0}, rest...)
}
