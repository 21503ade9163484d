package boundary

import (
	"github.com/akmonengine/polytope/geom"
	"github.com/akmonengine/polytope/halfspace"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Face is a triangle of a 3D hull boundary and the plane through it.
// A point p lies on the plane when Normal·p == Distance.
type Face struct {
	Points   [3]mgl64.Vec3
	Normal   mgl64.Vec3 // unit length, outward once corrected
	Distance float64
}

// NewFace builds the face through p0, p1 and p2 with normal (p1-p0) x (p2-p0). The normal is
// not oriented: see CorrectNormal.
func NewFace(p0, p1, p2 mgl64.Vec3) (Face, error) {
	n, err := geom.Normalize(p1.Sub(p0).Cross(p2.Sub(p0)))
	if err != nil {
		return Face{}, errors.Wrapf(err, "face %v, %v, %v has no area", p0, p1, p2)
	}

	return Face{
		Points:   [3]mgl64.Vec3{p0, p1, p2},
		Normal:   n,
		Distance: n.Dot(p0),
	}, nil
}

// SignedDistance returns the distance from p to the face plane, positive on the normal side.
func (f Face) SignedDistance(p mgl64.Vec3) float64 {
	return f.Normal.Dot(p) - f.Distance
}

// IsVisible reports whether eye lies strictly in front of the face.
func (f Face) IsVisible(eye mgl64.Vec3) bool {
	return f.SignedDistance(eye) > geom.Epsilon
}

// FlipNormal reverses the orientation of the face plane.
func (f *Face) FlipNormal() {
	f.Normal = f.Normal.Mul(-1)
	f.Distance = -f.Distance
}

// CorrectNormal orients the face so the interior points lie behind it. Points on the plane do
// not vote; the normal is flipped when more points are in front of the face than behind it.
// It returns false when the points did not all agree, which means some of them are not
// interior to the hull the face belongs to.
func (f *Face) CorrectNormal(interior ...mgl64.Vec3) bool {
	front, behind := 0, 0
	for _, p := range interior {
		d := f.SignedDistance(p)
		switch {
		case d > geom.Epsilon:
			front++
		case d < -geom.Epsilon:
			behind++
		}
	}

	if front > behind {
		f.FlipNormal()
	}
	return front == 0 || behind == 0
}

// Ridges returns the three edges of the triangle.
func (f Face) Ridges() [3]Ridge {
	return [3]Ridge{
		{A: f.Points[0], B: f.Points[1]},
		{A: f.Points[1], B: f.Points[2]},
		{A: f.Points[2], B: f.Points[0]},
	}
}

// Equal reports whether f and other share the same three vertices, in any order.
func (f Face) Equal(other Face) bool {
	return sameSet(f.Points[:], other.Points[:])
}

// Inequality returns the half-space behind the face, Normal·p <= Distance.
func (f Face) Inequality() halfspace.PlaneInequality {
	return halfspace.PlaneInequality{A: -f.Normal.X(), B: -f.Normal.Y(), C: -f.Normal.Z(), D: f.Distance}
}

func sameSet[T geom.Vector[T]](a, b []T) bool {
	for _, p := range a {
		if !geom.Contains(b, p) {
			return false
		}
	}
	for _, p := range b {
		if !geom.Contains(a, p) {
			return false
		}
	}
	return true
}
