package halfspace

import (
	"testing"

	"github.com/akmonengine/polytope/geom"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectPlanes(t *testing.T) {
	p1 := PlaneInequality{2, 1, 6, -7}
	p2 := PlaneInequality{3, 4, 3, 8}
	p3 := PlaneInequality{1, -2, -4, -9}

	p, err := IntersectPlanes(p1, p2, p3)
	require.NoError(t, err)
	assert.InDelta(t, 3, p.X(), 1e-9)
	assert.InDelta(t, -5, p.Y(), 1e-9)
	assert.InDelta(t, 1, p.Z(), 1e-9)

	for _, pl := range []PlaneInequality{p1, p2, p3} {
		assert.InDelta(t, 0, pl.Eval(p), 1e-9)
	}
}

func TestIntersectPlanesUndefined(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2, p3 PlaneInequality
	}{
		{
			"two parallel planes",
			PlaneInequality{0, 0, 1, 0}, PlaneInequality{0, 0, 2, -1}, PlaneInequality{1, 0, 0, 0},
		},
		{
			"normals in a common plane",
			PlaneInequality{1, 0, 0, 0}, PlaneInequality{0, 1, 0, 0}, PlaneInequality{1, 1, 0, -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IntersectPlanes(tt.p1, tt.p2, tt.p3)
			assert.True(t, errors.Is(err, geom.ErrUndefinedIntersection))
		})
	}
}

func TestPlaneFromPoints(t *testing.T) {
	p1 := mgl64.Vec3{0, 0, 1}
	p2 := mgl64.Vec3{1, 0, 1}
	p3 := mgl64.Vec3{0, 1, 1}

	t.Run("reference below", func(t *testing.T) {
		pl, err := PlaneFromPoints(p1, p2, p3, mgl64.Vec3{0, 0, 0})
		require.NoError(t, err)

		assert.InDelta(t, -1, pl.C, 1e-12)
		assert.InDelta(t, 1, pl.D, 1e-12)
		assert.True(t, pl.WithinBounds(mgl64.Vec3{0, 0, 0}))
		assert.False(t, pl.WithinBounds(mgl64.Vec3{0, 0, 2}))
	})

	t.Run("reference above", func(t *testing.T) {
		pl, err := PlaneFromPoints(p1, p2, p3, mgl64.Vec3{5, 5, 3})
		require.NoError(t, err)

		assert.InDelta(t, 1, pl.C, 1e-12)
		assert.InDelta(t, -1, pl.D, 1e-12)
		assert.InDelta(t, 2, pl.Distance(mgl64.Vec3{5, 5, 3}), 1e-12)
	})

	t.Run("collinear", func(t *testing.T) {
		_, err := PlaneFromPoints(p1, p2, mgl64.Vec3{2, 0, 1}, mgl64.Vec3{})
		assert.True(t, errors.Is(err, geom.ErrDegenerateInput))
	})
}

func TestReducedRowEchelon(t *testing.T) {
	m := [][]float64{
		{1, 2, 3},
		{2, 4, 6},
	}
	assert.Equal(t, 1, ReducedRowEchelon(m))

	m = [][]float64{
		{0, 1, 2},
		{1, 0, 3},
	}
	require.Equal(t, 2, ReducedRowEchelon(m))
	assert.Equal(t, []float64{1, 0, 3}, m[0])
	assert.Equal(t, []float64{0, 1, 2}, m[1])
}
