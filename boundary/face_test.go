package boundary

import (
	"testing"

	"github.com/akmonengine/polytope/geom"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tetrahedron = [4]mgl64.Vec3{
	{0, 0, 0},
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

func TestNewFace(t *testing.T) {
	f, err := NewFace(tetrahedron[0], tetrahedron[1], tetrahedron[2])
	require.NoError(t, err)

	assert.InDelta(t, 1, f.Normal.Len(), 1e-12)
	for _, p := range f.Points {
		assert.InDelta(t, 0, f.SignedDistance(p), 1e-12)
	}

	_, err = NewFace(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}, mgl64.Vec3{2, 2, 2})
	assert.True(t, errors.Is(err, geom.ErrDegenerateInput))
}

func TestFace_CorrectNormal(t *testing.T) {
	tests := []struct {
		name       string
		points     [3]mgl64.Vec3
		interior   []mgl64.Vec3
		consistent bool
	}{
		{
			name:       "base, normal initially toward the apex",
			points:     [3]mgl64.Vec3{tetrahedron[0], tetrahedron[1], tetrahedron[2]},
			interior:   []mgl64.Vec3{tetrahedron[3]},
			consistent: true,
		},
		{
			name:       "base, normal initially away from the apex",
			points:     [3]mgl64.Vec3{tetrahedron[0], tetrahedron[2], tetrahedron[1]},
			interior:   []mgl64.Vec3{tetrahedron[3]},
			consistent: true,
		},
		{
			name:       "coplanar points do not vote",
			points:     [3]mgl64.Vec3{tetrahedron[0], tetrahedron[1], tetrahedron[2]},
			interior:   []mgl64.Vec3{{0.2, 0.2, 0}, {0.25, 0.25, 0.25}},
			consistent: true,
		},
		{
			name:       "majority wins",
			points:     [3]mgl64.Vec3{tetrahedron[0], tetrahedron[1], tetrahedron[2]},
			interior:   []mgl64.Vec3{{0, 0, 1}, {0, 0, 2}, {0, 0, -1}},
			consistent: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFace(tt.points[0], tt.points[1], tt.points[2])
			require.NoError(t, err)

			assert.Equal(t, tt.consistent, f.CorrectNormal(tt.interior...))
			assert.InDelta(t, -1, f.Normal.Z(), 1e-12)
			assert.False(t, f.IsVisible(mgl64.Vec3{0.1, 0.1, 0.5}))
			assert.True(t, f.IsVisible(mgl64.Vec3{0.1, 0.1, -0.5}))
		})
	}
}

func TestFace_Equal(t *testing.T) {
	a, err := NewFace(tetrahedron[0], tetrahedron[1], tetrahedron[2])
	require.NoError(t, err)
	b, err := NewFace(tetrahedron[2], tetrahedron[0], tetrahedron[1])
	require.NoError(t, err)
	c, err := NewFace(tetrahedron[0], tetrahedron[1], tetrahedron[3])
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestFace_Ridges(t *testing.T) {
	f, err := NewFace(tetrahedron[0], tetrahedron[1], tetrahedron[2])
	require.NoError(t, err)

	ridges := f.Ridges()
	assert.True(t, ridges[0].Equal(Ridge{A: tetrahedron[1], B: tetrahedron[0]}))
	assert.True(t, ridges[1].Equal(Ridge{A: tetrahedron[1], B: tetrahedron[2]}))
	assert.True(t, ridges[2].Equal(Ridge{A: tetrahedron[0], B: tetrahedron[2]}))
}

func TestFace_Inequality(t *testing.T) {
	f, err := NewFace(tetrahedron[1], tetrahedron[2], tetrahedron[3])
	require.NoError(t, err)
	f.CorrectNormal(tetrahedron[0])

	in := f.Inequality()
	assert.True(t, in.WithinBounds(mgl64.Vec3{0.1, 0.1, 0.1}))
	assert.True(t, in.WithinBounds(tetrahedron[1]))
	assert.False(t, in.WithinBounds(mgl64.Vec3{1, 1, 1}))
}

func TestViews(t *testing.T) {
	var faces []Face
	for _, idx := range [][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}} {
		f, err := NewFace(tetrahedron[idx[0]], tetrahedron[idx[1]], tetrahedron[idx[2]])
		require.NoError(t, err)
		faces = append(faces, f)
	}

	assert.Len(t, VerticesFromFaces(faces), 4)
	assert.Len(t, RidgesFromFaces(faces), 6)

	edges := []Edge{
		{A: mgl64.Vec2{0, 0}, B: mgl64.Vec2{1, 0}},
		{A: mgl64.Vec2{1, 0}, B: mgl64.Vec2{0, 1}},
		{A: mgl64.Vec2{0, 1}, B: mgl64.Vec2{0, 0}},
	}
	assert.Equal(t, []mgl64.Vec2{{0, 0}, {1, 0}, {0, 1}}, VerticesFromEdges(edges))
}
