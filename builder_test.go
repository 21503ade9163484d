package polytope

import (
	"math"
	"testing"

	"github.com/akmonengine/polytope/geom"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm2D(t *testing.T) {
	tests := []struct {
		name     string
		expected Algorithm2D
		wantErr  bool
	}{
		{"graham", GrahamScan, false},
		{"GiftWrap", GiftWrap, false},
		{"incremental", Incremental, false},
		{"quickhull", GrahamScan, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseAlgorithm2D(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a)
		})
	}
	assert.Equal(t, "unknown", Algorithm2D(42).String())
}

func TestConvexHull2D_Algorithms(t *testing.T) {
	points := []mgl64.Vec2{{0, 0}, {3, -1}, {4, 2}, {1, 1}, {2, 4}, {-1, 3}, {1, 2}}
	expected := []mgl64.Vec2{{0, 0}, {3, -1}, {4, 2}, {2, 4}, {-1, 3}}

	for _, alg := range []Algorithm2D{GrahamScan, GiftWrap, Incremental} {
		t.Run(alg.String(), func(t *testing.T) {
			vertices, err := (&Builder{Algorithm2D: alg}).ConvexHull2D(points)
			require.NoError(t, err)
			assertSamePoints(t, expected, vertices)

			for i := range vertices {
				n := len(vertices)
				assert.Equal(t, geom.CounterClockwise, geom.TurnDirection(vertices[i], vertices[(i+1)%n], vertices[(i+2)%n]))
			}
		})
	}

	_, err := (&Builder{Algorithm2D: Algorithm2D(9)}).ConvexHull2D(points)
	assert.Error(t, err)
}

func TestPolygon(t *testing.T) {
	polygon, err := (&Builder{}).FromPoints2D([]mgl64.Vec2{{0, 0}, {0, 2}, {2, 0}, {2, 2}, {1, 1}})
	require.NoError(t, err)

	assert.Equal(t, []mgl64.Vec2{{0, 0}, {2, 0}, {2, 2}, {0, 2}}, polygon.Vertices)
	assert.Equal(t, [][3]int{{0, 2, 1}, {0, 3, 2}}, polygon.Triangles())
	assert.InDelta(t, 4, polygon.Area(), 1e-12)

	assert.Equal(t, mgl64.Vec2{1, 1}, polygon.Centre())
	bounds := polygon.Bounds()
	assert.Equal(t, mgl64.Vec2{0, 0}, bounds.Min)
	assert.Equal(t, mgl64.Vec2{2, 2}, bounds.Max)

	assert.True(t, polygon.IsVertex(mgl64.Vec2{2, 2}))
	assert.False(t, polygon.IsVertex(mgl64.Vec2{1, 1}))
	assert.True(t, polygon.Contains(mgl64.Vec2{1, 1}))
	assert.True(t, polygon.Contains(mgl64.Vec2{2, 1}))
	assert.False(t, polygon.Contains(mgl64.Vec2{3, 1}))

	require.Len(t, polygon.Inequalities, 4)
	for i, in := range polygon.Inequalities {
		e := polygon.Edges[i]
		assert.True(t, in.OnBoundary(e.A))
		assert.True(t, in.OnBoundary(e.B))
		for _, v := range polygon.Vertices {
			assert.True(t, in.WithinBounds(v))
		}
	}
}

func TestPolygon_Triangle(t *testing.T) {
	polygon, err := (&Builder{}).FromPoints2D([]mgl64.Vec2{{0, 0}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, [][3]int{{0, 2, 1}}, polygon.Triangles())
}

func TestPolyhedron(t *testing.T) {
	phi := (1 + math.Sqrt(5)) / 2
	var points []mgl64.Vec3
	for _, a := range []float64{-1, 1} {
		for _, b := range []float64{-phi, phi} {
			points = append(points, mgl64.Vec3{0, a, b}, mgl64.Vec3{a, b, 0}, mgl64.Vec3{b, 0, a})
		}
	}
	points = append(points, mgl64.Vec3{0, 0, 0})

	p, err := (&Builder{}).FromPoints3D(points)
	require.NoError(t, err)

	assert.Len(t, p.Vertices, 12)
	assert.Len(t, p.Ridges, 30)
	assert.Len(t, p.Faces, 20)
	assert.False(t, p.IsVertex(mgl64.Vec3{0, 0, 0}))
	assert.True(t, p.IsVertex(points[0]))
	assert.True(t, p.Contains(mgl64.Vec3{0.3, 0.3, 0.3}))
	assert.False(t, p.Contains(mgl64.Vec3{2, 2, 2}))
	assert.True(t, p.Bounds().ContainsPoint(mgl64.Vec3{phi, phi, phi}))

	for i, tri := range p.Triangles() {
		a, b, c := p.Vertices[tri[0]], p.Vertices[tri[1]], p.Vertices[tri[2]]
		// counterclockwise from outside: the winding normal points away from the centre
		assert.Greater(t, b.Sub(a).Cross(c.Sub(a)).Dot(a), 0.0, "triangle %d", i)
	}
}

func TestPolyhedron_BoundaryPointsAreNotVertices(t *testing.T) {
	var points []mgl64.Vec3
	for _, x := range []float64{0, 1, 2} {
		for _, y := range []float64{0, 1, 2} {
			for _, z := range []float64{0, 1, 2} {
				points = append(points, mgl64.Vec3{x, y, z})
			}
		}
	}

	p, err := (&Builder{}).FromPoints3D(points)
	require.NoError(t, err)

	assert.Len(t, p.Vertices, 8)
	assert.True(t, p.IsVertex(mgl64.Vec3{2, 2, 2}))
	assert.False(t, p.IsVertex(mgl64.Vec3{1, 1, 0}), "face centre")
	assert.False(t, p.IsVertex(mgl64.Vec3{1, 0, 0}), "edge midpoint")
	assert.False(t, p.IsVertex(mgl64.Vec3{1, 1, 1}), "centre")
	assert.True(t, p.Contains(mgl64.Vec3{1, 1, 0}))
}

func TestPolychoron(t *testing.T) {
	points := []mgl64.Vec4{
		{0, 0, 0, 0},
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{0.1, 0.1, 0.1, 0.1},
	}

	p, err := (&Builder{}).FromPoints4D(points)
	require.NoError(t, err)

	assert.Len(t, p.Vertices, 5)
	assert.Len(t, p.Segments, 10)
	assert.Len(t, p.SubFacets, 10)
	assert.Len(t, p.Facets, 5)
	assert.False(t, p.IsVertex(points[5]))
	assert.True(t, p.Contains(points[5]))
	assert.False(t, p.Contains(mgl64.Vec4{1, 1, 1, 1}))
	assert.True(t, geom.Equal(mgl64.Vec4{1.1, 1.1, 1.1, 1.1}.Mul(1.0/6), p.Centre()))
}
