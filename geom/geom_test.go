package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     mgl64.Vec3
		expected bool
	}{
		{"identical", mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3}, true},
		{"within epsilon", mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1 + 1e-11, 2, 3 - 1e-11}, true},
		{"one component off", mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3 + 1e-9}, false},
		{"negative zero", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{math.Copysign(0, -1), 0, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Equal(tt.a, tt.b))
			assert.Equal(t, tt.expected, Equal(tt.b, tt.a))
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     mgl64.Vec3
		expected int
	}{
		{"equal vectors", mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3}, 0},
		{"a < b on x", mgl64.Vec3{1, 2, 3}, mgl64.Vec3{2, 2, 3}, -1},
		{"a > b on x", mgl64.Vec3{2, 2, 3}, mgl64.Vec3{1, 2, 3}, 1},
		{"a < b on y (x equal)", mgl64.Vec3{1, 1, 3}, mgl64.Vec3{1, 2, 3}, -1},
		{"a > b on z (x,y equal)", mgl64.Vec3{1, 2, 4}, mgl64.Vec3{1, 2, 3}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Compare(tt.a, tt.b))
		})
	}
}

func TestAt(t *testing.T) {
	v := mgl64.Vec4{1, 2, 3, 4}
	for i := 0; i < 4; i++ {
		c, err := At(v, i)
		require.NoError(t, err)
		assert.Equal(t, float64(i+1), c)
	}

	_, err := At(v, 4)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = At(mgl64.Vec2{1, 2}, -1)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestElementwise(t *testing.T) {
	a := mgl64.Vec3{2, 4, 6}
	b := mgl64.Vec3{1, 2, 3}

	assert.Equal(t, mgl64.Vec3{2, 8, 18}, MulElem(a, b))
	assert.Equal(t, mgl64.Vec3{2, 2, 2}, DivElem(a, b))
	assert.Equal(t, mgl64.Vec2{3, 8}, MulElem(mgl64.Vec2{1, 2}, mgl64.Vec2{3, 4}))
}

func TestNormalize(t *testing.T) {
	n, err := Normalize(mgl64.Vec4{0, 3, 0, 4})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, n.Len(), 1e-12)
	assert.InDelta(t, 0.6, n.Y(), 1e-12)

	_, err = Normalize(mgl64.Vec3{0, 0, 1e-12})
	assert.True(t, errors.Is(err, ErrDegenerateInput))
}

func TestMean(t *testing.T) {
	points := []mgl64.Vec2{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	assert.Equal(t, mgl64.Vec2{1, 1}, Mean(points))
	assert.Equal(t, mgl64.Vec3{}, Mean([]mgl64.Vec3{}))
}

func TestDedup(t *testing.T) {
	points := []mgl64.Vec2{{0, 0}, {1, 0}, {1e-12, 0}, {1, 1e-11}, {1, 1}}
	unique := Dedup(points)

	require.Len(t, unique, 3)
	// first representative wins
	assert.Equal(t, mgl64.Vec2{0, 0}, unique[0])
	assert.Equal(t, mgl64.Vec2{1, 0}, unique[1])
	assert.Equal(t, mgl64.Vec2{1, 1}, unique[2])

	assert.Len(t, Without(points, mgl64.Vec2{0, 0}), 3)
}

func TestAxisExtremes(t *testing.T) {
	points := []mgl64.Vec3{{0, 0, 0}, {5, 1, 1}, {-2, 3, 0}, {1, -4, 7}}
	extremes := AxisExtremes(points)

	require.Len(t, extremes, 6)
	assert.Equal(t, mgl64.Vec3{-2, 3, 0}, extremes[0])
	assert.Equal(t, mgl64.Vec3{5, 1, 1}, extremes[1])
	assert.Equal(t, mgl64.Vec3{1, -4, 7}, extremes[2])
	assert.Equal(t, mgl64.Vec3{-2, 3, 0}, extremes[3])
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, extremes[4])
	assert.Equal(t, mgl64.Vec3{1, -4, 7}, extremes[5])
}

func TestFarthestPair(t *testing.T) {
	a, b, ok := FarthestPair([]mgl64.Vec2{{0, 0}, {1, 0}, {5, 5}, {2, 1}})
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec2{0, 0}, a)
	assert.Equal(t, mgl64.Vec2{5, 5}, b)

	_, _, ok = FarthestPair([]mgl64.Vec2{{1, 1}, {1, 1}})
	assert.False(t, ok)
}

func TestDistanceToFlat(t *testing.T) {
	origin := mgl64.Vec4{1, 1, 1, 1}
	basis := []mgl64.Vec4{{1, 0, 0, 0}, {0, 1, 0, 0}}

	d, dir := DistanceToFlat(mgl64.Vec4{5, -3, 4, 5}, origin, basis)
	assert.InDelta(t, 5.0, d, 1e-12)
	assert.InDelta(t, 0.6, dir.Z(), 1e-12)
	assert.InDelta(t, 0.8, dir.W(), 1e-12)

	d, dir = DistanceToFlat(mgl64.Vec4{7, 9, 1, 1}, origin, basis)
	assert.InDelta(t, 0.0, d, 1e-12)
	assert.Equal(t, mgl64.Vec4{}, dir)
}

func TestCross4(t *testing.T) {
	tests := []struct {
		name    string
		u, v, w mgl64.Vec4
	}{
		{"axes", mgl64.Vec4{1, 0, 0, 0}, mgl64.Vec4{0, 1, 0, 0}, mgl64.Vec4{0, 0, 1, 0}},
		{"generic", mgl64.Vec4{1, 2, 3, 4}, mgl64.Vec4{-1, 0, 2, 1}, mgl64.Vec4{3, 1, -2, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Cross4(tt.u, tt.v, tt.w)
			assert.Greater(t, n.Len(), 0.0)
			assert.InDelta(t, 0.0, n.Dot(tt.u), 1e-9)
			assert.InDelta(t, 0.0, n.Dot(tt.v), 1e-9)
			assert.InDelta(t, 0.0, n.Dot(tt.w), 1e-9)
		})
	}

	assert.Equal(t, 0.0, Cross4(mgl64.Vec4{1, 2, 3, 4}, mgl64.Vec4{2, 4, 6, 8}, mgl64.Vec4{0, 0, 1, 0}).Len())
}

func TestTripleProduct(t *testing.T) {
	assert.InDelta(t, 1.0, TripleProduct(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}), 1e-12)
	assert.InDelta(t, 0.0, TripleProduct(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{2, 4, 6}, mgl64.Vec3{0, 0, 1}), 1e-12)
}

func TestAABB(t *testing.T) {
	box := NewAABB([]mgl64.Vec3{{0, 0, 0}, {2, -1, 3}, {1, 4, -2}})

	assert.Equal(t, mgl64.Vec3{0, -1, -2}, box.Min)
	assert.Equal(t, mgl64.Vec3{2, 4, 3}, box.Max)
	assert.Equal(t, mgl64.Vec3{1, 1.5, 0.5}, box.Centre())
	assert.Equal(t, mgl64.Vec3{2, 5, 5}, box.Size())
	assert.True(t, box.ContainsPoint(mgl64.Vec3{2, 4, 3}))
	assert.False(t, box.ContainsPoint(mgl64.Vec3{2.5, 0, 0}))

	other := AABB[mgl64.Vec3]{Min: mgl64.Vec3{1.5, 3, 2}, Max: mgl64.Vec3{5, 5, 5}}
	assert.True(t, box.Overlaps(other))
	other.Min[0] = 2.5
	assert.False(t, box.Overlaps(other))
}
