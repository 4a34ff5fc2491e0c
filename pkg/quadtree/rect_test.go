package quadtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContainsBoundaryInclusive(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, r.Contains(Point{X: 0, Y: 0}))
	assert.True(t, r.Contains(Point{X: 10, Y: 10}))
	assert.True(t, r.Contains(Point{X: 10, Y: 0}))
	assert.True(t, r.Contains(Point{X: 5, Y: 5}))
	assert.False(t, r.Contains(Point{X: 10.0001, Y: 5}))
	assert.False(t, r.Contains(Point{X: 5, Y: -0.0001}))
}

func TestRectContainsRect(t *testing.T) {
	outer := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, outer.ContainsRect(Rect{X: 0, Y: 0, W: 10, H: 10}))
	assert.True(t, outer.ContainsRect(Rect{X: 2, Y: 2, W: 4, H: 4}))
	assert.False(t, outer.ContainsRect(Rect{X: 2, Y: 2, W: 10, H: 10}))
	assert.False(t, outer.ContainsRect(Rect{X: -1, Y: 2, W: 4, H: 4}))
}

func TestRectIntersectsSharedEdgeCounts(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 10, Y: 0, W: 10, H: 10} // touches a's right edge exactly

	assert.True(t, a.Intersects(b))
	assert.True(t, b.Intersects(a))

	c := Rect{X: 10.0001, Y: 0, W: 10, H: 10}
	assert.False(t, a.Intersects(c))
}

func TestRectQuartersTileExactly(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	quarters := r.Quarters(r.Center())

	total := 0.0
	for _, q := range quarters {
		total += q.Area()
		assert.True(t, r.ContainsRect(q))
	}
	assert.InDelta(t, r.Area(), total, 1e-9)

	assert.Equal(t, Rect{X: 0, Y: 0, W: 5, H: 5}, quarters[quadTL])
	assert.Equal(t, Rect{X: 5, Y: 0, W: 5, H: 5}, quarters[quadTR])
	assert.Equal(t, Rect{X: 0, Y: 5, W: 5, H: 5}, quarters[quadBL])
	assert.Equal(t, Rect{X: 5, Y: 5, W: 5, H: 5}, quarters[quadBR])
}

func TestRectQuartersOffCentreSplit(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	quarters := r.Quarters(Point{X: 3, Y: 7})

	total := 0.0
	for _, q := range quarters {
		assert.True(t, r.ContainsRect(q))
		total += q.Area()
	}
	assert.InDelta(t, r.Area(), total, 1e-9)
}

func TestRectCanSubdivide(t *testing.T) {
	assert.True(t, Rect{X: 0, Y: 0, W: 1, H: 1}.canSubdivide())
	assert.False(t, Rect{X: 0, Y: 0, W: 0.05, H: 0.05}.canSubdivide())
	assert.False(t, Rect{X: 0, Y: 0, W: math.Inf(1), H: 1}.canSubdivide())
	assert.False(t, Rect{X: 0, Y: 0, W: math.NaN(), H: 1}.canSubdivide())
}

func TestRectInterior(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, r.interior(Point{X: 5, Y: 5}))
	assert.False(t, r.interior(Point{X: 0, Y: 5}))
	assert.False(t, r.interior(Point{X: 5, Y: 10}))
}
