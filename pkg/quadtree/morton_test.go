package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantiseAxisClampsToRange(t *testing.T) {
	assert.Equal(t, uint32(0), quantiseAxis(0, 0, 10))
	assert.Equal(t, uint32(MortonQuantisation), quantiseAxis(10, 0, 10))
	assert.Equal(t, uint32(0), quantiseAxis(-5, 0, 10))
	assert.Equal(t, uint32(MortonQuantisation), quantiseAxis(50, 0, 10))
}

func TestQuantiseAxisDegenerateExtent(t *testing.T) {
	assert.Equal(t, uint32(0), quantiseAxis(5, 5, 5))
}

func TestSpread16Interleaving(t *testing.T) {
	assert.Equal(t, uint32(0), spread16(0))
	assert.Equal(t, uint32(1), spread16(1))
	assert.Equal(t, uint32(0b0100), spread16(0b10))
	assert.Equal(t, uint32(0b010000), spread16(0b100))
}

func TestMortonCodeOrdersQuadrants(t *testing.T) {
	// Top-left quadrant of a unit square should sort before top-right,
	// which sorts before bottom-left, which sorts before bottom-right --
	// contiguous runs in Morton order must line up with [TL,TR,BL,BR].
	tl := mortonCode(quantiseAxis(0.1, 0, 1), quantiseAxis(0.1, 0, 1))
	tr := mortonCode(quantiseAxis(0.9, 0, 1), quantiseAxis(0.1, 0, 1))
	bl := mortonCode(quantiseAxis(0.1, 0, 1), quantiseAxis(0.9, 0, 1))
	br := mortonCode(quantiseAxis(0.9, 0, 1), quantiseAxis(0.9, 0, 1))

	assert.Less(t, tl, tr)
	assert.Less(t, tr, bl)
	assert.Less(t, bl, br)
}

func TestBoundsOfAndCode(t *testing.T) {
	points := []Point{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: -5, Y: 20}}
	b := boundsOf(points)

	assert.Equal(t, -5.0, b.minX)
	assert.Equal(t, 10.0, b.maxX)
	assert.Equal(t, 0.0, b.minY)
	assert.Equal(t, 20.0, b.maxY)

	// A point at the bounds' min corner quantises to code 0.
	assert.Equal(t, uint32(0), b.code(Point{X: -5, Y: 0}))
}
