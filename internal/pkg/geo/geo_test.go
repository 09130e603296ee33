package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance_SamePoint(t *testing.T) {
	assert.Equal(t, 0.0, HaversineDistance(52.52, 13.405, 52.52, 13.405))
	assert.Equal(t, 0.0, HaversineDistance(0, 0, 0, 0))
}

func TestHaversineDistance_Symmetric(t *testing.T) {
	points := [][4]float64{
		{52.52, 13.405, 48.8566, 2.3522},
		{-33.8688, 151.2093, 35.6762, 139.6503},
		{0, 0, 0.0089932, 0},
	}
	for _, p := range points {
		ab := HaversineDistance(p[0], p[1], p[2], p[3])
		ba := HaversineDistance(p[2], p[3], p[0], p[1])
		assert.Equal(t, ab, ba)
	}
}

func TestHaversineDistance_EquatorDegree(t *testing.T) {
	// 0.0089932 degrees of longitude at the equator is ~1000 m.
	d := HaversineDistance(0, 0, 0, 0.0089932)
	assert.InDelta(t, 1000, d, 1)

	// 0.02 degrees is ~2224 m, well outside a 1000 m radius.
	far := HaversineDistance(0, 0, 0, 0.02)
	assert.InDelta(t, 2224, far, 5)
}

func TestHaversineDistance_KnownCityPair(t *testing.T) {
	// Berlin -> Paris, roughly 878 km.
	d := HaversineDistance(52.52, 13.405, 48.8566, 2.3522)
	assert.InDelta(t, 878000, d, 2000)
}

func TestWithinRadius(t *testing.T) {
	assert.True(t, WithinRadius(0, 0.0089932, 0, 0, 1001))
	assert.False(t, WithinRadius(0, 0.02, 0, 0, 1000))
	// Boundary is inclusive: a point at exactly zero distance with radius 0.
	assert.True(t, WithinRadius(10, 10, 10, 10, 0))
}
