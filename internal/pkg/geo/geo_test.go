package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{13.7563, 100.5018},
		{-33.8688, 151.2093},
		{89.9, -179.9},
	}
	for _, p := range points {
		assert.Equal(t, 0.0, Distance(p[0], p[1], p[0], p[1]))
	}
}

func TestDistance_Symmetric(t *testing.T) {
	d1 := Distance(13.7563, 100.5018, 18.7883, 98.9853)
	d2 := Distance(18.7883, 98.9853, 13.7563, 100.5018)
	assert.Equal(t, d1, d2)
}

func TestDistance_KnownDistance(t *testing.T) {
	// Bangkok city center to Chiang Mai, roughly 580 km.
	d := Distance(13.7563, 100.5018, 18.7883, 98.9853)
	assert.InDelta(t, 580000, d, 10000)
}

func TestDistance_ShortRange(t *testing.T) {
	// ~111 meters per 0.001 degree of latitude.
	d := Distance(13.7563, 100.5018, 13.7573, 100.5018)
	assert.InDelta(t, 111, d, 1)
}

func TestDistance_NaNPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(Distance(math.NaN(), 100.5, 13.7, 100.5)))
}
