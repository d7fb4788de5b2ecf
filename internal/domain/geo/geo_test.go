package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var points = []Coordinate{
	{Latitude: 21.1210, Longitude: -101.6823},
	{Latitude: 21.1300, Longitude: -101.6800},
	{Latitude: 19.4326, Longitude: -99.1332},
	{Latitude: -33.8688, Longitude: 151.2093},
	{Latitude: 51.5074, Longitude: -0.1278},
	{Latitude: 0, Longitude: 179.9},
	{Latitude: 0, Longitude: -179.9},
	{Latitude: 89.9, Longitude: 0},
}

func TestDistance_Symmetric(t *testing.T) {
	for _, a := range points {
		for _, b := range points {
			assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
		}
	}
}

func TestDistance_ZeroForSamePoint(t *testing.T) {
	for _, a := range points {
		assert.Equal(t, 0.0, Distance(a, a))
	}
}

func TestDistance_TriangleInequality(t *testing.T) {
	for _, a := range points {
		for _, b := range points {
			for _, c := range points {
				assert.LessOrEqual(t, Distance(a, c), Distance(a, b)+Distance(b, c)+1e-6)
			}
		}
	}
}

func TestDistance_KnownValues(t *testing.T) {
	business := Coordinate{Latitude: 21.1210, Longitude: -101.6823}
	user := Coordinate{Latitude: 21.1300, Longitude: -101.6800}

	assert.InDelta(t, 1.0, Distance(user, business), 0.2)

	// across the antimeridian the short way round
	assert.InDelta(t, 22.24, Distance(points[5], points[6]), 0.1)
}

func TestDistance_NaNPropagates(t *testing.T) {
	bad := Coordinate{Latitude: math.NaN(), Longitude: 0}
	assert.True(t, math.IsNaN(Distance(bad, points[0])))
}

func TestCoordinateValid(t *testing.T) {
	assert.True(t, DefaultLocation.Valid())
	assert.True(t, Coordinate{Latitude: -90, Longitude: 180}.Valid())
	assert.False(t, Coordinate{Latitude: 91, Longitude: 0}.Valid())
	assert.False(t, Coordinate{Latitude: 0, Longitude: -181}.Valid())
	assert.False(t, Coordinate{Latitude: math.Inf(1), Longitude: 0}.Valid())
	assert.False(t, Coordinate{Latitude: 0, Longitude: math.NaN()}.Valid())
}

func TestRegionBetween(t *testing.T) {
	a := Coordinate{Latitude: 21.10, Longitude: -101.70}
	b := Coordinate{Latitude: 21.20, Longitude: -101.60}

	r := RegionBetween(a, b)

	assert.InDelta(t, 21.15, r.Latitude, 1e-9)
	assert.InDelta(t, -101.65, r.Longitude, 1e-9)
	assert.InDelta(t, 0.16, r.LatitudeDelta, 1e-9)
	assert.InDelta(t, 0.16, r.LongitudeDelta, 1e-9)
	assert.InDelta(t, Distance(a, b), r.DistanceKm, 1e-12)
}

func TestRegionBetween_MinimumZoom(t *testing.T) {
	a := Coordinate{Latitude: 21.1210, Longitude: -101.6823}

	r := RegionBetween(a, a)

	assert.Equal(t, 0.05, r.LatitudeDelta)
	assert.Equal(t, 0.05, r.LongitudeDelta)
	assert.Equal(t, 0.0, r.DistanceKm)
}
