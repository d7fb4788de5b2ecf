package geo

import "math"

const (
	regionPadding  = 1.5
	regionMargin   = 0.01
	regionMinDelta = 0.05
)

// Region is the map viewport that keeps two points on screen.
type Region struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitude_delta"`
	LongitudeDelta float64 `json:"longitude_delta"`
	DistanceKm     float64 `json:"distance_km"`
}

// RegionBetween centers the viewport on the midpoint of a and b and pads the
// span so both stay visible, never zooming in past regionMinDelta.
func RegionBetween(a, b Coordinate) Region {
	latDelta := math.Abs(a.Latitude-b.Latitude)*regionPadding + regionMargin
	lonDelta := math.Abs(a.Longitude-b.Longitude)*regionPadding + regionMargin

	return Region{
		Latitude:       (a.Latitude + b.Latitude) / 2,
		Longitude:      (a.Longitude + b.Longitude) / 2,
		LatitudeDelta:  math.Max(latDelta, regionMinDelta),
		LongitudeDelta: math.Max(lonDelta, regionMinDelta),
		DistanceKm:     Distance(a, b),
	}
}
