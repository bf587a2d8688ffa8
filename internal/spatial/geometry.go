package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Constants
const (
	// EarthRadiusMiles matches the radius used by the trip planner throughout
	EarthRadiusMiles = 3958.8
	// MilesPerDegreeLat approximates one degree of latitude
	MilesPerDegreeLat = 69.0
)

// HaversineMiles calculates the great-circle distance between two points in
// miles using the Haversine formula
func HaversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMiles
}

// BoundingBox is a rectangular lat/long search region
type BoundingBox struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// BoundingBoxAround computes an approximately square region of maxMiles around
// the center point using the flat-earth conversion of one degree of latitude
// to 69 miles. Corners overshoot the radius slightly and the longitude span
// degrades near the poles.
func BoundingBoxAround(lat, lon, maxMiles float64) BoundingBox {
	latDelta := maxMiles / MilesPerDegreeLat
	lonDelta := maxMiles / (MilesPerDegreeLat * math.Cos(lat*math.Pi/180))

	return BoundingBox{
		MinLon: lon - lonDelta,
		MinLat: lat - latDelta,
		MaxLon: lon + lonDelta,
		MaxLat: lat + latDelta,
	}
}

// Contains reports whether the point lies within the box
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}
