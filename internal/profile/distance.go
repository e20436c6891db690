package profile

import "github.com/golang/geo/s2"

const (
	// EarthRadiusMeters is the mean Earth radius used for great-circle
	// distances.
	EarthRadiusMeters = 6371000.0

	metersPerMile = 1609.34
	feetPerMeter  = 3.28084
)

// greatCircleMeters returns the haversine surface distance between two
// fixes in meters. Elevation is deliberately not part of the formula: the
// profile's x axis is planar distance.
func greatCircleMeters(a, b TrackPoint) float64 {
	p := s2.LatLngFromDegrees(a.Lat, a.Lon)
	q := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p.Distance(q).Radians() * EarthRadiusMeters
}
