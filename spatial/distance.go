// Package spatial provides the coordinate math behind grid construction and
// interpolation: geodesic distance, unit conversion, bounding boxes,
// centroids and point-in-polygon tests.
package spatial

import (
	"github.com/golang/geo/s2"

	"github.com/meteogrid/idw/geojson"
)

// HaversineDistance calculates the great-circle distance between two points
// in meters using the Haversine formula.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Distance returns the great-circle distance between two positions in the
// given unit.
func Distance(a, b geojson.Position, unit Unit) float64 {
	m := HaversineDistance(a.Lat(), a.Lon(), b.Lat(), b.Lon())
	return FromMeters(m, unit)
}
