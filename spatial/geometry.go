package spatial

import "github.com/meteogrid/idw/geojson"

// BoundingBox calculates the bounding box of every coordinate in the
// collection. Returns (minLon, minLat, maxLon, maxLat).
func BoundingBox(fc *geojson.FeatureCollection) (float64, float64, float64, float64) {
	first := true
	var minLon, minLat, maxLon, maxLat float64

	extend := func(pos geojson.Position) {
		if first {
			minLon, maxLon = pos.Lon(), pos.Lon()
			minLat, maxLat = pos.Lat(), pos.Lat()
			first = false
			return
		}
		if pos.Lon() < minLon {
			minLon = pos.Lon()
		}
		if pos.Lon() > maxLon {
			maxLon = pos.Lon()
		}
		if pos.Lat() < minLat {
			minLat = pos.Lat()
		}
		if pos.Lat() > maxLat {
			maxLat = pos.Lat()
		}
	}

	for _, f := range fc.Features {
		switch f.Geometry.Type {
		case geojson.GeometryPoint:
			extend(f.Geometry.Point)
		case geojson.GeometryPolygon:
			for _, ring := range f.Geometry.Polygon {
				for _, pos := range ring {
					extend(pos)
				}
			}
		}
	}

	return minLon, minLat, maxLon, maxLat
}

// Centroid calculates the arithmetic centroid of a ring's vertices. The
// closing vertex is excluded so it is not counted twice.
func Centroid(ring geojson.Ring) geojson.Position {
	if len(ring) == 0 {
		return geojson.Position{0, 0}
	}
	vertices := ring
	if len(ring) > 1 && samePosition(ring[0], ring[len(ring)-1]) {
		vertices = ring[:len(ring)-1]
	}

	var sumLon, sumLat float64
	for _, pos := range vertices {
		sumLon += pos.Lon()
		sumLat += pos.Lat()
	}
	n := float64(len(vertices))
	return geojson.Position{sumLon / n, sumLat / n}
}

// RepresentativeLocation returns the coordinate distances are measured
// against for a feature: the point itself for point geometries, otherwise
// the centroid of the polygon's outer ring.
func RepresentativeLocation(f *geojson.Feature) geojson.Position {
	if f.Geometry.Type == geojson.GeometryPoint {
		return f.Geometry.Point
	}
	if len(f.Geometry.Polygon) == 0 {
		return geojson.Position{0, 0}
	}
	return Centroid(f.Geometry.Polygon[0])
}

// PointInPolygon checks if a point is inside a ring using ray casting.
func PointInPolygon(point geojson.Position, ring geojson.Ring) bool {
	if len(ring) < 3 {
		return false
	}

	inside := false
	j := len(ring) - 1

	for i := 0; i < len(ring); i++ {
		if ((ring[i].Lat() > point.Lat()) != (ring[j].Lat() > point.Lat())) &&
			(point.Lon() < (ring[j].Lon()-ring[i].Lon())*(point.Lat()-ring[i].Lat())/(ring[j].Lat()-ring[i].Lat())+ring[i].Lon()) {
			inside = !inside
		}
		j = i
	}

	return inside
}

func samePosition(a, b geojson.Position) bool {
	return a.Lon() == b.Lon() && a.Lat() == b.Lat()
}
