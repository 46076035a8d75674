// Package geojson implements the subset of GeoJSON (RFC 7946) used by the
// interpolation pipeline: Point and Polygon features carrying free-form
// attribute maps.
package geojson

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned when a collection contains a geometry type
// an operation cannot work with (e.g. non-point samples).
var ErrInvalidGeometry = errors.New("invalid geometry type")

// GeometryType identifies the shape of a Geometry.
type GeometryType string

const (
	GeometryPoint   GeometryType = "Point"
	GeometryPolygon GeometryType = "Polygon"
)

// Position is a single coordinate: [lon, lat] or [lon, lat, alt].
type Position []float64

// Lon returns the longitude (first component).
func (p Position) Lon() float64 { return p[0] }

// Lat returns the latitude (second component).
func (p Position) Lat() float64 { return p[1] }

// Alt returns the altitude component and whether one is present.
func (p Position) Alt() (float64, bool) {
	if len(p) < 3 {
		return 0, false
	}
	return p[2], true
}

// Geometry is a Point or Polygon geometry. Exactly one of Point and Polygon
// is populated, matching Type.
type Geometry struct {
	Type    GeometryType
	Point   Position
	Polygon []Ring
}

// Ring is a closed sequence of positions (first == last).
type Ring []Position

type geometryJSON struct {
	Type        GeometryType    `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// MarshalJSON encodes the coordinates in the layout GeoJSON mandates for the
// geometry type.
func (g Geometry) MarshalJSON() ([]byte, error) {
	var coords interface{}
	switch g.Type {
	case GeometryPoint:
		coords = g.Point
	case GeometryPolygon:
		coords = g.Polygon
	default:
		return nil, fmt.Errorf("geojson: cannot marshal geometry type %q", g.Type)
	}
	raw, err := json.Marshal(coords)
	if err != nil {
		return nil, err
	}
	return json.Marshal(geometryJSON{Type: g.Type, Coordinates: raw})
}

// UnmarshalJSON decodes the coordinates according to the geometry type.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	var raw geometryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	g.Type = raw.Type
	switch raw.Type {
	case GeometryPoint:
		return json.Unmarshal(raw.Coordinates, &g.Point)
	case GeometryPolygon:
		return json.Unmarshal(raw.Coordinates, &g.Polygon)
	default:
		return fmt.Errorf("geojson: cannot unmarshal geometry type %q", raw.Type)
	}
}

// Feature is a geometry with an attribute map.
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// FeatureCollection is an ordered set of features.
type FeatureCollection struct {
	Type     string     `json:"type"`
	Features []*Feature `json:"features"`
}

// NewPoint builds a point feature. The position may carry an altitude as a
// third component.
func NewPoint(pos Position, props map[string]interface{}) *Feature {
	return &Feature{
		Type:       "Feature",
		Geometry:   Geometry{Type: GeometryPoint, Point: pos},
		Properties: cloneProperties(props),
	}
}

// NewPolygon builds a polygon feature from one or more closed rings.
func NewPolygon(rings []Ring, props map[string]interface{}) *Feature {
	return &Feature{
		Type:       "Feature",
		Geometry:   Geometry{Type: GeometryPolygon, Polygon: rings},
		Properties: cloneProperties(props),
	}
}

// NewFeatureCollection builds a collection from the given features.
func NewFeatureCollection(features ...*Feature) *FeatureCollection {
	return &FeatureCollection{Type: "FeatureCollection", Features: features}
}

// Clone returns a deep copy of the feature. Writing to the clone never
// touches the original's geometry or properties.
func (f *Feature) Clone() *Feature {
	if f == nil {
		return nil
	}
	out := &Feature{
		Type:       f.Type,
		Properties: cloneProperties(f.Properties),
	}
	out.Geometry.Type = f.Geometry.Type
	if f.Geometry.Point != nil {
		out.Geometry.Point = append(Position(nil), f.Geometry.Point...)
	}
	for _, ring := range f.Geometry.Polygon {
		cp := make(Ring, len(ring))
		for i, pos := range ring {
			cp[i] = append(Position(nil), pos...)
		}
		out.Geometry.Polygon = append(out.Geometry.Polygon, cp)
	}
	return out
}

// SetProperty writes an attribute, allocating the map on first use.
func (f *Feature) SetProperty(name string, value interface{}) {
	if f.Properties == nil {
		f.Properties = make(map[string]interface{})
	}
	f.Properties[name] = value
}

// NumberProperty reads an attribute as a float64, accepting the numeric
// types a decoded JSON document or caller-built map may carry.
func (f *Feature) NumberProperty(name string) (float64, bool) {
	if f.Properties == nil {
		return 0, false
	}
	v, ok := f.Properties[name]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		if parsed, err := n.Float64(); err == nil {
			return parsed, true
		}
	}
	return 0, false
}

// ValidatePoints returns ErrInvalidGeometry unless every feature in the
// collection is a point with at least lon and lat components.
func (fc *FeatureCollection) ValidatePoints() error {
	for i, f := range fc.Features {
		if f.Geometry.Type != GeometryPoint || len(f.Geometry.Point) < 2 {
			return fmt.Errorf("geojson: feature %d is %q, want Point: %w",
				i, f.Geometry.Type, ErrInvalidGeometry)
		}
	}
	return nil
}

func cloneProperties(props map[string]interface{}) map[string]interface{} {
	if props == nil {
		return nil
	}
	out := make(map[string]interface{}, len(props))
	for k, v := range props {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return cloneProperties(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
