package geojson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_Independence(t *testing.T) {
	t.Parallel()

	orig := NewPoint(Position{116.4, 39.9, 43.5}, map[string]interface{}{
		"tem":  21.5,
		"tags": []interface{}{"station"},
	})

	clone := orig.Clone()
	clone.SetProperty("tem", -3.0)
	clone.SetProperty("color", "#ff0000")
	clone.Geometry.Point[0] = 0

	assert.Equal(t, 116.4, orig.Geometry.Point.Lon())
	v, ok := orig.NumberProperty("tem")
	require.True(t, ok)
	assert.Equal(t, 21.5, v)
	_, hasColor := orig.Properties["color"]
	assert.False(t, hasColor)
}

func TestClone_Polygon(t *testing.T) {
	t.Parallel()

	ring := Ring{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}
	orig := NewPolygon([]Ring{ring}, nil)

	clone := orig.Clone()
	clone.Geometry.Polygon[0][0][0] = 99

	assert.Equal(t, 0.0, orig.Geometry.Polygon[0][0].Lon())
}

func TestNumberProperty(t *testing.T) {
	t.Parallel()

	f := NewPoint(Position{0, 0}, map[string]interface{}{
		"f64":  12.5,
		"int":  7,
		"num":  json.Number("3.25"),
		"text": "not a number",
	})

	cases := []struct {
		name string
		key  string
		want float64
		ok   bool
	}{
		{"float64", "f64", 12.5, true},
		{"int", "int", 7, true},
		{"json number", "num", 3.25, true},
		{"string", "text", 0, false},
		{"absent", "nope", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := f.NumberProperty(tc.key)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGeometryJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("point with altitude", func(t *testing.T) {
		in := NewPoint(Position{116.4, 39.9, 43.5}, map[string]interface{}{"tem": 21.5})
		raw, err := json.Marshal(in)
		require.NoError(t, err)

		var out Feature
		require.NoError(t, json.Unmarshal(raw, &out))
		assert.Equal(t, GeometryPoint, out.Geometry.Type)
		assert.Equal(t, Position{116.4, 39.9, 43.5}, out.Geometry.Point)
	})

	t.Run("polygon", func(t *testing.T) {
		ring := Ring{{0, 0}, {0, 1}, {1, 1}, {0, 0}}
		in := NewPolygon([]Ring{ring}, nil)
		raw, err := json.Marshal(in)
		require.NoError(t, err)

		var out Feature
		require.NoError(t, json.Unmarshal(raw, &out))
		assert.Equal(t, GeometryPolygon, out.Geometry.Type)
		require.Len(t, out.Geometry.Polygon, 1)
		assert.Equal(t, ring, out.Geometry.Polygon[0])
	})

	t.Run("unsupported type", func(t *testing.T) {
		var g Geometry
		err := json.Unmarshal([]byte(`{"type":"LineString","coordinates":[[0,0],[1,1]]}`), &g)
		assert.Error(t, err)
	})
}

func TestValidatePoints(t *testing.T) {
	t.Parallel()

	good := NewFeatureCollection(
		NewPoint(Position{0, 0}, nil),
		NewPoint(Position{1, 1}, nil),
	)
	assert.NoError(t, good.ValidatePoints())

	mixed := NewFeatureCollection(
		NewPoint(Position{0, 0}, nil),
		NewPolygon([]Ring{{{0, 0}, {0, 1}, {1, 1}, {0, 0}}}, nil),
	)
	err := mixed.ValidatePoints()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}
