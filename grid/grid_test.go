package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meteogrid/idw/geojson"
	"github.com/meteogrid/idw/spatial"
)

// corners spans a lon/lat box with two diagonal points.
func corners(maxLon, maxLat float64) *geojson.FeatureCollection {
	return geojson.NewFeatureCollection(
		geojson.NewPoint(geojson.Position{0, 0}, nil),
		geojson.NewPoint(geojson.Position{maxLon, maxLat}, nil),
	)
}

func TestBuild_PointGrid(t *testing.T) {
	t.Parallel()

	fc, err := Build(corners(2, 2), 1, Options{Type: Point, Units: spatial.Degrees})
	require.NoError(t, err)

	// Lattice nodes at 0, 1, 2 on both axes.
	assert.Len(t, fc.Features, 9)
	for _, f := range fc.Features {
		assert.Equal(t, geojson.GeometryPoint, f.Geometry.Type)
	}
}

func TestBuild_SquareGrid(t *testing.T) {
	t.Parallel()

	fc, err := Build(corners(4, 4), 1, Options{Units: spatial.Degrees})
	require.NoError(t, err)

	assert.Len(t, fc.Features, 16)
	for _, f := range fc.Features {
		require.Equal(t, geojson.GeometryPolygon, f.Geometry.Type)
		require.Len(t, f.Geometry.Polygon, 1)
		ring := f.Geometry.Polygon[0]
		require.Len(t, ring, 5)
		assert.Equal(t, ring[0], ring[len(ring)-1])
	}
}

func TestBuild_TriangleGrid(t *testing.T) {
	t.Parallel()

	fc, err := Build(corners(4, 4), 1, Options{Type: Triangle, Units: spatial.Degrees})
	require.NoError(t, err)

	// Two triangles per square cell.
	assert.Len(t, fc.Features, 32)
	for _, f := range fc.Features {
		require.Equal(t, geojson.GeometryPolygon, f.Geometry.Type)
		ring := f.Geometry.Polygon[0]
		require.Len(t, ring, 4)
		assert.Equal(t, ring[0], ring[len(ring)-1])
	}
}

func TestBuild_HexGrid(t *testing.T) {
	t.Parallel()

	fc, err := Build(corners(10, 10), 1, Options{Type: Hex, Units: spatial.Degrees})
	require.NoError(t, err)

	require.NotEmpty(t, fc.Features)
	minLon, minLat, maxLon, maxLat := spatial.BoundingBox(fc)
	assert.GreaterOrEqual(t, minLon, 0.0)
	assert.GreaterOrEqual(t, minLat, 0.0)
	assert.LessOrEqual(t, maxLon, 10.0)
	assert.LessOrEqual(t, maxLat, 10.0)
	for _, f := range fc.Features {
		ring := f.Geometry.Polygon[0]
		require.Len(t, ring, 7)
		assert.Equal(t, ring[0], ring[len(ring)-1])
	}
}

func TestBuild_Mask(t *testing.T) {
	t.Parallel()

	all, err := Build(corners(4, 4), 1, Options{Type: Point, Units: spatial.Degrees})
	require.NoError(t, err)

	// Keep only the lower-left quadrant.
	mask := geojson.NewPolygon([]geojson.Ring{
		{{-0.5, -0.5}, {-0.5, 1.5}, {1.5, 1.5}, {1.5, -0.5}, {-0.5, -0.5}},
	}, nil)

	clipped, err := Build(corners(4, 4), 1, Options{Type: Point, Units: spatial.Degrees, Mask: mask})
	require.NoError(t, err)

	assert.Less(t, len(clipped.Features), len(all.Features))
	for _, f := range clipped.Features {
		assert.LessOrEqual(t, f.Geometry.Point.Lon(), 1.5)
		assert.LessOrEqual(t, f.Geometry.Point.Lat(), 1.5)
	}
}

func TestBuild_PropertiesSeeded(t *testing.T) {
	t.Parallel()

	fc, err := Build(corners(2, 2), 1, Options{
		Units:      spatial.Degrees,
		Properties: map[string]interface{}{"source": "forecast"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, fc.Features)

	// Each cell owns its map; writing to one must not leak into another.
	fc.Features[0].SetProperty("source", "edited")
	assert.Equal(t, "forecast", fc.Features[1].Properties["source"])
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	t.Run("nil points", func(t *testing.T) {
		_, err := Build(nil, 1, Options{})
		assert.ErrorIs(t, err, ErrMissingInput)
	})

	t.Run("empty points", func(t *testing.T) {
		_, err := Build(geojson.NewFeatureCollection(), 1, Options{})
		assert.ErrorIs(t, err, ErrMissingInput)
	})

	t.Run("zero cell size", func(t *testing.T) {
		_, err := Build(corners(1, 1), 0, Options{})
		assert.ErrorIs(t, err, ErrMissingInput)
	})

	t.Run("unknown grid type", func(t *testing.T) {
		_, err := Build(corners(1, 1), 1, Options{Type: GridType("rhombus")})
		assert.ErrorIs(t, err, ErrUnknownGridType)
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, err := Build(corners(1, 1), 1, Options{Units: spatial.Unit("leagues")})
		assert.Error(t, err)
	})
}
