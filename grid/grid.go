// Package grid builds regular lattices of cells over the bounding box of a
// point collection. Cells are point, square, hexagon or triangle features
// whose attribute maps are seeded from a caller-supplied template.
package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/meteogrid/idw/geojson"
	"github.com/meteogrid/idw/spatial"
)

var (
	// ErrMissingInput is returned when the point collection is absent or
	// empty, or when no positive cell size is supplied.
	ErrMissingInput = errors.New("missing required input")

	// ErrUnknownGridType is returned for grid type names outside the
	// supported set.
	ErrUnknownGridType = errors.New("unknown grid type")
)

// GridType selects the lattice shape.
type GridType string

const (
	Point    GridType = "point"
	Square   GridType = "square"
	Hex      GridType = "hex"
	Triangle GridType = "triangle"
)

// Options configures grid construction.
type Options struct {
	// Type selects the lattice shape. Empty means Square.
	Type GridType

	// Units is the distance unit CellSize is expressed in. Empty means
	// kilometers.
	Units spatial.Unit

	// Mask drops cells whose representative location falls outside the
	// polygon's outer ring. Nil means no clipping.
	Mask *geojson.Feature

	// Properties seeds every cell's attribute map.
	Properties map[string]interface{}
}

// Build emits a lattice of the requested shape spanning the bounding box of
// the point collection. Cell spacing is CellSize converted to degrees of
// arc, so cells align with the lon/lat box.
func Build(points *geojson.FeatureCollection, cellSize float64, opts Options) (*geojson.FeatureCollection, error) {
	if points == nil || len(points.Features) == 0 {
		return nil, fmt.Errorf("grid: point collection is empty: %w", ErrMissingInput)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("grid: cell size must be positive, got %v: %w", cellSize, ErrMissingInput)
	}

	cellDeg, err := spatial.LengthToDegrees(cellSize, opts.Units)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}

	minLon, minLat, maxLon, maxLat := spatial.BoundingBox(points)

	var cells []*geojson.Feature
	switch opts.Type {
	case Point:
		cells = pointGrid(minLon, minLat, maxLon, maxLat, cellDeg, opts.Properties)
	case Square, "":
		cells = squareGrid(minLon, minLat, maxLon, maxLat, cellDeg, opts.Properties)
	case Hex:
		cells = hexGrid(minLon, minLat, maxLon, maxLat, cellDeg, opts.Properties)
	case Triangle:
		cells = triangleGrid(minLon, minLat, maxLon, maxLat, cellDeg, opts.Properties)
	default:
		return nil, fmt.Errorf("grid: %w: %q", ErrUnknownGridType, opts.Type)
	}

	if opts.Mask != nil {
		cells = applyMask(cells, opts.Mask)
	}

	return geojson.NewFeatureCollection(cells...), nil
}

func pointGrid(minLon, minLat, maxLon, maxLat, cell float64, props map[string]interface{}) []*geojson.Feature {
	var out []*geojson.Feature
	for lon := minLon; lon <= maxLon; lon += cell {
		for lat := minLat; lat <= maxLat; lat += cell {
			out = append(out, geojson.NewPoint(geojson.Position{lon, lat}, props))
		}
	}
	return out
}

func squareGrid(minLon, minLat, maxLon, maxLat, cell float64, props map[string]interface{}) []*geojson.Feature {
	var out []*geojson.Feature
	for x := minLon; x+cell <= maxLon; x += cell {
		for y := minLat; y+cell <= maxLat; y += cell {
			ring := geojson.Ring{
				{x, y},
				{x, y + cell},
				{x + cell, y + cell},
				{x + cell, y},
				{x, y},
			}
			out = append(out, geojson.NewPolygon([]geojson.Ring{ring}, props))
		}
	}
	return out
}

// triangleGrid splits each square cell into two triangles, mirroring the
// split on alternating cells so neighbouring hypotenuses meet.
func triangleGrid(minLon, minLat, maxLon, maxLat, cell float64, props map[string]interface{}) []*geojson.Feature {
	var out []*geojson.Feature
	col := 0
	for x := minLon; x+cell <= maxLon; x += cell {
		row := 0
		for y := minLat; y+cell <= maxLat; y += cell {
			var first, second geojson.Ring
			if (col+row)%2 == 0 {
				first = geojson.Ring{{x, y}, {x + cell, y}, {x, y + cell}, {x, y}}
				second = geojson.Ring{{x + cell, y}, {x + cell, y + cell}, {x, y + cell}, {x + cell, y}}
			} else {
				first = geojson.Ring{{x, y}, {x + cell, y}, {x + cell, y + cell}, {x, y}}
				second = geojson.Ring{{x, y}, {x + cell, y + cell}, {x, y + cell}, {x, y}}
			}
			out = append(out,
				geojson.NewPolygon([]geojson.Ring{first}, props),
				geojson.NewPolygon([]geojson.Ring{second}, props))
			row++
		}
		col++
	}
	return out
}

// hexGrid tiles flat-topped hexagons with side length equal to the cell
// size. Odd columns are shifted down half a hexagon, and only hexagons that
// fit entirely inside the box are emitted.
func hexGrid(minLon, minLat, maxLon, maxLat, cell float64, props map[string]interface{}) []*geojson.Feature {
	var out []*geojson.Feature
	height := math.Sqrt(3) * cell
	for i := 0; ; i++ {
		cx := minLon + cell + 1.5*cell*float64(i)
		if cx+cell > maxLon {
			break
		}
		offset := 0.0
		if i%2 == 1 {
			offset = height / 2
		}
		for j := 0; ; j++ {
			cy := minLat + height/2 + offset + height*float64(j)
			if cy+height/2 > maxLat {
				break
			}
			out = append(out, geojson.NewPolygon([]geojson.Ring{hexRing(cx, cy, cell)}, props))
		}
	}
	return out
}

func hexRing(cx, cy, side float64) geojson.Ring {
	ring := make(geojson.Ring, 0, 7)
	for k := 0; k < 6; k++ {
		angle := math.Pi / 3 * float64(k)
		ring = append(ring, geojson.Position{
			cx + side*math.Cos(angle),
			cy + side*math.Sin(angle),
		})
	}
	return append(ring, ring[0])
}

func applyMask(cells []*geojson.Feature, mask *geojson.Feature) []*geojson.Feature {
	if mask.Geometry.Type != geojson.GeometryPolygon || len(mask.Geometry.Polygon) == 0 {
		return cells
	}
	outer := mask.Geometry.Polygon[0]
	kept := cells[:0]
	for _, cell := range cells {
		if spatial.PointInPolygon(spatial.RepresentativeLocation(cell), outer) {
			kept = append(kept, cell)
		}
	}
	return kept
}
