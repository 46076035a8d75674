package idw

import (
	"errors"
	"fmt"
	"math"

	"github.com/meteogrid/idw/classify"
	"github.com/meteogrid/idw/geojson"
	"github.com/meteogrid/idw/grid"
	"github.com/meteogrid/idw/spatial"
)

// ErrInvalidWeight is returned when the distance-decay exponent is not a
// usable number.
var ErrInvalidWeight = errors.New("invalid weight")

// DefaultProperty is the attribute interpolated when none is named.
const DefaultProperty = "elevation"

// DefaultColorProperty is the attribute the resolved bucket color is written
// to when none is named.
const DefaultColorProperty = "color"

// Options configures an interpolation run. The zero value selects a square
// grid, the "elevation" property, kilometers and a decay exponent of 1.
type Options struct {
	// GridType selects the lattice shape for Interpolate. Ignored by
	// InterpolateOnGrid, which works on the caller's grid.
	GridType grid.GridType

	// Property names the numeric attribute to interpolate. Samples missing
	// it fall back to the third coordinate of their geometry.
	Property string

	// Units is the distance unit for the cell size and for sample
	// distances.
	Units spatial.Unit

	// Weight is the distance-decay exponent. Zero means the default of 1;
	// larger values concentrate influence on nearby samples.
	Weight float64

	// Breaks is the ordered bucket table colors are read from. When empty,
	// no color is written.
	Breaks []classify.Break

	// ColorProperty names the attribute the bucket color is written to.
	ColorProperty string

	// Valid is the data-quality threshold for InterpolateOnGrid: samples
	// with |value| >= *Valid are excluded before weighting. Required there,
	// ignored by Interpolate.
	Valid *float64

	// Mask is passed through to grid construction.
	Mask *geojson.Feature
}

// withDefaults fills unset options and validates the weight once at the
// boundary.
func (o Options) withDefaults() (Options, error) {
	if o.Property == "" {
		o.Property = DefaultProperty
	}
	if o.Units == "" {
		o.Units = spatial.Kilometers
	}
	if o.ColorProperty == "" {
		o.ColorProperty = DefaultColorProperty
	}
	if o.Weight == 0 {
		o.Weight = 1
	}
	if o.Weight < 0 || math.IsNaN(o.Weight) || math.IsInf(o.Weight, 0) {
		return o, fmt.Errorf("idw: weight %v: %w", o.Weight, ErrInvalidWeight)
	}
	return o, nil
}
