// Package idw estimates a scalar measurement at every cell of a regular
// grid by inverse-distance-weighted averaging of scattered samples, and
// classifies each estimate into a color bucket for display.
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

// ErrMissingValue is returned when a sample carries neither the named
// attribute nor an altitude coordinate to interpolate.
var ErrMissingValue = errors.New("missing sample value")

// Interpolate builds a grid of opts.GridType over the samples' bounding box
// and estimates opts.Property at every cell. Estimates are classified with
// the temperature scheme and colored from opts.Breaks.
//
// Inputs are never mutated; every returned cell is a fresh feature.
func Interpolate(points *geojson.FeatureCollection, cellSize float64, opts Options) (*geojson.FeatureCollection, error) {
	o, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	if err := validateSamples(points); err != nil {
		return nil, err
	}

	cells, err := grid.Build(points, cellSize, grid.Options{
		Type:  o.GridType,
		Units: o.Units,
		Mask:  o.Mask,
	})
	if err != nil {
		return nil, err
	}

	out := geojson.NewFeatureCollection()
	for _, cell := range cells.Features {
		v, ok, err := cellEstimate(cell, points, o, nil)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		c := cell.Clone()
		c.SetProperty(o.Property, v)
		assignColor(c, classify.Temperature(v), o)
		out.Features = append(out.Features, c)
	}
	return out, nil
}

// InterpolateOnGrid estimates opts.Property at every cell of a
// caller-supplied grid, so one grid can be reused across several measured
// quantities. opts.Valid is required: samples whose absolute value is at or
// above it are excluded before any distance work. The bucket scheme is
// selected by opts.Property; properties without a registered scheme leave
// cells uncolored.
func InterpolateOnGrid(points, cells *geojson.FeatureCollection, opts Options) (*geojson.FeatureCollection, error) {
	o, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	if cells == nil || len(cells.Features) == 0 {
		return nil, fmt.Errorf("idw: grid collection is empty: %w", grid.ErrMissingInput)
	}
	if o.Valid == nil {
		return nil, fmt.Errorf("idw: valid threshold is required: %w", grid.ErrMissingInput)
	}
	if err := validateSamples(points); err != nil {
		return nil, err
	}

	scheme, hasScheme := classify.ForProperty(o.Property)

	out := geojson.NewFeatureCollection()
	for _, cell := range cells.Features {
		v, ok, err := cellEstimate(cell, points, o, o.Valid)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		c := cell.Clone()
		c.SetProperty(o.Property, v)
		if hasScheme {
			assignColor(c, scheme(v), o)
		}
		out.Features = append(out.Features, c)
	}
	return out, nil
}

// cellEstimate computes the weighted average of the samples at the cell's
// representative location. The bool return is false when no sample
// contributed (every one excluded by the validity filter).
//
// A sample located exactly at the representative location decides the cell
// outright: its value is returned and no other sample contributes.
func cellEstimate(cell *geojson.Feature, points *geojson.FeatureCollection, o Options, valid *float64) (float64, bool, error) {
	loc := spatial.RepresentativeLocation(cell)

	var sw, zw float64
	contributed := false
	for _, sample := range points.Features {
		v, err := sampleValue(sample, o.Property)
		if err != nil {
			return 0, false, err
		}
		if valid != nil && math.Abs(v) >= *valid {
			continue
		}
		d := spatial.Distance(loc, sample.Geometry.Point, o.Units)
		if d == 0 {
			return v, true, nil
		}
		w := 1 / math.Pow(d, o.Weight)
		sw += w
		zw += w * v
		contributed = true
	}
	if !contributed {
		return 0, false, nil
	}
	return zw / sw, true, nil
}

// sampleValue resolves a sample's scalar: the named attribute first, then
// the altitude component of its geometry.
func sampleValue(f *geojson.Feature, property string) (float64, error) {
	if v, ok := f.NumberProperty(property); ok {
		return v, nil
	}
	if alt, ok := f.Geometry.Point.Alt(); ok {
		return alt, nil
	}
	return 0, fmt.Errorf("idw: sample has neither property %q nor an altitude: %w", property, ErrMissingValue)
}

// assignColor writes the bucket's color to the cell. Bucket indexes outside
// the table are skipped rather than treated as errors, on both paths.
func assignColor(cell *geojson.Feature, bucket int, o Options) {
	if len(o.Breaks) == 0 {
		return
	}
	if bucket < 0 || bucket >= len(o.Breaks) {
		return
	}
	cell.SetProperty(o.ColorProperty, o.Breaks[bucket].Color)
}

func validateSamples(points *geojson.FeatureCollection) error {
	if points == nil || len(points.Features) == 0 {
		return fmt.Errorf("idw: point collection is empty: %w", grid.ErrMissingInput)
	}
	if err := points.ValidatePoints(); err != nil {
		return fmt.Errorf("idw: %w", err)
	}
	return nil
}
