// Package gridstats summarizes a numeric attribute over a feature
// collection. Useful for sizing classification break tables before
// interpolating.
package gridstats

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/meteogrid/idw/geojson"
)

// ErrNoValues is returned when no feature carries the requested attribute.
var ErrNoValues = errors.New("no numeric values")

// Stats is the summary of one attribute across a collection.
type Stats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Q1     float64
	Median float64
	Q3     float64
}

// Summary computes the five-number summary, mean and standard deviation of
// the named attribute. Features without the attribute are skipped.
func Summary(fc *geojson.FeatureCollection, property string) (Stats, error) {
	var values []float64
	if fc != nil {
		for _, f := range fc.Features {
			if v, ok := f.NumberProperty(property); ok {
				values = append(values, v)
			}
		}
	}
	if len(values) == 0 {
		return Stats{}, fmt.Errorf("gridstats: property %q: %w", property, ErrNoValues)
	}

	sort.Float64s(values)

	s := Stats{
		Count:  len(values),
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		Mean:   stat.Mean(values, nil),
		Q1:     stat.Quantile(0.25, stat.Empirical, values, nil),
		Median: stat.Quantile(0.5, stat.Empirical, values, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, values, nil),
	}
	if len(values) > 1 {
		s.StdDev = stat.StdDev(values, nil)
	}
	return s, nil
}
