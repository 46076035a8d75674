// Package classify maps interpolated values to discrete color buckets.
// Each measured quantity has its own bucketing scheme, keyed by the property
// name the interpolator was asked to estimate.
package classify

import "math"

// Scheme maps a value to a bucket index in an ordered break table.
type Scheme func(v float64) int

// Break is one bucket of a classification table.
type Break struct {
	Label string `json:"label,omitempty"`
	Color string `json:"color"`
}

// Property names with a registered scheme.
const (
	PropTemperature      = "tem"
	PropPressure         = "prs"
	PropRelativeHumidity = "rhu"
	PropWindSpeed        = "winSMax"
	PropHourlyPrecip     = "pre1h"
)

var schemes = map[string]Scheme{
	PropTemperature:      Temperature,
	PropPressure:         Pressure,
	PropRelativeHumidity: RelativeHumidity,
	PropWindSpeed:        WindSpeed,
	PropHourlyPrecip:     HourlyPrecip,
}

// ForProperty returns the scheme registered for a property name. The false
// return means the property has no classification and callers should leave
// the cell uncolored.
func ForProperty(name string) (Scheme, bool) {
	s, ok := schemes[name]
	return s, ok
}

// Temperature buckets degrees Celsius in 2° steps. Negative values count
// down from bucket 14, non-negative values up from bucket 14.
func Temperature(v float64) int {
	if v < 0 {
		return 15 - int(math.Ceil(math.Abs(v)/2))
	}
	return int(math.Ceil(v/2)) + 14
}

// Pressure buckets hPa in 3 hPa steps between 969 and 1017, clamping
// outside that range.
func Pressure(v float64) int {
	if v <= 969 {
		return 0
	}
	if v > 1017 {
		return 16
	}
	return int(math.Ceil((v-969)/3)) - 1
}

// RelativeHumidity buckets percent humidity in 10% steps, clamping outside
// 0–100.
func RelativeHumidity(v float64) int {
	if v <= 0 {
		return 0
	}
	if v > 100 {
		return 9
	}
	return int(math.Ceil(v/10)) - 1
}

// windSpeedSteps are the upper bounds (m/s) of the wind speed buckets. The
// repeated 5.5 makes bucket 2 unreachable; the table is kept verbatim from
// the upstream forecast product.
var windSpeedSteps = []float64{2.5, 5.5, 5.5, 8.3, 11.1, 13.9, 17.4, 20.9, 24.5, 29, 33, 37, 42, 47, 51, 67}

// WindSpeed buckets m/s wind speed on the Beaufort-derived ladder used by
// the forecast product.
func WindSpeed(v float64) int {
	return ladder(v, windSpeedSteps)
}

// hourlyPrecipSteps are the upper bounds (mm) of the hourly precipitation
// buckets.
var hourlyPrecipSteps = []float64{0.2, 2, 4, 6, 8, 10, 20, 50}

// HourlyPrecip buckets mm of precipitation in the last hour.
func HourlyPrecip(v float64) int {
	return ladder(v, hourlyPrecipSteps)
}

// ladder returns the index of the first step the value does not exceed, or
// len(steps) when it exceeds every step.
func ladder(v float64, steps []float64) int {
	for i, step := range steps {
		if v <= step {
			return i
		}
	}
	return len(steps)
}
