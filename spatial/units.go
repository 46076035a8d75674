package spatial

import (
	"fmt"
	"math"
)

// Unit is a distance unit for cell sizes and sample distances.
type Unit string

const (
	Kilometers Unit = "kilometers"
	Miles      Unit = "miles"
	Meters     Unit = "meters"
	Degrees    Unit = "degrees"
	Radians    Unit = "radians"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers

	metersPerMile = 1609.344
)

// ToMeters converts a length in the given unit to meters. The empty unit is
// treated as kilometers, the default unit everywhere in this module.
func ToMeters(d float64, unit Unit) (float64, error) {
	switch unit {
	case Kilometers, "":
		return d * 1000, nil
	case Miles:
		return d * metersPerMile, nil
	case Meters:
		return d, nil
	case Degrees:
		return d * math.Pi / 180 * EarthRadiusMeters, nil
	case Radians:
		return d * EarthRadiusMeters, nil
	}
	return 0, fmt.Errorf("spatial: unknown unit %q", unit)
}

// FromMeters converts a length in meters to the given unit. Unknown units
// fall back to kilometers.
func FromMeters(m float64, unit Unit) float64 {
	switch unit {
	case Miles:
		return m / metersPerMile
	case Meters:
		return m
	case Degrees:
		return m / EarthRadiusMeters * 180 / math.Pi
	case Radians:
		return m / EarthRadiusMeters
	}
	return m / 1000
}

// LengthToDegrees converts a length in the given unit to degrees of arc
// along a great circle. Grid spacing is computed in degrees so cells line up
// with the lon/lat bounding box.
func LengthToDegrees(d float64, unit Unit) (float64, error) {
	m, err := ToMeters(d, unit)
	if err != nil {
		return 0, err
	}
	return m / EarthRadiusMeters * 180 / math.Pi, nil
}
