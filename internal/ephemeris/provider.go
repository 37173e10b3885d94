package ephemeris

import "errors"

// ErrOutsideRange is returned when an instant falls outside the span the
// provider can compute positions for.
var ErrOutsideRange = errors.New("instant outside supported ephemeris range")

// Provider computes geocentric ecliptic longitudes. Implementations must be
// pure functions of their inputs and safe for concurrent use: the chart
// engine calls Longitude from multiple goroutines with no external locking.
//
// Longitude returns degrees in [0, 360) for the given body at the given
// Julian day, or an error wrapping ErrOutsideRange when jd is unsupported.
type Provider interface {
	Longitude(body Body, jd float64) (float64, error)
}
