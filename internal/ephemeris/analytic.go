package ephemeris

import (
	"fmt"
	"math"
)

// Supported Julian day span for the analytic theory. The Pluto curve fit is
// only calibrated for the twentieth and twenty-first centuries, so the whole
// provider is bounded by it.
const (
	minJD = 2415020.0 // 1900-01-01
	maxJD = 2488069.0 // 2100-01-01
)

// AnalyticProvider computes geocentric ecliptic longitudes from a compact
// analytic theory: a truncated solar longitude series, principal lunar
// perturbation terms, the mean lunar node, and mean orbital elements with a
// Kepler solve for the planets. Accuracy is a few arc minutes, well inside
// the 0.9375° line width the chart engine discriminates.
//
// The zero value is ready to use. It holds no state and is safe for
// concurrent use.
type AnalyticProvider struct{}

// Longitude implements Provider.
func (AnalyticProvider) Longitude(body Body, jd float64) (float64, error) {
	if jd < minJD || jd > maxJD {
		return 0, fmt.Errorf("ephemeris: %s at jd %.5f: %w", body, jd, ErrOutsideRange)
	}

	switch body {
	case Sun:
		return sunLongitude(jd), nil
	case Earth:
		return normalize(sunLongitude(jd) + 180.0), nil
	case Moon:
		return moonLongitude(jd), nil
	case NorthNode:
		return meanNode(jd), nil
	case SouthNode:
		return normalize(meanNode(jd) + 180.0), nil
	case Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune:
		return planetLongitude(body, jd), nil
	case Pluto:
		return plutoLongitude(jd), nil
	}
	return 0, fmt.Errorf("ephemeris: unknown body %d", body)
}

// sunLongitude returns the apparent geocentric ecliptic longitude of the Sun
// (truncated VSOP-derived series, Meeus "Astronomical Algorithms" ch. 25).
func sunLongitude(jd float64) float64 {
	t := (jd - J2000) / 36525.0

	l0 := 280.46646 + 36000.76983*t + 0.0003032*t*t
	m := 357.52911 + 35999.05029*t - 0.0001537*t*t

	c := (1.914602-0.004817*t-0.000014*t*t)*sind(m) +
		(0.019993-0.000101*t)*sind(2*m) +
		0.000289*sind(3*m)

	trueLon := l0 + c

	// Nutation and aberration bring the true longitude to apparent.
	omega := 125.04 - 1934.136*t
	apparent := trueLon - 0.00569 - 0.00478*sind(omega)

	return normalize(apparent)
}

// meanNode returns the longitude of the mean ascending lunar node.
func meanNode(jd float64) float64 {
	d := jd - 2451543.5
	return normalize(125.1228 - 0.0529538083*d)
}

// moonLongitude returns the geocentric ecliptic longitude of the Moon from
// its mean elements plus the principal perturbation terms (evection,
// variation, annual equation, and the largest residuals).
func moonLongitude(jd float64) float64 {
	d := jd - 2451543.5

	// Moon orbital elements.
	n := 125.1228 - 0.0529538083*d  // longitude of ascending node
	const i = 5.1454                // inclination
	w := 318.0634 + 0.1643573223*d  // argument of perigee
	const a = 60.2666               // mean distance, Earth radii
	const e = 0.054900              // eccentricity
	m := 115.3654 + 13.0649929509*d // mean anomaly

	ea := solveKepler(m, e)
	xv := a * (cosd(ea) - e)
	yv := a * math.Sqrt(1-e*e) * sind(ea)
	v := atan2d(yv, xv)
	r := math.Hypot(xv, yv)

	// Geocentric ecliptic coordinates from the orbital plane.
	xh := r * (cosd(n)*cosd(v+w) - sind(n)*sind(v+w)*cosd(i))
	yh := r * (sind(n)*cosd(v+w) + cosd(n)*sind(v+w)*cosd(i))
	zh := r * sind(v+w) * sind(i)
	lon := atan2d(yh, xh)

	// Fundamental arguments for the perturbation terms.
	ms := 356.0470 + 0.9856002585*d // Sun mean anomaly
	ws := 282.9404 + 4.70935e-5*d   // Sun argument of perihelion
	ls := ms + ws                   // Sun mean longitude
	lm := n + w + m                 // Moon mean longitude
	de := lm - ls                   // mean elongation
	f := lm - n                     // argument of latitude

	lon += -1.274*sind(m-2*de) +
		0.658*sind(2*de) +
		-0.186*sind(ms) +
		-0.059*sind(2*m-2*de) +
		-0.057*sind(m-2*de+ms) +
		0.053*sind(m+2*de) +
		0.046*sind(2*de-ms) +
		0.041*sind(m-ms) +
		-0.035*sind(de) +
		-0.031*sind(m+ms) +
		-0.015*sind(2*f-2*de) +
		0.011*sind(m-4*de)

	_ = zh // latitude is not needed for a longitude-only provider

	return normalize(lon)
}

// Trigonometric helpers in degrees.

func sind(deg float64) float64 { return math.Sin(deg * math.Pi / 180.0) }
func cosd(deg float64) float64 { return math.Cos(deg * math.Pi / 180.0) }

func atan2d(y, x float64) float64 { return math.Atan2(y, x) * 180.0 / math.Pi }

// solveKepler finds the eccentric anomaly (degrees) for mean anomaly m
// (degrees) and eccentricity e by Newton iteration.
func solveKepler(m, e float64) float64 {
	m = normalize(m)
	eDeg := e * 180.0 / math.Pi
	ea := m + eDeg*sind(m)*(1+e*cosd(m))
	for iter := 0; iter < 20; iter++ {
		delta := (ea - eDeg*sind(ea) - m) / (1 - e*cosd(ea))
		ea -= delta
		if math.Abs(delta) < 1e-7 {
			break
		}
	}
	return ea
}
