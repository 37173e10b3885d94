package chart

import (
	"errors"
	"fmt"
	"math"

	"github.com/nimblemo/bodygraph/internal/ephemeris"
)

// ErrConvergence is returned when the design offset search cannot locate the
// instant 88° of solar arc before birth: the iteration cap was exhausted, or
// the Sun longitude supplied by the provider is not monotonically increasing
// inside the search window (a provider contract violation). The result is
// never silently approximated.
var ErrConvergence = errors.New("design offset search did not converge")

const (
	// designArc is the solar arc between the design instant and birth.
	designArc = 88.0

	// solveTolerance is the accepted longitude error in degrees.
	solveTolerance = 1e-4

	// maxSolveIter bounds the bisection loop. The window is 40 days wide,
	// so far fewer iterations suffice; the cap only guards a provider
	// whose output defeats bisection.
	maxSolveIter = 64

	// The design instant always falls 60 to 100 days before birth: the
	// Sun covers 88° in 89.3 days on average, faster near perihelion.
	windowMaxDays = 100.0
	windowMinDays = 60.0
)

// SolveDesignJD finds tDesign < birthJD such that the Sun's longitude at
// tDesign is 88° (mod 360) behind its longitude at birth, within
// solveTolerance. The root is bracketed inside [birthJD-100d, birthJD-60d]
// and located by bisection with an explicit convergence predicate.
func SolveDesignJD(p ephemeris.Provider, birthJD float64) (float64, error) {
	sun := func(jd float64) (float64, error) {
		return p.Longitude(ephemeris.Sun, jd)
	}

	birthSun, err := sun(birthJD)
	if err != nil {
		return 0, fmt.Errorf("chart: sun at birth jd %.5f: %w", birthJD, err)
	}
	target := normalizeDeg(birthSun - designArc)

	lo := birthJD - windowMaxDays
	hi := birthJD - windowMinDays

	fLo, err := solarDelta(sun, lo, target)
	if err != nil {
		return 0, err
	}
	fHi, err := solarDelta(sun, hi, target)
	if err != nil {
		return 0, err
	}

	// The Sun gains ~39° across the window, so a monotonic provider always
	// brackets the target: behind it at the early edge, past it at the
	// late edge. Anything else means the root is outside the window or the
	// provider is non-monotonic.
	if fLo >= 0 || fHi <= 0 {
		return 0, fmt.Errorf("chart: no root bracketed in %.1f-%.1f days before birth: %w",
			windowMinDays, windowMaxDays, ErrConvergence)
	}

	for iter := 0; iter < maxSolveIter; iter++ {
		mid := lo + (hi-lo)/2
		fMid, err := solarDelta(sun, mid, target)
		if err != nil {
			return 0, err
		}

		if math.Abs(fMid) < solveTolerance {
			return mid, nil
		}
		if fMid < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return 0, fmt.Errorf("chart: %d iterations without reaching %.0e° tolerance: %w",
		maxSolveIter, solveTolerance, ErrConvergence)
}

// solarDelta returns the signed smallest angular difference between the
// Sun's longitude at jd and the target, in (-180, 180].
func solarDelta(sun func(float64) (float64, error), jd, target float64) (float64, error) {
	lon, err := sun(jd)
	if err != nil {
		return 0, fmt.Errorf("chart: sun at jd %.5f: %w", jd, err)
	}
	diff := lon - target
	for diff > 180 {
		diff -= 360
	}
	for diff <= -180 {
		diff += 360
	}
	return diff, nil
}

func normalizeDeg(deg float64) float64 {
	d := math.Mod(deg, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}
