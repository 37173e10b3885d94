package chart

import (
	"errors"
	"math"
	"testing"

	"github.com/nimblemo/bodygraph/internal/ephemeris"
)

// linearProvider moves the Sun at a fixed rate and pins every other body to a
// constant longitude. It satisfies the solver's monotonicity contract exactly.
type linearProvider struct {
	sunAtZero float64 // Sun longitude at jd 0
	rate      float64 // degrees per day
	others    map[ephemeris.Body]float64
	failFor   ephemeris.Body // if set (non-Sun), Longitude returns an error for it
}

var errLinearProvider = errors.New("linear provider failure")

func (p linearProvider) Longitude(body ephemeris.Body, jd float64) (float64, error) {
	if p.failFor != 0 && body == p.failFor {
		return 0, errLinearProvider
	}
	if body == ephemeris.Sun {
		return normalizeDeg(p.sunAtZero + p.rate*jd), nil
	}
	if lon, ok := p.others[body]; ok {
		return lon, nil
	}
	return 0, nil
}

func TestSolveDesignJD(t *testing.T) {
	t.Parallel()

	t.Run("LinearSun", func(t *testing.T) {
		t.Parallel()
		p := linearProvider{sunAtZero: 10.0, rate: 360.0 / 365.25}
		const birthJD = 2451545.0

		designJD, err := SolveDesignJD(p, birthJD)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if designJD >= birthJD {
			t.Fatalf("designJD %.5f not before birthJD %.5f", designJD, birthJD)
		}

		// The exact root of a linear sun is 88° / rate days before birth.
		want := birthJD - 88.0/p.rate
		if math.Abs(designJD-want) > 0.01 {
			t.Errorf("designJD = %.5f, want %.5f", designJD, want)
		}

		birthSun, _ := p.Longitude(ephemeris.Sun, birthJD)
		designSun, _ := p.Longitude(ephemeris.Sun, designJD)
		arc := normalizeDeg(birthSun - designSun)
		if math.Abs(arc-88.0) > 1e-3 {
			t.Errorf("solar arc = %v°, want 88", arc)
		}
	})

	t.Run("RootOutsideWindow", func(t *testing.T) {
		t.Parallel()
		// At 1.5°/day the Sun covers 88° in under 59 days, before the
		// search window opens.
		p := linearProvider{sunAtZero: 0, rate: 1.5}

		_, err := SolveDesignJD(p, 2451545.0)
		if !errors.Is(err, ErrConvergence) {
			t.Fatalf("error = %v, want ErrConvergence", err)
		}
	})

	t.Run("AnalyticProvider", func(t *testing.T) {
		t.Parallel()
		p := ephemeris.AnalyticProvider{}
		birthJD := ephemeris.JulianDay(1990, 5, 15, 11, 30, 0)

		designJD, err := SolveDesignJD(p, birthJD)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if days := birthJD - designJD; days < 60 || days > 100 {
			t.Fatalf("design %v days before birth, want 60-100", days)
		}

		birthSun, _ := p.Longitude(ephemeris.Sun, birthJD)
		designSun, _ := p.Longitude(ephemeris.Sun, designJD)
		arc := normalizeDeg(birthSun - designSun)
		if math.Abs(arc-88.0) > 1e-3 {
			t.Errorf("solar arc = %v°, want 88 within 1e-3", arc)
		}
	})

	t.Run("ProviderErrorPropagates", func(t *testing.T) {
		t.Parallel()
		p := ephemeris.AnalyticProvider{}
		// Birth just inside the supported range puts the design window
		// outside it.
		birthJD := ephemeris.JulianDay(1900, 1, 15, 0, 0, 0)

		_, err := SolveDesignJD(p, birthJD)
		if !errors.Is(err, ephemeris.ErrOutsideRange) {
			t.Fatalf("error = %v, want ErrOutsideRange", err)
		}
	})
}

func TestSolarDelta(t *testing.T) {
	t.Parallel()

	sun := func(jd float64) (float64, error) { return jd, nil }

	tests := []struct {
		name       string
		jd, target float64
		want       float64
	}{
		{"Zero", 100, 100, 0},
		{"Ahead", 110, 100, 10},
		{"Behind", 90, 100, -10},
		{"WrapsForward", 350, 10, -20},
		{"WrapsBackward", 10, 350, 20},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := solarDelta(sun, tt.jd, tt.target)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("solarDelta(%v, %v) = %v, want %v", tt.jd, tt.target, got, tt.want)
			}
		})
	}
}
