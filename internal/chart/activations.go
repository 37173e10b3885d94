package chart

import (
	"fmt"

	"github.com/nimblemo/bodygraph/internal/ephemeris"
	"github.com/nimblemo/bodygraph/internal/wheel"
)

// BuildActivations queries the provider for every tracked body at the given
// instant and resolves each longitude on the wheel. The result always has
// exactly 13 entries in catalog order. A provider failure aborts the build
// and names the offending body and instant.
func BuildActivations(p ephemeris.Provider, jd float64) ([]Activation, error) {
	bodies := ephemeris.Bodies()
	acts := make([]Activation, 0, len(bodies))

	for _, b := range bodies {
		lon, err := p.Longitude(b, jd)
		if err != nil {
			return nil, fmt.Errorf("chart: build activations: %s at jd %.5f: %w", b, jd, err)
		}
		acts = append(acts, Activation{Body: b, Position: wheel.Resolve(lon)})
	}
	return acts, nil
}

// activationOf returns the activation for one body. The sets built by
// BuildActivations always contain every body, so a miss is a programming
// error surfaced by the callers' own validation, not a chart condition.
func activationOf(acts []Activation, body ephemeris.Body) (Activation, bool) {
	for _, a := range acts {
		if a.Body == body {
			return a, true
		}
	}
	return Activation{}, false
}

// gatesOf collects the gate of every activation, duplicates preserved.
func gatesOf(sets ...[]Activation) []int {
	var gates []int
	for _, set := range sets {
		for _, a := range set {
			gates = append(gates, a.Position.Gate)
		}
	}
	return gates
}
