package chart

import (
	"fmt"

	"github.com/nimblemo/bodygraph/internal/bodygraph"
	"github.com/nimblemo/bodygraph/internal/ephemeris"
)

// Chart is the immutable result of one assembly. Two charts assembled from
// identical inputs against the same provider are identical value for value;
// nothing here depends on the time of computation.
type Chart struct {
	Input    Input   `json:"input"`
	BirthJD  float64 `json:"birth_jd"`
	DesignJD float64 `json:"design_jd"`

	Personality []Activation `json:"personality"` // 13 entries, catalog order
	Design      []Activation `json:"design"`      // 13 entries, catalog order

	Channels []bodygraph.Channel `json:"channels"` // active, sorted by key
	Centers  []bodygraph.Center  `json:"centers"`  // defined, bodygraph order

	Type      Type      `json:"type"`
	Authority Authority `json:"authority"`
	Profile   Profile   `json:"profile"`
	Cross     Cross     `json:"cross"`

	// Color-level keys (1-6): motivation from the Personality Sun,
	// environment from the Design North Node, diet from the Design Sun.
	Motivation  int `json:"motivation"`
	Environment int `json:"environment"`
	Diet        int `json:"diet"`
}

// DefinedCenterSet rebuilds the defined-center set from the stored slice.
func (c *Chart) DefinedCenterSet() map[bodygraph.Center]bool {
	set := make(map[bodygraph.Center]bool, len(c.Centers))
	for _, center := range c.Centers {
		set[center] = true
	}
	return set
}

// Assemble computes one chart: birth activations, the design instant 88° of
// solar arc earlier, design activations, structural derivation, and the
// classifier chain. It fails fast on the first error; no partial chart is
// ever returned.
func Assemble(p ephemeris.Provider, in Input, angles AngleTable) (*Chart, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	birthJD := in.JulianDay()

	personality, err := BuildActivations(p, birthJD)
	if err != nil {
		return nil, err
	}

	designJD, err := SolveDesignJD(p, birthJD)
	if err != nil {
		return nil, err
	}

	design, err := BuildActivations(p, designJD)
	if err != nil {
		return nil, err
	}

	active := bodygraph.ActiveChannels(gatesOf(personality, design))
	definedSet := bodygraph.DefinedCenters(active)

	// Keep center order deterministic for value equality and rendering.
	var defined []bodygraph.Center
	for _, c := range bodygraph.Centers() {
		if definedSet[c] {
			defined = append(defined, c)
		}
	}

	profile, err := profileOf(personality, design)
	if err != nil {
		return nil, err
	}
	cross, err := crossOf(personality, design, profile, angles)
	if err != nil {
		return nil, err
	}
	motivation, environment, diet, err := colorKeysOf(personality, design)
	if err != nil {
		return nil, err
	}

	return &Chart{
		Input:       in,
		BirthJD:     birthJD,
		DesignJD:    designJD,
		Personality: personality,
		Design:      design,
		Channels:    active,
		Centers:     defined,
		Type:        ClassifyType(definedSet, active),
		Authority:   ClassifyAuthority(definedSet, active),
		Profile:     profile,
		Cross:       cross,
		Motivation:  motivation,
		Environment: environment,
		Diet:        diet,
	}, nil
}

// colorKeysOf reads the color subdivision of the three activations that key
// motivation, environment, and diet.
func colorKeysOf(personality, design []Activation) (motivation, environment, diet int, err error) {
	pSun, ok := activationOf(personality, ephemeris.Sun)
	if !ok {
		return 0, 0, 0, fmt.Errorf("chart: personality set has no sun activation")
	}
	dNode, ok := activationOf(design, ephemeris.NorthNode)
	if !ok {
		return 0, 0, 0, fmt.Errorf("chart: design set has no north node activation")
	}
	dSun, ok := activationOf(design, ephemeris.Sun)
	if !ok {
		return 0, 0, 0, fmt.Errorf("chart: design set has no sun activation")
	}
	return pSun.Position.Color, dNode.Position.Color, dSun.Position.Color, nil
}

// profileOf reads the Sun line from each activation set.
func profileOf(personality, design []Activation) (Profile, error) {
	pSun, ok := activationOf(personality, ephemeris.Sun)
	if !ok {
		return Profile{}, fmt.Errorf("chart: personality set has no sun activation")
	}
	dSun, ok := activationOf(design, ephemeris.Sun)
	if !ok {
		return Profile{}, fmt.Errorf("chart: design set has no sun activation")
	}
	return Profile{Personality: pSun.Position.Line, Design: dSun.Position.Line}, nil
}

// crossOf builds the Incarnation Cross from the Sun and Earth gates of both
// sets and classifies its angle through the catalog table.
func crossOf(personality, design []Activation, profile Profile, angles AngleTable) (Cross, error) {
	pEarth, ok := activationOf(personality, ephemeris.Earth)
	if !ok {
		return Cross{}, fmt.Errorf("chart: personality set has no earth activation")
	}
	dEarth, ok := activationOf(design, ephemeris.Earth)
	if !ok {
		return Cross{}, fmt.Errorf("chart: design set has no earth activation")
	}
	pSun, _ := activationOf(personality, ephemeris.Sun)
	dSun, _ := activationOf(design, ephemeris.Sun)

	angle, ok := angles[profile]
	if !ok {
		// The table is validated total at startup; a miss here means the
		// caller skipped validation.
		return Cross{}, fmt.Errorf("chart: angle table has no entry for profile %s", profile)
	}

	return Cross{
		PersonalitySun:   pSun.Position.Gate,
		PersonalityEarth: pEarth.Position.Gate,
		DesignSun:        dSun.Position.Gate,
		DesignEarth:      dEarth.Position.Gate,
		Angle:            angle,
	}, nil
}
