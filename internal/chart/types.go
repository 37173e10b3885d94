// Package chart assembles Human Design charts: it locates the design instant
// 88° of solar arc before birth, resolves the thirteen bodies to gate/line
// activations at both instants, derives active channels and defined centers,
// and classifies Type, Authority, Profile, and Incarnation Cross through
// ordered decision tables.
package chart

import (
	"fmt"

	"github.com/nimblemo/bodygraph/internal/ephemeris"
	"github.com/nimblemo/bodygraph/internal/wheel"
)

// Input is one birth moment: calendar date, civil time, and UTC offset.
type Input struct {
	Year      int     `json:"year" toml:"year"`
	Month     int     `json:"month" toml:"month"`
	Day       int     `json:"day" toml:"day"`
	Hour      int     `json:"hour" toml:"hour"`
	Minute    int     `json:"minute" toml:"minute"`
	UTCOffset float64 `json:"utc_offset" toml:"utc_offset"`
}

// Validate checks field ranges. It runs before any engine work so malformed
// input never reaches the solver or the provider.
func (in Input) Validate() error {
	if in.Year < 1 {
		return fmt.Errorf("chart: year %d out of range", in.Year)
	}
	if in.Month < 1 || in.Month > 12 {
		return fmt.Errorf("chart: month %d out of range 1-12", in.Month)
	}
	if in.Day < 1 || in.Day > 31 {
		return fmt.Errorf("chart: day %d out of range 1-31", in.Day)
	}
	if in.Hour < 0 || in.Hour > 23 {
		return fmt.Errorf("chart: hour %d out of range 0-23", in.Hour)
	}
	if in.Minute < 0 || in.Minute > 59 {
		return fmt.Errorf("chart: minute %d out of range 0-59", in.Minute)
	}
	if in.UTCOffset < -12 || in.UTCOffset > 14 {
		return fmt.Errorf("chart: utc offset %+.2f out of range -12..+14", in.UTCOffset)
	}
	return nil
}

// JulianDay returns the birth instant as a Julian day.
func (in Input) JulianDay() float64 {
	return ephemeris.JulianDay(in.Year, in.Month, in.Day, in.Hour, in.Minute, in.UTCOffset)
}

// String returns a compact form like "1990-05-15 14:30 UTC+3".
func (in Input) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d UTC%+g",
		in.Year, in.Month, in.Day, in.Hour, in.Minute, in.UTCOffset)
}

// Activation is the wheel position of one body at one instant.
type Activation struct {
	Body     ephemeris.Body `json:"body"`
	Position wheel.Position `json:"position"`
}

// Type is the chart's energy type.
type Type int

const (
	Reflector Type = iota
	Manifestor
	ManifestingGenerator
	Generator
	Projector
)

var typeKeys = [...]string{
	"reflector", "manifestor", "manifesting_generator", "generator", "projector",
}

var typeNames = [...]string{
	"Reflector", "Manifestor", "Manifesting Generator", "Generator", "Projector",
}

// Key returns the lowercase snake_case identifier used in catalogs.
func (t Type) Key() string {
	if t < Reflector || t > Projector {
		return "unknown"
	}
	return typeKeys[t]
}

// String returns the display name of the type.
func (t Type) String() string {
	if t < Reflector || t > Projector {
		return "unknown"
	}
	return typeNames[t]
}

// MarshalJSON encodes the type as its catalog key.
func (t Type) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Key() + `"`), nil
}

// Authority is the chart's decision-making authority.
type Authority int

const (
	Emotional Authority = iota
	SacralAuthority
	Splenic
	Ego
	SelfProjected
	Mental
	NoInnerAuthority
)

var authorityKeys = [...]string{
	"emotional", "sacral", "splenic", "ego", "self_projected", "mental", "none",
}

var authorityNames = [...]string{
	"Emotional", "Sacral", "Splenic", "Ego",
	"Self-Projected", "Mental/Environmental", "No Inner Authority",
}

// Key returns the lowercase snake_case identifier used in catalogs.
func (a Authority) Key() string {
	if a < Emotional || a > NoInnerAuthority {
		return "unknown"
	}
	return authorityKeys[a]
}

// String returns the display name of the authority.
func (a Authority) String() string {
	if a < Emotional || a > NoInnerAuthority {
		return "unknown"
	}
	return authorityNames[a]
}

// MarshalJSON encodes the authority as its catalog key.
func (a Authority) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.Key() + `"`), nil
}

// Profile is the ordered pair of the Personality Sun line and the Design Sun
// line.
type Profile struct {
	Personality int `json:"personality" toml:"personality"`
	Design      int `json:"design" toml:"design"`
}

// String returns the numeric form like "4/6".
func (p Profile) String() string {
	return fmt.Sprintf("%d/%d", p.Personality, p.Design)
}

// Angle is the Incarnation Cross angle classification.
type Angle int

const (
	RightAngle Angle = iota
	Juxtaposition
	LeftAngle
)

var angleKeys = [...]string{"right_angle", "juxtaposition", "left_angle"}

var angleNames = [...]string{"Right Angle", "Juxtaposition", "Left Angle"}

// Key returns the lowercase snake_case identifier used in catalogs.
func (a Angle) Key() string {
	if a < RightAngle || a > LeftAngle {
		return "unknown"
	}
	return angleKeys[a]
}

// String returns the display name of the angle.
func (a Angle) String() string {
	if a < RightAngle || a > LeftAngle {
		return "unknown"
	}
	return angleNames[a]
}

// MarshalJSON encodes the angle as its catalog key.
func (a Angle) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.Key() + `"`), nil
}

// AngleTable classifies every ordered (personality line, design line) pair
// into a cross angle. The table is constant data supplied by the catalog; it
// must be total over all 36 pairs.
type AngleTable map[Profile]Angle

// Validate checks that the table covers every ordered line pair exactly.
func (t AngleTable) Validate() error {
	for p := 1; p <= 6; p++ {
		for d := 1; d <= 6; d++ {
			if _, ok := t[Profile{Personality: p, Design: d}]; !ok {
				return fmt.Errorf("chart: angle table missing profile %d/%d", p, d)
			}
		}
	}
	if len(t) != 36 {
		return fmt.Errorf("chart: angle table has %d entries, want 36", len(t))
	}
	return nil
}

// Cross is the Incarnation Cross: the Sun and Earth gates of both activation
// sets plus the angle classification.
type Cross struct {
	PersonalitySun   int   `json:"personality_sun"`
	PersonalityEarth int   `json:"personality_earth"`
	DesignSun        int   `json:"design_sun"`
	DesignEarth      int   `json:"design_earth"`
	Angle            Angle `json:"angle"`
}

// String returns a summary like "Right Angle (13/7 | 1/2)".
func (c Cross) String() string {
	return fmt.Sprintf("%s (%d/%d | %d/%d)", c.Angle,
		c.PersonalitySun, c.PersonalityEarth, c.DesignSun, c.DesignEarth)
}
