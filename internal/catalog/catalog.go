// Package catalog loads the constant-data bundle the chart engine and the
// renderer consume: localized names for gates, centers, types, authorities,
// and profiles, the strategy line per type, and the cross angle table.
// Default catalogs are embedded; a data directory can override them.
// Completeness is validated at load time and an incomplete catalog is a
// fatal startup condition, never a per-chart error.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/nimblemo/bodygraph/internal/bodygraph"
	"github.com/nimblemo/bodygraph/internal/chart"
)

//go:embed data/*.toml
var embedded embed.FS

// ErrUnknownLanguage is returned when no catalog file exists for the
// requested language.
var ErrUnknownLanguage = errors.New("no catalog for language")

// TypeText is the display name and strategy line for one energy type.
type TypeText struct {
	Name     string `toml:"name"`
	Strategy string `toml:"strategy"`
}

// AngleEntry is one row of the cross angle table.
type AngleEntry struct {
	Personality int    `toml:"personality"`
	Design      int    `toml:"design"`
	Angle       string `toml:"angle"`
}

// Catalog is one language's constant-data bundle.
type Catalog struct {
	Language    string              `toml:"language"`
	Types       map[string]TypeText `toml:"types"`
	Authorities map[string]string   `toml:"authorities"`
	Centers     map[string]string   `toml:"centers"`
	Gates       map[string]string   `toml:"gates"`
	Profiles    map[string]string   `toml:"profiles"`
	Angles      []AngleEntry        `toml:"angles"`

	// Color-keyed names (keys "1" through "6").
	Motivations  map[string]string `toml:"motivations"`
	Environments map[string]string `toml:"environments"`
	Diets        map[string]string `toml:"diets"`

	angleTable chart.AngleTable
}

// Load reads the catalog for a language. When dir is non-empty and contains
// <lang>.toml, that file overrides the embedded default; otherwise the
// embedded catalog is used. The returned catalog is validated complete.
func Load(dir, lang string) (*Catalog, error) {
	data, err := readCatalog(dir, lang)
	if err != nil {
		return nil, err
	}

	var cat Catalog
	if err := toml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", lang, err)
	}
	if err := cat.validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Languages lists the embedded catalog languages, sorted.
func Languages() []string {
	entries, err := embedded.ReadDir("data")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(langs)
	return langs
}

func readCatalog(dir, lang string) ([]byte, error) {
	name := lang + ".toml"
	if dir != "" {
		path := filepath.Join(dir, name)
		if data, err := os.ReadFile(path); err == nil {
			return data, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("catalog: read %s: %w", path, err)
		}
	}
	data, err := embedded.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w %q", ErrUnknownLanguage, lang)
	}
	return data, nil
}

// validate checks completeness: every gate, center, type, authority, and
// profile must be named, and the angle table must be total over all 36
// ordered line pairs.
func (c *Catalog) validate() error {
	for g := 1; g <= 64; g++ {
		if c.Gates[strconv.Itoa(g)] == "" {
			return fmt.Errorf("catalog %s: gate %d unnamed", c.Language, g)
		}
	}
	for _, center := range bodygraph.Centers() {
		if c.Centers[center.Key()] == "" {
			return fmt.Errorf("catalog %s: center %s unnamed", c.Language, center.Key())
		}
	}
	for t := chart.Reflector; t <= chart.Projector; t++ {
		tt, ok := c.Types[t.Key()]
		if !ok || tt.Name == "" || tt.Strategy == "" {
			return fmt.Errorf("catalog %s: type %s incomplete", c.Language, t.Key())
		}
	}
	for a := chart.Emotional; a <= chart.NoInnerAuthority; a++ {
		if c.Authorities[a.Key()] == "" {
			return fmt.Errorf("catalog %s: authority %s unnamed", c.Language, a.Key())
		}
	}
	colorSections := map[string]map[string]string{
		"motivations":  c.Motivations,
		"environments": c.Environments,
		"diets":        c.Diets,
	}
	for section, names := range colorSections {
		for color := 1; color <= 6; color++ {
			if names[strconv.Itoa(color)] == "" {
				return fmt.Errorf("catalog %s: %s color %d unnamed", c.Language, section, color)
			}
		}
	}

	table := make(chart.AngleTable, len(c.Angles))
	for _, e := range c.Angles {
		angle, err := parseAngle(e.Angle)
		if err != nil {
			return fmt.Errorf("catalog %s: profile %d/%d: %w", c.Language, e.Personality, e.Design, err)
		}
		p := chart.Profile{Personality: e.Personality, Design: e.Design}
		if _, dup := table[p]; dup {
			return fmt.Errorf("catalog %s: profile %s listed twice in angle table", c.Language, p)
		}
		table[p] = angle
	}
	if err := table.Validate(); err != nil {
		return fmt.Errorf("catalog %s: %w", c.Language, err)
	}
	c.angleTable = table
	return nil
}

func parseAngle(key string) (chart.Angle, error) {
	switch key {
	case "right_angle":
		return chart.RightAngle, nil
	case "juxtaposition":
		return chart.Juxtaposition, nil
	case "left_angle":
		return chart.LeftAngle, nil
	}
	return 0, fmt.Errorf("unknown angle %q", key)
}

// AngleTable returns the validated cross angle table.
func (c *Catalog) AngleTable() chart.AngleTable {
	return c.angleTable
}

// GateName returns the display name for a gate, or the bare number when the
// gate is unknown.
func (c *Catalog) GateName(gate int) string {
	if name := c.Gates[strconv.Itoa(gate)]; name != "" {
		return name
	}
	return strconv.Itoa(gate)
}

// CenterName returns the display name for a center.
func (c *Catalog) CenterName(center bodygraph.Center) string {
	if name := c.Centers[center.Key()]; name != "" {
		return name
	}
	return center.String()
}

// TypeName returns the display name for a type.
func (c *Catalog) TypeName(t chart.Type) string {
	if tt, ok := c.Types[t.Key()]; ok && tt.Name != "" {
		return tt.Name
	}
	return t.String()
}

// Strategy returns the strategy line for a type.
func (c *Catalog) Strategy(t chart.Type) string {
	return c.Types[t.Key()].Strategy
}

// AuthorityName returns the display name for an authority.
func (c *Catalog) AuthorityName(a chart.Authority) string {
	if name := c.Authorities[a.Key()]; name != "" {
		return name
	}
	return a.String()
}

// ProfileName returns the display name for a profile, or its numeric form
// when the catalog has none.
func (c *Catalog) ProfileName(p chart.Profile) string {
	if name := c.Profiles[p.String()]; name != "" {
		return name
	}
	return p.String()
}

// MotivationName returns the display name for a motivation color.
func (c *Catalog) MotivationName(color int) string {
	return colorName(c.Motivations, color)
}

// EnvironmentName returns the display name for an environment color.
func (c *Catalog) EnvironmentName(color int) string {
	return colorName(c.Environments, color)
}

// DietName returns the display name for a diet color.
func (c *Catalog) DietName(color int) string {
	return colorName(c.Diets, color)
}

func colorName(names map[string]string, color int) string {
	if name := names[strconv.Itoa(color)]; name != "" {
		return name
	}
	return strconv.Itoa(color)
}
