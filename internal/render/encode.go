package render

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/nimblemo/bodygraph/internal/chart"
)

// JSON encodes the chart as indented JSON.
func JSON(c *chart.Chart) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: encode json: %w", err)
	}
	return append(data, '\n'), nil
}

// TOML encodes the chart summary as TOML. The activation detail lives in the
// JSON encoding; TOML carries the fields a human edits or diffs.
func TOML(c *chart.Chart) ([]byte, error) {
	// Scalar fields precede the input table so they stay top-level keys.
	doc := struct {
		Type        string      `toml:"type"`
		Authority   string      `toml:"authority"`
		Profile     string      `toml:"profile"`
		Cross       string      `toml:"cross"`
		Motivation  int         `toml:"motivation"`
		Environment int         `toml:"environment"`
		Diet        int         `toml:"diet"`
		Channels    []string    `toml:"channels"`
		Centers     []string    `toml:"centers"`
		Input       chart.Input `toml:"input"`
	}{
		Input:       c.Input,
		Type:        c.Type.Key(),
		Authority:   c.Authority.Key(),
		Profile:     c.Profile.String(),
		Cross:       c.Cross.String(),
		Motivation:  c.Motivation,
		Environment: c.Environment,
		Diet:        c.Diet,
	}
	for _, ch := range c.Channels {
		doc.Channels = append(doc.Channels, ch.Key())
	}
	for _, center := range c.Centers {
		doc.Centers = append(doc.Centers, center.Key())
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("render: encode toml: %w", err)
	}
	return data, nil
}
