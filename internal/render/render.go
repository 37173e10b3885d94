// Package render turns an assembled chart into terminal text, JSON, or TOML.
// Terminal output uses lipgloss styling; the structured encodings are plain
// and stable so they can be piped or persisted.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nimblemo/bodygraph/internal/bodygraph"
	"github.com/nimblemo/bodygraph/internal/catalog"
	"github.com/nimblemo/bodygraph/internal/chart"
	"github.com/nimblemo/bodygraph/internal/wheel"
)

var (
	colorPrimary = lipgloss.Color("12")
	colorAccent  = lipgloss.Color("11")
	colorMuted   = lipgloss.Color("8")
	colorDefined = lipgloss.Color("10")

	styleTitle   = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleLabel   = lipgloss.NewStyle().Foreground(colorAccent)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
	styleDefined = lipgloss.NewStyle().Foreground(colorDefined)
	styleHeader  = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Underline(true)
)

// Text renders the full chart for a terminal.
func Text(c *chart.Chart, cat *catalog.Catalog) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Bodygraph Chart") + "\n")
	b.WriteString(styleMuted.Render(c.Input.String()) + "\n\n")

	writeField(&b, "Type", cat.TypeName(c.Type))
	writeField(&b, "Strategy", cat.Strategy(c.Type))
	writeField(&b, "Authority", cat.AuthorityName(c.Authority))
	writeField(&b, "Profile", fmt.Sprintf("%s  %s", c.Profile, cat.ProfileName(c.Profile)))
	writeField(&b, "Cross", fmt.Sprintf("%s (%d/%d | %d/%d)", c.Cross.Angle,
		c.Cross.PersonalitySun, c.Cross.PersonalityEarth,
		c.Cross.DesignSun, c.Cross.DesignEarth))
	writeField(&b, "Motivation", fmt.Sprintf("%s (color %d)", cat.MotivationName(c.Motivation), c.Motivation))
	writeField(&b, "Environment", fmt.Sprintf("%s (color %d)", cat.EnvironmentName(c.Environment), c.Environment))
	writeField(&b, "Diet", fmt.Sprintf("%s (color %d)", cat.DietName(c.Diet), c.Diet))
	b.WriteString("\n")

	b.WriteString(styleHeader.Render("Centers") + "\n")
	defined := c.DefinedCenterSet()
	for _, center := range bodygraph.Centers() {
		mark, style := "○", styleMuted
		if defined[center] {
			mark, style = "●", styleDefined
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", style.Render(mark), cat.CenterName(center)))
	}
	b.WriteString("\n")

	b.WriteString(styleHeader.Render("Channels") + "\n")
	if len(c.Channels) == 0 {
		b.WriteString(styleMuted.Render("  none") + "\n")
	}
	for _, ch := range c.Channels {
		b.WriteString(fmt.Sprintf("  %s  %s — %s\n", styleLabel.Render(ch.Key()),
			cat.GateName(ch.GateA), cat.GateName(ch.GateB)))
	}
	b.WriteString("\n")

	b.WriteString(styleHeader.Render("Personality") + "\n")
	writeActivations(&b, c.Personality, cat)
	b.WriteString("\n")
	b.WriteString(styleHeader.Render("Design") + "\n")
	writeActivations(&b, c.Design, cat)

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s %s\n", styleLabel.Render(fmt.Sprintf("%-10s", label+":")), value)
}

func writeActivations(b *strings.Builder, acts []chart.Activation, cat *catalog.Catalog) {
	for _, a := range acts {
		sign, symbol, within := wheel.Zodiac(a.Position.Longitude)
		fmt.Fprintf(b, "  %s %-11s %2d.%d  %s %s %5.2f°  %s\n",
			a.Body.Symbol(), a.Body,
			a.Position.Gate, a.Position.Line,
			symbol, sign, within,
			styleMuted.Render(cat.GateName(a.Position.Gate)))
	}
}

// Summary is the one-line form used by batch output and history listings.
func Summary(c *chart.Chart, cat *catalog.Catalog) string {
	return fmt.Sprintf("%s · %s · %s · %s", cat.TypeName(c.Type),
		cat.AuthorityName(c.Authority), c.Profile, c.Cross)
}
