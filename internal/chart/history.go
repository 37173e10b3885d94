package chart

import "fmt"

// HistoryRow returns the summary columns the chart store indexes.
func (c *Chart) HistoryRow() (birthDate, birthTime string, utcOffset float64, typ, authority, profile, cross string) {
	return fmt.Sprintf("%04d-%02d-%02d", c.Input.Year, c.Input.Month, c.Input.Day),
		fmt.Sprintf("%02d:%02d", c.Input.Hour, c.Input.Minute),
		c.Input.UTCOffset,
		c.Type.Key(),
		c.Authority.Key(),
		c.Profile.String(),
		fmt.Sprintf("%d/%d | %d/%d", c.Cross.PersonalitySun, c.Cross.PersonalityEarth,
			c.Cross.DesignSun, c.Cross.DesignEarth)
}
