package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nimblemo/bodygraph/internal/chart"
)

// parseInput validates date, time, and UTC offset strings into a chart
// input. All validation happens here, before the engine is invoked.
func parseInput(date, tm, utc string) (chart.Input, error) {
	var in chart.Input

	dateParts := strings.Split(date, "-")
	if len(dateParts) != 3 {
		return in, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	var err error
	if in.Year, err = strconv.Atoi(dateParts[0]); err != nil {
		return in, fmt.Errorf("invalid year %q", dateParts[0])
	}
	if in.Month, err = strconv.Atoi(dateParts[1]); err != nil {
		return in, fmt.Errorf("invalid month %q", dateParts[1])
	}
	if in.Day, err = strconv.Atoi(dateParts[2]); err != nil {
		return in, fmt.Errorf("invalid day %q", dateParts[2])
	}

	timeParts := strings.Split(tm, ":")
	if len(timeParts) != 2 {
		return in, fmt.Errorf("invalid time %q, expected HH:MM", tm)
	}
	if in.Hour, err = strconv.Atoi(timeParts[0]); err != nil {
		return in, fmt.Errorf("invalid hour %q", timeParts[0])
	}
	if in.Minute, err = strconv.Atoi(timeParts[1]); err != nil {
		return in, fmt.Errorf("invalid minute %q", timeParts[1])
	}

	offset := strings.TrimSpace(utc)
	offset = strings.TrimPrefix(offset, "+")
	if in.UTCOffset, err = strconv.ParseFloat(offset, 64); err != nil {
		return in, fmt.Errorf("invalid utc offset %q, expected e.g. +3, -5, +5.5", utc)
	}

	if err := in.Validate(); err != nil {
		return in, err
	}
	return in, nil
}
