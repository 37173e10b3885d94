package ephemeris

import "math"

// J2000 is the Julian day of the standard epoch 2000 January 1.5 TT.
const J2000 = 2451545.0

// JulianDay converts a Gregorian calendar date, civil time, and UTC offset to
// a Julian day. The offset is subtracted to obtain universal time; because the
// conversion is linear in the decimal day, times that roll past midnight in
// either direction need no calendar adjustment.
func JulianDay(year, month, day, hour, minute int, utcOffset float64) float64 {
	ut := float64(hour) + float64(minute)/60.0 - utcOffset

	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(float64(y) / 100.0)
	b := 2 - a + math.Floor(a/4.0)

	d := float64(day) + ut/24.0
	return math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		d + b - 1524.5
}

// normalize reduces an angle in degrees to [0, 360).
func normalize(deg float64) float64 {
	d := math.Mod(deg, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}
