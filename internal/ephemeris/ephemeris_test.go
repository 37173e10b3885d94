package ephemeris

import (
	"errors"
	"math"
	"testing"
)

func TestJulianDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                           string
		year, month, day, hour, minute int
		utcOffset                      float64
		want                           float64
	}{
		{"J2000Epoch", 2000, 1, 1, 12, 0, 0, 2451545.0},
		{"Meeus1987", 1987, 1, 27, 0, 0, 0, 2446822.5},
		{"Midnight2000", 2000, 1, 1, 0, 0, 0, 2451544.5},
		{"SputnikLaunch", 1957, 10, 4, 19, 26, 0, 2436116.30972},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := JulianDay(tt.year, tt.month, tt.day, tt.hour, tt.minute, tt.utcOffset)
			if math.Abs(got-tt.want) > 1e-4 {
				t.Errorf("JulianDay = %.5f, want %.5f", got, tt.want)
			}
		})
	}
}

func TestJulianDayOffsetRollover(t *testing.T) {
	t.Parallel()

	// 00:30 at UTC+3 is 21:30 UT the previous day; the decimal-day
	// conversion needs no calendar fixup for either direction.
	a := JulianDay(2000, 1, 1, 0, 30, 3.0)
	b := JulianDay(1999, 12, 31, 21, 30, 0)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("offset rollover mismatch: %.6f vs %.6f", a, b)
	}

	c := JulianDay(1999, 12, 31, 23, 0, -5.0)
	d := JulianDay(2000, 1, 1, 4, 0, 0)
	if math.Abs(c-d) > 1e-9 {
		t.Errorf("negative offset rollover mismatch: %.6f vs %.6f", c, d)
	}
}

func TestBodies(t *testing.T) {
	t.Parallel()

	bodies := Bodies()
	if len(bodies) != 13 {
		t.Fatalf("expected 13 bodies, got %d", len(bodies))
	}
	if bodies[0] != Sun {
		t.Errorf("expected Sun first, got %s", bodies[0])
	}

	keys := make(map[string]bool)
	for _, b := range bodies {
		k := b.Key()
		if k == "unknown" {
			t.Errorf("body %s has no key", b)
		}
		if keys[k] {
			t.Errorf("duplicate body key %q", k)
		}
		keys[k] = true
		if b.Symbol() == "?" {
			t.Errorf("body %s has no symbol", b)
		}
	}
}

func TestLongitudeOutsideRange(t *testing.T) {
	t.Parallel()

	p := AnalyticProvider{}

	for _, jd := range []float64{minJD - 1, maxJD + 1, 0} {
		_, err := p.Longitude(Sun, jd)
		if !errors.Is(err, ErrOutsideRange) {
			t.Errorf("Longitude(Sun, %v) error = %v, want ErrOutsideRange", jd, err)
		}
	}
}

func TestLongitudeAllBodiesInRange(t *testing.T) {
	t.Parallel()

	p := AnalyticProvider{}
	jd := JulianDay(1990, 5, 15, 11, 30, 0)

	for _, b := range Bodies() {
		lon, err := p.Longitude(b, jd)
		if err != nil {
			t.Fatalf("Longitude(%s) error: %v", b, err)
		}
		if lon < 0 || lon >= 360 {
			t.Errorf("Longitude(%s) = %v not normalized", b, lon)
		}
	}
}

func TestSunEarthOpposition(t *testing.T) {
	t.Parallel()

	p := AnalyticProvider{}

	for _, jd := range []float64{2451545.0, 2448000.25, 2458000.75} {
		sun, err := p.Longitude(Sun, jd)
		if err != nil {
			t.Fatalf("sun at %v: %v", jd, err)
		}
		earth, err := p.Longitude(Earth, jd)
		if err != nil {
			t.Fatalf("earth at %v: %v", jd, err)
		}
		diff := math.Mod(earth-sun+360.0, 360.0)
		if math.Abs(diff-180.0) > 1e-9 {
			t.Errorf("earth - sun at %v = %v, want 180", jd, diff)
		}
	}
}

func TestNodesOpposition(t *testing.T) {
	t.Parallel()

	p := AnalyticProvider{}
	jd := 2451545.0

	north, _ := p.Longitude(NorthNode, jd)
	south, _ := p.Longitude(SouthNode, jd)
	diff := math.Mod(south-north+360.0, 360.0)
	if math.Abs(diff-180.0) > 1e-9 {
		t.Errorf("south - north = %v, want 180", diff)
	}
}

// TestSunMonotonic checks the solver's provider contract: inside any 100-day
// window the Sun's longitude increases strictly, about one degree per day.
func TestSunMonotonic(t *testing.T) {
	t.Parallel()

	p := AnalyticProvider{}
	start := JulianDay(1990, 2, 1, 0, 0, 0)

	prev, err := p.Longitude(Sun, start)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 400; i++ {
		jd := start + float64(i)*0.25
		lon, err := p.Longitude(Sun, jd)
		if err != nil {
			t.Fatal(err)
		}
		step := math.Mod(lon-prev+360.0, 360.0)
		if step <= 0 || step > 1.0 {
			t.Fatalf("sun step at jd %v = %v°, want in (0, 1]", jd, step)
		}
		prev = lon
	}
}

// TestSunEquinox anchors the theory against a known event: at the March 2000
// equinox (2000-03-20 07:35 UT) the apparent solar longitude crosses 0°.
func TestSunEquinox(t *testing.T) {
	t.Parallel()

	p := AnalyticProvider{}
	jd := JulianDay(2000, 3, 20, 7, 35, 0)

	lon, err := p.Longitude(Sun, jd)
	if err != nil {
		t.Fatal(err)
	}
	// Distance from 0° in either direction.
	dist := math.Min(lon, 360.0-lon)
	if dist > 0.05 {
		t.Errorf("sun at March 2000 equinox = %v°, want within 0.05° of 0", lon)
	}
}

func TestBodyJSONKey(t *testing.T) {
	t.Parallel()

	data, err := NorthNode.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"north_node"` {
		t.Errorf("MarshalJSON = %s, want %q", data, `"north_node"`)
	}
}
