package ephemeris

import "math"

// Mean orbital elements for the planets, linear in d = jd - 2451543.5
// (epoch 2000.0). Each element is value + rate*d.
type elements struct {
	n  [2]float64 // longitude of ascending node
	i  [2]float64 // inclination
	w  [2]float64 // argument of perihelion
	a  [2]float64 // semi-major axis, AU
	e  [2]float64 // eccentricity
	m  [2]float64 // mean anomaly
}

var planetElements = map[Body]elements{
	Mercury: {
		n: [2]float64{48.3313, 3.24587e-5},
		i: [2]float64{7.0047, 5.00e-8},
		w: [2]float64{29.1241, 1.01444e-5},
		a: [2]float64{0.387098, 0},
		e: [2]float64{0.205635, 5.59e-10},
		m: [2]float64{168.6562, 4.0923344368},
	},
	Venus: {
		n: [2]float64{76.6799, 2.46590e-5},
		i: [2]float64{3.3946, 2.75e-8},
		w: [2]float64{54.8910, 1.38374e-5},
		a: [2]float64{0.723330, 0},
		e: [2]float64{0.006773, -1.302e-9},
		m: [2]float64{48.0052, 1.6021302244},
	},
	Mars: {
		n: [2]float64{49.5574, 2.11081e-5},
		i: [2]float64{1.8497, -1.78e-8},
		w: [2]float64{286.5016, 2.92961e-5},
		a: [2]float64{1.523688, 0},
		e: [2]float64{0.093405, 2.516e-9},
		m: [2]float64{18.6021, 0.5240207766},
	},
	Jupiter: {
		n: [2]float64{100.4542, 2.76854e-5},
		i: [2]float64{1.3030, -1.557e-7},
		w: [2]float64{273.8777, 1.64505e-5},
		a: [2]float64{5.20256, 0},
		e: [2]float64{0.048498, 4.469e-9},
		m: [2]float64{19.8950, 0.0830853001},
	},
	Saturn: {
		n: [2]float64{113.6634, 2.38980e-5},
		i: [2]float64{2.4886, -1.081e-7},
		w: [2]float64{339.3939, 2.97661e-5},
		a: [2]float64{9.55475, 0},
		e: [2]float64{0.055546, -9.499e-9},
		m: [2]float64{316.9670, 0.0334442282},
	},
	Uranus: {
		n: [2]float64{74.0005, 1.3978e-5},
		i: [2]float64{0.7733, 1.9e-8},
		w: [2]float64{96.6612, 3.0565e-5},
		a: [2]float64{19.18171, -1.55e-8},
		e: [2]float64{0.047318, 7.45e-9},
		m: [2]float64{142.5905, 0.011725806},
	},
	Neptune: {
		n: [2]float64{131.7806, 3.0173e-5},
		i: [2]float64{1.7700, -2.55e-7},
		w: [2]float64{272.8461, -6.027e-6},
		a: [2]float64{30.05826, 3.313e-8},
		e: [2]float64{0.008606, 2.15e-9},
		m: [2]float64{260.2471, 0.005995147},
	},
}

func (el elements) at(d float64) (n, i, w, a, e, m float64) {
	return el.n[0] + el.n[1]*d,
		el.i[0] + el.i[1]*d,
		el.w[0] + el.w[1]*d,
		el.a[0] + el.a[1]*d,
		el.e[0] + el.e[1]*d,
		el.m[0] + el.m[1]*d
}

// planetLongitude returns the geocentric ecliptic longitude of one of the
// seven classical-to-outer planets: heliocentric position from mean elements
// and a Kepler solve, longitude perturbations for the gas giants, then
// translation to the geocentric frame via the Sun's position vector.
func planetLongitude(body Body, jd float64) float64 {
	d := jd - 2451543.5

	n, i, w, a, e, m := planetElements[body].at(d)

	ea := solveKepler(m, e)
	xv := a * (cosd(ea) - e)
	yv := a * math.Sqrt(1-e*e) * sind(ea)
	v := atan2d(yv, xv)
	r := math.Hypot(xv, yv)

	// Heliocentric ecliptic rectangular coordinates.
	xh := r * (cosd(n)*cosd(v+w) - sind(n)*sind(v+w)*cosd(i))
	yh := r * (sind(n)*cosd(v+w) + cosd(n)*sind(v+w)*cosd(i))
	zh := r * sind(v+w) * sind(i)

	lonecl := atan2d(yh, xh) + giantPerturbation(body, d)
	latecl := atan2d(zh, math.Hypot(xh, yh))

	xh = r * cosd(lonecl) * cosd(latecl)
	yh = r * sind(lonecl) * cosd(latecl)
	zh = r * sind(latecl)

	xs, ys := sunVector(d)
	return normalize(atan2d(yh+ys, xh+xs))
}

// giantPerturbation returns the classical longitude perturbations for
// Jupiter, Saturn, and Uranus caused by their mutual attraction. Other
// planets need no correction at this precision.
func giantPerturbation(body Body, d float64) float64 {
	if body != Jupiter && body != Saturn && body != Uranus {
		return 0
	}
	mj := planetElements[Jupiter].m[0] + planetElements[Jupiter].m[1]*d
	ms := planetElements[Saturn].m[0] + planetElements[Saturn].m[1]*d
	mu := planetElements[Uranus].m[0] + planetElements[Uranus].m[1]*d

	switch body {
	case Jupiter:
		return -0.332*sind(2*mj-5*ms-67.6) -
			0.056*sind(2*mj-2*ms+21) +
			0.042*sind(3*mj-5*ms+21) -
			0.036*sind(mj-2*ms) +
			0.022*cosd(mj-ms) +
			0.023*sind(2*mj-3*ms+52) -
			0.016*sind(mj-5*ms-69)
	case Saturn:
		return 0.812*sind(2*mj-5*ms-67.6) -
			0.229*cosd(2*mj-4*ms-2) +
			0.119*sind(mj-2*ms-3) +
			0.046*sind(2*mj-6*ms-69) +
			0.014*sind(mj-3*ms+32)
	case Uranus:
		return 0.040*sind(ms-2*mu+6) +
			0.035*sind(ms-3*mu+33) -
			0.015*sind(mj-mu+20)
	}
	return 0
}

// sunVector returns the geocentric ecliptic rectangular position of the Sun
// in AU, used to translate heliocentric planet positions to the geocentric
// frame.
func sunVector(d float64) (x, y float64) {
	w := 282.9404 + 4.70935e-5*d
	e := 0.016709 - 1.151e-9*d
	m := 356.0470 + 0.9856002585*d

	ea := solveKepler(m, e)
	xv := cosd(ea) - e
	yv := math.Sqrt(1-e*e) * sind(ea)
	v := atan2d(yv, xv)
	r := math.Hypot(xv, yv)

	lon := v + w
	return r * cosd(lon), r * sind(lon)
}

// plutoLongitude returns the geocentric ecliptic longitude of Pluto from a
// periodic curve fit to numerical integration, calibrated for 1900-2100.
func plutoLongitude(jd float64) float64 {
	d := jd - 2451543.5

	s := 50.03 + 0.033459652*d
	p := 238.95 + 0.003968789*d

	lonecl := 238.9508 + 0.00400703*d -
		19.799*sind(p) + 19.848*cosd(p) +
		0.897*sind(2*p) - 4.956*cosd(2*p) +
		0.610*sind(3*p) + 1.211*cosd(3*p) -
		0.341*sind(4*p) - 0.190*cosd(4*p) +
		0.128*sind(5*p) - 0.034*cosd(5*p) -
		0.038*sind(6*p) + 0.031*cosd(6*p) +
		0.020*sind(s-p) - 0.010*cosd(s-p)

	latecl := -3.9082 -
		5.453*sind(p) - 14.975*cosd(p) +
		3.527*sind(2*p) + 1.673*cosd(2*p) -
		1.051*sind(3*p) + 0.328*cosd(3*p) +
		0.179*sind(4*p) - 0.292*cosd(4*p) +
		0.019*sind(5*p) + 0.100*cosd(5*p) -
		0.031*sind(6*p) - 0.026*cosd(6*p) +
		0.011*cosd(s-p)

	r := 40.72 +
		6.68*sind(p) + 6.90*cosd(p) -
		1.18*sind(2*p) - 0.03*cosd(2*p) +
		0.15*sind(3*p) - 0.14*cosd(3*p)

	xh := r * cosd(lonecl) * cosd(latecl)
	yh := r * sind(lonecl) * cosd(latecl)

	xs, ys := sunVector(d)
	return normalize(atan2d(yh+ys, xh+xs))
}
