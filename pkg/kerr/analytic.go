package kerr

import "math"

// Physical constants (SI) for converting geometric units to meters.
const (
	gravitationalConstant = 6.67430e-11
	speedOfLight          = 299792458.0
	solarMassKg           = 1.98847e30
)

// thorneLimit is the astrophysical spin bound applied by the analytic
// helpers; their closed forms degenerate at |a| = 1.
const thorneLimit = 0.998

// GravitationalRadius returns the Schwarzschild radius in meters for a black
// hole mass given in solar masses.
func GravitationalRadius(massSolar float64) float64 {
	return (2 * gravitationalConstant * massSolar * solarMassKg) / (speedOfLight * speedOfLight)
}

// HorizonRadius returns the outer event horizon radius r₊ = 1 + √(1−a²) in
// gravitational radii.
func HorizonRadius(spin float64) float64 {
	a := clampSpin(spin, 1.0)
	return 1 + math.Sqrt(1-a*a)
}

// ISCORadius returns the innermost stable circular orbit radius in
// gravitational radii (Bardeen-Press-Teukolsky). Positive spin is prograde.
func ISCORadius(spin float64) float64 {
	a := clampSpin(spin, thorneLimit)
	term := math.Cbrt(1 - a*a)
	z1 := 1 + term*(math.Cbrt(1+a)+math.Cbrt(1-a))
	z2 := math.Sqrt(3*a*a + z1*z1)
	sign := 1.0
	if a < 0 {
		sign = -1.0
	}
	return 3 + z2 - sign*math.Sqrt((3-z1)*(3+z1+2*z2))
}

// PhotonOrbitRadius returns the prograde equatorial photon orbit radius in
// gravitational radii.
func PhotonOrbitRadius(spin float64) float64 {
	a := math.Abs(spin)
	if a > 0.999 {
		a = 0.999
	} else if a < 1e-6 {
		a = 1e-6
	}
	return 2 * (1 + math.Cos((2.0/3.0)*math.Acos(-a)))
}

func clampSpin(a, limit float64) float64 {
	if a > limit {
		return limit
	}
	if a < -limit {
		return -limit
	}
	return a
}
