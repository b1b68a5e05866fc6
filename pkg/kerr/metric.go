package kerr

import "math"

// deltaGuard clamps the magnitude of Δ near the horizon so the φ and t
// derivatives stay finite instead of blowing up at the coordinate singularity.
const deltaGuard = 1e-9

// Geodesic holds the conserved quantities of one equatorial null geodesic:
// the dimensionless spin a of the black hole and the impact parameter l
// (angular momentum per unit energy). All radii are in gravitational radii.
type Geodesic struct {
	Spin   float64
	Impact float64
}

// Delta is the Kerr horizon function Δ(r) = r² − 2r + a².
// It is non-positive inside or at the event horizon.
func Delta(r, a float64) float64 {
	return r*r - 2.0*r + a*a
}

// Sigma is the equatorial Kerr Σ(r) = r².
func Sigma(r float64) float64 {
	return r * r
}

// RadialPotential is the effective radial potential R(r) for an equatorial
// null geodesic with impact parameter l. Radial motion is physically allowed
// where R ≥ 0.
func RadialPotential(r, a, l float64) float64 {
	term1 := (r*r + a*a) - a*l
	term2 := l - a
	return term1*term1 - Delta(r, a)*term2*term2
}

// SafeSqrt returns √x, or 0 for x ≤ 0. Numerical drift can push the radial
// potential slightly negative near a turning point; returning 0 there keeps
// NaNs out of the step.
func SafeSqrt(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Sqrt(x)
}

// Derivatives holds one evaluation of the equations of motion: the rates of
// change of radius, azimuth and coordinate time with respect to the affine
// parameter.
type Derivatives struct {
	DR   float64
	DPhi float64
	DT   float64
}

// Eval computes the equatorial Kerr null-geodesic derivatives at radius r.
// sign selects inward (−1) or outward (+1) radial motion; the caller supplies
// it, it is never inferred from the potential.
//
// Eval never fails: the Δ guard and SafeSqrt absorb degenerate inputs.
// Deciding that a degenerate region means "ray is done" is the integrator's
// job, not the evaluator's.
func (g Geodesic) Eval(r, sign float64) Derivatives {
	a := g.Spin
	l := g.Impact
	sig := Sigma(r)

	d := Delta(r, a)
	if math.Abs(d) < deltaGuard {
		if d >= 0 {
			d = deltaGuard
		} else {
			d = -deltaGuard
		}
	}

	dr := sign * SafeSqrt(RadialPotential(r, a, l)) / sig

	dphi := (2.0*a*r + (sig-2.0*r)*l) / (d * sig)

	part := r*r + a*a
	dt := (part*(part-a*l)/d + a*(l-a)) / sig

	return Derivatives{DR: dr, DPhi: dphi, DT: dt}
}
