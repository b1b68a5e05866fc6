package kerr

import (
	"encoding/json"
	"os"
)

// validationTolerance is the maximum relative error accepted against the
// literature reference values.
const validationTolerance = 8e-3

// referencePoint pairs a spin value with its literature reference radius.
type referencePoint struct {
	spin     float64
	expected float64
}

// Literature values for the prograde ISCO and equatorial photon orbit.
var (
	referenceISCO = []referencePoint{
		{0.0, 6.0},
		{0.5, 4.233},
		{0.9, 2.320},
		{0.998, 1.237},
	}
	referencePhoton = []referencePoint{
		{0.0, 3.0},
		{0.5, 2.3472963553},
		{0.9, 1.5578546274},
		{0.998, 1.0739092577},
	}
)

// CheckEntry records the relative error of one analytic quantity at one spin.
type CheckEntry struct {
	Quantity      string  `json:"quantity"`
	Spin          float64 `json:"spin"`
	RelativeError float64 `json:"relative_error"`
}

// Report summarizes a validation run of the analytic Kerr helpers against
// literature reference values.
type Report struct {
	MassSolar    float64      `json:"mass_solar"`
	GravRadiusM  float64      `json:"grav_radius_m"`
	MaxRelError  float64      `json:"max_rel_error"`
	MeanRelError float64      `json:"mean_rel_error"`
	OK           bool         `json:"ok"`
	Entries      []CheckEntry `json:"entries"`
}

// Validate cross-checks the ISCO and photon-orbit helpers against the
// literature references and returns a report. massSolar only affects the
// reported gravitational radius.
func Validate(massSolar float64) Report {
	entries := checkSeries(nil, referenceISCO, ISCORadius, "isco")
	entries = checkSeries(entries, referencePhoton, PhotonOrbitRadius, "photon")

	maxErr := 0.0
	sumErr := 0.0
	for _, e := range entries {
		if e.RelativeError > maxErr {
			maxErr = e.RelativeError
		}
		sumErr += e.RelativeError
	}

	return Report{
		MassSolar:    massSolar,
		GravRadiusM:  GravitationalRadius(massSolar),
		MaxRelError:  maxErr,
		MeanRelError: sumErr / float64(len(entries)),
		OK:           maxErr < validationTolerance,
		Entries:      entries,
	}
}

// checkSeries appends one entry per reference point for the given quantity.
func checkSeries(entries []CheckEntry, reference []referencePoint, fn func(float64) float64, label string) []CheckEntry {
	for _, ref := range reference {
		value := fn(ref.spin)
		relErr := (value - ref.expected) / ref.expected
		if relErr < 0 {
			relErr = -relErr
		}
		entries = append(entries, CheckEntry{
			Quantity:      label,
			Spin:          ref.spin,
			RelativeError: relErr,
		})
	}
	return entries
}

// WriteFile writes the report as indented JSON.
func (r Report) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
