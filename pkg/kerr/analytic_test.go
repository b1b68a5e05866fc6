package kerr

import (
	"math"
	"testing"
)

func TestISCORadius_LiteratureValues(t *testing.T) {
	tests := []struct {
		spin     float64
		expected float64
	}{
		{0.0, 6.0},
		{0.5, 4.233},
		{0.9, 2.320},
		{0.998, 1.237},
	}

	for _, tt := range tests {
		got := ISCORadius(tt.spin)
		relErr := math.Abs(got-tt.expected) / tt.expected
		if relErr > 8e-3 {
			t.Errorf("ISCORadius(%v) = %f, want %f (rel err %e)", tt.spin, got, tt.expected, relErr)
		}
		t.Logf("ISCO a=%v: %f (rel err %e)", tt.spin, got, relErr)
	}
}

func TestPhotonOrbitRadius_LiteratureValues(t *testing.T) {
	tests := []struct {
		spin     float64
		expected float64
	}{
		{0.0, 3.0},
		{0.5, 2.3472963553},
		{0.9, 1.5578546274},
		{0.998, 1.0739092577},
	}

	for _, tt := range tests {
		got := PhotonOrbitRadius(tt.spin)
		relErr := math.Abs(got-tt.expected) / tt.expected
		if relErr > 8e-3 {
			t.Errorf("PhotonOrbitRadius(%v) = %f, want %f (rel err %e)", tt.spin, got, tt.expected, relErr)
		}
	}
}

func TestHorizonRadius(t *testing.T) {
	if got := HorizonRadius(0); got != 2.0 {
		t.Errorf("Schwarzschild horizon should sit at r=2, got %f", got)
	}
	if got := HorizonRadius(1); got != 1.0 {
		t.Errorf("Extremal horizon should sit at r=1, got %f", got)
	}
	// Monotone in |a|
	if HorizonRadius(0.5) <= HorizonRadius(0.9) {
		t.Errorf("Horizon radius should shrink with spin")
	}
	// Clamped beyond the physical bound
	if got := HorizonRadius(1.5); got != 1.0 {
		t.Errorf("Over-extremal spin should clamp to r=1, got %f", got)
	}
}

func TestGravitationalRadius(t *testing.T) {
	// M87*: 6.5e8 solar masses gives a Schwarzschild radius near 1.92e12 m
	got := GravitationalRadius(6.5e8)
	expected := 1.92e12
	if math.Abs(got-expected)/expected > 0.01 {
		t.Errorf("GravitationalRadius(6.5e8) = %e, want ≈%e", got, expected)
	}

	// Linear in mass
	if ratio := GravitationalRadius(2.0) / GravitationalRadius(1.0); math.Abs(ratio-2.0) > 1e-12 {
		t.Errorf("Gravitational radius should scale linearly with mass, ratio %f", ratio)
	}
}
