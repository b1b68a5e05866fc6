package core

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestVec3_AddMultiply(t *testing.T) {
	v := NewVec3(1, 2, 3).Add(NewVec3(0.5, -2, 1)).Multiply(2)
	expected := NewVec3(3, 0, 8)

	if math.Abs(v.X-expected.X) > tolerance ||
		math.Abs(v.Y-expected.Y) > tolerance ||
		math.Abs(v.Z-expected.Z) > tolerance {
		t.Errorf("Expected %v, got %v", expected, v)
	}
}

func TestVec3_Clamp(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{"all in range", NewVec3(0.2, 0.5, 0.8), NewVec3(0.2, 0.5, 0.8)},
		{"clamp high", NewVec3(1.5, 0.5, 2.0), NewVec3(1.0, 0.5, 1.0)},
		{"clamp low", NewVec3(-0.5, 0.5, -2.0), NewVec3(0.0, 0.5, 0.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Clamp(0.0, 1.0)
			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_GammaCorrect(t *testing.T) {
	v := NewVec3(0.25, 1.0, 0.0).GammaCorrect(2.0)

	if math.Abs(v.X-0.5) > tolerance {
		t.Errorf("Expected 0.25 to gamma-correct to 0.5, got %f", v.X)
	}
	if math.Abs(v.Y-1.0) > tolerance {
		t.Errorf("Expected 1.0 to stay 1.0, got %f", v.Y)
	}
	if math.Abs(v.Z) > tolerance {
		t.Errorf("Expected 0.0 to stay 0.0, got %f", v.Z)
	}
}

func TestVec3_Lerp(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(1, 2, 4)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp at t=0 should return the start, got %v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp at t=1 should return the end, got %v", got)
	}

	mid := a.Lerp(b, 0.5)
	expected := NewVec3(0.5, 1, 2)
	if math.Abs(mid.X-expected.X) > tolerance ||
		math.Abs(mid.Y-expected.Y) > tolerance ||
		math.Abs(mid.Z-expected.Z) > tolerance {
		t.Errorf("Expected midpoint %v, got %v", expected, mid)
	}
}
