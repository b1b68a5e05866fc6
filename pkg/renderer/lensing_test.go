package renderer

import (
	"image/color"
	"testing"
)

// testMapConfig keeps render tests fast: few rays, close observer.
func testMapConfig() MapConfig {
	return MapConfig{
		Width:          24,
		Height:         6,
		ImpactMin:      0.0,
		ImpactMax:      10.0,
		SpinMin:        0.0,
		SpinMax:        0.998,
		ObserverRadius: 20.0,
		NumWorkers:     2,
	}
}

func TestLensingMap_Render(t *testing.T) {
	cfg := testMapConfig()
	img, stats := NewLensingMap(cfg).Render()

	bounds := img.Bounds()
	if bounds.Dx() != cfg.Width || bounds.Dy() != cfg.Height {
		t.Fatalf("Expected %dx%d image, got %dx%d", cfg.Width, cfg.Height, bounds.Dx(), bounds.Dy())
	}
	if stats.TotalRays != cfg.Width*cfg.Height {
		t.Errorf("Expected %d rays traced, got %d", cfg.Width*cfg.Height, stats.TotalRays)
	}

	// The sweep spans capture through escape, so both classes must appear
	if stats.CapturedRays == 0 {
		t.Errorf("Map spanning l=0 should contain captured rays")
	}
	if stats.CapturedRays == stats.TotalRays {
		t.Errorf("Map reaching l=10 should contain escaping rays")
	}
	if stats.MaxDeflection <= 0 {
		t.Errorf("Escaping rays should record a positive max deflection, got %f", stats.MaxDeflection)
	}
}

func TestLensingMap_ShadowEdges(t *testing.T) {
	cfg := testMapConfig()
	img, _ := NewLensingMap(cfg).Render()

	// Leftmost column is l=0: radial rays fall in at every spin, so the
	// whole column is shadow.
	for y := 0; y < cfg.Height; y++ {
		if got := img.RGBAAt(0, y); got != (color.RGBA{A: 255}) {
			t.Errorf("Pixel (0,%d) should be shadow, got %+v", y, got)
		}
	}

	// Rightmost column is l=10, far past critical at every spin: never shadow
	for y := 0; y < cfg.Height; y++ {
		got := img.RGBAAt(cfg.Width-1, y)
		if got.R == 0 && got.G == 0 && got.B == 0 {
			t.Errorf("Pixel (%d,%d) should be lit, got %+v", cfg.Width-1, y, got)
		}
	}
}

func TestLensingMap_Deterministic(t *testing.T) {
	cfg := testMapConfig()

	first, firstStats := NewLensingMap(cfg).Render()
	second, secondStats := NewLensingMap(cfg).Render()

	if firstStats != secondStats {
		t.Errorf("Stats differ between identical renders: %+v vs %+v", firstStats, secondStats)
	}
	for i := range first.Pix {
		if first.Pix[i] != second.Pix[i] {
			t.Fatalf("Pixel data differs at byte %d between identical renders", i)
		}
	}
}
