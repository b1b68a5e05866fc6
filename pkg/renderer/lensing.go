// Package renderer turns batches of traced rays into images. The lensing map
// sweeps the impact parameter along x and the spin along y: captured rays
// form the black-hole shadow, escaped rays are shaded by how strongly they
// were deflected.
package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/kerrlens/go-kerr-lensing/pkg/core"
	"github.com/kerrlens/go-kerr-lensing/pkg/trace"
)

// MapConfig contains the lensing map parameters
type MapConfig struct {
	Width          int     // Image width (impact parameter axis)
	Height         int     // Image height (spin axis)
	ImpactMin      float64 // Leftmost impact parameter
	ImpactMax      float64 // Rightmost impact parameter
	SpinMin        float64 // Bottom row spin
	SpinMax        float64 // Top row spin
	ObserverRadius float64 // Starting radius for every ray
	NumWorkers     int     // Parallel workers per row (0 = use CPU count)
}

// DefaultMapConfig returns sensible default values
func DefaultMapConfig() MapConfig {
	return MapConfig{
		Width:          400,
		Height:         225,
		ImpactMin:      0.0,
		ImpactMax:      10.0,
		SpinMin:        0.0,
		SpinMax:        0.998,
		ObserverRadius: 25.0,
		NumWorkers:     0,
	}
}

// MapStats contains statistics about a rendered lensing map
type MapStats struct {
	TotalRays     int     // Rays traced
	CapturedRays  int     // Rays that ended on the horizon
	MaxDeflection float64 // Largest |deflection| among escaped rays
}

// LensingMap renders the capture/deflection map for a spin range
type LensingMap struct {
	config MapConfig
}

// NewLensingMap creates a lensing map renderer
func NewLensingMap(config MapConfig) *LensingMap {
	return &LensingMap{config: config}
}

// Shadow and deflection shading endpoints.
var (
	coolColor = core.NewVec3(0.05, 0.08, 0.25)
	warmColor = core.NewVec3(1.0, 0.55, 0.1)
)

// Render traces one sweep per row and assembles the map. Row y = 0 is the
// top of the image and carries SpinMax.
func (lm *LensingMap) Render() (*image.RGBA, MapStats) {
	cfg := lm.config
	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	stats := MapStats{}

	for y := 0; y < cfg.Height; y++ {
		spin := cfg.SpinMax
		if cfg.Height > 1 {
			t := float64(y) / float64(cfg.Height-1)
			spin = cfg.SpinMax + t*(cfg.SpinMin-cfg.SpinMax)
		}

		samples, err := trace.TraceParallel(trace.Request{
			ImpactMin:      cfg.ImpactMin,
			ImpactMax:      cfg.ImpactMax,
			Spin:           spin,
			ObserverRadius: cfg.ObserverRadius,
			Samples:        cfg.Width,
		}, cfg.NumWorkers)
		if err != nil {
			// Width <= 0 is the only way to get here; return an empty image
			return img, stats
		}

		for x, sample := range samples {
			stats.TotalRays++
			if sample.Hit {
				stats.CapturedRays++
			} else if d := math.Abs(sample.Deflection); d > stats.MaxDeflection {
				stats.MaxDeflection = d
			}
			img.SetRGBA(x, y, lm.shade(sample))
		}
	}

	return img, stats
}

// shade maps one traced sample to a pixel color
func (lm *LensingMap) shade(sample trace.Sample) color.RGBA {
	if sample.Hit {
		return color.RGBA{A: 255} // shadow
	}

	// Stronger bending glows hotter; π is already extreme for escaped rays
	t := math.Abs(sample.Deflection) / math.Pi
	if t > 1 {
		t = 1
	}
	return vec3ToColor(coolColor.Lerp(warmColor, t))
}

// vec3ToColor converts a Vec3 color to RGBA with clamping and gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0)
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
