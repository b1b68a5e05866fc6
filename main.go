package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/kerrlens/go-kerr-lensing/pkg/kerr"
	"github.com/kerrlens/go-kerr-lensing/pkg/plotting"
	"github.com/kerrlens/go-kerr-lensing/pkg/renderer"
	"github.com/kerrlens/go-kerr-lensing/pkg/trace"
)

func main() {
	// Parse command line flags
	spin := flag.Float64("spin", 0.9, "Dimensionless Kerr spin parameter a")
	observer := flag.Float64("observer", 25.0, "Observer radius in gravitational radii")
	impactMin := flag.Float64("impact-min", 0.0, "Smallest impact parameter to trace")
	impactMax := flag.Float64("impact-max", 10.0, "Largest impact parameter to trace")
	samples := flag.Int("samples", 500, "Number of impact parameters to sample")
	workers := flag.Int("workers", 0, "Parallel workers (0 = one per CPU)")
	mass := flag.Float64("mass", 6.5e8, "Black hole mass in solar masses (validation report)")
	outputDir := flag.String("output", "output", "Output directory")
	skipMap := flag.Bool("skip-map", false, "Skip rendering the lensing map image")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Kerr Lensing Tracer")
		fmt.Println("Usage: kerrtrace [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output: sweep CSV, deflection/travel-time plots, lensing map PNG")
		fmt.Println("and a validation report, all written to the output directory.")
		return
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	// Cross-check the analytic helpers before tracing anything
	report := kerr.Validate(*mass)
	verdict := "PASS"
	if !report.OK {
		verdict = "FAIL"
	}
	fmt.Printf("[%s] analytic validation: max_rel_error=%.4e mean_rel_error=%.4e\n",
		verdict, report.MaxRelError, report.MeanRelError)
	if err := report.WriteFile(filepath.Join(*outputDir, "validation_report.json")); err != nil {
		fmt.Printf("Error writing validation report: %v\n", err)
		return
	}

	fmt.Printf("Tracing %d rays: spin=%.3f observer=%.1f impact=[%.2f, %.2f]\n",
		*samples, *spin, *observer, *impactMin, *impactMax)

	req := trace.Request{
		ImpactMin:      *impactMin,
		ImpactMax:      *impactMax,
		Spin:           *spin,
		ObserverRadius: *observer,
		Samples:        *samples,
	}

	startTime := time.Now()
	sweep, err := trace.TraceParallel(req, *workers)
	if err != nil {
		fmt.Printf("Error tracing sweep: %v\n", err)
		return
	}
	traceTime := time.Since(startTime)

	capturedCount := 0
	for _, s := range sweep {
		if s.Hit {
			capturedCount++
		}
	}
	fmt.Printf("Sweep completed in %v (%d captured, %d escaped)\n",
		traceTime, capturedCount, len(sweep)-capturedCount)
	if critical, ok := trace.CriticalImpact(sweep); ok {
		fmt.Printf("Critical impact parameter: %.4f (photon orbit at r=%.4f)\n",
			critical, kerr.PhotonOrbitRadius(*spin))
	}

	if err := plotting.WriteSweep(sweep, *outputDir); err != nil {
		fmt.Printf("Error writing sweep plots: %v\n", err)
		return
	}
	fmt.Printf("Wrote sweep.csv, deflection.png, traveltime.png\n")

	if *skipMap {
		return
	}

	mapConfig := renderer.DefaultMapConfig()
	mapConfig.ImpactMin = *impactMin
	mapConfig.ImpactMax = *impactMax
	mapConfig.ObserverRadius = *observer
	mapConfig.NumWorkers = *workers

	startTime = time.Now()
	img, stats := renderer.NewLensingMap(mapConfig).Render()
	fmt.Printf("Lensing map rendered in %v (%d/%d rays captured)\n",
		time.Since(startTime), stats.CapturedRays, stats.TotalRays)

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(*outputDir, fmt.Sprintf("lensing_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		return
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		return
	}

	fmt.Printf("Lensing map saved as %s\n", filename)
}
