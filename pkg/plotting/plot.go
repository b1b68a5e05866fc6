// Package plotting writes deflection and travel-time curves for a traced
// sweep, plus a CSV sidecar with the raw samples.
package plotting

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/kerrlens/go-kerr-lensing/pkg/trace"
)

// WriteSweep writes deflection.png, traveltime.png and sweep.csv into dir.
func WriteSweep(samples []trace.Sample, dir string) error {
	if err := WriteCSV(samples, filepath.Join(dir, "sweep.csv")); err != nil {
		return err
	}

	deflection := make(plotter.XYs, 0, len(samples))
	travelTime := make(plotter.XYs, 0, len(samples))
	for _, s := range samples {
		// Captured rays have no meaningful deflection to plot
		if s.Hit {
			continue
		}
		deflection = append(deflection, plotter.XY{X: s.Impact, Y: s.Deflection})
		travelTime = append(travelTime, plotter.XY{X: s.Impact, Y: s.TravelTime})
	}

	if err := writeCurve(deflection, curveSpec{
		title:  "Deflection vs Impact Parameter",
		xLabel: "impact parameter l (r_g)",
		yLabel: "deflection (rad)",
		path:   filepath.Join(dir, "deflection.png"),
	}); err != nil {
		return err
	}

	return writeCurve(travelTime, curveSpec{
		title:  "Coordinate Travel Time vs Impact Parameter",
		xLabel: "impact parameter l (r_g)",
		yLabel: "travel time (r_g/c)",
		path:   filepath.Join(dir, "traveltime.png"),
	})
}

// WriteCSV writes the raw samples with a header row.
func WriteCSV(samples []trace.Sample, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"impact", "deflection", "travel_time", "closest_approach", "hit"}); err != nil {
		return err
	}
	for _, s := range samples {
		hit := "0"
		if s.Hit {
			hit = "1"
		}
		err := w.Write([]string{
			fmt.Sprintf("%.6f", s.Impact),
			fmt.Sprintf("%.12f", s.Deflection),
			fmt.Sprintf("%.12f", s.TravelTime),
			fmt.Sprintf("%.12f", s.ClosestApproach),
			hit,
		})
		if err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

type curveSpec struct {
	title  string
	xLabel string
	yLabel string
	path   string
}

func writeCurve(pts plotter.XYs, spec curveSpec) error {
	p := plot.New()
	p.Title.Text = spec.title
	p.X.Label.Text = spec.xLabel
	p.Y.Label.Text = spec.yLabel

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	plotutil.AddLines(p, line)

	return p.Save(6*vg.Inch, 4*vg.Inch, spec.path)
}
