// Package trace drives batches of geodesic integrations over a linearly
// sampled range of impact parameters.
package trace

import (
	"fmt"

	"github.com/kerrlens/go-kerr-lensing/pkg/geodesic"
)

// Request describes a sweep: an inclusive impact-parameter range sampled at
// Samples evenly spaced points, traced with fixed spin and observer radius.
type Request struct {
	ImpactMin      float64
	ImpactMax      float64
	Spin           float64
	ObserverRadius float64
	Samples        int
}

// Sample is the traced result for one impact parameter.
type Sample struct {
	Impact          float64 `json:"impact"`
	Deflection      float64 `json:"deflection"`
	TravelTime      float64 `json:"travelTime"`
	ClosestApproach float64 `json:"closestApproach"`
	Hit             bool    `json:"hit"`
}

// Bundle traces min(req.Samples, len(out)) rays into the caller-supplied
// buffer, in input order, and returns the number written. It returns -1 and
// writes nothing when the request or buffer is invalid (nil request, nil
// buffer, or non-positive sample count). This is the host interop edge and
// keeps the sentinel contract of the embedded kernel.
func Bundle(req *Request, out []Sample) int {
	if req == nil || out == nil || req.Samples <= 0 {
		return -1
	}

	count := req.Samples
	if count > len(out) {
		count = len(out)
	}

	step := 0.0
	if req.Samples > 1 {
		step = (req.ImpactMax - req.ImpactMin) / float64(req.Samples-1)
	}

	cfg := geodesic.DefaultConfig()
	for i := 0; i < count; i++ {
		impact := req.ImpactMin + step*float64(i)
		out[i] = traceOne(req, impact, cfg)
	}
	return count
}

// Trace is the Go-facing wrapper around Bundle: it allocates the output and
// reports invalid requests as an error.
func Trace(req Request) ([]Sample, error) {
	if req.Samples <= 0 {
		return nil, fmt.Errorf("sample count must be positive, got %d", req.Samples)
	}
	out := make([]Sample, req.Samples)
	Bundle(&req, out)
	return out, nil
}

// CriticalImpact returns the boundary between capture and escape found in a
// traced sweep: the first escaping impact parameter that follows a captured
// one. ok is false when the sweep contains no such transition.
func CriticalImpact(samples []Sample) (impact float64, ok bool) {
	for i := 1; i < len(samples); i++ {
		if samples[i-1].Hit && !samples[i].Hit {
			return samples[i].Impact, true
		}
	}
	return 0, false
}

func traceOne(req *Request, impact float64, cfg geodesic.Config) Sample {
	r := geodesic.Integrate(geodesic.Params{
		Spin:           req.Spin,
		Impact:         impact,
		ObserverRadius: req.ObserverRadius,
	}, cfg)

	return Sample{
		Impact:          impact,
		Deflection:      r.Deflection,
		TravelTime:      r.TravelTime,
		ClosestApproach: r.ClosestApproach,
		Hit:             r.Hit,
	}
}
