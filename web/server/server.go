// Package server exposes the tracer over a small JSON HTTP API.
package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kerrlens/go-kerr-lensing/pkg/kerr"
	"github.com/kerrlens/go-kerr-lensing/pkg/renderer"
	"github.com/kerrlens/go-kerr-lensing/pkg/trace"
)

// Server handles web requests for the Kerr lensing tracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// TraceResponse is the JSON body returned by /api/trace
type TraceResponse struct {
	ImpactMin      float64        `json:"impactMin"`
	ImpactMax      float64        `json:"impactMax"`
	Spin           float64        `json:"spin"`
	ObserverRadius float64        `json:"observerRadius"`
	CriticalImpact *float64       `json:"criticalImpact,omitempty"`
	Samples        []trace.Sample `json:"samples"`
}

// MapResponse is the JSON body returned by /api/lensing-map
type MapResponse struct {
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	ImageData     string  `json:"imageData"` // Base64 encoded PNG
	TotalRays     int     `json:"totalRays"`
	CapturedRays  int     `json:"capturedRays"`
	MaxDeflection float64 `json:"maxDeflection"`
}

// Start starts the web server
func (s *Server) Start() error {
	http.HandleFunc("/api/trace", s.handleTrace)
	http.HandleFunc("/api/lensing-map", s.handleLensingMap)
	http.HandleFunc("/api/validate", s.handleValidate)
	http.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleTrace runs one impact-parameter sweep and returns the samples
func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, workers, err := parseTraceRequest(r.URL.Query())
	if err != nil {
		s.sendError(w, http.StatusBadRequest, err)
		return
	}

	samples, err := trace.TraceParallel(*req, workers)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, err)
		return
	}

	resp := TraceResponse{
		ImpactMin:      req.ImpactMin,
		ImpactMax:      req.ImpactMax,
		Spin:           req.Spin,
		ObserverRadius: req.ObserverRadius,
		Samples:        samples,
	}
	if critical, ok := trace.CriticalImpact(samples); ok {
		resp.CriticalImpact = &critical
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// handleLensingMap renders a capture/deflection map and returns it as base64 PNG
func (s *Server) handleLensingMap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	cfg, err := parseMapRequest(r.URL.Query())
	if err != nil {
		s.sendError(w, http.StatusBadRequest, err)
		return
	}

	img, stats := renderer.NewLensingMap(*cfg).Render()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		s.sendError(w, http.StatusInternalServerError, fmt.Errorf("failed to encode image: %v", err))
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(MapResponse{
		Width:         cfg.Width,
		Height:        cfg.Height,
		ImageData:     base64.StdEncoding.EncodeToString(buf.Bytes()),
		TotalRays:     stats.TotalRays,
		CapturedRays:  stats.CapturedRays,
		MaxDeflection: stats.MaxDeflection,
	})
}

// handleValidate cross-checks the analytic helpers and returns the report
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	mass, err := parseFloatParam(r.URL.Query(), "mass", 6.5e8, 1.0, 1e12)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(kerr.Validate(mass))
}

func (s *Server) sendError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// parseTraceRequest parses and validates the sweep parameters
func parseTraceRequest(values url.Values) (*trace.Request, int, error) {
	req := &trace.Request{}

	var err error
	if req.ImpactMin, err = parseFloatParam(values, "impactMin", 0.0, -20.0, 20.0); err != nil {
		return nil, 0, err
	}
	if req.ImpactMax, err = parseFloatParam(values, "impactMax", 10.0, -20.0, 20.0); err != nil {
		return nil, 0, err
	}
	if req.Spin, err = parseFloatParam(values, "spin", 0.0, -0.998, 0.998); err != nil {
		return nil, 0, err
	}
	if req.ObserverRadius, err = parseFloatParam(values, "observer", 25.0, 2.0, 1000.0); err != nil {
		return nil, 0, err
	}
	if req.Samples, err = parseIntParam(values, "samples", 200, 1, 10000); err != nil {
		return nil, 0, err
	}
	workers, err := parseIntParam(values, "workers", 0, 0, 256)
	if err != nil {
		return nil, 0, err
	}

	// Performance warning
	if req.Samples > 5000 {
		log.Printf("Trace warning: %d samples may respond slowly", req.Samples)
	}

	return req, workers, nil
}

// parseMapRequest parses and validates the lensing map parameters
func parseMapRequest(values url.Values) (*renderer.MapConfig, error) {
	cfg := renderer.DefaultMapConfig()

	var err error
	if cfg.Width, err = parseIntParam(values, "width", 400, 16, 2000); err != nil {
		return nil, err
	}
	if cfg.Height, err = parseIntParam(values, "height", 225, 16, 2000); err != nil {
		return nil, err
	}
	if cfg.ImpactMin, err = parseFloatParam(values, "impactMin", 0.0, -20.0, 20.0); err != nil {
		return nil, err
	}
	if cfg.ImpactMax, err = parseFloatParam(values, "impactMax", 10.0, -20.0, 20.0); err != nil {
		return nil, err
	}
	if cfg.SpinMin, err = parseFloatParam(values, "spinMin", 0.0, -0.998, 0.998); err != nil {
		return nil, err
	}
	if cfg.SpinMax, err = parseFloatParam(values, "spinMax", 0.998, -0.998, 0.998); err != nil {
		return nil, err
	}
	if cfg.ObserverRadius, err = parseFloatParam(values, "observer", 25.0, 2.0, 1000.0); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
