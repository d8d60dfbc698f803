package server

import (
	"encoding/json"
	"net/http"
	"time"

	"adlint-hq/saturn/pkg/catalog"
	"adlint-hq/saturn/pkg/compliance"
	"adlint-hq/saturn/pkg/experiment"
)

// lintRequest is the POST /v1/lint body.
type lintRequest struct {
	Content  compliance.Content `json:"content"`
	Platform string             `json:"platform"`
	Vertical string             `json:"vertical"`
	Region   string             `json:"region"`
}

// sampleSizeRequest is the POST /v1/experiments/sample-size body.
type sampleSizeRequest struct {
	BaselineRate            float64 `json:"baseline_rate"`
	MinimumDetectableEffect float64 `json:"minimum_detectable_effect"`
	Power                   float64 `json:"power"`
	SignificanceLevel       float64 `json:"significance_level"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleLint(w http.ResponseWriter, r *http.Request) {
	var req lintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	start := time.Now()
	result := s.linter.Lint(req.Content, req.Platform, req.Vertical, req.Region)
	duration := time.Since(start)

	if s.metrics != nil {
		s.metrics.ObserveLint(req.Platform, req.Vertical, result, duration)
	}
	if s.recorder != nil {
		s.recorder.RecordLint(req.Content, req.Platform, req.Vertical, req.Region, result)
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handlePolicyPacks(w http.ResponseWriter, r *http.Request) {
	filter := catalog.PackFilter{
		Vertical: r.URL.Query().Get("vertical"),
		Region:   r.URL.Query().Get("region"),
	}

	packs := s.catalog.Current().Packs(filter)
	s.writeJSON(w, http.StatusOK, map[string]any{"packs": packs})
}

func (s *Server) handlePolicyPack(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	pack, err := s.catalog.Current().Pack(id)
	if err != nil {
		if catalog.IsNotFound(err) {
			s.writeError(w, http.StatusNotFound, err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, pack)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var exp experiment.Experiment
	if err := json.NewDecoder(r.Body).Decode(&exp); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	analysis := experiment.Analyze(exp)

	if s.metrics != nil {
		s.metrics.ObserveAnalysis(analysis, experiment.CheckGuardrails(exp))
	}
	if s.recorder != nil {
		s.recorder.RecordAnalysis(exp, analysis)
	}

	s.writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleGuardrails(w http.ResponseWriter, r *http.Request) {
	var exp experiment.Experiment
	if err := json.NewDecoder(r.Body).Decode(&exp); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	breaches := experiment.CheckGuardrails(exp)
	if breaches == nil {
		breaches = []experiment.Breach{}
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"breaches": breaches})
}

func (s *Server) handleSampleSize(w http.ResponseWriter, r *http.Request) {
	var req sampleSizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.BaselineRate <= 0 || req.BaselineRate >= 1 {
		s.writeError(w, http.StatusBadRequest, "baseline_rate must be in (0, 1)")
		return
	}
	if req.MinimumDetectableEffect <= 0 {
		s.writeError(w, http.StatusBadRequest, "minimum_detectable_effect must be positive")
		return
	}

	size := experiment.CalculateSampleSize(
		req.BaselineRate,
		req.MinimumDetectableEffect,
		req.Power,
		req.SignificanceLevel,
	)

	s.writeJSON(w, http.StatusOK, map[string]any{"sample_size_per_variant": size})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// writeJSON writes a JSON response with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes a JSON error response.
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}
