package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"sbindex/internal/analysis"
	"sbindex/internal/model"
	"sbindex/internal/service"
	"sbindex/internal/transport/rest/middleware"
)

// DiagnosisHandler handles scoring and diagnosis endpoints
type DiagnosisHandler struct {
	diagnosisSvc *service.DiagnosisService
}

// NewDiagnosisHandler creates a new diagnosis handler
func NewDiagnosisHandler(diagnosisSvc *service.DiagnosisService) *DiagnosisHandler {
	return &DiagnosisHandler{diagnosisSvc: diagnosisSvc}
}

// ScoreRequest is the request body for survey scoring. Response keys are
// sequence numbers; JSON object keys arrive as strings.
type ScoreRequest struct {
	Responses         map[string]int `json:"responses"`
	ExcludedSequences []int          `json:"excludedSequences,omitempty"`
}

// CombinedRequest adds an optional aggregate brainwave summary and custom
// blend weights to a scoring request.
type CombinedRequest struct {
	ScoreRequest
	Brainwave    *model.BrainwaveMetrics `json:"brainwave,omitempty"`
	SurveyWeight *float64                `json:"surveyWeight,omitempty"`
	EEGWeight    *float64                `json:"eegWeight,omitempty"`
}

// DiagnosisRequest is the request body for the full per-domain diagnosis
// and the pipeline run.
type DiagnosisRequest struct {
	ScoreRequest
	Profile *model.UserProfile `json:"profile,omitempty"`
}

func parseResponses(raw map[string]int) (map[int]int, error) {
	responses := make(map[int]int, len(raw))
	for key, score := range raw {
		seq, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("response key %q is not a sequence number", key)
		}
		responses[seq] = score
	}
	return responses, nil
}

// Score handles POST /v1/score
func (h *DiagnosisHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	responses, err := parseResponses(req.Responses)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.diagnosisSvc.Score(responses, req.ExcludedSequences)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// AnalyzeCombined handles POST /v1/analyze-combined
func (h *DiagnosisHandler) AnalyzeCombined(w http.ResponseWriter, r *http.Request) {
	var req CombinedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	responses, err := parseResponses(req.Responses)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	surveyWeight := analysis.DefaultSurveyWeight
	eegWeight := analysis.DefaultEEGWeight
	if req.SurveyWeight != nil {
		surveyWeight = *req.SurveyWeight
	}
	if req.EEGWeight != nil {
		eegWeight = *req.EEGWeight
	}

	result, err := h.diagnosisSvc.AnalyzeCombined(responses, req.ExcludedSequences, req.Brainwave, surveyWeight, eegWeight)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// AnalyzeSBI handles POST /v1/analyze-sbi
func (h *DiagnosisHandler) AnalyzeSBI(w http.ResponseWriter, r *http.Request) {
	var req DiagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	responses, err := parseResponses(req.Responses)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	diagnosis, err := h.diagnosisSvc.AnalyzeSBI(r.Context(), responses, req.ExcludedSequences, req.Profile)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, diagnosis)
}

// RunPipeline handles POST /v1/diagnosis/run
func (h *DiagnosisHandler) RunPipeline(w http.ResponseWriter, r *http.Request) {
	var req DiagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	responses, err := parseResponses(req.Responses)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	userEmail := middleware.GetUserEmail(r.Context())
	result, err := h.diagnosisSvc.RunPipeline(r.Context(), userEmail, responses, req.ExcludedSequences, req.Profile)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Latest handles GET /v1/diagnosis/latest
func (h *DiagnosisHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userEmail := middleware.GetUserEmail(r.Context())
	record, err := h.diagnosisSvc.Latest(r.Context(), userEmail)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if record == nil {
		writeError(w, http.StatusNotFound, "no diagnosis found")
		return
	}
	writeJSON(w, http.StatusOK, record)
}
