package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"sbindex/internal/model"
	"sbindex/internal/repository"
	"sbindex/internal/transport/rest/middleware"
)

// SaveHandler handles survey and EEG save endpoints
type SaveHandler struct {
	surveySaves repository.SurveySaveRepo
	eegSaves    repository.EEGSaveRepo
}

// NewSaveHandler creates a new save handler
func NewSaveHandler(surveySaves repository.SurveySaveRepo, eegSaves repository.EEGSaveRepo) *SaveHandler {
	return &SaveHandler{surveySaves: surveySaves, eegSaves: eegSaves}
}

// CreateSurveySave handles POST /v1/surveys/saves
func (h *SaveHandler) CreateSurveySave(w http.ResponseWriter, r *http.Request) {
	var save model.SurveySave
	if err := json.NewDecoder(r.Body).Decode(&save); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(save.Responses) == 0 {
		writeError(w, http.StatusBadRequest, "responses are required")
		return
	}

	save.UserEmail = middleware.GetUserEmail(r.Context())
	id, err := h.surveySaves.Create(r.Context(), &save)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// ListSurveySaves handles GET /v1/surveys/saves
func (h *SaveHandler) ListSurveySaves(w http.ResponseWriter, r *http.Request) {
	saves, err := h.surveySaves.ListByUser(r.Context(), middleware.GetUserEmail(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"saves": saves})
}

// GetSurveySave handles GET /v1/surveys/saves/{saveId}
func (h *SaveHandler) GetSurveySave(w http.ResponseWriter, r *http.Request) {
	save, err := h.surveySaves.GetByID(r.Context(), middleware.GetUserEmail(r.Context()), mux.Vars(r)["saveId"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if save == nil {
		writeError(w, http.StatusNotFound, "save not found")
		return
	}
	writeJSON(w, http.StatusOK, save)
}

// CreateEEGSave handles POST /v1/eeg/saves
func (h *SaveHandler) CreateEEGSave(w http.ResponseWriter, r *http.Request) {
	var save model.EEGSave
	if err := json.NewDecoder(r.Body).Decode(&save); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	save.UserEmail = middleware.GetUserEmail(r.Context())
	id, err := h.eegSaves.Create(r.Context(), &save)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// ListEEGSaves handles GET /v1/eeg/saves
func (h *SaveHandler) ListEEGSaves(w http.ResponseWriter, r *http.Request) {
	saves, err := h.eegSaves.ListByUser(r.Context(), middleware.GetUserEmail(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"saves": saves})
}

// GetEEGSave handles GET /v1/eeg/saves/{saveId}
func (h *SaveHandler) GetEEGSave(w http.ResponseWriter, r *http.Request) {
	save, err := h.eegSaves.GetByID(r.Context(), middleware.GetUserEmail(r.Context()), mux.Vars(r)["saveId"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if save == nil {
		writeError(w, http.StatusNotFound, "save not found")
		return
	}
	writeJSON(w, http.StatusOK, save)
}
