package handler

import (
	"net/http"

	"sbindex/internal/service"
)

// CatalogHandler serves the survey item catalog
type CatalogHandler struct {
	diagnosisSvc *service.DiagnosisService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(diagnosisSvc *service.DiagnosisService) *CatalogHandler {
	return &CatalogHandler{diagnosisSvc: diagnosisSvc}
}

// List handles GET /v1/items, optionally filtered by ?domain=
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.diagnosisSvc.CatalogItems()
	if domainName := r.URL.Query().Get("domain"); domainName != "" {
		filtered := items[:0:0]
		for _, item := range items {
			if item.Domain == domainName {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(items),
		"items": items,
	})
}

// Validate handles GET /v1/items/validate
func (h *CatalogHandler) Validate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.diagnosisSvc.CatalogValidation())
}
