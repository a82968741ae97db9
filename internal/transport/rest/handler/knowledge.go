package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"sbindex/internal/model"
	"sbindex/internal/service"
)

// KnowledgeHandler handles knowledge base endpoints
type KnowledgeHandler struct {
	knowledgeSvc *service.KnowledgeService
}

// NewKnowledgeHandler creates a new knowledge handler
func NewKnowledgeHandler(knowledgeSvc *service.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{knowledgeSvc: knowledgeSvc}
}

// Search handles GET /v1/knowledge/search?source=...&keywords=a,b&limit=5
func (h *KnowledgeHandler) Search(w http.ResponseWriter, r *http.Request) {
	sourceType := r.URL.Query().Get("source")
	if sourceType == "" {
		sourceType = model.SourceBlog
	}

	var keywords []string
	for _, kw := range strings.Split(r.URL.Query().Get("keywords"), ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) == 0 {
		writeError(w, http.StatusBadRequest, "keywords query parameter is required")
		return
	}

	limit := int64(5)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 || parsed > 50 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 50")
			return
		}
		limit = parsed
	}

	rows, err := h.knowledgeSvc.Search(r.Context(), sourceType, keywords, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(rows),
		"rows":  rows,
	})
}

// Add handles POST /v1/admin/knowledge
func (h *KnowledgeHandler) Add(w http.ResponseWriter, r *http.Request) {
	var row model.KnowledgeRow
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if row.URL == "" || row.Title == "" {
		writeError(w, http.StatusBadRequest, "url and title are required")
		return
	}
	if row.SourceType != model.SourceBlog && row.SourceType != model.SourceYoutube {
		writeError(w, http.StatusBadRequest, "unknown source type")
		return
	}

	created, err := h.knowledgeSvc.Add(r.Context(), &row)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]bool{"created": created})
}
