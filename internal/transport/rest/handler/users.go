package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"sbindex/internal/repository"
	"sbindex/internal/transport/rest/middleware"
)

// UserHandler handles admin user management endpoints
type UserHandler struct {
	userRepo repository.UserRepo
}

// NewUserHandler creates a new user handler
func NewUserHandler(userRepo repository.UserRepo) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// List handles GET /v1/admin/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(users),
		"users": users,
	})
}

// Delete handles DELETE /v1/admin/users/{email}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	if email == middleware.GetUserEmail(r.Context()) {
		writeError(w, http.StatusBadRequest, "cannot delete the current account")
		return
	}
	if err := h.userRepo.Delete(r.Context(), email); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": email})
}
