package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hyperpulsex/hyperpulse/internal/models"
	"github.com/hyperpulsex/hyperpulse/internal/repository"
	"github.com/hyperpulsex/hyperpulse/internal/service"
)

// UserService defines the user operations required by the UserHandler.
type UserService interface {
	// SyncUser creates or updates the user matched by email.
	SyncUser(ctx context.Context, in models.UserSync, profile map[string]any) (*models.User, error)
	// Profile returns the user with the given username.
	Profile(ctx context.Context, username string) (*models.User, error)
}

// UserHandler handles profile lookup and synchronization.
type UserHandler struct {
	UserService UserService
}

// SyncUserRequest is the body of POST /api/user/sync.
type SyncUserRequest struct {
	// User carries the profile fields; email identifies the user.
	User models.UserSync `json:"user"`
	// Profile holds the questionnaire answers stored as the fitness profile.
	Profile map[string]any `json:"profile"`
}

// Profile handles GET /api/user/profile/{username}.
// It answers 404 when no user has that username.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.UserService.Profile(r.Context(), username)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Sync handles POST /api/user/sync.
// It registers the user on first sync and merges the submitted fields afterwards.
func (h *UserHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var req SyncUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	user, err := h.UserService.SyncUser(r.Context(), req.User, req.Profile)
	if errors.Is(err, service.ErrInvalidUser) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "User synced successfully",
		"user":    user,
	})
}
