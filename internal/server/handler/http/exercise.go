package http

import (
	"context"
	"net/http"

	"github.com/hyperpulsex/hyperpulse/internal/service"
)

// CatalogService defines the catalog read required by the ExerciseHandler.
type CatalogService interface {
	Load(ctx context.Context) (service.CatalogResult, error)
}

// ExerciseHandler serves the exercise library.
type ExerciseHandler struct {
	Catalog CatalogService
}

// List handles GET /api/exercises with the stored or fallback catalog.
func (h *ExerciseHandler) List(w http.ResponseWriter, r *http.Request) {
	res, err := h.Catalog.Load(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res.Exercises)
}
