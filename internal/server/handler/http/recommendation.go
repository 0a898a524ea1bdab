package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hyperpulsex/hyperpulse/internal/models"
	"github.com/hyperpulsex/hyperpulse/internal/service"
)

// RecommendationService defines the operations required by the RecommendationHandler.
type RecommendationService interface {
	// Recommend returns exercises for the questionnaire answers. It never fails.
	Recommend(ctx context.Context, q models.Questionnaire) service.Recommendation
	// FailSafe returns the response used when the request cannot be processed.
	FailSafe(ctx context.Context, cause error) service.Recommendation
}

// RecommendationHandler serves exercise recommendations.
type RecommendationHandler struct {
	Service RecommendationService
}

// Recommend handles POST /api/recommendations. It always answers 200: a body
// that cannot be decoded gets the fail-safe list.
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var rec service.Recommendation
	var q models.Questionnaire
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		rec = h.Service.FailSafe(ctx, err)
	} else {
		rec = h.Service.Recommend(ctx, q)
	}

	writeJSON(w, http.StatusOK, rec.Exercises)
}
