package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hyperpulsex/hyperpulse/internal/models"
	"github.com/hyperpulsex/hyperpulse/internal/service"
)

// WorkoutService defines the workout operations required by the WorkoutHandler.
type WorkoutService interface {
	// SyncWorkout stores the workout and credits its points.
	SyncWorkout(ctx context.Context, w models.Workout) (service.SyncResult, error)
	// History lists the workouts of a user.
	History(ctx context.Context, username string) ([]models.Workout, error)
}

// WorkoutHandler handles workout synchronization and history.
type WorkoutHandler struct {
	WorkoutService WorkoutService
}

// Sync handles POST /api/workout/sync.
// It decodes a workout, invokes the WorkoutService and reports the points earned.
func (h *WorkoutHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var workout models.Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	res, err := h.WorkoutService.SyncWorkout(r.Context(), workout)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":      "Workout synced & Score updated!",
		"pointsEarned": res.PointsEarned,
	})
}

// History handles GET /api/workout/history/{username}.
func (h *WorkoutHandler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.WorkoutService.History(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, history)
}
