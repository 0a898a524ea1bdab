package http

import (
	"net/http"

	"github.com/hyperpulsex/hyperpulse/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Recommendations *RecommendationHandler
	Exercises       *ExerciseHandler
	Users           *UserHandler
	Workouts        *WorkoutHandler
}

// NewRouter constructs and returns an HTTP handler that serves the
// HyperPulse API.
//
// Routes:
//
//	GET  /api/test                      → health message
//	POST /api/recommendations           → Recommendations.Recommend
//	GET  /api/exercises                 → Exercises.List
//	GET  /api/user/profile/{username}   → Users.Profile
//	POST /api/user/sync                 → Users.Sync (JSON only)
//	POST /api/workout/sync              → Workouts.Sync (JSON only)
//	GET  /api/workout/history/{username} → Workouts.History
//	GET  /metrics                       → Prometheus exposition
//
// Middleware chain (applied in order):
//  1. Recoverer                  - turns handler panics into 500
//  2. WithRequestLogging(logger) - logs every request
//
// The recommendation endpoint accepts any content type so that it can
// always answer.
func NewRouter(h Handlers, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.WithRequestLogging(logger))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/test", health)

		r.Post("/recommendations", h.Recommendations.Recommend)
		r.Get("/exercises", h.Exercises.List)

		r.Get("/user/profile/{username}", h.Users.Profile)
		r.Get("/workout/history/{username}", h.Workouts.History)

		// Sync endpoints only take JSON bodies
		r.Group(func(r chi.Router) {
			r.Use(chiMiddleware.AllowContentType("application/json"))
			r.Post("/user/sync", h.Users.Sync)
			r.Post("/workout/sync", h.Workouts.Sync)
		})
	})

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "HyperPulse backend is running",
		"status":  "ok",
	})
}
