// Package observability holds the Prometheus collectors of the service.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recommendation sources.
const (
	SourceCatalog  = "catalog"
	SourceFallback = "fallback"
	SourceFailSafe = "failsafe"
)

var (
	recommendationsServed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hyperpulse",
		Subsystem: "recommendations",
		Name:      "served_total",
		Help:      "Recommendation responses by the catalog they were computed from.",
	}, []string{"source"})
	workoutsSynced = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hyperpulse",
		Subsystem: "workouts",
		Name:      "synced_total",
		Help:      "Workout syncs, split by whether the upsert created a new record.",
	}, []string{"outcome"})
	pointsAwarded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hyperpulse",
		Subsystem: "workouts",
		Name:      "points_awarded_total",
		Help:      "Sum of points added to user scores.",
	})
)

func init() {
	prometheus.MustRegister(recommendationsServed, workoutsSynced, pointsAwarded)
}

// RecordRecommendation counts a recommendation response served from source.
func RecordRecommendation(source string) {
	recommendationsServed.WithLabelValues(source).Inc()
}

// RecordWorkoutSynced counts a workout sync and the points it awarded.
func RecordWorkoutSynced(created bool, points int64) {
	outcome := "updated"
	if created {
		outcome = "created"
	}
	workoutsSynced.WithLabelValues(outcome).Inc()
	if points > 0 {
		pointsAwarded.Add(float64(points))
	}
}
