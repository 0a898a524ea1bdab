// Package events publishes workout sync notifications to Kafka.
package events

import (
	"context"
	"time"
)

// WorkoutSynced is emitted after a workout has been stored and scored.
type WorkoutSynced struct {
	EventID      string    `json:"event_id"`
	Username     string    `json:"username"`
	ExerciseName string    `json:"exercise_name"`
	Reps         int       `json:"reps"`
	Accuracy     float64   `json:"accuracy"`
	Timestamp    string    `json:"timestamp"`
	PointsEarned int64     `json:"points_earned"`
	Created      bool      `json:"created"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Nop discards every event. It is used when no brokers are configured.
type Nop struct{}

// PublishWorkoutSynced implements the publisher used by the workout service.
func (Nop) PublishWorkoutSynced(context.Context, WorkoutSynced) error { return nil }

// Close implements io.Closer.
func (Nop) Close() error { return nil }
