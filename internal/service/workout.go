package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hyperpulsex/hyperpulse/internal/events"
	"github.com/hyperpulsex/hyperpulse/internal/models"
	"github.com/hyperpulsex/hyperpulse/internal/observability"
	"github.com/hyperpulsex/hyperpulse/internal/scoring"
	"go.uber.org/zap"
)

// WorkoutRepository defines the workout persistence needed by the WorkoutService.
type WorkoutRepository interface {
	// UpsertWorkout stores w keyed by (username, timestamp) and reports
	// whether a new record was created.
	UpsertWorkout(ctx context.Context, w models.Workout) (*models.Workout, bool, error)
	// ListByUsername returns the workouts of a user.
	ListByUsername(ctx context.Context, username string) ([]models.Workout, error)
}

// ScoreRepository applies atomic score increments.
type ScoreRepository interface {
	// IncrementScore adds points to the user's total and reports whether
	// a user matched.
	IncrementScore(ctx context.Context, username string, points int64) (bool, error)
}

// EventPublisher announces synced workouts.
type EventPublisher interface {
	PublishWorkoutSynced(ctx context.Context, evt events.WorkoutSynced) error
}

// SyncResult describes a processed workout sync.
type SyncResult struct {
	Workout      *models.Workout
	Created      bool
	PointsEarned int64
}

// WorkoutService stores workouts and credits their points.
type WorkoutService struct {
	workouts WorkoutRepository
	scores   ScoreRepository
	events   EventPublisher
	log      *zap.Logger
	now      func() time.Time
}

// NewWorkoutService constructs a WorkoutService.
func NewWorkoutService(workouts WorkoutRepository, scores ScoreRepository, publisher EventPublisher, log *zap.Logger) *WorkoutService {
	return &WorkoutService{
		workouts: workouts,
		scores:   scores,
		events:   publisher,
		log:      log,
		now:      time.Now,
	}
}

// SyncWorkout upserts w, computes its points from the submitted reps and
// accuracy, and adds them to the user's score.
//
// The increment is applied on every call, including resubmissions of an
// already stored workout, so retried submissions inflate the score.
func (s *WorkoutService) SyncWorkout(ctx context.Context, w models.Workout) (SyncResult, error) {
	if w.Timestamp == "" {
		w.Timestamp = s.now().UTC().Format(time.RFC3339Nano)
	}

	stored, created, err := s.workouts.UpsertWorkout(ctx, w)
	if err != nil {
		return SyncResult{}, fmt.Errorf("sync workout: %w", err)
	}

	points := scoring.ComputePoints(w.Reps, w.Accuracy)

	matched, err := s.scores.IncrementScore(ctx, w.Username, points)
	if err != nil {
		return SyncResult{}, fmt.Errorf("credit score: %w", err)
	}
	if !matched {
		s.log.Warn("no user to credit workout points",
			zap.String("username", w.Username),
			zap.Int64("points", points),
		)
	}

	observability.RecordWorkoutSynced(created, points)

	evt := events.WorkoutSynced{
		EventID:      uuid.NewString(),
		Username:     w.Username,
		ExerciseName: w.ExerciseName,
		Reps:         w.Reps,
		Accuracy:     w.Accuracy,
		Timestamp:    w.Timestamp,
		PointsEarned: points,
		Created:      created,
		OccurredAt:   s.now().UTC(),
	}
	if err := s.events.PublishWorkoutSynced(ctx, evt); err != nil {
		s.log.Warn("failed to publish workout event", zap.String("username", w.Username), zap.Error(err))
	}

	return SyncResult{Workout: stored, Created: created, PointsEarned: points}, nil
}

// History returns every workout synced by username.
func (s *WorkoutService) History(ctx context.Context, username string) ([]models.Workout, error) {
	return s.workouts.ListByUsername(ctx, username)
}
