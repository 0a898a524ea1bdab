package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/hyperpulsex/hyperpulse/internal/models"
)

// UnknownExerciseName replaces empty exercise names during repair.
const UnknownExerciseName = "Unknown Exercise"

// PostgresWorkoutRepository implements workout synchronization against a PostgreSQL database.
type PostgresWorkoutRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresWorkoutRepository creates a new PostgresWorkoutRepository using the provided *sql.DB.
func NewPostgresWorkoutRepository(db *sql.DB) *PostgresWorkoutRepository {
	return &PostgresWorkoutRepository{DB: db}
}

// UpsertWorkout inserts w, or overwrites every field of the row with the
// same (username, timestamp). It returns the stored workout and whether a
// new row was created.
//
//	ctx: context for cancellation and deadlines
//	w:   workout submitted by the client
func (r *PostgresWorkoutRepository) UpsertWorkout(ctx context.Context, w models.Workout) (*models.Workout, bool, error) {
	var (
		id       string
		inserted bool
	)
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO workouts (id, username, exercise_name, reps, duration_sec, accuracy, calories_burned, client_timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (username, client_timestamp) DO UPDATE SET
			exercise_name = EXCLUDED.exercise_name,
			reps = EXCLUDED.reps,
			duration_sec = EXCLUDED.duration_sec,
			accuracy = EXCLUDED.accuracy,
			calories_burned = EXCLUDED.calories_burned
		RETURNING id, (xmax = 0) AS inserted
	`, uuid.NewString(), w.Username, w.ExerciseName, w.Reps, w.DurationSec, w.Accuracy, w.CaloriesBurned, w.Timestamp).
		Scan(&id, &inserted)
	if err != nil {
		return nil, false, fmt.Errorf("UpsertWorkout: %w", err)
	}

	stored := w
	stored.ID = id
	return &stored, inserted, nil
}

// ListByUsername returns every workout of the user in the order they were first synced.
// An unknown username yields an empty slice.
func (r *PostgresWorkoutRepository) ListByUsername(ctx context.Context, username string) ([]models.Workout, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, username, exercise_name, reps, duration_sec, accuracy, calories_burned, client_timestamp
		FROM workouts WHERE username = $1 ORDER BY created_at, id
	`, username)
	if err != nil {
		return nil, fmt.Errorf("ListByUsername: %w", err)
	}
	defer rows.Close()

	workouts := make([]models.Workout, 0)
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.Username, &w.ExerciseName, &w.Reps, &w.DurationSec,
			&w.Accuracy, &w.CaloriesBurned, &w.Timestamp); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListByUsername: %w", err)
	}
	return workouts, nil
}

// RepairExerciseNames sets UnknownExerciseName on workouts stored without an
// exercise name and returns how many rows changed.
func (r *PostgresWorkoutRepository) RepairExerciseNames(ctx context.Context) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE workouts SET exercise_name = $1 WHERE exercise_name = ''`,
		UnknownExerciseName,
	)
	if err != nil {
		return 0, fmt.Errorf("RepairExerciseNames: %w", err)
	}
	return res.RowsAffected()
}

// DayStats counts workouts whose timestamp starts with day (YYYY-MM-DD) and,
// among them, those with at least one rep.
func (r *PostgresWorkoutRepository) DayStats(ctx context.Context, day string) (total, withReps int64, err error) {
	err = r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE reps > 0)
		FROM workouts WHERE client_timestamp LIKE $1
	`, day+"%").Scan(&total, &withReps)
	if err != nil {
		return 0, 0, fmt.Errorf("DayStats: %w", err)
	}
	return total, withReps, nil
}
