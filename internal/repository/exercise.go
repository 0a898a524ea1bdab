package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/hyperpulsex/hyperpulse/internal/models"
	"github.com/lib/pq"
)

// PostgresExerciseRepository reads and seeds the exercise catalog.
type PostgresExerciseRepository struct {
	// DB is the database handle for executing queries and transactions.
	DB *sql.DB
}

// NewPostgresExerciseRepository creates a PostgresExerciseRepository using the provided *sql.DB.
func NewPostgresExerciseRepository(db *sql.DB) *PostgresExerciseRepository {
	return &PostgresExerciseRepository{DB: db}
}

// ListExercises returns the whole catalog in insertion order.
func (r *PostgresExerciseRepository) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, subtitle, goals, equipment_needed, location, intensity,
		       is_injury_safe, difficulty, steps, description
		FROM exercises ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("ListExercises: %w", err)
	}
	defer rows.Close()

	exercises := make([]models.Exercise, 0)
	for rows.Next() {
		var ex models.Exercise
		var location string
		if err := rows.Scan(
			&ex.ID, &ex.Title, &ex.Subtitle,
			pq.Array(&ex.Goals), pq.Array(&ex.EquipmentNeeded),
			&location, &ex.Intensity, &ex.IsInjurySafe, &ex.Difficulty,
			pq.Array(&ex.Steps), &ex.Description,
		); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		ex.Location = models.Location(location)
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListExercises: %w", err)
	}
	return exercises, nil
}

// UpsertExercises inserts the given exercises, replacing existing ones with
// the same title, within a single transaction. It returns how many rows were
// written.
func (r *PostgresExerciseRepository) UpsertExercises(ctx context.Context, exercises []models.Exercise) (int, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, ex := range exercises {
		location := ex.Location
		if location == "" {
			location = models.LocationAny
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO exercises (id, title, subtitle, goals, equipment_needed, location,
			                       intensity, is_injury_safe, difficulty, steps, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (title) DO UPDATE SET
				subtitle = EXCLUDED.subtitle,
				goals = EXCLUDED.goals,
				equipment_needed = EXCLUDED.equipment_needed,
				location = EXCLUDED.location,
				intensity = EXCLUDED.intensity,
				is_injury_safe = EXCLUDED.is_injury_safe,
				difficulty = EXCLUDED.difficulty,
				steps = EXCLUDED.steps,
				description = EXCLUDED.description
		`, uuid.NewString(), ex.Title, ex.Subtitle, pq.Array(orEmpty(ex.Goals)), pq.Array(orEmpty(ex.EquipmentNeeded)),
			string(location), ex.Intensity, ex.IsInjurySafe, ex.Difficulty, pq.Array(orEmpty(ex.Steps)), ex.Description)
		if err != nil {
			return 0, fmt.Errorf("upsert %q: %w", ex.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(exercises), nil
}

// orEmpty keeps NULL out of the NOT NULL array columns.
func orEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
