package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hyperpulsex/hyperpulse/internal/models"
)

const userColumns = `id, email, username, age, gender, height_cm, weight_kg, fitness_profile, total_score, created_at`

// PostgresUserRepository implements user profile persistence using a PostgreSQL database.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository with the given database connection.
// db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// UpsertUser creates the user identified by in.Email or merges the submitted
// fields into the existing row. Nil fields, and a nil profile, keep the
// stored values. The whole operation is a single statement.
func (r *PostgresUserRepository) UpsertUser(ctx context.Context, in models.UserSync, profile map[string]any) (*models.User, error) {
	var profileJSON any
	if profile != nil {
		b, err := json.Marshal(profile)
		if err != nil {
			return nil, fmt.Errorf("encode fitness profile: %w", err)
		}
		profileJSON = string(b)
	}

	row := r.DB.QueryRowContext(ctx, `
		INSERT INTO users (id, email, username, age, gender, height_cm, weight_kg, fitness_profile)
		VALUES ($1, $2, COALESCE($3, ''), $4, $5, $6, $7, $8)
		ON CONFLICT (email) DO UPDATE SET
			username = COALESCE($3, users.username),
			age = COALESCE(EXCLUDED.age, users.age),
			gender = COALESCE(EXCLUDED.gender, users.gender),
			height_cm = COALESCE(EXCLUDED.height_cm, users.height_cm),
			weight_kg = COALESCE(EXCLUDED.weight_kg, users.weight_kg),
			fitness_profile = COALESCE(EXCLUDED.fitness_profile, users.fitness_profile)
		RETURNING `+userColumns,
		uuid.NewString(), in.Email, in.Username, in.Age, in.Gender, in.HeightCm, in.WeightKg, profileJSON,
	)

	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("UpsertUser: %w", err)
	}
	return user, nil
}

// FindByUsername returns the earliest created user with the given username,
// or ErrNotFound.
func (r *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE username = $1 ORDER BY created_at LIMIT 1
	`, username)

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("FindByUsername: %w", err)
	}
	return user, nil
}

// IncrementScore adds points to the total score of the user FindByUsername
// would return. The addition happens inside the UPDATE so concurrent calls
// never lose an increment. It reports whether a user matched.
func (r *PostgresUserRepository) IncrementScore(ctx context.Context, username string, points int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE users SET total_score = total_score + $1
		WHERE id = (SELECT id FROM users WHERE username = $2 ORDER BY created_at LIMIT 1)
	`, points, username)
	if err != nil {
		return false, fmt.Errorf("IncrementScore: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("IncrementScore: %w", err)
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		u       models.User
		profile []byte
	)
	if err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.Age, &u.Gender, &u.HeightCm, &u.WeightKg,
		&profile, &u.TotalScore, &u.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(profile) > 0 {
		if err := json.Unmarshal(profile, &u.FitnessProfile); err != nil {
			return nil, fmt.Errorf("decode fitness profile: %w", err)
		}
	}
	return &u, nil
}
