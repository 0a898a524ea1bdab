// Package db opens the PostgreSQL store, applies the schema and runs
// background maintenance.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    username TEXT NOT NULL,
    age INTEGER,
    gender TEXT,
    height_cm DOUBLE PRECISION,
    weight_kg DOUBLE PRECISION,
    fitness_profile JSONB,
    total_score BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS users_username_idx ON users (username, created_at);

CREATE TABLE IF NOT EXISTS exercises (
    id UUID PRIMARY KEY,
    position BIGSERIAL,
    title TEXT NOT NULL UNIQUE,
    subtitle TEXT NOT NULL,
    goals TEXT[] NOT NULL DEFAULT '{}',
    equipment_needed TEXT[] NOT NULL DEFAULT '{}',
    location TEXT NOT NULL DEFAULT 'Any' CHECK (location IN ('Home', 'Gym', 'Outdoor', 'Any')),
    intensity TEXT NOT NULL DEFAULT '' CHECK (intensity IN ('', 'Low', 'Medium', 'High')),
    is_injury_safe BOOLEAN NOT NULL DEFAULT TRUE,
    difficulty TEXT NOT NULL DEFAULT '' CHECK (difficulty IN ('', 'Beginner', 'Intermediate', 'Advanced')),
    steps TEXT[] NOT NULL DEFAULT '{}',
    description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS workouts (
    id UUID PRIMARY KEY,
    username TEXT NOT NULL,
    exercise_name TEXT NOT NULL DEFAULT '',
    reps INTEGER NOT NULL DEFAULT 0,
    duration_sec INTEGER NOT NULL DEFAULT 0,
    accuracy DOUBLE PRECISION NOT NULL DEFAULT 0,
    calories_burned DOUBLE PRECISION NOT NULL DEFAULT 0,
    client_timestamp TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (username, client_timestamp)
);
`

// InitPostgres opens the database, waits at most connectTimeout for it to
// answer and applies the schema.
func InitPostgres(dsn string, connectTimeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return db, nil
}

// TableCounts returns the row count of every application table.
func TableCounts(ctx context.Context, db *sql.DB) (map[string]int64, error) {
	counts := make(map[string]int64, 3)
	for _, table := range []string{"users", "exercises", "workouts"} {
		var n int64
		if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}
