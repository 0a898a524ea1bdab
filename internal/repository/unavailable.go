package repository

import (
	"context"

	"github.com/hyperpulsex/hyperpulse/internal/models"
)

// Unavailable stands in for every repository when the store could not be
// reached at startup. All methods fail with ErrStoreUnavailable.
type Unavailable struct{}

// ListExercises implements the catalog store.
func (Unavailable) ListExercises(context.Context) ([]models.Exercise, error) {
	return nil, ErrStoreUnavailable
}

// UpsertUser implements the user store.
func (Unavailable) UpsertUser(context.Context, models.UserSync, map[string]any) (*models.User, error) {
	return nil, ErrStoreUnavailable
}

// FindByUsername implements the user store.
func (Unavailable) FindByUsername(context.Context, string) (*models.User, error) {
	return nil, ErrStoreUnavailable
}

// IncrementScore implements the user store.
func (Unavailable) IncrementScore(context.Context, string, int64) (bool, error) {
	return false, ErrStoreUnavailable
}

// UpsertWorkout implements the workout store.
func (Unavailable) UpsertWorkout(context.Context, models.Workout) (*models.Workout, bool, error) {
	return nil, false, ErrStoreUnavailable
}

// ListByUsername implements the workout store.
func (Unavailable) ListByUsername(context.Context, string) ([]models.Workout, error) {
	return nil, ErrStoreUnavailable
}
