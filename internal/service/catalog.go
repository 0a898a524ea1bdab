// Package service provides the business logic for recommendations, user
// profiles and workout synchronization, delegating persistence to
// repository interfaces.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hyperpulsex/hyperpulse/internal/models"
	"github.com/hyperpulsex/hyperpulse/internal/recommend"
	"github.com/hyperpulsex/hyperpulse/internal/repository"
	"go.uber.org/zap"
)

// ExerciseRepository defines the catalog read needed by the CatalogService.
type ExerciseRepository interface {
	// ListExercises returns every exercise in the store.
	ListExercises(ctx context.Context) ([]models.Exercise, error)
}

// CatalogResult is the catalog served to callers. Fallback is set when the
// built-in list replaced an empty or unreachable store.
type CatalogResult struct {
	Exercises []models.Exercise
	Fallback  bool
}

// CatalogService loads the exercise catalog, substituting the fallback
// catalog when the store has nothing to offer.
type CatalogService struct {
	repo ExerciseRepository
	log  *zap.Logger
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(repo ExerciseRepository, log *zap.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

// Load returns the stored catalog, or the fallback catalog when the store is
// unavailable or empty. Other store errors are returned as is.
func (s *CatalogService) Load(ctx context.Context) (CatalogResult, error) {
	exercises, err := s.repo.ListExercises(ctx)
	switch {
	case errors.Is(err, repository.ErrStoreUnavailable):
		s.log.Debug("catalog store unavailable, serving fallback catalog")
		return CatalogResult{Exercises: recommend.FallbackCatalog(), Fallback: true}, nil
	case err != nil:
		return CatalogResult{}, fmt.Errorf("load catalog: %w", err)
	case len(exercises) == 0:
		s.log.Debug("catalog store empty, serving fallback catalog")
		return CatalogResult{Exercises: recommend.FallbackCatalog(), Fallback: true}, nil
	}
	return CatalogResult{Exercises: exercises}, nil
}
