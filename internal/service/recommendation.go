package service

import (
	"context"
	"fmt"

	"github.com/hyperpulsex/hyperpulse/internal/models"
	"github.com/hyperpulsex/hyperpulse/internal/observability"
	"github.com/hyperpulsex/hyperpulse/internal/recommend"
	"go.uber.org/zap"
)

// CatalogLoader supplies the catalog recommendations are computed from.
type CatalogLoader interface {
	Load(ctx context.Context) (CatalogResult, error)
}

// Recommendation is the outcome of a recommendation request. Source is one
// of the observability.Source* values.
type Recommendation struct {
	Exercises []models.Exercise
	Source    string
}

// RecommendationService recommends exercises and never fails: any error
// turns into the fail-safe response.
type RecommendationService struct {
	catalog CatalogLoader
	log     *zap.Logger
}

// NewRecommendationService constructs a RecommendationService.
func NewRecommendationService(catalog CatalogLoader, log *zap.Logger) *RecommendationService {
	return &RecommendationService{catalog: catalog, log: log}
}

// Recommend filters the catalog with q. On any failure, including a panic
// while filtering, it returns the fail-safe list instead.
func (s *RecommendationService) Recommend(ctx context.Context, q models.Questionnaire) Recommendation {
	rec, err := s.recommend(ctx, q)
	if err != nil {
		return s.FailSafe(ctx, err)
	}
	observability.RecordRecommendation(rec.Source)
	return rec
}

// FailSafe returns the first fallback exercises, logging cause.
func (s *RecommendationService) FailSafe(_ context.Context, cause error) Recommendation {
	s.log.Warn("recommendation failed, serving fail-safe list", zap.Error(cause))
	observability.RecordRecommendation(observability.SourceFailSafe)
	return Recommendation{Exercises: recommend.FailSafe(), Source: observability.SourceFailSafe}
}

func (s *RecommendationService) recommend(ctx context.Context, q models.Questionnaire) (rec Recommendation, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recommend: panic: %v", r)
		}
	}()

	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		return Recommendation{}, err
	}

	source := observability.SourceCatalog
	if catalog.Fallback {
		source = observability.SourceFallback
	}
	return Recommendation{
		Exercises: recommend.Filter(catalog.Exercises, q),
		Source:    source,
	}, nil
}
