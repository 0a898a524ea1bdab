// Package recommend selects exercises from a catalog for a questionnaire.
package recommend

import (
	"slices"

	"github.com/hyperpulsex/hyperpulse/internal/models"
)

const (
	// MaxResults caps the number of recommended exercises.
	MaxResults = 5
	// FailSafeResults is how many fallback entries are served when
	// recommending fails.
	FailSafeResults = 3
	// GeneralFitness matches every exercise goal.
	GeneralFitness = "General Fitness"
)

// Filter returns the exercises of catalog that match q, in catalog order,
// capped at MaxResults. q.Location does not take part in matching.
func Filter(catalog []models.Exercise, q models.Questionnaire) []models.Exercise {
	out := make([]models.Exercise, 0, MaxResults)
	for _, ex := range catalog {
		if !Eligible(ex, q) {
			continue
		}
		out = append(out, ex)
		if len(out) == MaxResults {
			break
		}
	}
	return out
}

// Eligible reports whether ex matches the goal, injury and equipment answers.
func Eligible(ex models.Exercise, q models.Questionnaire) bool {
	if q.HasInjury() && !ex.IsInjurySafe {
		return false
	}
	if !equipmentSatisfied(ex.EquipmentNeeded, q.Equipment) {
		return false
	}
	return goalMatches(ex.Goals, q.Goal)
}

func goalMatches(goals []string, goal string) bool {
	return goal == GeneralFitness || slices.Contains(goals, goal)
}

func equipmentSatisfied(needed, owned []string) bool {
	for _, tag := range needed {
		if tag == models.NoEquipment {
			continue
		}
		if !slices.Contains(owned, tag) {
			return false
		}
	}
	return true
}
