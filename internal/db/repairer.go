package db

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// WorkoutRepairer fixes workouts stored without an exercise name.
type WorkoutRepairer interface {
	RepairExerciseNames(ctx context.Context) (int64, error)
}

// StartWorkoutRepairer runs repo.RepairExerciseNames every interval until
// ctx is done. A non-positive interval disables the job.
func StartWorkoutRepairer(
	ctx context.Context,
	repo WorkoutRepairer,
	interval time.Duration,
	log *zap.Logger,
) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := repo.RepairExerciseNames(ctx)
				if err != nil {
					log.Error("failed to repair workouts", zap.Error(err))
					continue
				}
				if n > 0 {
					log.Info("repaired workouts without exercise name", zap.Int64("repaired", n))
				}
			}
		}
	}()
}
