// Package scoring computes the points a workout earns.
package scoring

import "math"

// ComputePoints returns floor(reps * 10 * (accuracy + 0.5)).
// The result is truncated towards negative infinity, never rounded.
func ComputePoints(reps int, accuracy float64) int64 {
	return int64(math.Floor(float64(reps) * 10 * (accuracy + 0.5)))
}
