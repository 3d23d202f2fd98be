// Package progression carries the last used weight of each exercise from a
// saved session into the profile.
package progression

import (
	"context"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"
)

// WeightWriter receives carried-over weights.
type WeightWriter interface {
	SetLastWeight(ctx context.Context, exerciseID string, w float64)
}

// LastWeight returns the weight of the last set in entry that has one,
// scanning from the end. Reps and done flags are not considered.
func LastWeight(entry models.WorkoutLogEntry) (float64, bool) {
	for i := len(entry.Sets) - 1; i >= 0; i-- {
		if w := entry.Sets[i].Weight; w.Valid {
			return w.Value, true
		}
	}
	return 0, false
}

// CarryOver returns the weight to carry for every exercise in log that has
// at least one weighted set.
func CarryOver(log models.WorkoutLog) map[string]float64 {
	out := make(map[string]float64)
	for _, e := range log.Entries {
		if w, ok := LastWeight(e); ok {
			out[e.ExerciseID] = w
		}
	}
	return out
}

// Apply writes the carried weights of log to w in entry order. Exercises
// without a weighted set are left alone.
func Apply(ctx context.Context, w WeightWriter, log models.WorkoutLog) {
	for _, e := range log.Entries {
		if weight, ok := LastWeight(e); ok {
			w.SetLastWeight(ctx, e.ExerciseID, weight)
		}
	}
}
