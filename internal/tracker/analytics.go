package tracker

import (
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/analytics"
)

// Adherence reports sessions completed in the trailing window.
func (t *Tracker) Adherence() analytics.AdherenceResult {
	return analytics.Adherence(t.Logs(), t.now())
}

// VolumeSeries returns per-session volume, oldest first.
func (t *Tracker) VolumeSeries() []analytics.VolumePoint {
	return analytics.VolumeSeries(t.Logs())
}

// Summary aggregates the whole history.
func (t *Tracker) Summary() analytics.Summary {
	return analytics.Summarize(t.Logs())
}

// ExerciseProgression returns the per-session history of one exercise.
func (t *Tracker) ExerciseProgression(exerciseID string) []analytics.ExerciseSession {
	return analytics.ExerciseProgression(t.Logs(), exerciseID)
}
