package mcp

import (
	"context"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/analytics"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/tracker"
)

// DataSource abstracts the data layer for MCP tools. Both Local (in-process
// tracker) and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	Templates(ctx context.Context) ([]models.WorkoutTemplate, error)
	Logs(ctx context.Context) ([]models.WorkoutLog, error)
	Profile(ctx context.Context) (models.Profile, error)
	Adherence(ctx context.Context) (analytics.AdherenceResult, error)
	VolumeSeries(ctx context.Context) ([]analytics.VolumePoint, error)
	Summary(ctx context.Context) (analytics.Summary, error)
	ExerciseProgression(ctx context.Context, exerciseID string) ([]analytics.ExerciseSession, error)
}

// Local serves MCP reads straight from a tracker in the same process.
type Local struct {
	t *tracker.Tracker
}

// Compile-time check: Local satisfies DataSource.
var _ DataSource = Local{}

// NewLocal wraps t.
func NewLocal(t *tracker.Tracker) Local {
	return Local{t: t}
}

func (l Local) Templates(context.Context) ([]models.WorkoutTemplate, error) {
	return l.t.Templates(), nil
}

func (l Local) Logs(context.Context) ([]models.WorkoutLog, error) {
	return l.t.Logs(), nil
}

func (l Local) Profile(context.Context) (models.Profile, error) {
	return l.t.Profile(), nil
}

func (l Local) Adherence(context.Context) (analytics.AdherenceResult, error) {
	return l.t.Adherence(), nil
}

func (l Local) VolumeSeries(context.Context) ([]analytics.VolumePoint, error) {
	return l.t.VolumeSeries(), nil
}

func (l Local) Summary(context.Context) (analytics.Summary, error) {
	return l.t.Summary(), nil
}

func (l Local) ExerciseProgression(_ context.Context, exerciseID string) ([]analytics.ExerciseSession, error) {
	return l.t.ExerciseProgression(exerciseID), nil
}
