// Package tracker composes the catalog, stores, drafting, analytics, the
// import/export codec and the rest timer behind one mutex, so concurrent
// adapters see a strictly sequential sequence of operations.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/catalog"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/kv"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/metrics"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/session"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/storage"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/timer"
)

var (
	ErrUnknownTemplate = errors.New("unknown template")
	ErrUnknownExercise = errors.New("unknown exercise")
	ErrNotConfirmed    = errors.New("destructive action requires confirmation")
)

// DefaultRest is used when no rest duration is configured or requested.
const DefaultRest = 90 * time.Second

// Option configures a Tracker.
type Option func(*Tracker)

// WithCatalog replaces the built-in program.
func WithCatalog(c *catalog.Catalog) Option {
	return func(t *Tracker) { t.catalog = c }
}

// WithClock overrides the time source for new drafts and adherence.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithRestTimer replaces the rest countdown.
func WithRestTimer(c *timer.Countdown) Option {
	return func(t *Tracker) { t.rest = c }
}

// WithDefaultRest sets the countdown used when StartRest gets no duration.
func WithDefaultRest(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.defaultRest = d
		}
	}
}

type Tracker struct {
	mu sync.Mutex

	catalog     *catalog.Catalog
	logs        *storage.Logs
	profiles    *storage.Profiles
	sessions    *session.Manager
	rest        *timer.Countdown
	defaultRest time.Duration
	now         func() time.Time

	log     *slog.Logger
	metrics *metrics.Manager
}

// New loads persisted state from store and returns a ready tracker.
func New(ctx context.Context, store kv.Store, log *slog.Logger, m *metrics.Manager, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		catalog:     catalog.Default(),
		rest:        timer.New(),
		defaultRest: DefaultRest,
		now:         time.Now,
		log:         log,
		metrics:     m,
	}
	for _, o := range opts {
		o(t)
	}

	var err error
	if t.logs, err = storage.OpenLogs(ctx, store, log, m); err != nil {
		return nil, err
	}
	if t.profiles, err = storage.OpenProfiles(ctx, store, log, m); err != nil {
		return nil, err
	}
	t.sessions = session.NewManager(t.profiles, t.logs, session.WithClock(func() time.Time { return t.now() }))
	return t, nil
}

// Templates lists the program.
func (t *Tracker) Templates() []models.WorkoutTemplate {
	return t.catalog.Templates()
}

// Logs returns the history, most recent first.
func (t *Tracker) Logs() []models.WorkoutLog {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.logs.All()
}

// Profile returns the per-exercise carried state.
func (t *Tracker) Profile() models.Profile {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.profiles.All()
}

// SetProfileNote sets the note copied into future sessions of exerciseID.
func (t *Tracker) SetProfileNote(ctx context.Context, exerciseID, note string) error {
	if _, ok := t.catalog.Exercise(exerciseID); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownExercise, exerciseID)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.profiles.SetNote(ctx, exerciseID, note)
	return nil
}

// ClearLogs deletes the whole history. The profile is kept.
func (t *Tracker) ClearLogs(ctx context.Context, confirm bool) error {
	if !confirm {
		return ErrNotConfirmed
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	n := t.logs.Len()
	t.logs.Clear(ctx)
	t.log.Info("workout history cleared", "logs", n)
	return nil
}

// Reset deletes the history and the profile, and discards any draft and
// running rest countdown.
func (t *Tracker) Reset(ctx context.Context, confirm bool) error {
	if !confirm {
		return ErrNotConfirmed
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessions.Cancel()
	t.rest.Cancel()
	t.logs.Clear(ctx)
	t.profiles.Clear(ctx)
	t.log.Info("all data reset")
	return nil
}
