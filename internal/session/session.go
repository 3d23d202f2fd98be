// Package session manages the single in-progress workout.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/progression"
)

var (
	ErrDraftActive     = errors.New("a workout is already in progress")
	ErrNoDraft         = errors.New("no workout in progress")
	ErrIndexOutOfRange = errors.New("entry or set index out of range")
)

// ProfileStore is the profile as seen by drafting and saving.
type ProfileStore interface {
	Entry(exerciseID string) (models.ProfileEntry, bool)
	progression.WeightWriter
}

// LogAppender receives saved sessions.
type LogAppender interface {
	Append(ctx context.Context, log models.WorkoutLog)
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the time source used to stamp new drafts.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// Manager owns the draft slot. It is not safe for concurrent use.
type Manager struct {
	profiles ProfileStore
	logs     LogAppender
	now      func() time.Time
	draft    *Draft
}

// NewManager returns a manager with no draft.
func NewManager(profiles ProfileStore, logs LogAppender, opts ...Option) *Manager {
	m := &Manager{profiles: profiles, logs: logs, now: time.Now}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Start builds a draft from tmpl. Every set is pre-filled with the
// exercise's last weight when the profile has one, and each entry's notes
// start from the profile note.
func (m *Manager) Start(tmpl models.WorkoutTemplate) (*Draft, error) {
	if m.draft != nil {
		return nil, ErrDraftActive
	}

	log := models.NewWorkoutLog(tmpl.ID, m.now())
	log.Entries = make([]models.WorkoutLogEntry, 0, len(tmpl.Exercises))
	for _, ex := range tmpl.Exercises {
		prof, _ := m.profiles.Entry(ex.ID)
		entry := models.WorkoutLogEntry{
			ExerciseID: ex.ID,
			Sets:       make([]models.SetEntry, ex.DefaultSets),
			Notes:      prof.Note,
		}
		for i := range entry.Sets {
			entry.Sets[i].Weight = prof.LastWeight
		}
		log.Entries = append(log.Entries, entry)
	}

	m.draft = &Draft{log: log, profiles: m.profiles}
	return m.draft, nil
}

// Active returns the current draft, if any.
func (m *Manager) Active() (*Draft, bool) {
	return m.draft, m.draft != nil
}

// Cancel discards the draft. It reports whether there was one.
func (m *Manager) Cancel() bool {
	had := m.draft != nil
	m.draft = nil
	return had
}

// Save carries weights into the profile, appends the draft to the log and
// clears the slot. Any draft content is accepted.
func (m *Manager) Save(ctx context.Context) (models.WorkoutLog, error) {
	if m.draft == nil {
		return models.WorkoutLog{}, ErrNoDraft
	}
	log := m.draft.Log()
	progression.Apply(ctx, m.profiles, log)
	m.logs.Append(ctx, log)
	m.draft = nil
	return log, nil
}
