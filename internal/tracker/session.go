package tracker

import (
	"context"
	"fmt"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/session"
)

// SetUpdate changes any subset of a set's fields. Nil fields are left alone.
type SetUpdate struct {
	Reps   *models.Reps
	Weight *models.Weight
	Done   *bool
}

// StartSession opens a draft from the template with the given ID.
func (t *Tracker) StartSession(templateID string) (models.WorkoutLog, error) {
	tmpl, ok := t.catalog.Lookup(templateID)
	if !ok {
		return models.WorkoutLog{}, fmt.Errorf("%w: %s", ErrUnknownTemplate, templateID)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	d, err := t.sessions.Start(tmpl)
	if err != nil {
		return models.WorkoutLog{}, err
	}
	t.log.Debug("session started", "template", templateID)
	return d.Log(), nil
}

// Draft returns the in-progress session, if any.
func (t *Tracker) Draft() (models.WorkoutLog, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	d, ok := t.sessions.Active()
	if !ok {
		return models.WorkoutLog{}, false
	}
	return d.Log(), true
}

// editDraft runs fn against the active draft under the lock and returns the
// resulting snapshot.
func (t *Tracker) editDraft(fn func(d *session.Draft) error) (models.WorkoutLog, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	d, ok := t.sessions.Active()
	if !ok {
		return models.WorkoutLog{}, session.ErrNoDraft
	}
	if err := fn(d); err != nil {
		return models.WorkoutLog{}, err
	}
	return d.Log(), nil
}

// UpdateSet applies u to one set of the draft.
func (t *Tracker) UpdateSet(entry, set int, u SetUpdate) (models.WorkoutLog, error) {
	return t.editDraft(func(d *session.Draft) error {
		if u.Reps != nil {
			if err := d.SetReps(entry, set, *u.Reps); err != nil {
				return err
			}
		}
		if u.Weight != nil {
			if err := d.SetWeight(entry, set, *u.Weight); err != nil {
				return err
			}
		}
		if u.Done != nil {
			if err := d.SetDone(entry, set, *u.Done); err != nil {
				return err
			}
		}
		return nil
	})
}

// PrefillWeight fills an empty weight with the exercise's last weight.
func (t *Tracker) PrefillWeight(entry, set int) (models.WorkoutLog, bool, error) {
	var changed bool
	log, err := t.editDraft(func(d *session.Draft) error {
		var err error
		changed, err = d.PrefillWeight(entry, set)
		return err
	})
	return log, changed, err
}

// AddSet appends a set to one entry of the draft.
func (t *Tracker) AddSet(entry int) (models.WorkoutLog, error) {
	return t.editDraft(func(d *session.Draft) error {
		_, err := d.AddSet(entry)
		return err
	})
}

// SetEntryNotes replaces the notes of one draft entry.
func (t *Tracker) SetEntryNotes(entry int, notes string) (models.WorkoutLog, error) {
	return t.editDraft(func(d *session.Draft) error {
		return d.SetEntryNotes(entry, notes)
	})
}

// SetSessionNotes replaces the draft's session notes.
func (t *Tracker) SetSessionNotes(notes string) (models.WorkoutLog, error) {
	return t.editDraft(func(d *session.Draft) error {
		d.SetSessionNotes(notes)
		return nil
	})
}

// SaveSession stores the draft and carries its weights forward.
func (t *Tracker) SaveSession(ctx context.Context) (models.WorkoutLog, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	log, err := t.sessions.Save(ctx)
	if err != nil {
		return models.WorkoutLog{}, err
	}
	t.metrics.CounterSessionsSaved.Inc()
	t.log.Info("session saved", "id", log.ID, "template", log.TemplateID, "entries", len(log.Entries))
	return log, nil
}

// CancelSession discards the draft. It reports whether there was one.
func (t *Tracker) CancelSession() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sessions.Cancel()
}
