package session

import "github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"

// Draft is an unsaved session. Edits are in-memory only.
type Draft struct {
	log      models.WorkoutLog
	profiles ProfileStore
}

// Log returns a deep copy of the draft.
func (d *Draft) Log() models.WorkoutLog {
	return d.log.Clone()
}

func (d *Draft) set(entry, set int) (*models.SetEntry, error) {
	if entry < 0 || entry >= len(d.log.Entries) {
		return nil, ErrIndexOutOfRange
	}
	sets := d.log.Entries[entry].Sets
	if set < 0 || set >= len(sets) {
		return nil, ErrIndexOutOfRange
	}
	return &sets[set], nil
}

// SetReps records the reps of one set. There is no upper bound.
func (d *Draft) SetReps(entry, set int, reps models.Reps) error {
	s, err := d.set(entry, set)
	if err != nil {
		return err
	}
	s.Reps = reps
	return nil
}

// SetWeight records the weight of one set.
func (d *Draft) SetWeight(entry, set int, w models.Weight) error {
	s, err := d.set(entry, set)
	if err != nil {
		return err
	}
	s.Weight = w
	return nil
}

// PrefillWeight fills an empty weight field with the exercise's last weight.
// It reports whether the field was changed; a value the user entered is
// never overwritten.
func (d *Draft) PrefillWeight(entry, set int) (bool, error) {
	s, err := d.set(entry, set)
	if err != nil {
		return false, err
	}
	if s.Weight.Valid {
		return false, nil
	}
	prof, ok := d.profiles.Entry(d.log.Entries[entry].ExerciseID)
	if !ok || !prof.LastWeight.Valid {
		return false, nil
	}
	s.Weight = prof.LastWeight
	return true, nil
}

// SetDone toggles the informational done flag of one set.
func (d *Draft) SetDone(entry, set int, done bool) error {
	s, err := d.set(entry, set)
	if err != nil {
		return err
	}
	s.Done = done
	return nil
}

// AddSet appends a set to entry, pre-filled with the current last weight
// for the exercise. It returns the new set's index.
func (d *Draft) AddSet(entry int) (int, error) {
	if entry < 0 || entry >= len(d.log.Entries) {
		return 0, ErrIndexOutOfRange
	}
	e := &d.log.Entries[entry]
	var s models.SetEntry
	if prof, ok := d.profiles.Entry(e.ExerciseID); ok {
		s.Weight = prof.LastWeight
	}
	e.Sets = append(e.Sets, s)
	return len(e.Sets) - 1, nil
}

// SetEntryNotes replaces the notes of one exercise entry.
func (d *Draft) SetEntryNotes(entry int, notes string) error {
	if entry < 0 || entry >= len(d.log.Entries) {
		return ErrIndexOutOfRange
	}
	d.log.Entries[entry].Notes = notes
	return nil
}

// SetSessionNotes replaces the session-level notes.
func (d *Draft) SetSessionNotes(notes string) {
	d.log.Notes = notes
}
