package models

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the timestamp format stored on workout logs: ISO-8601 UTC
// with millisecond precision.
const DateLayout = "2006-01-02T15:04:05.000Z"

// Exercise is a catalog-defined movement. Exercises are immutable.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
	Superset    string `json:"superset,omitempty"`
	IsMain      bool   `json:"isMain"`
	DefaultSets int    `json:"defaultSets"`
	RepRange    string `json:"repRange"`
}

// WorkoutTemplate is a fixed, day-specific list of exercises.
type WorkoutTemplate struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Exercises []Exercise `json:"exercises"`
}

// SetEntry is one performed (or planned) set.
type SetEntry struct {
	Reps   Reps   `json:"reps"`
	Weight Weight `json:"weight"`
	Done   bool   `json:"done"`
}

// WorkoutLogEntry records the sets performed for one exercise in a session.
type WorkoutLogEntry struct {
	ExerciseID string     `json:"exerciseId"`
	Sets       []SetEntry `json:"sets"`
	Notes      string     `json:"notes"`
}

// WorkoutLog is a completed session. Entries mirror the template's exercise
// order at the time the session was started.
type WorkoutLog struct {
	ID         string            `json:"id"`
	Date       string            `json:"date"`
	TemplateID string            `json:"templateId"`
	Notes      string            `json:"notes"`
	Entries    []WorkoutLogEntry `json:"entries"`
}

// NewWorkoutLog returns an empty log with a fresh ID stamped at now.
func NewWorkoutLog(templateID string, now time.Time) WorkoutLog {
	return WorkoutLog{
		ID:         uuid.New().String(),
		Date:       FormatDate(now),
		TemplateID: templateID,
		Entries:    []WorkoutLogEntry{},
	}
}

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate parses a stored log date. Imported files may carry any RFC 3339
// timestamp, so the check is not limited to DateLayout.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Time returns the parsed log date.
func (l WorkoutLog) Time() (time.Time, bool) {
	return ParseDate(l.Date)
}

// Clone returns a deep copy of the log.
func (l WorkoutLog) Clone() WorkoutLog {
	out := l
	if l.Entries != nil {
		out.Entries = make([]WorkoutLogEntry, len(l.Entries))
		for i, e := range l.Entries {
			out.Entries[i] = e
			if e.Sets != nil {
				out.Entries[i].Sets = append([]SetEntry(nil), e.Sets...)
			}
		}
	}
	return out
}

// ProfileEntry is the per-exercise state carried between sessions.
type ProfileEntry struct {
	LastWeight Weight `json:"lastWeight"`
	Note       string `json:"note"`
}

// Profile maps exercise IDs to their carried state.
type Profile map[string]ProfileEntry

// Clone returns a copy of the profile.
func (p Profile) Clone() Profile {
	out := make(Profile, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
