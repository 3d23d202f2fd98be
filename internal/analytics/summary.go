package analytics

import (
	"math"
	"time"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"
)

// Summary holds aggregate statistics over the whole history.
type Summary struct {
	TotalSessions      int            `json:"total_sessions"`
	TotalSets          int            `json:"total_sets"`
	TotalReps          int            `json:"total_reps"`
	TotalVolume        float64        `json:"total_volume"`
	SessionsByTemplate map[string]int `json:"sessions_by_template"`
	FirstSession       string         `json:"first_session,omitempty"`
	LastSession        string         `json:"last_session,omitempty"`
}

// Summarize aggregates logs. Only sets with both reps and weight count as
// working sets.
func Summarize(logs []models.WorkoutLog) Summary {
	s := Summary{
		TotalSessions:      len(logs),
		SessionsByTemplate: make(map[string]int),
	}
	var first, last time.Time
	for _, l := range logs {
		s.SessionsByTemplate[l.TemplateID]++
		for _, e := range l.Entries {
			for _, set := range e.Sets {
				if set.Reps.Valid && set.Weight.Valid {
					s.TotalSets++
					s.TotalReps += set.Reps.Value
				}
			}
		}
		s.TotalVolume += Volume(l)

		t, ok := l.Time()
		if !ok {
			continue
		}
		if first.IsZero() || t.Before(first) {
			first, s.FirstSession = t, l.Date
		}
		if last.IsZero() || t.After(last) {
			last, s.LastSession = t, l.Date
		}
	}
	s.TotalVolume = math.Round(s.TotalVolume*100) / 100
	return s
}

// ExerciseSession is one session's data for a single exercise.
type ExerciseSession struct {
	LogID      string  `json:"log_id"`
	Date       string  `json:"date"`
	MaxWeight  float64 `json:"max_weight"`
	LastWeight float64 `json:"last_weight"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Volume     float64 `json:"volume"`
}

// ExerciseProgression returns, in chronological order, one point per session
// that contains exerciseID. When a session lists the exercise more than once
// the entries are merged: sets, reps and volume add up and LastWeight is the
// last weighted set in entry order. Sessions where the exercise has no
// weighted set still appear with zero weights.
func ExerciseProgression(logs []models.WorkoutLog, exerciseID string) []ExerciseSession {
	var out []ExerciseSession
	for i := len(logs) - 1; i >= 0; i-- {
		l := logs[i]
		es := ExerciseSession{LogID: l.ID, Date: l.Date}
		found := false
		for _, e := range l.Entries {
			if e.ExerciseID != exerciseID {
				continue
			}
			found = true
			es.Volume += EntryVolume(e)
			for _, set := range e.Sets {
				if set.Reps.Valid {
					es.Sets++
					es.Reps += set.Reps.Value
				}
				if set.Weight.Valid {
					es.MaxWeight = math.Max(es.MaxWeight, set.Weight.Value)
					es.LastWeight = set.Weight.Value
				}
			}
		}
		if found {
			out = append(out, es)
		}
	}
	return out
}
