// Package analytics derives adherence and volume views from the log history.
// Every function recomputes from scratch; nothing is cached.
package analytics

import (
	"math"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"
)

// SetVolume is reps × weight. A set missing either contributes zero.
func SetVolume(s models.SetEntry) float64 {
	return float64(s.Reps.Int()) * s.Weight.Float()
}

// EntryVolume sums SetVolume over the entry's sets.
func EntryVolume(e models.WorkoutLogEntry) float64 {
	var total float64
	for _, s := range e.Sets {
		total += SetVolume(s)
	}
	return total
}

// Volume sums EntryVolume over the log's entries.
func Volume(log models.WorkoutLog) float64 {
	var total float64
	for _, e := range log.Entries {
		total += EntryVolume(e)
	}
	return total
}

// VolumePoint is one session in the volume series.
type VolumePoint struct {
	Index  int    `json:"index"`
	Date   string `json:"date"`
	Volume int64  `json:"volume"`
}

// VolumeSeries returns one point per log in chronological order. logs is in
// storage order (most recent first). Index starts at 1.
func VolumeSeries(logs []models.WorkoutLog) []VolumePoint {
	out := make([]VolumePoint, 0, len(logs))
	for i := len(logs) - 1; i >= 0; i-- {
		out = append(out, VolumePoint{
			Index:  len(out) + 1,
			Date:   logs[i].Date,
			Volume: int64(math.Round(Volume(logs[i]))),
		})
	}
	return out
}
