package analytics

import (
	"math"
	"time"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"
)

const (
	// AdherenceWindow is the trailing window adherence is measured over.
	AdherenceWindow = 28 * 24 * time.Hour
	// ExpectedSessions is three sessions a week over the window.
	ExpectedSessions = 12
)

// AdherenceResult is the rolling adherence report.
type AdherenceResult struct {
	Completed  int `json:"completed"`
	Expected   int `json:"expected"`
	Percentage int `json:"percentage"`
	WindowDays int `json:"window_days"`
}

// Adherence counts logs dated within AdherenceWindow of now and reports them
// as a percentage of ExpectedSessions, capped at 100. Logs whose date does
// not parse are not counted.
func Adherence(logs []models.WorkoutLog, now time.Time) AdherenceResult {
	cutoff := now.Add(-AdherenceWindow)
	completed := 0
	for _, l := range logs {
		t, ok := l.Time()
		if !ok || t.Before(cutoff) {
			continue
		}
		completed++
	}

	pct := int(math.Round(float64(completed) / ExpectedSessions * 100))
	if pct > 100 {
		pct = 100
	}
	return AdherenceResult{
		Completed:  completed,
		Expected:   ExpectedSessions,
		Percentage: pct,
		WindowDays: int(AdherenceWindow / (24 * time.Hour)),
	}
}
