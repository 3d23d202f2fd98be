package mcp

import (
	"context"
	"encoding/json"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/analytics"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

const recentWindowDays = 14

type recentWorkout struct {
	models.WorkoutLog
	Volume float64 `json:"volume"`
}

func (h *handlers) recentWorkouts(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	logs, err := h.ds.Logs(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := h.now().AddDate(0, 0, -recentWindowDays)
	recent := make([]recentWorkout, 0)
	skipped := 0
	for _, l := range logs {
		when, ok := l.Time()
		if !ok {
			skipped++
			continue
		}
		if when.Before(cutoff) {
			continue
		}
		recent = append(recent, recentWorkout{WorkoutLog: l, Volume: analytics.Volume(l)})
	}
	if skipped > 0 {
		h.log.Warn("recent_workouts: skipped logs with unparseable dates", "count", skipped)
	}

	data, err := json.Marshal(map[string]any{
		"window_days": recentWindowDays,
		"workouts":    recent,
	})
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
