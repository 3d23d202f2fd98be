package mcp

import (
	"context"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolListTemplates = mcp.NewTool("list_templates",
	mcp.WithDescription("List the workout templates (push, pull, legs) with their exercises, default set counts, rep ranges and superset tags."),
)

var toolListWorkouts = mcp.NewTool("list_workouts",
	mcp.WithDescription("List saved workouts, most recent first. Each workout has its template, notes and per-exercise sets (reps, weight in kg, done flag). Unset reps or weight are empty strings."),
	mcp.WithString("template", mcp.Description("Only return workouts for this template ID (push, pull, legs)")),
	mcp.WithNumber("limit", mcp.Description("Maximum number of workouts to return. Defaults to all.")),
)

var toolGetProfile = mcp.NewTool("get_profile",
	mcp.WithDescription("Get the per-exercise profile: the last weight carried over from the most recent session and any saved exercise note."),
)

var toolGetAdherence = mcp.NewTool("get_adherence",
	mcp.WithDescription("Sessions completed in the last 28 days against the 12-session target, as a percentage capped at 100."),
)

var toolGetVolumeSeries = mcp.NewTool("get_volume_series",
	mcp.WithDescription("Total training volume (reps x weight, rounded) per saved session in chronological order."),
)

var toolGetTrainingSummary = mcp.NewTool("get_training_summary",
	mcp.WithDescription("Lifetime totals: sessions, working sets, reps, volume, sessions per template, first and last session dates."),
)

var toolGetExerciseProgression = mcp.NewTool("get_exercise_progression",
	mcp.WithDescription("Per-session history for one exercise in chronological order: max weight, last weight, sets, reps and volume."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise ID (e.g. db_bench_press, db_row, db_goblet_squat)")),
)

// --- Tool handlers ---

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listTemplates(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	templates, err := h.ds.Templates(ctx)
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(templates)
}

func (h *handlers) listWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 0)
	if limit < 0 {
		return mcp.NewToolResultError("limit must not be negative"), nil
	}
	template := req.GetString("template", "")

	logs, err := h.ds.Logs(ctx)
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	if template != "" {
		filtered := make([]models.WorkoutLog, 0, len(logs))
		for _, l := range logs {
			if l.TemplateID == template {
				filtered = append(filtered, l)
			}
		}
		logs = filtered
	}
	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}
	return jsonResult(logs)
}

func (h *handlers) getProfile(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := h.ds.Profile(ctx)
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(profile)
}

func (h *handlers) getAdherence(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := h.ds.Adherence(ctx)
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(res)
}

func (h *handlers) getVolumeSeries(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	series, err := h.ds.VolumeSeries(ctx)
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(series)
}

func (h *handlers) getTrainingSummary(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summary, err := h.ds.Summary(ctx)
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(summary)
}

func (h *handlers) getExerciseProgression(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}

	sessions, err := h.ds.ExerciseProgression(ctx, exercise)
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(sessions)
}
