package mcp

import (
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Dumbbell Tracker", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Dumbbell training log. Query the push/pull/legs templates, saved workouts, carried-over weights, adherence, volume trends and per-exercise progression. Read-only."),
	)

	h := newHandlers(ds, log)

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolListTemplates, Handler: h.listTemplates},
		server.ServerTool{Tool: toolListWorkouts, Handler: h.listWorkouts},
		server.ServerTool{Tool: toolGetProfile, Handler: h.getProfile},
		server.ServerTool{Tool: toolGetAdherence, Handler: h.getAdherence},
		server.ServerTool{Tool: toolGetVolumeSeries, Handler: h.getVolumeSeries},
		server.ServerTool{Tool: toolGetTrainingSummary, Handler: h.getTrainingSummary},
		server.ServerTool{Tool: toolGetExerciseProgression, Handler: h.getExerciseProgression},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resRecentWorkouts, Handler: h.recentWorkouts},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
	now func() time.Time
}

func newHandlers(ds DataSource, log *slog.Logger) *handlers {
	return &handlers{ds: ds, log: log, now: time.Now}
}

// --- Resource definitions ---

var resRecentWorkouts = mcp.NewResource(
	"dumbbell://recent_workouts",
	"Recent Workouts",
	mcp.WithResourceDescription("Workouts saved in the last 14 days with per-session volume"),
	mcp.WithMIMEType("application/json"),
)
