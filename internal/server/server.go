package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/metrics"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/tracker"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	tracker  *tracker.Tracker
	log      *slog.Logger
	metrics  *metrics.Manager
	gatherer prometheus.Gatherer
	apiKey   string
	router   chi.Router
}

// New creates a new Server with all routes configured. An empty apiKey
// leaves mutating routes open.
func New(t *tracker.Tracker, apiKey string, log *slog.Logger, m *metrics.Manager, gatherer prometheus.Gatherer) *Server {
	s := &Server{
		tracker:  t,
		log:      log,
		metrics:  m,
		gatherer: gatherer,
		apiKey:   apiKey,
		router:   chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(RequestMetrics(s.metrics))
	s.router.Use(CORS)

	s.router.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/templates", s.handleTemplates)
		r.Get("/session", s.handleGetSession)
		r.Get("/logs", s.handleLogs)
		r.Get("/profile", s.handleProfile)
		r.Get("/analytics/adherence", s.handleAdherence)
		r.Get("/analytics/volume", s.handleVolumeSeries)
		r.Get("/analytics/summary", s.handleSummary)
		r.Get("/analytics/exercises/{exerciseId}", s.handleExerciseProgression)
		r.Get("/export", s.handleExport)
		r.Get("/timer", s.handleGetTimer)

		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))

			r.Post("/session", s.handleStartSession)
			r.Delete("/session", s.handleCancelSession)
			r.Post("/session/save", s.handleSaveSession)
			r.Put("/session/notes", s.handleSessionNotes)
			r.Patch("/session/entries/{entry}/sets/{set}", s.handleUpdateSet)
			r.Post("/session/entries/{entry}/sets/{set}/prefill", s.handlePrefillWeight)
			r.Post("/session/entries/{entry}/sets", s.handleAddSet)
			r.Put("/session/entries/{entry}/notes", s.handleEntryNotes)

			r.Delete("/logs", s.handleClearLogs)
			r.Post("/reset", s.handleReset)
			r.Put("/profile/{exerciseId}/note", s.handleProfileNote)
			r.Post("/import", s.handleImport)

			r.Post("/timer", s.handleStartTimer)
			r.Delete("/timer", s.handleCancelTimer)
		})
	})
}
