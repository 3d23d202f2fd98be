package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleAdherence(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.Adherence())
}

func (s *Server) handleVolumeSeries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.VolumeSeries())
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.Summary())
}

func (s *Server) handleExerciseProgression(w http.ResponseWriter, r *http.Request) {
	sessions := s.tracker.ExerciseProgression(chi.URLParam(r, "exerciseId"))
	if sessions == nil {
		writeJSON(w, http.StatusOK, []any{})
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}
