package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxRestSeconds bounds a requested rest period to one day.
const maxRestSeconds = 24 * 60 * 60

func (s *Server) handleGetTimer(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.Rest())
}

// handleStartTimer starts the rest countdown. An empty body or zero seconds
// uses the configured default.
func (s *Server) handleStartTimer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Seconds int `json:"seconds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Seconds < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "seconds must not be negative"})
		return
	}
	if req.Seconds > maxRestSeconds {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("seconds must not exceed %d", maxRestSeconds)})
		return
	}
	writeJSON(w, http.StatusOK, s.tracker.StartRest(time.Duration(req.Seconds)*time.Second))
}

func (s *Server) handleCancelTimer(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"cancelled": s.tracker.CancelRest()})
}
