package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/session"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/tracker"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/transfer"
)

const maxImportBytes = 10 << 20

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.Templates())
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	log, ok := s.tracker.Draft()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": session.ErrNoDraft.Error()})
		return
	}
	writeJSON(w, http.StatusOK, log)
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TemplateID string `json:"templateId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.TemplateID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "templateId is required"})
		return
	}

	log, err := s.tracker.StartSession(req.TemplateID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, log)
}

func (s *Server) handleCancelSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"cancelled": s.tracker.CancelSession()})
}

func (s *Server) handleSaveSession(w http.ResponseWriter, r *http.Request) {
	log, err := s.tracker.SaveSession(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, log)
}

func (s *Server) handleSessionNotes(w http.ResponseWriter, r *http.Request) {
	notes, ok := decodeNotes(w, r)
	if !ok {
		return
	}
	log, err := s.tracker.SetSessionNotes(notes)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, log)
}

// handleUpdateSet applies a partial update. Absent and null fields are left
// alone; "" clears reps or weight. Values that are not valid numbers are
// rejected rather than stored as unset.
func (s *Server) handleUpdateSet(w http.ResponseWriter, r *http.Request) {
	entry, set, ok := entrySetParams(w, r)
	if !ok {
		return
	}
	var req struct {
		Reps   json.RawMessage `json:"reps"`
		Weight json.RawMessage `json:"weight"`
		Done   *bool           `json:"done"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	upd := tracker.SetUpdate{Done: req.Done}
	if present(req.Reps) {
		reps, err := models.ParseReps(req.Reps)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		upd.Reps = &reps
	}
	if present(req.Weight) {
		weight, err := models.ParseWeight(req.Weight)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		upd.Weight = &weight
	}

	log, err := s.tracker.UpdateSet(entry, set, upd)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, log)
}

// present reports whether a PATCH field was sent with a non-null value.
func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(bytes.TrimSpace(raw)) != "null"
}

func (s *Server) handlePrefillWeight(w http.ResponseWriter, r *http.Request) {
	entry, set, ok := entrySetParams(w, r)
	if !ok {
		return
	}
	log, changed, err := s.tracker.PrefillWeight(entry, set)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"changed": changed, "session": log})
}

func (s *Server) handleAddSet(w http.ResponseWriter, r *http.Request) {
	entry, ok := intParam(w, r, "entry")
	if !ok {
		return
	}
	log, err := s.tracker.AddSet(entry)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, log)
}

func (s *Server) handleEntryNotes(w http.ResponseWriter, r *http.Request) {
	entry, ok := intParam(w, r, "entry")
	if !ok {
		return
	}
	notes, ok := decodeNotes(w, r)
	if !ok {
		return
	}
	log, err := s.tracker.SetEntryNotes(entry, notes)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, log)
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.Logs())
}

func (s *Server) handleClearLogs(w http.ResponseWriter, r *http.Request) {
	if err := s.tracker.ClearLogs(r.Context(), confirmed(r)); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.tracker.Reset(r.Context(), confirmed(r)); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.Profile())
}

func (s *Server) handleProfileNote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Note string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	id := chi.URLParam(r, "exerciseId")
	if err := s.tracker.SetProfileNote(r.Context(), id, req.Note); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.tracker.Profile()[id])
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := s.tracker.Export()
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", transfer.ExportFileName))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	buf, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": err.Error()})
		return
	}

	res, err := s.tracker.Import(r.Context(), buf)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// writeError maps domain errors to HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := err.Error()
	switch {
	case errors.Is(err, tracker.ErrUnknownTemplate),
		errors.Is(err, tracker.ErrUnknownExercise),
		errors.Is(err, session.ErrIndexOutOfRange):
		status = http.StatusNotFound
	case errors.Is(err, session.ErrDraftActive),
		errors.Is(err, session.ErrNoDraft):
		status = http.StatusConflict
	case errors.Is(err, tracker.ErrNotConfirmed):
		status = http.StatusBadRequest
		msg = "this deletes data permanently; repeat the request with confirm=true"
	case errors.Is(err, transfer.ErrMalformed),
		errors.Is(err, transfer.ErrNotArray):
		status = http.StatusBadRequest
	default:
		s.log.Error("request failed", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": name + " must be an integer"})
		return 0, false
	}
	return n, true
}

func entrySetParams(w http.ResponseWriter, r *http.Request) (entry, set int, ok bool) {
	if entry, ok = intParam(w, r, "entry"); !ok {
		return
	}
	set, ok = intParam(w, r, "set")
	return
}

func decodeNotes(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return "", false
	}
	return req.Notes, true
}

func confirmed(r *http.Request) bool {
	ok, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	return ok
}
