package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/transfer"
)

// ImportResult describes the outcome of Import.
type ImportResult struct {
	Imported   int    `json:"imported"`
	Mismatched []int  `json:"mismatched,omitempty"`
	Message    string `json:"message"`
}

// Export renders the history for download.
func (t *Tracker) Export() ([]byte, error) {
	return transfer.Export(t.Logs())
}

// Import replaces the history with the logs in raw. On failure the history
// is unchanged and the result still carries a message for the user.
func (t *Tracker) Import(ctx context.Context, raw []byte) (ImportResult, error) {
	dec, err := transfer.Decode(raw)
	if err != nil {
		t.metrics.CounterImports.WithLabelValues("failed").Inc()
		t.log.Warn("import rejected", "error", err)
		return ImportResult{Message: importFailureMessage(err)}, err
	}

	t.mu.Lock()
	t.logs.ReplaceAll(ctx, dec.Logs)
	t.mu.Unlock()

	t.metrics.CounterImports.WithLabelValues("ok").Inc()
	t.log.Info("logs imported", "count", len(dec.Logs), "mismatched", len(dec.Mismatched))

	res := ImportResult{Imported: len(dec.Logs), Mismatched: dec.Mismatched}
	res.Message = fmt.Sprintf("Imported %d workouts.", res.Imported)
	if n := len(dec.Mismatched); n > 0 {
		res.Message = fmt.Sprintf("Imported %d workouts (%d with unrecognised fields).", res.Imported, n)
	}
	return res, nil
}

func importFailureMessage(err error) string {
	switch {
	case errors.Is(err, transfer.ErrNotArray):
		return "Import failed: expected a JSON array of workouts."
	default:
		return "Import failed: the file is not valid JSON."
	}
}
