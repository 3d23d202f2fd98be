// Package transfer encodes the log history for export and decodes imported
// files.
package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"
)

// ExportFileName is the suggested name for exported files.
const ExportFileName = "dumbbell-tracker-data.json"

var (
	ErrMalformed = errors.New("file is not valid JSON")
	ErrNotArray  = errors.New("expected a JSON array of workouts")
)

// Export renders logs as an indented JSON array, in the order given.
func Export(logs []models.WorkoutLog) ([]byte, error) {
	if logs == nil {
		logs = []models.WorkoutLog{}
	}
	data, err := json.MarshalIndent(logs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding logs: %w", err)
	}
	return data, nil
}

// Decoded is the result of a successful Decode.
type Decoded struct {
	Logs []models.WorkoutLog
	// Mismatched lists the indices of elements with at least one field of
	// the wrong type or a field the log shape does not have, at any depth.
	// Such fields were dropped; the element was kept.
	Mismatched []int
}

// Decode parses an imported file. Only the outer shape is enforced: the
// text must be JSON and the top level must be an array. Elements are never
// rejected.
func Decode(raw []byte) (*Decoded, error) {
	if !json.Valid(raw) {
		return nil, ErrMalformed
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	out := &Decoded{Logs: make([]models.WorkoutLog, len(elems))}
	for i, elem := range elems {
		if err := json.Unmarshal(elem, &out.Logs[i]); err != nil {
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				return nil, fmt.Errorf("%w: element %d: %v", ErrMalformed, i, err)
			}
			out.Mismatched = append(out.Mismatched, i)
			continue
		}
		if hasUnknownFields(elem) {
			out.Mismatched = append(out.Mismatched, i)
		}
	}
	return out, nil
}

func hasUnknownFields(elem json.RawMessage) bool {
	dec := json.NewDecoder(bytes.NewReader(elem))
	dec.DisallowUnknownFields()
	var l models.WorkoutLog
	return dec.Decode(&l) != nil
}
