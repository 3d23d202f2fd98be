package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidValue is returned by the strict parsers for input that is not a
// valid rep count or weight.
var ErrInvalidValue = errors.New("invalid value")

// Reps is a rep count that may be unset. The zero value is unset.
// Unset encodes as "" in JSON, which is what exported files have always used.
type Reps struct {
	Value int
	Valid bool
}

// RepsOf returns a set rep count.
func RepsOf(n int) Reps {
	return Reps{Value: n, Valid: true}
}

// Int returns the rep count, or 0 when unset.
func (r Reps) Int() int {
	if !r.Valid {
		return 0
	}
	return r.Value
}

func (r Reps) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte(`""`), nil
	}
	return []byte(strconv.Itoa(r.Value)), nil
}

// UnmarshalJSON never fails: anything that is not a non-negative whole
// number (or a string holding one) decodes as unset. Stored and imported
// files go through here.
func (r *Reps) UnmarshalJSON(data []byte) error {
	*r = Reps{}
	s, ok := numberText(data)
	if !ok {
		return nil
	}
	n, ok := parseCount(s)
	if !ok {
		return nil
	}
	*r = RepsOf(n)
	return nil
}

// ParseReps decodes a rep count from user input. "" yields unset; anything
// that is not a non-negative whole number fails with ErrInvalidValue.
func ParseReps(data []byte) (Reps, error) {
	if isEmptyString(data) {
		return Reps{}, nil
	}
	s, ok := numberText(data)
	if !ok {
		return Reps{}, fmt.Errorf("%w: reps %s", ErrInvalidValue, data)
	}
	n, ok := parseCount(s)
	if !ok {
		return Reps{}, fmt.Errorf("%w: reps %s must be a non-negative whole number", ErrInvalidValue, data)
	}
	return RepsOf(n), nil
}

// Weight is a load in the user's unit that may be unset. The zero value is unset.
type Weight struct {
	Value float64
	Valid bool
}

// WeightOf returns a set weight.
func WeightOf(w float64) Weight {
	return Weight{Value: w, Valid: true}
}

// Float returns the weight, or 0 when unset.
func (w Weight) Float() float64 {
	if !w.Valid {
		return 0
	}
	return w.Value
}

func (w Weight) MarshalJSON() ([]byte, error) {
	if !w.Valid {
		return []byte(`""`), nil
	}
	return []byte(strconv.FormatFloat(w.Value, 'f', -1, 64)), nil
}

// UnmarshalJSON never fails; negative or non-numeric input decodes as unset.
func (w *Weight) UnmarshalJSON(data []byte) error {
	*w = Weight{}
	f, ok := parseWeight(data)
	if !ok {
		return nil
	}
	*w = WeightOf(f)
	return nil
}

// ParseWeight decodes a weight from user input. "" yields unset; negative
// or non-numeric input fails with ErrInvalidValue.
func ParseWeight(data []byte) (Weight, error) {
	if isEmptyString(data) {
		return Weight{}, nil
	}
	f, ok := parseWeight(data)
	if !ok {
		return Weight{}, fmt.Errorf("%w: weight %s must be a non-negative number", ErrInvalidValue, data)
	}
	return WeightOf(f), nil
}

func parseWeight(data []byte) (float64, bool) {
	s, ok := numberText(data)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return f, true
}

// parseCount accepts a non-negative whole number that fits in an int.
// Integers are parsed exactly; "8.0" and "1e3" are accepted when whole.
func parseCount(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, n >= 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f < 0 || f != math.Trunc(f) || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}

// numberText returns the text of a JSON number, or of a string holding
// one. "", null and everything else report ok=false.
func numberText(data []byte) (string, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", false
	}

	var s string
	switch {
	case data[0] == '"':
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false
		}
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		s = string(data)
	default:
		return "", false
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

func isEmptyString(data []byte) bool {
	var s string
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		return false
	}
	return json.Unmarshal(data, &s) == nil && strings.TrimSpace(s) == ""
}
