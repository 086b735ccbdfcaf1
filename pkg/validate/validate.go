// Package validate converts untyped request input (form values, query
// strings) into typed values, failing with the error kinds the HTTP
// layer knows how to render.
package validate

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fittrack/exercise-track-backend/internal/apperror"
)

// dateLayouts are tried in order. The front-end form submits
// YYYY-MM-DD; RFC3339 is accepted for API callers.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// Number parses s as a finite number. field names the offending input
// in the returned error.
func Number(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperror.InvalidNumber(field)
	}
	return v, nil
}

// Date parses s as a calendar date. Used for filter parameters, where
// the caller only invokes it when the field is actually present.
func Date(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperror.InvalidDate(field)
}

// NewDate parses s like Date, but an empty input means "use now".
// Used for the exercise-creation date field, where omission is valid.
func NewDate(field, s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Now(), nil
	}
	t, err := Date(field, s)
	if err != nil {
		return time.Time{}, apperror.InvalidNewDate(field)
	}
	return t, nil
}
