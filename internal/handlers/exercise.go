package handlers

import (
	"context"
	"net/http"

	"github.com/fittrack/exercise-track-backend/internal/apperror"
	"github.com/fittrack/exercise-track-backend/internal/services"
	"github.com/fittrack/exercise-track-backend/pkg/validate"
)

// AddExercise handles POST /api/exercise/add. Form fields: userId,
// description, duration, and an optional date (blank means now).
func (h *Handler) AddExercise(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, apperror.MissingField("userId", "Invalid form body"))
		return
	}

	duration, err := validate.Number("duration", r.PostFormValue("duration"))
	if err != nil {
		writeError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	logEntry, err := h.exercises.CreateLog(ctx,
		r.PostFormValue("userId"),
		r.PostFormValue("description"),
		duration,
		r.PostFormValue("date"),
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logEntry)
}

// GetLog handles GET /api/exercise/log. userId is required; from, to,
// and limit are optional filters. A field that is present but invalid
// fails the whole query, while an absent field simply doesn't filter,
// so presence is tracked separately from the value.
func (h *Handler) GetLog(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter services.LogFilter
	for key, dest := range map[string]**string{
		"userId": &filter.UserID,
		"from":   &filter.From,
		"to":     &filter.To,
		"limit":  &filter.Limit,
	} {
		if query.Has(key) {
			value := query.Get(key)
			*dest = &value
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	logs, err := h.exercises.QueryLogs(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
