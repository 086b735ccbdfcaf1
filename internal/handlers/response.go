package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/fittrack/exercise-track-backend/internal/apperror"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode JSON response: %v", err)
	}
}

// writeError renders a failure as a text/plain body carrying the
// error's message. Validation, not-found, and conflict kinds are the
// client's fault (400); store failures and anything unrecognized are
// ours (500).
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Internal Server Error"

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
		if !errors.Is(err, apperror.ErrStore) {
			status = http.StatusBadRequest
		}
	}

	if status == http.StatusInternalServerError {
		log.Printf("request failed: %v", err)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(message))
}
