package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/fittrack/exercise-track-backend/internal/apperror"
	"github.com/fittrack/exercise-track-backend/internal/services"
)

const requestTimeout = 5 * time.Second

// Handler holds the services behind the four API endpoints. Everything
// is injected at construction so tests can run against stub stores.
type Handler struct {
	users     *services.UserService
	exercises *services.ExerciseService
}

func New(users *services.UserService, exercises *services.ExerciseService) *Handler {
	return &Handler{users: users, exercises: exercises}
}

// NewUser handles POST /api/exercise/new-user. The body is
// form-encoded with a single username field.
func (h *Handler) NewUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, apperror.MissingField("username", "Invalid form body"))
		return
	}
	username := strings.TrimSpace(r.PostFormValue("username"))
	if username == "" {
		writeError(w, apperror.MissingField("username", "Username is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.users.UserDoesNotExist(ctx, username); err != nil {
		writeError(w, err)
		return
	}
	user, err := h.users.CreateUser(ctx, username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// GetUsers handles GET /api/exercise/users, returning all users as a
// JSON array.
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	users, err := h.users.ListUsers(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}
