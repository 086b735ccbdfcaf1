package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fittrack/exercise-track-backend/internal/handlers"
)

// SetupRoutes wires the API endpoints and the static front-end page.
func SetupRoutes(r *chi.Mux, h *handlers.Handler) {
	r.Post("/api/exercise/new-user", h.NewUser)
	r.Get("/api/exercise/users", h.GetUsers)
	r.Post("/api/exercise/add", h.AddExercise)
	r.Get("/api/exercise/log", h.GetLog)

	// Static front-end page; chi picks the API routes first, everything
	// else falls through to the file server.
	r.Handle("/*", http.FileServer(http.Dir("public")))
}
