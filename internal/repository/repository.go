// Package repository defines the store interfaces the services depend
// on. The mongodb subpackage provides the real implementation; tests
// substitute in-memory stubs.
package repository

import (
	"context"
	"time"

	"github.com/fittrack/exercise-track-backend/internal/models"
)

// UserRepository is the users collection. Find methods return
// (nil, nil) when no document matches; errors are reserved for store
// failures.
type UserRepository interface {
	Insert(ctx context.Context, user *models.User) error
	FindByName(ctx context.Context, name string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
}

// LogQuery narrows a log listing. Nil fields mean "no constraint".
// From/To are inclusive bounds on the log date.
type LogQuery struct {
	From  *time.Time
	To    *time.Time
	Limit *int64
}

// ExerciseRepository is the exercise_logs collection. FindByUser
// returns the user's logs ordered by date ascending.
type ExerciseRepository interface {
	Insert(ctx context.Context, logEntry *models.ExerciseLog) error
	FindByUser(ctx context.Context, userID string, query LogQuery) ([]models.ExerciseLog, error)
}
