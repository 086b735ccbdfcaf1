package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fittrack/exercise-track-backend/internal/apperror"
	"github.com/fittrack/exercise-track-backend/internal/models"
	"github.com/fittrack/exercise-track-backend/internal/repository"
	"github.com/fittrack/exercise-track-backend/pkg/validate"
)

// ExerciseService records exercise entries against existing users and
// answers filtered log queries.
type ExerciseService struct {
	logs  repository.ExerciseRepository
	users *UserService
}

func NewExerciseService(logs repository.ExerciseRepository, users *UserService) *ExerciseService {
	return &ExerciseService{logs: logs, users: users}
}

// CreateLog validates the date and resolves the user concurrently;
// both must succeed before anything is persisted. The log gets its own
// generated id and carries the owner's id and name as separate fields.
func (s *ExerciseService) CreateLog(ctx context.Context, userID, description string, duration float64, dateInput string) (*models.ExerciseLog, error) {
	if strings.TrimSpace(description) == "" {
		return nil, apperror.MissingField("description", "Description is required")
	}

	var (
		user *models.User
		date time.Time
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.users.GetUserByID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		date, err = validate.NewDate("date", dateInput)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logEntry := &models.ExerciseLog{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Username:    user.Name,
		Description: description,
		Duration:    duration,
		Date:        date,
		CreatedAt:   time.Now(),
	}
	if err := s.logs.Insert(ctx, logEntry); err != nil {
		return nil, err
	}
	return logEntry, nil
}

// LogFilter is the raw query input for QueryLogs. Nil pointers mean
// the field was absent; a pointer to an empty string means it was
// present and empty, which is a validation error.
type LogFilter struct {
	UserID *string
	From   *string
	To     *string
	Limit  *string
}

// QueryLogs validates every present filter, resolves the user, and
// returns the user's logs narrowed to the date range, oldest first,
// truncated to limit.
func (s *ExerciseService) QueryLogs(ctx context.Context, filter LogFilter) ([]models.ExerciseLog, error) {
	if filter.UserID == nil {
		return nil, apperror.MissingUserID()
	}

	user, err := s.users.GetUserByID(ctx, *filter.UserID)
	if err != nil {
		return nil, err
	}

	var query repository.LogQuery
	if filter.From != nil {
		from, err := validate.Date("from", *filter.From)
		if err != nil {
			return nil, err
		}
		query.From = &from
	}
	if filter.To != nil {
		to, err := validate.Date("to", *filter.To)
		if err != nil {
			return nil, err
		}
		query.To = &to
	}
	if filter.Limit != nil {
		n, err := validate.Number("limit", *filter.Limit)
		if err != nil {
			return nil, err
		}
		limit := int64(n)
		query.Limit = &limit
	}

	return s.logs.FindByUser(ctx, user.ID, query)
}
