package services

import (
	"context"
	"time"

	"github.com/rs/xid"

	"github.com/fittrack/exercise-track-backend/internal/apperror"
	"github.com/fittrack/exercise-track-backend/internal/models"
	"github.com/fittrack/exercise-track-backend/internal/repository"
)

// UserService handles registration and lookup of tracker users.
type UserService struct {
	users repository.UserRepository
	cache *UserListCache // optional, nil-safe
}

func NewUserService(users repository.UserRepository, cache *UserListCache) *UserService {
	return &UserService{users: users, cache: cache}
}

// UserDoesNotExist returns nil when no user has the given name, and
// UserAlreadyExists when one does. This is the friendly pre-insert
// check; the unique index on name is what actually guarantees
// uniqueness under concurrent creation.
func (s *UserService) UserDoesNotExist(ctx context.Context, name string) error {
	user, err := s.users.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if user != nil {
		return apperror.UserAlreadyExists()
	}
	return nil
}

// CreateUser persists a new user with a generated short id.
func (s *UserService) CreateUser(ctx context.Context, name string) (*models.User, error) {
	user := &models.User{
		ID:        xid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return user, nil
}

// GetUserByID resolves a user or fails with UserNotFound.
func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.UserNotFound()
	}
	return user, nil
}

// ListUsers returns all users in the store's natural order, served
// from the Redis cache when possible.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	if users, ok := s.cache.Get(ctx); ok {
		return users, nil
	}
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, users)
	return users, nil
}
