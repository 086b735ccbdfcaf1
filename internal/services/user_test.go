package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fittrack/exercise-track-backend/internal/apperror"
	"github.com/fittrack/exercise-track-backend/internal/models"
	"github.com/fittrack/exercise-track-backend/internal/repository"
)

// stubUserRepo is an in-memory repository.UserRepository. failWith, if
// set, is returned from every method to simulate a store failure.
type stubUserRepo struct {
	users    map[string]*models.User // keyed by id
	failWith error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*models.User)}
}

func (r *stubUserRepo) Insert(_ context.Context, user *models.User) error {
	if r.failWith != nil {
		return r.failWith
	}
	for _, existing := range r.users {
		if existing.Name == user.Name {
			return apperror.UserAlreadyExists()
		}
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *stubUserRepo) FindByName(_ context.Context, name string) (*models.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, u := range r.users {
		if u.Name == name {
			result := *u
			return &result, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	result := *u
	return &result, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func TestUserDoesNotExist(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil)
	ctx := context.Background()

	require.NoError(t, svc.UserDoesNotExist(ctx, "alice"))

	_, err := svc.CreateUser(ctx, "alice")
	require.NoError(t, err)

	err = svc.UserDoesNotExist(ctx, "alice")
	require.ErrorIs(t, err, apperror.ErrConflict)
	require.Equal(t, "User already exists", err.Error())
}

func TestCreateUserGeneratesID(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil)

	user, err := svc.CreateUser(context.Background(), "alice")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice", user.Name)
	require.WithinDuration(t, time.Now(), user.CreatedAt, 2*time.Second)

	other, err := svc.CreateUser(context.Background(), "bob")
	require.NoError(t, err)
	require.NotEqual(t, user.ID, other.ID)
}

func TestCreateUserDuplicateInsert(t *testing.T) {
	// The pre-insert existence check can pass on both sides of a race;
	// the insert itself must still reject the duplicate.
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "alice")
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, "alice")
	require.ErrorIs(t, err, apperror.ErrConflict)
	require.Len(t, repo.users, 1)
}

func TestGetUserByID(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, "alice")
	require.NoError(t, err)

	found, err := svc.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", found.Name)

	_, err = svc.GetUserByID(ctx, "no-such-id")
	require.ErrorIs(t, err, apperror.ErrNotFound)
	require.Equal(t, "User was not found", err.Error())
}

func TestUserServiceStoreFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.failWith = apperror.Store(errors.New("connection reset"))
	svc := NewUserService(repo, nil)
	ctx := context.Background()

	require.ErrorIs(t, svc.UserDoesNotExist(ctx, "alice"), apperror.ErrStore)

	_, err := svc.GetUserByID(ctx, "some-id")
	require.ErrorIs(t, err, apperror.ErrStore)

	_, err = svc.ListUsers(ctx)
	require.ErrorIs(t, err, apperror.ErrStore)
}

func TestListUsers(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil)
	ctx := context.Background()

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)

	_, err = svc.CreateUser(ctx, "alice")
	require.NoError(t, err)
	_, err = svc.CreateUser(ctx, "bob")
	require.NoError(t, err)

	users, err = svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
}
