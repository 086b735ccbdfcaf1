package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fittrack/exercise-track-backend/internal/models"
)

const (
	userListCacheKey = "cache:users:all"
	// UserListCacheTTL is short: the list only changes on user creation
	// and is invalidated there anyway, the TTL just bounds staleness if
	// an invalidation is lost.
	UserListCacheTTL = 5 * time.Minute
)

// UserListCache keeps the full users listing in Redis. All operations
// fail open: a cache error is reported as a miss, never as a request
// failure.
type UserListCache struct {
	client *redis.Client
}

func NewUserListCache(client *redis.Client) *UserListCache {
	return &UserListCache{client: client}
}

func (c *UserListCache) Get(ctx context.Context) ([]models.User, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, userListCacheKey).Result()
	if err != nil {
		return nil, false // miss or Redis down, same thing here
	}
	var users []models.User
	if err := json.Unmarshal([]byte(val), &users); err != nil {
		return nil, false
	}
	return users, true
}

func (c *UserListCache) Set(ctx context.Context, users []models.User) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(users)
	if err != nil {
		return
	}
	c.client.Set(ctx, userListCacheKey, data, UserListCacheTTL)
}

func (c *UserListCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, userListCacheKey)
}
