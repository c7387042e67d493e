package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/senshi-dojo/dojo-backend/internal/config"
)

// LoginSessionRepository stores server-side login sessions keyed by session id.
type LoginSessionRepository interface {
	Save(ctx context.Context, sessionID string, userID int, ttl time.Duration) error
	// Lookup returns the bound user id, or ErrNotFound if the session is gone.
	Lookup(ctx context.Context, sessionID string) (int, error)
	// Delete removes the session; deleting a missing session is not an error.
	Delete(ctx context.Context, sessionID string) error
}

type loginSessionRepository struct {
	rdb *redis.Client
}

func NewLoginSessionRepository(rdb *redis.Client) LoginSessionRepository {
	return &loginSessionRepository{rdb: rdb}
}

func (r *loginSessionRepository) Save(ctx context.Context, sessionID string, userID int, ttl time.Duration) error {
	key := config.CacheKey.LoginSessionKey(sessionID)
	if err := r.rdb.Set(ctx, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (r *loginSessionRepository) Lookup(ctx context.Context, sessionID string) (int, error) {
	key := config.CacheKey.LoginSessionKey(sessionID)
	val, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("check session: %w", err)
	}
	userID, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value: %w", err)
	}
	return userID, nil
}

func (r *loginSessionRepository) Delete(ctx context.Context, sessionID string) error {
	key := config.CacheKey.LoginSessionKey(sessionID)
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
