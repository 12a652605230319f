package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/site-content-api/internal/logger"
)

const revokedTokenPrefix = "revoked_token:"

// TokenDenylistRepository records revoked token ids in Redis until they expire.
type TokenDenylistRepository struct {
	client *redis.Client
}

func NewTokenDenylistRepository(client *redis.Client) *TokenDenylistRepository {
	return &TokenDenylistRepository{client: client}
}

// Revoke stores jti for ttl. Tokens that already expired are not stored.
func (r *TokenDenylistRepository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := revokedTokenPrefix + jti
	err := r.client.Set(ctx, key, 1, ttl).Err()

	logger.Log.Debugw("redis",
		"op", "set",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether jti was revoked.
func (r *TokenDenylistRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	key := revokedTokenPrefix + jti
	err := r.client.Get(ctx, key).Err()

	logger.Log.Debugw("redis",
		"op", "get",
		"key", key,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
