package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestTokenDenylistRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewTokenDenylistRepository(rdb)

	t.Run("Unknown token is not revoked", func(t *testing.T) {
		revoked, err := repo.IsRevoked(ctx, "unknown-jti")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("Revoked token is reported", func(t *testing.T) {
		require.NoError(t, repo.Revoke(ctx, "jti-1", time.Minute))

		revoked, err := repo.IsRevoked(ctx, "jti-1")
		assert.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("Expired token is not stored", func(t *testing.T) {
		require.NoError(t, repo.Revoke(ctx, "jti-2", 0))

		revoked, err := repo.IsRevoked(ctx, "jti-2")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("Entry expires with the token", func(t *testing.T) {
		require.NoError(t, repo.Revoke(ctx, "jti-3", time.Second))
		time.Sleep(1500 * time.Millisecond)

		revoked, err := repo.IsRevoked(ctx, "jti-3")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})
}
