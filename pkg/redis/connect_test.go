package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/l10ncheck/pkg/redis"
)

func TestConnect_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := redis.Connect(ctx, redis.Config{})
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)

	_, err = redis.Connect(ctx, redis.Config{ConnectionURL: "http://not-redis"})
	assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := redis.Connect(ctx, redis.Config{
		ConnectionURL: "redis://127.0.0.1:1/0",
		RetryAttempts: 2,
		RetryInterval: time.Millisecond,
	})
	assert.ErrorIs(t, err, redis.ErrRedisNotReady)
}
