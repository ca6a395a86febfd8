package redis_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-hud/internal/errors"
	"github.com/KirkDiggler/rpg-hud/internal/redis"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	client, err := redis.NewClient("", nil)
	assert.Nil(t, client)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestPing(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.NoError(t, redis.Ping(context.Background(), client))
}

func TestPingUnavailable(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectPing().SetErr(stderrors.New("connection refused"))

	err := redis.Ping(context.Background(), client)

	require.Error(t, err)
	assert.Equal(t, errors.CodeUnavailable, errors.GetCode(err))
	assert.Equal(t, "connection refused", errors.GetMeta(err)["cause"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
