package documents_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-hud/internal/errors"
	"github.com/KirkDiggler/rpg-hud/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-hud/internal/repositories/documents"
	"github.com/KirkDiggler/rpg-hud/internal/testutils"
)

func TestNewRedisValidatesConfig(t *testing.T) {
	_, err := documents.NewRedis(nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = documents.NewRedis(&documents.RedisConfig{Clock: clock.New()})
	assert.True(t, errors.IsInvalidArgument(err))

	client, _ := redismock.NewClientMock()
	_, err = documents.NewRedis(&documents.RedisConfig{Client: client})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestRedisRepositoryFailures(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	repo, err := documents.NewRedis(&documents.RedisConfig{Client: client, Clock: clock.Fixed(testNow)})
	require.NoError(t, err)

	t.Run("load surfaces connection errors", func(t *testing.T) {
		mock.ExpectGet(documents.KeyCharacter).SetErr(stderrors.New("connection reset"))

		_, err := repo.Load(ctx, documents.LoadInput{Key: documents.KeyCharacter})

		require.Error(t, err)
		assert.False(t, errors.IsNotFound(err))
		assert.Equal(t, errors.CodeInternal, errors.GetCode(err))
	})

	t.Run("load rejects a corrupt envelope", func(t *testing.T) {
		mock.ExpectGet(documents.KeyCharacter).SetVal("not json")

		_, err := repo.Load(ctx, documents.LoadInput{Key: documents.KeyCharacter})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal document")
	})

	t.Run("delete surfaces errors", func(t *testing.T) {
		mock.ExpectDel(documents.KeyCharacter).SetErr(stderrors.New("readonly replica"))

		_, err := repo.Delete(ctx, documents.DeleteInput{Key: documents.KeyCharacter})

		require.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoredFormat(t *testing.T) {
	client, mr := testutils.CreateTestRedisClient(t)
	repo, err := documents.NewRedis(&documents.RedisConfig{Client: client, Clock: clock.Fixed(testNow)})
	require.NoError(t, err)

	_, err = repo.Save(context.Background(), documents.SaveInput{
		Key:  documents.ClassKey("fighter"),
		Data: []byte(`{"name":"Fighter"}`),
	})
	require.NoError(t, err)

	raw, err := mr.Get("dnd-hud-class:fighter")
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"name":"Fighter"},"updatedAt":"2026-03-14T19:30:00Z"}`, raw)
	assert.Zero(t, mr.TTL("dnd-hud-class:fighter"))
}

func TestNewSQLiteValidatesConfig(t *testing.T) {
	_, err := documents.NewSQLite(&documents.SQLiteConfig{Clock: clock.New()})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = documents.NewSQLite(&documents.SQLiteConfig{Path: "hud.db"})
	assert.True(t, errors.IsInvalidArgument(err))
}
