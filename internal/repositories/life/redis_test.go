package life

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xreatlabs/headsteal/internal/errors"
)

func TestRedisSet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisRepository(&RedisRepoConfig{Client: client})

	mock.ExpectSet("lives:player-1", `{"player_id":"player-1","lives":3}`, 0).SetVal("OK")
	mock.ExpectSAdd("lives:players", "player-1").SetVal(1)

	require.NoError(t, repo.Set(context.Background(), "player-1", 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisRepository(&RedisRepoConfig{Client: client})

	mock.ExpectGet("lives:player-1").SetVal(`{"player_id":"player-1","lives":7}`)

	lives, err := repo.Get(context.Background(), "player-1")
	require.NoError(t, err)
	assert.Equal(t, 7, lives)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisGet_NotFound(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisRepository(&RedisRepoConfig{Client: client})

	mock.ExpectGet("lives:missing").RedisNil()

	_, err := repo.Get(context.Background(), "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRedisGetAll_SkipsCorruptEntries(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisRepository(&RedisRepoConfig{Client: client})

	mock.ExpectSMembers("lives:players").SetVal([]string{"player-1", "player-2"})
	mock.ExpectGet("lives:player-1").SetVal(`{"player_id":"player-1","lives":2}`)
	mock.ExpectGet("lives:player-2").SetVal("garbage")

	balances, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"player-1": 2}, balances)
}
