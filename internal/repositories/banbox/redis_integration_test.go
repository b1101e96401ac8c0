//go:build integration

package banbox

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xreatlabs/headsteal/internal/domain/banbox"
	"github.com/xreatlabs/headsteal/internal/domain/shared"
	apperrors "github.com/xreatlabs/headsteal/internal/errors"
	"github.com/xreatlabs/headsteal/internal/testutils"
)

func TestRedisIntegration_Lifecycle(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	repo := NewRedisRepository(&RedisRepoConfig{Client: client})
	ctx := context.Background()

	record := &banbox.Record{
		PlayerID:      "player-1",
		PlayerName:    "Alice",
		KillerID:      "player-2",
		DeathLocation: shared.Location{World: "overworld", X: 10.5, Y: 64, Z: -3.25},
		BanTimestamp:  time.Now().UTC().Truncate(time.Millisecond),
		AutoUnbanDays: 30,
		HeadToken:     "token-1",
	}

	require.NoError(t, repo.Save(ctx, record))

	loaded, err := repo.Get(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, record.PlayerName, loaded.PlayerName)
	assert.Equal(t, record.DeathLocation, loaded.DeathLocation)
	assert.True(t, record.BanTimestamp.Equal(loaded.BanTimestamp))
	assert.Equal(t, record.HeadToken, loaded.HeadToken)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, "player-1"))
	_, err = repo.Get(ctx, "player-1")
	assert.True(t, apperrors.IsNotFound(err))

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRedisIntegration_ConcurrentDeleteOneWinner(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	repo := NewRedisRepository(&RedisRepoConfig{Client: client})
	ctx := context.Background()

	record := &banbox.Record{
		PlayerID:      "player-1",
		PlayerName:    "Alice",
		BanTimestamp:  time.Now(),
		AutoUnbanDays: 30,
		HeadToken:     "token-1",
	}
	require.NoError(t, repo.Save(ctx, record))

	const attempts = 10
	var wg sync.WaitGroup
	wins := make(chan struct{}, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if repo.Delete(ctx, "player-1") == nil {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	won := 0
	for range wins {
		won++
	}
	assert.Equal(t, 1, won)
}
