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
)

func testRecord(playerID string) *banbox.Record {
	return &banbox.Record{
		PlayerID:      playerID,
		PlayerName:    "Alice",
		DeathLocation: shared.Location{World: "overworld", X: 1, Y: 64, Z: 1},
		BanTimestamp:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		AutoUnbanDays: 30,
		HeadToken:     "token-1",
	}
}

func TestInMemory_SaveGetDelete(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Get(ctx, "player-1")
	assert.True(t, apperrors.IsNotFound(err))

	require.NoError(t, repo.Save(ctx, testRecord("player-1")))

	record, err := repo.Get(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, testRecord("player-1"), record)

	require.NoError(t, repo.Delete(ctx, "player-1"))
	assert.True(t, apperrors.IsNotFound(repo.Delete(ctx, "player-1")))
}

func TestInMemory_GetReturnsCopy(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testRecord("player-1")))

	record, err := repo.Get(ctx, "player-1")
	require.NoError(t, err)
	record.PermanentBan = true

	fresh, err := repo.Get(ctx, "player-1")
	require.NoError(t, err)
	assert.False(t, fresh.PermanentBan)
}

func TestInMemory_DeleteDecidesRace(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, testRecord("player-1")))

	const attempts = 20
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

func TestInMemory_GetAll(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testRecord("player-1")))
	require.NoError(t, repo.Save(ctx, testRecord("player-2")))

	records, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
