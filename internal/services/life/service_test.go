package life_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xreatlabs/headsteal/internal/errors"
	liferepo "github.com/xreatlabs/headsteal/internal/repositories/life"
	"github.com/xreatlabs/headsteal/internal/services/life"
)

func newTestService() (life.Service, liferepo.Repository) {
	repo := liferepo.NewInMemoryRepository()
	svc := life.NewService(&life.ServiceConfig{
		Repository:   repo,
		DefaultLives: 3,
		MaxLives:     10,
	})
	return svc, repo
}

func TestGet_DefaultsForUnknownPlayer(t *testing.T) {
	svc, _ := newTestService()

	lives, err := svc.Get(context.Background(), "player-1")
	require.NoError(t, err)
	assert.Equal(t, 3, lives)
}

func TestSet_ClampsToBounds(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	lives, err := svc.Set(ctx, "player-1", 25)
	require.NoError(t, err)
	assert.Equal(t, 10, lives)

	lives, err = svc.Set(ctx, "player-1", -5)
	require.NoError(t, err)
	assert.Equal(t, 0, lives)

	lives, err = svc.Get(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, 0, lives)
}

func TestAdd_ClampsAtMax(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	lives, err := svc.Add(ctx, "player-1", 5)
	require.NoError(t, err)
	assert.Equal(t, 8, lives)

	lives, err = svc.Add(ctx, "player-1", 100)
	require.NoError(t, err)
	assert.Equal(t, 10, lives)
}

func TestRemove_ClampsAtZero(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	lives, err := svc.Remove(ctx, "player-1", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, lives)

	lives, err = svc.Remove(ctx, "player-1", 50)
	require.NoError(t, err)
	assert.Equal(t, 0, lives)
}

func TestSpend_FailsWithoutChangeWhenInsufficient(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	lives, err := svc.Spend(ctx, "player-1", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, lives)

	lives, err = svc.Spend(ctx, "player-1", 2)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidArgument(err))
	assert.Equal(t, 1, lives)

	lives, err = svc.Get(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, 1, lives)
}

func TestSpend_ZeroIsFree(t *testing.T) {
	svc, _ := newTestService()

	lives, err := svc.Spend(context.Background(), "player-1", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, lives)
}

func TestNegativeAmountsRejected(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "player-1", -1)
	assert.Error(t, err)

	_, err = svc.Remove(ctx, "player-1", -1)
	assert.Error(t, err)

	_, err = svc.Spend(ctx, "player-1", -1)
	assert.Error(t, err)
}

func TestStoredBalanceAboveMaxReadsClamped(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	// A stale row written under a higher cap reads back clamped
	require.NoError(t, repo.Set(ctx, "player-1", 99))

	lives, err := svc.Get(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, 10, lives)
}
