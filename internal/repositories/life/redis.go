package life

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/xreatlabs/headsteal/internal/errors"
)

// Data is the serialized form of a life balance in Redis
type Data struct {
	PlayerID string `json:"player_id"`
	Lives    int    `json:"lives"`
}

type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a Redis-backed life repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	return &redisRepo{client: cfg.Client}
}

func (r *redisRepo) key(playerID string) string {
	return fmt.Sprintf("lives:%s", playerID)
}

const indexKey = "lives:players"

func (r *redisRepo) Get(ctx context.Context, playerID string) (int, error) {
	if playerID == "" {
		return 0, apperrors.InvalidArgument("player ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(playerID)).Bytes()
	if err == redis.Nil {
		return 0, apperrors.NotFoundf("no life balance for player '%s'", playerID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get life balance: %w", err)
	}

	var data Data
	if unmarshalErr := json.Unmarshal(jsonData, &data); unmarshalErr != nil {
		return 0, fmt.Errorf("failed to unmarshal life balance: %w", unmarshalErr)
	}

	return data.Lives, nil
}

func (r *redisRepo) Set(ctx context.Context, playerID string, lives int) error {
	if playerID == "" {
		return apperrors.InvalidArgument("player ID is required")
	}

	jsonData, err := json.Marshal(Data{PlayerID: playerID, Lives: lives})
	if err != nil {
		return fmt.Errorf("failed to marshal life balance: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(playerID), string(jsonData), 0)
	pipe.SAdd(ctx, indexKey, playerID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save life balance: %w", err)
	}

	return nil
}

func (r *redisRepo) GetAll(ctx context.Context) (map[string]int, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list life balances: %w", err)
	}

	balances := make(map[string]int, len(ids))
	for _, id := range ids {
		lives, err := r.Get(ctx, id)
		if err != nil {
			// Best-effort load, a corrupt entry is skipped
			log.Printf("Skipping life balance %s: %v", id, err)
			continue
		}
		balances[id] = lives
	}

	return balances, nil
}
