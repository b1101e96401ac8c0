package banbox

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/xreatlabs/headsteal/internal/domain/banbox"
	"github.com/xreatlabs/headsteal/internal/domain/shared"
	apperrors "github.com/xreatlabs/headsteal/internal/errors"
)

// Data is the serialized form of a ban box record in Redis
type Data struct {
	PlayerID       string          `json:"player_id"`
	PlayerName     string          `json:"player_name"`
	KillerID       string          `json:"killer_id,omitempty"`
	DeathLocation  shared.Location `json:"death_location"`
	BanTimestamp   time.Time       `json:"ban_timestamp"`
	AutoUnbanDays  int             `json:"auto_unban_days"`
	PermanentBan   bool            `json:"permanent_ban"`
	HeadToken      string          `json:"head_token"`
	PendingRestore bool            `json:"pending_restore"`
}

type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a Redis-backed ban box repository
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
	return fmt.Sprintf("banbox:%s", playerID)
}

const indexKey = "banbox:players"

func (r *redisRepo) Get(ctx context.Context, playerID string) (*banbox.Record, error) {
	if playerID == "" {
		return nil, apperrors.InvalidArgument("player ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(playerID)).Bytes()
	if err == redis.Nil {
		return nil, apperrors.NotFoundf("player '%s' is not banboxed", playerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ban box record: %w", err)
	}

	var data Data
	if unmarshalErr := json.Unmarshal(jsonData, &data); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal ban box record: %w", unmarshalErr)
	}

	return fromData(&data), nil
}

func (r *redisRepo) Save(ctx context.Context, record *banbox.Record) error {
	if record == nil {
		return apperrors.InvalidArgument("record cannot be nil")
	}
	if record.PlayerID == "" {
		return apperrors.InvalidArgument("record player ID is required")
	}

	jsonData, err := json.Marshal(toData(record))
	if err != nil {
		return fmt.Errorf("failed to marshal ban box record: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(record.PlayerID), string(jsonData), 0)
	pipe.SAdd(ctx, indexKey, record.PlayerID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save ban box record: %w", err)
	}

	return nil
}

func (r *redisRepo) Delete(ctx context.Context, playerID string) error {
	if playerID == "" {
		return apperrors.InvalidArgument("player ID is required")
	}

	// DEL's removed-count decides a revival race: only one caller sees 1
	removed, err := r.client.Del(ctx, r.key(playerID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete ban box record: %w", err)
	}
	if removed == 0 {
		return apperrors.NotFoundf("player '%s' is not banboxed", playerID)
	}

	if err := r.client.SRem(ctx, indexKey, playerID).Err(); err != nil {
		return fmt.Errorf("failed to unindex ban box record: %w", err)
	}

	return nil
}

func (r *redisRepo) GetAll(ctx context.Context) ([]*banbox.Record, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list ban box players: %w", err)
	}

	var mu sync.Mutex
	records := make([]*banbox.Record, 0, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			record, err := r.Get(ctx, id)
			if err != nil {
				// Best-effort load: a corrupt or vanished entry must not
				// take the whole collection down
				log.Printf("Skipping ban box record %s: %v", id, err)
				return nil
			}
			mu.Lock()
			records = append(records, record)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

func toData(record *banbox.Record) *Data {
	return &Data{
		PlayerID:       record.PlayerID,
		PlayerName:     record.PlayerName,
		KillerID:       record.KillerID,
		DeathLocation:  record.DeathLocation,
		BanTimestamp:   record.BanTimestamp,
		AutoUnbanDays:  record.AutoUnbanDays,
		PermanentBan:   record.PermanentBan,
		HeadToken:      record.HeadToken,
		PendingRestore: record.PendingRestore,
	}
}

func fromData(data *Data) *banbox.Record {
	return &banbox.Record{
		PlayerID:       data.PlayerID,
		PlayerName:     data.PlayerName,
		KillerID:       data.KillerID,
		DeathLocation:  data.DeathLocation,
		BanTimestamp:   data.BanTimestamp,
		AutoUnbanDays:  data.AutoUnbanDays,
		PermanentBan:   data.PermanentBan,
		HeadToken:      data.HeadToken,
		PendingRestore: data.PendingRestore,
	}
}
