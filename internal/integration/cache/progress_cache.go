// Package cache implements the progress snapshot cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sehatin/progress-api/internal/application/adapter"
	"github.com/sehatin/progress-api/internal/domain/entity"
)

const keyPrefix = "progress:user:"

// Each key is a hash with a version field and the JSON snapshot in fieldData.
const fieldData = "data"

// setIfNewer writes ARGV[2] at version ARGV[1] unless the stored version is
// the same or higher. ARGV[3] is the TTL in milliseconds.
var setIfNewer = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'version')
if current and tonumber(current) >= tonumber(ARGV[1]) then
	return 0
end
redis.call('HSET', KEYS[1], 'version', ARGV[1], 'data', ARGV[2])
if tonumber(ARGV[3]) > 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[3])
end
return 1
`)

// progressSnapshot is the JSON form stored in the data field.
type progressSnapshot struct {
	UserID                    int64     `json:"user_id"`
	OverallProgressPercentage float64   `json:"overall_progress_percentage"`
	Version                   int64     `json:"version"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// progressCache implements the adapter.ProgressCache interface.
type progressCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProgressCache creates a new Redis-backed progress cache.
func NewProgressCache(client *redis.Client, ttl time.Duration) adapter.ProgressCache {
	return &progressCache{
		client: client,
		ttl:    ttl,
	}
}

func key(userID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, userID)
}

// Get returns the cached snapshot, or nil on a miss.
func (c *progressCache) Get(ctx context.Context, userID int64) (*entity.UserProgress, error) {
	raw, err := c.client.HGet(ctx, key(userID), fieldData).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read progress snapshot: %w", err)
	}

	var snapshot progressSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode progress snapshot: %w", err)
	}

	return &entity.UserProgress{
		UserID:                    snapshot.UserID,
		OverallProgressPercentage: snapshot.OverallProgressPercentage,
		Version:                   snapshot.Version,
		CreatedAt:                 snapshot.CreatedAt,
		UpdatedAt:                 snapshot.UpdatedAt,
	}, nil
}

// Set stores a snapshot with the configured TTL. The version check and the
// write run as one script so concurrent writers cannot reorder them.
func (c *progressCache) Set(ctx context.Context, progress *entity.UserProgress) error {
	raw, err := json.Marshal(progressSnapshot{
		UserID:                    progress.UserID,
		OverallProgressPercentage: progress.OverallProgressPercentage,
		Version:                   progress.Version,
		CreatedAt:                 progress.CreatedAt,
		UpdatedAt:                 progress.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode progress snapshot: %w", err)
	}

	keys := []string{key(progress.UserID)}
	err = setIfNewer.Run(ctx, c.client, keys, progress.Version, raw, c.ttl.Milliseconds()).Err()
	if err != nil {
		return fmt.Errorf("failed to write progress snapshot: %w", err)
	}
	return nil
}

// NewClient creates a Redis client from a redis:// URL and verifies the connection.
func NewClient(ctx context.Context, url, password string, db int) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	if db != 0 {
		opts.DB = db
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}
