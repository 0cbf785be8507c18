package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"main/model"

	"github.com/redis/go-redis/v9"
)

// StatsCache keeps the latest UserStats snapshot per user in redis so the
// dashboard read path skips mongo. Entries are invalidated on every
// recompute, so a short TTL is only a backstop.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

var GlobalStatsCache *StatsCache

func NewStatsCache(redisURL string, ttl time.Duration) (*StatsCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &StatsCache{client: client, ttl: ttl}, nil
}

func (sc *StatsCache) SetStats(stats *model.UserStats) error {
	if stats == nil {
		return fmt.Errorf("cannot cache nil stats")
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %v", err)
	}

	ctx := context.Background()
	return sc.client.Set(ctx, statsKey(stats.UserID), data, sc.ttl).Err()
}

// GetStats returns nil, nil on a cache miss
func (sc *StatsCache) GetStats(userID string) (*model.UserStats, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID cannot be empty")
	}

	ctx := context.Background()
	data, err := sc.client.Get(ctx, statsKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stats from cache: %v", err)
	}

	var stats model.UserStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached stats: %v", err)
	}

	return &stats, nil
}

func (sc *StatsCache) InvalidateStats(userID string) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}

	ctx := context.Background()
	return sc.client.Del(ctx, statsKey(userID)).Err()
}

func statsKey(userID string) string {
	return fmt.Sprintf("stats:%s", userID)
}
