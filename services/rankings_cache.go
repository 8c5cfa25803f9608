package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"main/model"
	"time"

	"github.com/redis/go-redis/v9"
)

const rankingsKey = "rankings:all"

// RankingsCache holds the computed leaderboard for a short TTL. The
// rankings view is read-only and tolerates stale data, so every cache
// failure degrades to a recompute.
type RankingsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRankingsCache(redisURL string, ttl time.Duration) (*RankingsCache, error) {
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

	return &RankingsCache{client: client, ttl: ttl}, nil
}

// GetRankings returns the cached leaderboard if present.
func (rc *RankingsCache) GetRankings(ctx context.Context) ([]*model.RankEntry, bool) {
	data, err := rc.client.Get(ctx, rankingsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("rankings cache read failed: %v", err)
		}
		return nil, false
	}

	var entries []*model.RankEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("rankings cache decode failed: %v", err)
		return nil, false
	}
	return entries, true
}

// SetRankings stores the leaderboard with the cache TTL.
func (rc *RankingsCache) SetRankings(ctx context.Context, entries []*model.RankEntry) {
	data, err := json.Marshal(entries)
	if err != nil {
		log.Printf("rankings cache encode failed: %v", err)
		return
	}
	if err := rc.client.Set(ctx, rankingsKey, data, rc.ttl).Err(); err != nil {
		log.Printf("rankings cache write failed: %v", err)
	}
}
