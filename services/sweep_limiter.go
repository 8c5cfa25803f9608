package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// SweepLimiter throttles the per-owner overdue sweep that runs as a
// side effect of listing tasks. SetNX with a TTL means each owner pays
// for at most one sweep per interval; when Redis is down the limiter
// fails open so the sweep still runs.
type SweepLimiter struct {
	client   *redis.Client
	interval time.Duration
}

func NewSweepLimiter(redisURL string, interval time.Duration) (*SweepLimiter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &SweepLimiter{client: client, interval: interval}, nil
}

// AllowSweep reports whether this owner's sweep may run now.
func (sl *SweepLimiter) AllowSweep(ctx context.Context, userID string) bool {
	key := fmt.Sprintf("sweep:%s", userID)

	ok, err := sl.client.SetNX(ctx, key, time.Now().Unix(), sl.interval).Result()
	if err != nil {
		log.Printf("sweep limiter unavailable, allowing sweep: %v", err)
		return true
	}
	return ok
}
