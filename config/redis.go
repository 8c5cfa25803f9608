package config

import (
	"main/utils"
	"time"
)

type RedisConfig struct {
	URL           string
	SweepInterval time.Duration
	RankingsTTL   time.Duration
}

func LoadRedisConfig() RedisConfig {
	return RedisConfig{
		URL:           utils.GetEnvAsString("REDIS_URL", "redis://localhost:6379/0"),
		SweepInterval: utils.GetEnvAsDuration("SWEEP_RATE_INTERVAL", time.Minute),
		RankingsTTL:   utils.GetEnvAsDuration("RANKINGS_CACHE_TTL", 30*time.Second),
	}
}
