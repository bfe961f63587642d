package chat

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"resource-navigator-backend/models"
)

const redisKeyPrefix = "chat:answer:"

// RedisCache stores composed answers in Redis with a TTL, for deployments
// running more than one backend instance. Redis failures degrade to cache
// misses; the engine recomputes rather than erroring.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisCache wraps an existing Redis client as an AnswerCache.
func NewRedisCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, log: log}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*models.Answer, bool) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("redis cache read failed", zap.Error(err))
		return nil, false
	}

	var answer models.Answer
	if err := json.Unmarshal([]byte(raw), &answer); err != nil {
		c.log.Warn("redis cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &answer, true
}

func (c *RedisCache) Set(ctx context.Context, key string, answer *models.Answer) {
	raw, err := json.Marshal(answer)
	if err != nil {
		c.log.Warn("failed to marshal answer for cache", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, redisKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("redis cache write failed", zap.Error(err))
	}
}
