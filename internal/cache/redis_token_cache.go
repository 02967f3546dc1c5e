package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// RedisTokenCache caches tokens in Redis, shared across instances.
type RedisTokenCache struct {
	client *redis.Client
	logger *slog.Logger
}

// redisKey namespaces cache entries by verifier hash.
func redisKey(verifierHash string) string {
	return "tokens:authorize:" + verifierHash
}

// isCacheMiss reports whether the error is an absent key rather than a
// backend failure. redis.Nil may arrive wrapped, so it is matched with
// errors.Is.
func isCacheMiss(err error) bool {
	return errors.Is(err, redis.Nil)
}

// Get retrieves a token by verifier hash.
func (r *RedisTokenCache) Get(ctx context.Context, verifierHash string) (*tokenDomain.Token, bool) {
	payload, err := r.client.Get(ctx, redisKey(verifierHash)).Bytes()
	if err != nil {
		if !isCacheMiss(err) {
			r.logger.Warn("token cache get failed", "error", err)
		}
		return nil, false
	}

	var token tokenDomain.Token
	if err := json.Unmarshal(payload, &token); err != nil {
		r.logger.Warn("token cache entry corrupted", "error", err)
		return nil, false
	}

	return &token, true
}

// Set stores a token for its verifier hash with the given TTL.
func (r *RedisTokenCache) Set(
	ctx context.Context,
	verifierHash string,
	token *tokenDomain.Token,
	ttl time.Duration,
) {
	if ttl <= 0 {
		return
	}

	payload, err := json.Marshal(token)
	if err != nil {
		r.logger.Warn("token cache marshal failed", "error", err)
		return
	}

	if err := r.client.Set(ctx, redisKey(verifierHash), payload, ttl).Err(); err != nil {
		r.logger.Warn("token cache set failed", "error", err)
	}
}

// Delete removes the entry for a verifier hash.
func (r *RedisTokenCache) Delete(ctx context.Context, verifierHash string) {
	if err := r.client.Del(ctx, redisKey(verifierHash)).Err(); err != nil {
		r.logger.Warn("token cache delete failed", "error", err)
	}
}

// NewRedisTokenCache creates a Redis-backed token cache.
func NewRedisTokenCache(client *redis.Client, logger *slog.Logger) *RedisTokenCache {
	return &RedisTokenCache{client: client, logger: logger}
}
