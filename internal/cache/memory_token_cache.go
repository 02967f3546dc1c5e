// Package cache provides verifier-hash keyed token caches for the
// authorize hot path. All operations are best effort: a miss or a backend
// failure only means the repository is consulted instead.
package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// MemoryTokenCache caches tokens in process memory with per-entry TTL.
type MemoryTokenCache struct {
	cache *ttlcache.Cache[string, *tokenDomain.Token]
}

// Get retrieves a token by verifier hash.
func (m *MemoryTokenCache) Get(_ context.Context, verifierHash string) (*tokenDomain.Token, bool) {
	item := m.cache.Get(verifierHash)
	if item == nil {
		return nil, false
	}
	return item.Value(), true
}

// Set stores a token for its verifier hash with the given TTL.
func (m *MemoryTokenCache) Set(
	_ context.Context,
	verifierHash string,
	token *tokenDomain.Token,
	ttl time.Duration,
) {
	if ttl <= 0 {
		return
	}
	m.cache.Set(verifierHash, token, ttl)
}

// Delete removes the entry for a verifier hash.
func (m *MemoryTokenCache) Delete(_ context.Context, verifierHash string) {
	m.cache.Delete(verifierHash)
}

// Stop terminates the background expiration goroutine.
func (m *MemoryTokenCache) Stop() {
	m.cache.Stop()
}

// NewMemoryTokenCache creates an in-process token cache. Expired entries are
// evicted by a background goroutine; call Stop when the cache is no longer
// needed.
func NewMemoryTokenCache() *MemoryTokenCache {
	cache := ttlcache.New[string, *tokenDomain.Token]()
	go cache.Start()
	return &MemoryTokenCache{cache: cache}
}
