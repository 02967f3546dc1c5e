package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// TestMain verifies the expiration goroutine stops with the cache.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMemoryTokenCache(t *testing.T) {
	ctx := context.Background()

	token := &tokenDomain.Token{
		ID:           uuid.Must(uuid.NewV7()),
		VerifierHash: "verifier-hash",
	}

	t.Run("Success_SetAndGet", func(t *testing.T) {
		cache := NewMemoryTokenCache()
		defer cache.Stop()

		cache.Set(ctx, "verifier-hash", token, time.Minute)

		got, ok := cache.Get(ctx, "verifier-hash")
		require.True(t, ok)
		assert.Equal(t, token.ID, got.ID)
	})

	t.Run("Success_MissOnUnknownHash", func(t *testing.T) {
		cache := NewMemoryTokenCache()
		defer cache.Stop()

		got, ok := cache.Get(ctx, "unknown-hash")
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("Success_Delete", func(t *testing.T) {
		cache := NewMemoryTokenCache()
		defer cache.Stop()

		cache.Set(ctx, "verifier-hash", token, time.Minute)
		cache.Delete(ctx, "verifier-hash")

		_, ok := cache.Get(ctx, "verifier-hash")
		assert.False(t, ok)
	})

	t.Run("Success_NonPositiveTTLNotStored", func(t *testing.T) {
		cache := NewMemoryTokenCache()
		defer cache.Stop()

		cache.Set(ctx, "verifier-hash", token, 0)

		_, ok := cache.Get(ctx, "verifier-hash")
		assert.False(t, ok)
	})
}
