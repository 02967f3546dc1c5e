package service

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/tokens/internal/token/domain"
)

// failingReader always errors, simulating an exhausted entropy source.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source unavailable")
}

func TestNewCredentialService(t *testing.T) {
	service := NewCredentialService("nut_live_")
	assert.NotNil(t, service)
	assert.IsType(t, &credentialService{}, service)
}

func TestCredentialService_GenerateCredential(t *testing.T) {
	service := NewCredentialService("nut_live_")

	t.Run("Success_GenerateCredential", func(t *testing.T) {
		plainCredential, verifierHash, err := service.GenerateCredential()

		// Assert no error
		require.NoError(t, err)

		// Assert credential carries the recognizable prefix
		assert.True(t, strings.HasPrefix(plainCredential, "nut_live_"))

		// Assert random part is base64 URL-encoded 32 bytes
		randomPart := strings.TrimPrefix(plainCredential, "nut_live_")
		decodedBytes, err := base64.URLEncoding.DecodeString(randomPart)
		require.NoError(t, err)
		assert.Len(t, decodedBytes, 32, "decoded credential should be 32 bytes")

		// Assert verifier hash is valid SHA-256 hex string (64 characters)
		assert.Len(t, verifierHash, 64, "SHA-256 hash should be 64 hex characters")

		// Assert hash matches manually hashed plain credential
		expectedHash := sha256.Sum256([]byte(plainCredential))
		expectedHashHex := hex.EncodeToString(expectedHash[:])
		assert.Equal(t, expectedHashHex, verifierHash)
	})

	t.Run("Success_GenerateUniqueCredentials", func(t *testing.T) {
		plainCredential1, verifierHash1, err1 := service.GenerateCredential()
		require.NoError(t, err1)

		plainCredential2, verifierHash2, err2 := service.GenerateCredential()
		require.NoError(t, err2)

		// Assert credentials are different
		assert.NotEqual(t, plainCredential1, plainCredential2, "generated credentials should be unique")
		assert.NotEqual(t, verifierHash1, verifierHash2, "generated hashes should be unique")
	})

	t.Run("Error_EntropyUnavailable", func(t *testing.T) {
		failing := NewCredentialServiceWithEntropy("nut_live_", failingReader{})

		plainCredential, verifierHash, err := failing.GenerateCredential()

		// Assert generation fails closed and yields nothing
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEntropyUnavailable)
		assert.Empty(t, plainCredential)
		assert.Empty(t, verifierHash)
	})
}

func TestCredentialService_HashCredential(t *testing.T) {
	service := NewCredentialService("nut_live_")

	t.Run("Success_HashIsDeterministic", func(t *testing.T) {
		hash1 := service.HashCredential("nut_live_abc123")
		hash2 := service.HashCredential("nut_live_abc123")

		assert.Equal(t, hash1, hash2)
		assert.Len(t, hash1, 64)
	})

	t.Run("Success_DifferentCredentialsDifferentHashes", func(t *testing.T) {
		hash1 := service.HashCredential("nut_live_abc123")
		hash2 := service.HashCredential("nut_live_abc124")

		assert.NotEqual(t, hash1, hash2)
	})
}
