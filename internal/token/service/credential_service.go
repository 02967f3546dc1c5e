package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"io"
	"strings"

	"github.com/allisson/tokens/internal/token/domain"
)

// credentialService implements CredentialService using SHA-256 for hashing.
type credentialService struct {
	prefix  string
	entropy io.Reader
}

// GenerateCredential creates a new cryptographically secure 32-byte random
// credential. The random part is base64 URL-encoded and carries the configured
// prefix so credentials are recognizable in logs and support tickets.
// Returns the plain credential and its SHA-256 verifier hash.
func (c *credentialService) GenerateCredential() (plainCredential string, verifierHash string, error error) {
	// 32 random bytes (256 bits)
	randomBytes := make([]byte, 32)
	if _, err := io.ReadFull(c.entropy, randomBytes); err != nil {
		return "", "", domain.ErrEntropyUnavailable
	}

	plainCredential = c.prefix + base64.URLEncoding.EncodeToString(randomBytes)

	verifierHash = c.HashCredential(plainCredential)

	return plainCredential, verifierHash, nil
}

// HashCredential hashes a plain text credential using SHA-256.
// Returns the hash as a hexadecimal string.
func (c *credentialService) HashCredential(plainCredential string) string {
	hash := sha256.Sum256([]byte(plainCredential))
	return hex.EncodeToString(hash[:])
}

// NewCredentialService creates a new CredentialService with the given
// credential prefix, reading randomness from crypto/rand.
func NewCredentialService(prefix string) CredentialService {
	return NewCredentialServiceWithEntropy(prefix, rand.Reader)
}

// NewCredentialServiceWithEntropy creates a CredentialService reading
// randomness from the given source. Used by tests to simulate entropy
// exhaustion.
func NewCredentialServiceWithEntropy(prefix string, entropy io.Reader) CredentialService {
	return &credentialService{
		prefix:  strings.TrimSpace(prefix),
		entropy: entropy,
	}
}
