package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// MemoryTokenRepository implements Token persistence in memory.
// Safe for concurrent use. Intended for tests and local development.
type MemoryTokenRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*tokenDomain.Token
	byHash  map[string]uuid.UUID
	ordered []uuid.UUID // newest first
}

// Create stores a new token.
func (m *MemoryTokenRepository) Create(_ context.Context, token *tokenDomain.Token) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clone := cloneToken(token)
	m.byID[clone.ID] = clone
	m.byHash[clone.VerifierHash] = clone.ID
	m.ordered = append([]uuid.UUID{clone.ID}, m.ordered...)

	return nil
}

// Update replaces an existing token.
func (m *MemoryTokenRepository) Update(_ context.Context, token *tokenDomain.Token) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[token.ID]; !ok {
		return tokenDomain.ErrTokenNotFound
	}

	m.byID[token.ID] = cloneToken(token)
	return nil
}

// Revoke marks a token as revoked. The check and the write happen under a
// single lock, so concurrent calls for the same token perform exactly one
// transition and the revocation timestamp is written once.
func (m *MemoryTokenRepository) Revoke(
	_ context.Context,
	tokenID uuid.UUID,
	revokedAt time.Time,
) (*tokenDomain.Token, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, ok := m.byID[tokenID]
	if !ok {
		return nil, false, tokenDomain.ErrTokenNotFound
	}

	if token.Revoked {
		return cloneToken(token), false, nil
	}

	token.Revoked = true
	token.UpdatedAt = revokedAt

	return cloneToken(token), true, nil
}

// Get retrieves a token by ID.
func (m *MemoryTokenRepository) Get(_ context.Context, tokenID uuid.UUID) (*tokenDomain.Token, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	token, ok := m.byID[tokenID]
	if !ok {
		return nil, tokenDomain.ErrTokenNotFound
	}

	return cloneToken(token), nil
}

// GetByVerifierHash retrieves a token by its verifier hash.
func (m *MemoryTokenRepository) GetByVerifierHash(
	_ context.Context,
	verifierHash string,
) (*tokenDomain.Token, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tokenID, ok := m.byHash[verifierHash]
	if !ok {
		return nil, tokenDomain.ErrTokenNotFound
	}

	return cloneToken(m.byID[tokenID]), nil
}

// List retrieves tokens ordered by creation time, newest first.
func (m *MemoryTokenRepository) List(
	_ context.Context,
	offset, limit int,
) ([]*tokenDomain.Token, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if offset >= len(m.ordered) {
		return nil, nil
	}

	end := offset + limit
	if end > len(m.ordered) {
		end = len(m.ordered)
	}

	tokens := make([]*tokenDomain.Token, 0, end-offset)
	for _, tokenID := range m.ordered[offset:end] {
		tokens = append(tokens, cloneToken(m.byID[tokenID]))
	}

	return tokens, nil
}

// cloneToken deep-copies a token so callers never share slices with the store.
func cloneToken(token *tokenDomain.Token) *tokenDomain.Token {
	clone := *token

	clone.AllowedIPs = append([]string(nil), token.AllowedIPs...)
	clone.AllowedEmails = append([]string(nil), token.AllowedEmails...)
	clone.AllowedDomains = append([]string(nil), token.AllowedDomains...)

	clone.Scope = make([]tokenDomain.ScopeGrant, len(token.Scope))
	for i, grant := range token.Scope {
		grantClone := grant
		grantClone.AllowedEndpoints = append([]string(nil), grant.AllowedEndpoints...)
		clone.Scope[i] = grantClone
	}

	if token.ExpiresAt != nil {
		expiresAt := *token.ExpiresAt
		clone.ExpiresAt = &expiresAt
	}

	return &clone
}

// NewMemoryTokenRepository creates an in-memory Token repository.
func NewMemoryTokenRepository() *MemoryTokenRepository {
	return &MemoryTokenRepository{
		byID:   make(map[uuid.UUID]*tokenDomain.Token),
		byHash: make(map[string]uuid.UUID),
	}
}
