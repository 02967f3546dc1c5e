// Package usecase implements business logic orchestration for API token
// lifecycle operations. Use cases coordinate credential generation, the
// customer directory, persistence and the authorization cache.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	customerDomain "github.com/allisson/tokens/internal/customer/domain"
	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// TokenRepository defines the interface for token persistence operations.
type TokenRepository interface {
	Create(ctx context.Context, token *tokenDomain.Token) error
	Update(ctx context.Context, token *tokenDomain.Token) error
	Get(ctx context.Context, tokenID uuid.UUID) (*tokenDomain.Token, error)
	GetByVerifierHash(ctx context.Context, verifierHash string) (*tokenDomain.Token, error)
	// List returns tokens ordered by creation time, newest first.
	List(ctx context.Context, offset, limit int) ([]*tokenDomain.Token, error)
	// Revoke atomically marks a token as revoked. The bool result reports
	// whether this call performed the transition; a token that was already
	// revoked is returned unchanged with false. Implementations must
	// guarantee that concurrent calls for the same token produce exactly
	// one transition.
	Revoke(ctx context.Context, tokenID uuid.UUID, revokedAt time.Time) (*tokenDomain.Token, bool, error)
}

// CustomerRepository defines the customer directory lookups needed by the
// scope builder.
type CustomerRepository interface {
	Get(ctx context.Context, code string) (*customerDomain.Customer, error)
}

// TokenCache defines a verifier-hash keyed cache for the authorize hot path.
// Implementations must tolerate misses and treat all operations as best effort.
type TokenCache interface {
	Get(ctx context.Context, verifierHash string) (*tokenDomain.Token, bool)
	Set(ctx context.Context, verifierHash string, token *tokenDomain.Token, ttl time.Duration)
	Delete(ctx context.Context, verifierHash string)
}

// TokenUseCase defines the interface for token lifecycle business logic.
type TokenUseCase interface {
	// Issue creates a new API token. The plain credential in the output is
	// only available once, at issuance.
	Issue(ctx context.Context, input *tokenDomain.IssueTokenInput) (*tokenDomain.IssueTokenOutput, error)
	Get(ctx context.Context, tokenID uuid.UUID) (*tokenDomain.Token, error)
	// List returns tokens ordered by creation time, newest first.
	List(ctx context.Context, offset, limit int) ([]*tokenDomain.Token, error)
	// Revoke marks a token as revoked. Revoking an already revoked token is
	// a no-op and returns the token unchanged.
	Revoke(ctx context.Context, tokenID uuid.UUID) (*tokenDomain.Token, error)
	// Authorize validates a plain credential and evaluates the access request
	// against the token's restrictions.
	Authorize(ctx context.Context, plainCredential string, request tokenDomain.AccessRequest) (*tokenDomain.Decision, error)
}
