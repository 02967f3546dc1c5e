package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/tokens/internal/database"
	apperrors "github.com/allisson/tokens/internal/errors"
	tokenDomain "github.com/allisson/tokens/internal/token/domain"
	tokenService "github.com/allisson/tokens/internal/token/service"
	"github.com/allisson/tokens/internal/validation"
)

// tokenUseCase implements TokenUseCase for managing API tokens.
type tokenUseCase struct {
	txManager         database.TxManager
	tokenRepo         TokenRepository
	customerRepo      CustomerRepository
	credentialService tokenService.CredentialService
	cache             TokenCache
	cacheTTL          time.Duration
}

// Issue creates a new API token.
//
// This method:
//  1. Validates the category and owner email
//  2. Resolves the expiry selection into an absolute instant
//  3. Validates the requested grants against the customer directory
//  4. Generates the credential and stores its verifier hash
//  5. Returns the plain credential to the caller (only shown once)
//
// Validation happens before the credential is generated and before anything
// is persisted, so a failed issuance leaves no trace in the registry.
func (t *tokenUseCase) Issue(
	ctx context.Context,
	input *tokenDomain.IssueTokenInput,
) (*tokenDomain.IssueTokenOutput, error) {
	if !tokenDomain.IsValidCategory(input.Category) {
		return nil, apperrors.Wrapf(tokenDomain.ErrInvalidCategory, "category %q", input.Category)
	}

	if !validation.IsValidEmail(input.OwnerEmail) {
		return nil, tokenDomain.ErrInvalidEmail
	}

	now := time.Now().UTC()

	expiresAt, err := input.Expiry.Resolve(now)
	if err != nil {
		return nil, err
	}

	scope, err := buildScope(ctx, t.customerRepo, input.Grants)
	if err != nil {
		return nil, err
	}

	plainCredential, verifierHash, err := t.credentialService.GenerateCredential()
	if err != nil {
		return nil, err
	}

	token := &tokenDomain.Token{
		ID:             uuid.Must(uuid.NewV7()),
		ApplicationID:  input.ApplicationID,
		Category:       input.Category,
		OwnerEmail:     input.OwnerEmail,
		VerifierHash:   verifierHash,
		AllowedIPs:     ParseStringList(input.AllowedIPs),
		AllowedEmails:  ParseStringList(input.AllowedEmails),
		AllowedDomains: ParseStringList(input.AllowedDomains),
		Scope:          scope,
		ExpiresAt:      expiresAt,
		CreatedBy:      input.CreatedBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := t.tokenRepo.Create(ctx, token); err != nil {
		return nil, err
	}

	return &tokenDomain.IssueTokenOutput{
		Token:      token,
		PlainToken: plainCredential,
	}, nil
}

// Get retrieves a token by ID.
func (t *tokenUseCase) Get(ctx context.Context, tokenID uuid.UUID) (*tokenDomain.Token, error) {
	return t.tokenRepo.Get(ctx, tokenID)
}

// List retrieves tokens ordered by creation time, newest first.
func (t *tokenUseCase) List(ctx context.Context, offset, limit int) ([]*tokenDomain.Token, error) {
	return t.tokenRepo.List(ctx, offset, limit)
}

// Revoke marks a token as revoked.
//
// Revocation is one-way: an already revoked token is returned unchanged,
// without refreshing its UpdatedAt timestamp. The transition is delegated to
// the repository as a single conditional write, so concurrent revocations of
// the same token converge on one state change. The cached entry for the
// token's verifier hash is dropped so revocation takes effect immediately
// on the authorize path.
func (t *tokenUseCase) Revoke(ctx context.Context, tokenID uuid.UUID) (*tokenDomain.Token, error) {
	var token *tokenDomain.Token
	var revokedNow bool

	err := t.withTx(ctx, func(txCtx context.Context) error {
		var err error
		token, revokedNow, err = t.tokenRepo.Revoke(txCtx, tokenID, time.Now().UTC())
		return err
	})
	if err != nil {
		return nil, err
	}

	if revokedNow && t.cache != nil {
		t.cache.Delete(ctx, token.VerifierHash)
	}

	return token, nil
}

// withTx runs fn in a transaction when a transaction manager is available.
// The in-memory backend has no transaction manager and runs fn directly.
func (t *tokenUseCase) withTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if t.txManager == nil {
		return fn(ctx)
	}
	return t.txManager.WithTx(ctx, fn)
}

// Authorize validates a plain credential and evaluates the access request.
//
// The credential is hashed and looked up first in the cache, then in the
// repository. An unknown credential yields ErrInvalidToken; a known one is
// evaluated against the token's restrictions and the result carries the
// first failing check, if any.
func (t *tokenUseCase) Authorize(
	ctx context.Context,
	plainCredential string,
	request tokenDomain.AccessRequest,
) (*tokenDomain.Decision, error) {
	verifierHash := t.credentialService.HashCredential(plainCredential)

	token, cached := t.cachedToken(ctx, verifierHash)
	if !cached {
		var err error
		token, err = t.tokenRepo.GetByVerifierHash(ctx, verifierHash)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrNotFound) {
				return nil, tokenDomain.ErrInvalidToken
			}
			return nil, err
		}
		t.cacheToken(ctx, verifierHash, token)
	}

	decision := token.Authorize(request, time.Now().UTC())
	return &decision, nil
}

func (t *tokenUseCase) cachedToken(ctx context.Context, verifierHash string) (*tokenDomain.Token, bool) {
	if t.cache == nil {
		return nil, false
	}
	return t.cache.Get(ctx, verifierHash)
}

// cacheToken stores a token for its verifier hash, capping the TTL so a
// cached entry never outlives the token's expiry.
func (t *tokenUseCase) cacheToken(ctx context.Context, verifierHash string, token *tokenDomain.Token) {
	if t.cache == nil {
		return
	}

	ttl := t.cacheTTL
	if token.ExpiresAt != nil {
		remaining := time.Until(*token.ExpiresAt)
		if remaining <= 0 {
			return
		}
		if remaining < ttl {
			ttl = remaining
		}
	}

	t.cache.Set(ctx, verifierHash, token, ttl)
}

// NewTokenUseCase creates a new TokenUseCase instance. The transaction
// manager and the cache are optional: a nil transaction manager runs writes
// without transactions and a nil cache makes the authorize path always hit
// the repository.
func NewTokenUseCase(
	txManager database.TxManager,
	tokenRepo TokenRepository,
	customerRepo CustomerRepository,
	credentialService tokenService.CredentialService,
	cache TokenCache,
	cacheTTL time.Duration,
) TokenUseCase {
	return &tokenUseCase{
		txManager:         txManager,
		tokenRepo:         tokenRepo,
		customerRepo:      customerRepo,
		credentialService: credentialService,
		cache:             cache,
		cacheTTL:          cacheTTL,
	}
}
