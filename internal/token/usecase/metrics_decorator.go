package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/tokens/internal/metrics"
	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Issue records metrics for token issuance operations.
func (t *tokenUseCaseWithMetrics) Issue(
	ctx context.Context,
	input *tokenDomain.IssueTokenInput,
) (*tokenDomain.IssueTokenOutput, error) {
	start := time.Now()
	output, err := t.next.Issue(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "token_issue", status)
	t.metrics.RecordDuration(ctx, "token", "token_issue", time.Since(start), status)

	return output, err
}

// Get records metrics for token retrieval operations.
func (t *tokenUseCaseWithMetrics) Get(ctx context.Context, tokenID uuid.UUID) (*tokenDomain.Token, error) {
	start := time.Now()
	token, err := t.next.Get(ctx, tokenID)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "token_get", status)
	t.metrics.RecordDuration(ctx, "token", "token_get", time.Since(start), status)

	return token, err
}

// List records metrics for token listing operations.
func (t *tokenUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*tokenDomain.Token, error) {
	start := time.Now()
	tokens, err := t.next.List(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "token_list", status)
	t.metrics.RecordDuration(ctx, "token", "token_list", time.Since(start), status)

	return tokens, err
}

// Revoke records metrics for token revocation operations.
func (t *tokenUseCaseWithMetrics) Revoke(ctx context.Context, tokenID uuid.UUID) (*tokenDomain.Token, error) {
	start := time.Now()
	token, err := t.next.Revoke(ctx, tokenID)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "token_revoke", status)
	t.metrics.RecordDuration(ctx, "token", "token_revoke", time.Since(start), status)

	return token, err
}

// Authorize records metrics for access authorization operations.
func (t *tokenUseCaseWithMetrics) Authorize(
	ctx context.Context,
	plainCredential string,
	request tokenDomain.AccessRequest,
) (*tokenDomain.Decision, error) {
	start := time.Now()
	decision, err := t.next.Authorize(ctx, plainCredential, request)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "token_authorize", status)
	t.metrics.RecordDuration(ctx, "token", "token_authorize", time.Since(start), status)

	return decision, err
}
