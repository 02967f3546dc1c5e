package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/tokens/internal/metrics"
	tokenDomain "github.com/allisson/tokens/internal/token/domain"
	"github.com/allisson/tokens/internal/token/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

func TestNewTokenUseCaseWithMetrics(t *testing.T) {
	mockUseCase := &mocks.MockTokenUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	decorator := NewTokenUseCaseWithMetrics(mockUseCase, mockMetrics)

	assert.NotNil(t, decorator)
	assert.Implements(t, (*TokenUseCase)(nil), decorator)
}

func TestMetricsDecorator_Issue(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockUseCase := &mocks.MockTokenUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		input := testIssueInput()
		output := &tokenDomain.IssueTokenOutput{PlainToken: "nut_live_plain"}
		mockUseCase.On("Issue", mock.Anything, input).Return(output, nil)
		mockMetrics.On("RecordOperation", mock.Anything, "token", "token_issue", "success").Return()
		mockMetrics.On("RecordDuration", mock.Anything, "token", "token_issue", mock.Anything, "success").Return()

		decorator := NewTokenUseCaseWithMetrics(mockUseCase, mockMetrics)
		got, err := decorator.Issue(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, output, got)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		mockUseCase := &mocks.MockTokenUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		input := testIssueInput()
		mockUseCase.On("Issue", mock.Anything, input).Return(nil, errors.New("boom"))
		mockMetrics.On("RecordOperation", mock.Anything, "token", "token_issue", "error").Return()
		mockMetrics.On("RecordDuration", mock.Anything, "token", "token_issue", mock.Anything, "error").Return()

		decorator := NewTokenUseCaseWithMetrics(mockUseCase, mockMetrics)
		got, err := decorator.Issue(ctx, input)

		assert.Error(t, err)
		assert.Nil(t, got)
		mockMetrics.AssertExpectations(t)
	})
}

func TestMetricsDecorator_Revoke(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockUseCase := &mocks.MockTokenUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		tokenID := uuid.Must(uuid.NewV7())
		token := &tokenDomain.Token{ID: tokenID, Revoked: true}
		mockUseCase.On("Revoke", mock.Anything, tokenID).Return(token, nil)
		mockMetrics.On("RecordOperation", mock.Anything, "token", "token_revoke", "success").Return()
		mockMetrics.On("RecordDuration", mock.Anything, "token", "token_revoke", mock.Anything, "success").Return()

		decorator := NewTokenUseCaseWithMetrics(mockUseCase, mockMetrics)
		got, err := decorator.Revoke(ctx, tokenID)

		assert.NoError(t, err)
		assert.Equal(t, token, got)
		mockMetrics.AssertExpectations(t)
	})
}

func TestMetricsDecorator_Authorize(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockUseCase := &mocks.MockTokenUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		request := tokenDomain.AccessRequest{CustomerCode: "CUST001", Endpoint: "/get_balance"}
		decision := &tokenDomain.Decision{Allowed: true}
		mockUseCase.On("Authorize", mock.Anything, "nut_live_plain", request).Return(decision, nil)
		mockMetrics.On("RecordOperation", mock.Anything, "token", "token_authorize", "success").Return()
		mockMetrics.On("RecordDuration", mock.Anything, "token", "token_authorize", mock.Anything, "success").Return()

		decorator := NewTokenUseCaseWithMetrics(mockUseCase, mockMetrics)
		got, err := decorator.Authorize(ctx, "nut_live_plain", request)

		assert.NoError(t, err)
		assert.True(t, got.Allowed)
		mockMetrics.AssertExpectations(t)
	})
}
