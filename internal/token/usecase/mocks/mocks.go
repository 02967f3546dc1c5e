// Package mocks provides mock implementations for testing token use cases.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	customerDomain "github.com/allisson/tokens/internal/customer/domain"
	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// MockTokenRepository is a mock implementation of TokenRepository for testing.
type MockTokenRepository struct {
	mock.Mock
}

// Create mocks the Create method of TokenRepository.
func (m *MockTokenRepository) Create(ctx context.Context, token *tokenDomain.Token) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// Update mocks the Update method of TokenRepository.
func (m *MockTokenRepository) Update(ctx context.Context, token *tokenDomain.Token) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// Get mocks the Get method of TokenRepository.
func (m *MockTokenRepository) Get(ctx context.Context, tokenID uuid.UUID) (*tokenDomain.Token, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.Token), args.Error(1)
}

// GetByVerifierHash mocks the GetByVerifierHash method of TokenRepository.
func (m *MockTokenRepository) GetByVerifierHash(
	ctx context.Context,
	verifierHash string,
) (*tokenDomain.Token, error) {
	args := m.Called(ctx, verifierHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.Token), args.Error(1)
}

// List mocks the List method of TokenRepository.
func (m *MockTokenRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*tokenDomain.Token, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tokenDomain.Token), args.Error(1)
}

// Revoke mocks the Revoke method of TokenRepository.
func (m *MockTokenRepository) Revoke(
	ctx context.Context,
	tokenID uuid.UUID,
	revokedAt time.Time,
) (*tokenDomain.Token, bool, error) {
	args := m.Called(ctx, tokenID, revokedAt)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*tokenDomain.Token), args.Bool(1), args.Error(2)
}

// MockCustomerRepository is a mock implementation of CustomerRepository for testing.
type MockCustomerRepository struct {
	mock.Mock
}

// Get mocks the Get method of CustomerRepository.
func (m *MockCustomerRepository) Get(
	ctx context.Context,
	code string,
) (*customerDomain.Customer, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customerDomain.Customer), args.Error(1)
}

// MockTokenCache is a mock implementation of TokenCache for testing.
type MockTokenCache struct {
	mock.Mock
}

// Get mocks the Get method of TokenCache.
func (m *MockTokenCache) Get(ctx context.Context, verifierHash string) (*tokenDomain.Token, bool) {
	args := m.Called(ctx, verifierHash)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*tokenDomain.Token), args.Bool(1)
}

// Set mocks the Set method of TokenCache.
func (m *MockTokenCache) Set(
	ctx context.Context,
	verifierHash string,
	token *tokenDomain.Token,
	ttl time.Duration,
) {
	m.Called(ctx, verifierHash, token, ttl)
}

// Delete mocks the Delete method of TokenCache.
func (m *MockTokenCache) Delete(ctx context.Context, verifierHash string) {
	m.Called(ctx, verifierHash)
}

// MockTokenUseCase is a mock implementation of TokenUseCase for testing.
type MockTokenUseCase struct {
	mock.Mock
}

// Issue mocks the Issue method of TokenUseCase.
func (m *MockTokenUseCase) Issue(
	ctx context.Context,
	input *tokenDomain.IssueTokenInput,
) (*tokenDomain.IssueTokenOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.IssueTokenOutput), args.Error(1)
}

// Get mocks the Get method of TokenUseCase.
func (m *MockTokenUseCase) Get(ctx context.Context, tokenID uuid.UUID) (*tokenDomain.Token, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.Token), args.Error(1)
}

// List mocks the List method of TokenUseCase.
func (m *MockTokenUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*tokenDomain.Token, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tokenDomain.Token), args.Error(1)
}

// Revoke mocks the Revoke method of TokenUseCase.
func (m *MockTokenUseCase) Revoke(ctx context.Context, tokenID uuid.UUID) (*tokenDomain.Token, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.Token), args.Error(1)
}

// Authorize mocks the Authorize method of TokenUseCase.
func (m *MockTokenUseCase) Authorize(
	ctx context.Context,
	plainCredential string,
	request tokenDomain.AccessRequest,
) (*tokenDomain.Decision, error) {
	args := m.Called(ctx, plainCredential, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.Decision), args.Error(1)
}

// MockCredentialService is a mock implementation of CredentialService for testing.
type MockCredentialService struct {
	mock.Mock
}

// GenerateCredential mocks the GenerateCredential method of CredentialService.
func (m *MockCredentialService) GenerateCredential() (string, string, error) {
	args := m.Called()
	return args.String(0), args.String(1), args.Error(2)
}

// HashCredential mocks the HashCredential method of CredentialService.
func (m *MockCredentialService) HashCredential(plainCredential string) string {
	args := m.Called(plainCredential)
	return args.String(0)
}
