// Package mocks provides mock implementations for testing customer use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	customerDomain "github.com/allisson/tokens/internal/customer/domain"
)

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

// List mocks the List method of CustomerRepository.
func (m *MockCustomerRepository) List(ctx context.Context) ([]*customerDomain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customerDomain.Customer), args.Error(1)
}

// MockCustomerUseCase is a mock implementation of CustomerUseCase for testing.
type MockCustomerUseCase struct {
	mock.Mock
}

// Get mocks the Get method of CustomerUseCase.
func (m *MockCustomerUseCase) Get(
	ctx context.Context,
	code string,
) (*customerDomain.Customer, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customerDomain.Customer), args.Error(1)
}

// List mocks the List method of CustomerUseCase.
func (m *MockCustomerUseCase) List(ctx context.Context) ([]*customerDomain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customerDomain.Customer), args.Error(1)
}
