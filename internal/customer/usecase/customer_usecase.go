package usecase

import (
	"context"

	customerDomain "github.com/allisson/tokens/internal/customer/domain"
)

// customerUseCase implements CustomerUseCase over the directory repository.
type customerUseCase struct {
	customerRepo CustomerRepository
}

// Get retrieves a customer by code.
func (c *customerUseCase) Get(ctx context.Context, code string) (*customerDomain.Customer, error) {
	return c.customerRepo.Get(ctx, code)
}

// List retrieves all customers in the directory.
func (c *customerUseCase) List(ctx context.Context) ([]*customerDomain.Customer, error) {
	return c.customerRepo.List(ctx)
}

// NewCustomerUseCase creates a new CustomerUseCase instance.
func NewCustomerUseCase(customerRepo CustomerRepository) CustomerUseCase {
	return &customerUseCase{customerRepo: customerRepo}
}
