// Package usecase implements business logic for the customer directory.
package usecase

import (
	"context"

	customerDomain "github.com/allisson/tokens/internal/customer/domain"
)

// CustomerRepository defines the interface for customer directory persistence.
type CustomerRepository interface {
	Get(ctx context.Context, code string) (*customerDomain.Customer, error)
	List(ctx context.Context) ([]*customerDomain.Customer, error)
}

// CustomerUseCase defines the interface for customer directory operations.
type CustomerUseCase interface {
	Get(ctx context.Context, code string) (*customerDomain.Customer, error)
	List(ctx context.Context) ([]*customerDomain.Customer, error)
}
