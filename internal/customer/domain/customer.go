// Package domain defines the customer directory entities.
//
// Customers are the partners a token can be scoped to. Each customer
// exposes a fixed set of integration endpoints that issued tokens may be
// restricted to.
package domain

import (
	"time"

	apperrors "github.com/allisson/tokens/internal/errors"
)

// Customer represents a partner in the customer directory.
type Customer struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Endpoints []string  `json:"endpoints"`
	CreatedAt time.Time `json:"created_at"`
}

// Domain errors for customer operations.
var (
	// ErrCustomerNotFound indicates the requested customer does not exist.
	ErrCustomerNotFound = apperrors.Wrap(apperrors.ErrNotFound, "customer not found")
)
