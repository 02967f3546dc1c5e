package domain

import (
	"github.com/allisson/tokens/internal/errors"
)

// Token lifecycle and scope validation errors.
var (
	// ErrTokenNotFound indicates a token with the specified ID was not found.
	ErrTokenNotFound = errors.Wrap(errors.ErrNotFound, "token not found")

	// ErrInvalidEmail indicates the owner email does not match the basic
	// local@domain syntactic pattern.
	ErrInvalidEmail = errors.Wrap(errors.ErrInvalidInput, "invalid owner email")

	// ErrInvalidExpiry indicates the expiry selection is unusable: relative
	// days below one, or an unparseable absolute date.
	ErrInvalidExpiry = errors.Wrap(errors.ErrInvalidInput, "invalid expiry selection")

	// ErrEmptyScope indicates the requested grants contain no customer with a
	// non-empty endpoint set. A token granting zero access is never persisted.
	ErrEmptyScope = errors.Wrap(errors.ErrInvalidInput, "scope must grant at least one endpoint")

	// ErrUnknownCustomer indicates a requested grant references a customer
	// code absent from the customer directory.
	ErrUnknownCustomer = errors.Wrap(errors.ErrInvalidInput, "unknown customer in scope")

	// ErrInvalidCategory indicates the category is not one of the known set.
	ErrInvalidCategory = errors.Wrap(errors.ErrInvalidInput, "invalid category")

	// ErrEntropyUnavailable indicates the secure random source could not be
	// read. The issuance must abort; no weaker source is ever substituted.
	ErrEntropyUnavailable = errors.Wrap(errors.ErrUnavailable, "entropy source unavailable")

	// ErrInvalidToken indicates the presented credential does not match any
	// issued token. Kept generic to avoid verifier enumeration.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")
)
