package usecase

import (
	"context"
	"sort"
	"strings"

	customerDomain "github.com/allisson/tokens/internal/customer/domain"
	"github.com/allisson/tokens/internal/errors"
	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// ParseStringList splits a comma-separated allow-list into distinct entries.
// Entries are trimmed, empty entries are dropped and duplicates are removed
// keeping the first occurrence, so equal inputs always yield equal lists.
func ParseStringList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var entries []string
	for _, part := range strings.Split(raw, ",") {
		entry := strings.TrimSpace(part)
		if entry == "" {
			continue
		}
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		entries = append(entries, entry)
	}

	return entries
}

// dedupeStrings removes duplicates from a list keeping the first occurrence.
// Entries are trimmed and empty entries dropped.
func dedupeStrings(values []string) []string {
	seen := make(map[string]struct{})
	var entries []string
	for _, value := range values {
		entry := strings.TrimSpace(value)
		if entry == "" {
			continue
		}
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		entries = append(entries, entry)
	}
	return entries
}

// buildScope validates the requested grants against the customer directory
// and assembles them into scope grants ordered by customer code.
//
// Grants with an empty endpoint set are dropped; a token granting zero
// access is meaningless, so if nothing remains the build fails with
// ErrEmptyScope. Endpoint values are treated as opaque paths, so a token
// can be issued ahead of a customer onboarding a new endpoint.
func buildScope(
	ctx context.Context,
	customerRepo CustomerRepository,
	grants map[string][]string,
) ([]tokenDomain.ScopeGrant, error) {
	codes := make([]string, 0, len(grants))
	endpoints := make(map[string][]string, len(grants))
	for code, requested := range grants {
		entries := dedupeStrings(requested)
		if len(entries) == 0 {
			continue
		}
		codes = append(codes, code)
		endpoints[code] = entries
	}
	if len(codes) == 0 {
		return nil, tokenDomain.ErrEmptyScope
	}
	sort.Strings(codes)

	scope := make([]tokenDomain.ScopeGrant, 0, len(codes))
	for _, code := range codes {
		customer, err := customerRepo.Get(ctx, code)
		if err != nil {
			if errors.Is(err, customerDomain.ErrCustomerNotFound) {
				return nil, errors.Wrapf(tokenDomain.ErrUnknownCustomer, "customer %q not in directory", code)
			}
			return nil, err
		}

		scope = append(scope, tokenDomain.ScopeGrant{
			CustomerCode:     customer.Code,
			CustomerName:     customer.Name,
			AllowedEndpoints: endpoints[code],
		})
	}

	return scope, nil
}
