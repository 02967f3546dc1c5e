// Package domain defines the scoped API token model and its business logic.
//
// A token grants bounded access to a set of customer accounts and a set of
// endpoint names, optionally restricted by caller IP/CIDR, caller email, and
// caller domain. Tokens expire on a schedule chosen at issuance and can be
// revoked exactly once; revocation is logical, never physical.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the derived, non-stored classification of a token.
type Status string

// Token statuses. Revoked takes precedence over Expired.
const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
	StatusRevoked Status = "revoked"
)

// ScopeGrant relates one customer to the set of endpoint names the token may
// call for that customer. Endpoint sets across different customers are
// independent: an endpoint allowed for customer A is not implicitly allowed
// for customer B.
type ScopeGrant struct {
	CustomerCode     string   `json:"customer_code"`
	CustomerName     string   `json:"customer_name"`
	AllowedEndpoints []string `json:"allowed_endpoints"`
}

// Token represents an issued scoped API credential. All fields except Revoked
// and UpdatedAt are immutable after creation. The raw secret is never part of
// the record; only its one-way VerifierHash is stored.
type Token struct {
	ID             uuid.UUID
	ApplicationID  int64
	Category       string
	OwnerEmail     string
	VerifierHash   string
	AllowedIPs     []string
	AllowedEmails  []string
	AllowedDomains []string
	Scope          []ScopeGrant
	ExpiresAt      *time.Time // nil means the token never expires
	Revoked        bool
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Status derives the token status at the given instant. Revocation dominates
// expiry: a revoked-and-expired token reports StatusRevoked. A token with no
// expiry instant is never StatusExpired.
func (t *Token) Status(now time.Time) Status {
	if t.Revoked {
		return StatusRevoked
	}
	if t.ExpiresAt != nil && !t.ExpiresAt.After(now) {
		return StatusExpired
	}
	return StatusActive
}

// Grant returns the scope grant for the given customer code, or nil if the
// customer is not in the token's scope. Customer codes are case-sensitive.
func (t *Token) Grant(customerCode string) *ScopeGrant {
	for i := range t.Scope {
		if t.Scope[i].CustomerCode == customerCode {
			return &t.Scope[i]
		}
	}
	return nil
}

// IssueTokenInput contains the parameters for issuing a new token. Allow-list
// fields are free text: comma-separated entries are trimmed and de-duplicated
// by the scope builder; an empty result means the dimension is unrestricted.
type IssueTokenInput struct {
	ApplicationID  int64
	Category       string
	OwnerEmail     string
	Expiry         ExpirySelection
	AllowedIPs     string
	AllowedEmails  string
	AllowedDomains string
	// Grants maps customer code to the requested endpoint names for that
	// customer. At least one customer with at least one endpoint is
	// required; grants with an empty endpoint set are dropped.
	Grants    map[string][]string
	CreatedBy string
}

// IssueTokenOutput contains the result of issuing a token.
// SECURITY: PlainToken is the only copy of the raw secret that will ever
// exist; it must be transmitted securely and is not retrievable afterward.
type IssueTokenOutput struct {
	Token      *Token
	PlainToken string
}
