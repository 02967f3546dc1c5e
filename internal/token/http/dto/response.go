package dto

import (
	"time"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// TokenResponse represents a token in API responses. The credential itself
// is never included; only its derived status and metadata are exposed.
type TokenResponse struct {
	ID             string                   `json:"id"`
	ApplicationID  int64                    `json:"application_id"`
	Category       string                   `json:"category"`
	OwnerEmail     string                   `json:"owner_email"`
	Status         string                   `json:"status"`
	AllowedIPs     []string                 `json:"allowed_ips,omitempty"`
	AllowedEmails  []string                 `json:"allowed_emails,omitempty"`
	AllowedDomains []string                 `json:"allowed_domains,omitempty"`
	Scope          []tokenDomain.ScopeGrant `json:"scope"`
	ExpiresAt      *time.Time               `json:"expires_at,omitempty"`
	CreatedBy      string                   `json:"created_by"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// MapTokenToResponse converts a domain token to an API response, deriving
// the status at the given instant.
func MapTokenToResponse(token *tokenDomain.Token, now time.Time) TokenResponse {
	return TokenResponse{
		ID:             token.ID.String(),
		ApplicationID:  token.ApplicationID,
		Category:       token.Category,
		OwnerEmail:     token.OwnerEmail,
		Status:         string(token.Status(now)),
		AllowedIPs:     token.AllowedIPs,
		AllowedEmails:  token.AllowedEmails,
		AllowedDomains: token.AllowedDomains,
		Scope:          token.Scope,
		ExpiresAt:      token.ExpiresAt,
		CreatedBy:      token.CreatedBy,
		CreatedAt:      token.CreatedAt,
		UpdatedAt:      token.UpdatedAt,
	}
}

// IssueTokenResponse contains the result of issuing a token.
// SECURITY: The token credential is only returned once and must be saved securely.
type IssueTokenResponse struct {
	Token string        `json:"token"`
	Data  TokenResponse `json:"data"`
}

// ListTokensResponse represents a paginated list of tokens in API responses,
// ordered by creation time, newest first.
type ListTokensResponse struct {
	Data []TokenResponse `json:"data"`
}

// MapTokensToListResponse converts a slice of domain tokens to a list response.
func MapTokensToListResponse(tokens []*tokenDomain.Token, now time.Time) ListTokensResponse {
	data := make([]TokenResponse, 0, len(tokens))
	for _, token := range tokens {
		data = append(data, MapTokenToResponse(token, now))
	}
	return ListTokensResponse{Data: data}
}

// AuthorizeResponse contains the result of an access authorization check.
type AuthorizeResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}
