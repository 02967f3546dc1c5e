// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
	customValidation "github.com/allisson/tokens/internal/validation"
)

// IssueTokenRequest contains the parameters for issuing a new API token.
//
// Expiry accepts a number of days ("30"), an absolute date ("2026-12-31")
// or "never". Allow-lists are comma-separated strings; an empty string
// leaves the dimension unrestricted. Grants maps customer codes to endpoint
// lists; grants with an empty endpoint list are dropped, and at least one
// grant must survive.
type IssueTokenRequest struct {
	ApplicationID  int64               `json:"application_id"`
	Category       string              `json:"category"`
	OwnerEmail     string              `json:"owner_email"`
	Expiry         string              `json:"expiry"`
	AllowedIPs     string              `json:"allowed_ips"`
	AllowedEmails  string              `json:"allowed_emails"`
	AllowedDomains string              `json:"allowed_domains"`
	Grants         map[string][]string `json:"grants"`
	CreatedBy      string              `json:"created_by"`
}

// Validate checks if the issue token request is valid.
func (r *IssueTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ApplicationID,
			validation.Required,
			validation.Min(int64(1)),
		),
		validation.Field(&r.Category,
			validation.Required,
			validation.In(
				string(tokenDomain.CategoryAirline),
				string(tokenDomain.CategoryConsultant),
				string(tokenDomain.CategoryOther),
			),
		),
		validation.Field(&r.OwnerEmail,
			validation.Required,
			customValidation.Email,
		),
		validation.Field(&r.Expiry,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Grants,
			validation.Required,
			validation.Length(1, 0), // at least one customer grant
		),
	)
}

// AuthorizeRequest contains the parameters for an access authorization check.
type AuthorizeRequest struct {
	Token        string `json:"token"`
	CallerIP     string `json:"caller_ip"`
	CallerEmail  string `json:"caller_email"`
	CallerDomain string `json:"caller_domain"`
	CustomerCode string `json:"customer_code"`
	Endpoint     string `json:"endpoint"`
}

// Validate checks if the authorize request is valid.
func (r *AuthorizeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.CustomerCode,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Endpoint,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}
