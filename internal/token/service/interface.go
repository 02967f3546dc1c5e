// Package service provides technical services for credential generation.
//
// This package implements reusable services for API credential generation
// and hashing using cryptographically secure random generation.
package service

// CredentialService defines operations for API credential generation and hashing.
// Implementations must use cryptographically secure random generation and a
// deterministic hash suitable for credential lookup (e.g., SHA-256).
type CredentialService interface {
	// GenerateCredential creates a new cryptographically secure random credential.
	// Returns both the plain text credential (to be shared with the caller) and
	// the hashed verifier (to be stored in the database).
	//
	// The plain credential should be treated as sensitive data and only displayed
	// once during token issuance.
	GenerateCredential() (plainCredential string, verifierHash string, error error)

	// HashCredential hashes a plain text credential using SHA-256.
	// Used for credential validation by comparing hashes.
	HashCredential(plainCredential string) string
}
