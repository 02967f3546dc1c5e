// Package repository implements data persistence for API tokens.
//
// Provides PostgreSQL, MySQL and in-memory implementations with transaction
// support via database.GetTx(). Allow-lists and scope grants are stored as
// JSON columns in the SQL backends.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/tokens/internal/database"
	apperrors "github.com/allisson/tokens/internal/errors"
	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// PostgreSQLTokenRepository implements Token persistence for PostgreSQL.
type PostgreSQLTokenRepository struct {
	db *sql.DB
}

// tokenColumns is the column list shared by every token query.
const tokenColumns = `id, application_id, category, owner_email, verifier_hash,
	allowed_ips, allowed_emails, allowed_domains, scope,
	expires_at, revoked, created_by, created_at, updated_at`

// tokenJSON holds the JSON-encoded columns of a token row.
type tokenJSON struct {
	allowedIPs     []byte
	allowedEmails  []byte
	allowedDomains []byte
	scope          []byte
}

// marshalTokenJSON encodes the token's list fields for storage.
func marshalTokenJSON(token *tokenDomain.Token) (*tokenJSON, error) {
	allowedIPs, err := json.Marshal(token.AllowedIPs)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal allowed ips")
	}
	allowedEmails, err := json.Marshal(token.AllowedEmails)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal allowed emails")
	}
	allowedDomains, err := json.Marshal(token.AllowedDomains)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal allowed domains")
	}
	scope, err := json.Marshal(token.Scope)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal scope")
	}
	return &tokenJSON{
		allowedIPs:     allowedIPs,
		allowedEmails:  allowedEmails,
		allowedDomains: allowedDomains,
		scope:          scope,
	}, nil
}

// scanToken scans a token row, decoding the JSON columns.
func scanToken(row interface{ Scan(dest ...any) error }) (*tokenDomain.Token, error) {
	var token tokenDomain.Token
	var allowedIPs, allowedEmails, allowedDomains, scope []byte
	var expiresAt sql.NullTime

	err := row.Scan(
		&token.ID,
		&token.ApplicationID,
		&token.Category,
		&token.OwnerEmail,
		&token.VerifierHash,
		&allowedIPs,
		&allowedEmails,
		&allowedDomains,
		&scope,
		&expiresAt,
		&token.Revoked,
		&token.CreatedBy,
		&token.CreatedAt,
		&token.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if expiresAt.Valid {
		t := expiresAt.Time
		token.ExpiresAt = &t
	}

	if err := json.Unmarshal(allowedIPs, &token.AllowedIPs); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal allowed ips")
	}
	if err := json.Unmarshal(allowedEmails, &token.AllowedEmails); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal allowed emails")
	}
	if err := json.Unmarshal(allowedDomains, &token.AllowedDomains); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal allowed domains")
	}
	if err := json.Unmarshal(scope, &token.Scope); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal scope")
	}

	return &token, nil
}

// Create inserts a new token into the PostgreSQL database.
func (p *PostgreSQLTokenRepository) Create(ctx context.Context, token *tokenDomain.Token) error {
	querier := database.GetTx(ctx, p.db)

	encoded, err := marshalTokenJSON(token)
	if err != nil {
		return err
	}

	query := `INSERT INTO tokens (` + tokenColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err = querier.ExecContext(
		ctx,
		query,
		token.ID,
		token.ApplicationID,
		token.Category,
		token.OwnerEmail,
		token.VerifierHash,
		encoded.allowedIPs,
		encoded.allowedEmails,
		encoded.allowedDomains,
		encoded.scope,
		token.ExpiresAt,
		token.Revoked,
		token.CreatedBy,
		token.CreatedAt,
		token.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create token")
	}
	return nil
}

// Update modifies an existing token in the PostgreSQL database.
func (p *PostgreSQLTokenRepository) Update(ctx context.Context, token *tokenDomain.Token) error {
	querier := database.GetTx(ctx, p.db)

	encoded, err := marshalTokenJSON(token)
	if err != nil {
		return err
	}

	query := `UPDATE tokens
			  SET allowed_ips = $1,
			  	  allowed_emails = $2,
				  allowed_domains = $3,
				  scope = $4,
				  expires_at = $5,
				  revoked = $6,
				  updated_at = $7
			  WHERE id = $8`

	_, err = querier.ExecContext(
		ctx,
		query,
		encoded.allowedIPs,
		encoded.allowedEmails,
		encoded.allowedDomains,
		encoded.scope,
		token.ExpiresAt,
		token.Revoked,
		token.UpdatedAt,
		token.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update token")
	}

	return nil
}

// Revoke marks a token as revoked. The write is conditional on the current
// revoked state, so concurrent revocations of the same token perform exactly
// one update and the revocation timestamp is written once.
func (p *PostgreSQLTokenRepository) Revoke(
	ctx context.Context,
	tokenID uuid.UUID,
	revokedAt time.Time,
) (*tokenDomain.Token, bool, error) {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE tokens
			  SET revoked = TRUE, updated_at = $1
			  WHERE id = $2 AND NOT revoked`

	result, err := querier.ExecContext(ctx, query, revokedAt, tokenID)
	if err != nil {
		return nil, false, apperrors.Wrap(err, "failed to revoke token")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, false, apperrors.Wrap(err, "failed to revoke token")
	}

	token, err := p.Get(ctx, tokenID)
	if err != nil {
		return nil, false, err
	}

	return token, affected > 0, nil
}

// Get retrieves a token by ID from the PostgreSQL database.
func (p *PostgreSQLTokenRepository) Get(
	ctx context.Context,
	tokenID uuid.UUID,
) (*tokenDomain.Token, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + tokenColumns + ` FROM tokens WHERE id = $1`

	token, err := scanToken(querier.QueryRowContext(ctx, query, tokenID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tokenDomain.ErrTokenNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get token")
	}

	return token, nil
}

// GetByVerifierHash retrieves a token by its verifier hash.
func (p *PostgreSQLTokenRepository) GetByVerifierHash(
	ctx context.Context,
	verifierHash string,
) (*tokenDomain.Token, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + tokenColumns + ` FROM tokens WHERE verifier_hash = $1`

	token, err := scanToken(querier.QueryRowContext(ctx, query, verifierHash))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tokenDomain.ErrTokenNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get token by verifier hash")
	}

	return token, nil
}

// List retrieves tokens ordered by creation time, newest first.
func (p *PostgreSQLTokenRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*tokenDomain.Token, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + tokenColumns + ` FROM tokens
			  ORDER BY created_at DESC
			  OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list tokens")
	}
	defer func() { _ = rows.Close() }()

	var tokens []*tokenDomain.Token
	for rows.Next() {
		token, err := scanToken(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan token")
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate tokens")
	}

	return tokens, nil
}

// NewPostgreSQLTokenRepository creates a new PostgreSQL Token repository.
func NewPostgreSQLTokenRepository(db *sql.DB) *PostgreSQLTokenRepository {
	return &PostgreSQLTokenRepository{db: db}
}
