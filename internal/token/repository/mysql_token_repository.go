package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/tokens/internal/database"
	apperrors "github.com/allisson/tokens/internal/errors"
	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// MySQLTokenRepository implements Token persistence for MySQL.
type MySQLTokenRepository struct {
	db *sql.DB
}

// Create inserts a new token into the MySQL database.
func (m *MySQLTokenRepository) Create(ctx context.Context, token *tokenDomain.Token) error {
	querier := database.GetTx(ctx, m.db)

	encoded, err := marshalTokenJSON(token)
	if err != nil {
		return err
	}

	query := `INSERT INTO tokens (` + tokenColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

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

// Update modifies an existing token in the MySQL database.
func (m *MySQLTokenRepository) Update(ctx context.Context, token *tokenDomain.Token) error {
	querier := database.GetTx(ctx, m.db)

	encoded, err := marshalTokenJSON(token)
	if err != nil {
		return err
	}

	query := `UPDATE tokens
			  SET allowed_ips = ?,
			  	  allowed_emails = ?,
				  allowed_domains = ?,
				  scope = ?,
				  expires_at = ?,
				  revoked = ?,
				  updated_at = ?
			  WHERE id = ?`

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
func (m *MySQLTokenRepository) Revoke(
	ctx context.Context,
	tokenID uuid.UUID,
	revokedAt time.Time,
) (*tokenDomain.Token, bool, error) {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE tokens
			  SET revoked = TRUE, updated_at = ?
			  WHERE id = ? AND NOT revoked`

	result, err := querier.ExecContext(ctx, query, revokedAt, tokenID)
	if err != nil {
		return nil, false, apperrors.Wrap(err, "failed to revoke token")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, false, apperrors.Wrap(err, "failed to revoke token")
	}

	token, err := m.Get(ctx, tokenID)
	if err != nil {
		return nil, false, err
	}

	return token, affected > 0, nil
}

// Get retrieves a token by ID from the MySQL database.
func (m *MySQLTokenRepository) Get(
	ctx context.Context,
	tokenID uuid.UUID,
) (*tokenDomain.Token, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + tokenColumns + ` FROM tokens WHERE id = ?`

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
func (m *MySQLTokenRepository) GetByVerifierHash(
	ctx context.Context,
	verifierHash string,
) (*tokenDomain.Token, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + tokenColumns + ` FROM tokens WHERE verifier_hash = ?`

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
func (m *MySQLTokenRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*tokenDomain.Token, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + tokenColumns + ` FROM tokens
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
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

// NewMySQLTokenRepository creates a new MySQL Token repository.
func NewMySQLTokenRepository(db *sql.DB) *MySQLTokenRepository {
	return &MySQLTokenRepository{db: db}
}
