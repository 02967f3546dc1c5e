package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

var tokenRowColumns = []string{
	"id", "application_id", "category", "owner_email", "verifier_hash",
	"allowed_ips", "allowed_emails", "allowed_domains", "scope",
	"expires_at", "revoked", "created_by", "created_at", "updated_at",
}

func testToken() *tokenDomain.Token {
	now := time.Now().UTC()
	expiresAt := now.AddDate(0, 0, 30)
	return &tokenDomain.Token{
		ID:            uuid.Must(uuid.NewV7()),
		ApplicationID: 1,
		Category:      string(tokenDomain.CategoryAirline),
		OwnerEmail:    "ops@abaair.com",
		VerifierHash:  "verifier-hash",
		AllowedIPs:    []string{"192.168.1.1"},
		Scope: []tokenDomain.ScopeGrant{
			{CustomerCode: "CUST001", CustomerName: "ABA Air", AllowedEndpoints: []string{"/get_balance"}},
		},
		ExpiresAt: &expiresAt,
		CreatedBy: "admin@nutraacs.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func tokenRow(token *tokenDomain.Token) *sqlmock.Rows {
	encoded, _ := marshalTokenJSON(token)
	return sqlmock.NewRows(tokenRowColumns).AddRow(
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
}

func TestPostgreSQLTokenRepository_Create(t *testing.T) {
	t.Run("Success_CreateToken", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("INSERT INTO tokens").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLTokenRepository(db)
		err = repo.Create(context.Background(), testToken())

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgreSQLTokenRepository_Get(t *testing.T) {
	t.Run("Success_GetToken", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		token := testToken()
		mock.ExpectQuery("SELECT (.+) FROM tokens WHERE id").
			WithArgs(token.ID).
			WillReturnRows(tokenRow(token))

		repo := NewPostgreSQLTokenRepository(db)
		got, err := repo.Get(context.Background(), token.ID)

		require.NoError(t, err)
		assert.Equal(t, token.ID, got.ID)
		assert.Equal(t, token.VerifierHash, got.VerifierHash)
		assert.Equal(t, token.AllowedIPs, got.AllowedIPs)
		assert.Equal(t, token.Scope, got.Scope)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_TokenNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		tokenID := uuid.Must(uuid.NewV7())
		mock.ExpectQuery("SELECT (.+) FROM tokens WHERE id").
			WithArgs(tokenID).
			WillReturnRows(sqlmock.NewRows(tokenRowColumns))

		repo := NewPostgreSQLTokenRepository(db)
		got, err := repo.Get(context.Background(), tokenID)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, tokenDomain.ErrTokenNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgreSQLTokenRepository_GetByVerifierHash(t *testing.T) {
	t.Run("Success_GetByVerifierHash", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		token := testToken()
		mock.ExpectQuery("SELECT (.+) FROM tokens WHERE verifier_hash").
			WithArgs("verifier-hash").
			WillReturnRows(tokenRow(token))

		repo := NewPostgreSQLTokenRepository(db)
		got, err := repo.GetByVerifierHash(context.Background(), "verifier-hash")

		require.NoError(t, err)
		assert.Equal(t, token.ID, got.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_UnknownHash", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM tokens WHERE verifier_hash").
			WithArgs("bogus-hash").
			WillReturnRows(sqlmock.NewRows(tokenRowColumns))

		repo := NewPostgreSQLTokenRepository(db)
		got, err := repo.GetByVerifierHash(context.Background(), "bogus-hash")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, tokenDomain.ErrTokenNotFound)
	})
}

func TestPostgreSQLTokenRepository_Update(t *testing.T) {
	t.Run("Success_UpdateToken", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		token := testToken()
		token.Revoked = true

		mock.ExpectExec("UPDATE tokens").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLTokenRepository(db)
		err = repo.Update(context.Background(), token)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgreSQLTokenRepository_Revoke(t *testing.T) {
	t.Run("Success_RevokeActiveToken", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		token := testToken()
		revokedAt := time.Now().UTC()
		revokedRow := testToken()
		revokedRow.ID = token.ID
		revokedRow.Revoked = true
		revokedRow.UpdatedAt = revokedAt

		mock.ExpectExec("UPDATE tokens SET revoked = TRUE, updated_at").
			WithArgs(revokedAt, token.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("SELECT (.+) FROM tokens WHERE id").
			WithArgs(token.ID).
			WillReturnRows(tokenRow(revokedRow))

		repo := NewPostgreSQLTokenRepository(db)
		revoked, transitioned, err := repo.Revoke(context.Background(), token.ID, revokedAt)

		require.NoError(t, err)
		assert.True(t, transitioned)
		assert.True(t, revoked.Revoked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_AlreadyRevokedMatchesNoRow", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		token := testToken()
		token.Revoked = true
		revokedAt := time.Now().UTC()

		mock.ExpectExec("UPDATE tokens SET revoked = TRUE, updated_at").
			WithArgs(revokedAt, token.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT (.+) FROM tokens WHERE id").
			WithArgs(token.ID).
			WillReturnRows(tokenRow(token))

		repo := NewPostgreSQLTokenRepository(db)
		revoked, transitioned, err := repo.Revoke(context.Background(), token.ID, revokedAt)

		require.NoError(t, err)
		assert.False(t, transitioned)
		assert.True(t, revoked.Revoked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_TokenNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		tokenID := uuid.Must(uuid.NewV7())
		revokedAt := time.Now().UTC()

		mock.ExpectExec("UPDATE tokens SET revoked = TRUE, updated_at").
			WithArgs(revokedAt, tokenID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT (.+) FROM tokens WHERE id").
			WithArgs(tokenID).
			WillReturnRows(sqlmock.NewRows(tokenRowColumns))

		repo := NewPostgreSQLTokenRepository(db)
		revoked, transitioned, err := repo.Revoke(context.Background(), tokenID, revokedAt)

		assert.Nil(t, revoked)
		assert.False(t, transitioned)
		assert.ErrorIs(t, err, tokenDomain.ErrTokenNotFound)
	})
}

func TestPostgreSQLTokenRepository_List(t *testing.T) {
	t.Run("Success_ListNewestFirst", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		newest := testToken()
		oldest := testToken()
		oldest.CreatedAt = oldest.CreatedAt.Add(-time.Hour)

		encodedNewest, _ := marshalTokenJSON(newest)
		encodedOldest, _ := marshalTokenJSON(oldest)
		rows := sqlmock.NewRows(tokenRowColumns).
			AddRow(newest.ID, newest.ApplicationID, newest.Category, newest.OwnerEmail,
				newest.VerifierHash, encodedNewest.allowedIPs, encodedNewest.allowedEmails,
				encodedNewest.allowedDomains, encodedNewest.scope, newest.ExpiresAt,
				newest.Revoked, newest.CreatedBy, newest.CreatedAt, newest.UpdatedAt).
			AddRow(oldest.ID, oldest.ApplicationID, oldest.Category, oldest.OwnerEmail,
				oldest.VerifierHash, encodedOldest.allowedIPs, encodedOldest.allowedEmails,
				encodedOldest.allowedDomains, encodedOldest.scope, oldest.ExpiresAt,
				oldest.Revoked, oldest.CreatedBy, oldest.CreatedAt, oldest.UpdatedAt)

		mock.ExpectQuery("SELECT (.+) FROM tokens ORDER BY created_at DESC").
			WithArgs(0, 50).
			WillReturnRows(rows)

		repo := NewPostgreSQLTokenRepository(db)
		tokens, err := repo.List(context.Background(), 0, 50)

		require.NoError(t, err)
		require.Len(t, tokens, 2)
		assert.Equal(t, newest.ID, tokens[0].ID)
		assert.Equal(t, oldest.ID, tokens[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
