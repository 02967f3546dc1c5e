package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
	tokenMocks "github.com/allisson/tokens/internal/token/usecase/mocks"
)

func testCreateTokenParams() CreateTokenParams {
	return CreateTokenParams{
		ApplicationID: 1,
		Category:      "airline",
		OwnerEmail:    "ops@abaair.com",
		Expiry:        "30",
		Grants:        []string{"CUST001=/save_vouchers,/get_balance"},
		CreatedBy:     "admin@nutraacs.com",
		Format:        "text",
	}
}

func testIssueOutput() *tokenDomain.IssueTokenOutput {
	expiresAt := time.Now().UTC().Add(30 * 24 * time.Hour)
	return &tokenDomain.IssueTokenOutput{
		Token: &tokenDomain.Token{
			ID:            uuid.Must(uuid.NewV7()),
			ApplicationID: 1,
			Category:      "airline",
			OwnerEmail:    "ops@abaair.com",
			Scope: []tokenDomain.ScopeGrant{
				{
					CustomerCode:     "CUST001",
					CustomerName:     "ABA Air",
					AllowedEndpoints: []string{"/save_vouchers", "/get_balance"},
				},
			},
			ExpiresAt: &expiresAt,
			CreatedAt: time.Now().UTC(),
		},
		PlainToken: "nut_live_secret",
	}
}

func TestRunCreateToken(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &tokenMocks.MockTokenUseCase{}
		mockUseCase.On("Issue", ctx, mock.AnythingOfType("*domain.IssueTokenInput")).
			Return(testIssueOutput(), nil)

		var out bytes.Buffer
		err := RunCreateToken(ctx, mockUseCase, logger, &out, testCreateTokenParams())

		require.NoError(t, err)
		require.Contains(t, out.String(), "nut_live_secret")
		require.Contains(t, out.String(), "It will not be shown again")
		require.Contains(t, out.String(), "CUST001 (ABA Air)")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &tokenMocks.MockTokenUseCase{}
		mockUseCase.On("Issue", ctx, mock.AnythingOfType("*domain.IssueTokenInput")).
			Return(testIssueOutput(), nil)

		params := testCreateTokenParams()
		params.Format = "json"

		var out bytes.Buffer
		err := RunCreateToken(ctx, mockUseCase, logger, &out, params)

		require.NoError(t, err)
		require.Contains(t, out.String(), `"token": "nut_live_secret"`)
		require.Contains(t, out.String(), `"category": "airline"`)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("grants-are-parsed", func(t *testing.T) {
		mockUseCase := &tokenMocks.MockTokenUseCase{}
		mockUseCase.On("Issue", ctx, mock.MatchedBy(func(input *tokenDomain.IssueTokenInput) bool {
			endpoints, ok := input.Grants["CUST001"]
			return ok && len(endpoints) == 2
		})).Return(testIssueOutput(), nil)

		err := RunCreateToken(ctx, mockUseCase, logger, &bytes.Buffer{}, testCreateTokenParams())

		require.NoError(t, err)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("invalid-grant", func(t *testing.T) {
		mockUseCase := &tokenMocks.MockTokenUseCase{}

		params := testCreateTokenParams()
		params.Grants = []string{"CUST001"}

		err := RunCreateToken(ctx, mockUseCase, logger, &bytes.Buffer{}, params)

		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid grant")
		mockUseCase.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	})

	t.Run("invalid-expiry", func(t *testing.T) {
		mockUseCase := &tokenMocks.MockTokenUseCase{}

		params := testCreateTokenParams()
		params.Expiry = "someday"

		err := RunCreateToken(ctx, mockUseCase, logger, &bytes.Buffer{}, params)

		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid expiry selection")
		mockUseCase.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	})

	t.Run("issue-error", func(t *testing.T) {
		mockUseCase := &tokenMocks.MockTokenUseCase{}
		mockUseCase.On("Issue", ctx, mock.AnythingOfType("*domain.IssueTokenInput")).
			Return(nil, tokenDomain.ErrUnknownCustomer)

		err := RunCreateToken(ctx, mockUseCase, logger, &bytes.Buffer{}, testCreateTokenParams())

		require.Error(t, err)
		require.ErrorIs(t, err, tokenDomain.ErrUnknownCustomer)
	})
}

func TestParseGrants(t *testing.T) {
	t.Run("multiple-grants", func(t *testing.T) {
		grants, err := parseGrants([]string{
			"CUST001=/save_vouchers,/get_balance",
			"CUST002=/save_dn_cn",
		})

		require.NoError(t, err)
		require.Len(t, grants, 2)
		require.Equal(t, []string{"/save_vouchers", "/get_balance"}, grants["CUST001"])
		require.Equal(t, []string{"/save_dn_cn"}, grants["CUST002"])
	})

	t.Run("repeated-code-merges", func(t *testing.T) {
		grants, err := parseGrants([]string{
			"CUST001=/save_vouchers",
			"CUST001=/get_balance",
		})

		require.NoError(t, err)
		require.Equal(t, []string{"/save_vouchers", "/get_balance"}, grants["CUST001"])
	})

	t.Run("missing-separator", func(t *testing.T) {
		_, err := parseGrants([]string{"CUST001"})
		require.Error(t, err)
	})

	t.Run("empty-code", func(t *testing.T) {
		_, err := parseGrants([]string{"=/save_vouchers"})
		require.Error(t, err)
	})

	t.Run("no-entries", func(t *testing.T) {
		grants, err := parseGrants(nil)
		require.NoError(t, err)
		require.Nil(t, grants)
	})
}
