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

func TestRunListTokens(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	tokens := []*tokenDomain.Token{
		{
			ID:            uuid.Must(uuid.NewV7()),
			ApplicationID: 1,
			Category:      "airline",
			OwnerEmail:    "ops@abaair.com",
			CreatedAt:     time.Now().UTC(),
		},
	}

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &tokenMocks.MockTokenUseCase{}
		mockUseCase.On("List", ctx, 0, 50).Return(tokens, nil)

		var out bytes.Buffer
		err := RunListTokens(ctx, mockUseCase, logger, &out, 0, 50, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "ops@abaair.com")
		require.Contains(t, out.String(), "1 token(s)")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &tokenMocks.MockTokenUseCase{}
		mockUseCase.On("List", ctx, 0, 50).Return(tokens, nil)

		var out bytes.Buffer
		err := RunListTokens(ctx, mockUseCase, logger, &out, 0, 50, "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"status": "active"`)
		require.Contains(t, out.String(), `"owner_email": "ops@abaair.com"`)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("no-tokens", func(t *testing.T) {
		mockUseCase := &tokenMocks.MockTokenUseCase{}
		mockUseCase.On("List", ctx, 0, 50).Return([]*tokenDomain.Token{}, nil)

		var out bytes.Buffer
		err := RunListTokens(ctx, mockUseCase, logger, &out, 0, 50, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "No tokens found")
	})

	t.Run("invalid-offset", func(t *testing.T) {
		mockUseCase := &tokenMocks.MockTokenUseCase{}

		err := RunListTokens(ctx, mockUseCase, logger, &bytes.Buffer{}, -1, 50, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "offset must not be negative")
		mockUseCase.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid-limit", func(t *testing.T) {
		mockUseCase := &tokenMocks.MockTokenUseCase{}

		err := RunListTokens(ctx, mockUseCase, logger, &bytes.Buffer{}, 0, 0, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "limit must be a positive number")
	})
}
