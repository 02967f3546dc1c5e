package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
	tokenUsecase "github.com/allisson/tokens/internal/token/usecase"
)

// RunRevokeToken revokes a token by ID. Revocation is permanent; revoking an
// already revoked token is a no-op.
//
// Requirements: Database must be migrated and accessible.
func RunRevokeToken(
	ctx context.Context,
	useCase tokenUsecase.TokenUseCase,
	logger *slog.Logger,
	out io.Writer,
	tokenID string,
	format string,
) error {
	id, err := uuid.Parse(tokenID)
	if err != nil {
		return fmt.Errorf("invalid token id: %w", err)
	}

	logger.Info("revoking token", slog.String("token_id", tokenID))

	token, err := useCase.Revoke(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	if format == "json" {
		outputRevokeTokenJSON(out, token)
	} else {
		fmt.Fprintf(out, "Token %s revoked\n", token.ID)
	}

	logger.Info("token revoked", slog.String("token_id", tokenID))
	return nil
}

// outputRevokeTokenJSON outputs the result in JSON format for machine consumption.
func outputRevokeTokenJSON(out io.Writer, token *tokenDomain.Token) {
	result := map[string]interface{}{
		"token_id":   token.ID.String(),
		"status":     string(token.Status(time.Now().UTC())),
		"updated_at": token.UpdatedAt,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(out, "failed to marshal JSON: %v\n", err)
		return
	}

	fmt.Fprintln(out, string(jsonBytes))
}
