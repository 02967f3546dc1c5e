package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
	tokenUsecase "github.com/allisson/tokens/internal/token/usecase"
)

// RunListTokens lists issued tokens, newest first.
//
// Requirements: Database must be migrated and accessible.
func RunListTokens(
	ctx context.Context,
	useCase tokenUsecase.TokenUseCase,
	logger *slog.Logger,
	out io.Writer,
	offset, limit int,
	format string,
) error {
	if offset < 0 {
		return fmt.Errorf("offset must not be negative, got: %d", offset)
	}
	if limit < 1 {
		return fmt.Errorf("limit must be a positive number, got: %d", limit)
	}

	logger.Info("listing tokens", slog.Int("offset", offset), slog.Int("limit", limit))

	tokens, err := useCase.List(ctx, offset, limit)
	if err != nil {
		return fmt.Errorf("failed to list tokens: %w", err)
	}

	if format == "json" {
		outputListTokensJSON(out, tokens)
	} else {
		outputListTokensText(out, tokens)
	}

	return nil
}

// outputListTokensText outputs the result in human-readable text format.
func outputListTokensText(out io.Writer, tokens []*tokenDomain.Token) {
	if len(tokens) == 0 {
		fmt.Fprintln(out, "No tokens found")
		return
	}

	now := time.Now().UTC()
	for _, token := range tokens {
		expires := "never"
		if token.ExpiresAt != nil {
			expires = token.ExpiresAt.Format(time.RFC3339)
		}
		fmt.Fprintf(out, "%s  %-8s  %-10s  %s  expires: %s\n",
			token.ID, token.Status(now), token.Category, token.OwnerEmail, expires)
	}
	fmt.Fprintf(out, "\n%d token(s)\n", len(tokens))
}

// outputListTokensJSON outputs the result in JSON format for machine consumption.
func outputListTokensJSON(out io.Writer, tokens []*tokenDomain.Token) {
	now := time.Now().UTC()
	results := make([]map[string]interface{}, 0, len(tokens))
	for _, token := range tokens {
		results = append(results, map[string]interface{}{
			"token_id":       token.ID.String(),
			"application_id": token.ApplicationID,
			"category":       token.Category,
			"owner_email":    token.OwnerEmail,
			"status":         string(token.Status(now)),
			"expires_at":     token.ExpiresAt,
			"created_at":     token.CreatedAt,
		})
	}

	jsonBytes, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		fmt.Fprintf(out, "failed to marshal JSON: %v\n", err)
		return
	}

	fmt.Fprintln(out, string(jsonBytes))
}
