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

// CreateTokenParams holds the CLI parameters for issuing a token.
type CreateTokenParams struct {
	ApplicationID  int64
	Category       string
	OwnerEmail     string
	Expiry         string
	AllowedIPs     string
	AllowedEmails  string
	AllowedDomains string
	Grants         []string
	CreatedBy      string
	Format         string
}

// RunCreateToken issues a new scoped API token and prints the plain
// credential. The credential is shown exactly once; only its verifier hash
// is stored, so it cannot be recovered later.
//
// Requirements: Database must be migrated and accessible.
func RunCreateToken(
	ctx context.Context,
	useCase tokenUsecase.TokenUseCase,
	logger *slog.Logger,
	out io.Writer,
	params CreateTokenParams,
) error {
	logger.Info("creating new token",
		slog.Int64("application_id", params.ApplicationID),
		slog.String("category", params.Category),
		slog.String("owner_email", params.OwnerEmail),
	)

	grants, err := parseGrants(params.Grants)
	if err != nil {
		return err
	}

	expiry, err := tokenDomain.ParseExpirySelection(params.Expiry)
	if err != nil {
		return fmt.Errorf("invalid expiry selection: %w", err)
	}

	input := &tokenDomain.IssueTokenInput{
		ApplicationID:  params.ApplicationID,
		Category:       params.Category,
		OwnerEmail:     params.OwnerEmail,
		Expiry:         expiry,
		AllowedIPs:     params.AllowedIPs,
		AllowedEmails:  params.AllowedEmails,
		AllowedDomains: params.AllowedDomains,
		Grants:         grants,
		CreatedBy:      params.CreatedBy,
	}

	output, err := useCase.Issue(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	if params.Format == "json" {
		outputCreateTokenJSON(out, output)
	} else {
		outputCreateTokenText(out, output)
	}

	logger.Info("token created", slog.String("token_id", output.Token.ID.String()))
	return nil
}

// outputCreateTokenText outputs the result in human-readable text format.
func outputCreateTokenText(out io.Writer, output *tokenDomain.IssueTokenOutput) {
	token := output.Token

	fmt.Fprintf(out, "Token created successfully!\n\n")
	fmt.Fprintf(out, "Token ID: %s\n", token.ID)
	fmt.Fprintf(out, "Token:    %s\n\n", output.PlainToken)
	fmt.Fprintf(out, "IMPORTANT: Save this token now. It will not be shown again.\n\n")

	if token.ExpiresAt != nil {
		fmt.Fprintf(out, "Expires at: %s\n", token.ExpiresAt.Format(time.RFC3339))
	} else {
		fmt.Fprintf(out, "Expires at: never\n")
	}

	fmt.Fprintf(out, "Scope:\n")
	for _, grant := range token.Scope {
		fmt.Fprintf(out, "  %s (%s): %v\n", grant.CustomerCode, grant.CustomerName, grant.AllowedEndpoints)
	}
}

// outputCreateTokenJSON outputs the result in JSON format for machine consumption.
func outputCreateTokenJSON(out io.Writer, output *tokenDomain.IssueTokenOutput) {
	token := output.Token

	result := map[string]interface{}{
		"token_id":       token.ID.String(),
		"token":          output.PlainToken,
		"application_id": token.ApplicationID,
		"category":       token.Category,
		"owner_email":    token.OwnerEmail,
		"expires_at":     token.ExpiresAt,
		"scope":          token.Scope,
		"created_at":     token.CreatedAt,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(out, "failed to marshal JSON: %v\n", err)
		return
	}

	fmt.Fprintln(out, string(jsonBytes))
}
