// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"

	"github.com/allisson/tokens/internal/app"
	tokenUsecase "github.com/allisson/tokens/internal/token/usecase"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// closeMigrate closes the migration instance and logs any errors.
func closeMigrate(migrate *migrate.Migrate, logger *slog.Logger) {
	sourceError, databaseError := migrate.Close()
	if sourceError != nil || databaseError != nil {
		logger.Error(
			"failed to close the migrate",
			slog.Any("source_error", sourceError),
			slog.Any("database_error", databaseError),
		)
	}
}

// parseGrants converts CLI grant flags into the grants map for issuance.
// Each entry has the form "CODE=/endpoint_a,/endpoint_b".
func parseGrants(entries []string) (map[string][]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	grants := make(map[string][]string, len(entries))
	for _, entry := range entries {
		code, endpoints, found := strings.Cut(entry, "=")
		code = strings.TrimSpace(code)
		if !found || code == "" {
			return nil, fmt.Errorf(
				"invalid grant %q (expected format: CODE=/endpoint_a,/endpoint_b)", entry)
		}
		grants[code] = append(grants[code], tokenUsecase.ParseStringList(endpoints)...)
	}

	return grants, nil
}
