package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/allisson/contacts/internal/app"
	"github.com/allisson/contacts/internal/config"
)

// RunCleanExpiredTokens deletes revocation records whose tokens have expired.
// An expired token is rejected by signature validation anyway, so the records
// are pure bookkeeping and safe to purge. Supports text/JSON output formats.
//
// Requirements: Database must be migrated and accessible.
func RunCleanExpiredTokens(ctx context.Context, format string) error {
	// Load configuration
	cfg := config.Load()

	// Create DI container
	container := app.NewContainer(cfg)

	// Get logger from container
	logger := container.Logger()
	logger.Info("cleaning expired token revocation records")

	// Ensure cleanup on exit
	defer closeContainer(container, logger)

	// Get auth use case from container
	authUseCase, err := container.AuthUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize auth use case: %w", err)
	}

	count := authUseCase.CleanupExpiredTokens(ctx)

	// Output result based on format
	if format == "json" {
		outputCleanExpiredJSON(count)
	} else {
		outputCleanExpiredText(count)
	}

	logger.Info("cleanup completed", slog.Int64("count", count))

	return nil
}

// outputCleanExpiredText outputs the result in human-readable text format.
func outputCleanExpiredText(count int64) {
	fmt.Printf("Successfully deleted %d expired revocation record(s)\n", count)
}

// outputCleanExpiredJSON outputs the result in JSON format for machine consumption.
func outputCleanExpiredJSON(count int64) {
	result := map[string]interface{}{
		"count": count,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	fmt.Println(string(jsonBytes))
}
