// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/contacts/internal/auth/domain"
)

// AuthUseCase manages the access-token lifecycle: issuance, validation,
// revocation, and purging of stale revocation records.
type AuthUseCase interface {
	// IssueAccessToken builds and signs a fresh access token for the principal.
	IssueAccessToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken resolves a token string to a principal id.
	// Returns (0, false) for every invalid token: malformed, badly signed,
	// expired, wrong issuer or audience, revoked, or unreadable revocation
	// state. Callers cannot distinguish which check failed.
	ValidateToken(ctx context.Context, tokenString string) (int64, bool)

	// RevokeAccessToken writes a revocation record for the token's id.
	// Returns false if the token cannot be decoded or the record cannot be
	// written. Revoking the same token twice is idempotent.
	RevokeAccessToken(ctx context.Context, tokenString string) bool

	// CleanupExpiredTokens deletes revocation records whose expiry has passed
	// and returns the number removed. Best-effort: failures return 0.
	CleanupExpiredTokens(ctx context.Context) int64
}

// RevokedTokenRepository persists revocation records keyed by token id.
type RevokedTokenRepository interface {
	// Create inserts a revocation record, replacing any existing record for
	// the same token id.
	Create(ctx context.Context, revokedToken *authDomain.RevokedToken) error

	// Exists reports whether a revocation record is present for the token id.
	Exists(ctx context.Context, tokenID string) (bool, error)

	// DeleteExpired removes records whose expiry precedes now and returns the
	// number of rows deleted.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
