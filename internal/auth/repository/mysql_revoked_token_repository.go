package repository

import (
	"context"
	"database/sql"
	"time"

	authDomain "github.com/allisson/contacts/internal/auth/domain"
	"github.com/allisson/contacts/internal/database"
	apperrors "github.com/allisson/contacts/internal/errors"
)

// MySQLRevokedTokenRepository implements revocation-record persistence for MySQL.
// Uses transaction support via database.GetTx().
type MySQLRevokedTokenRepository struct {
	db *sql.DB
}

// Create inserts a revocation record. Re-revoking the same token id rewrites
// an equivalent record, so the operation is idempotent.
func (m *MySQLRevokedTokenRepository) Create(ctx context.Context, revokedToken *authDomain.RevokedToken) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO revoked_tokens (token_id, expires_at, created_at)
			  VALUES (?, ?, ?)
			  ON DUPLICATE KEY UPDATE expires_at = VALUES(expires_at)`

	_, err := querier.ExecContext(
		ctx,
		query,
		revokedToken.TokenID,
		revokedToken.ExpiresAt,
		revokedToken.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create revoked token")
	}
	return nil
}

// Exists reports whether a revocation record is present for the token id.
func (m *MySQLRevokedTokenRepository) Exists(ctx context.Context, tokenID string) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE token_id = ?)`

	var exists bool
	if err := querier.QueryRowContext(ctx, query, tokenID).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check revoked token")
	}

	return exists, nil
}

// DeleteExpired removes revocation records whose expiry precedes now.
// Returns the number of rows deleted.
func (m *MySQLRevokedTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM revoked_tokens WHERE expires_at < ?`

	result, err := querier.ExecContext(ctx, query, now)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired revoked tokens")
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get rows affected")
	}

	return count, nil
}

// NewMySQLRevokedTokenRepository creates a new MySQL revocation-record repository.
func NewMySQLRevokedTokenRepository(db *sql.DB) *MySQLRevokedTokenRepository {
	return &MySQLRevokedTokenRepository{db: db}
}
