// Package repository provides data persistence implementations for contact entities.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/contacts/internal/contact/domain"
	"github.com/allisson/contacts/internal/database"

	apperrors "github.com/allisson/contacts/internal/errors"
)

// PostgreSQLContactRepository handles contact persistence for PostgreSQL.
// Every query carries the owner's user id, so a contact owned by another
// user is indistinguishable from a missing one.
type PostgreSQLContactRepository struct {
	db *sql.DB
}

// NewPostgreSQLContactRepository creates a new PostgreSQLContactRepository
func NewPostgreSQLContactRepository(db *sql.DB) *PostgreSQLContactRepository {
	return &PostgreSQLContactRepository{
		db: db,
	}
}

// Create inserts a new contact and fills in the generated id and timestamps
func (r *PostgreSQLContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO contacts (user_id, name, phone, email, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := querier.QueryRowContext(ctx, query, contact.UserID, contact.Name, contact.Phone, contact.Email).Scan(
		&contact.ID, &contact.CreatedAt, &contact.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create contact")
	}
	return nil
}

// GetByID retrieves a contact by ID scoped to its owner
func (r *PostgreSQLContactRepository) GetByID(ctx context.Context, id, userID int64) (*domain.Contact, error) {
	var contact domain.Contact
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, name, phone, email, created_at, updated_at
			  FROM contacts WHERE id = $1 AND user_id = $2`

	err := querier.QueryRowContext(ctx, query, id, userID).Scan(
		&contact.ID, &contact.UserID, &contact.Name, &contact.Phone, &contact.Email,
		&contact.CreatedAt, &contact.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrContactNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get contact by id")
	}

	return &contact, nil
}

// ListByUser retrieves all contacts owned by a user ordered by name
func (r *PostgreSQLContactRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Contact, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, name, phone, email, created_at, updated_at
			  FROM contacts WHERE user_id = $1 ORDER BY name, id`

	rows, err := querier.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list contacts")
	}
	defer rows.Close()

	contacts := make([]*domain.Contact, 0)
	for rows.Next() {
		var contact domain.Contact
		if err := rows.Scan(
			&contact.ID, &contact.UserID, &contact.Name, &contact.Phone, &contact.Email,
			&contact.CreatedAt, &contact.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan contact")
		}
		contacts = append(contacts, &contact)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate contacts")
	}

	return contacts, nil
}

// Update rewrites a contact's mutable fields scoped to its owner
func (r *PostgreSQLContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE contacts SET name = $1, phone = $2, email = $3, updated_at = NOW()
			  WHERE id = $4 AND user_id = $5`

	result, err := querier.ExecContext(
		ctx, query, contact.Name, contact.Phone, contact.Email, contact.ID, contact.UserID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update contact")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rows == 0 {
		return domain.ErrContactNotFound
	}

	return nil
}

// Delete removes a contact by ID scoped to its owner
func (r *PostgreSQLContactRepository) Delete(ctx context.Context, id, userID int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM contacts WHERE id = $1 AND user_id = $2`

	result, err := querier.ExecContext(ctx, query, id, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete contact")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rows == 0 {
		return domain.ErrContactNotFound
	}

	return nil
}
