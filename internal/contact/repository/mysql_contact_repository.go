package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/allisson/contacts/internal/contact/domain"
	"github.com/allisson/contacts/internal/database"

	apperrors "github.com/allisson/contacts/internal/errors"
)

// MySQLContactRepository handles contact persistence for MySQL.
// Every query carries the owner's user id, so a contact owned by another
// user is indistinguishable from a missing one.
type MySQLContactRepository struct {
	db *sql.DB
}

// NewMySQLContactRepository creates a new MySQLContactRepository
func NewMySQLContactRepository(db *sql.DB) *MySQLContactRepository {
	return &MySQLContactRepository{
		db: db,
	}
}

// Create inserts a new contact and fills in the generated id and timestamps
func (r *MySQLContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()

	query := `INSERT INTO contacts (user_id, name, phone, email, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx, query, contact.UserID, contact.Name, contact.Phone, contact.Email, now, now,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create contact")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get last insert id")
	}

	contact.ID = id
	contact.CreatedAt = now
	contact.UpdatedAt = now

	return nil
}

// GetByID retrieves a contact by ID scoped to its owner
func (r *MySQLContactRepository) GetByID(ctx context.Context, id, userID int64) (*domain.Contact, error) {
	var contact domain.Contact
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, name, phone, email, created_at, updated_at
			  FROM contacts WHERE id = ? AND user_id = ?`

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
func (r *MySQLContactRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Contact, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, name, phone, email, created_at, updated_at
			  FROM contacts WHERE user_id = ? ORDER BY name, id`

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
func (r *MySQLContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE contacts SET name = ?, phone = ?, email = ?, updated_at = ?
			  WHERE id = ? AND user_id = ?`

	result, err := querier.ExecContext(
		ctx, query, contact.Name, contact.Phone, contact.Email, time.Now().UTC(),
		contact.ID, contact.UserID,
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
func (r *MySQLContactRepository) Delete(ctx context.Context, id, userID int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM contacts WHERE id = ? AND user_id = ?`

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
