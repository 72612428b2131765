package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/contacts/internal/contact/domain"
)

func newMockContactRepo(t *testing.T) (*PostgreSQLContactRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgreSQLContactRepository(db), mock
}

func TestPostgreSQLContactRepository_Create(t *testing.T) {
	repo, mock := newMockContactRepo(t)
	now := time.Now().UTC()

	contact := &domain.Contact{
		UserID: 42,
		Name:   "Bob",
		Phone:  "+5511999999999",
		Email:  "bob@example.com",
	}

	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now)
	mock.ExpectQuery("INSERT INTO contacts").
		WithArgs(contact.UserID, contact.Name, contact.Phone, contact.Email).
		WillReturnRows(rows)

	err := repo.Create(context.Background(), contact)
	require.NoError(t, err)
	assert.Equal(t, int64(1), contact.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLContactRepository_GetByID(t *testing.T) {
	repo, mock := newMockContactRepo(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "phone", "email", "created_at", "updated_at"}).
		AddRow(int64(1), int64(42), "Bob", "+5511999999999", "bob@example.com", now, now)
	mock.ExpectQuery("SELECT (.+) FROM contacts WHERE id").
		WithArgs(int64(1), int64(42)).
		WillReturnRows(rows)

	contact, err := repo.GetByID(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(1), contact.ID)
	assert.Equal(t, int64(42), contact.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLContactRepository_GetByID_OtherOwner(t *testing.T) {
	repo, mock := newMockContactRepo(t)

	// The owner filter turns another user's contact into a missing row
	mock.ExpectQuery("SELECT (.+) FROM contacts WHERE id").
		WithArgs(int64(1), int64(99)).
		WillReturnError(sql.ErrNoRows)

	contact, err := repo.GetByID(context.Background(), 1, 99)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
	assert.Nil(t, contact)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLContactRepository_ListByUser(t *testing.T) {
	repo, mock := newMockContactRepo(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "phone", "email", "created_at", "updated_at"}).
		AddRow(int64(2), int64(42), "Alice", "+5511888888888", "", now, now).
		AddRow(int64(1), int64(42), "Bob", "+5511999999999", "bob@example.com", now, now)
	mock.ExpectQuery("SELECT (.+) FROM contacts WHERE user_id").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	contacts, err := repo.ListByUser(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Alice", contacts[0].Name)
	assert.Equal(t, "Bob", contacts[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLContactRepository_ListByUser_Empty(t *testing.T) {
	repo, mock := newMockContactRepo(t)

	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "phone", "email", "created_at", "updated_at"})
	mock.ExpectQuery("SELECT (.+) FROM contacts WHERE user_id").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	contacts, err := repo.ListByUser(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLContactRepository_Update(t *testing.T) {
	repo, mock := newMockContactRepo(t)

	contact := &domain.Contact{ID: 1, UserID: 42, Name: "Bob", Phone: "+5511999999999", Email: ""}

	mock.ExpectExec("UPDATE contacts SET").
		WithArgs(contact.Name, contact.Phone, contact.Email, contact.ID, contact.UserID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), contact)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLContactRepository_Update_OtherOwner(t *testing.T) {
	repo, mock := newMockContactRepo(t)

	contact := &domain.Contact{ID: 1, UserID: 99, Name: "Bob", Phone: "+5511999999999"}

	mock.ExpectExec("UPDATE contacts SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), contact)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLContactRepository_Delete(t *testing.T) {
	repo, mock := newMockContactRepo(t)

	mock.ExpectExec("DELETE FROM contacts").
		WithArgs(int64(1), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 1, 42)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLContactRepository_Delete_OtherOwner(t *testing.T) {
	repo, mock := newMockContactRepo(t)

	mock.ExpectExec("DELETE FROM contacts").
		WithArgs(int64(1), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 1, 99)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLContactRepository_ListByUser_QueryError(t *testing.T) {
	repo, mock := newMockContactRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM contacts WHERE user_id").
		WillReturnError(errors.New("connection refused"))

	contacts, err := repo.ListByUser(context.Background(), 42)
	assert.Error(t, err)
	assert.Nil(t, contacts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
