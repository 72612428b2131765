package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/contacts/internal/contact/domain"
	apperrors "github.com/allisson/contacts/internal/errors"
)

// MockContactRepository is a mock implementation of ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) GetByID(ctx context.Context, id, userID int64) (*domain.Contact, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Contact, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Contact), args.Error(1)
}

func (m *MockContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func strPtr(s string) *string {
	return &s
}

func TestContactUseCase_CreateContact(t *testing.T) {
	repo := &MockContactRepository{}
	useCase := NewContactUseCase(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Contact")).Return(nil)

	contact, err := useCase.CreateContact(context.Background(), 42, CreateContactInput{
		Name:  "  Bob  ",
		Phone: " +55 11 99999-9999 ",
		Email: "Bob@Example.COM",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), contact.UserID)
	assert.Equal(t, "Bob", contact.Name)
	assert.Equal(t, "+55 11 99999-9999", contact.Phone)
	assert.Equal(t, "bob@example.com", contact.Email)

	repo.AssertExpectations(t)
}

func TestContactUseCase_CreateContact_EmailOptional(t *testing.T) {
	repo := &MockContactRepository{}
	useCase := NewContactUseCase(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Contact")).Return(nil)

	contact, err := useCase.CreateContact(context.Background(), 42, CreateContactInput{
		Name:  "Bob",
		Phone: "+5511999999999",
	})
	require.NoError(t, err)
	assert.Empty(t, contact.Email)
}

func TestContactUseCase_CreateContact_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input CreateContactInput
	}{
		{"missing name", CreateContactInput{Phone: "+5511999999999"}},
		{"blank name", CreateContactInput{Name: "   ", Phone: "+5511999999999"}},
		{"missing phone", CreateContactInput{Name: "Bob"}},
		{"invalid phone", CreateContactInput{Name: "Bob", Phone: "not-a-phone"}},
		{"invalid email", CreateContactInput{Name: "Bob", Phone: "+5511999999999", Email: "not-an-email"}},
	}

	repo := &MockContactRepository{}
	useCase := NewContactUseCase(repo)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contact, err := useCase.CreateContact(context.Background(), 42, tt.input)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Nil(t, contact)
		})
	}

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContactUseCase_GetContact_ScopedToOwner(t *testing.T) {
	repo := &MockContactRepository{}
	useCase := NewContactUseCase(repo)

	repo.On("GetByID", mock.Anything, int64(1), int64(99)).Return(nil, domain.ErrContactNotFound)

	contact, err := useCase.GetContact(context.Background(), 99, 1)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
	assert.Nil(t, contact)

	repo.AssertExpectations(t)
}

func TestContactUseCase_ListContacts(t *testing.T) {
	repo := &MockContactRepository{}
	useCase := NewContactUseCase(repo)

	expected := []*domain.Contact{
		{ID: 1, UserID: 42, Name: "Alice"},
		{ID: 2, UserID: 42, Name: "Bob"},
	}
	repo.On("ListByUser", mock.Anything, int64(42)).Return(expected, nil)

	contacts, err := useCase.ListContacts(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, expected, contacts)
}

func TestContactUseCase_UpdateContact_Partial(t *testing.T) {
	repo := &MockContactRepository{}
	useCase := NewContactUseCase(repo)

	existing := &domain.Contact{
		ID:     1,
		UserID: 42,
		Name:   "Bob",
		Phone:  "+5511999999999",
		Email:  "bob@example.com",
	}
	repo.On("GetByID", mock.Anything, int64(1), int64(42)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Contact")).Return(nil)

	contact, err := useCase.UpdateContact(context.Background(), 42, 1, UpdateContactInput{
		Phone: strPtr("+5511888888888"),
	})
	require.NoError(t, err)

	assert.Equal(t, "+5511888888888", contact.Phone)
	assert.Equal(t, "Bob", contact.Name)
	assert.Equal(t, "bob@example.com", contact.Email)

	repo.AssertExpectations(t)
}

func TestContactUseCase_UpdateContact_ClearEmail(t *testing.T) {
	repo := &MockContactRepository{}
	useCase := NewContactUseCase(repo)

	existing := &domain.Contact{ID: 1, UserID: 42, Name: "Bob", Phone: "+5511999999999", Email: "bob@example.com"}
	repo.On("GetByID", mock.Anything, int64(1), int64(42)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Contact")).Return(nil)

	contact, err := useCase.UpdateContact(context.Background(), 42, 1, UpdateContactInput{
		Email: strPtr(""),
	})
	require.NoError(t, err)
	assert.Empty(t, contact.Email)
}

func TestContactUseCase_UpdateContact_BlankFieldRejected(t *testing.T) {
	repo := &MockContactRepository{}
	useCase := NewContactUseCase(repo)

	tests := []struct {
		name  string
		input UpdateContactInput
	}{
		{"empty name", UpdateContactInput{Name: strPtr("")}},
		{"blank name", UpdateContactInput{Name: strPtr("   ")}},
		{"empty phone", UpdateContactInput{Phone: strPtr("")}},
		{"invalid phone", UpdateContactInput{Phone: strPtr("not-a-phone")}},
		{"invalid email", UpdateContactInput{Email: strPtr("not-an-email")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contact, err := useCase.UpdateContact(context.Background(), 42, 1, tt.input)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Nil(t, contact)
		})
	}

	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestContactUseCase_UpdateContact_OtherOwner(t *testing.T) {
	repo := &MockContactRepository{}
	useCase := NewContactUseCase(repo)

	repo.On("GetByID", mock.Anything, int64(1), int64(99)).Return(nil, domain.ErrContactNotFound)

	contact, err := useCase.UpdateContact(context.Background(), 99, 1, UpdateContactInput{Name: strPtr("Bob")})
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
	assert.Nil(t, contact)
}

func TestContactUseCase_DeleteContact(t *testing.T) {
	repo := &MockContactRepository{}
	useCase := NewContactUseCase(repo)

	repo.On("Delete", mock.Anything, int64(1), int64(42)).Return(nil)

	assert.NoError(t, useCase.DeleteContact(context.Background(), 42, 1))
	repo.AssertExpectations(t)
}

func TestContactUseCase_DeleteContact_OtherOwner(t *testing.T) {
	repo := &MockContactRepository{}
	useCase := NewContactUseCase(repo)

	repo.On("Delete", mock.Anything, int64(1), int64(99)).Return(domain.ErrContactNotFound)

	err := useCase.DeleteContact(context.Background(), 99, 1)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}
