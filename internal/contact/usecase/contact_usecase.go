// Package usecase implements the contact business logic and orchestrates contact domain operations.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/contacts/internal/contact/domain"
	appValidation "github.com/allisson/contacts/internal/validation"
)

// CreateContactInput contains the input data for creating a contact
type CreateContactInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// UpdateContactInput contains the input data for a partial contact update.
// Nil fields are left unchanged.
type UpdateContactInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

// UseCase defines the interface for contact business logic operations.
//
// Every operation is scoped to the owning user id: a contact id belonging to
// another user behaves exactly like a missing contact.
type UseCase interface {
	CreateContact(ctx context.Context, userID int64, input CreateContactInput) (*domain.Contact, error)
	GetContact(ctx context.Context, userID, contactID int64) (*domain.Contact, error)
	ListContacts(ctx context.Context, userID int64) ([]*domain.Contact, error)
	UpdateContact(ctx context.Context, userID, contactID int64, input UpdateContactInput) (*domain.Contact, error)
	DeleteContact(ctx context.Context, userID, contactID int64) error
}

// ContactRepository interface defines contact repository operations.
// The userID argument scopes every lookup and mutation to the owner.
type ContactRepository interface {
	// Create inserts a new contact and fills in the generated id and timestamps.
	Create(ctx context.Context, contact *domain.Contact) error
	GetByID(ctx context.Context, id, userID int64) (*domain.Contact, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Contact, error)
	Update(ctx context.Context, contact *domain.Contact) error
	Delete(ctx context.Context, id, userID int64) error
}

// ContactUseCase handles contact-related business logic
type ContactUseCase struct {
	contactRepo ContactRepository
}

// NewContactUseCase creates a new ContactUseCase
func NewContactUseCase(contactRepo ContactRepository) UseCase {
	return &ContactUseCase{
		contactRepo: contactRepo,
	}
}

// validateCreateContactInput validates the creation input using jellydator/validation
func (uc *ContactUseCase) validateCreateContactInput(input CreateContactInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 254).Error("name must be between 1 and 254 characters"),
		),
		validation.Field(&input.Phone,
			validation.Required.Error("phone is required"),
			appValidation.Phone,
			validation.Length(1, 31).Error("phone must be between 1 and 31 characters"),
		),
		// Email is optional; rules skip empty values.
		validation.Field(&input.Email,
			appValidation.Email,
			validation.Length(5, 254).Error("email must be between 5 and 254 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// validateUpdateContactInput validates the provided fields of a partial update.
// A provided field must carry a usable value: an explicit empty name or phone
// is rejected instead of silently blanking the column.
func (uc *ContactUseCase) validateUpdateContactInput(input UpdateContactInput) error {
	var rules []*validation.FieldRules

	if input.Name != nil {
		rules = append(rules, validation.Field(&input.Name,
			validation.Required.Error("name cannot be blank"),
			appValidation.NotBlank,
			validation.Length(1, 254).Error("name must be between 1 and 254 characters"),
		))
	}
	if input.Phone != nil {
		rules = append(rules, validation.Field(&input.Phone,
			validation.Required.Error("phone cannot be blank"),
			appValidation.Phone,
			validation.Length(1, 31).Error("phone must be between 1 and 31 characters"),
		))
	}
	if input.Email != nil {
		// An explicit empty email clears the field.
		rules = append(rules, validation.Field(&input.Email,
			appValidation.Email,
			validation.Length(5, 254).Error("email must be between 5 and 254 characters"),
		))
	}

	if len(rules) == 0 {
		return nil
	}

	return appValidation.WrapValidationError(validation.ValidateStruct(&input, rules...))
}

// CreateContact creates a new contact owned by the user
func (uc *ContactUseCase) CreateContact(
	ctx context.Context,
	userID int64,
	input CreateContactInput,
) (*domain.Contact, error) {
	if err := uc.validateCreateContactInput(input); err != nil {
		return nil, err
	}

	contact := &domain.Contact{
		UserID: userID,
		Name:   strings.TrimSpace(input.Name),
		Phone:  strings.TrimSpace(input.Phone),
		Email:  strings.TrimSpace(strings.ToLower(input.Email)),
	}

	if err := uc.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

// GetContact retrieves a contact owned by the user
func (uc *ContactUseCase) GetContact(ctx context.Context, userID, contactID int64) (*domain.Contact, error) {
	return uc.contactRepo.GetByID(ctx, contactID, userID)
}

// ListContacts retrieves all contacts owned by the user
func (uc *ContactUseCase) ListContacts(ctx context.Context, userID int64) ([]*domain.Contact, error) {
	return uc.contactRepo.ListByUser(ctx, userID)
}

// UpdateContact applies a partial update to a contact owned by the user
func (uc *ContactUseCase) UpdateContact(
	ctx context.Context,
	userID, contactID int64,
	input UpdateContactInput,
) (*domain.Contact, error) {
	if err := uc.validateUpdateContactInput(input); err != nil {
		return nil, err
	}

	contact, err := uc.contactRepo.GetByID(ctx, contactID, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		contact.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		contact.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Email != nil {
		contact.Email = strings.TrimSpace(strings.ToLower(*input.Email))
	}

	if err := uc.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

// DeleteContact removes a contact owned by the user
func (uc *ContactUseCase) DeleteContact(ctx context.Context, userID, contactID int64) error {
	return uc.contactRepo.Delete(ctx, contactID, userID)
}
