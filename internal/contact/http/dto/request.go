// Package dto provides data transfer objects for the contact HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/contacts/internal/validation"
)

// CreateContactRequest contains the parameters for creating a contact.
type CreateContactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Validate checks if the create contact request is valid.
func (r *CreateContactRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 254),
		),
		validation.Field(&r.Phone,
			validation.Required,
			customValidation.Phone,
			validation.Length(1, 31),
		),
		// Email is optional; rules skip empty values.
		validation.Field(&r.Email,
			customValidation.Email,
			validation.Length(5, 254),
		),
	)
}

// UpdateContactRequest contains the parameters for a partial contact update.
// Nil fields are left unchanged.
type UpdateContactRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

// Validate checks the provided fields of the update contact request.
func (r *UpdateContactRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			customValidation.NotBlank,
			validation.Length(1, 254),
		),
		validation.Field(&r.Phone,
			customValidation.Phone,
			validation.Length(1, 31),
		),
		validation.Field(&r.Email,
			customValidation.Email,
			validation.Length(5, 254),
		),
	)
}
