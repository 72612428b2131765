// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/contacts/internal/validation"
)

// RegisterUserRequest contains the parameters for registering a new user.
type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks if the register user request is valid.
func (r *RegisterUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 254),
		),
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
			validation.Length(5, 254),
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(8, 254),
		),
	)
}

// UpdateUserRequest contains the parameters for a partial user update.
// Nil fields are left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Validate checks the provided fields of the update user request.
func (r *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			customValidation.NotBlank,
			validation.Length(1, 254),
		),
		validation.Field(&r.Email,
			customValidation.Email,
			validation.Length(5, 254),
		),
		validation.Field(&r.Password,
			validation.Length(8, 254),
		),
	)
}
