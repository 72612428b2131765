// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/go-pwdhash"

	authDomain "github.com/allisson/contacts/internal/auth/domain"
	apperrors "github.com/allisson/contacts/internal/errors"
	"github.com/allisson/contacts/internal/user/domain"
	appValidation "github.com/allisson/contacts/internal/validation"
)

// RegisterUserInput contains the input data for user registration
type RegisterUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserInput contains the input data for a partial user update.
// Nil fields are left unchanged.
type UpdateUserInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UseCase defines the interface for user business logic operations
type UseCase interface {
	RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error

	// VerifyCredentials resolves an email/password pair to a user id.
	// Unknown email and wrong password both return ErrInvalidCredentials.
	VerifyCredentials(ctx context.Context, email, password string) (int64, error)
}

// UserRepository interface defines user repository operations
type UserRepository interface {
	// Create inserts a new user and fills in the generated id and timestamps.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

// UserUseCase handles user-related business logic
type UserUseCase struct {
	userRepo       UserRepository
	passwordHasher *pwdhash.PasswordHasher
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(userRepo UserRepository) (UseCase, error) {
	// Interactive policy keeps login latency acceptable
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &UserUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
	}, nil
}

// validateRegisterUserInput validates the registration input using jellydator/validation
func (uc *UserUseCase) validateRegisterUserInput(input RegisterUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 254).Error("name must be between 1 and 254 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 254).Error("email must be between 5 and 254 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 254).Error("password must be between 8 and 254 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// validateUpdateUserInput validates the provided fields of a partial update.
func (uc *UserUseCase) validateUpdateUserInput(input UpdateUserInput) error {
	var rules []*validation.FieldRules

	if input.Name != nil {
		rules = append(rules, validation.Field(&input.Name,
			validation.Required.Error("name cannot be blank"),
			appValidation.NotBlank,
			validation.Length(1, 254).Error("name must be between 1 and 254 characters"),
		))
	}
	if input.Email != nil {
		rules = append(rules, validation.Field(&input.Email,
			validation.Required.Error("email cannot be blank"),
			appValidation.Email,
			validation.Length(5, 254).Error("email must be between 5 and 254 characters"),
		))
	}
	if input.Password != nil {
		rules = append(rules, validation.Field(&input.Password,
			validation.Required.Error("password cannot be blank"),
			validation.Length(8, 254).Error("password must be between 8 and 254 characters"),
		))
	}

	if len(rules) == 0 {
		return nil
	}

	return appValidation.WrapValidationError(validation.ValidateStruct(&input, rules...))
}

// RegisterUser registers a new user with a hashed password
func (uc *UserUseCase) RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	if err := uc.validateRegisterUserInput(input); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.passwordHasher.Hash([]byte(input.Password))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	user := &domain.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    normalizeEmail(input.Email),
		Password: hashedPassword,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByID retrieves a user by ID
func (uc *UserUseCase) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// UpdateUser applies a partial update to a user
func (uc *UserUseCase) UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error) {
	if err := uc.validateUpdateUserInput(input); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		user.Email = normalizeEmail(*input.Email)
	}
	if input.Password != nil {
		hashedPassword, err := uc.passwordHasher.Hash([]byte(*input.Password))
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to hash password")
		}
		user.Password = hashedPassword
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user
func (uc *UserUseCase) DeleteUser(ctx context.Context, id int64) error {
	return uc.userRepo.Delete(ctx, id)
}

// VerifyCredentials checks an email/password pair and returns the user id.
// Every failure mode (unknown email, wrong password, corrupt hash) collapses
// to ErrInvalidCredentials so the login endpoint leaks nothing about which
// part of the credentials was wrong.
func (uc *UserUseCase) VerifyCredentials(ctx context.Context, email, password string) (int64, error) {
	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return 0, authDomain.ErrInvalidCredentials
		}
		return 0, err
	}

	ok, err := uc.passwordHasher.Verify([]byte(password), user.Password)
	if err != nil || !ok {
		return 0, authDomain.ErrInvalidCredentials
	}

	return user.ID, nil
}

// normalizeEmail trims whitespace and lowercases an email address.
func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
