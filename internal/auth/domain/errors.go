package domain

import (
	"github.com/allisson/contacts/internal/errors"
)

// Domain-specific errors for authentication operations.
var (
	// ErrInvalidToken indicates the token is malformed, badly signed, expired,
	// or carries unusable claims. All expected decode failures collapse here.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrInvalidCredentials indicates the email/password pair did not verify.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")
)
