// Package domain defines the core contact domain entities and types.
package domain

import (
	"time"

	"github.com/allisson/contacts/internal/errors"
)

// Contact represents an address-book entry owned by a user
type Contact struct {
	ID        int64
	UserID    int64
	Name      string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Domain-specific errors for contact operations.
var (
	// ErrContactNotFound indicates the contact does not exist or is owned by
	// another user. The two cases are indistinguishable on purpose.
	ErrContactNotFound = errors.Wrap(errors.ErrNotFound, "contact not found")
)
