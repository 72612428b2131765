// Package domain defines the core authentication domain entities and types.
package domain

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the validated claims set carried by an access token.
//
// Subject holds the principal id (a positive integer, encoded as a decimal
// string on the wire), and ID holds the per-issuance random token id used
// for revocation bookkeeping.
type AccessClaims struct {
	jwt.RegisteredClaims
}

// UserID parses the subject claim as a principal id.
// Returns ErrInvalidToken if the subject is missing, non-numeric, or not positive.
func (c *AccessClaims) UserID() (int64, error) {
	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidToken
	}
	return userID, nil
}

// HasAudience reports whether the audience claim contains the given value.
func (c *AccessClaims) HasAudience(audience string) bool {
	for _, aud := range c.Audience {
		if aud == audience {
			return true
		}
	}
	return false
}
