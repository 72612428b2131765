// Package service provides authentication-related services for access-token
// encoding and decoding.
package service

import (
	authDomain "github.com/allisson/contacts/internal/auth/domain"
)

// TokenCodec encodes and decodes a signed claims set to and from a compact
// string. Implementations are pure functions of input plus the signing secret.
type TokenCodec interface {
	// Encode produces a signed representation of the claims.
	// The signature covers all claim fields.
	Encode(claims *authDomain.AccessClaims) (string, error)

	// Decode verifies the signature before trusting any field and returns the
	// typed claims. Malformed, badly signed, expired, and not-yet-valid tokens
	// all fail with ErrInvalidToken.
	Decode(tokenString string) (*authDomain.AccessClaims, error)
}
