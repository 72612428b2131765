package service

import (
	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/allisson/contacts/internal/auth/domain"
	apperrors "github.com/allisson/contacts/internal/errors"
)

// jwtTokenCodec implements TokenCodec using HMAC-SHA256 signed JWTs.
type jwtTokenCodec struct {
	secret []byte
}

// Encode signs the claims with HS256 and returns the compact serialization.
func (j *jwtTokenCodec) Encode(claims *authDomain.AccessClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(j.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}

	return tokenString, nil
}

// Decode parses and verifies a compact token string.
//
// The signature is verified before any claim is read, the signing method is
// pinned to HS256, and the exp/nbf time window is enforced during parsing.
// The subject and token id claims must be present and well formed. Every
// expected failure collapses to ErrInvalidToken; callers never learn which
// check rejected the token.
func (j *jwtTokenCodec) Decode(tokenString string) (*authDomain.AccessClaims, error) {
	claims := &authDomain.AccessClaims{}

	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (any, error) {
			return j.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil || !token.Valid {
		return nil, authDomain.ErrInvalidToken
	}

	// Required claims: a parsable positive subject and a non-empty token id.
	if _, err := claims.UserID(); err != nil {
		return nil, authDomain.ErrInvalidToken
	}
	if claims.ID == "" {
		return nil, authDomain.ErrInvalidToken
	}

	return claims, nil
}

// NewTokenCodec creates a new TokenCodec signing with the given symmetric secret.
func NewTokenCodec(secret string) TokenCodec {
	return &jwtTokenCodec{secret: []byte(secret)}
}
