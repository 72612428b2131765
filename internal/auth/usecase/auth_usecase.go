package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/allisson/contacts/internal/auth/domain"
	authService "github.com/allisson/contacts/internal/auth/service"
	"github.com/allisson/contacts/internal/config"
)

// authUseCase implements AuthUseCase for JWT access tokens backed by a
// revocation table.
type authUseCase struct {
	config           *config.Config
	tokenCodec       authService.TokenCodec
	revokedTokenRepo RevokedTokenRepository
}

// IssueAccessToken builds the claims set and delegates signing to the codec.
//
// Claims: issuer and audience from configuration, issued-at and not-before
// set to now, expiry now+TTL, subject set to the principal id, and a fresh
// random token id per issuance (UUIDv4, 122 bits of entropy).
func (a *authUseCase) IssueAccessToken(ctx context.Context, userID int64) (string, error) {
	now := time.Now().UTC()

	claims := &authDomain.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.config.JWTIssuer,
			Audience:  jwt.ClaimStrings{a.config.JWTAudience},
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.config.AccessTokenExpiration)),
			ID:        uuid.NewString(),
		},
	}

	return a.tokenCodec.Encode(claims)
}

// ValidateToken validates a token string and returns the principal id.
//
// Checks, in order:
//  1. Decode via the codec (signature, structure, exp/nbf window).
//  2. Issuer matches the configured issuer.
//  3. Audience contains the configured audience.
//  4. Token id is not present in the revocation table.
//
// A revocation lookup error is treated as revoked: a storage failure must
// never silently authenticate a request.
func (a *authUseCase) ValidateToken(ctx context.Context, tokenString string) (int64, bool) {
	claims, err := a.tokenCodec.Decode(tokenString)
	if err != nil {
		return 0, false
	}

	if claims.Issuer != a.config.JWTIssuer {
		return 0, false
	}
	if !claims.HasAudience(a.config.JWTAudience) {
		return 0, false
	}

	userID, err := claims.UserID()
	if err != nil {
		return 0, false
	}

	revoked, err := a.revokedTokenRepo.Exists(ctx, claims.ID)
	if err != nil || revoked {
		// Fail closed on storage errors.
		return 0, false
	}

	return userID, true
}

// RevokeAccessToken decodes the token, verifies the issuer, and writes a
// revocation record keyed by the token id carrying the token's own expiry.
// Returns false on any failure; it never propagates an error to the caller.
func (a *authUseCase) RevokeAccessToken(ctx context.Context, tokenString string) bool {
	claims, err := a.tokenCodec.Decode(tokenString)
	if err != nil {
		return false
	}

	if claims.Issuer != a.config.JWTIssuer {
		return false
	}

	revokedToken := &authDomain.RevokedToken{
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
		CreatedAt: time.Now().UTC(),
	}

	if err := a.revokedTokenRepo.Create(ctx, revokedToken); err != nil {
		return false
	}

	return true
}

// CleanupExpiredTokens purges revocation records whose expiry has passed.
// The purge only removes bookkeeping: an expired token is rejected by the
// codec with or without its record.
func (a *authUseCase) CleanupExpiredTokens(ctx context.Context) int64 {
	count, err := a.revokedTokenRepo.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0
	}
	return count
}

// NewAuthUseCase creates a new AuthUseCase with the provided dependencies.
func NewAuthUseCase(
	config *config.Config,
	tokenCodec authService.TokenCodec,
	revokedTokenRepo RevokedTokenRepository,
) AuthUseCase {
	return &authUseCase{
		config:           config,
		tokenCodec:       tokenCodec,
		revokedTokenRepo: revokedTokenRepo,
	}
}
