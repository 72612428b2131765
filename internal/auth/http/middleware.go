package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/allisson/contacts/internal/auth/usecase"
)

// AuthCookieName is the cookie carrying the access token.
const AuthCookieName = "auth"

// ExtractToken returns the access token carried by the request, or "" when
// none is present. The auth cookie takes precedence; a Bearer token in the
// Authorization header (case-insensitive scheme) is the fallback.
func ExtractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	const bearerPrefix = "bearer "
	if len(authHeader) > len(bearerPrefix) &&
		strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return authHeader[len(bearerPrefix):]
	}

	return ""
}

// AuthenticationMiddleware resolves the request's access token to a principal.
//
// The middleware:
// 1. Extracts the token from the auth cookie, falling back to a Bearer token
// 2. Validates it via authUseCase.ValidateToken()
// 3. Stores the principal id in the request context on success
// 4. Allows downstream handlers to access the principal via GetUserID()
//
// A missing or invalid token does NOT abort the request: the request simply
// continues anonymously, and route guards (RequireAuthMiddleware,
// RequireOwnerMiddleware) decide whether anonymity is acceptable. This keeps
// public and protected routes behind a single middleware chain.
func AuthenticationMiddleware(
	useCase authUseCase.AuthUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ExtractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		userID, ok := useCase.ValidateToken(c.Request.Context(), tokenString)
		if !ok {
			logger.Debug("authentication failed: invalid token")
			c.Next()
			return
		}

		ctx := WithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.Int64("user_id", userID))

		c.Next()
	}
}
