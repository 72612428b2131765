package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/contacts/internal/errors"
	"github.com/allisson/contacts/internal/httputil"
)

// Authorize checks an authenticated principal against an ownership requirement.
//
// userID is the principal resolved by the authentication middleware (0 when
// the request is anonymous). requiredOwnerID is the owner a route demands,
// or 0 when any authenticated principal may proceed.
//
// Returns the principal id on success. Returns ErrUnauthorized for anonymous
// requests and ErrForbidden when the principal is not the required owner.
// Both failures carry no detail about why the check failed.
func Authorize(userID, requiredOwnerID int64) (int64, error) {
	if userID <= 0 {
		return 0, apperrors.ErrUnauthorized
	}
	if requiredOwnerID != 0 && userID != requiredOwnerID {
		return 0, apperrors.ErrForbidden
	}
	return userID, nil
}

// RequireAuthMiddleware rejects anonymous requests with 401.
//
// MUST be used after AuthenticationMiddleware. Any authenticated principal
// passes; ownership of the addressed resource is checked at the data layer.
func RequireAuthMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := GetUserID(c.Request.Context())

		if _, err := Authorize(userID, 0); err != nil {
			logger.Debug("access denied: authentication required",
				slog.String("path", c.Request.URL.Path))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireOwnerMiddleware rejects requests whose principal does not match the
// route parameter naming the resource owner.
//
// MUST be used after AuthenticationMiddleware. Anonymous requests get 401;
// authenticated principals addressing another owner's subtree get 403. A
// malformed owner parameter never matches, so it also yields 403 for any
// authenticated principal.
func RequireOwnerMiddleware(param string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := GetUserID(c.Request.Context())

		ownerID, err := httputil.ParseIDParam(c.Param(param))
		if err != nil {
			// A malformed owner segment can never match a real principal.
			ownerID = -1
		}

		if _, err := Authorize(userID, ownerID); err != nil {
			logger.Debug("access denied",
				slog.Int64("user_id", userID),
				slog.String("path", c.Request.URL.Path))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
