package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/contacts/internal/auth/http/dto"
	authUseCase "github.com/allisson/contacts/internal/auth/usecase"
	"github.com/allisson/contacts/internal/config"
	"github.com/allisson/contacts/internal/httputil"
	"github.com/allisson/contacts/internal/metrics"
)

// CredentialVerifier resolves an email/password pair to a principal id.
// Implemented by the user use case; declared here so the auth handlers do
// not depend on the user module.
type CredentialVerifier interface {
	// VerifyCredentials returns the principal id for valid credentials.
	// Unknown email and wrong password are indistinguishable to the caller.
	VerifyCredentials(ctx context.Context, email, password string) (int64, error)
}

// Handler handles session lifecycle HTTP requests (login and logout).
type Handler struct {
	config          *config.Config
	authUseCase     authUseCase.AuthUseCase
	credentials     CredentialVerifier
	businessMetrics metrics.BusinessMetrics
	logger          *slog.Logger
}

// NewHandler creates a new auth Handler.
func NewHandler(
	config *config.Config,
	useCase authUseCase.AuthUseCase,
	credentials CredentialVerifier,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		config:          config,
		authUseCase:     useCase,
		credentials:     credentials,
		businessMetrics: businessMetrics,
		logger:          logger,
	}
}

// Login handles POST /v1/auth/login.
//
// Verifies the credentials, issues an access token, and delivers it in the
// auth cookie (SameSite=Lax, lifetime matching the token). With
// DEV_SHOW_TOKEN enabled the token is also echoed in the response body.
// Credential failures return a generic 401.
func (h *Handler) Login(c *gin.Context) {
	start := time.Now()
	ctx := c.Request.Context()

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	userID, err := h.credentials.VerifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		h.businessMetrics.RecordOperation(ctx, "auth", "login", "error")
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	token, err := h.authUseCase.IssueAccessToken(ctx, userID)
	if err != nil {
		h.businessMetrics.RecordOperation(ctx, "auth", "login", "error")
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.setAuthCookie(c, token, int(h.config.AccessTokenExpiration.Seconds()))

	response := dto.LoginResponse{Message: "login successful"}
	if h.config.DevShowToken {
		response.Token = token
	}

	h.businessMetrics.RecordOperation(ctx, "auth", "login", "success")
	h.businessMetrics.RecordDuration(ctx, "auth", "login", time.Since(start), "success")

	h.logger.Info("user logged in", slog.Int64("user_id", userID))

	c.JSON(http.StatusOK, response)
}

// Logout handles POST /v1/auth/logout.
//
// Revokes the access token carried by the request, if any, and clears the
// auth cookie. Always answers 204: logging out with a missing or invalid
// token is not an error.
func (h *Handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if tokenString := ExtractToken(c); tokenString != "" {
		if h.authUseCase.RevokeAccessToken(ctx, tokenString) {
			h.businessMetrics.RecordOperation(ctx, "auth", "logout", "success")
		} else {
			h.businessMetrics.RecordOperation(ctx, "auth", "logout", "error")
		}
	}

	h.setAuthCookie(c, "", -1)

	c.Status(http.StatusNoContent)
}

// setAuthCookie writes the auth cookie with the configured attributes.
// A negative maxAge clears the cookie.
func (h *Handler) setAuthCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		AuthCookieName,
		value,
		maxAge,
		"/",
		"",
		h.config.CookieSecure,
		h.config.CookieHTTPOnly,
	)
}
