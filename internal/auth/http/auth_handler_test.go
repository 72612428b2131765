package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/contacts/internal/auth/domain"
	"github.com/allisson/contacts/internal/config"
	"github.com/allisson/contacts/internal/metrics"
)

// MockCredentialVerifier is a mock implementation of CredentialVerifier
type MockCredentialVerifier struct {
	mock.Mock
}

func (m *MockCredentialVerifier) VerifyCredentials(ctx context.Context, email, password string) (int64, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(int64), args.Error(1)
}

func handlerTestConfig() *config.Config {
	return &config.Config{
		JWTIssuer:             "https://contacts.local",
		JWTAudience:           "https://contacts.api",
		AccessTokenExpiration: time.Hour,
		CookieSecure:          true,
		CookieHTTPOnly:        true,
	}
}

func setupHandlerRouter(
	cfg *config.Config,
	useCase *MockAuthUseCase,
	credentials *MockCredentialVerifier,
) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(cfg, useCase, credentials, metrics.NewNoOpBusinessMetrics(), testLogger())

	router := gin.New()
	router.POST("/auth/login", handler.Login)
	router.POST("/auth/logout", handler.Logout)
	return router
}

func findAuthCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := w.Result()
	defer res.Body.Close()
	for _, cookie := range res.Cookies() {
		if cookie.Name == AuthCookieName {
			return cookie
		}
	}
	return nil
}

func TestHandler_Login_Success(t *testing.T) {
	cfg := handlerTestConfig()
	useCase := &MockAuthUseCase{}
	credentials := &MockCredentialVerifier{}

	credentials.On("VerifyCredentials", mock.Anything, "alice@example.com", "password123").
		Return(int64(42), nil)
	useCase.On("IssueAccessToken", mock.Anything, int64(42)).Return("issued-token", nil)

	router := setupHandlerRouter(cfg, useCase, credentials)

	w := httptest.NewRecorder()
	body := `{"email":"alice@example.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "login successful")
	// Token travels in the cookie, not the body
	assert.NotContains(t, w.Body.String(), "issued-token")

	cookie := findAuthCookie(t, w)
	require.NotNil(t, cookie)
	assert.Equal(t, "issued-token", cookie.Value)
	assert.Equal(t, int(cfg.AccessTokenExpiration.Seconds()), cookie.MaxAge)
	assert.True(t, cookie.Secure)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	credentials.AssertExpectations(t)
	useCase.AssertExpectations(t)
}

func TestHandler_Login_DevShowToken(t *testing.T) {
	cfg := handlerTestConfig()
	cfg.DevShowToken = true
	useCase := &MockAuthUseCase{}
	credentials := &MockCredentialVerifier{}

	credentials.On("VerifyCredentials", mock.Anything, "alice@example.com", "password123").
		Return(int64(42), nil)
	useCase.On("IssueAccessToken", mock.Anything, int64(42)).Return("issued-token", nil)

	router := setupHandlerRouter(cfg, useCase, credentials)

	w := httptest.NewRecorder()
	body := `{"email":"alice@example.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "issued-token")
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	cfg := handlerTestConfig()
	useCase := &MockAuthUseCase{}
	credentials := &MockCredentialVerifier{}

	credentials.On("VerifyCredentials", mock.Anything, "alice@example.com", "wrongpassword").
		Return(int64(0), authDomain.ErrInvalidCredentials)

	router := setupHandlerRouter(cfg, useCase, credentials)

	w := httptest.NewRecorder()
	body := `{"email":"alice@example.com","password":"wrongpassword"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	// Generic response, no hint about which credential was wrong
	assert.NotContains(t, w.Body.String(), "password")
	assert.Nil(t, findAuthCookie(t, w))
	useCase.AssertNotCalled(t, "IssueAccessToken", mock.Anything, mock.Anything)
}

func TestHandler_Login_ValidationError(t *testing.T) {
	cfg := handlerTestConfig()
	useCase := &MockAuthUseCase{}
	credentials := &MockCredentialVerifier{}

	router := setupHandlerRouter(cfg, useCase, credentials)

	w := httptest.NewRecorder()
	body := `{"email":"not-an-email","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	credentials.AssertNotCalled(t, "VerifyCredentials", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_Login_MalformedJSON(t *testing.T) {
	cfg := handlerTestConfig()
	useCase := &MockAuthUseCase{}
	credentials := &MockCredentialVerifier{}

	router := setupHandlerRouter(cfg, useCase, credentials)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Logout_RevokesToken(t *testing.T) {
	cfg := handlerTestConfig()
	useCase := &MockAuthUseCase{}
	credentials := &MockCredentialVerifier{}

	useCase.On("RevokeAccessToken", mock.Anything, "the-token").Return(true)

	router := setupHandlerRouter(cfg, useCase, credentials)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "the-token"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)

	// Cookie is cleared
	cookie := findAuthCookie(t, w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)

	useCase.AssertExpectations(t)
}

func TestHandler_Logout_WithoutToken(t *testing.T) {
	cfg := handlerTestConfig()
	useCase := &MockAuthUseCase{}
	credentials := &MockCredentialVerifier{}

	router := setupHandlerRouter(cfg, useCase, credentials)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	router.ServeHTTP(w, req)

	// Logging out without a token is not an error
	assert.Equal(t, http.StatusNoContent, w.Code)
	useCase.AssertNotCalled(t, "RevokeAccessToken", mock.Anything, mock.Anything)
}

func TestHandler_Logout_RevokeFailureStillSucceeds(t *testing.T) {
	cfg := handlerTestConfig()
	useCase := &MockAuthUseCase{}
	credentials := &MockCredentialVerifier{}

	useCase.On("RevokeAccessToken", mock.Anything, "bad-token").Return(false)

	router := setupHandlerRouter(cfg, useCase, credentials)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "bad-token"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	useCase.AssertExpectations(t)
}
